package pricingconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	configRepo "github.com/avask/HMS-BookingService/internal/infra/storage/pricingconfig"
	hallClient "github.com/avask/HMS-BookingService/internal/integrations/hallservice"
	"github.com/avask/HMS-BookingService/internal/service/pricingconfig/models"
)

// Service сервис управления конфигурациями ценообразования залов
type Service struct {
	configRepo ConfigRepository
	hallClient HallServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигураций
func NewService(
	configRepo ConfigRepository,
	hallClient HallServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		hallClient: hallClient,
		logger:     logger,
	}
}

// Get получает конфигурацию ценообразования зала
// Доступно только менеджерам зала
func (s *Service) Get(ctx context.Context, req *models.GetConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching pricing config for hall=%d, user=%d", req.HallID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.HallID, req.UserID); err != nil {
		return nil, err
	}

	config, err := s.configRepo.GetByHall(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: pricing config for hall=%d not found", req.HallID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched pricing config for hall=%d", req.HallID)
	return models.FromDomainConfig(config), nil
}

// Upsert создает или заменяет конфигурацию ценообразования зала
// Конфигурация валидируется целиком перед сохранением, частичных обновлений нет
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: saving pricing config for hall=%d, mode=%s, user=%d",
		req.HallID, req.PricingMode, req.UserID)

	if err := s.checkManagerAccess(ctx, req.HallID, req.UserID); err != nil {
		return nil, err
	}

	config := req.ToDomain()

	if err := config.Validate(); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			s.logger.Warn("Upsert: invalid pricing config for hall=%d: %v", req.HallID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Upsert: validation failed for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: Upsert - validation error: %v", ErrInternal, err)
	}

	saved, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Upsert: repository error for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved pricing config for hall=%d", req.HallID)
	return models.FromDomainConfig(saved), nil
}

// Delete удаляет конфигурацию ценообразования зала
// Доступно только менеджерам зала
func (s *Service) Delete(ctx context.Context, req *models.DeleteConfigRequest) error {
	s.logger.Info("Delete: deleting pricing config for hall=%d, user=%d", req.HallID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.HallID, req.UserID); err != nil {
		return err
	}

	if err := s.configRepo.Delete(ctx, req.HallID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: pricing config for hall=%d not found", req.HallID)
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error for hall=%d: %v", req.HallID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted pricing config for hall=%d", req.HallID)
	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером зала
func (s *Service) checkManagerAccess(ctx context.Context, hallID int64, userID int64) error {
	hall, err := s.hallClient.GetHall(ctx, hallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			s.logger.Warn("checkManagerAccess: hall id=%d not found", hallID)
			return ErrHallNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get hall id=%d: %v", hallID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get hall: %v", ErrInternal, err)
	}

	if !hall.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of hall=%d", userID, hallID)
		return ErrAccessDenied
	}

	return nil
}
