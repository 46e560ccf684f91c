package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	hallClient "github.com/avask/HMS-BookingService/internal/integrations/hallservice"
	"github.com/avask/HMS-BookingService/internal/pricing"
)

// UseCase use case для построения отчёта занятости секций зала.
// Чисто читающая операция: занятость не блокирует подачу брони,
// решение остаётся за вызывающим.
type UseCase struct {
	bookingRepo BookingRepository
	hallClient  HallServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hallClient HallServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		hallClient:  hallClient,
		logger:      logger,
	}
}

// Execute выполняет проверку занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: hall=%d, sections=%v, dates=%s..%s",
		req.HallID, req.SectionIDs,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование зала и секций
	hall, err := uc.hallClient.GetHall(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			uc.logger.Warn("CheckAvailability: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if err := validateSectionsExist(hall, req.SectionIDs); err != nil {
		uc.logger.Warn("CheckAvailability: %v", err)
		return nil, err
	}

	// 3. Получаем активные брони, пересекающиеся с диапазоном дат
	intervals, err := uc.bookingRepo.GetIntervalsForWindow(ctx, req.HallID, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get booking intervals for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get booking intervals: %v", ErrInternal, err)
	}

	// 4. Строим отчёт занятости по всем трём слотам
	report := pricing.CheckAvailability(intervals, pricing.AvailabilityQuery{
		HallID:     req.HallID,
		SectionIDs: req.SectionIDs,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})

	uc.logger.Info("CheckAvailability: hall=%d, morning=%d/%d, evening=%d/%d, fullDay=%d/%d",
		req.HallID,
		report.Morning.Temporary, report.Morning.Confirmed,
		report.Evening.Temporary, report.Evening.Confirmed,
		report.FullDay.Temporary, report.FullDay.Confirmed)

	return &Response{
		HallID:     req.HallID,
		SectionIDs: req.SectionIDs,
		StartDate:  req.StartDate.Format(domain.DateFormat),
		EndDate:    req.EndDate.Format(domain.DateFormat),
		Morning:    SlotOccupancy{Temporary: report.Morning.Temporary, Confirmed: report.Morning.Confirmed},
		Evening:    SlotOccupancy{Temporary: report.Evening.Temporary, Confirmed: report.Evening.Confirmed},
		FullDay:    SlotOccupancy{Temporary: report.FullDay.Temporary, Confirmed: report.FullDay.Confirmed},
	}, nil
}
