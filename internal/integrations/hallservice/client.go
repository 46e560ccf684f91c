package hallservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом управления залами
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса залов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHall получает зал с секциями и списком менеджеров
func (c *Client) GetHall(ctx context.Context, hallID int64) (*Hall, error) {
	url := fmt.Sprintf("%s/internal/halls/%d", c.baseURL, hallID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid hall ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrHallNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var hall Hall
	if err := json.NewDecoder(resp.Body).Decode(&hall); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &hall, nil
}

// GetEventType получает тип мероприятия из справочника
func (c *Client) GetEventType(ctx context.Context, eventTypeID int64) (*EventType, error) {
	url := fmt.Sprintf("%s/internal/event-types/%d", c.baseURL, eventTypeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrEventTypeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var eventType EventType
	if err := json.NewDecoder(resp.Body).Decode(&eventType); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &eventType, nil
}

// GetEventTypeWithGracefulDegradation получает тип мероприятия с graceful degradation.
// При недоступности сервиса залов возвращает ErrServiceDegraded - котировка
// может быть посчитана и без названия типа мероприятия.
func (c *Client) GetEventTypeWithGracefulDegradation(ctx context.Context, eventTypeID int64) (*EventType, error) {
	eventType, err := c.GetEventType(ctx, eventTypeID)
	if err != nil {
		// Критичная бизнес-ошибка пробрасывается дальше
		if err == ErrEventTypeNotFound {
			c.log.Info("Event type id=%d not found", eventTypeID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, парсинг) применяем
		// graceful degradation; уровень ERROR, чтобы быстрее заметить проблему
		c.log.Error("HallService unavailable, applying graceful degradation for event_type_id=%d: %v", eventTypeID, err)
		return nil, fmt.Errorf("%w: event_type_id=%d, error=%v", ErrServiceDegraded, eventTypeID, err)
	}

	return eventType, nil
}
