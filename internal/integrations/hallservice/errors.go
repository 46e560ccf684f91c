package hallservice

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hallservice: hall not found")

	// ErrEventTypeNotFound возвращается, когда тип мероприятия не найден
	ErrEventTypeNotFound = errors.New("hallservice: event type not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса залов
	ErrInvalidResponse = errors.New("hallservice: invalid response")

	// ErrServiceDegraded возвращается при недоступности сервиса залов,
	// когда вызывающий код может продолжить без его данных
	ErrServiceDegraded = errors.New("hallservice: service degraded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hallservice: internal error")
)
