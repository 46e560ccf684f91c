package create_booking

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("create_booking: hall not found")

	// ErrSectionNotFound возвращается, когда секция не принадлежит залу
	ErrSectionNotFound = errors.New("create_booking: section not found in hall")

	// ErrEventTypeNotFound возвращается, когда тип мероприятия не найден
	ErrEventTypeNotFound = errors.New("create_booking: event type not found")

	// ErrConfigNotFound возвращается, когда у зала нет конфигурации ценообразования
	ErrConfigNotFound = errors.New("create_booking: pricing config not found")

	// ErrNoRateConfigured возвращается, когда для даты и слота нет ставки
	ErrNoRateConfigured = errors.New("create_booking: no rate configured")

	// ErrDiscountNotFound возвращается, когда специальная скидка не найдена
	ErrDiscountNotFound = errors.New("create_booking: special discount not found")

	// ErrDiscountInactive возвращается, когда специальная скидка отключена
	ErrDiscountInactive = errors.New("create_booking: special discount is inactive")

	// ErrSectionsOccupied возвращается, когда секции заняты подтверждённой бронью
	ErrSectionsOccupied = errors.New("create_booking: sections are occupied by a confirmed booking")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
