package quote_booking

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у зала нет конфигурации ценообразования
	ErrConfigNotFound = errors.New("quote_booking: pricing config not found")

	// ErrNoRateConfigured возвращается, когда для даты и слота нет ставки
	ErrNoRateConfigured = errors.New("quote_booking: no rate configured")

	// ErrDiscountNotFound возвращается, когда специальная скидка не найдена
	ErrDiscountNotFound = errors.New("quote_booking: special discount not found")

	// ErrDiscountInactive возвращается, когда специальная скидка отключена
	ErrDiscountInactive = errors.New("quote_booking: special discount is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
