package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrCannotUpdate возвращается, когда бронирование нельзя редактировать
	ErrCannotUpdate = errors.New("update_booking: booking cannot be updated")

	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("update_booking: hall not found")

	// ErrSectionNotFound возвращается, когда секция не принадлежит залу
	ErrSectionNotFound = errors.New("update_booking: section not found in hall")

	// ErrConfigNotFound возвращается, когда у зала нет конфигурации ценообразования
	ErrConfigNotFound = errors.New("update_booking: pricing config not found")

	// ErrNoRateConfigured возвращается, когда для даты и слота нет ставки
	ErrNoRateConfigured = errors.New("update_booking: no rate configured")

	// ErrDiscountNotFound возвращается, когда специальная скидка не найдена
	ErrDiscountNotFound = errors.New("update_booking: special discount not found")

	// ErrDiscountInactive возвращается, когда специальная скидка отключена
	ErrDiscountInactive = errors.New("update_booking: special discount is inactive")

	// ErrSectionsOccupied возвращается, когда секции заняты подтверждённой бронью
	ErrSectionsOccupied = errors.New("update_booking: sections are occupied by a confirmed booking")

	// ErrPriceMismatch возвращается, когда пересчитанный итог расходится с
	// сохранённым и пересчёт не был явно подтверждён
	ErrPriceMismatch = errors.New("update_booking: stored total differs from recomputed total")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
