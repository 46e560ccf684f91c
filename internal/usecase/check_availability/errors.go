package check_availability

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("check_availability: hall not found")

	// ErrSectionNotFound возвращается, когда секция не принадлежит залу
	ErrSectionNotFound = errors.New("check_availability: section not found in hall")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
