package domain

// Default configuration values
const (
	DefaultVATPercent      = 15.0
	DefaultInsuranceAmount = 0.0
)

// Business validation constants
const (
	MinVATPercent               = 0.0
	MaxVATPercent               = 100.0
	MaxAttendeesCount           = 100000
	MaxServicesPerBooking       = 50
	MaxSpecialPeriodsPerConfig  = 100
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при построении отчёта занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByManager,
	StatusExpired,
}

// ActiveStatuses список статусов активных бронирований
// Только эти статусы занимают секции зала
var ActiveStatuses = []BookingStatus{
	StatusTemporary,
	StatusConfirmed,
	StatusCompleted,
}
