package check_availability

import "time"

// Request модель запроса проверки занятости
type Request struct {
	HallID     int64     // ID зала
	SectionIDs []int64   // Секции зала
	StartDate  time.Time // Начало диапазона (без времени)
	EndDate    time.Time // Конец диапазона (без времени)
}

// SlotOccupancy счётчики занятости одного слота
type SlotOccupancy struct {
	Temporary int // Временные (неподтверждённые) брони
	Confirmed int // Подтверждённые брони
}

// Response модель ответа с отчётом занятости по всем трём слотам
type Response struct {
	HallID     int64   // ID зала
	SectionIDs []int64 // Запрошенные секции
	StartDate  string  // Начало диапазона "2025-10-15"
	EndDate    string  // Конец диапазона

	Morning SlotOccupancy // Занятость утреннего слота
	Evening SlotOccupancy // Занятость вечернего слота
	FullDay SlotOccupancy // Занятость слота полного дня
}
