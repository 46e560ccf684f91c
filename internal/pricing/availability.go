package pricing

import (
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// AvailabilityQuery запрошенные секции и диапазон дат для отчёта занятости
type AvailabilityQuery struct {
	HallID     int64
	SectionIDs []int64
	StartDate  time.Time
	EndDate    time.Time
}

// CheckAvailability строит отчёт занятости по запрошенным секциям и диапазону
// дат. Для каждого слота считаются временные (неподтверждённые) и
// подтверждённые брони, пересекающиеся с запросом по датам и секциям.
// Возвращаются все три слота, чтобы вызывающий мог показать занятость целого
// дня, а не только pass/fail по одному слоту.
//
// Проверка чисто читающая: побочных эффектов нет, нулевая занятость не
// является ошибкой. Решение о блокировке подачи брони остаётся за вызывающим.
func CheckAvailability(existing []domain.BookingInterval, query AvailabilityQuery) domain.AvailabilityReport {
	var report domain.AvailabilityReport

	for _, interval := range existing {
		if !datesOverlap(query.StartDate, query.EndDate, interval.StartDate, interval.EndDate) {
			continue
		}
		if !shareSection(query.SectionIDs, interval.SectionIDs) {
			continue
		}

		tally := occupancyFor(&report, interval.TimeSlot)
		if interval.IsConfirmed {
			tally.Confirmed++
		} else {
			tally.Temporary++
		}
	}

	return report
}

// Conflicts проверяет, претендуют ли два интервала на одни секции в одно время.
// Конфликт есть, когда диапазоны дат пересекаются (границы включительно),
// есть общая секция и слоты не являются непересекающимися половинами дня
// (full_day конфликтует с любым слотом, morning и evening между собой - нет).
// Вердикт симметричен относительно порядка аргументов.
func Conflicts(a, b domain.BookingInterval) bool {
	if !datesOverlap(a.StartDate, a.EndDate, b.StartDate, b.EndDate) {
		return false
	}
	if !shareSection(a.SectionIDs, b.SectionIDs) {
		return false
	}
	return a.TimeSlot.ConflictsWith(b.TimeSlot)
}

// datesOverlap проверяет пересечение диапазонов дат, границы включительно
func datesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	as, ae := domain.DateOnly(aStart), domain.DateOnly(aEnd)
	bs, be := domain.DateOnly(bStart), domain.DateOnly(bEnd)
	return !as.After(be) && !bs.After(ae)
}

// shareSection проверяет наличие хотя бы одной общей секции
func shareSection(a, b []int64) bool {
	for _, sa := range a {
		for _, sb := range b {
			if sa == sb {
				return true
			}
		}
	}
	return false
}

// occupancyFor возвращает счётчик отчёта для слота интервала
func occupancyFor(report *domain.AvailabilityReport, slot domain.TimeSlot) *domain.SlotOccupancy {
	switch slot {
	case domain.SlotMorning:
		return &report.Morning
	case domain.SlotEvening:
		return &report.Evening
	default:
		return &report.FullDay
	}
}
