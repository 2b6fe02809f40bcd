package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateFreeSlots вычисляет свободные времена начала для услуги заданной
// длительности. Чистая функция: никакого I/O, только арифметика интервалов.
//
// Кандидаты идут от времени открытия с шагом slotGranularityMinutes, пока
// candidateStart + serviceDuration <= closingTime. Кандидат попадает в
// результат, если его интервал [start, start+duration) не пересекается ни
// с одним занятым интервалом. Кандидат, заканчивающийся ровно во время
// закрытия, допустим.
//
// booked должен быть уже отфильтрован по бизнесу и дате — функция свои
// фильтры не накладывает.
func generateFreeSlots(
	hours domain.BusinessHours,
	serviceDurationMinutes int,
	booked []*domain.BookedInterval,
) ([]types.TimeString, error) {
	if serviceDurationMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	free := make([]types.TimeString, 0)
	candidate := hours.OpeningTime

	for !candidate.IsAfter(hours.ClosingTime) {
		candidateEnd, err := candidate.AddMinutes(serviceDurationMinutes)
		if err != nil {
			// Конец услуги ушел за границу суток — дальше ничего не поместится
			break
		}
		if candidateEnd.IsAfter(hours.ClosingTime) {
			break
		}

		candidateRange := domain.TimeRange{Start: candidate, End: candidateEnd}
		if !overlapsAny(candidateRange, booked) {
			free = append(free, candidate)
		}

		candidate, err = candidate.AddMinutes(hours.SlotGranularityMinutes)
		if err != nil {
			break
		}
	}

	return free, nil
}

// overlapsAny проверяет пересечение кандидата хотя бы с одним занятым интервалом
func overlapsAny(candidate domain.TimeRange, booked []*domain.BookedInterval) bool {
	for _, interval := range booked {
		if candidate.Overlaps(interval.Range()) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
