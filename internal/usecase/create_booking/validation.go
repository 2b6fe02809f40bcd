package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Любая ошибка здесь возвращается до первого обращения к хранилищу.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.OwnerID) == "" ||
		strings.TrimSpace(req.CustomerUserID) == "" ||
		strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: missing required id", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: missing customer contact info", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if len(req.CustomerPhone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone exceeds %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotWithinHours проверяет, что интервал лежит внутри рабочих часов
// и его начало выровнено по сетке слотов
func validateSlotWithinHours(candidate domain.TimeRange, hours domain.BusinessHours) error {
	if candidate.Start.IsBefore(hours.OpeningTime) {
		return fmt.Errorf("%w: starts before opening", ErrInvalidTimeSlot)
	}
	// Конец ровно во время закрытия допустим
	if candidate.End.IsAfter(hours.ClosingTime) {
		return fmt.Errorf("%w: ends after closing", ErrInvalidTimeSlot)
	}

	startMin, err := candidate.Start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTimeConversion, err)
	}
	openMin, err := hours.OpeningTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTimeConversion, err)
	}
	if (startMin-openMin)%hours.SlotGranularityMinutes != 0 {
		return fmt.Errorf("%w: not aligned to %d-minute grid", ErrInvalidTimeSlot, hours.SlotGranularityMinutes)
	}

	return nil
}

// isIntervalFree проверяет, что кандидат не пересекается ни с одним занятым
// интервалом (защитная перепроверка перед вставкой)
func isIntervalFree(candidate domain.TimeRange, booked []*domain.BookedInterval) bool {
	for _, interval := range booked {
		if candidate.Overlaps(interval.Range()) {
			return false
		}
	}
	return true
}
