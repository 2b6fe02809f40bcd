package domain

import (
	"errors"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ErrInvalidDuration is returned when a service duration is zero or negative
var ErrInvalidDuration = errors.New("domain: service duration must be positive")

// BusinessHours is the read-only per-business scheduling configuration:
// the working window and the slot grid step.
type BusinessHours struct {
	OpeningTime            types.TimeString
	ClosingTime            types.TimeString
	SlotGranularityMinutes int
}

// Window returns the working hours as a TimeRange.
func (h BusinessHours) Window() (TimeRange, error) {
	return NewTimeRange(h.OpeningTime, h.ClosingTime)
}
