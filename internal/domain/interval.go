package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ErrInvalidInterval is returned when an interval is constructed with start >= end
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// TimeRange is a half-open time-of-day range [Start, End).
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeRange constructs a validated half-open range.
func NewTimeRange(start, end types.TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open ranges intersect.
// Touching endpoints do not overlap: [09:00,10:00) and [10:00,11:00)
// are compatible.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// BookedInterval is the authoritative reservation record: a committed
// half-open range held by an appointment on a given day.
// AppointmentID is nil until the interval is linked to its appointment.
type BookedInterval struct {
	OwnerID       string
	AppointmentID *string
	Date          time.Time
	Start         types.TimeString
	End           types.TimeString
}

// NewBookedInterval constructs a validated booked interval.
func NewBookedInterval(ownerID string, date time.Time, start, end types.TimeString) (*BookedInterval, error) {
	if _, err := NewTimeRange(start, end); err != nil {
		return nil, err
	}
	return &BookedInterval{
		OwnerID: ownerID,
		Date:    date,
		Start:   start,
		End:     end,
	}, nil
}

// Range returns the interval as a TimeRange.
func (b *BookedInterval) Range() TimeRange {
	return TimeRange{Start: b.Start, End: b.End}
}
