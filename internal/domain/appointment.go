package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Appointment represents a customer's booking of a service.
// EndTime is always derived from StartTime + DurationMinutes; the
// corresponding BookedInterval is the authoritative reservation record.
type Appointment struct {
	ID              string
	OwnerID         string
	CustomerUserID  string
	ServiceID       string
	ServiceName     string
	PriceCents      int64
	DurationMinutes int

	Date      time.Time
	StartTime types.TimeString

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	// Assigned by the persistence layer at write time
	CreatedAt time.Time
}

// EndTime returns the derived end of the appointment.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// Interval returns the reservation interval this appointment claims.
func (a *Appointment) Interval() (*BookedInterval, error) {
	end, err := a.EndTime()
	if err != nil {
		return nil, err
	}
	interval, err := NewBookedInterval(a.OwnerID, a.Date, a.StartTime, end)
	if err != nil {
		return nil, err
	}
	if a.ID != "" {
		id := a.ID
		interval.AppointmentID = &id
	}
	return interval, nil
}
