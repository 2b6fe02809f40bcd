package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func mustRange(t *testing.T, start, end types.TimeString) TimeRange {
	t.Helper()
	r, err := NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewTimeRange(t *testing.T) {
	_, err := NewTimeRange("10:00", "11:00")
	require.NoError(t, err)

	_, err = NewTimeRange("11:00", "10:00")
	require.ErrorIs(t, err, ErrInvalidInterval)

	// Пустой интервал недопустим
	_, err = NewTimeRange("10:00", "10:00")
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewTimeRange("bad", "11:00")
	require.ErrorIs(t, err, ErrInvalidInterval)

	// Конец в "24:00" допустим как граница суток
	_, err = NewTimeRange("23:30", "24:00")
	require.NoError(t, err)
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{
			name: "disjoint",
			a:    mustRange(t, "09:00", "10:00"),
			b:    mustRange(t, "11:00", "12:00"),
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			a:    mustRange(t, "09:00", "10:00"),
			b:    mustRange(t, "10:00", "11:00"),
			want: false,
		},
		{
			name: "partial overlap",
			a:    mustRange(t, "09:00", "10:30"),
			b:    mustRange(t, "10:00", "11:00"),
			want: true,
		},
		{
			name: "containment",
			a:    mustRange(t, "09:00", "12:00"),
			b:    mustRange(t, "10:00", "11:00"),
			want: true,
		},
		{
			name: "identical",
			a:    mustRange(t, "10:00", "11:00"),
			b:    mustRange(t, "10:00", "11:00"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewBookedInterval(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	interval, err := NewBookedInterval("owner-1", date, "10:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", interval.OwnerID)
	assert.Nil(t, interval.AppointmentID)
	assert.Equal(t, mustRange(t, "10:00", "10:30"), interval.Range())

	_, err = NewBookedInterval("owner-1", date, "10:30", "10:00")
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestAppointment_DerivedInterval(t *testing.T) {
	appt := &Appointment{
		ID:              "appt-1",
		OwnerID:         "owner-1",
		DurationMinutes: 60,
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
	}

	end, err := appt.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), end)

	interval, err := appt.Interval()
	require.NoError(t, err)
	require.NotNil(t, interval.AppointmentID)
	assert.Equal(t, "appt-1", *interval.AppointmentID)
	assert.Equal(t, types.TimeString("10:00"), interval.Start)
	assert.Equal(t, types.TimeString("11:00"), interval.End)

	// Длительность, выводящая конец за границу суток
	appt.StartTime = "23:30"
	_, err = appt.Interval()
	require.Error(t, err)
}

func TestBusinessHours_Window(t *testing.T) {
	hours := BusinessHours{
		OpeningTime:            "09:00",
		ClosingTime:            "18:00",
		SlotGranularityMinutes: 30,
	}

	window, err := hours.Window()
	require.NoError(t, err)
	assert.Equal(t, mustRange(t, "09:00", "18:00"), window)

	hours.ClosingTime = "08:00"
	_, err = hours.Window()
	require.ErrorIs(t, err, ErrInvalidInterval)
}
