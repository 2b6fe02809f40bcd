package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	getByIDFn         func(ctx context.Context, id string) (*domain.Appointment, error)
	getByCustomerFn   func(ctx context.Context, customerUserID string) ([]*domain.Appointment, error)
	getByOwnerDateFn  func(ctx context.Context, ownerID string, date time.Time) ([]*domain.Appointment, error)
	getByCustomerCall int
	getByOwnerCall    int
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetByCustomer(ctx context.Context, customerUserID string) ([]*domain.Appointment, error) {
	f.getByCustomerCall++
	if f.getByCustomerFn == nil {
		panic("GetByCustomer not configured")
	}
	return f.getByCustomerFn(ctx, customerUserID)
}

func (f *fakeRepo) GetByOwnerAndDate(ctx context.Context, ownerID string, date time.Time) ([]*domain.Appointment, error) {
	f.getByOwnerCall++
	if f.getByOwnerDateFn == nil {
		panic("GetByOwnerAndDate not configured")
	}
	return f.getByOwnerDateFn(ctx, ownerID, date)
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              "appt-1",
		OwnerID:         "owner-1",
		CustomerUserID:  "user-1",
		ServiceID:       "svc-1",
		ServiceName:     "Стрижка",
		PriceCents:      150000,
		DurationMinutes: 60,
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		CustomerName:    "Иван Иванов",
		CustomerPhone:   "+79991234567",
	}
}

func TestGetByID_CustomerSeesOwnAppointment(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return sampleAppointment(), nil
		},
	}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), "appt-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2026-09-01", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
}

func TestGetByID_OwnerSeesAppointment(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return sampleAppointment(), nil
		},
	}, noopLogger{})

	_, err := svc.GetByID(context.Background(), "appt-1", "owner-1")
	require.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return sampleAppointment(), nil
		},
	}, noopLogger{})

	_, err := svc.GetByID(context.Background(), "appt-1", "user-2")
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}, noopLogger{})

	_, err := svc.GetByID(context.Background(), "missing", "user-1")
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetCustomerAppointments(t *testing.T) {
	repo := &fakeRepo{
		getByCustomerFn: func(ctx context.Context, customerUserID string) ([]*domain.Appointment, error) {
			assert.Equal(t, "user-1", customerUserID)
			return []*domain.Appointment{sampleAppointment()}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
		CustomerUserID: "user-1",
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "appt-1", resp.Appointments[0].ID)
}

func TestGetCustomerAppointments_EmptyCustomerID(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.getByCustomerCall)
}

func TestGetOwnerDay(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		getByOwnerDateFn: func(ctx context.Context, ownerID string, d time.Time) ([]*domain.Appointment, error) {
			assert.Equal(t, "owner-1", ownerID)
			assert.Equal(t, date, d)
			return []*domain.Appointment{sampleAppointment()}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetOwnerDay(context.Background(), &models.GetOwnerDayRequest{
		OwnerID: "owner-1",
		Date:    date,
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
}

func TestGetOwnerDay_Validation(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.GetOwnerDay(context.Background(), &models.GetOwnerDayRequest{
		Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetOwnerDay(context.Background(), &models.GetOwnerDayRequest{
		OwnerID: "owner-1",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.getByOwnerCall)
}

func TestGetOwnerDay_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByOwnerDateFn: func(ctx context.Context, ownerID string, date time.Time) ([]*domain.Appointment, error) {
			return nil, errors.New("timeout")
		},
	}, noopLogger{})

	_, err := svc.GetOwnerDay(context.Background(), &models.GetOwnerDayRequest{
		OwnerID: "owner-1",
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInternal)
}
