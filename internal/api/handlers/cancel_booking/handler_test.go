package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	cancelBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/cancel_booking"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	executeFn     func(ctx context.Context, appointmentID, requesterUserID string) error
	lastID        string
	lastRequester string
}

func (f *fakeUseCase) Execute(ctx context.Context, appointmentID, requesterUserID string) error {
	f.lastID = appointmentID
	f.lastRequester = requesterUserID
	if f.executeFn == nil {
		panic("Execute not configured")
	}
	return f.executeFn(ctx, appointmentID, requesterUserID)
}

// маршрут через Auth, как в production-роутере, чтобы mux.Vars и
// идентификатор пользователя заполнялись
func serve(h *Handler, id, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/api/v1/appointments/{appointmentId}", h.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, appointmentID, requesterUserID string) error {
			return nil
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := serve(h, "appt-1", "user-1")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "appt-1", uc.lastID)
	assert.Equal(t, "user-1", uc.lastRequester)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, noopLogger{})

	rec := serve(h, "appt-1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, uc.lastID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid id", err: cancelBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "access denied", err: cancelBooking.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "not found", err: cancelBooking.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "inconsistent cancellation", err: cancelBooking.ErrInconsistentCancellation, wantStatus: http.StatusInternalServerError},
		{name: "internal", err: cancelBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				executeFn: func(ctx context.Context, appointmentID, requesterUserID string) error {
					return tt.err
				},
			}
			h := NewHandler(uc, noopLogger{})

			rec := serve(h, "appt-1", "user-1")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
