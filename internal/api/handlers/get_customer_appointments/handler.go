package get_customer_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgForbidden    = "доступ запрещен"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerUserId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerUserID := vars["customerUserId"]
	requesterUserID := middleware.UserIDFromContext(r.Context())

	// Историю записей клиент видит только свою
	if customerUserID != requesterUserID {
		h.logger.Warn("GET /customers/{id}/appointments - Access denied: customer=%s, requester=%s",
			customerUserID, requesterUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), &models.GetCustomerAppointmentsRequest{
		CustomerUserID: customerUserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /customers/{id}/appointments - Failed: customer=%s, error=%v", customerUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/appointments - %d appointments fetched: customer=%s",
		len(result.Appointments), customerUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
