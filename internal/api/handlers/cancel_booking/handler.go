package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	cancelBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/cancel_booking"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgInconsistentCancel   = "отмена завершилась не полностью, обратитесь в поддержку"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]
	requesterUserID := middleware.UserIDFromContext(r.Context())

	err := h.useCase.Execute(r.Context(), appointmentID, requesterUserID)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: id=%s, user=%s",
				appointmentID, requesterUserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrInconsistentCancellation):
			// Слот освобожден, запись осталась: различимая критическая
			// несогласованность, требует ручной сверки
			h.logger.Error("DELETE /appointments/{id} - INCONSISTENT CANCELLATION, needs reconciliation: id=%s, error=%v",
				appointmentID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInconsistentCancel)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled: id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
