package create_booking

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidTimeSlot    = "временной слот вне рабочих часов или не по сетке"
	msgInvalidBookingDate = "некорректная дата записи"
	msgPartialBooking     = "запись создана не полностью, обратитесь в поддержку"
)

type Handler struct {
	useCase        CreateBookingUseCase
	defaultOwnerID string
	location       *time.Location
	logger         Logger
}

func NewHandler(useCase CreateBookingUseCase, defaultOwnerID string, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		defaultOwnerID: defaultOwnerID,
		location:       location,
		logger:         logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.OwnerID) == "" {
		req.OwnerID = h.defaultOwnerID
	}

	customerUserID := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(customerUserID, h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: owner=%s, date=%s, time=%s",
				req.OwnerID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: owner=%s, time=%s", req.OwnerID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: owner=%s, date=%s", req.OwnerID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrTimeConversion):
			h.logger.Warn("POST /appointments - Time conversion failed: owner=%s: %v", req.OwnerID, err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: owner=%s: %v", req.OwnerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrPartialBooking):
			// Запись без интервала: обычный ретрай клиента это не чинит,
			// логируем как критическую несогласованность
			h.logger.Error("POST /appointments - PARTIAL BOOKING, needs reconciliation: owner=%s, customer=%s, error=%v",
				req.OwnerID, customerUserID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialBooking)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: owner=%s, customer=%s, error=%v",
				req.OwnerID, customerUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, owner=%s, customer=%s",
		result.ID, result.OwnerID, customerUserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
