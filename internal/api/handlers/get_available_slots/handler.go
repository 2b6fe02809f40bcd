package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "параметр date обязателен, ожидается YYYY-MM-DD"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "параметр durationMinutes должен быть положительным числом"
	msgDateInPast      = "дата не может быть в прошлом"
)

type Handler struct {
	useCase        GetAvailableSlotsUseCase
	defaultOwnerID string
	location       *time.Location
	logger         Logger
}

// NewHandler создает handler свободных слотов.
// defaultOwnerID подставляется, когда клиент не указал ownerId явно
// (сервис обслуживает один бизнес). Даты интерпретируются в таймзоне бизнеса.
func NewHandler(useCase GetAvailableSlotsUseCase, defaultOwnerID string, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		defaultOwnerID: defaultOwnerID,
		location:       location,
		logger:         logger,
	}
}

// Handle GET /api/v1/available-slots?ownerId=&date=YYYY-MM-DD&durationMinutes=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ownerID := strings.TrimSpace(query.Get("ownerId"))
	if ownerID == "" {
		ownerID = h.defaultOwnerID
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid durationMinutes %q: %v", query.Get("durationMinutes"), err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		OwnerID:                ownerID,
		Date:                   date,
		ServiceDurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /available-slots - Invalid duration: owner=%s, duration=%d", ownerID, duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date in past: owner=%s, date=%s", ownerID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: owner=%s: %v", ownerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed: owner=%s, date=%s, error=%v", ownerID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots returned: owner=%s, date=%s",
		len(result.Slots), ownerID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, domain.DateFormat))
}
