package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler отдает рабочие часы бизнеса.
// Часы — read-only конфигурация процесса, поэтому handler не ходит
// ни в какое хранилище.
type Handler struct {
	ownerID  string
	hours    domain.BusinessHours
	timezone string
	logger   Logger
}

func NewHandler(ownerID string, hours domain.BusinessHours, timezone string, logger Logger) *Handler {
	return &Handler{
		ownerID:  ownerID,
		hours:    hours,
		timezone: timezone,
		logger:   logger,
	}
}

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /business-hours - Business hours fetched: owner=%s", h.ownerID)
	handlers.RespondJSON(w, http.StatusOK, FromBusinessHours(h.ownerID, h.hours, h.timezone))
}
