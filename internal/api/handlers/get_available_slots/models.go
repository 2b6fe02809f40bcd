package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	OwnerID                string   `json:"ownerId"`
	Date                   string   `json:"date"`
	ServiceDurationMinutes int      `json:"serviceDurationMinutes"`
	Slots                  []string `json:"slots"` // времена начала "HH:MM", по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response, dateFormat string) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		OwnerID:                resp.OwnerID,
		Date:                   resp.Date.Format(dateFormat),
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		Slots:                  slots,
	}
}
