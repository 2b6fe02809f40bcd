package get_business_hours

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	OwnerID                string `json:"ownerId"`
	OpeningTime            string `json:"openingTime"`
	ClosingTime            string `json:"closingTime"`
	SlotGranularityMinutes int    `json:"slotGranularityMinutes"`
	Timezone               string `json:"timezone"`
}

// FromBusinessHours собирает response из конфигурации бизнеса
func FromBusinessHours(ownerID string, hours domain.BusinessHours, timezone string) *BusinessHoursResponse {
	return &BusinessHoursResponse{
		OwnerID:                ownerID,
		OpeningTime:            hours.OpeningTime.String(),
		ClosingTime:            hours.ClosingTime.String(),
		SlotGranularityMinutes: hours.SlotGranularityMinutes,
		Timezone:               timezone,
	}
}
