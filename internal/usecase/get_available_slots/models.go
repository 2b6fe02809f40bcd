package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	OwnerID                string    // ID бизнеса
	Date                   time.Time // Дата, на которую запрашиваются слоты (без времени)
	ServiceDurationMinutes int       // Длительность услуги в минутах
}

// Response модель ответа со списком свободных времен начала
type Response struct {
	OwnerID                string             // ID бизнеса
	Date                   time.Time          // Дата, на которую запрашивались слоты
	ServiceDurationMinutes int                // Длительность услуги
	Slots                  []types.TimeString // Свободные времена начала, по возрастанию
}
