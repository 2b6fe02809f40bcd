package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	OwnerID        string           // ID бизнеса
	CustomerUserID string           // ID клиента
	ServiceID      string           // ID услуги
	ServiceName    string           // Название услуги (денормализация)
	PriceCents     int64            // Цена услуги в копейках
	DurationMinutes int              // Длительность услуги в минутах
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала (например, "10:00")
	CustomerName   string           // Имя клиента (обязательно)
	CustomerPhone  string           // Телефон клиента (обязательно)
	CustomerEmail  *string          // Email клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string           // ID созданной записи
	OwnerID         string           // ID бизнеса
	CustomerUserID  string           // ID клиента
	ServiceID       string           // ID услуги
	ServiceName     string           // Название услуги
	PriceCents      int64            // Цена в копейках
	DurationMinutes int              // Длительность в минутах
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца (производное)
	CustomerName    string           // Имя клиента
	CustomerPhone   string           // Телефон клиента
	CustomerEmail   *string          // Email клиента
	CreatedAt       time.Time        // Время создания (выставляет БД)
}
