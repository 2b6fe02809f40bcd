package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// GetCustomerAppointmentsRequest запрос истории записей клиента
type GetCustomerAppointmentsRequest struct {
	CustomerUserID string `json:"customerUserId"`
}

// GetOwnerDayRequest запрос расписания бизнеса на день
type GetOwnerDayRequest struct {
	OwnerID string    `json:"ownerId"`
	Date    time.Time `json:"date"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string  `json:"id"`
	OwnerID         string  `json:"ownerId"`
	CustomerUserID  string  `json:"customerUserId"`
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	PriceCents      int64   `json:"priceCents"`
	DurationMinutes int     `json:"durationMinutes"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         string  `json:"endTime"`   // производное: start + duration
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		CustomerUserID:  a.CustomerUserID,
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		PriceCents:      a.PriceCents,
		DurationMinutes: a.DurationMinutes,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		CustomerEmail:   a.CustomerEmail,
		CreatedAt:       a.CreatedAt,
	}

	if end, err := a.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if resp := FromDomainAppointment(a); resp != nil {
			result = append(result, *resp)
		}
	}
	return &AppointmentListResponse{Appointments: result}
}
