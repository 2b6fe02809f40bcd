package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OwnerID         string  `json:"ownerId,omitempty"` // пусто = бизнес по умолчанию
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	PriceCents      int64   `json:"priceCents"`
	DurationMinutes int     `json:"durationMinutes"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	OwnerID         string  `json:"ownerId"`
	CustomerUserID  string  `json:"customerUserId"`
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	PriceCents      int64   `json:"priceCents"`
	DurationMinutes int     `json:"durationMinutes"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// customerUserID берется из заголовка аутентификации, не из тела.
// Дата парсится в таймзоне бизнеса.
func (r *CreateBookingRequest) ToUseCaseRequest(customerUserID string, location *time.Location) (*createBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, location)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OwnerID:         r.OwnerID,
		CustomerUserID:  customerUserID,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
		Date:            date,
		StartTime:       startTime,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		OwnerID:         resp.OwnerID,
		CustomerUserID:  resp.CustomerUserID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		PriceCents:      resp.PriceCents,
		DurationMinutes: resp.DurationMinutes,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerEmail:   resp.CustomerEmail,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
