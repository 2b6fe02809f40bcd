package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// NewID выдает новый идентификатор записи (до вставки)
	NewID() string
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// SlotRepository интерфейс хранилища занятых интервалов
type SlotRepository interface {
	GetByOwnerAndDate(ctx context.Context, ownerID string, date time.Time) ([]*domain.BookedInterval, error)
	Create(ctx context.Context, interval *domain.BookedInterval) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
