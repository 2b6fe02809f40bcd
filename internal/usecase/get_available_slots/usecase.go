package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case для получения свободных слотов на день
type UseCase struct {
	slotRepo     SlotRepository
	hours        domain.BusinessHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Состояние не кэшируется: каждый вызов заново читает занятые интервалы,
// потому что между вызовами появляются новые брони.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: owner=%s, date=%s, duration=%d",
		req.OwnerID, req.Date.Format(domain.DateFormat), req.ServiceDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем занятые интервалы на дату
	booked, err := uc.slotRepo.GetByOwnerAndDate(ctx, req.OwnerID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
	}

	// 4. Вычисляем свободные времена начала
	slots, err := generateFreeSlots(uc.hours, req.ServiceDurationMinutes, booked)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: slot generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for owner=%s, date=%s",
		len(slots), req.OwnerID, req.Date.Format(domain.DateFormat))

	return &Response{
		OwnerID:                req.OwnerID,
		Date:                   req.Date,
		ServiceDurationMinutes: req.ServiceDurationMinutes,
		Slots:                  slots,
	}, nil
}
