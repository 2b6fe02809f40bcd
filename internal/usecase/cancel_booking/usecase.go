package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	slotRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/slot"
)

// UseCase use case отмены записи.
//
// Порядок удаления фиксированный: сначала занятый интервал, потом запись.
// Пока интервал существует, слот остается занят — если удаление интервала
// не удалось, запись не трогаем, состояние осталось целостным. Обратный
// порядок оставил бы интервал без владельца навсегда.
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        SlotRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		logger:          logger,
	}
}

// Execute выполняет отмену записи по идентификатору.
// Отменить запись может только её клиент или бизнес-владелец.
func (uc *UseCase) Execute(ctx context.Context, appointmentID, requesterUserID string) error {
	uc.logger.Info("CancelBooking: appointment=%s, requester=%s", appointmentID, requesterUserID)

	if strings.TrimSpace(appointmentID) == "" {
		uc.logger.Warn("CancelBooking: empty appointment id")
		return fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(requesterUserID) == "" {
		uc.logger.Warn("CancelBooking: empty requester id")
		return fmt.Errorf("%w: requesterUserID is required", ErrInvalidInput)
	}

	// 1. Запись должна существовать
	appt, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelBooking: appointment id=%s not found", appointmentID)
			return ErrAppointmentNotFound
		}
		uc.logger.Error("CancelBooking: failed to get appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 2. Доступ: сам клиент или бизнес-владелец записи
	if appt.CustomerUserID != requesterUserID && appt.OwnerID != requesterUserID {
		uc.logger.Warn("CancelBooking: access denied for user=%s to appointment id=%s",
			requesterUserID, appointmentID)
		return ErrAccessDenied
	}

	// 3. Сначала удаляем интервал. При ошибке запись НЕ удаляем.
	if err := uc.slotRepo.DeleteByAppointmentID(ctx, appointmentID); err != nil {
		if errors.Is(err, slotRepo.ErrIntervalNotFound) {
			// Интервала уже нет — осиротевшая запись после частичного
			// бронирования. Отмена и есть компенсирующее действие,
			// продолжаем удаление самой записи.
			uc.logger.Warn("CancelBooking: no interval for appointment id=%s, deleting orphaned appointment",
				appointmentID)
		} else {
			uc.logger.Error("CancelBooking: failed to delete interval for appointment id=%s: %v",
				appointmentID, err)
			return fmt.Errorf("%w: failed to delete interval: %v", ErrInternal, err)
		}
	}

	// 4. Интервал освобожден — удаляем запись
	if err := uc.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		// Слот уже свободен, а запись осталась: различимая критическая
		// несогласованность, не обычная ошибка
		uc.logger.Error("CancelBooking: interval deleted but appointment id=%s delete failed: %v",
			appointmentID, err)
		return fmt.Errorf("%w: appointment id=%s: %v", ErrInconsistentCancellation, appointmentID, err)
	}

	uc.logger.Info("CancelBooking: successfully cancelled appointment id=%s", appointmentID)
	return nil
}
