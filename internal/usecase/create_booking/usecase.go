package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	slotRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/slot"
)

// Код ошибки postgres при сбое сериализации конкурентных транзакций
const pgSerializationFailure = "40001"

// UseCase use case создания записи на прием.
// Двухшаговая запись (appointment, затем booked_interval) выполняется внутри
// сериализуемой транзакции с защитной перепроверкой занятости; коллизию по
// одинаковому началу дополнительно отбивает уникальный индекс в БД.
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        SlotRepository
	hours           domain.BusinessHours
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo SlotRepository,
	hours domain.BusinessHours,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		hours:           hours,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%s, customer=%s, service=%s, date=%s, time=%s",
		req.OwnerID, req.CustomerUserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных — без побочных эффектов, хранилище не трогаем
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем интервал кандидата: [start, start + duration)
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: time conversion failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrTimeConversion, err)
	}

	candidate, err := domain.NewTimeRange(req.StartTime, endTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid candidate interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrTimeConversion, err)
	}

	// 3. Интервал должен лежать в рабочих часах и попадать в сетку слотов
	if err := validateSlotWithinHours(candidate, uc.hours); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 4. Чтение занятости и двухшаговая запись — в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем занятые интервалы дня (внутри транзакции — FOR UPDATE)
		booked, err := uc.slotRepo.GetByOwnerAndDate(txCtx, req.OwnerID, req.Date)
		if err != nil {
			// Конфликт сериализации возвращаем как есть: транзакция
			// откатывается целиком, менеджер её повторит
			if isSerializationConflict(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to get booked intervals: %v", err)
			return fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
		}

		// 4.2. Защитная перепроверка: кандидат все еще свободен
		if !isIntervalFree(candidate, booked) {
			uc.logger.Warn("CreateBooking: slot %s-%s already taken for owner=%s",
				candidate.Start, candidate.End, req.OwnerID)
			return ErrSlotNotAvailable
		}

		// 4.3. Шаг 1: выдаем идентификатор записи
		id := uc.appointmentRepo.NewID()

		appt := &domain.Appointment{
			ID:              id,
			OwnerID:         req.OwnerID,
			CustomerUserID:  req.CustomerUserID,
			ServiceID:       req.ServiceID,
			ServiceName:     req.ServiceName,
			PriceCents:      req.PriceCents,
			DurationMinutes: req.DurationMinutes,
			Date:            req.Date,
			StartTime:       req.StartTime,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
		}

		// 4.4. Шаг 2: пишем запись. При ошибке интервал не трогаем вообще.
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if isSerializationConflict(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 4.5. Шаг 3: пишем занятый интервал со ссылкой на запись
		interval, err := created.Interval()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTimeConversion, err)
		}

		if err := uc.slotRepo.Create(txCtx, interval); err != nil {
			if errors.Is(err, slotRepo.ErrSlotTaken) {
				// Конкурентная бронь выиграла гонку: уникальный индекс отбил
				// вставку, транзакция откатит запись appointment
				uc.logger.Warn("CreateBooking: lost slot race for owner=%s, start=%s",
					req.OwnerID, req.StartTime)
				return ErrSlotNotAvailable
			}
			if isSerializationConflict(err) {
				// Под SERIALIZABLE конфликт может прийти как 40001 вместо
				// 23505. Транзакция откатывается целиком, частичного
				// состояния нет — это проигрыш гонки, не частичная бронь
				uc.logger.Warn("CreateBooking: serialization conflict for owner=%s, start=%s",
					req.OwnerID, req.StartTime)
				return err
			}
			// Запись создана, интервал — нет. Осиротевшая запись не держит слот:
			// это состояние различимой ошибки, которую разруливает вызывающий
			// слой, а не тихий ретрай здесь.
			uc.logger.Error("CreateBooking: appointment id=%s written, interval write failed: %v",
				created.ID, err)
			return fmt.Errorf("%w: appointment id=%s: %v", ErrPartialBooking, created.ID, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт пережил все повторы менеджера транзакций: слот
		// стабильно занят конкурентами
		if isSerializationConflict(err) {
			uc.logger.Warn("CreateBooking: serialization conflict exhausted retries for owner=%s, start=%s",
				req.OwnerID, req.StartTime)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%s", result.ID)

	end, err := result.EndTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeConversion, err)
	}

	return &Response{
		ID:              result.ID,
		OwnerID:         result.OwnerID,
		CustomerUserID:  result.CustomerUserID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		PriceCents:      result.PriceCents,
		DurationMinutes: result.DurationMinutes,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         end,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		CustomerEmail:   result.CustomerEmail,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// isSerializationConflict распознает сбой сериализации postgres (40001)
// в цепочке ошибок
func isSerializationConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure
	}
	return false
}
