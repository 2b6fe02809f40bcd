package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Код ошибки postgres при нарушении уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий занятых интервалов.
// Таблица booked_intervals несет UNIQUE (owner_id, slot_date, start_at):
// вставка конкурирующего интервала с тем же началом отбивается самой БД,
// а не только проверкой в usecase.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория интервалов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByOwnerAndDate получает все занятые интервалы бизнеса на дату,
// по возрастанию времени начала.
// Внутри транзакции добавляет FOR UPDATE: создание брони читает день
// с блокировкой, чтобы конкурирующая вставка дождалась завершения.
func (r *Repository) GetByOwnerAndDate(ctx context.Context, ownerID string, date time.Time) ([]*domain.BookedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"owner_id",
		"appointment_id",
		"slot_date",
		"start_at",
		"end_at",
	).
		From("booked_intervals").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]*domain.BookedInterval, 0)
	for rows.Next() {
		var interval domain.BookedInterval
		if err := rows.Scan(
			&interval.OwnerID,
			&interval.AppointmentID,
			&interval.Date,
			&interval.Start,
			&interval.End,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByOwnerAndDate - scan row: %w", ErrScanRow, err)
		}
		intervals = append(intervals, &interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerAndDate - rows error: %w", ErrScanRow, err)
	}

	return intervals, nil
}

// Create вставляет занятый интервал.
// При коллизии по (owner_id, slot_date, start_at) возвращает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, interval *domain.BookedInterval) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booked_intervals").
		Columns(
			"owner_id",
			"appointment_id",
			"slot_date",
			"start_at",
			"end_at",
		).
		Values(
			interval.OwnerID,
			interval.AppointmentID,
			interval.Date,
			interval.Start,
			interval.End,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// DeleteByAppointmentID удаляет интервал, принадлежащий записи
func (r *Repository) DeleteByAppointmentID(ctx context.Context, appointmentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booked_intervals").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointmentID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointmentID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointmentID - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrIntervalNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
