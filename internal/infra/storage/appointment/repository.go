package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/txmanager"
)

// Коды ошибок PostgreSQL
const (
	pgCodeExclusionViolation   = "23P01"
	pgCodeSerializationFailure = "40001"
)

// Repository реализация booking ledger поверх PostgreSQL
// Финальный арбитраж конфликтов обеспечивается exclusion constraint
// на пересечение интервалов (см. migrations), check-then-act внутри
// сериализуемой транзакции сужает окно гонки до нуля в рамках одной БД
type Repository struct {
	db  DBExecutor
	txm TransactionManager
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, txm TransactionManager) *Repository {
	return &Repository{db: db, txm: txm}
}

// ListBookings возвращает бронирования, пересекающиеся с окном [timeMin, timeMax),
// упорядоченные по времени начала
func (r *Repository) ListBookings(ctx context.Context, timeMin, timeMax time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"event_id",
		"customer_name",
		"customer_phone",
		"service_name",
		"staff_name",
		"start_at",
		"duration_minutes",
		"notes",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Lt{"start_at": timeMax}).
		Where(squirrel.Expr("start_at + make_interval(mins => duration_minutes) > ?", timeMin)).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.mapExecError("ListBookings", err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CreateBooking создает бронирование и возвращает присвоенный eventID
// Проверка пересечений выполняется внутри сериализуемой транзакции,
// exclusion constraint БД остаётся финальным арбитром при гонке
func (r *Repository) CreateBooking(ctx context.Context, appt *domain.Appointment) (string, error) {
	eventID := uuid.NewString()

	err := r.txm.DoSerializable(ctx, func(txCtx context.Context) error {
		booked, err := r.ListBookings(txCtx, appt.Start, appt.End())
		if err != nil {
			return err
		}
		if domain.HasConflict(appt.Start, appt.DurationMinutes, booked, "") {
			return ledger.ErrEventConflict
		}

		executor := txmanager.GetExecutor(txCtx, r.db)

		query, args, err := psqlbuilder.Insert("appointments").
			Columns(
				"event_id",
				"customer_name",
				"customer_phone",
				"service_name",
				"staff_name",
				"start_at",
				"duration_minutes",
				"notes",
			).
			Values(
				eventID,
				appt.CustomerName,
				appt.CustomerPhone,
				appt.ServiceName,
				appt.StaffName,
				appt.Start,
				appt.DurationMinutes,
				appt.Notes,
			).
			Suffix("RETURNING created_at").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: CreateBooking - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt sql.NullTime
		if err := executor.QueryRowContext(txCtx, query, args...).Scan(&createdAt); err != nil {
			return r.mapExecError("CreateBooking", err)
		}

		appt.CreatedAt = createdAt.Time
		return nil
	})

	if err != nil {
		return "", err
	}

	appt.EventID = eventID
	return eventID, nil
}

// FindBookingsByPhone возвращает будущие бронирования клиента по номеру телефона
// в пределах horizonDays дней, упорядоченные по времени начала
func (r *Repository) FindBookingsByPhone(ctx context.Context, phone string, horizonDays int) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"event_id",
		"customer_name",
		"customer_phone",
		"service_name",
		"staff_name",
		"start_at",
		"duration_minutes",
		"notes",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"customer_phone": phone}).
		Where(squirrel.Expr("start_at >= now()")).
		Where(squirrel.Expr("start_at < now() + make_interval(days => ?)", horizonDays)).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindBookingsByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.mapExecError("FindBookingsByPhone", err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// DeleteBooking удаляет бронирование по eventID
func (r *Repository) DeleteBooking(ctx context.Context, eventID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return r.mapExecError("DeleteBooking", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ledger.ErrEventNotFound
	}

	return nil
}

// UpdateBooking переносит бронирование на новое время
// Проверка пересечений (без учёта самого переносимого бронирования)
// выполняется внутри сериализуемой транзакции
func (r *Repository) UpdateBooking(ctx context.Context, eventID string, newStart time.Time, newDurationMinutes int) error {
	return r.txm.DoSerializable(ctx, func(txCtx context.Context) error {
		newEnd := newStart.Add(time.Duration(newDurationMinutes) * time.Minute)

		booked, err := r.ListBookings(txCtx, newStart, newEnd)
		if err != nil {
			return err
		}
		if domain.HasConflict(newStart, newDurationMinutes, booked, eventID) {
			return ledger.ErrEventConflict
		}

		executor := txmanager.GetExecutor(txCtx, r.db)

		query, args, err := psqlbuilder.Update("appointments").
			Set("start_at", newStart).
			Set("duration_minutes", newDurationMinutes).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"event_id": eventID}).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: UpdateBooking - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(txCtx, query, args...)
		if err != nil {
			return r.mapExecError("UpdateBooking", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: UpdateBooking - rows affected: %v", ErrExecQuery, err)
		}
		if affected == 0 {
			return ledger.ErrEventNotFound
		}

		return nil
	})
}

// scanAppointments читает список бронирований из результата запроса
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		if err := rows.Scan(
			&appt.EventID,
			&appt.CustomerName,
			&appt.CustomerPhone,
			&appt.ServiceName,
			&appt.StaffName,
			&appt.Start,
			&appt.DurationMinutes,
			&appt.Notes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// mapExecError классифицирует ошибку выполнения запроса по таксономии ledger
func (r *Repository) mapExecError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgCodeExclusionViolation, pgCodeSerializationFailure:
			// Пересечение интервалов или проигранная сериализуемая гонка -
			// с точки зрения вызывающего это конфликт записи
			return fmt.Errorf("%w: %s: %v", ledger.ErrEventConflict, op, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", ledger.ErrUnavailable, op, err)
	}

	return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
}
