package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/pkg/psqlbuilder"
	"github.com/silkebeauty/SB-BookingService/pkg/txmanager"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"booking_date",
	"start_time",
	"name",
	"email",
	"phone",
	"services",
	"created_at",
}

// Repository PostgreSQL-репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// Если в контексте передана активная транзакция (через txmanager), использует её -
// admission выполняет проверку вместимости и запись в одной сериализуемой транзакции
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"booking_date",
			"start_time",
			"name",
			"email",
			"phone",
			"services",
		).
		Values(
			b.ID,
			b.Date,
			b.Time,
			b.Name,
			b.Email,
			b.Phone,
			pq.Array(b.Services),
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// GetByDate получает все бронирования на указанную дату,
// отсортированные по времени начала
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": dateOnly(date)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountForSlot подсчитывает бронирования на конкретный слот (date, time)
// Внутри транзакции блокирует строки слота (FOR UPDATE), чтобы конкурентные
// admission-запросы на один слот выполнялись последовательно
func (r *Repository) CountForSlot(ctx context.Context, date time.Time, startTime string) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if txmanager.IsInTransaction(ctx) {
		// COUNT(*) не блокирует строки, поэтому под транзакцией сначала
		// захватываем строки слота через SELECT ... FOR UPDATE
		lockQuery, lockArgs, err := psqlbuilder.Select("id").
			From("bookings").
			Where(squirrel.Eq{"booking_date": dateOnly(date), "start_time": startTime}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: CountForSlot - build lock query: %v", ErrBuildQuery, err)
		}

		rows, err := executor.QueryContext(ctx, lockQuery, lockArgs...)
		if err != nil {
			return 0, fmt.Errorf("%w: CountForSlot - execute lock query: %v", ErrExecQuery, err)
		}

		count := 0
		for rows.Next() {
			count++
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return 0, fmt.Errorf("%w: CountForSlot - iterate locked rows: %v", ErrScanRow, err)
		}
		rows.Close()

		return count, nil
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"booking_date": dateOnly(date), "start_time": startTime}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountForSlot - build count query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForSlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// DeleteByID удаляет бронирование по ID
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteOlderThan удаляет бронирования с датой строго раньше cutoff
// Удаление чанками по batchSize строк, чтобы ограничить размер одной записи WAL
// Возвращает общее количество удаленных строк
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	// У DELETE в PostgreSQL нет LIMIT - ограничиваем через подзапрос по id
	query := fmt.Sprintf(
		"DELETE FROM bookings WHERE id IN (SELECT id FROM bookings WHERE booking_date < $1 LIMIT %d)",
		batchSize,
	)

	var total int64
	for {
		result, err := executor.ExecContext(ctx, query, dateOnly(cutoff))
		if err != nil {
			return total, fmt.Errorf("%w: DeleteOlderThan - execute delete batch: %v", ErrExecQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("%w: DeleteOlderThan - rows affected: %v", ErrExecQuery, err)
		}

		total += affected
		if affected < int64(batchSize) {
			return total, nil
		}
	}
}

// scanBookings сканирует строки результата в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime
		var services pq.StringArray

		err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.Time,
			&b.Name,
			&b.Email,
			&b.Phone,
			&services,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.Services = []string(services)
		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// dateOnly обнуляет время, чтобы колонка DATE сравнивалась корректно
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
