package movement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"reservation_id",
	"kind",
	"method",
	"amount",
	"reference",
	"created_at",
}

// Repository репозиторий депозитов и платежей (таблица payments)
// Движения только добавляются, изменение и удаление не поддерживаются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория движений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет движение
func (r *Repository) Create(ctx context.Context, m *domain.Movement) (*domain.Movement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("reservation_id", "kind", "method", "amount", "reference").
		Values(m.ReservationID, m.Kind, m.Method, m.Amount, m.Reference).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	return m, nil
}

// ListByReservation возвращает движения бронирования в хронологическом порядке
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Movement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("payments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	movements := make([]*domain.Movement, 0)
	for rows.Next() {
		var m domain.Movement
		var createdAt sql.NullTime
		err := rows.Scan(
			&m.ID,
			&m.ReservationID,
			&m.Kind,
			&m.Method,
			&m.Amount,
			&m.Reference,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan movement: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - iterate rows: %v", ErrScanRow, err)
	}

	return movements, nil
}
