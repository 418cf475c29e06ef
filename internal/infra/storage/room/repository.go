package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"number",
	"type",
	"capacity",
	"base_rate",
	"state",
	"created_at",
	"updated_at",
}

// Repository репозиторий номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id}, false)
}

// GetByNumber получает номер по его номеру на двери
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return r.getOne(ctx, "GetByNumber", squirrel.Eq{"number": number}, false)
}

// LockByID получает номер и блокирует строку до конца транзакции (SELECT ... FOR UPDATE)
// Все операции, назначающие номер на даты, берут эту блокировку перед проверкой пересечений,
// поэтому конкурирующие запросы на один номер выполняются последовательно
// Вне транзакции блокировка снимается сразу и смысла не имеет
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, "LockByID", squirrel.Eq{"id": id}, true)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer, forUpdate bool) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	qb := psqlbuilder.Select(columns...).
		From("rooms").
		Where(where)
	if forUpdate {
		qb = qb.Suffix("FOR UPDATE")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
	}

	return room, nil
}

// List возвращает номера по фильтру, упорядоченные по числовому значению номера
func (r *Repository) List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	qb := psqlbuilder.Select(columns...).From("rooms")
	if filter.Type != nil {
		qb = qb.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.State != nil {
		qb = qb.Where(squirrel.Eq{"state": *filter.State})
	}
	if filter.BookableOnly {
		qb = qb.Where(squirrel.NotEq{"state": []domain.RoomState{domain.RoomMaintenance, domain.RoomOutOfService}})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	// Номера хранятся строками, порядок 2 < 10 < 101 делаем в Go
	domain.SortRoomsByNumber(rooms)

	return rooms, nil
}

// UpdateState меняет физическое состояние номера
func (r *Repository) UpdateState(ctx context.Context, id int64, state domain.RoomState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row scanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Type,
		&room.Capacity,
		&room.BaseRate,
		&room.State,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time
	return &room, nil
}
