package clock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/psqlbuilder"
)

// Repository хранилище операционной даты (единственная строка operational_clock)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория операционной даты
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает текущую операционную дату
func (r *Repository) Get(ctx context.Context) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("business_date").
		From("operational_clock").
		Where(squirrel.Eq{"id": domain.ClockID}).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDate(executor.QueryRowContext(ctx, query, args...), "Get")
}

// Set устанавливает операционную дату
func (r *Repository) Set(ctx context.Context, date time.Time) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("operational_clock").
		Set("business_date", domain.Date(date)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": domain.ClockID}).
		Suffix("RETURNING business_date").
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Set - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanDate(executor.QueryRowContext(ctx, query, args...), "Set")
}

// Advance сдвигает операционную дату ровно на один день (закрытие дня)
func (r *Repository) Advance(ctx context.Context) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("operational_clock").
		Set("business_date", squirrel.Expr("business_date + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": domain.ClockID}).
		Suffix("RETURNING business_date").
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Advance - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanDate(executor.QueryRowContext(ctx, query, args...), "Advance")
}

func (r *Repository) scanDate(row *sql.Row, op string) (time.Time, error) {
	var date time.Time
	err := row.Scan(&date)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrClockNotInitialized
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s - scan business date: %v", ErrExecQuery, op, err)
	}
	return domain.Date(date), nil
}
