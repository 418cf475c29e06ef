package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/psqlbuilder"
)

const defaultListLimit = 100

// Колонки бронирования без денормализованных полей
var baseColumns = []string{
	"r.id",
	"r.room_id",
	"r.guest_id",
	"r.start_date",
	"r.end_date",
	"r.status",
	"r.notes",
	"r.checkin_at",
	"r.checkout_at",
	"r.invoiced",
	"r.created_at",
	"r.updated_at",
}

// Колонки с номером комнаты и именем гостя для списков и карточки
var joinedColumns = append(append([]string{}, baseColumns...),
	"rm.number",
	"rm.type",
	"g.name",
)

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectJoined() squirrel.SelectBuilder {
	return psqlbuilder.Select(joinedColumns...).
		From("reservations r").
		Join("rooms rm ON rm.id = r.room_id").
		Join("guests g ON g.id = r.guest_id")
}

// Create создает бронирование
// Пересечение дат, пропущенное проверкой доступности, отсекает exclusion constraint (ErrOverlap)
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"room_id",
			"guest_id",
			"start_date",
			"end_date",
			"status",
			"notes",
			"checkin_at",
		).
		Values(
			res.RoomID,
			res.GuestID,
			res.StartDate,
			res.EndDate,
			res.Status,
			res.Notes,
			res.CheckinAt,
		).
		Suffix("RETURNING id, invoiced, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.Invoiced, &createdAt, &updatedAt)
	if pgerrors.IsExclusionViolation(err) {
		return nil, ErrOverlap
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return res, nil
}

// GetByID получает бронирование с номером комнаты и именем гостя
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectJoined().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanJoined(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// LockByID получает бронирование и блокирует его строку до конца транзакции
// Переходы машины состояний читают бронирование только через этот метод,
// поэтому две конкурирующие операции не проходят проверку на устаревшем статусе
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(baseColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LockByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanBase(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LockByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// List возвращает бронирования, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	qb := selectJoined().
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(limit).
		Offset(filter.Offset)
	if filter.Status != nil {
		qb = qb.Where(squirrel.Eq{"r.status": *filter.Status})
	}
	if filter.RoomID != nil {
		qb = qb.Where(squirrel.Eq{"r.room_id": *filter.RoomID})
	}

	return r.queryJoined(ctx, "List", qb)
}

// ListOverlapping возвращает неотмененные бронирования, пересекающиеся с полуинтервалом q.Range
// Единственное место, где условие пересечения записано на SQL:
// start_date < $end AND end_date > $start AND status <> 'cancelled'
func (r *Repository) ListOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.Reservation, error) {
	qb := selectJoined().
		Where(squirrel.Lt{"r.start_date": q.Range.End}).
		Where(squirrel.Gt{"r.end_date": q.Range.Start}).
		Where(squirrel.NotEq{"r.status": domain.StatusCancelled}).
		OrderBy("r.start_date ASC", "rm.number ASC")
	if q.RoomID != nil {
		qb = qb.Where(squirrel.Eq{"r.room_id": *q.RoomID})
	}
	if q.ExcludeID != nil {
		qb = qb.Where(squirrel.NotEq{"r.id": *q.ExcludeID})
	}

	return r.queryJoined(ctx, "ListOverlapping", qb)
}

// CountOccupiedInRoom количество проживающих (occupied) бронирований в номере, кроме excludeID
func (r *Repository) CountOccupiedInRoom(ctx context.Context, roomID, excludeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID, "status": domain.StatusOccupied}).
		Where(squirrel.NotEq{"id": excludeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOccupiedInRoom - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOccupiedInRoom - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// UpdateStay меняет номер, даты и заметки
func (r *Repository) UpdateStay(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("room_id", res.RoomID).
		Set("start_date", res.StartDate).
		Set("end_date", res.EndDate).
		Set("notes", res.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStay - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "UpdateStay", query, args)
}

// UpdateStatus меняет статус и, если переданы, отметки заселения и выезда
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, checkinAt, checkoutAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ub := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if checkinAt != nil {
		ub = ub.Set("checkin_at", *checkinAt)
	}
	if checkoutAt != nil {
		ub = ub.Set("checkout_at", *checkoutAt)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "UpdateStatus", query, args)
}

// MarkInvoiced выставляет флаг invoiced
func (r *Repository) MarkInvoiced(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("invoiced", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkInvoiced - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "MarkInvoiced", query, args)
}

func (r *Repository) execOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsExclusionViolation(err) {
		return ErrOverlap
	}
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (r *Repository) queryJoined(ctx context.Context, op string, qb squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func baseTargets(res *domain.Reservation, checkinAt, checkoutAt, createdAt, updatedAt *sql.NullTime) []interface{} {
	return []interface{}{
		&res.ID,
		&res.RoomID,
		&res.GuestID,
		&res.StartDate,
		&res.EndDate,
		&res.Status,
		&res.Notes,
		checkinAt,
		checkoutAt,
		&res.Invoiced,
		createdAt,
		updatedAt,
	}
}

func scanBase(row scanner) (*domain.Reservation, error) {
	return scanWith(row, false)
}

func scanJoined(row scanner) (*domain.Reservation, error) {
	return scanWith(row, true)
}

func scanWith(row scanner, joined bool) (*domain.Reservation, error) {
	var res domain.Reservation
	var checkinAt, checkoutAt, createdAt, updatedAt sql.NullTime

	targets := baseTargets(&res, &checkinAt, &checkoutAt, &createdAt, &updatedAt)
	if joined {
		targets = append(targets, &res.RoomNumber, &res.RoomType, &res.GuestName)
	}

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	res.StartDate = domain.Date(res.StartDate)
	res.EndDate = domain.Date(res.EndDate)
	if checkinAt.Valid {
		res.CheckinAt = &checkinAt.Time
	}
	if checkoutAt.Valid {
		res.CheckoutAt = &checkoutAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return &res, nil
}
