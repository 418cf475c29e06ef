package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/psqlbuilder"
)

var invoiceColumns = []string{
	"id",
	"reservation_id",
	"issue_date",
	"total",
	"status",
	"created_at",
}

var lineColumns = []string{
	"id",
	"invoice_id",
	"reservation_id",
	"kind",
	"description",
	"quantity",
	"unit_price",
	"line_total",
	"created_at",
}

// Repository репозиторий счетов и строк счетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает счет; второй счет на то же бронирование отклоняет уникальный индекс
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns("reservation_id", "issue_date", "total", "status").
		Values(inv.ReservationID, inv.IssueDate, inv.Total, inv.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &createdAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrInvoiceExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time
	return inv, nil
}

// GetByID получает счет без строк
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id}, false)
}

// GetByReservationID получает счет бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error) {
	return r.getOne(ctx, "GetByReservationID", squirrel.Eq{"reservation_id": reservationID}, false)
}

// LockByReservationID получает счет бронирования и блокирует его строку
// Изменения total выполняются только под этой блокировкой
func (r *Repository) LockByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error) {
	return r.getOne(ctx, "LockByReservationID", squirrel.Eq{"reservation_id": reservationID}, true)
}

// LockByID получает счет и блокирует его строку
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return r.getOne(ctx, "LockByID", squirrel.Eq{"id": id}, true)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer, forUpdate bool) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	qb := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		Where(where)
	if forUpdate {
		qb = qb.Suffix("FOR UPDATE")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	inv, err := scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan invoice: %v", ErrScanRow, op, err)
	}
	return inv, nil
}

// List возвращает счета, выставленные в диапазоне дат [From, To], новые первыми
func (r *Repository) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	qb := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		OrderBy("issue_date DESC", "id DESC")
	if filter.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"issue_date": *filter.From})
	}
	if filter.To != nil {
		qb = qb.Where(squirrel.LtOrEq{"issue_date": *filter.To})
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

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan invoice: %v", ErrScanRow, err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}
	return invoices, nil
}

// IncrementTotal атомарно увеличивает total и возвращает новое значение
func (r *Repository) IncrementTotal(ctx context.Context, id int64, delta domain.Money) (domain.Money, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoices").
		Set("total", squirrel.Expr("total + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING total").
		ToSql()
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: IncrementTotal - build update query: %v", ErrBuildQuery, err)
	}

	var total domain.Money
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Money{}, ErrInvoiceNotFound
	}
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: IncrementTotal - execute update: %v", ErrExecQuery, err)
	}
	return total, nil
}

// SetTotal перезаписывает total (сверка с суммой строк)
func (r *Repository) SetTotal(ctx context.Context, id int64, total domain.Money) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoices").
		Set("total", total).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetTotal - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetTotal - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetTotal - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// AddLine добавляет строку; InvoiceID == nil - начисление до выставления счета
func (r *Repository) AddLine(ctx context.Context, line *domain.InvoiceLine) (*domain.InvoiceLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoice_lines").
		Columns("invoice_id", "reservation_id", "kind", "description", "quantity", "unit_price", "line_total").
		Values(line.InvoiceID, line.ReservationID, line.Kind, line.Description, line.Quantity, line.UnitPrice, line.LineTotal).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddLine - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&line.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddLine - execute insert: %v", ErrExecQuery, err)
	}

	line.CreatedAt = createdAt.Time
	return line, nil
}

// ListLines возвращает строки счета в порядке добавления
func (r *Repository) ListLines(ctx context.Context, invoiceID int64) ([]*domain.InvoiceLine, error) {
	return r.queryLines(ctx, "ListLines", squirrel.Eq{"invoice_id": invoiceID})
}

// ListPendingLines возвращает начисления бронирования, еще не привязанные к счету
func (r *Repository) ListPendingLines(ctx context.Context, reservationID int64) ([]*domain.InvoiceLine, error) {
	return r.queryLines(ctx, "ListPendingLines", squirrel.Eq{"reservation_id": reservationID, "invoice_id": nil})
}

// AttachPendingLines привязывает ранее сделанные начисления бронирования к счету
func (r *Repository) AttachPendingLines(ctx context.Context, reservationID, invoiceID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoice_lines").
		Set("invoice_id", invoiceID).
		Where(squirrel.Eq{"reservation_id": reservationID, "invoice_id": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: AttachPendingLines - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: AttachPendingLines - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: AttachPendingLines - rows affected: %v", ErrExecQuery, err)
	}
	return affected, nil
}

func (r *Repository) queryLines(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.InvoiceLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(lineColumns...).
		From("invoice_lines").
		Where(where).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	lines := make([]*domain.InvoiceLine, 0)
	for rows.Next() {
		var line domain.InvoiceLine
		var invoiceID sql.NullInt64
		var createdAt sql.NullTime
		err := rows.Scan(
			&line.ID,
			&invoiceID,
			&line.ReservationID,
			&line.Kind,
			&line.Description,
			&line.Quantity,
			&line.UnitPrice,
			&line.LineTotal,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan line: %v", ErrScanRow, op, err)
		}
		if invoiceID.Valid {
			line.InvoiceID = &invoiceID.Int64
		}
		line.CreatedAt = createdAt.Time
		lines = append(lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}
	return lines, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row scanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var createdAt sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.ReservationID,
		&inv.IssueDate,
		&inv.Total,
		&inv.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	inv.IssueDate = domain.Date(inv.IssueDate)
	inv.CreatedAt = createdAt.Time
	return &inv, nil
}
