package guest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/psqlbuilder"
)

const defaultListLimit = 50

var columns = []string{
	"id",
	"name",
	"document_number",
	"phone",
	"email",
	"birth_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий гостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает гостя
func (r *Repository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns("name", "document_number", "phone", "email", "birth_date").
		Values(guest.Name, guest.DocumentNumber, guest.Phone, guest.Email, guest.BirthDate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&guest.ID, &createdAt, &updatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrDocumentTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time
	return guest, nil
}

// FindOrCreateByDocument возвращает гостя с номером документа guest.DocumentNumber, создавая его при отсутствии
// Одна команда INSERT ... ON CONFLICT: параллельные бронирования с новым документом получают одного гостя,
// существующий профиль не перезаписывается
func (r *Repository) FindOrCreateByDocument(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	if guest.DocumentNumber == nil {
		return nil, fmt.Errorf("%w: FindOrCreateByDocument - document number is required", ErrBuildQuery)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns("name", "document_number", "phone", "email", "birth_date").
		Values(guest.Name, guest.DocumentNumber, guest.Phone, guest.Email, guest.BirthDate).
		Suffix("ON CONFLICT (document_number) DO UPDATE SET document_number = EXCLUDED.document_number").
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreateByDocument - build insert query: %v", ErrBuildQuery, err)
	}

	resolved, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreateByDocument - execute upsert: %v", ErrExecQuery, err)
	}
	return resolved, nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByDocument получает гостя по номеру документа
func (r *Repository) GetByDocument(ctx context.Context, documentNumber string) (*domain.Guest, error) {
	return r.getOne(ctx, "GetByDocument", squirrel.Eq{"document_number": documentNumber})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("guests").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	guest, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan guest: %v", ErrScanRow, op, err)
	}
	return guest, nil
}

// List ищет гостей по подстроке имени или документа, упорядочивает по имени
func (r *Repository) List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	qb := psqlbuilder.Select(columns...).
		From("guests").
		OrderBy("name ASC", "id ASC").
		Limit(limit).
		Offset(filter.Offset)
	if filter.Query != nil && *filter.Query != "" {
		pattern := "%" + *filter.Query + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"document_number": pattern},
		})
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

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan guest: %v", ErrScanRow, err)
		}
		guests = append(guests, guest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return guests, nil
}

// Update обновляет профиль гостя
func (r *Repository) Update(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guests").
		Set("name", guest.Name).
		Set("document_number", guest.DocumentNumber).
		Set("phone", guest.Phone).
		Set("email", guest.Email).
		Set("birth_date", guest.BirthDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": guest.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrGuestNotFound
	case pgerrors.IsUniqueViolation(err):
		return nil, ErrDocumentTaken
	case err != nil:
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time
	return guest, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanGuest(row scanner) (*domain.Guest, error) {
	var guest domain.Guest
	var birthDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&guest.ID,
		&guest.Name,
		&guest.DocumentNumber,
		&guest.Phone,
		&guest.Email,
		&birthDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if birthDate.Valid {
		guest.BirthDate = &birthDate.Time
	}
	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time
	return &guest, nil
}
