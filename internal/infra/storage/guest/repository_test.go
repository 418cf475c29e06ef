package guest

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelFrontDesk/internal/domain"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO guests (name,document_number,phone,email,birth_date) VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at, updated_at")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	g, err := repo.Create(context.Background(), &domain.Guest{Name: "Ana Ruiz", DocumentNumber: ptr.Ptr("X1")})
	require.NoError(t, err)
	assert.Equal(t, int64(11), g.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateDocument(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO guests").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Guest{Name: "Ana", DocumentNumber: ptr.Ptr("X1")})
	assert.ErrorIs(t, err, ErrDocumentTaken)
}

func TestRepository_FindOrCreateByDocument(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO guests (name,document_number,phone,email,birth_date) VALUES ($1,$2,$3,$4,$5) "+
		"ON CONFLICT (document_number) DO UPDATE SET document_number = EXCLUDED.document_number "+
		"RETURNING id, name, document_number, phone, email, birth_date, created_at, updated_at")).
		WithArgs("Ana R.", "X1", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(11, "Ana Ruiz", "X1", "+34 600", nil, nil, now, now))

	g, err := repo.FindOrCreateByDocument(context.Background(), &domain.Guest{Name: "Ana R.", DocumentNumber: ptr.Ptr("X1")})
	require.NoError(t, err)
	assert.Equal(t, int64(11), g.ID)
	assert.Equal(t, "Ana Ruiz", g.Name, "existing profile is returned unchanged")
	require.NotNil(t, g.Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOrCreateByDocument_RequiresDocument(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.FindOrCreateByDocument(context.Background(), &domain.Guest{Name: "Ana"})
	assert.ErrorIs(t, err, ErrBuildQuery)
}

func TestRepository_GetByDocument(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM guests WHERE document_number = $1")).
		WithArgs("X1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(11, "Ana Ruiz", "X1", nil, nil, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM guests WHERE document_number = $1")).
		WithArgs("X2").
		WillReturnError(sql.ErrNoRows)

	g, err := repo.GetByDocument(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Ruiz", g.Name)
	assert.Nil(t, g.Phone)
	assert.Nil(t, g.BirthDate)

	_, err = repo.GetByDocument(context.Background(), "X2")
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestRepository_List_Search(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM guests WHERE (name ILIKE $1 OR document_number ILIKE $2) ORDER BY name ASC, id ASC LIMIT 50 OFFSET 0")).
		WithArgs("%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows(columns))

	guests, err := repo.List(context.Background(), domain.GuestFilter{Query: ptr.Ptr("ana")})
	require.NoError(t, err)
	assert.Empty(t, guests)
}
