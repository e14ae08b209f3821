package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"petster/internal/domain/favorites"
	"petster/internal/domain/pets"
	"petster/internal/domain/views"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, driverName), mock
}

func TestFavoritesRepo_AddConflictIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoritesRepo(db)
	ctx := context.Background()
	f := favorites.Favorite{ID: "f1", ShelterID: "s1", PetID: "p1", CreatedAt: time.Now().UTC()}

	insert := regexp.QuoteMeta("ON CONFLICT (shelter_id, pet_id) DO NOTHING")
	mock.ExpectExec(insert).
		WithArgs("f1", "s1", "p1", f.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).
		WithArgs("f1", "s1", "p1", f.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.Add(ctx, f)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Add(ctx, f)
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoritesRepo_Remove(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoritesRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites WHERE shelter_id = $1 AND pet_id = $2")).
		WithArgs("s1", "p1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Remove(context.Background(), "s1", "p1")
	require.NoError(t, err)
	assert.False(t, removed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoritesRepo_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoritesRepo(db)

	mock.ExpectQuery("FROM favorites WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "shelter_id", "pet_id", "created_at"}))

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, favorites.ErrNotFound)
}

func TestViewsRepo_UpsertReportsInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewsRepo(db)
	now := time.Now().UTC()
	v := views.View{ID: "v1", PetID: "p1", ShelterID: "s1", LastSeenAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("RETURNING (xmax = 0) AS inserted")).
		WithArgs("v1", "p1", "s1", now).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("RETURNING (xmax = 0) AS inserted")).
		WithArgs("v1", "p1", "s1", now).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(false))

	created, err := repo.Upsert(context.Background(), v)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Upsert(context.Background(), v)
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViewsRepo_ListByPetsUsesInClause(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewsRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE pet_id IN ($1, $2)")).
		WithArgs("p1", "p2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "pet_id", "shelter_id", "last_seen_at"}).
			AddRow("v1", "p1", "s1", now).
			AddRow("v2", "p1", "s2", now))

	out, err := repo.ListByPets(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViewsRepo_ListByPetsCap(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewViewsRepo(db)

	ids := make([]string, pets.MaxInValues+1)
	_, err := repo.ListByPets(context.Background(), ids)
	require.ErrorIs(t, err, pets.ErrTooManyValues)
}

func TestVolunteersRepo_GetManyNullableLocation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVolunteersRepo(db)
	now := time.Now().UTC()

	cols := []string{"id", "name", "email", "phone_number", "address", "latitude", "longitude", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id IN ($1, $2)")).
		WithArgs("v1", "v2").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("v1", "Ana", "", "", "", -6.2, 106.8, now, now).
			AddRow("v2", "Budi", "", "", "", nil, nil, now, now))

	out, err := repo.GetMany(context.Background(), []string{"v1", "v2"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[0].Location)
	assert.InDelta(t, -6.2, out[0].Location.Latitude, 1e-9)
	assert.Nil(t, out[1].Location)
	require.NoError(t, mock.ExpectationsWereMet())
}
