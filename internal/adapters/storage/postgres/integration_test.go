package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"petster/internal/domain/assistant"
	"petster/internal/domain/favorites"
	"petster/internal/domain/pets"
	"petster/internal/domain/views"
	"petster/internal/domain/volunteers"
	"petster/internal/platform/geo"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupDB levanta Postgres en Docker y aplica las migraciones.
func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		tcpostgres.WithDatabase("petster_test"),
		tcpostgres.WithUsername("petster"),
		tcpostgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, Migrate(dsn))
	// segunda vez: sin cambios, no es error
	require.NoError(t, Migrate(dsn))

	db, err := Open(ctx, dsn, Pool{MaxOpen: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPetsRepo_Integration(t *testing.T) {
	db := setupDB(t)
	repo := NewPetsRepo(db)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fee := int64(250000)
	for i := 0; i < 12; i++ {
		p := pets.Pet{
			ID:          fmt.Sprintf("pet-%02d", i),
			VolunteerID: "vol-1",
			Name:        fmt.Sprintf("Pet %d", i),
			Category:    pets.CategoryDog,
			Gender:      pets.GenderMale,
			Size:        pets.SizeSmall,
			Vaccinated:  i%2 == 0,
			Adopted:     i == 11,
			Behaviours:  []string{"friendly"},
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:   base,
		}
		if i%3 == 0 {
			p.AdoptionFee = &fee
		}
		require.NoError(t, repo.Create(ctx, p))
	}

	got, err := repo.GetByID(ctx, "pet-03")
	require.NoError(t, err)
	require.NotNil(t, got.AdoptionFee)
	assert.Equal(t, fee, *got.AdoptionFee)
	assert.Equal(t, []string{"friendly"}, got.Behaviours)
	assert.Empty(t, got.Images)

	notAdopted := []pets.Predicate{pets.Eq(pets.FieldAdopted, false)}

	first, err := repo.List(ctx, pets.ListQuery{Predicates: notAdopted, Limit: 5})
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, "pet-10", first[0].ID)

	second, err := repo.List(ctx, pets.ListQuery{Predicates: notAdopted, Limit: 5, StartAfter: &first[4]})
	require.NoError(t, err)
	require.Len(t, second, 5)
	assert.Equal(t, "pet-05", second[0].ID)

	n, err := repo.Count(ctx, pets.CountQuery{Predicates: notAdopted})
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	vacc, err := repo.Count(ctx, pets.CountQuery{Predicates: append(notAdopted, pets.Eq(pets.FieldVaccinated, true))})
	require.NoError(t, err)
	assert.Equal(t, 6, vacc)

	free, err := repo.Count(ctx, pets.CountQuery{Predicates: []pets.Predicate{pets.Eq(pets.FieldAdoptionFee, nil)}})
	require.NoError(t, err)
	assert.Equal(t, 8, free)

	many, err := repo.GetMany(ctx, []string{"pet-02", "missing", "pet-01"})
	require.NoError(t, err)
	require.Len(t, many, 2)
	assert.Equal(t, "pet-02", many[0].ID)

	require.NoError(t, repo.Delete(ctx, "pet-00"))
	_, err = repo.GetByID(ctx, "pet-00")
	require.ErrorIs(t, err, pets.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "pet-00"), pets.ErrNotFound)
}

func TestVolunteersRepo_Integration(t *testing.T) {
	db := setupDB(t)
	repo := NewVolunteersRepo(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, repo.Upsert(ctx, volunteers.Volunteer{
		ID: "v1", Name: "Ana", Location: &geo.Point{Latitude: -6.2, Longitude: 106.8},
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, repo.Upsert(ctx, volunteers.Volunteer{ID: "v1", Name: "Ana B", CreatedAt: now, UpdatedAt: now}))

	v, err := repo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Ana B", v.Name)
	assert.Nil(t, v.Location)

	_, err = repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, volunteers.ErrNotFound)
}

func TestFavoritesAndViews_Integration(t *testing.T) {
	db := setupDB(t)
	favs := NewFavoritesRepo(db)
	vs := NewViewsRepo(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := favs.Add(ctx, favorites.Favorite{ID: "f1", ShelterID: "s1", PetID: "p1", CreatedAt: now})
	require.NoError(t, err)
	assert.True(t, created)
	created, err = favs.Add(ctx, favorites.Favorite{ID: "f2", ShelterID: "s1", PetID: "p1", CreatedAt: now})
	require.NoError(t, err)
	assert.False(t, created)

	_, err = favs.Add(ctx, favorites.Favorite{ID: "f3", ShelterID: "s1", PetID: "p2", CreatedAt: now.Add(time.Second)})
	require.NoError(t, err)

	list, err := favs.ListByShelter(ctx, "s1", 1, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p2", list[0].PetID)

	rest, err := favs.ListByShelter(ctx, "s1", 10, &list[0])
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "p1", rest[0].PetID)

	n, err := favs.CountByShelter(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	inserted, err := vs.Upsert(ctx, views.View{ID: "w1", PetID: "p1", ShelterID: "s1", LastSeenAt: now})
	require.NoError(t, err)
	assert.True(t, inserted)
	inserted, err = vs.Upsert(ctx, views.View{ID: "w2", PetID: "p1", ShelterID: "s1", LastSeenAt: now.Add(time.Minute)})
	require.NoError(t, err)
	assert.False(t, inserted)

	rows, err := vs.ListByPets(ctx, []string{"p1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, favs.DeleteByPet(ctx, "p1"))
	require.NoError(t, vs.DeleteByPet(ctx, "p1"))
	ok, err := favs.Exists(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssistantRepo_Integration(t *testing.T) {
	db := setupDB(t)
	repo := NewAssistantRepo(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, repo.Append(ctx,
		assistant.Message{ID: "m1", ShelterID: "s1", Sender: assistant.SenderUser, Text: "halo", CreatedAt: now},
		assistant.Message{ID: "m2", ShelterID: "s1", Sender: assistant.SenderAI, Text: "hai", CreatedAt: now.Add(time.Millisecond)},
	))

	msgs, err := repo.ListByShelter(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, assistant.SenderUser, msgs[0].Sender)
	assert.Equal(t, "hai", msgs[1].Text)
}
