package mongostore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"petster/internal/domain/favorites"
	"petster/internal/domain/pets"
	"petster/internal/domain/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()
	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("set TEST_INTEGRATION=1 to run against a real mongo")
	}
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "27017")
	require.NoError(t, err)

	client, db, err := Connect(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "petster_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestPetsRepo_ListKeyset_Integration(t *testing.T) {
	db := setupMongo(t)
	repo := NewPetsRepo(db)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, pets.Pet{
			ID:        fmt.Sprintf("pet-%d", i),
			Name:      "x",
			Category:  pets.CategoryCat,
			Adopted:   i == 6,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base,
		}))
	}

	preds := []pets.Predicate{pets.Eq(pets.FieldAdopted, false)}
	first, err := repo.List(ctx, pets.ListQuery{Predicates: preds, Limit: 4})
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, "pet-5", first[0].ID)

	rest, err := repo.List(ctx, pets.ListQuery{Predicates: preds, Limit: 4, StartAfter: &first[3]})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "pet-1", rest[0].ID)

	n, err := repo.Count(ctx, pets.CountQuery{Predicates: preds})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, pets.ErrNotFound)
}

func TestFavoritesRepo_ConcurrentAdd_Integration(t *testing.T) {
	db := setupMongo(t)
	repo := NewFavoritesRepo(db)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Add(ctx, favorites.Favorite{
				ID: fmt.Sprintf("f-%d", i), ShelterID: "s1", PetID: "p1", CreatedAt: time.Now().UTC(),
			})
		}(i)
	}
	wg.Wait()

	n, err := repo.CountByShelter(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestViewsRepo_Upsert_Integration(t *testing.T) {
	db := setupMongo(t)
	repo := NewViewsRepo(db)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, views.View{ID: "v1", PetID: "p1", ShelterID: "s1", LastSeenAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Upsert(ctx, views.View{ID: "v2", PetID: "p1", ShelterID: "s1", LastSeenAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.False(t, created)

	rows, err := repo.ListByPets(ctx, []string{"p1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "v1", rows[0].ID)
}
