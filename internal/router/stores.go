package router

import (
	mem "petster/internal/adapters/storage/memory"
	"petster/internal/adapters/storage/mongostore"
	pg "petster/internal/adapters/storage/postgres"
	"petster/internal/domain/assistant"
	"petster/internal/domain/favorites"
	"petster/internal/domain/pets"
	"petster/internal/domain/views"
	"petster/internal/domain/volunteers"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stores agrupa los repos de un mismo backend.
type Stores struct {
	Pets       pets.Repository
	Volunteers volunteers.Repository
	Favorites  favorites.Repository
	Views      views.Repository
	Assistant  assistant.Repository
}

func MemoryStores() Stores {
	return Stores{
		Pets:       mem.NewPetRepo(),
		Volunteers: mem.NewVolunteerRepo(),
		Favorites:  mem.NewFavoriteRepo(),
		Views:      mem.NewViewRepo(),
		Assistant:  mem.NewAssistantRepo(),
	}
}

func PostgresStores(db *sqlx.DB) Stores {
	return Stores{
		Pets:       pg.NewPetsRepo(db),
		Volunteers: pg.NewVolunteersRepo(db),
		Favorites:  pg.NewFavoritesRepo(db),
		Views:      pg.NewViewsRepo(db),
		Assistant:  pg.NewAssistantRepo(db),
	}
}

func MongoStores(db *mongo.Database) Stores {
	return Stores{
		Pets:       mongostore.NewPetsRepo(db),
		Volunteers: mongostore.NewVolunteersRepo(db),
		Favorites:  mongostore.NewFavoritesRepo(db),
		Views:      mongostore.NewViewsRepo(db),
		Assistant:  mongostore.NewAssistantRepo(db),
	}
}
