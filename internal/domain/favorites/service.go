package favorites

import (
	"context"
	"errors"
	"strings"
	"time"

	"petster/internal/domain/pets"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("favorite not found")
)

const (
	MsgAdded   = "Pet added to favorites successfully"
	MsgRemoved = "Pet removed from favorites successfully"
	MsgNoop    = "Pet favorite status updated successfully"
)

// PetStore es lo que favorites necesita de pets.
type PetStore interface {
	Exists(ctx context.Context, petID string) (bool, error)
	GetMany(ctx context.Context, ids []string) ([]pets.Pet, error)
}

type ViewCounter interface {
	CountByPets(ctx context.Context, petIDs []string) (map[string]int, error)
}

type Service struct {
	repo  Repository
	pets  PetStore
	views ViewCounter
	now   func() time.Time
}

func NewService(repo Repository, petStore PetStore, views ViewCounter) *Service {
	return &Service{
		repo:  repo,
		pets:  petStore,
		views: views,
		now:   time.Now,
	}
}

// Toggle deja el favorito en el estado pedido. Repetir el mismo pedido es un no-op;
// la unicidad por par la garantiza el store, no un read-then-write acá.
func (s *Service) Toggle(ctx context.Context, petID, shelterID string, isFavorite bool) (string, error) {
	petID = strings.TrimSpace(petID)
	shelterID = strings.TrimSpace(shelterID)
	if petID == "" || shelterID == "" {
		return "", ErrInvalidInput
	}

	if isFavorite {
		ok, err := s.pets.Exists(ctx, petID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", pets.ErrNotFound
		}

		created, err := s.repo.Add(ctx, Favorite{
			ID:        uuid.NewString(),
			ShelterID: shelterID,
			PetID:     petID,
			CreatedAt: s.now(),
		})
		if err != nil {
			return "", err
		}
		if created {
			return MsgAdded, nil
		}
		return MsgNoop, nil
	}

	removed, err := s.repo.Remove(ctx, shelterID, petID)
	if err != nil {
		return "", err
	}
	if removed {
		return MsgRemoved, nil
	}
	return MsgNoop, nil
}

func (s *Service) IsFavorite(ctx context.Context, shelterID, petID string) (bool, error) {
	if strings.TrimSpace(shelterID) == "" || strings.TrimSpace(petID) == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, shelterID, petID)
}

// FavoriteSet trae todos los favoritos del shelter en una sola query.
func (s *Service) FavoriteSet(ctx context.Context, shelterID string) (map[string]struct{}, error) {
	ids, err := s.repo.ListPetIDsByShelter(ctx, shelterID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	return s.repo.DeleteByPet(ctx, petID)
}

type Page struct {
	Items      []pets.Pet
	ViewCounts map[string]int
	NextCursor string
	TotalPages int
}

// List pagina los favoritos del shelter, más nuevos primero.
func (s *Service) List(ctx context.Context, shelterID string, limit int, cursor string) (Page, error) {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" || limit <= 0 {
		return Page{}, ErrInvalidInput
	}

	fp := cursorFingerprint(shelterID)
	var startAfter *Favorite
	if id, got, ok := pets.DecodeCursor(cursor); ok && got == fp {
		f, err := s.repo.GetByID(ctx, id)
		switch {
		case err == nil:
			startAfter = &f
		case errors.Is(err, ErrNotFound):
			// favorito borrado: vuelve a la primera página
		default:
			return Page{}, err
		}
	}

	favs, err := s.repo.ListByShelter(ctx, shelterID, limit, startAfter)
	if err != nil {
		return Page{}, err
	}
	total, err := s.repo.CountByShelter(ctx, shelterID)
	if err != nil {
		return Page{}, err
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.PetID)
	}
	items, err := s.pets.GetMany(ctx, ids)
	if err != nil {
		return Page{}, err
	}

	counts := map[string]int{}
	if s.views != nil && len(items) > 0 {
		petIDs := make([]string, 0, len(items))
		for _, p := range items {
			petIDs = append(petIDs, p.ID)
		}
		if counts, err = s.views.CountByPets(ctx, petIDs); err != nil {
			return Page{}, err
		}
	}

	page := Page{
		Items:      items,
		ViewCounts: counts,
		TotalPages: pets.TotalPages(total, limit),
	}
	if len(favs) == limit {
		page.NextCursor = pets.EncodeCursor(favs[len(favs)-1].ID, fp)
	}
	return page, nil
}

func cursorFingerprint(shelterID string) string {
	return pets.Fingerprint([]pets.Predicate{pets.Eq(pets.Field("shelterId"), shelterID)})
}
