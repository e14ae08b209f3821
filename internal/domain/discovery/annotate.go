package discovery

import (
	"context"
	"strings"
)

// FavoriteSource trae todos los favoritos de un shelter de una vez.
type FavoriteSource interface {
	FavoriteSet(ctx context.Context, shelterID string) (map[string]struct{}, error)
}

// ViewCounter es el agregador de visitas (views.Service).
type ViewCounter interface {
	CountByPets(ctx context.Context, petIDs []string) (map[string]int, error)
}

// annotateFavorites: anónimo => todo false y ninguna query.
func annotateFavorites(ctx context.Context, src FavoriteSource, shelterID string, items []Item) error {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" || src == nil || len(items) == 0 {
		return nil
	}

	set, err := src.FavoriteSet(ctx, shelterID)
	if err != nil {
		return err
	}
	for i := range items {
		_, items[i].IsFavorite = set[items[i].Pet.ID]
	}
	return nil
}

func annotateViews(ctx context.Context, vc ViewCounter, items []Item) error {
	if vc == nil || len(items) == 0 {
		return nil
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Pet.ID)
	}
	counts, err := vc.CountByPets(ctx, ids)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].ViewCount = counts[items[i].Pet.ID]
	}
	return nil
}
