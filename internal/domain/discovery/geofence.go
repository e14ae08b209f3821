package discovery

import (
	"context"
	"sort"

	"petster/internal/domain/pets"
	"petster/internal/domain/volunteers"
	"petster/internal/platform/geo"

	"golang.org/x/sync/errgroup"
)

// VolunteerSource trae voluntarios por id (a lo sumo pets.MaxInValues por llamada).
type VolunteerSource interface {
	GetMany(ctx context.Context, ids []string) ([]volunteers.Volunteer, error)
}

// Geofence: origen + radio en km.
type Geofence struct {
	Origin   geo.Point
	RadiusKm float64
}

type Ranker struct {
	volunteers VolunteerSource
}

func NewRanker(src VolunteerSource) *Ranker {
	return &Ranker{volunteers: src}
}

// Rank deja solo las mascotas cuyo voluntario está dentro del radio y las ordena
// por distancia ascendente (estable). Voluntario inexistente o sin coordenadas => fuera.
// Las coordenadas se piden en chunks de ids distintos, en paralelo.
func (r *Ranker) Rank(ctx context.Context, fence Geofence, items []Item) ([]Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	locations, err := r.locations(ctx, distinctVolunteers(items))
	if err != nil {
		return nil, err
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		loc, ok := locations[it.Pet.VolunteerID]
		if !ok {
			continue
		}
		d := geo.DistanceKm(fence.Origin, loc)
		if !(d <= fence.RadiusKm) {
			continue
		}
		it.DistanceKm = &d
		out = append(out, it)
	}

	geofenceDropped.Add(float64(len(items) - len(out)))

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DistanceKm < *out[j].DistanceKm
	})
	return out, nil
}

func (r *Ranker) locations(ctx context.Context, ids []string) (map[string]geo.Point, error) {
	chunks := pets.Chunk(ids, pets.MaxInValues)
	results := make([][]volunteers.Volunteer, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			vs, err := r.volunteers.GetMany(gctx, chunk)
			if err != nil {
				return err
			}
			results[i] = vs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]geo.Point, len(ids))
	for _, vs := range results {
		for _, v := range vs {
			if v.Location == nil {
				continue
			}
			out[v.ID] = *v.Location
		}
	}
	return out, nil
}

func distinctVolunteers(items []Item) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		id := it.Pet.VolunteerID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
