package views

import (
	"context"

	"petster/internal/domain/pets"

	"golang.org/x/sync/errgroup"
)

// CountByPets cuenta visitantes distintos por mascota.
// Una query por chunk de pets.MaxInValues ids, en paralelo; si falla cualquiera
// falla todo (no hay resultados parciales). Todos los ids pedidos vuelven en el
// map, con 0 si no tienen visitas.
func (s *Service) CountByPets(ctx context.Context, petIDs []string) (map[string]int, error) {
	ids := dedupe(petIDs)
	counts := make(map[string]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	missing := ids
	var start uint64
	if s.cache != nil {
		start = s.gens.begin()
		defer s.gens.end()
		cached, err := s.cache.GetMany(ctx, ids)
		if err != nil {
			// el cache es best-effort: se cae al store
			s.log.Warn("view count cache read failed", map[string]any{"err": err})
			cached = nil
		}
		missing = missing[:0:0]
		for _, id := range ids {
			if n, ok := cached[id]; ok {
				counts[id] = n
				continue
			}
			missing = append(missing, id)
		}
		cacheHits.Add(float64(len(ids) - len(missing)))
		cacheMisses.Add(float64(len(missing)))
	}
	if len(missing) == 0 {
		return counts, nil
	}

	chunks := pets.Chunk(missing, pets.MaxInValues)
	rows := make([][]View, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			items, err := s.repo.ListByPets(gctx, chunk)
			if err != nil {
				return err
			}
			rows[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fresh := make(map[string]int, len(missing))
	for _, id := range missing {
		fresh[id] = 0
	}
	for _, chunkRows := range rows {
		for _, v := range chunkRows {
			if _, asked := fresh[v.PetID]; asked {
				fresh[v.PetID]++
			}
		}
	}

	for id, n := range fresh {
		counts[id] = n
	}

	if s.cache != nil {
		s.writeBack(ctx, start, fresh)
	}
	return counts, nil
}

// writeBack guarda en el cache los conteos leídos del store, salvo los de
// mascotas invalidadas mientras se leía. Las invalidadas durante la escritura
// se vuelven a invalidar.
func (s *Service) writeBack(ctx context.Context, start uint64, fresh map[string]int) {
	ids := make([]string, 0, len(fresh))
	for id := range fresh {
		ids = append(ids, id)
	}

	stale := s.gens.changedSince(start, ids)
	toWrite := make(map[string]int, len(fresh))
	for id, n := range fresh {
		if _, skip := stale[id]; !skip {
			toWrite[id] = n
		}
	}
	if len(toWrite) == 0 {
		return
	}
	if err := s.cache.SetMany(ctx, toWrite); err != nil {
		s.log.Warn("view count cache write failed", map[string]any{"err": err})
		return
	}

	for id := range s.gens.changedSince(start, ids) {
		if _, skipped := stale[id]; skipped {
			continue
		}
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.log.Warn("view count cache invalidate failed", map[string]any{"pet_id": id, "err": err})
		}
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
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
