package discovery

import "petster/internal/domain/pets"

// Queries es el par listado + conteo que sale del mismo set de predicados.
type Queries struct {
	List  pets.ListQuery
	Count pets.CountQuery
}

// BuildQueries siempre agrega adopted == false: discovery nunca muestra adoptadas.
func BuildQueries(preds []pets.Predicate, limit int, startAfter *pets.Pet) Queries {
	all := make([]pets.Predicate, 0, len(preds)+1)
	all = append(all, pets.Eq(pets.FieldAdopted, false))
	all = append(all, preds...)

	return Queries{
		List: pets.ListQuery{
			Predicates: all,
			Limit:      limit,
			StartAfter: startAfter,
		},
		Count: pets.CountQuery{Predicates: all},
	}
}
