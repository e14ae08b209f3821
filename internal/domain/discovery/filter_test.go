package discovery

import (
	"testing"

	"petster/internal/domain/pets"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilter_Empty(t *testing.T) {
	assert.Empty(t, NormalizeFilter(Filter{}))
}

func TestNormalizeFilter_IsDeterministic(t *testing.T) {
	f := Filter{Category: "Dog", Gender: "Female", AdoptionFee: "500k–1M", Vaccinated: "Yes", Size: "Small"}

	a := NormalizeFilter(f)
	b := NormalizeFilter(f)
	assert.Equal(t, a, b)
	assert.Equal(t, pets.Fingerprint(a), pets.Fingerprint(b))
	assert.Len(t, a, 6)
}

func TestNormalizeFilter_Vaccinated(t *testing.T) {
	assert.Equal(t, []pets.Predicate{pets.Eq(pets.FieldVaccinated, true)}, NormalizeFilter(Filter{Vaccinated: "Yes"}))
	assert.Equal(t, []pets.Predicate{pets.Eq(pets.FieldVaccinated, false)}, NormalizeFilter(Filter{Vaccinated: "No"}))
	assert.Equal(t, []pets.Predicate{pets.Eq(pets.FieldVaccinated, false)}, NormalizeFilter(Filter{Vaccinated: "whatever"}))
}

func TestParseFeeBracket_Aliases(t *testing.T) {
	cases := map[string]FeeBracket{
		"Free":           FeeFree,
		"< 500k":         FeeUnder500k,
		"< Rp 500rb":     FeeUnder500k,
		"500k–1M":        Fee500kTo1M,
		"500k-1M":        Fee500kTo1M,
		"Rp 500rb - 1jt": Fee500kTo1M,
		"> 1M":           FeeOver1M,
		"> Rp 1jt":       FeeOver1M,
	}
	for in, want := range cases {
		got, ok := ParseFeeBracket(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseFeeBracket("cheap")
	assert.False(t, ok)
}

func TestFeeBracket_Predicates(t *testing.T) {
	assert.Equal(t, []pets.Predicate{pets.Eq(pets.FieldAdoptionFee, nil)}, FeeFree.Predicates())
	assert.Equal(t, []pets.Predicate{pets.Lt(pets.FieldAdoptionFee, 500_000)}, FeeUnder500k.Predicates())
	assert.Equal(t, []pets.Predicate{
		pets.Gte(pets.FieldAdoptionFee, 500_000),
		pets.Lte(pets.FieldAdoptionFee, 1_000_000),
	}, Fee500kTo1M.Predicates())
	assert.Equal(t, []pets.Predicate{pets.Gt(pets.FieldAdoptionFee, 1_000_000)}, FeeOver1M.Predicates())
}

func TestBuildQueries_AlwaysExcludesAdopted(t *testing.T) {
	qs := BuildQueries(nil, 10, nil)
	assert.Equal(t, []pets.Predicate{pets.Eq(pets.FieldAdopted, false)}, qs.List.Predicates)
	assert.Equal(t, qs.List.Predicates, qs.Count.Predicates)
	assert.Equal(t, 10, qs.List.Limit)

	start := &pets.Pet{ID: "x"}
	qs = BuildQueries([]pets.Predicate{pets.Eq(pets.FieldCategory, "Cat")}, 5, start)
	assert.Len(t, qs.List.Predicates, 2)
	assert.Same(t, start, qs.List.StartAfter)
}
