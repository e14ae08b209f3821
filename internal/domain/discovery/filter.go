package discovery

import (
	"strings"

	"petster/internal/domain/pets"
)

// Filter son los criterios tal como llegan del cliente. Vacío = sin filtro.
type Filter struct {
	Category    string
	Gender      string
	AdoptionFee string
	Vaccinated  string
	Size        string
}

// FeeBracket es un rango de tarifa de adopción.
type FeeBracket string

const (
	FeeFree      FeeBracket = "Free"
	FeeUnder500k FeeBracket = "< 500k"
	Fee500kTo1M  FeeBracket = "500k–1M"
	FeeOver1M    FeeBracket = "> 1M"
)

const (
	fee500k int64 = 500_000
	fee1M   int64 = 1_000_000
)

// Claves normalizadas (minúsculas, sin espacios). Incluye las etiquetas en rupias del front.
var feeAliases = map[string]FeeBracket{
	"free":        FeeFree,
	"gratis":      FeeFree,
	"<500k":       FeeUnder500k,
	"<rp500rb":    FeeUnder500k,
	"500k–1m":     Fee500kTo1M,
	"500k-1m":     Fee500kTo1M,
	"rp500rb-1jt": Fee500kTo1M,
	">1m":         FeeOver1M,
	">rp1jt":      FeeOver1M,
}

// ParseFeeBracket devuelve ok=false para etiquetas desconocidas.
func ParseFeeBracket(s string) (FeeBracket, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	b, ok := feeAliases[key]
	return b, ok
}

// Predicates traduce el bracket a condiciones sobre adoptionFee.
func (b FeeBracket) Predicates() []pets.Predicate {
	switch b {
	case FeeFree:
		return []pets.Predicate{pets.Eq(pets.FieldAdoptionFee, nil)}
	case FeeUnder500k:
		return []pets.Predicate{pets.Lt(pets.FieldAdoptionFee, fee500k)}
	case Fee500kTo1M:
		return []pets.Predicate{
			pets.Gte(pets.FieldAdoptionFee, fee500k),
			pets.Lte(pets.FieldAdoptionFee, fee1M),
		}
	case FeeOver1M:
		return []pets.Predicate{pets.Gt(pets.FieldAdoptionFee, fee1M)}
	}
	return nil
}

// NormalizeFilter es puro: mismo Filter => mismos predicados, en el mismo orden.
// Un bracket de tarifa desconocido se ignora (no filtra).
func NormalizeFilter(f Filter) []pets.Predicate {
	out := make([]pets.Predicate, 0, 6)

	if v := strings.TrimSpace(f.Category); v != "" {
		out = append(out, pets.Eq(pets.FieldCategory, v))
	}
	if v := strings.TrimSpace(f.Gender); v != "" {
		out = append(out, pets.Eq(pets.FieldGender, v))
	}
	if v := strings.TrimSpace(f.AdoptionFee); v != "" {
		if b, ok := ParseFeeBracket(v); ok {
			out = append(out, b.Predicates()...)
		}
	}
	if v := strings.TrimSpace(f.Vaccinated); v != "" {
		out = append(out, pets.Eq(pets.FieldVaccinated, strings.EqualFold(v, "yes")))
	}
	if v := strings.TrimSpace(f.Size); v != "" {
		out = append(out, pets.Eq(pets.FieldSize, v))
	}
	return out
}
