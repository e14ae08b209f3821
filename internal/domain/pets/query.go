package pets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxInValues es el tope de valores en un predicado "in" por query.
// Los callers particionan en chunks de este tamaño.
const MaxInValues = 10

var ErrTooManyValues = errors.New("membership predicate exceeds max values")

// Field es un campo filtrable del store de mascotas.
type Field string

const (
	FieldID          Field = "id"
	FieldVolunteerID Field = "volunteerId"
	FieldCategory    Field = "category"
	FieldGender      Field = "gender"
	FieldSize        Field = "size"
	FieldAdoptionFee Field = "adoptionFee"
	FieldVaccinated  Field = "vaccinated"
	FieldAdopted     Field = "adopted"
)

type Op string

const (
	OpEq  Op = "=="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpIn  Op = "in"
)

// Predicate es una condición de igualdad, rango o pertenencia sobre un campo.
// Value: string (enums, ids), bool, int64 (adoptionFee), nil (igual a null) o []string (in).
type Predicate struct {
	Field Field
	Op    Op
	Value any
}

func Eq(f Field, v any) Predicate    { return Predicate{Field: f, Op: OpEq, Value: v} }
func Lt(f Field, v int64) Predicate  { return Predicate{Field: f, Op: OpLt, Value: v} }
func Lte(f Field, v int64) Predicate { return Predicate{Field: f, Op: OpLte, Value: v} }
func Gt(f Field, v int64) Predicate  { return Predicate{Field: f, Op: OpGt, Value: v} }
func Gte(f Field, v int64) Predicate { return Predicate{Field: f, Op: OpGte, Value: v} }
func In(f Field, v []string) Predicate {
	return Predicate{Field: f, Op: OpIn, Value: v}
}

func (p Predicate) String() string {
	switch v := p.Value.(type) {
	case nil:
		return fmt.Sprintf("%s %s null", p.Field, p.Op)
	case []string:
		cp := append([]string(nil), v...)
		sort.Strings(cp)
		return fmt.Sprintf("%s %s [%s]", p.Field, p.Op, strings.Join(cp, ","))
	default:
		return fmt.Sprintf("%s %s %v", p.Field, p.Op, v)
	}
}

// Matches evalúa el predicado sobre una mascota.
// Los rangos nunca matchean un campo null (igual que el store).
func (p Predicate) Matches(pet Pet) bool {
	fv := fieldValue(pet, p.Field)

	switch p.Op {
	case OpEq:
		if p.Value == nil {
			return fv == nil
		}
		if fv == nil {
			return false
		}
		return equalValues(fv, p.Value)

	case OpIn:
		s, ok := fv.(string)
		if !ok {
			return false
		}
		values, _ := p.Value.([]string)
		for _, v := range values {
			if v == s {
				return true
			}
		}
		return false

	case OpLt, OpLte, OpGt, OpGte:
		a, ok := toInt64(fv)
		if !ok {
			return false
		}
		b, ok := toInt64(p.Value)
		if !ok {
			return false
		}
		switch p.Op {
		case OpLt:
			return a < b
		case OpLte:
			return a <= b
		case OpGt:
			return a > b
		default:
			return a >= b
		}
	}
	return false
}

// MatchesAll: AND de todos los predicados.
func MatchesAll(pet Pet, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Matches(pet) {
			return false
		}
	}
	return true
}

// ListQuery: predicados + orden createdAt desc (desempate por id desc) + límite + cursor.
// Limit <= 0 significa sin límite.
type ListQuery struct {
	Predicates []Predicate
	Limit      int
	StartAfter *Pet
}

// CountQuery usa los mismos predicados que la ListQuery, sin orden ni límite.
type CountQuery struct {
	Predicates []Predicate
}

// ValidatePredicates aplica el tope de valores en predicados "in".
func ValidatePredicates(preds []Predicate) error {
	for _, p := range preds {
		if p.Op != OpIn {
			continue
		}
		values, ok := p.Value.([]string)
		if !ok {
			return fmt.Errorf("predicate %s: in expects []string", p.Field)
		}
		if len(values) > MaxInValues {
			return fmt.Errorf("%w: %s has %d", ErrTooManyValues, p.Field, len(values))
		}
	}
	return nil
}

// Newer reporta si a va antes que b en el orden de listado.
func Newer(a, b Pet) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// SortNewestFirst ordena por createdAt desc, id desc.
func SortNewestFirst(items []Pet) {
	sort.Slice(items, func(i, j int) bool { return Newer(items[i], items[j]) })
}

func fieldValue(p Pet, f Field) any {
	switch f {
	case FieldID:
		return p.ID
	case FieldVolunteerID:
		return p.VolunteerID
	case FieldCategory:
		return string(p.Category)
	case FieldGender:
		return string(p.Gender)
	case FieldSize:
		return string(p.Size)
	case FieldAdoptionFee:
		if p.AdoptionFee == nil {
			return nil
		}
		return *p.AdoptionFee
	case FieldVaccinated:
		return p.Vaccinated
	case FieldAdopted:
		return p.Adopted
	}
	return nil
}

func equalValues(a, b any) bool {
	if ai, ok := toInt64(a); ok {
		bi, ok := toInt64(b)
		return ok && ai == bi
	}
	switch av := a.(type) {
	case string:
		bv, ok := toString(b)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

func toString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case Category:
		return string(t), true
	case Gender:
		return string(t), true
	case Size:
		return string(t), true
	}
	return "", false
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case float64:
		return int64(t), true
	}
	return 0, false
}
