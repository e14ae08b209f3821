package mongostore

import (
	"fmt"

	"petster/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
)

var fieldFor = map[pets.Field]string{
	pets.FieldID:          "_id",
	pets.FieldVolunteerID: "volunteer_id",
	pets.FieldCategory:    "category",
	pets.FieldGender:      "gender",
	pets.FieldSize:        "size",
	pets.FieldAdoptionFee: "adoption_fee",
	pets.FieldVaccinated:  "vaccinated",
	pets.FieldAdopted:     "adopted",
}

// buildFilter arma el filtro de pets: predicados en $and y, si hay cursor,
// el keyset (created_at, _id) < (cursor).
func buildFilter(preds []pets.Predicate, startAfter *pets.Pet) (bson.D, error) {
	if err := pets.ValidatePredicates(preds); err != nil {
		return nil, err
	}

	clauses := make(bson.A, 0, len(preds)+1)
	for _, p := range preds {
		c, err := predicateDoc(p)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	if startAfter != nil {
		clauses = append(clauses, bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$lt", Value: startAfter.CreatedAt}}}},
			bson.D{
				{Key: "created_at", Value: startAfter.CreatedAt},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: startAfter.ID}}},
			},
		}}})
	}

	if len(clauses) == 0 {
		return bson.D{}, nil
	}
	return bson.D{{Key: "$and", Value: clauses}}, nil
}

func predicateDoc(p pets.Predicate) (bson.D, error) {
	field, ok := fieldFor[p.Field]
	if !ok {
		return nil, fmt.Errorf("unsupported filter field %q", p.Field)
	}

	var op string
	switch p.Op {
	case pets.OpEq:
		return bson.D{{Key: field, Value: p.Value}}, nil
	case pets.OpLt:
		op = "$lt"
	case pets.OpLte:
		op = "$lte"
	case pets.OpGt:
		op = "$gt"
	case pets.OpGte:
		op = "$gte"
	case pets.OpIn:
		op = "$in"
	default:
		return nil, fmt.Errorf("unsupported operator %q", p.Op)
	}
	return bson.D{{Key: field, Value: bson.D{{Key: op, Value: p.Value}}}}, nil
}
