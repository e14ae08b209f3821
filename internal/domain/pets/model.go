package pets

import (
	"strings"
	"time"
)

// Category define las categorías de mascota.
// @Enum Dog, Cat, Other
type Category string

const (
	CategoryDog   Category = "Dog"
	CategoryCat   Category = "Cat"
	CategoryOther Category = "Other"
)

// Categories en el orden en que se muestran en home.
var Categories = []Category{CategoryDog, CategoryCat, CategoryOther}

// Gender
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Size
// @Enum Small, Medium, Large
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

type AgeUnit string

const (
	AgeDays   AgeUnit = "Days"
	AgeWeeks  AgeUnit = "Weeks"
	AgeMonths AgeUnit = "Months"
	AgeYears  AgeUnit = "Years"
)

type WeightUnit string

const (
	WeightKilogram WeightUnit = "Kilogram"
	WeightGram     WeightUnit = "Gram"
	WeightOns      WeightUnit = "Ons"
	WeightPound    WeightUnit = "Pound"
)

// Pet es una mascota publicada por un voluntario.
// isFavorite y viewCount no se guardan: se calculan por request.
type Pet struct {
	ID          string
	VolunteerID string

	Name     string
	Category Category
	Breed    string
	Color    string

	Age     int
	AgeUnit AgeUnit

	Gender Gender

	Weight     float64
	WeightUnit WeightUnit

	Size Size

	// nil = adopción gratuita
	AdoptionFee *int64

	Vaccinated   bool
	SpecialDiet  string
	Disabilities []string
	Behaviours   []string

	Images     []string
	CoverImage string

	Adopted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

const volunteerRefPrefix = "volunteers/"

// VolunteerIDFromRef acepta "volunteers/<id>" o "<id>".
func VolunteerIDFromRef(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), volunteerRefPrefix)
}

// VolunteerRef arma la referencia "volunteers/<id>" que espera el front.
func VolunteerRef(id string) string {
	if id == "" {
		return ""
	}
	return volunteerRefPrefix + id
}
