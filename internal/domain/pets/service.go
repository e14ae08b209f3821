package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petster/internal/domain/volunteers"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

var validate = validator.New()

// ViewCounter devuelve visitas distintas por mascota (ids sin visitas pueden faltar).
type ViewCounter interface {
	CountByPets(ctx context.Context, petIDs []string) (map[string]int, error)
}

// FavoriteChecker evita importar el paquete favorites (que importa pets).
type FavoriteChecker interface {
	IsFavorite(ctx context.Context, shelterID, petID string) (bool, error)
}

type VolunteerLookup interface {
	GetByID(ctx context.Context, id string) (volunteers.Volunteer, error)
}

// Cleaner borra datos que dependen de una mascota (views, favoritos).
type Cleaner interface {
	DeleteByPet(ctx context.Context, petID string) error
}

type Deps struct {
	Views      ViewCounter
	Favorites  FavoriteChecker
	Volunteers VolunteerLookup
	Cleaners   []Cleaner
}

type Service struct {
	repo Repository
	deps Deps
	now  func() time.Time
}

func NewService(repo Repository, deps Deps) *Service {
	return &Service{
		repo: repo,
		deps: deps,
		now:  time.Now,
	}
}

// SetFavorites cierra el ciclo pets <-> favorites al armar el router.
func (s *Service) SetFavorites(f FavoriteChecker) {
	s.deps.Favorites = f
}

func (s *Service) AddCleaners(cs ...Cleaner) {
	s.deps.Cleaners = append(s.deps.Cleaners, cs...)
}

type CreateInput struct {
	Name         string   `validate:"required,max=100"`
	Category     string   `validate:"required,oneof=Dog Cat Other"`
	Breed        string   `validate:"max=100"`
	Color        string   `validate:"max=60"`
	Age          int      `validate:"gte=0"`
	AgeUnit      string   `validate:"omitempty,oneof=Days Weeks Months Years"`
	Gender       string   `validate:"required,oneof=Male Female"`
	Weight       float64  `validate:"gte=0"`
	WeightUnit   string   `validate:"omitempty,oneof=Kilogram Gram Ons Pound"`
	Size         string   `validate:"required,oneof=Small Medium Large"`
	AdoptionFee  *int64   `validate:"omitempty,gte=0"`
	SpecialDiet  string   `validate:"max=300"`
	Disabilities []string `validate:"dive,max=100"`
	Behaviours   []string `validate:"dive,max=100"`
	Vaccinated   bool
	Images       []string
	CoverImage   string
}

func (s *Service) Create(ctx context.Context, volunteerID string, in CreateInput) (Pet, error) {
	volunteerID = VolunteerIDFromRef(volunteerID)
	if volunteerID == "" {
		return Pet{}, ErrInvalidInput
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		VolunteerID:  volunteerID,
		Name:         in.Name,
		Category:     Category(in.Category),
		Breed:        strings.TrimSpace(in.Breed),
		Color:        strings.TrimSpace(in.Color),
		Age:          in.Age,
		AgeUnit:      AgeUnit(in.AgeUnit),
		Gender:       Gender(in.Gender),
		Weight:       in.Weight,
		WeightUnit:   WeightUnit(in.WeightUnit),
		Size:         Size(in.Size),
		AdoptionFee:  in.AdoptionFee,
		Vaccinated:   in.Vaccinated,
		SpecialDiet:  strings.TrimSpace(in.SpecialDiet),
		Disabilities: in.Disabilities,
		Behaviours:   in.Behaviours,
		Images:       in.Images,
		CoverImage:   strings.TrimSpace(in.CoverImage),
		Adopted:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Exists lo usan views y favorites para responder 404.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// GetMany particiona en chunks de MaxInValues (en paralelo). Preserva el orden de ids.
func (s *Service) GetMany(ctx context.Context, ids []string) ([]Pet, error) {
	chunks := Chunk(ids, MaxInValues)
	results := make([][]Pet, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			items, err := s.repo.GetMany(gctx, chunk)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]Pet, len(ids))
	for _, items := range results {
		for _, p := range items {
			byID[p.ID] = p
		}
	}

	out := make([]Pet, 0, len(byID))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdateInput: nil = no tocar. Las imágenes solo se reemplazan si vienen.
type UpdateInput struct {
	Name         *string  `validate:"omitempty,min=1,max=100"`
	Category     *string  `validate:"omitempty,oneof=Dog Cat Other"`
	Breed        *string  `validate:"omitempty,max=100"`
	Color        *string  `validate:"omitempty,max=60"`
	Age          *int     `validate:"omitempty,gte=0"`
	AgeUnit      *string  `validate:"omitempty,oneof=Days Weeks Months Years"`
	Gender       *string  `validate:"omitempty,oneof=Male Female"`
	Weight       *float64 `validate:"omitempty,gte=0"`
	WeightUnit   *string  `validate:"omitempty,oneof=Kilogram Gram Ons Pound"`
	Size         *string  `validate:"omitempty,oneof=Small Medium Large"`
	AdoptionFee  *int64   `validate:"omitempty,gte=0"`
	SpecialDiet  *string  `validate:"omitempty,max=300"`
	FreeAdoption bool
	Vaccinated   *bool
	Disabilities *[]string
	Behaviours   *[]string
	Images       *[]string
	CoverImage   *string
}

func (s *Service) Update(ctx context.Context, petID, volunteerID string, in UpdateInput) (Pet, error) {
	volunteerID = VolunteerIDFromRef(volunteerID)
	if volunteerID == "" {
		return Pet{}, ErrInvalidInput
	}
	if err := validate.Struct(in); err != nil {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		p.Category = Category(*in.Category)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Color != nil {
		p.Color = strings.TrimSpace(*in.Color)
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.AgeUnit != nil {
		p.AgeUnit = AgeUnit(*in.AgeUnit)
	}
	if in.Gender != nil {
		p.Gender = Gender(*in.Gender)
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.WeightUnit != nil {
		p.WeightUnit = WeightUnit(*in.WeightUnit)
	}
	if in.Size != nil {
		p.Size = Size(*in.Size)
	}
	switch {
	case in.FreeAdoption:
		p.AdoptionFee = nil
	case in.AdoptionFee != nil:
		fee := *in.AdoptionFee
		p.AdoptionFee = &fee
	}
	if in.Vaccinated != nil {
		p.Vaccinated = *in.Vaccinated
	}
	if in.SpecialDiet != nil {
		p.SpecialDiet = strings.TrimSpace(*in.SpecialDiet)
	}
	if in.Disabilities != nil {
		p.Disabilities = *in.Disabilities
	}
	if in.Behaviours != nil {
		p.Behaviours = *in.Behaviours
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.CoverImage != nil && strings.TrimSpace(*in.CoverImage) != "" {
		p.CoverImage = strings.TrimSpace(*in.CoverImage)
	}

	p.VolunteerID = volunteerID
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// SetAdopted marca o desmarca la adopción; devuelve el mensaje para el cliente.
func (s *Service) SetAdopted(ctx context.Context, petID string, adopted bool) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	p.Adopted = adopted
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return "", err
	}
	if adopted {
		return "Pet is now marked as adopted.", nil
	}
	return "Pet is now marked as available.", nil
}

// Delete borra primero lo dependiente (views, favoritos) y después la mascota.
func (s *Service) Delete(ctx context.Context, petID string) error {
	if _, err := s.GetByID(ctx, petID); err != nil {
		return err
	}
	for _, c := range s.deps.Cleaners {
		if err := c.DeleteByPet(ctx, petID); err != nil {
			return fmt.Errorf("delete pet dependents: %w", err)
		}
	}
	return s.repo.Delete(ctx, petID)
}

// Detail es la mascota con datos del request (views, favorito) y su voluntario.
type Detail struct {
	Pet        Pet
	ViewCount  int
	IsFavorite bool
	Volunteer  *volunteers.Volunteer
}

// Detail: shelterID vacío = anónimo (isFavorite false, sin query).
func (s *Service) Detail(ctx context.Context, petID, shelterID string) (Detail, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Detail{}, err
	}
	d := Detail{Pet: p}

	if s.deps.Views != nil {
		counts, err := s.deps.Views.CountByPets(ctx, []string{p.ID})
		if err != nil {
			return Detail{}, err
		}
		d.ViewCount = counts[p.ID]
	}

	shelterID = strings.TrimSpace(shelterID)
	if shelterID != "" && s.deps.Favorites != nil {
		fav, err := s.deps.Favorites.IsFavorite(ctx, shelterID, p.ID)
		if err != nil {
			return Detail{}, err
		}
		d.IsFavorite = fav
	}

	if p.VolunteerID != "" && s.deps.Volunteers != nil {
		v, err := s.deps.Volunteers.GetByID(ctx, p.VolunteerID)
		switch {
		case err == nil:
			d.Volunteer = &v
		case errors.Is(err, volunteers.ErrNotFound):
			// mascota huérfana: se devuelve sin voluntario
		default:
			return Detail{}, err
		}
	}

	return d, nil
}

// Page es una página de mascotas con conteos de visitas.
type Page struct {
	Items      []Pet
	ViewCounts map[string]int
	NextCursor string
	TotalPages int
}

// ListByVolunteer lista todas las mascotas del voluntario (adoptadas incluidas).
func (s *Service) ListByVolunteer(ctx context.Context, volunteerID string, limit int, cursor string) (Page, error) {
	volunteerID = VolunteerIDFromRef(volunteerID)
	if volunteerID == "" {
		return Page{}, ErrInvalidInput
	}
	if limit <= 0 {
		return Page{}, ErrInvalidInput
	}

	preds := []Predicate{Eq(FieldVolunteerID, volunteerID)}

	startAfter, err := ResolveCursor(ctx, s.repo, cursor, preds)
	if err != nil {
		return Page{}, err
	}

	items, err := s.repo.List(ctx, ListQuery{Predicates: preds, Limit: limit, StartAfter: startAfter})
	if err != nil {
		return Page{}, err
	}
	count, err := s.repo.Count(ctx, CountQuery{Predicates: preds})
	if err != nil {
		return Page{}, err
	}

	counts, err := s.countViews(ctx, items)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Items:      items,
		ViewCounts: counts,
		NextCursor: NextCursor(items, limit, preds),
		TotalPages: TotalPages(count, limit),
	}, nil
}

type Dashboard struct {
	TotalPets        int
	TotalAdoptedPets int
	TotalPetsViewed  int
}

// Dashboard: totales del voluntario. TotalPetsViewed suma visitantes distintos por mascota.
func (s *Service) Dashboard(ctx context.Context, volunteerID string) (Dashboard, error) {
	volunteerID = VolunteerIDFromRef(volunteerID)
	if volunteerID == "" {
		return Dashboard{}, ErrInvalidInput
	}

	mine := Eq(FieldVolunteerID, volunteerID)

	total, err := s.repo.Count(ctx, CountQuery{Predicates: []Predicate{mine}})
	if err != nil {
		return Dashboard{}, err
	}
	adopted, err := s.repo.Count(ctx, CountQuery{Predicates: []Predicate{mine, Eq(FieldAdopted, true)}})
	if err != nil {
		return Dashboard{}, err
	}

	items, err := s.repo.List(ctx, ListQuery{Predicates: []Predicate{mine}})
	if err != nil {
		return Dashboard{}, err
	}
	counts, err := s.countViews(ctx, items)
	if err != nil {
		return Dashboard{}, err
	}

	viewed := 0
	for _, n := range counts {
		viewed += n
	}

	return Dashboard{
		TotalPets:        total,
		TotalAdoptedPets: adopted,
		TotalPetsViewed:  viewed,
	}, nil
}

func (s *Service) countViews(ctx context.Context, items []Pet) (map[string]int, error) {
	if s.deps.Views == nil || len(items) == 0 {
		return map[string]int{}, nil
	}
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return s.deps.Views.CountByPets(ctx, ids)
}

// Chunk parte ids en grupos de a lo sumo size.
func Chunk(ids []string, size int) [][]string {
	if size <= 0 {
		size = MaxInValues
	}
	out := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}
