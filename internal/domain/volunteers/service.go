package volunteers

import (
	"context"
	"errors"
	"strings"
	"time"

	"petster/internal/platform/geo"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("volunteer not found")
)

var validate = validator.New()

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type ProfileInput struct {
	Name        string   `validate:"required,max=120"`
	Email       string   `validate:"omitempty,email"`
	PhoneNumber string   `validate:"max=40"`
	Address     string   `validate:"max=300"`
	Latitude    *float64 `validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `validate:"omitempty,min=-180,max=180"`
}

// Upsert crea o reemplaza el perfil del voluntario (id lo define el caller).
func (s *Service) Upsert(ctx context.Context, id string, in ProfileInput) (Volunteer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Volunteer{}, ErrInvalidInput
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validate.Struct(in); err != nil {
		return Volunteer{}, ErrInvalidInput
	}
	// lat y lon van juntos
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return Volunteer{}, ErrInvalidInput
	}

	now := s.now()
	v := Volunteer{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Latitude != nil && in.Longitude != nil {
		v.Location = &geo.Point{Latitude: *in.Latitude, Longitude: *in.Longitude}
	}

	if current, err := s.repo.GetByID(ctx, id); err == nil {
		v.CreatedAt = current.CreatedAt
	} else if !errors.Is(err, ErrNotFound) {
		return Volunteer{}, err
	}

	if err := s.repo.Upsert(ctx, v); err != nil {
		return Volunteer{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Volunteer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Volunteer{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetMany(ctx context.Context, ids []string) ([]Volunteer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.GetMany(ctx, ids)
}
