package discovery

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"petster/internal/domain/pets"
	"petster/internal/platform/geo"
	"petster/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit    = 10
	MaxLimit        = 100
	DefaultRadiusKm = 10.0
)

var ErrInvalidInput = errors.New("invalid input")

// PetStore es la parte del repositorio de mascotas que usa discovery.
type PetStore interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	List(ctx context.Context, q pets.ListQuery) ([]pets.Pet, error)
	Count(ctx context.Context, q pets.CountQuery) (int, error)
}

// Item es una mascota anotada para un viewer concreto.
type Item struct {
	Pet        pets.Pet
	IsFavorite bool
	ViewCount  int
	DistanceKm *float64
}

// Request de una página de discovery. Near == nil => sin geofence.
type Request struct {
	Filter    Filter
	ShelterID string
	Limit     int
	Cursor    string
	Near      *geo.Point
	RadiusKm  float64
}

type Result struct {
	Items      []Item
	NextCursor string
	TotalPages int
	Total      int
}

// Home agrupa las más nuevas por categoría.
type Home struct {
	Dog   []Item
	Cat   []Item
	Other []Item
}

type Options struct {
	DefaultLimit int
	MaxLimit     int
	RadiusKm     float64
}

type Service struct {
	pets      PetStore
	favorites FavoriteSource
	views     ViewCounter
	ranker    *Ranker
	log       logger.Logger
	opts      Options
}

func NewService(store PetStore, favs FavoriteSource, views ViewCounter, vols VolunteerSource, log logger.Logger, opts Options) *Service {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = MaxLimit
	}
	if opts.RadiusKm <= 0 {
		opts.RadiusKm = DefaultRadiusKm
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		pets:      store,
		favorites: favs,
		views:     views,
		ranker:    NewRanker(vols),
		log:       log,
		opts:      opts,
	}
}

// Discover devuelve una página de mascotas no adoptadas que cumplen el filtro,
// de la más nueva a la más vieja, anotadas para el shelter.
//
// El cursor y totalPages se calculan sobre la página antes del geofence: el
// geofence reduce y reordena lo que se muestra, no cambia la paginación.
func (s *Service) Discover(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	defer func() {
		pipelineDuration.WithLabelValues(strconv.FormatBool(req.Near != nil)).Observe(time.Since(start).Seconds())
	}()

	if req.Near != nil && !req.Near.Valid() {
		return Result{}, ErrInvalidInput
	}
	// 0 = radio por defecto
	if req.RadiusKm != 0 && !validRadius(req.RadiusKm) {
		return Result{}, ErrInvalidInput
	}

	limit := s.clampLimit(req.Limit)
	preds := NormalizeFilter(req.Filter)

	startAfter, err := pets.ResolveCursor(ctx, s.pets, req.Cursor, preds)
	if err != nil {
		return Result{}, err
	}
	qs := BuildQueries(preds, limit, startAfter)

	var (
		page  []pets.Pet
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.pets.List(gctx, qs.List)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.pets.Count(gctx, qs.Count)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	items := toItems(page)
	if err := s.annotate(ctx, req.ShelterID, items); err != nil {
		return Result{}, err
	}

	if req.Near != nil {
		radius := req.RadiusKm
		if radius == 0 {
			radius = s.opts.RadiusKm
		}
		items, err = s.ranker.Rank(ctx, Geofence{Origin: *req.Near, RadiusKm: radius}, items)
		if err != nil {
			return Result{}, err
		}
	}

	s.log.Debug("discovery page", map[string]any{
		"filters":   len(preds),
		"returned":  len(items),
		"total":     total,
		"geofence":  req.Near != nil,
		"has_start": startAfter != nil,
	})

	return Result{
		Items:      items,
		NextCursor: pets.NextCursor(page, limit, preds),
		TotalPages: pets.TotalPages(total, limit),
		Total:      total,
	}, nil
}

// Home: las perCategory más nuevas no adoptadas de cada categoría.
// Los favoritos se leen una sola vez para el shelter y las visitas en un solo agregado.
func (s *Service) Home(ctx context.Context, shelterID string, perCategory int) (Home, error) {
	if shelterID == "" {
		return Home{}, ErrInvalidInput
	}
	limit := s.clampLimit(perCategory)

	groups := make([][]pets.Pet, len(pets.Categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range pets.Categories {
		g.Go(func() error {
			qs := BuildQueries([]pets.Predicate{pets.Eq(pets.FieldCategory, string(c))}, limit, nil)
			list, err := s.pets.List(gctx, qs.List)
			if err != nil {
				return err
			}
			groups[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Home{}, err
	}

	var all []pets.Pet
	for _, list := range groups {
		all = append(all, list...)
	}
	items := toItems(all)
	if err := s.annotate(ctx, shelterID, items); err != nil {
		return Home{}, err
	}

	out := Home{Dog: []Item{}, Cat: []Item{}, Other: []Item{}}
	for _, it := range items {
		switch it.Pet.Category {
		case pets.CategoryDog:
			out.Dog = append(out.Dog, it)
		case pets.CategoryCat:
			out.Cat = append(out.Cat, it)
		default:
			out.Other = append(out.Other, it)
		}
	}
	return out, nil
}

func (s *Service) annotate(ctx context.Context, shelterID string, items []Item) error {
	g, gctx := errgroup.WithContext(ctx)
	// Escriben campos distintos de cada Item.
	g.Go(func() error { return annotateFavorites(gctx, s.favorites, shelterID, items) })
	g.Go(func() error { return annotateViews(gctx, s.views, items) })
	return g.Wait()
}

// validRadius: finito y > 0 (NaN no pasa la comparación).
func validRadius(km float64) bool {
	return km > 0 && !math.IsInf(km, 1)
}

func (s *Service) clampLimit(n int) int {
	if n <= 0 {
		return s.opts.DefaultLimit
	}
	if n > s.opts.MaxLimit {
		return s.opts.MaxLimit
	}
	return n
}

func toItems(list []pets.Pet) []Item {
	out := make([]Item, 0, len(list))
	for _, p := range list {
		out = append(out, Item{Pet: p})
	}
	return out
}
