package router

import (
	"net/http"

	_ "petster/docs"
	"petster/internal/domain/assistant"
	"petster/internal/domain/discovery"
	"petster/internal/domain/favorites"
	"petster/internal/domain/images"
	"petster/internal/domain/pets"
	"petster/internal/domain/views"
	"petster/internal/domain/volunteers"
	"petster/internal/middleware"
	"petster/internal/platform/logger"
	"petster/internal/platform/retry"
	imgport "petster/internal/ports/images"
	"petster/internal/ports/textgen"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil = nop

	// Opcional: si no viene, repos in-memory.
	Stores *Stores

	// Cache de view counts; nil = siempre agrega desde el repo.
	ViewCountCache views.CountCache

	// Pueden ser nil: el asistente y el upload responden error.
	TextGenerator textgen.Generator
	ImageUploader imgport.Uploader

	Discovery   discovery.Options
	RetryPolicy *retry.Policy
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	stores := MemoryStores()
	if opts.Stores != nil {
		stores = *opts.Stores
	}

	policy := retry.DefaultPolicy()
	if opts.RetryPolicy != nil {
		policy = *opts.RetryPolicy
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.ViewerContext())
	r.Use(middleware.Metrics())
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	volunteersSvc := volunteers.NewService(stores.Volunteers)
	viewsSvc := views.NewService(stores.Views, opts.ViewCountCache, log)

	petsSvc := pets.NewService(stores.Pets, pets.Deps{
		Views:      viewsSvc,
		Volunteers: volunteersSvc,
	})
	favoritesSvc := favorites.NewService(stores.Favorites, petsSvc, viewsSvc)
	petsSvc.SetFavorites(favoritesSvc)
	petsSvc.AddCleaners(viewsSvc, favoritesSvc)

	discoverySvc := discovery.NewService(stores.Pets, favoritesSvc, viewsSvc, volunteersSvc, log, opts.Discovery)
	assistantSvc := assistant.NewService(stores.Assistant, opts.TextGenerator, policy, log)
	imagesSvc := images.NewService(opts.ImageUploader)

	// Rutas por módulo
	discovery.RegisterRoutes(r, discoverySvc, log)
	favorites.RegisterRoutes(r, favoritesSvc, log)
	images.RegisterRoutes(r, imagesSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)
	views.RegisterRoutes(r, viewsSvc, petsSvc, log)
	volunteers.RegisterRoutes(r, volunteersSvc)
	assistant.RegisterRoutes(r, assistantSvc, log)

	return r
}
