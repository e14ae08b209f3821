package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petster/internal/adapters/cache"
	"petster/internal/adapters/images/imgbb"
	"petster/internal/adapters/images/s3store"
	"petster/internal/adapters/storage/mongostore"
	pg "petster/internal/adapters/storage/postgres"
	"petster/internal/adapters/textgen/gemini"
	"petster/internal/domain/discovery"
	"petster/internal/domain/views"
	"petster/internal/platform/config"
	"petster/internal/platform/logger"
	"petster/internal/platform/retry"
	imgport "petster/internal/ports/images"
	"petster/internal/router"
)

// @title Petster API
// @version 1.0
// @description Backend de adopción de mascotas: discovery, favoritos, visitas y asistente.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run levanta el server hasta que ctx se cancela. Los errores ya salen logueados.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		App:    cfg.App.Name,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	stores, closeStores, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Error("storage error", map[string]any{"err": err, "driver": cfg.Storage.Driver})
		return err
	}
	defer closeStores()

	countCache, closeCache, err := openCountCache(ctx, cfg)
	if err != nil {
		log.Error("cache error", map[string]any{"err": err, "backend": cfg.Cache.Backend})
		return err
	}
	defer closeCache()

	gem, err := gemini.NewClient(gemini.Config{
		BaseURL: cfg.Gemini.BaseURL,
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		log.Error("gemini client error", map[string]any{"err": err})
		return err
	}
	if !gem.IsConfigured() {
		log.Warn("GEMINI_API_KEY not set: assistant endpoints will fail", nil)
	}

	uploader, err := openUploader(ctx, cfg)
	if err != nil {
		log.Error("image host error", map[string]any{"err": err, "host": cfg.Images.Host})
		return err
	}

	policy := retry.Policy{
		MaxRetries:   cfg.Assistant.MaxRetries,
		InitialDelay: cfg.Assistant.InitialDelay,
	}

	r := router.NewRouter(router.Options{
		Logger:         log,
		Stores:         &stores,
		ViewCountCache: countCache,
		TextGenerator:  gemini.NewGenerator(gem),
		ImageUploader:  uploader,
		Discovery: discovery.Options{
			DefaultLimit: cfg.Discovery.DefaultLimit,
			MaxLimit:     cfg.Discovery.MaxLimit,
			RadiusKm:     cfg.Discovery.RadiusKm,
		},
		RetryPolicy: &policy,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": cfg.Storage.Driver,
			"cache":   cfg.Cache.Backend,
			"images":  cfg.Images.Host,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"err": err})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, log logger.Logger) (router.Stores, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		if cfg.Storage.Migrate {
			if err := pg.Migrate(cfg.Storage.DSN); err != nil {
				return router.Stores{}, nil, err
			}
			log.Info("migrations applied", nil)
		}
		db, err := pg.Open(ctx, cfg.Storage.DSN, pg.Pool{
			MaxOpen: cfg.Storage.MaxOpenConns,
			MaxIdle: cfg.Storage.MaxIdleConns,
		})
		if err != nil {
			return router.Stores{}, nil, err
		}
		return router.PostgresStores(db), func() { _ = db.Close() }, nil

	case config.StorageMongo:
		client, db, err := mongostore.Connect(ctx, cfg.Storage.MongoURI, cfg.Storage.MongoDatabase)
		if err != nil {
			return router.Stores{}, nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return router.Stores{}, nil, err
		}
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}
		return router.MongoStores(db), closeFn, nil

	default:
		log.Warn("using in-memory storage: data is lost on restart", nil)
		return router.MemoryStores(), func() {}, nil
	}
}

func openCountCache(ctx context.Context, cfg *config.Config) (views.CountCache, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return cache.NewRedisCounts(client, cfg.Cache.TTL), func() { _ = client.Close() }, nil
	case config.CacheMemory:
		return cache.NewLRUCounts(cfg.Cache.Size, cfg.Cache.TTL), func() {}, nil
	default:
		return nil, func() {}, nil
	}
}

func openUploader(ctx context.Context, cfg *config.Config) (imgport.Uploader, error) {
	if cfg.Images.Host == config.ImageHostS3 {
		return s3store.NewUploader(ctx, s3store.Config{
			Bucket:       cfg.Images.S3Bucket,
			Region:       cfg.Images.S3Region,
			Endpoint:     cfg.Images.S3Endpoint,
			AccessKey:    cfg.Images.S3AccessKey,
			SecretKey:    cfg.Images.S3SecretKey,
			PublicURL:    cfg.Images.S3PublicURL,
			UsePathStyle: cfg.Images.S3UsePathStyle,
		})
	}
	return imgbb.NewClient(imgbb.Config{
		BaseURL: cfg.Images.ImgbbBaseURL,
		APIKey:  cfg.Images.ImgbbAPIKey,
	})
}
