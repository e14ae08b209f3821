package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers soportados.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// Backends del cache de view counts.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Image hosts.
const (
	ImageHostImgbb = "imgbb"
	ImageHostS3    = "s3"
)

// MaxAssistantRetries acota ASSISTANT_MAX_RETRIES (la espera se duplica en cada reintento).
const MaxAssistantRetries = 10

type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Log       LogConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Discovery DiscoveryConfig
	Gemini    GeminiConfig
	Assistant AssistantConfig
	Images    ImagesConfig
}

type AppConfig struct {
	Name string
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type StorageConfig struct {
	Driver        string
	DSN           string
	Migrate       bool
	MaxOpenConns  int
	MaxIdleConns  int
	MongoURI      string
	MongoDatabase string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	Backend string
	TTL     time.Duration
	Size    int
}

type DiscoveryConfig struct {
	DefaultLimit int
	MaxLimit     int
	RadiusKm     float64
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type AssistantConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
}

type ImagesConfig struct {
	Host           string
	ImgbbAPIKey    string
	ImgbbBaseURL   string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3PublicURL    string
	S3UsePathStyle bool
}

// Load lee .env (si existe), config.yaml (si existe) y variables de entorno.
// Las env tienen prioridad: DB_DSN pisa db.dsn del archivo.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app.name", "petster")
	v.SetDefault("http.read.timeout", 5*time.Second)
	v.SetDefault("http.write.timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("storage.driver", "")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.migrate", true)
	v.SetDefault("db.max.open.conns", 10)
	v.SetDefault("db.max.idle.conns", 5)
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "petster")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// VIEWCOUNT_CACHE es prefijo de las otras dos keys; se bindean a mano.
	_ = v.BindEnv("viewcount.backend", "VIEWCOUNT_CACHE")
	_ = v.BindEnv("viewcount.ttl", "VIEWCOUNT_CACHE_TTL")
	_ = v.BindEnv("viewcount.size", "VIEWCOUNT_CACHE_SIZE")
	v.SetDefault("viewcount.backend", CacheNone)
	v.SetDefault("viewcount.ttl", 5*time.Minute)
	v.SetDefault("viewcount.size", 10000)

	v.SetDefault("discovery.default.limit", 10)
	v.SetDefault("discovery.max.limit", 100)
	v.SetDefault("geofence.radius.km", 10.0)

	v.SetDefault("gemini.api.key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.base.url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.timeout", 30*time.Second)

	v.SetDefault("assistant.max.retries", 3)
	v.SetDefault("assistant.initial.delay", time.Second)

	v.SetDefault("image.host", ImageHostImgbb)
	v.SetDefault("imgbb.api.key", "")
	v.SetDefault("imgbb.base.url", "https://api.imgbb.com")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access.key", "")
	v.SetDefault("s3.secret.key", "")
	v.SetDefault("s3.public.base.url", "")
	v.SetDefault("s3.use.path.style", false)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{Name: v.GetString("app.name")},
		HTTP: HTTPConfig{
			Port:         v.GetString("port"),
			ReadTimeout:  v.GetDuration("http.read.timeout"),
			WriteTimeout: v.GetDuration("http.write.timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
			DSN:           strings.TrimSpace(v.GetString("db.dsn")),
			Migrate:       v.GetBool("db.migrate"),
			MaxOpenConns:  v.GetInt("db.max.open.conns"),
			MaxIdleConns:  v.GetInt("db.max.idle.conns"),
			MongoURI:      strings.TrimSpace(v.GetString("mongo.uri")),
			MongoDatabase: v.GetString("mongo.database"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("viewcount.backend"))),
			TTL:     v.GetDuration("viewcount.ttl"),
			Size:    v.GetInt("viewcount.size"),
		},
		Discovery: DiscoveryConfig{
			DefaultLimit: v.GetInt("discovery.default.limit"),
			MaxLimit:     v.GetInt("discovery.max.limit"),
			RadiusKm:     v.GetFloat64("geofence.radius.km"),
		},
		Gemini: GeminiConfig{
			APIKey:  v.GetString("gemini.api.key"),
			Model:   v.GetString("gemini.model"),
			BaseURL: v.GetString("gemini.base.url"),
			Timeout: v.GetDuration("gemini.timeout"),
		},
		Assistant: AssistantConfig{
			MaxRetries:   v.GetInt("assistant.max.retries"),
			InitialDelay: v.GetDuration("assistant.initial.delay"),
		},
		Images: ImagesConfig{
			Host:           strings.ToLower(strings.TrimSpace(v.GetString("image.host"))),
			ImgbbAPIKey:    v.GetString("imgbb.api.key"),
			ImgbbBaseURL:   v.GetString("imgbb.base.url"),
			S3Bucket:       v.GetString("s3.bucket"),
			S3Region:       v.GetString("s3.region"),
			S3Endpoint:     v.GetString("s3.endpoint"),
			S3AccessKey:    v.GetString("s3.access.key"),
			S3SecretKey:    v.GetString("s3.secret.key"),
			S3PublicURL:    v.GetString("s3.public.base.url"),
			S3UsePathStyle: v.GetBool("s3.use.path.style"),
		},
	}

	// Sin driver explícito: Postgres si hay DSN, Mongo si hay URI, si no in-memory.
	if cfg.Storage.Driver == "" {
		switch {
		case cfg.Storage.DSN != "":
			cfg.Storage.Driver = StoragePostgres
		case cfg.Storage.MongoURI != "":
			cfg.Storage.Driver = StorageMongo
		default:
			cfg.Storage.Driver = StorageMemory
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Storage.DSN == "" {
			return errors.New("config: DB_DSN required for postgres storage")
		}
	case StorageMongo:
		if c.Storage.MongoURI == "" {
			return errors.New("config: MONGO_URI required for mongo storage")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("config: unknown VIEWCOUNT_CACHE %q", c.Cache.Backend)
	}

	switch c.Images.Host {
	case ImageHostImgbb, ImageHostS3:
	default:
		return fmt.Errorf("config: unknown IMAGE_HOST %q", c.Images.Host)
	}

	if c.Discovery.DefaultLimit <= 0 {
		return errors.New("config: DISCOVERY_DEFAULT_LIMIT must be > 0")
	}
	if c.Discovery.MaxLimit < c.Discovery.DefaultLimit {
		return errors.New("config: DISCOVERY_MAX_LIMIT must be >= DISCOVERY_DEFAULT_LIMIT")
	}
	if c.Discovery.RadiusKm <= 0 {
		return errors.New("config: GEOFENCE_RADIUS_KM must be > 0")
	}
	if c.Assistant.MaxRetries < 0 || c.Assistant.MaxRetries > MaxAssistantRetries {
		return fmt.Errorf("config: ASSISTANT_MAX_RETRIES must be between 0 and %d", MaxAssistantRetries)
	}
	return nil
}

// Addr arma ":<port>" para http.Server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.HTTP.Port, ":")
}
