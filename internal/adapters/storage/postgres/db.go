package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const driverName = "pgx"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Pool: límites del pool de database/sql. Ceros => DefaultPool.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

func DefaultPool() Pool {
	return Pool{MaxOpen: 10, MaxIdle: 5, MaxIdleTime: 5 * time.Minute, MaxLifetime: 30 * time.Minute}
}

// Open abre el pool (pgx vía database/sql) envuelto en sqlx y hace ping.
func Open(ctx context.Context, dsn string, pool Pool) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	def := DefaultPool()
	db.SetMaxOpenConns(orDefault(pool.MaxOpen, def.MaxOpen))
	db.SetMaxIdleConns(orDefault(pool.MaxIdle, def.MaxIdle))
	db.SetConnMaxIdleTime(orDefault(pool.MaxIdleTime, def.MaxIdleTime))
	db.SetConnMaxLifetime(orDefault(pool.MaxLifetime, def.MaxLifetime))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}

// Migrate aplica las migraciones embebidas. Sin cambios pendientes no es error.
func Migrate(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(dsn))
	if err != nil {
		return fmt.Errorf("migrations init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations up: %w", err)
	}
	return nil
}

// migrateURL: golang-migrate registra el driver pgx/v5 bajo el esquema pgx5://.
func migrateURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
