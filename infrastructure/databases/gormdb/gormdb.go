// Package gormdb opens gorm connections for the supported SQL drivers.
package gormdb

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jrazmi/artisan/infrastructure/postgresdb"
	"github.com/jrazmi/artisan/sdk/environment"
	"github.com/jrazmi/artisan/sdk/logger"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Options represents the exportable database configuration
type Options struct {
	Driver          string        `toml:"driver" env:"DB_DRIVER" default:"sqlite"`
	DSN             string        `toml:"dsn" env:"DB_DSN" default:"artisan.db"`
	MaxIdleConns    int           `toml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" default:"10"`
	MaxOpenConns    int           `toml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" default:"100"`
	ConnMaxLifetime time.Duration `toml:"-" env:"DB_CONN_MAX_LIFETIME" default:"1h"`
	SlowThreshold   time.Duration `toml:"-" env:"DB_SLOW_THRESHOLD" default:"200ms"`
}

// options holds the internal runtime configuration
type options struct {
	pool          *pgxpool.Pool
	slowThreshold time.Duration
}

// Option is a function that configures the database options
type Option func(*options)

// WithPool makes the postgres driver run on an existing pgx pool instead of
// dialing the DSN itself.
func WithPool(pool *pgxpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithSlowThreshold overrides the duration above which queries are logged as
// slow.
func WithSlowThreshold(d time.Duration) Option {
	return func(o *options) {
		o.slowThreshold = d
	}
}

// NewFromEnv opens a database configured through prefixed environment
// variables.
func NewFromEnv(log *logger.Logger, prefix string, opts ...Option) (*gorm.DB, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	return Open(log, cfg, opts...)
}

// Open opens a database for cfg.
func Open(log *logger.Logger, cfg Options, opts ...Option) (*gorm.DB, error) {
	o := &options{
		slowThreshold: cfg.SlowThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}

	dialector, err := dialectorFor(cfg, o)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(log, o.slowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	// pgx manages its own pool when shared.
	if o.pool == nil {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// OpenPool opens a postgres gorm handle on top of an existing pgx pool.
func OpenPool(log *logger.Logger, pool *pgxpool.Pool) (*gorm.DB, error) {
	return Open(log, Options{Driver: DriverPostgres, SlowThreshold: 200 * time.Millisecond}, WithPool(pool))
}

// OpenSQLite opens a sqlite database at path with default settings.
func OpenSQLite(log *logger.Logger, path string) (*gorm.DB, error) {
	return Open(log, Options{
		Driver:          DriverSQLite,
		DSN:             path,
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
		SlowThreshold:   200 * time.Millisecond,
	})
}

func dialectorFor(cfg Options, o *options) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres:
		if o.pool != nil {
			return postgres.New(postgres.Config{Conn: postgresdb.OpenDB(o.pool)}), nil
		}
		return postgres.Open(cfg.DSN), nil
	case DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", cfg.Driver)
	}
}

// StatusCheck returns nil if it can successfully talk to the database.
func StatusCheck(ctx context.Context, db *gorm.DB) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
