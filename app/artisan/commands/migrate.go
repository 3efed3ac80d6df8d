package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/jrazmi/artisan/core/repositories/usersrepo"
	"github.com/jrazmi/artisan/infrastructure/databases/gormdb"
	"github.com/jrazmi/artisan/infrastructure/postgresdb"
	"github.com/jrazmi/artisan/sdk/environment"
)

const migrateTimeout = 5 * time.Minute

// Models lists the entities migrate creates tables for.
func Models() []any {
	return []any{
		&usersrepo.User{},
	}
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the tables of the registered models",
		Long: `Create or update the tables of the registered models. The database is
chosen with ARTISAN_DB_DRIVER (sqlite, mysql or postgres) and ARTISAN_DB_DSN.
The postgres driver connects through a pgx pool configured with
ARTISAN_PG_DATABASE_URL and ARTISAN_PG_DATABASE_* pool settings; set
ARTISAN_PG_DATABASE_LOG_QUERIES=true to trace statements.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			if err := a.migrate(ctx); err != nil {
				return &ExitError{Err: err, Code: ExitGeneralError}
			}
			return nil
		},
	}
}

func (a *app) migrate(ctx context.Context) error {
	db, closeDB, err := a.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		a.log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		closeDB()
	}()

	models := Models()
	a.log.InfoContext(ctx, "migration started", "models", len(models))

	if err := gormdb.Migrate(ctx, a.log, db, models...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	a.console.Info("Migrated %d model(s).", len(models))
	return nil
}

// openDatabase opens the configured database. The returned func releases it.
func (a *app) openDatabase(ctx context.Context) (*gorm.DB, func(), error) {
	driver := environment.GetPrefixEnvOrDefault(AppName, "DB_DRIVER", gormdb.DriverSQLite)

	if driver != gormdb.DriverPostgres {
		db, err := gormdb.NewFromEnv(a.log, AppName)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s database: %w", driver, err)
		}
		return db, func() { _ = gormdb.Close(db) }, nil
	}

	pool, err := postgresdb.NewFromEnv(ctx, a.log, AppName)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring postgres support: %w", err)
	}

	db, err := gormdb.NewFromEnv(a.log, AppName, gormdb.WithPool(pool))
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("opening postgres database: %w", err)
	}

	return db, func() {
		_ = gormdb.Close(db)
		pool.Close()
	}, nil
}
