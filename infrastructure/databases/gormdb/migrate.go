package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jrazmi/artisan/sdk/logger"
)

// Migrate creates or updates the tables for models. It never drops columns.
func Migrate(ctx context.Context, log *logger.Logger, db *gorm.DB, models ...any) error {
	if err := StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	for _, m := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return fmt.Errorf("parse model %T: %w", m, err)
		}
		log.InfoContext(ctx, "migrate", "table", stmt.Schema.Table)

		if err := db.WithContext(ctx).AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %s: %w", stmt.Schema.Table, err)
		}
	}

	return nil
}
