package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jrazmi/artisan/sdk/logger"
)

// gormLogger adapts *logger.Logger to gorm's logger interface. Statements
// are logged at debug, slow statements at warn and failures at error.
// Missing records are expected and stay at debug.
type gormLogger struct {
	log           *logger.Logger
	slowThreshold time.Duration
	silent        bool
}

func newGormLogger(log *logger.Logger, slow time.Duration) *gormLogger {
	return &gormLogger{
		log:           log,
		slowThreshold: slow,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.silent = level == gormlogger.Silent
	return &cp
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.silent {
		return
	}
	l.log.InfoContext(ctx, fmt.Sprintf(msg, data...))
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.silent {
		return
	}
	l.log.WarnContext(ctx, fmt.Sprintf(msg, data...))
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.silent {
		return
	}
	l.log.ErrorContext(ctx, fmt.Sprintf(msg, data...))
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log.ErrorContext(ctx, "database query failed", "sql", sql, "rows", rows, "duration", elapsed, "error", err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		l.log.WarnContext(ctx, "slow database query", "sql", sql, "rows", rows, "duration", elapsed)
	default:
		l.log.DebugContext(ctx, "database query", "sql", sql, "rows", rows, "duration", elapsed)
	}
}
