package postgresdb

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jrazmi/artisan/sdk/logger"
)

type queryStartKey struct{}

// LoggingQueryTracer logs every pool statement at debug and failures at
// error, with the elapsed time.
type LoggingQueryTracer struct {
	log *logger.Logger
}

// NewLoggingQueryTracer returns a tracer writing to log.
func NewLoggingQueryTracer(log *logger.Logger) *LoggingQueryTracer {
	return &LoggingQueryTracer{log: log}
}

var (
	collapseSpaces = regexp.MustCompile(`\s+`)
	openParen      = regexp.MustCompile(`\s*\(\s*`)
	closeParen     = regexp.MustCompile(`\s*\)`)
)

// compactSQL folds a multi-line statement onto one line.
func compactSQL(sql string) string {
	out := collapseSpaces.ReplaceAllString(sql, " ")
	out = openParen.ReplaceAllString(out, "(")
	out = closeParen.ReplaceAllString(out, ")")
	return strings.TrimSpace(out)
}

func (t *LoggingQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	t.log.DebugContext(ctx, "postgres: query start", "sql", compactSQL(data.SQL), "args", len(data.Args))
	return context.WithValue(ctx, queryStartKey{}, time.Now())
}

func (t *LoggingQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	var elapsed time.Duration
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		elapsed = time.Since(start)
	}

	if data.Err != nil {
		t.log.ErrorContext(ctx, "postgres: query failed",
			"error", data.Err,
			"command_tag", data.CommandTag.String(),
			"duration", elapsed,
		)
		return
	}

	t.log.DebugContext(ctx, "postgres: query end",
		"command_tag", data.CommandTag.String(),
		"duration", elapsed,
	)
}
