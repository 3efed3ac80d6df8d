package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/jrazmi/artisan/sdk/environment"
)

// Logger is a wrapper around the standard slog.Logger.
type Logger struct {
	*slog.Logger
}

// options holds all configurable settings for the logger.
type options struct {
	level      slog.Level
	output     io.Writer
	addSource  bool
	format     string // "json" or "text"
	timeFormat string // "RFC3339", "Unix", "UnixMilli", or custom format
	traceID    func(context.Context) string
}

// Options is the exportable configuration struct
type Options struct {
	Level      string `toml:"level" json:"level" env:"LOG_LEVEL" default:"INFO"`
	Output     string `toml:"output" json:"output" env:"LOG_OUTPUT" default:"STDERR"`
	Format     string `toml:"format" json:"format" env:"LOG_FORMAT" default:"text"`
	TimeFormat string `toml:"time_format" json:"time_format" env:"LOG_TIME_FORMAT" default:"RFC3339"`
}

// Option takes config option and  returns formatted config
type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		o.level = parseLevel(level)
	}
}

// WithOutput redirects log records to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithFormat selects the "json" or "text" handler.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithTraceID adds a trace_id attribute, taken from the record's context,
// to every record logged through a *Context method.
func WithTraceID(fn func(context.Context) string) Option {
	return func(o *options) {
		o.traceID = fn
	}
}

func NewDefault(opts ...Option) *Logger {
	options := Options{
		Level:      "INFO",
		Output:     "STDERR",
		Format:     "json",
		TimeFormat: time.RFC3339,
	}
	return newLogger(options, opts...)
}

// NewDiscard returns a logger that drops everything. Handy in tests.
func NewDiscard() *Logger {
	return NewDefault(WithOutput(io.Discard))
}

func NewStdLogger(logger *Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Logger.Handler(), level)
}

func NewFromEnv(prefix string, opts ...Option) (*Logger, error) {
	var options Options
	if err := environment.ParseEnvTags(prefix, &options); err != nil {
		return nil, fmt.Errorf("parsing logger config: %w", err)
	}
	return newLogger(options, opts...), nil
}

// New creates a logger from an already populated Options value.
func New(cfg Options, opts ...Option) *Logger {
	return newLogger(cfg, opts...)
}

func newLogger(cfg Options, opts ...Option) *Logger {
	options := &options{
		level:      parseLevel(cfg.Level),
		output:     parseOutput(cfg.Output),
		timeFormat: cfg.TimeFormat,
		format:     cfg.Format,
	}
	for _, opt := range opts {
		opt(options)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     options.level,
		AddSource: options.addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey || options.timeFormat == "" {
				return a
			}
			switch options.timeFormat {
			case "Unix":
				return slog.Int64(slog.TimeKey, a.Value.Time().Unix())
			case "UnixMilli":
				return slog.Int64(slog.TimeKey, a.Value.Time().UnixMilli())
			case "RFC3339Nano":
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339Nano))
			case "RFC3339":
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			default:
				// Treat as custom format
				return slog.String(slog.TimeKey, a.Value.Time().Format(options.timeFormat))
			}
		},
	}

	var handler slog.Handler
	switch options.format {
	case "text":
		handler = slog.NewTextHandler(options.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(options.output, handlerOpts)
	}
	if options.traceID != nil {
		handler = &traceHandler{Handler: handler, traceID: options.traceID}
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// traceHandler decorates records with the trace id carried by the context.
type traceHandler struct {
	slog.Handler
	traceID func(context.Context) string
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if id := h.traceID(ctx); id != "" {
			r.AddAttrs(slog.String("trace_id", id))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs), traceID: h.traceID}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name), traceID: h.traceID}
}

// DebugContextf logs a debug message with formatting
func (l *Logger) DebugContextf(ctx context.Context, format string, args ...any) {
	l.DebugContext(ctx, fmt.Sprintf(format, args...))
}

// InfoContextf logs an info message with formatting
func (l *Logger) InfoContextf(ctx context.Context, format string, args ...any) {
	l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

// WarnContextf logs a warning message with formatting
func (l *Logger) WarnContextf(ctx context.Context, format string, args ...any) {
	l.WarnContext(ctx, fmt.Sprintf(format, args...))
}

// ErrorContextf logs an error message with formatting
func (l *Logger) ErrorContextf(ctx context.Context, format string, args ...any) {
	l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}
