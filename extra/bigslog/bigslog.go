// Package bigslog logs assertion outcomes with log/slog.
package bigslog

import (
	"context"
	"log/slog"
	"time"

	"github.com/uptrace/bigassert"
)

// Option is a function that configures an AssertionHook.
type Option func(*AssertionHook)

// WithLogger sets the *slog.Logger instance.
func WithLogger(logger *slog.Logger) Option {
	return func(h *AssertionHook) {
		h.logger = logger
	}
}

// WithPassLogLevel sets the log level for passed assertions.
func WithPassLogLevel(level slog.Level) Option {
	return func(h *AssertionHook) {
		h.passLogLevel = level
	}
}

// WithFailLogLevel sets the log level for failed assertions.
func WithFailLogLevel(level slog.Level) Option {
	return func(h *AssertionHook) {
		h.failLogLevel = level
	}
}

// WithLogFormat sets the attributes logged for each assertion.
func WithLogFormat(f logFormat) Option {
	return func(h *AssertionHook) {
		h.logFormat = f
	}
}

type logFormat func(event *bigassert.AssertionEvent) []slog.Attr

// AssertionHook logs every evaluated assertion.
type AssertionHook struct {
	logger       *slog.Logger
	passLogLevel slog.Level
	failLogLevel slog.Level
	logFormat    logFormat
	now          func() time.Time
}

func NewAssertionHook(opts ...Option) *AssertionHook {
	h := &AssertionHook{
		passLogLevel: slog.LevelDebug,
		failLogLevel: slog.LevelError,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.logFormat == nil {
		h.logFormat = func(event *bigassert.AssertionEvent) []slog.Attr {
			return []slog.Attr{
				slog.Any("error", event.Err),
				slog.String("verb", event.Verb),
				slog.Bool("negated", event.Negated),
				slog.Bool("passed", event.Passed),
				slog.String("duration", h.now().Sub(event.StartTime).String()),
			}
		}
	}

	return h
}

func (h *AssertionHook) BeforeAssert(
	ctx context.Context, _ *bigassert.AssertionEvent,
) context.Context {
	return ctx
}

func (h *AssertionHook) AfterAssert(ctx context.Context, event *bigassert.AssertionEvent) {
	level := h.passLogLevel
	if !event.Passed {
		level = h.failLogLevel
	}

	attrs := h.logFormat(event)
	if h.logger != nil {
		h.logger.LogAttrs(ctx, level, event.Message, attrs...)
		return
	}

	slog.LogAttrs(ctx, level, event.Message, attrs...)
}

var (
	_ bigassert.AssertionHook = (*AssertionHook)(nil)
)
