// Package bigzerolog logs assertion outcomes with zerolog.
package bigzerolog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/uptrace/bigassert"
)

var _ bigassert.AssertionHook = (*AssertionHook)(nil)

// Option is a function that configures an AssertionHook.
type Option func(*AssertionHook)

// WithLogger sets the *zerolog.Logger instance.
func WithLogger(logger *zerolog.Logger) Option {
	return func(h *AssertionHook) {
		h.logger = logger
	}
}

// WithPassLogLevel sets the log level for passed assertions.
func WithPassLogLevel(level zerolog.Level) Option {
	return func(h *AssertionHook) {
		h.passLogLevel = level
	}
}

// WithFailLogLevel sets the log level for failed assertions.
func WithFailLogLevel(level zerolog.Level) Option {
	return func(h *AssertionHook) {
		h.failLogLevel = level
	}
}

// WithLogFormat sets a custom format for the log event.
func WithLogFormat(f LogFormatFn) Option {
	return func(h *AssertionHook) {
		h.logFormat = f
	}
}

type LogFormatFn func(
	ctx context.Context, event *bigassert.AssertionEvent, zevent *zerolog.Event,
) *zerolog.Event

// AssertionHook logs every evaluated assertion.
type AssertionHook struct {
	logger       *zerolog.Logger
	passLogLevel zerolog.Level
	failLogLevel zerolog.Level
	logFormat    LogFormatFn
	now          func() time.Time
}

func NewAssertionHook(opts ...Option) *AssertionHook {
	h := &AssertionHook{
		passLogLevel: zerolog.DebugLevel,
		failLogLevel: zerolog.ErrorLevel,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.logFormat == nil {
		h.logFormat = func(
			ctx context.Context, event *bigassert.AssertionEvent, zevent *zerolog.Event,
		) *zerolog.Event {
			return zevent.
				Ctx(ctx).
				Err(event.Err).
				Str("verb", event.Verb).
				Bool("negated", event.Negated).
				Bool("passed", event.Passed).
				Str("duration", h.now().Sub(event.StartTime).String())
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

	logger := h.logger
	if logger == nil {
		logger = log.Ctx(ctx)
	}

	h.logFormat(ctx, event, logger.WithLevel(level)).Msg(event.Message)
}
