// Package bigdebug prints assertion outcomes in a human-readable form.
package bigdebug

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/fatih/color"

	"github.com/uptrace/bigassert"
)

type Option func(*AssertionHook)

// WithEnabled enables/disables this hook.
func WithEnabled(on bool) Option {
	return func(h *AssertionHook) {
		h.enabled = on
	}
}

// WithVerbose configures the hook to print passed assertions too.
// By default only failures are printed.
func WithVerbose(on bool) Option {
	return func(h *AssertionHook) {
		h.verbose = on
	}
}

// WithWriter sets the log output to an io.Writer
// the default is os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(h *AssertionHook) {
		h.writer = w
	}
}

// FromEnv configures the hook using the environment variable value.
// For example, FromEnv("BIGDEBUG"):
//   - BIGDEBUG=0 - disables the hook.
//   - BIGDEBUG=1 - enables the hook.
//   - BIGDEBUG=2 - enables the hook and verbose mode.
func FromEnv(keys ...string) Option {
	if len(keys) == 0 {
		keys = []string{"BIGDEBUG"}
	}
	return func(h *AssertionHook) {
		for _, key := range keys {
			if env, ok := os.LookupEnv(key); ok {
				h.enabled = env != "" && env != "0"
				h.verbose = env == "2"
				break
			}
		}
	}
}

type AssertionHook struct {
	enabled bool
	verbose bool
	writer  io.Writer
}

var _ bigassert.AssertionHook = (*AssertionHook)(nil)

func NewAssertionHook(options ...Option) *AssertionHook {
	h := &AssertionHook{
		enabled: true,
		writer:  os.Stderr,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func (h *AssertionHook) BeforeAssert(
	ctx context.Context, event *bigassert.AssertionEvent,
) context.Context {
	return ctx
}

func (h *AssertionHook) AfterAssert(ctx context.Context, event *bigassert.AssertionEvent) {
	if !h.enabled {
		return
	}
	if !h.verbose && event.Passed {
		return
	}

	now := time.Now()
	dur := now.Sub(event.StartTime)

	verb := event.Verb
	if event.Negated {
		verb = "not " + verb
	}

	args := []any{
		"[bigassert]",
		now.Format(" 15:04:05.000 "),
		formatVerb(verb, event.Passed),
		fmt.Sprintf(" %10s ", dur.Round(time.Microsecond)),
		formatSubject(event.Subject),
		" ",
		event.Message,
	}

	if event.Err != nil {
		typ := reflect.TypeOf(event.Err).String()
		args = append(args,
			"\t",
			color.New(color.BgRed).Sprintf(" %s ", typ),
		)
	}

	fmt.Fprintln(h.writer, args...)
}

func formatVerb(verb string, passed bool) string {
	if passed {
		return color.New(color.BgGreen, color.FgHiWhite).Sprintf(" %-8s ", verb)
	}
	return color.New(color.BgRed, color.FgHiWhite).Sprintf(" %-8s ", verb)
}

func formatSubject(v any) string {
	return color.New(color.FgCyan).Sprint(fmt.Sprintf("%T", v))
}
