package bigslog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uptrace/bigassert"
)

type Record struct {
	Level    slog.Level `json:"level"`
	Msg      string     `json:"msg"`
	Error    string     `json:"error"`
	Verb     string     `json:"verb"`
	Negated  bool       `json:"negated"`
	Passed   bool       `json:"passed"`
	Duration string     `json:"duration"`
}

func TestAfterAssert(t *testing.T) {
	start := time.Date(2006, 1, 2, 15, 4, 2, 0, time.Local)
	now := func() time.Time { return time.Date(2006, 1, 2, 15, 4, 5, 0, time.Local) }

	testCases := []struct {
		name   string
		opts   []Option
		event  *bigassert.AssertionEvent
		expect Record
	}{
		{
			name: "passed assertion",
			event: &bigassert.AssertionEvent{
				Verb:      "least",
				Passed:    true,
				Message:   "expected 10 to be greater than or equal to 9",
				StartTime: start,
			},
			expect: Record{
				Level:    slog.LevelDebug,
				Msg:      "expected 10 to be greater than or equal to 9",
				Verb:     "least",
				Passed:   true,
				Duration: "3s",
			},
		},
		{
			name: "failed assertion",
			event: &bigassert.AssertionEvent{
				Verb:      "zero",
				Message:   "expected 1 to be zero",
				Err:       errors.New("expected 1 to be zero"),
				StartTime: start,
			},
			expect: Record{
				Level:    slog.LevelError,
				Msg:      "expected 1 to be zero",
				Error:    "expected 1 to be zero",
				Verb:     "zero",
				Duration: "3s",
			},
		},
		{
			name: "custom fail level",
			opts: []Option{WithFailLogLevel(slog.LevelWarn)},
			event: &bigassert.AssertionEvent{
				Verb:      "zero",
				Negated:   true,
				Message:   "expected 0 to not be zero",
				Err:       errors.New("expected 0 to not be zero"),
				StartTime: start,
			},
			expect: Record{
				Level:    slog.LevelWarn,
				Msg:      "expected 0 to not be zero",
				Error:    "expected 0 to not be zero",
				Verb:     "zero",
				Negated:  true,
				Duration: "3s",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			hook := NewAssertionHook(append(tc.opts, WithLogger(logger))...)
			hook.now = now
			hook.AfterAssert(context.Background(), tc.event)

			var result Record
			require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
			require.Equal(t, tc.expect, result)
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	hook := NewAssertionHook(WithPassLogLevel(slog.LevelInfo))
	hook.AfterAssert(context.Background(), &bigassert.AssertionEvent{Passed: true, Message: "ok"})
	require.Contains(t, buf.String(), `"msg":"ok"`)
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	hook := NewAssertionHook(
		WithLogger(logger),
		WithLogFormat(func(event *bigassert.AssertionEvent) []slog.Attr {
			return []slog.Attr{slog.String("only", event.Verb)}
		}),
	)
	hook.AfterAssert(context.Background(), &bigassert.AssertionEvent{Verb: "equal"})
	require.Contains(t, buf.String(), `"only":"equal"`)
	require.NotContains(t, buf.String(), `"passed"`)
}
