package bigassert

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingT collects failures and keeps going on FailNow.
type recordingT struct {
	errors  []string
	failNow int
	helper  int
}

func (t *recordingT) Errorf(format string, args ...any) {
	t.errors = append(t.errors, fmt.Sprintf(format, args...))
}

func (t *recordingT) FailNow() {
	t.failNow++
}

func (t *recordingT) Helper() {
	t.helper++
}

func Test_withMessage(t *testing.T) {
	t.Run("no message", func(t *testing.T) {
		require.Equal(t, []any{1}, withMessage(nil, 1))
	})

	t.Run("message is appended", func(t *testing.T) {
		require.Equal(t, []any{1, 2, "msg"}, withMessage([]string{"msg"}, 1, 2))
	})

	t.Run("extra messages are dropped", func(t *testing.T) {
		require.Equal(t, []any{1, "a"}, withMessage([]string{"a", "b"}, 1))
	})
}

func TestUtils_Operands(t *testing.T) {
	fw := New()
	utils := Utils{fw: fw}

	type Test struct {
		name   string
		n      int
		args   []any
		ops    []any
		msg    string
		wanted string
	}

	tests := []Test{
		{name: "exact", n: 1, args: []any{1}, ops: []any{1}},
		{name: "with message", n: 1, args: []any{1, "msg"}, ops: []any{1}, msg: "msg"},
		{name: "two operands", n: 2, args: []any{1, 2}, ops: []any{1, 2}},
		{name: "two operands with message", n: 2, args: []any{"1", "2", "m"}, ops: []any{"1", "2"}, msg: "m"},
		{name: "missing", n: 1, args: nil, wanted: "verb: expected 1 operand, got 0"},
		{name: "missing one of two", n: 2, args: []any{1}, wanted: "verb: expected 2 operands, got 1"},
		{name: "non-string extra", n: 1, args: []any{1, 2}, wanted: "verb: expected 1 operand, got 2"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ops []any
			var msg string
			a := fw.newAssertion(context.Background(), discardT{}, nil)
			a.run("verb", func() {
				ops, msg = utils.Operands(a, test.n, test.args)
			})
			if test.wanted != "" {
				require.EqualError(t, a.Err(), test.wanted)
				return
			}
			require.NoError(t, a.Err())
			require.Equal(t, test.ops, ops)
			require.Equal(t, test.msg, msg)
		})
	}
}
