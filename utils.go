package bigassert

import (
	"fmt"

	"github.com/uptrace/bigassert/internal"
)

// Utils is the toolbox handed to plugins.
type Utils struct {
	fw *Framework
}

func (u Utils) Flag(a *Assertion, name string) any {
	return a.flags[name]
}

func (u Utils) SetFlag(a *Assertion, name string, value any) {
	a.flags[name] = value
}

// SetMessage installs msg as the chain's custom failure message.
// An empty msg is ignored.
func (u Utils) SetMessage(a *Assertion, msg string) {
	if msg != "" {
		a.flags[FlagMessage] = msg
	}
}

func (u Utils) Inspect(v any) string {
	return u.fw.fmter.Inspect(v)
}

// Fail ends the chain with msg, where #{act} is value. Negation and the
// custom message do not apply.
func (u Utils) Fail(a *Assertion, value any, msg string) {
	a.failWith(value, msg)
}

// Operands splits args into n operands and an optional trailing message.
// Any other argument count fails the chain.
func (u Utils) Operands(a *Assertion, n int, args []any) ([]any, string) {
	if len(args) == n+1 {
		if msg, ok := args[n].(string); ok {
			return args[:n], msg
		}
	}
	if len(args) != n {
		a.failf(fmt.Sprintf("%s: expected %s, got %d",
			a.Verb(), internal.Count(n, "operand"), len(args)))
	}
	return args, ""
}
