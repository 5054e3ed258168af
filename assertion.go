package bigassert

import (
	"context"

	"github.com/uptrace/bigassert/msgfmt"
)

// Flags managed by the framework itself.
const (
	FlagNegate  = "negate"
	FlagMessage = "message"
)

// Assertion is one chain, e.g. Expect(t, x).Not().Equal(y). Flags set on
// a chain never leak into another chain.
type Assertion struct {
	fw      *Framework
	t       TestingT
	ctx     context.Context
	subject any
	flags   map[string]any
	hooks   []AssertionHook

	event  *AssertionEvent
	runCtx context.Context
	err    *AssertionError
}

func (a *Assertion) Subject() any {
	return a.subject
}

func (a *Assertion) Context() context.Context {
	return a.ctx
}

// Verb returns the name of the verb being evaluated.
func (a *Assertion) Verb() string {
	if a.event != nil {
		return a.event.Verb
	}
	return ""
}

func (a *Assertion) Negated() bool {
	negate, _ := a.flags[FlagNegate].(bool)
	return negate
}

// Err returns the first failure of the chain.
func (a *Assertion) Err() error {
	if a.err == nil {
		return nil
	}
	return a.err
}

func (a *Assertion) Failed() bool {
	return a.err != nil
}

//------------------------------------------------------------------------------

// Language chains. They only improve readability.

func (a *Assertion) To() *Assertion    { return a }
func (a *Assertion) Be() *Assertion    { return a }
func (a *Assertion) Been() *Assertion  { return a }
func (a *Assertion) Is() *Assertion    { return a }
func (a *Assertion) That() *Assertion  { return a }
func (a *Assertion) Which() *Assertion { return a }
func (a *Assertion) And() *Assertion   { return a }
func (a *Assertion) Has() *Assertion   { return a }
func (a *Assertion) Have() *Assertion  { return a }
func (a *Assertion) With() *Assertion  { return a }
func (a *Assertion) At() *Assertion    { return a }
func (a *Assertion) Of() *Assertion    { return a }
func (a *Assertion) Same() *Assertion  { return a }
func (a *Assertion) A() *Assertion     { return a }
func (a *Assertion) An() *Assertion    { return a }

// Not negates every following verb of the chain.
func (a *Assertion) Not() *Assertion {
	a.flags[FlagNegate] = true
	return a
}

// Prop evaluates the named property, e.g. "zero" or a plugin keyword.
func (a *Assertion) Prop(name string) *Assertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	fn, ok := a.fw.property(name)
	if !ok {
		fn = undefinedProperty(name)
	}
	return a.run(name, func() {
		fn(a)
	})
}

// Call evaluates the named method with args.
func (a *Assertion) Call(name string, args ...any) *Assertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	fn, ok := a.fw.method(name)
	if !ok {
		fn = undefinedMethod(name)
	}
	return a.run(name, func() {
		fn(a, args...)
	})
}

func (a *Assertion) run(verb string, fn func()) *Assertion {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	if a.err != nil {
		return a
	}
	// Nested verbs report through the outermost one.
	if a.event != nil {
		fn()
		return a
	}

	event := &AssertionEvent{
		Framework: a.fw,
		Verb:      verb,
		Subject:   a.subject,
	}
	a.event = event
	a.runCtx = a.ctx
	defer func() {
		a.event = nil
	}()

	err := catch(fn)

	a.event = nil
	if event.started {
		a.afterAssert(event)
	}

	if err != nil {
		a.err = err
		a.t.Errorf("%s", err.Error())
		a.t.FailNow()
	}
	return a
}

// Assert records an outcome. msg is used when the chain is not negated and
// negMsg when it is; both may reference #{this}, #{act} and #{exp}.
// #{this} is actual when it is not nil, the subject otherwise.
// A failure ends the chain.
func (a *Assertion) Assert(ok bool, msg, negMsg string, expected, actual any) {
	if a.event == nil {
		a.run("assert", func() {
			a.Assert(ok, msg, negMsg, expected, actual)
		})
		return
	}

	negated := a.Negated()
	if negated {
		ok = !ok
		msg = negMsg
	}

	this := a.subject
	if actual != nil {
		this = actual
	}
	a.record(ok, msg, this, expected, actual, negated, true)
}

// failWith fails regardless of negation and without the custom message.
func (a *Assertion) failWith(value any, msg string) {
	if a.event == nil {
		a.run("fail", func() {
			a.failWith(value, msg)
		})
		return
	}
	a.record(false, msg, a.subject, nil, value, false, false)
}

func (a *Assertion) failf(msg string) {
	a.failWith(nil, msg)
}

func (a *Assertion) record(
	passed bool, msg string, this, expected, actual any, negated, withCustom bool,
) {
	text := a.fw.fmter.
		WithArg(msgfmt.This, this).
		WithArg(msgfmt.Actual, actual).
		WithArg(msgfmt.Expected, expected).
		Format(msg)
	if withCustom {
		if custom, _ := a.flags[FlagMessage].(string); custom != "" {
			text = custom + ": " + text
		}
	}

	event := a.event
	a.beforeAssert(event)
	event.Expected = expected
	event.Actual = actual
	event.Negated = negated
	event.Passed = passed
	event.Message = text

	if passed {
		return
	}

	err := &AssertionError{
		Message:  text,
		Expected: expected,
		Actual:   actual,
		Negated:  negated,
	}
	event.Err = err
	panic(failure{err: err})
}

//------------------------------------------------------------------------------

func (a *Assertion) Equal(v any, msg ...string) *Assertion {
	return a.Call("equal", withMessage(msg, v)...)
}

func (a *Assertion) Equals(v any, msg ...string) *Assertion {
	return a.Call("equals", withMessage(msg, v)...)
}

func (a *Assertion) Eq(v any, msg ...string) *Assertion {
	return a.Call("eq", withMessage(msg, v)...)
}

func (a *Assertion) Above(v any, msg ...string) *Assertion {
	return a.Call("above", withMessage(msg, v)...)
}

func (a *Assertion) Gt(v any, msg ...string) *Assertion {
	return a.Call("gt", withMessage(msg, v)...)
}

func (a *Assertion) GreaterThan(v any, msg ...string) *Assertion {
	return a.Call("greaterThan", withMessage(msg, v)...)
}

func (a *Assertion) Least(v any, msg ...string) *Assertion {
	return a.Call("least", withMessage(msg, v)...)
}

func (a *Assertion) Gte(v any, msg ...string) *Assertion {
	return a.Call("gte", withMessage(msg, v)...)
}

func (a *Assertion) Below(v any, msg ...string) *Assertion {
	return a.Call("below", withMessage(msg, v)...)
}

func (a *Assertion) Lt(v any, msg ...string) *Assertion {
	return a.Call("lt", withMessage(msg, v)...)
}

func (a *Assertion) LessThan(v any, msg ...string) *Assertion {
	return a.Call("lessThan", withMessage(msg, v)...)
}

func (a *Assertion) Most(v any, msg ...string) *Assertion {
	return a.Call("most", withMessage(msg, v)...)
}

func (a *Assertion) Lte(v any, msg ...string) *Assertion {
	return a.Call("lte", withMessage(msg, v)...)
}

func (a *Assertion) CloseTo(v, delta any, msg ...string) *Assertion {
	return a.Call("closeTo", withMessage(msg, v, delta)...)
}

func (a *Assertion) Negative() *Assertion {
	return a.Prop("negative")
}

func (a *Assertion) Zero() *Assertion {
	return a.Prop("zero")
}

func withMessage(msg []string, operands ...any) []any {
	if len(msg) > 0 {
		return append(operands, msg[0])
	}
	return operands
}
