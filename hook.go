package bigassert

import (
	"context"
	"time"
)

type AssertionEvent struct {
	Framework *Framework

	Verb     string
	Subject  any
	Expected any
	Actual   any

	Negated bool
	Passed  bool
	Message string
	Err     error

	StartTime time.Time

	Stash map[any]any

	started bool
}

// AssertionHook observes assertion outcomes. BeforeAssert runs when a verb
// first evaluates an outcome; AfterAssert runs, in reverse order, once the
// verb returns.
type AssertionHook interface {
	BeforeAssert(context.Context, *AssertionEvent) context.Context
	AfterAssert(context.Context, *AssertionEvent)
}

func (a *Assertion) beforeAssert(event *AssertionEvent) {
	if event.started {
		return
	}
	event.started = true
	event.StartTime = time.Now()

	for _, hook := range a.hooks {
		a.runCtx = hook.BeforeAssert(a.runCtx, event)
	}
}

func (a *Assertion) afterAssert(event *AssertionEvent) {
	for i := len(a.hooks) - 1; i >= 0; i-- {
		a.hooks[i].AfterAssert(a.runCtx, event)
	}
}
