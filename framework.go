package bigassert

import (
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/bigassert/internal"
	"github.com/uptrace/bigassert/msgfmt"
)

type (
	// MethodFunc implements a verb that takes operands, e.g. equal.
	MethodFunc func(a *Assertion, args ...any)
	// PropertyFunc implements a verb without operands, e.g. zero, or a
	// keyword that only sets a flag.
	PropertyFunc func(a *Assertion)
)

type config struct {
	truncateThreshold int
	hooks             []AssertionHook
	plugins           []Plugin
}

type ConfigOption func(cfg *config)

// WithTruncateThreshold limits how many characters of a composite value
// (struct, map, slice) are shown in failure messages. Zero shows everything.
func WithTruncateThreshold(n int) ConfigOption {
	return func(cfg *config) {
		cfg.truncateThreshold = n
	}
}

func WithAssertionHook(hook AssertionHook) ConfigOption {
	return func(cfg *config) {
		cfg.hooks = append(cfg.hooks, hook)
	}
}

// WithPlugins installs plugins right after the native verbs.
func WithPlugins(plugins ...Plugin) ConfigOption {
	return func(cfg *config) {
		cfg.plugins = append(cfg.plugins, plugins...)
	}
}

// Framework is a registry of verbs. Plugins are installed with Use before
// any assertion runs; afterwards it is safe for concurrent use.
type Framework struct {
	cfg   config
	fmter msgfmt.Formatter

	mu             sync.RWMutex
	methods        map[string]MethodFunc
	properties     map[string]PropertyFunc
	assertionHooks []AssertionHook
}

func New(opts ...ConfigOption) *Framework {
	fw := &Framework{
		methods:    make(map[string]MethodFunc),
		properties: make(map[string]PropertyFunc),
	}

	for _, opt := range opts {
		opt(&fw.cfg)
	}

	fw.fmter = msgfmt.NewFormatter().WithTruncateThreshold(fw.cfg.truncateThreshold)
	fw.assertionHooks = append(fw.assertionHooks, fw.cfg.hooks...)

	installNative(fw)
	fw.Use(fw.cfg.plugins...)

	return fw
}

func (fw *Framework) Use(plugins ...Plugin) *Framework {
	utils := Utils{fw: fw}
	for _, plugin := range plugins {
		plugin(fw, utils)
	}
	return fw
}

func (fw *Framework) Formatter() msgfmt.Formatter {
	return fw.fmter
}

func (fw *Framework) AddAssertionHook(hook AssertionHook) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.assertionHooks = append(fw.assertionHooks, hook)
}

func (fw *Framework) AddMethod(name string, fn MethodFunc) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.methods[name] = fn
}

func (fw *Framework) AddProperty(name string, fn PropertyFunc) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.properties[name] = fn
}

// OverwriteMethod replaces the named method with the result of fn, which
// receives the previous implementation so it can delegate to it.
func (fw *Framework) OverwriteMethod(name string, fn func(original MethodFunc) MethodFunc) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	original, ok := fw.methods[name]
	if !ok {
		internal.Warn.Printf("overwriting undefined method %q", name)
		original = undefinedMethod(name)
	}
	fw.methods[name] = fn(original)
}

// OverwriteProperty is OverwriteMethod for properties.
func (fw *Framework) OverwriteProperty(name string, fn func(original PropertyFunc) PropertyFunc) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	original, ok := fw.properties[name]
	if !ok {
		internal.Warn.Printf("overwriting undefined property %q", name)
		original = undefinedProperty(name)
	}
	fw.properties[name] = fn(original)
}

func (fw *Framework) HasMethod(name string) bool {
	_, ok := fw.method(name)
	return ok
}

func (fw *Framework) HasProperty(name string) bool {
	_, ok := fw.property(name)
	return ok
}

func (fw *Framework) method(name string) (MethodFunc, bool) {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	fn, ok := fw.methods[name]
	return fn, ok
}

func (fw *Framework) property(name string) (PropertyFunc, bool) {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	fn, ok := fw.properties[name]
	return fn, ok
}

func (fw *Framework) hooks() []AssertionHook {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	l := len(fw.assertionHooks)
	return fw.assertionHooks[:l:l]
}

//------------------------------------------------------------------------------

// Expect starts an assertion chain on subject. An optional message
// prefixes every failure of the chain.
func (fw *Framework) Expect(t TestingT, subject any, msg ...string) *Assertion {
	return fw.ExpectContext(context.Background(), t, subject, msg...)
}

func (fw *Framework) ExpectContext(
	ctx context.Context, t TestingT, subject any, msg ...string,
) *Assertion {
	a := fw.newAssertion(ctx, t, subject)
	if len(msg) > 0 && msg[0] != "" {
		a.flags[FlagMessage] = msg[0]
	}
	return a
}

// Check runs fn against a fresh chain and returns the first failure as an
// *AssertionError, or nil.
func (fw *Framework) Check(subject any, fn func(a *Assertion)) error {
	return fw.CheckContext(context.Background(), subject, fn)
}

func (fw *Framework) CheckContext(ctx context.Context, subject any, fn func(a *Assertion)) error {
	a := fw.newAssertion(ctx, discardT{}, subject)
	fn(a)
	return a.Err()
}

func (fw *Framework) newAssertion(ctx context.Context, t TestingT, subject any) *Assertion {
	return &Assertion{
		fw:      fw,
		t:       t,
		ctx:     ctx,
		subject: subject,
		flags:   make(map[string]any),
		hooks:   fw.hooks(),
	}
}

func undefinedMethod(name string) MethodFunc {
	return func(a *Assertion, _ ...any) {
		a.failf(fmt.Sprintf("%q is not a registered assertion method", name))
	}
}

func undefinedProperty(name string) PropertyFunc {
	return func(a *Assertion) {
		a.failf(fmt.Sprintf("%q is not a registered assertion property", name))
	}
}
