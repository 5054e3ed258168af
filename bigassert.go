// Package bigassert is a small fluent assertion framework whose verbs can be
// overwritten by plugins. The bnassert and decimalassert plugins use it to
// compare arbitrary-precision numbers exactly.
//
//	fw := bigassert.New(bigassert.WithPlugins(bnassert.New()))
//	fw.Expect(t, x).To().Be().Prop(bnassert.Keyword).That().Equals("10")
package bigassert

import (
	"github.com/uptrace/bigassert/internal"
)

// TestingT is the subset of testing.TB used to report failures.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper interface {
	Helper()
}

// Plugin installs verbs into a framework.
type Plugin func(fw *Framework, utils Utils)

// SetLogger overwrites the default logger used for warnings.
func SetLogger(logger internal.Logging) {
	internal.SetLogger(logger)
}

type discardT struct{}

func (discardT) Errorf(string, ...any) {}

func (discardT) FailNow() {}
