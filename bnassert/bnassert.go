// Package bnassert teaches a bigassert.Framework to compare *big.Int values.
//
//	fw := bigassert.New(bigassert.WithPlugins(bnassert.New()))
//	fw.Expect(t, x).To().Be().Prop(bnassert.Keyword).That().Is().Above("10")
//
// Operands may be *big.Int values or base-10 strings. Native Go numbers are
// rejected so that no precision is lost silently.
package bnassert

import (
	"fmt"
	"math/big"

	"github.com/uptrace/bigassert"
)

const (
	// Keyword is the property that switches a chain into big.Int mode.
	Keyword = "bignumber"
	// TypeName is how the type is named in failure messages.
	TypeName = "big.Int"
)

type config struct {
	keyword     string
	typeName    string
	parse       func(s string) (*big.Int, error)
	recognizers []func(v any) (*big.Int, bool)
}

type Option func(cfg *config)

// WithKeyword replaces the default "bignumber" keyword.
func WithKeyword(keyword string) Option {
	return func(cfg *config) {
		cfg.keyword = keyword
	}
}

func WithTypeName(name string) Option {
	return func(cfg *config) {
		cfg.typeName = name
	}
}

// WithParser replaces Parse for string operands.
func WithParser(fn func(s string) (*big.Int, error)) Option {
	return func(cfg *config) {
		cfg.parse = fn
	}
}

// WithRecognizer accepts values of other integer libraries. fn is consulted
// after the built-in checks.
func WithRecognizer(fn func(v any) (*big.Int, bool)) Option {
	return func(cfg *config) {
		cfg.recognizers = append(cfg.recognizers, fn)
	}
}

// New returns the plugin. Install it once per framework.
func New(opts ...Option) bigassert.Plugin {
	return NewAdapter(opts...).Plugin()
}

func NewAdapter(opts ...Option) *bigassert.Adapter[*big.Int] {
	cfg := config{
		keyword:  Keyword,
		typeName: TypeName,
		parse:    Parse,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	classify := Classify
	if len(cfg.recognizers) > 0 {
		recognizers := cfg.recognizers
		classify = func(v any) (*big.Int, bool) {
			if x, ok := Classify(v); ok {
				return x, true
			}
			for _, fn := range recognizers {
				if x, ok := fn(v); ok && x != nil {
					return x, true
				}
			}
			return nil, false
		}
	}

	return &bigassert.Adapter[*big.Int]{
		Keyword:  cfg.keyword,
		TypeName: cfg.typeName,
		Classify: classify,
		Parse:    cfg.parse,
		Compare: func(x, y *big.Int) int {
			return x.Cmp(y)
		},
		IsNeg: func(x *big.Int) bool {
			return x.Sign() < 0
		},
		IsZero: func(x *big.Int) bool {
			return x.Sign() == 0
		},
	}
}

// Parse parses a base-10 integer with an optional sign.
func Parse(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bnassert: invalid integer %q", s)
	}
	return x, nil
}
