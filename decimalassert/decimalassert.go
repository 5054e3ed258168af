// Package decimalassert teaches a bigassert.Framework to compare
// decimal.Decimal values from github.com/shopspring/decimal.
//
// Operands may be decimals or strings in decimal or exponential notation
// ("1.25", "-3e-2"). Native Go numbers are rejected.
package decimalassert

import (
	"github.com/shopspring/decimal"

	"github.com/uptrace/bigassert"
)

const (
	Keyword  = "decimal"
	TypeName = "decimal.Decimal"
)

type config struct {
	keyword     string
	typeName    string
	parse       func(s string) (decimal.Decimal, error)
	recognizers []func(v any) (decimal.Decimal, bool)
}

type Option func(cfg *config)

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

func WithParser(fn func(s string) (decimal.Decimal, error)) Option {
	return func(cfg *config) {
		cfg.parse = fn
	}
}

func WithRecognizer(fn func(v any) (decimal.Decimal, bool)) Option {
	return func(cfg *config) {
		cfg.recognizers = append(cfg.recognizers, fn)
	}
}

func New(opts ...Option) bigassert.Plugin {
	return NewAdapter(opts...).Plugin()
}

func NewAdapter(opts ...Option) *bigassert.Adapter[decimal.Decimal] {
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
		classify = func(v any) (decimal.Decimal, bool) {
			if d, ok := Classify(v); ok {
				return d, true
			}
			for _, fn := range recognizers {
				if d, ok := fn(v); ok {
					return d, true
				}
			}
			return decimal.Decimal{}, false
		}
	}

	return &bigassert.Adapter[decimal.Decimal]{
		Keyword:  cfg.keyword,
		TypeName: cfg.typeName,
		Classify: classify,
		Parse:    cfg.parse,
		Compare: func(x, y decimal.Decimal) int {
			return x.Cmp(y)
		},
		IsNeg: func(x decimal.Decimal) bool {
			return x.IsNegative()
		},
		IsZero: func(x decimal.Decimal) bool {
			return x.IsZero()
		},
		Add: func(x, y decimal.Decimal) decimal.Decimal {
			return x.Add(y)
		},
		Sub: func(x, y decimal.Decimal) decimal.Decimal {
			return x.Sub(y)
		},
	}
}

// Parse accepts decimal and exponential notation.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
