package decimalassert_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/uptrace/bigassert"
	"github.com/uptrace/bigassert/decimalassert"
)

func newFramework() *bigassert.Framework {
	return bigassert.New(bigassert.WithPlugins(decimalassert.New()))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComparators(t *testing.T) {
	type Test struct {
		subject string
		verb    string
		operand any
		pass    bool
	}

	tests := []Test{
		{"10", "equal", "10", true},
		{"10", "equal", "10.000", true},
		{"10", "equal", "1e1", true},
		{"10", "equal", dec("10"), true},
		{"10", "eq", "10.0001", false},
		{"0.1", "equals", "1e-1", true},

		{"10", "above", "9.999", true},
		{"10", "gt", "10", false},
		{"-0.5", "greaterThan", "-0.51", true},

		{"10", "least", "10.00", true},
		{"10", "gte", "10.01", false},

		{"10", "below", "10.01", true},
		{"10", "lt", "10", false},
		{"10", "lessThan", dec("1e2"), true},

		{"10", "most", "10", true},
		{"10", "lte", "9.99", false},

		{"12345678901234567890.123456789", "equal", "12345678901234567890.123456789", true},
		{"12345678901234567890.123456789", "above", "12345678901234567890.123456788", true},
	}

	fw := newFramework()
	for _, test := range tests {
		t.Run(test.subject+" "+test.verb, func(t *testing.T) {
			err := fw.Check(dec(test.subject), func(a *bigassert.Assertion) {
				a.Prop(decimalassert.Keyword).Call(test.verb, test.operand)
			})
			if test.pass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}

			err = fw.Check(dec(test.subject), func(a *bigassert.Assertion) {
				a.Not().Prop(decimalassert.Keyword).Call(test.verb, test.operand)
			})
			if test.pass {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCloseTo(t *testing.T) {
	type Test struct {
		subject string
		center  any
		delta   any
		pass    bool
	}

	tests := []Test{
		{"15", "15", "0", true},
		{"15", "14", "0", false},
		{"15", "10", "5", true},
		{"15", "9", "5", false},
		{"5", "10", "5", true},
		{"4.99", "10", "5", false},
		{"15", "10", dec("5.0"), true},
		{"-1.5", "-1", "0.5", true},
		{"-1.51", "-1", "0.5", false},
		{"10", "10", "-1", false},
	}

	fw := newFramework()
	for _, test := range tests {
		err := fw.Check(dec(test.subject), func(a *bigassert.Assertion) {
			a.Prop(decimalassert.Keyword).CloseTo(test.center, test.delta)
		})
		if test.pass {
			require.NoError(t, err, "%s closeTo %v +/- %v", test.subject, test.center, test.delta)
		} else {
			require.Error(t, err, "%s closeTo %v +/- %v", test.subject, test.center, test.delta)
		}
	}
}

func TestMessages(t *testing.T) {
	type Test struct {
		subject any
		msg     string
		fn      func(a *bigassert.Assertion)
		wanted  string
	}

	tests := []Test{
		{
			subject: dec("10"),
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Equal("9.5") },
			wanted:  "expected 10 to equal 9.5",
		},
		{
			subject: dec("10"),
			fn:      func(a *bigassert.Assertion) { a.Not().Prop(decimalassert.Keyword).Eq("10") },
			wanted:  "expected 10 to be different from 10",
		},
		{
			subject: dec("15"),
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).CloseTo("9", "5") },
			wanted:  "expected 15 to be within '5' of 9",
		},
		{
			subject: dec("15"),
			fn:      func(a *bigassert.Assertion) { a.Not().Prop(decimalassert.Keyword).CloseTo("10", "5") },
			wanted:  "expected 15 to be further than '5' from 10",
		},
		{
			subject: dec("15"),
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Call("closeTo", "10") },
			wanted:  "closeTo: expected 2 operands, got 1",
		},
		{
			subject: dec("1.5"),
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Negative() },
			wanted:  "expected 1.5 to be negative",
		},
		{
			subject: dec("-0.001"),
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Zero() },
			wanted:  "expected -0.001 to be zero",
		},
		{
			subject: 10.5,
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Equal("10.5") },
			wanted:  "expected 10.5 to be an instance of decimal.Decimal",
		},
		{
			subject: dec("10"),
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Equal(10) },
			wanted:  "expected 10 to be an instance of decimal.Decimal or string",
		},
		{
			subject: dec("10"),
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Equal("ten") },
			wanted:  "expected 'ten' to be a valid decimal.Decimal string",
		},
		{
			subject: dec("10"),
			msg:     "price",
			fn:      func(a *bigassert.Assertion) { a.Prop(decimalassert.Keyword).Above("10") },
			wanted:  "price: expected 10 to be greater than 10",
		},
	}

	fw := newFramework()
	for _, test := range tests {
		t.Run(test.wanted, func(t *testing.T) {
			rec := new(recorder)
			a := fw.Expect(rec, test.subject, test.msg)
			test.fn(a)
			require.True(t, rec.failed)
			require.Equal(t, []string{test.wanted}, rec.errors)
			require.EqualError(t, a.Err(), test.wanted)
		})
	}
}

func TestNegativeZero(t *testing.T) {
	fw := newFramework()

	require.NoError(t, fw.Check(dec("-5"), func(a *bigassert.Assertion) {
		a.Prop(decimalassert.Keyword).Negative().And().Not().Zero()
	}))
	require.NoError(t, fw.Check(dec("0.000"), func(a *bigassert.Assertion) {
		a.Prop(decimalassert.Keyword).Zero().And().Not().Negative()
	}))
	require.NoError(t, fw.Check(decimal.Zero, func(a *bigassert.Assertion) {
		a.Prop(decimalassert.Keyword).Zero()
	}))
}

func TestNativeFallback(t *testing.T) {
	fw := newFramework()

	require.NoError(t, fw.Check(1.5, func(a *bigassert.Assertion) {
		a.CloseTo(1.4, 0.2).And().Above(1.0)
	}))

	err := fw.Check(1.5, func(a *bigassert.Assertion) {
		a.CloseTo(1.0, 0.2)
	})
	require.EqualError(t, err, "expected 1.5 to be close to 1 +/- 0.2")
}

func TestDecimalOperandsMatchStrings(t *testing.T) {
	fw := newFramework()
	verbs := []string{"equal", "above", "least", "below", "most"}
	values := []string{"-1.5", "0", "0.25", "2.5e1"}

	for _, verb := range verbs {
		for _, s := range values {
			for _, op := range values {
				viaString := fw.Check(dec(s), func(a *bigassert.Assertion) {
					a.Prop(decimalassert.Keyword).Call(verb, op)
				})
				viaInstance := fw.Check(dec(s), func(a *bigassert.Assertion) {
					a.Prop(decimalassert.Keyword).Call(verb, dec(op))
				})
				require.Equal(t, viaString == nil, viaInstance == nil, "%s %s %s", s, verb, op)
			}
		}
	}
}

func TestConversionError(t *testing.T) {
	fw := newFramework()

	err := fw.Check(dec("1"), func(a *bigassert.Assertion) {
		a.Not().Prop(decimalassert.Keyword).CloseTo("1", 0.5)
	})

	var aerr *bigassert.AssertionError
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, "expected 0.5 to be an instance of decimal.Decimal or string", aerr.Message)
	require.Equal(t, 0.5, aerr.Actual)
	require.False(t, aerr.Negated)
}

type recorder struct {
	errors []string
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() {
	r.failed = true
}
