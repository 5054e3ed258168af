package bigassert

import (
	"reflect"

	"github.com/stretchr/testify/assert"
)

// Native verbs compare plain Go values with testify's comparison helpers.
// Plugins overwrite them and delegate back when their keyword is absent.

func installNative(fw *Framework) {
	utils := Utils{fw: fw}

	addMethods(fw, []string{"equal", "equals", "eq"}, func(a *Assertion, args ...any) {
		ops, msg := utils.Operands(a, 1, args)
		utils.SetMessage(a, msg)
		a.Assert(
			assert.ObjectsAreEqual(ops[0], a.subject),
			"expected #{act} to equal #{exp}",
			"expected #{act} to not equal #{exp}",
			ops[0],
			a.subject,
		)
	})

	addMethods(fw, []string{"above", "gt", "greaterThan"}, func(a *Assertion, args ...any) {
		ops, msg := utils.Operands(a, 1, args)
		utils.SetMessage(a, msg)
		a.Assert(
			assert.Greater(discardT{}, a.subject, ops[0]),
			"expected #{act} to be above #{exp}",
			"expected #{act} to be at most #{exp}",
			ops[0],
			a.subject,
		)
	})

	addMethods(fw, []string{"least", "gte"}, func(a *Assertion, args ...any) {
		ops, msg := utils.Operands(a, 1, args)
		utils.SetMessage(a, msg)
		a.Assert(
			assert.GreaterOrEqual(discardT{}, a.subject, ops[0]),
			"expected #{act} to be at least #{exp}",
			"expected #{act} to be below #{exp}",
			ops[0],
			a.subject,
		)
	})

	addMethods(fw, []string{"below", "lt", "lessThan"}, func(a *Assertion, args ...any) {
		ops, msg := utils.Operands(a, 1, args)
		utils.SetMessage(a, msg)
		a.Assert(
			assert.Less(discardT{}, a.subject, ops[0]),
			"expected #{act} to be below #{exp}",
			"expected #{act} to be at least #{exp}",
			ops[0],
			a.subject,
		)
	})

	addMethods(fw, []string{"most", "lte"}, func(a *Assertion, args ...any) {
		ops, msg := utils.Operands(a, 1, args)
		utils.SetMessage(a, msg)
		a.Assert(
			assert.LessOrEqual(discardT{}, a.subject, ops[0]),
			"expected #{act} to be at most #{exp}",
			"expected #{act} to be above #{exp}",
			ops[0],
			a.subject,
		)
	})

	fw.AddMethod("closeTo", func(a *Assertion, args ...any) {
		ops, msg := utils.Operands(a, 2, args)
		delta, ok := toFloat(ops[1])
		if !ok {
			utils.Fail(a, ops[1], "the delta #{act} must be a number")
		}
		utils.SetMessage(a, msg)
		d := utils.Inspect(ops[1])
		a.Assert(
			assert.InDelta(discardT{}, ops[0], a.subject, delta),
			"expected #{act} to be close to #{exp} +/- "+d,
			"expected #{act} not to be close to #{exp} +/- "+d,
			ops[0],
			a.subject,
		)
	})

	fw.AddProperty("negative", func(a *Assertion) {
		a.Assert(
			assert.Negative(discardT{}, a.subject),
			"expected #{this} to be negative",
			"expected #{this} to not be negative",
			nil,
			a.subject,
		)
	})

	fw.AddProperty("zero", func(a *Assertion) {
		a.Assert(
			assert.Zero(discardT{}, a.subject),
			"expected #{this} to be zero",
			"expected #{this} to not be zero",
			nil,
			a.subject,
		)
	})
}

// addMethods registers one implementation under every alias.
func addMethods(fw *Framework, names []string, fn MethodFunc) {
	for _, name := range names {
		fw.AddMethod(name, fn)
	}
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
