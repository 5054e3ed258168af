package bigassert

// Adapter turns a big-number library into a Plugin. Installing it registers
// Keyword as a property that switches the chain into big-number mode, and
// overwrites the comparison verbs so that in that mode they classify the
// subject, convert the operands and compare them with Compare. Without the
// keyword the verbs keep their previous behavior.
type Adapter[T any] struct {
	// Keyword is the mode flag, e.g. "bignumber".
	Keyword string
	// TypeName is used in failure messages, e.g. "big.Int".
	TypeName string

	Classify func(v any) (T, bool)
	Parse    func(s string) (T, error)
	Compare  func(x, y T) int
	IsNeg    func(x T) bool
	IsZero   func(x T) bool

	// Add and Sub are optional. When both are set, closeTo is installed.
	Add func(x, y T) T
	Sub func(x, y T) T
}

type comparator struct {
	names  []string
	holds  func(Cmp) bool
	msg    string
	negMsg string
}

var comparators = []comparator{
	{
		names:  []string{"equal", "equals", "eq"},
		holds:  Cmp.Eq,
		msg:    "expected #{act} to equal #{exp}",
		negMsg: "expected #{act} to be different from #{exp}",
	},
	{
		names:  []string{"above", "gt", "greaterThan"},
		holds:  Cmp.Gt,
		msg:    "expected #{act} to be greater than #{exp}",
		negMsg: "expected #{act} to be less than or equal to #{exp}",
	},
	{
		names:  []string{"least", "gte"},
		holds:  Cmp.Geq,
		msg:    "expected #{act} to be greater than or equal to #{exp}",
		negMsg: "expected #{act} to be less than #{exp}",
	},
	{
		names:  []string{"below", "lt", "lessThan"},
		holds:  Cmp.Lt,
		msg:    "expected #{act} to be less than #{exp}",
		negMsg: "expected #{act} to be greater than or equal to #{exp}",
	},
	{
		names:  []string{"most", "lte"},
		holds:  Cmp.Leq,
		msg:    "expected #{act} to be less than or equal to #{exp}",
		negMsg: "expected #{act} to be greater than #{exp}",
	},
}

func (ad *Adapter[T]) Plugin() Plugin {
	return ad.install
}

func (ad *Adapter[T]) install(fw *Framework, utils Utils) {
	keyword := ad.Keyword
	fw.AddProperty(keyword, func(a *Assertion) {
		utils.SetFlag(a, keyword, true)
	})

	for _, c := range comparators {
		c := c
		ad.overwriteMethods(fw, utils, 1, c.names, func(a *Assertion, actual T, ops []T) {
			expected := ops[0]
			a.Assert(c.holds(ad.cmp(actual, expected)), c.msg, c.negMsg, expected, actual)
		})
	}

	if ad.Add != nil && ad.Sub != nil {
		ad.overwriteMethods(fw, utils, 2, []string{"closeTo"}, func(a *Assertion, actual T, ops []T) {
			expected, delta := ops[0], ops[1]
			ok := ad.cmp(actual, ad.Sub(expected, delta)).Geq() &&
				ad.cmp(actual, ad.Add(expected, delta)).Leq()
			d := utils.Inspect(delta)
			a.Assert(
				ok,
				"expected #{act} to be within '"+d+"' of #{exp}",
				"expected #{act} to be further than '"+d+"' from #{exp}",
				expected,
				actual,
			)
		})
	}

	ad.overwriteProperty(fw, utils, "negative", func(a *Assertion, value T) {
		a.Assert(
			ad.IsNeg(value),
			"expected #{this} to be negative",
			"expected #{this} to not be negative",
			nil,
			value,
		)
	})

	ad.overwriteProperty(fw, utils, "zero", func(a *Assertion, value T) {
		a.Assert(
			ad.IsZero(value),
			"expected #{this} to be zero",
			"expected #{this} to not be zero",
			nil,
			value,
		)
	})
}

func (ad *Adapter[T]) cmp(x, y T) Cmp {
	return Cmp(ad.Compare(x, y))
}

// Enabled reports whether the chain carries the adapter's keyword.
func (ad *Adapter[T]) Enabled(utils Utils, a *Assertion) bool {
	enabled, _ := utils.Flag(a, ad.Keyword).(bool)
	return enabled
}

// Subject returns the chain's subject or fails the chain when the subject
// is not a big number. Strings are not accepted here.
func (ad *Adapter[T]) Subject(utils Utils, a *Assertion) T {
	x, ok := ad.Classify(a.Subject())
	if !ok {
		utils.Fail(a, a.Subject(), "expected #{act} to be an instance of "+ad.TypeName)
	}
	return x
}

// Convert returns v as a big number, parsing strings. Everything else,
// native numbers included, fails the chain.
func (ad *Adapter[T]) Convert(utils Utils, a *Assertion, v any) T {
	if s, ok := v.(string); ok {
		x, err := ad.Parse(s)
		if err != nil {
			utils.Fail(a, v, "expected #{act} to be a valid "+ad.TypeName+" string")
		}
		return x
	}
	x, ok := ad.Classify(v)
	if !ok {
		utils.Fail(a, v, "expected #{act} to be an instance of "+ad.TypeName+" or string")
	}
	return x
}

func (ad *Adapter[T]) overwriteMethods(
	fw *Framework,
	utils Utils,
	n int,
	names []string,
	assertion func(a *Assertion, actual T, ops []T),
) {
	overwrite := func(original MethodFunc) MethodFunc {
		return func(a *Assertion, args ...any) {
			if !ad.Enabled(utils, a) {
				original(a, args...)
				return
			}

			actual := ad.Subject(utils, a)
			raw, msg := utils.Operands(a, n, args)
			ops := make([]T, len(raw))
			for i, v := range raw {
				ops[i] = ad.Convert(utils, a, v)
			}

			utils.SetMessage(a, msg)
			assertion(a, actual, ops)
		}
	}

	for _, name := range names {
		fw.OverwriteMethod(name, overwrite)
	}
}

func (ad *Adapter[T]) overwriteProperty(
	fw *Framework,
	utils Utils,
	name string,
	assertion func(a *Assertion, value T),
) {
	fw.OverwriteProperty(name, func(original PropertyFunc) PropertyFunc {
		return func(a *Assertion) {
			if !ad.Enabled(utils, a) {
				original(a)
				return
			}
			assertion(a, ad.Subject(utils, a))
		}
	})
}
