package decimalassert

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf((*decimal.Decimal)(nil)).Elem()

type converterFunc func(v reflect.Value) (decimal.Decimal, bool)

var converterCache = xsync.NewMapOf[reflect.Type, converterFunc]()

// Classify reports whether v is a decimal. It accepts decimal.Decimal,
// non-nil *decimal.Decimal, a valid decimal.NullDecimal, values with a
// Decimal() decimal.Decimal method and named types defined on
// decimal.Decimal.
func Classify(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case nil:
		return decimal.Decimal{}, false
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	case decimal.NullDecimal:
		return v.Decimal, v.Valid
	case interface{ Decimal() decimal.Decimal }:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return decimal.Decimal{}, false
		}
		return v.Decimal(), true
	}

	rv := reflect.ValueOf(v)
	return converter(rv.Type())(rv)
}

func converter(typ reflect.Type) converterFunc {
	if fn, ok := converterCache.Load(typ); ok {
		return fn
	}

	fn := newConverter(typ)

	if fn, ok := converterCache.LoadOrStore(typ, fn); ok {
		return fn
	}
	return fn
}

func newConverter(typ reflect.Type) converterFunc {
	switch {
	case typ.Kind() == reflect.Struct && typ.ConvertibleTo(decimalType):
		return func(v reflect.Value) (decimal.Decimal, bool) {
			return v.Convert(decimalType).Interface().(decimal.Decimal), true
		}
	case typ.Kind() == reflect.Ptr && typ.Elem().Kind() == reflect.Struct &&
		typ.Elem().ConvertibleTo(decimalType):
		return func(v reflect.Value) (decimal.Decimal, bool) {
			if v.IsNil() {
				return decimal.Decimal{}, false
			}
			return v.Elem().Convert(decimalType).Interface().(decimal.Decimal), true
		}
	}
	return func(reflect.Value) (decimal.Decimal, bool) {
		return decimal.Decimal{}, false
	}
}
