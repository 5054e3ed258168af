package bnassert

import (
	"math/big"
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
)

var bigIntPtrType = reflect.TypeOf((**big.Int)(nil)).Elem()

type converterFunc func(v reflect.Value) (*big.Int, bool)

var converterCache = xsync.NewMapOf[reflect.Type, converterFunc]()

// Classify reports whether v is a big integer and returns it as *big.Int
// without copying. Besides *big.Int and big.Int it accepts values with a
// ToMathBig() or BigInt() method and named types whose pointer converts to
// *big.Int, so integers wrapped by other packages are recognized too.
func Classify(v any) (*big.Int, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case *big.Int:
		return v, v != nil
	case big.Int:
		return &v, true
	case interface{ ToMathBig() *big.Int }:
		if isNilPtr(v) {
			return nil, false
		}
		x := v.ToMathBig()
		return x, x != nil
	case interface{ BigInt() *big.Int }:
		if isNilPtr(v) {
			return nil, false
		}
		x := v.BigInt()
		return x, x != nil
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
	case typ.Kind() == reflect.Ptr && typ.ConvertibleTo(bigIntPtrType):
		return func(v reflect.Value) (*big.Int, bool) {
			if v.IsNil() {
				return nil, false
			}
			return v.Convert(bigIntPtrType).Interface().(*big.Int), true
		}
	case reflect.PointerTo(typ).ConvertibleTo(bigIntPtrType):
		return func(v reflect.Value) (*big.Int, bool) {
			ptr := reflect.New(v.Type())
			ptr.Elem().Set(v)
			return ptr.Convert(bigIntPtrType).Interface().(*big.Int), true
		}
	}
	return func(reflect.Value) (*big.Int, bool) {
		return nil, false
	}
}

func isNilPtr(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
