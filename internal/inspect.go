package internal

import (
	"fmt"
	"reflect"

	"github.com/tmthrgd/go-hex"
)

// Inspect renders v for use in a failure message. Big numbers and other
// fmt.Stringer values use their canonical string form, strings are
// single-quoted and byte slices are hex encoded. Composite values longer
// than threshold are truncated; a threshold <= 0 disables truncation.
func Inspect(v any, threshold int) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return "'" + v + "'"
	case []byte:
		if v == nil {
			return "nil"
		}
		return "0x" + hex.EncodeToString(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return fmt.Sprintf("(%s)(nil)", rv.Type())
		}
	}

	switch v := v.(type) {
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	s := fmt.Sprintf("%v", v)
	switch rv.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Ptr:
		if threshold > 0 && len(s) > threshold {
			return s[:threshold] + "..."
		}
	}
	return s
}
