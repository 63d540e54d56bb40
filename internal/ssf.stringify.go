package internal

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Stringify renders v in its natural string form: nil is empty, numbers use
// the shortest decimal spelling, sequences are comma-joined element by
// element, and everything else goes through fmt.Stringer or fmt.Sprint.
func Stringify(v any) string {
	return stringify(v, nil)
}

// sliceKey identifies a slice header. A slice that contains itself meets
// its own key again while it is being joined.
type sliceKey struct {
	ptr uintptr
	n   int
}

func stringify(v any, seen map[sliceKey]bool) string {
	if isNilPointer(v) {
		return ""
	}
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case json.Number:
		return c.String()
	case bool:
		return strconv.FormatBool(c)
	case float64:
		return FormatFloat(c)
	case float32:
		return FormatFloat(float64(c))
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case uint64:
		return strconv.FormatUint(c, 10)
	case time.Time:
		return c.String()
	case fmt.Stringer:
		return c.String()
	case error:
		return c.Error()
	case []any:
		return joinValues(v, c, DefaultJoiner, seen)
	case []string:
		return strings.Join(c, DefaultJoiner)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return FormatFloat(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		return joinValues(v, Elements(v), DefaultJoiner, seen)
	}
	return fmt.Sprint(v)
}

// Elements returns the elements of a slice or array value as []any.
// Anything else yields nil.
func Elements(v any) []any {
	switch c := v.(type) {
	case []any:
		return c
	case []string:
		out := make([]any, len(c))
		for i, s := range c {
			out[i] = s
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		if el := rv.Index(i); el.CanInterface() {
			out[i] = el.Interface()
		}
	}
	return out
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// joinValues joins the stringified values taken from owner. An element
// that refers back to a slice still being joined renders as "".
func joinValues(owner any, values []any, joiner string, seen map[sliceKey]bool) string {
	if key, ok := keyOf(owner); ok {
		if seen[key] {
			return ""
		}
		if seen == nil {
			seen = make(map[sliceKey]bool)
		}
		seen[key] = true
		defer delete(seen, key)
	}

	parts := make([]string, len(values))
	for i, el := range values {
		parts[i] = stringify(el, seen)
	}
	return strings.Join(parts, joiner)
}

func keyOf(v any) (sliceKey, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return sliceKey{}, false
	}
	return sliceKey{ptr: rv.Pointer(), n: rv.Len()}, true
}

// JoinValues stringifies each value and joins the results. owner is the
// sequence the values came from, or the values themselves.
func JoinValues(owner any, values []any, joiner string) string {
	return joinValues(owner, values, joiner, nil)
}

// FormatFloat renders f in its shortest natural form. Plain decimal
// notation is used between 1e-6 and 1e21; outside that range the
// exponent form "1e+21" is used.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return TrimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// TrimExponent removes zero padding from an exponent: "3e+09" becomes "3e+9".
func TrimExponent(s string) string {
	i := strings.LastIndexAny(s, "eE")
	if i < 0 || i+2 > len(s) {
		return s
	}
	head, sign, digits := s[:i+1], s[i+1:i+2], s[i+2:]
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return head + sign + digits
}
