package internal

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SplitPath splits a raw dotted path into keys. The empty path yields no
// keys; empty segments are kept, so "a..b" is ["a", "", "b"].
func SplitPath(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, PathSeparator)
}

// ResolvePath walks path against input, one key at a time. An empty path
// returns input itself. Missing keys, out-of-range indices and values that
// cannot be indexed short-circuit to (nil, false); ResolvePath never panics.
func ResolvePath(path []string, input any) (any, bool) {
	if input == nil {
		return nil, false
	}
	current := input
	for _, key := range path {
		next, ok := indexValue(current, key)
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

// indexValue looks up one key in v
func indexValue(v any, key string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case map[string]string:
		val, ok := c[key]
		return val, ok
	case []any:
		i, ok := parseIndex(key, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case []string:
		i, ok := parseIndex(key, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case string:
		return indexString(c, key)
	}
	return indexReflect(reflect.ValueOf(v), key)
}

// indexReflect handles the container kinds not covered by the fast paths
func indexReflect(rv reflect.Value, key string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kv, ok := mapKey(rv.Type().Key(), key)
		if !ok {
			return nil, false
		}
		val := rv.MapIndex(kv)
		if !val.IsValid() {
			return nil, false
		}
		return interfaceOf(val)
	case reflect.Slice, reflect.Array:
		i, ok := parseIndex(key, rv.Len())
		if !ok {
			return nil, false
		}
		return interfaceOf(rv.Index(i))
	case reflect.String:
		return indexString(rv.String(), key)
	case reflect.Struct:
		return structField(rv, key)
	}
	return nil, false
}

// mapKey converts a path key to the map's key type
func mapKey(t reflect.Type, key string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Interface:
		if reflect.TypeOf(key).Implements(t) {
			return reflect.ValueOf(key), true
		}
	}
	return reflect.Value{}, false
}

// structField finds an exported field by name, falling back to its json tag
func structField(rv reflect.Value, key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	rt := rv.Type()
	if f, ok := rt.FieldByName(key); ok && f.IsExported() {
		return interfaceOf(rv.FieldByIndex(f.Index))
	}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get(StructTagJSON), ",")
		if name != "" && strings.EqualFold(name, key) {
			return interfaceOf(rv.Field(i))
		}
	}
	return nil, false
}

// indexString selects a single character by rune index
func indexString(s, key string) (any, bool) {
	i, ok := parseIndex(key, utf8.RuneCountInString(s))
	if !ok {
		return nil, false
	}
	for _, r := range s {
		if i == 0 {
			return string(r), true
		}
		i--
	}
	return nil, false
}

// parseIndex accepts canonical non-negative decimal indices below length
func parseIndex(key string, length int) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == CharZero) {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if !isDigit(key[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil || n >= length {
		return 0, false
	}
	return n, true
}

func interfaceOf(v reflect.Value) (any, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}
