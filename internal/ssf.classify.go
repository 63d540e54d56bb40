package internal

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Category is the closed set of value kinds a placeholder value falls into
type Category int

// Category constants. The order is the classification order.
const (
	CategoryUndefined Category = iota
	CategoryNumber
	CategoryString
	CategoryDate
	CategoryArray
	CategoryObject
)

// CategoryCount is the number of categories
const CategoryCount = 6

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryNumber:
		return CategoryNameNumber
	case CategoryString:
		return CategoryNameString
	case CategoryDate:
		return CategoryNameDate
	case CategoryArray:
		return CategoryNameArray
	case CategoryObject:
		return CategoryNameObject
	default:
		return CategoryNameUndefined
	}
}

// Tag returns the long-form type tag letter for the category
func (c Category) Tag() byte {
	switch c {
	case CategoryNumber:
		return TagNumber
	case CategoryString:
		return TagString
	case CategoryDate:
		return TagDate
	case CategoryArray:
		return TagArray
	case CategoryObject:
		return TagObject
	default:
		return TagUndefined
	}
}

// CategoryForTag maps a type tag letter to its category
func CategoryForTag(tag byte) (Category, bool) {
	switch tag {
	case TagUndefined:
		return CategoryUndefined, true
	case TagNumber:
		return CategoryNumber, true
	case TagString:
		return CategoryString, true
	case TagDate:
		return CategoryDate, true
	case TagArray:
		return CategoryArray, true
	case TagObject:
		return CategoryObject, true
	}
	return CategoryUndefined, false
}

// CategoryForName maps a category name to its category
func CategoryForName(name string) (Category, bool) {
	for c := CategoryUndefined; c <= CategoryObject; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return CategoryUndefined, false
}

var timeType = reflect.TypeOf(time.Time{})

// Classify places v into exactly one category. Numeric strings are numbers:
// the number rule runs before the string rule.
func Classify(v any) Category {
	switch c := v.(type) {
	case nil:
		return CategoryUndefined
	case string:
		if IsNumericString(c) {
			return CategoryNumber
		}
		return CategoryString
	case json.Number:
		if _, err := c.Float64(); err == nil {
			return CategoryNumber
		}
		return CategoryString
	case float64:
		return finiteCategory(c)
	case float32:
		return finiteCategory(float64(c))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return CategoryNumber
	case time.Time:
		return CategoryDate
	case *time.Time:
		if c == nil {
			return CategoryUndefined
		}
		return CategoryDate
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return CategoryUndefined
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return CategoryNumber
	case reflect.Float32, reflect.Float64:
		return finiteCategory(rv.Float())
	case reflect.String:
		if IsNumericString(rv.String()) {
			return CategoryNumber
		}
		return CategoryString
	case reflect.Struct:
		if rv.Type().ConvertibleTo(timeType) {
			return CategoryDate
		}
	case reflect.Slice, reflect.Array:
		return CategoryArray
	}
	return CategoryObject
}

// IsNumericString reports whether s parses entirely as a finite number
func IsNumericString(s string) bool {
	if s == "" {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func finiteCategory(f float64) Category {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return CategoryObject
	}
	return CategoryNumber
}
