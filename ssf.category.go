package ssf

import (
	"github.com/itsatony/go-ssf/internal"
)

// Category is the kind of value a placeholder resolves to. Every value
// falls into exactly one category, chosen by Classify.
type Category = internal.Category

// Category values, in classification order
const (
	CategoryUndefined = internal.CategoryUndefined
	CategoryNumber    = internal.CategoryNumber
	CategoryString    = internal.CategoryString
	CategoryDate      = internal.CategoryDate
	CategoryArray     = internal.CategoryArray
	CategoryObject    = internal.CategoryObject
)

// Categories lists every category in classification order.
func Categories() []Category {
	return []Category{
		CategoryUndefined,
		CategoryNumber,
		CategoryString,
		CategoryDate,
		CategoryArray,
		CategoryObject,
	}
}

// Classify returns the category of v:
//
//   - undefined: nil or a nil pointer
//   - number: a finite Go number, json.Number, or a string that parses as one
//   - string: any other string
//   - date: time.Time and types defined from it
//   - array: slices and arrays
//   - object: everything else
func Classify(v any) Category {
	return internal.Classify(v)
}

// ParseCategory accepts a category name ("number") or its type tag ("n").
func ParseCategory(s string) (Category, error) {
	if len(s) == 1 {
		if c, ok := internal.CategoryForTag(s[0]); ok {
			return c, nil
		}
	}
	if c, ok := internal.CategoryForName(s); ok {
		return c, nil
	}
	return CategoryUndefined, NewInvalidCategoryError(s)
}
