package ssf

import (
	"github.com/itsatony/go-ssf/internal"
)

// NewUndefinedFormatter ignores the sub-format; missing values render empty.
func NewUndefinedFormatter(string) Formatter {
	return formatUndefined
}

func formatUndefined(any) string { return "" }

// NewNumberFormatter builds a number formatter from "[specifier][precision]":
//
//	x   hexadecimal               @(:x4)  10    -> 000a
//	d   rounded integer           @(:d4)  -10   -> -0010
//	f   fixed point               @(:f2)  3.14159 -> 3.14
//	e   exponential               @(:e2)  314.159 -> 3.14e+2
//	    inferred from the value   @(:3)   3     -> 003, 3.14 -> 3.140
//
// Zero padding goes after the sign. An empty, malformed or unknown
// sub-format renders the value unchanged.
func NewNumberFormatter(subFormat string) Formatter {
	nf, ok := internal.ParseNumberFormat(subFormat)
	if !ok {
		return internal.Stringify
	}
	return func(v any) string {
		n, ok := internal.ToNumber(v)
		if !ok {
			return internal.Stringify(v)
		}
		return nf.Format(n)
	}
}

// NewStringFormatter builds a string formatter. The sub-format "[start,end]"
// slices the string's characters with negative indices counting from the
// end; any text after the range is ignored. Without a range the string is
// returned unchanged.
func NewStringFormatter(subFormat string) Formatter {
	r, _, ok := internal.ParseSliceFormat(subFormat)
	if !ok {
		return internal.Stringify
	}
	return func(v any) string {
		runes := []rune(internal.Stringify(v))
		lo, hi := r.Bounds(len(runes))
		return string(runes[lo:hi])
	}
}

// NewArrayFormatter builds an array formatter from "[start,end]joiner". The
// optional range slices the elements, and the joiner, default ",", is put
// between them. Without a range the whole sub-format is the joiner. The
// sub-format "[]" alone joins with the empty string.
func NewArrayFormatter(subFormat string) Formatter {
	r, joiner, sliced := internal.ParseSliceFormat(subFormat)
	switch {
	case subFormat == internal.EmptyJoinerFormat:
		joiner = ""
	case joiner == "":
		joiner = internal.DefaultJoiner
	}
	return func(v any) string {
		elements := internal.Elements(v)
		if elements == nil {
			return internal.Stringify(v)
		}
		if sliced {
			lo, hi := r.Bounds(len(elements))
			elements = elements[lo:hi]
			return internal.JoinValues(elements, elements, joiner)
		}
		return internal.JoinValues(v, elements, joiner)
	}
}

// NewDateFormatter renders dates with their own String method. Override the
// date factory for calendar-aware formatting; the sub-format is passed
// through to it.
func NewDateFormatter(string) Formatter {
	return internal.Stringify
}

// NewObjectFormatter renders objects with fmt.Stringer or fmt.Sprint.
func NewObjectFormatter(string) Formatter {
	return internal.Stringify
}
