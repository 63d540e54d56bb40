package internal

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// MaxPrecision bounds the digits a number sub-format may request.
const MaxPrecision = 100

// Number is a numeric placeholder value. Integers coming from integer Go
// types or integer literals keep their exact value in Int.
type Number struct {
	Float float64
	Int   int64
	IsInt bool
}

// ToNumber converts a value classified as a number. Numeric strings and
// json.Number are parsed, and named numeric or string types convert by
// kind; anything else reports false.
func ToNumber(v any) (Number, bool) {
	switch c := v.(type) {
	case int:
		return intNumber(int64(c)), true
	case int8:
		return intNumber(int64(c)), true
	case int16:
		return intNumber(int64(c)), true
	case int32:
		return intNumber(int64(c)), true
	case int64:
		return intNumber(c), true
	case uint:
		return uintNumber(uint64(c)), true
	case uint8:
		return uintNumber(uint64(c)), true
	case uint16:
		return uintNumber(uint64(c)), true
	case uint32:
		return uintNumber(uint64(c)), true
	case uint64:
		return uintNumber(c), true
	case float32:
		return Number{Float: float64(c)}, true
	case float64:
		return Number{Float: c}, true
	case json.Number:
		return parseNumber(c.String())
	case string:
		return parseNumber(c)
	}

	// Named types such as "type Qty int" classify by kind
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intNumber(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintNumber(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return Number{}, false
		}
		return Number{Float: f}, true
	case reflect.String:
		return parseNumber(rv.String())
	}
	return Number{}, false
}

func intNumber(i int64) Number {
	return Number{Float: float64(i), Int: i, IsInt: true}
}

func uintNumber(u uint64) Number {
	if u > math.MaxInt64 {
		return Number{Float: float64(u)}
	}
	return intNumber(int64(u))
}

func parseNumber(s string) (Number, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return intNumber(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}, false
	}
	return Number{Float: f}, true
}

// Integral reports whether the number has no fractional part
func (n Number) Integral() bool {
	return n.IsInt || n.Float == math.Trunc(n.Float)
}

// NumberFormat is a parsed "[specifier][precision]" number sub-format
type NumberFormat struct {
	Specifier    byte // SpecNone, SpecHex, SpecInteger, SpecFixed or SpecExponent
	Precision    int
	HasPrecision bool
}

// ParseNumberFormat parses a number sub-format. It reports false for an
// empty, malformed or unknown sub-format; callers then render the value
// unchanged.
func ParseNumberFormat(sub string) (NumberFormat, bool) {
	t := strings.TrimSpace(sub)
	if t == "" {
		return NumberFormat{}, false
	}

	var nf NumberFormat
	if isLetter(t[0]) {
		nf.Specifier = t[0] | 0x20 // lower-case
		t = t[1:]
	}
	for i := 0; i < len(t); i++ {
		if !isDigit(t[i]) {
			return NumberFormat{}, false
		}
	}

	switch nf.Specifier {
	case SpecNone, SpecHex, SpecInteger, SpecFixed, SpecExponent:
	default:
		return NumberFormat{}, false
	}

	if t != "" {
		p, err := strconv.Atoi(t)
		if err != nil || p > MaxPrecision {
			p = MaxPrecision
		}
		nf.Precision = p
		nf.HasPrecision = true
	}
	return nf, true
}

// Format renders n according to the sub-format
func (nf NumberFormat) Format(n Number) string {
	switch nf.Specifier {
	case SpecHex:
		return nf.formatHex(n)
	case SpecInteger:
		s := integerString(n)
		if nf.HasPrecision {
			return PadNumber(s, nf.Precision)
		}
		return s
	case SpecFixed:
		if !nf.HasPrecision {
			return naturalString(n)
		}
		return strconv.FormatFloat(n.Float, 'f', nf.Precision, 64)
	case SpecExponent:
		p := -1
		if nf.HasPrecision {
			p = nf.Precision
		}
		return TrimExponent(strconv.FormatFloat(n.Float, 'e', p, 64))
	default:
		if !nf.HasPrecision {
			return naturalString(n)
		}
		if n.Integral() {
			return PadNumber(integerString(n), nf.Precision)
		}
		return strconv.FormatFloat(n.Float, 'f', nf.Precision, 64)
	}
}

// formatHex renders lowercase hex. With a precision, a fractional part is
// cut or zero-extended to that many hex digits; an integer is zero-padded.
func (nf NumberFormat) formatHex(n Number) string {
	sign, whole, frac := hexParts(n)
	if !nf.HasPrecision {
		if frac == "" {
			return sign + whole
		}
		return sign + whole + string(CharDot) + frac
	}
	if frac == "" {
		return sign + PadNumber(whole, nf.Precision)
	}
	if len(frac) > nf.Precision {
		frac = frac[:nf.Precision]
	} else {
		frac += strings.Repeat(string(CharZero), nf.Precision-len(frac))
	}
	if frac == "" {
		return sign + whole
	}
	return sign + whole + string(CharDot) + frac
}

// hexParts splits n into sign, integer hex digits and fractional hex digits
func hexParts(n Number) (sign, whole, frac string) {
	if n.IsInt {
		if n.Int < 0 {
			sign = string(CharMinus)
		}
		// Int cannot be MinInt64 negated safely; go through big for that case.
		if n.Int == math.MinInt64 {
			return sign, new(big.Int).Neg(big.NewInt(n.Int)).Text(16), ""
		}
		i := n.Int
		if i < 0 {
			i = -i
		}
		return sign, strconv.FormatInt(i, 16), ""
	}

	f := n.Float
	if f < 0 {
		sign = string(CharMinus)
		f = -f
	}
	w := math.Floor(f)
	if w < 1<<63 {
		whole = strconv.FormatUint(uint64(w), 16)
	} else {
		bi, _ := new(big.Float).SetFloat64(w).Int(nil)
		whole = bi.Text(16)
	}

	// Multiplying by 16 and dropping the integer part is exact in binary
	// floating point, so this terminates with the exact expansion.
	var sb strings.Builder
	rem := f - w
	for rem != 0 && sb.Len() < HexDigitsLimit {
		rem *= 16
		d := math.Floor(rem)
		sb.WriteByte("0123456789abcdef"[int(d)])
		rem -= d
	}
	return sign, whole, sb.String()
}

// integerString rounds half away from zero and renders without decimals
func integerString(n Number) string {
	if n.IsInt {
		return strconv.FormatInt(n.Int, 10)
	}
	r := math.Round(n.Float)
	if r == 0 {
		return string(CharZero)
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

func naturalString(n Number) string {
	if n.IsInt {
		return strconv.FormatInt(n.Int, 10)
	}
	return FormatFloat(n.Float)
}
