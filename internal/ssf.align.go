package internal

import (
	"strings"
	"unicode/utf8"
)

// ParseAlignment reads an alignment the way parseInt does: optional
// leading spaces, an optional sign, an optional 0x prefix, then the longest
// run of digits. Text without digits is 0 (no alignment). The magnitude is
// capped at MaxAlignment.
func ParseAlignment(text string) int {
	s := strings.TrimLeft(text, " \t\r\n")
	sign := 1
	if s != "" && (s[0] == CharMinus || s[0] == CharPlus) {
		if s[0] == CharMinus {
			sign = -1
		}
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == CharZero && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}
		if n < MaxAlignment {
			n = n*base + d
		}
	}
	if n > MaxAlignment {
		n = MaxAlignment
	}
	return sign * n
}

// Align pads text with spaces to at least |width| characters. A positive
// width right-aligns, a negative width left-aligns, and text that already
// fills the width is returned unchanged. Align never truncates.
func Align(text string, width int) string {
	return pad(text, width, CharSpace)
}

// PadNumber left-pads a rendered number with zeros to width digits. A
// leading minus sign stays in front of the padding.
func PadNumber(text string, width int) string {
	if strings.HasPrefix(text, string(CharMinus)) {
		return string(CharMinus) + pad(text[1:], width, CharZero)
	}
	return pad(text, width, CharZero)
}

func pad(text string, width int, padder byte) string {
	target := width
	if target < 0 {
		target = -target
	}
	missing := target - utf8.RuneCountInString(text)
	if missing <= 0 {
		return text
	}
	padding := strings.Repeat(string(padder), missing)
	if width > 0 {
		return padding + text
	}
	return text + padding
}

func digitValue(ch byte, base int) (int, bool) {
	var d int
	switch {
	case ch >= '0' && ch <= '9':
		d = int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		d = int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		d = int(ch-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}
