package internal

import (
	"strconv"
	"strings"
)

// SliceRange is a parsed "[start,end]" range. Either end may be omitted;
// negative values count from the end of the sequence.
type SliceRange struct {
	Start    int
	End      int
	HasStart bool
	HasEnd   bool
}

// ParseSliceFormat splits a sub-format into a leading "[start,end]" range and
// the text that follows it. It reports false when the sub-format does not
// start with a well-formed range, in which case rest is the whole input.
func ParseSliceFormat(sub string) (r SliceRange, rest string, ok bool) {
	if sub == "" || sub[0] != CharOpenBracket {
		return SliceRange{}, sub, false
	}
	closeIdx := strings.IndexByte(sub, CharCloseBracket)
	if closeIdx < 0 {
		return SliceRange{}, sub, false
	}

	inner := sub[1:closeIdx]
	startText, endText, hasComma := strings.Cut(inner, string(CharComma))
	if strings.ContainsRune(endText, CharComma) {
		return SliceRange{}, sub, false
	}

	if r.Start, r.HasStart, ok = parseBound(startText); !ok {
		return SliceRange{}, sub, false
	}
	if hasComma {
		if r.End, r.HasEnd, ok = parseBound(endText); !ok {
			return SliceRange{}, sub, false
		}
	}
	return r, sub[closeIdx+1:], true
}

func parseBound(text string) (int, bool, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, false, true
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, false, false
	}
	return n, true, true
}

// Bounds resolves the range against a sequence length with the clamping
// rules of Array.prototype.slice. The result always satisfies
// 0 <= lo <= hi <= length.
func (r SliceRange) Bounds(length int) (lo, hi int) {
	lo = 0
	if r.HasStart {
		lo = relativeIndex(r.Start, length)
	}
	hi = length
	if r.HasEnd {
		hi = relativeIndex(r.End, length)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func relativeIndex(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
		return i
	}
	if i > length {
		return length
	}
	return i
}
