package ssf

import (
	"sort"
	"strings"

	"github.com/itsatony/go-ssf/internal"
)

// Position is a location in template source.
type Position = internal.Position

// Template is a compiled template. It is immutable and safe for
// concurrent Execute calls.
type Template struct {
	source   string
	skeleton string
	parts    []part
	tokens   []*token // in order of first occurrence
	textSize int
	constant bool
}

// part is one piece of output: literal text, or the index of a token.
type part struct {
	text  string
	token int
}

const noToken = -1

// token is the evaluator shared by every occurrence of one canonical key.
type token struct {
	key         string
	path        []string
	alignment   int
	typed       bool
	category    Category
	subFormat   string
	format      Formatter
	occurrences int
	position    Position
}

func (t *token) render(input any) string {
	value, _ := internal.ResolvePath(t.path, input)
	text := t.format(value)
	if t.alignment != 0 {
		text = internal.Align(text, t.alignment)
	}
	return text
}

// Execute renders the template against input. Each distinct placeholder
// is evaluated once, however often it occurs. Execute never fails:
// missing data renders as the undefined formatter's output.
func (t *Template) Execute(input any) string {
	if t.constant {
		return t.skeleton
	}

	rendered := make([]string, len(t.tokens))
	size := t.textSize
	for i, tok := range t.tokens {
		rendered[i] = tok.render(input)
		size += len(rendered[i]) * tok.occurrences
	}

	var b strings.Builder
	b.Grow(size)
	for _, p := range t.parts {
		if p.token == noToken {
			b.WriteString(p.text)
		} else {
			b.WriteString(rendered[p.token])
		}
	}
	return b.String()
}

// Source returns the original template text.
func (t *Template) Source() string {
	return t.source
}

// Skeleton returns the template with escapes collapsed and every
// placeholder spelled as its canonical key. For a constant template the
// skeleton is the output.
func (t *Template) Skeleton() string {
	return t.skeleton
}

// IsConstant reports whether the template has no placeholders.
func (t *Template) IsConstant() bool {
	return t.constant
}

// Keys returns the distinct canonical keys, sorted.
func (t *Template) Keys() []string {
	keys := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		keys[i] = tok.key
	}
	sort.Strings(keys)
	return keys
}

// PlaceholderInfo describes one distinct placeholder of a template.
type PlaceholderInfo struct {
	Key         string   `json:"key"`
	Path        []string `json:"path"`
	Alignment   int      `json:"alignment,omitempty"`
	Type        string   `json:"type,omitempty"` // category name, empty for dynamic
	SubFormat   string   `json:"sub_format,omitempty"`
	Occurrences int      `json:"occurrences"`
	Position    Position `json:"position"`
}

// Placeholders describes the distinct placeholders in order of first
// occurrence.
func (t *Template) Placeholders() []PlaceholderInfo {
	infos := make([]PlaceholderInfo, len(t.tokens))
	for i, tok := range t.tokens {
		info := PlaceholderInfo{
			Key:         tok.key,
			Path:        append([]string(nil), tok.path...),
			Alignment:   tok.alignment,
			SubFormat:   tok.subFormat,
			Occurrences: tok.occurrences,
			Position:    tok.position,
		}
		if tok.typed {
			info.Type = tok.category.String()
		}
		infos[i] = info
	}
	return infos
}
