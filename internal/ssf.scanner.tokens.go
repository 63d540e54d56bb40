package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int `json:"offset"` // Byte offset from start
	Line   int `json:"line"`   // 1-indexed line number
	Column int `json:"column"` // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// SegmentKind distinguishes literal text from placeholders
type SegmentKind int

// Segment kind constants
const (
	SegmentText SegmentKind = iota
	SegmentPlaceholder
)

// Segment kind names for debugging
const (
	SegmentKindNameText        = "TEXT"
	SegmentKindNamePlaceholder = "PLACEHOLDER"
)

// String returns the string representation of the segment kind
func (k SegmentKind) String() string {
	if k == SegmentPlaceholder {
		return SegmentKindNamePlaceholder
	}
	return SegmentKindNameText
}

// Form records which spelling a placeholder was written in
type Form int

// Placeholder forms
const (
	FormBare  Form = iota // @
	FormShort             // @a.b
	FormLong              // @(a.b,4:f2) or @n(a.b,4:f2)
)

// Form names for debugging
const (
	FormNameBare  = "BARE"
	FormNameShort = "SHORT"
	FormNameLong  = "LONG"
)

// String returns the string representation of the form
func (f Form) String() string {
	switch f {
	case FormShort:
		return FormNameShort
	case FormLong:
		return FormNameLong
	default:
		return FormNameBare
	}
}

// Placeholder holds the raw parts of one placeholder as written.
type Placeholder struct {
	Form      Form
	TypeTag   byte   // 0 when the type is chosen at evaluation time
	Path      string // raw dotted path, "" addresses the whole input
	Alignment string // raw alignment text, "" means none
	SubFormat string // raw sub-format text, "" means category default
}

// Segment is one unit of scanner output
type Segment struct {
	Kind        SegmentKind
	Text        string // literal content for SegmentText
	Placeholder Placeholder
	Position    Position
}

// String returns a human-readable representation of the segment
func (s Segment) String() string {
	if s.Kind == SegmentText {
		return fmt.Sprintf("Segment{%s: %q @ %s}", s.Kind, s.Text, s.Position)
	}
	p := s.Placeholder
	return fmt.Sprintf("Segment{%s %s tag=%q path=%q align=%q sub=%q @ %s}",
		s.Kind, p.Form, tagString(p.TypeTag), p.Path, p.Alignment, p.SubFormat, s.Position)
}

// IsText returns true if this is a literal text segment
func (s Segment) IsText() bool {
	return s.Kind == SegmentText
}

// IsPlaceholder returns true if this is a placeholder segment
func (s Segment) IsPlaceholder() bool {
	return s.Kind == SegmentPlaceholder
}

// NewTextSegment creates a literal text segment
func NewTextSegment(text string, pos Position) Segment {
	return Segment{Kind: SegmentText, Text: text, Position: pos}
}

// NewPlaceholderSegment creates a placeholder segment
func NewPlaceholderSegment(p Placeholder, pos Position) Segment {
	return Segment{Kind: SegmentPlaceholder, Placeholder: p, Position: pos}
}

func tagString(tag byte) string {
	if tag == 0 {
		return ""
	}
	return string(tag)
}
