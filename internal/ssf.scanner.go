package internal

import (
	"strings"

	"go.uber.org/zap"
)

// ScannerConfig holds scanner configuration
type ScannerConfig struct {
	Trigger byte // Placeholder trigger character (default: '@')
}

// DefaultScannerConfig returns the default scanner configuration
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{Trigger: DefaultTrigger}
}

// Scanner splits a template into literal text and placeholder segments.
// It is a hand-written state machine: every byte is looked at a bounded
// number of times, so adversarial input cannot cause backtracking.
//
// Grammar, tried in this order at each trigger character:
//
//	@@                      literal trigger
//	@T(path,align:sub)      long form with type tag T in [undsao]
//	@(path,align:sub)       long form, dynamic type
//	@ident(.ident)*         short form
//	@                       bare trigger, whole input
//
// A long form that is unterminated or contains a nested '(' is not a
// long form; the trigger then falls back to the next rule.
type Scanner struct {
	source string
	config ScannerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewScanner creates a new scanner with default configuration
func NewScanner(source string, logger *zap.Logger) *Scanner {
	return NewScannerWithConfig(source, DefaultScannerConfig(), logger)
}

// NewScannerWithConfig creates a scanner with custom configuration
func NewScannerWithConfig(source string, config ScannerConfig, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Trigger == 0 {
		config.Trigger = DefaultTrigger
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		config: config,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Scan processes the whole source and returns its segments. Adjacent
// literal text, including escaped triggers, is merged into one segment.
// Scan never fails: text that is not a placeholder is kept verbatim.
func (s *Scanner) Scan() []Segment {
	s.logger.Debug(LogMsgScanStart)
	var segments []Segment
	var text strings.Builder
	textPos := s.currentPosition()

	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, NewTextSegment(text.String(), textPos))
			text.Reset()
		}
	}

	for !s.isAtEnd() {
		if s.peek() != s.config.Trigger {
			if text.Len() == 0 {
				textPos = s.currentPosition()
			}
			text.WriteByte(s.advance())
			continue
		}

		// Escape: two triggers collapse into one literal trigger
		if s.peekAt(1) == s.config.Trigger {
			if text.Len() == 0 {
				textPos = s.currentPosition()
			}
			s.advanceN(2)
			text.WriteByte(s.config.Trigger)
			continue
		}

		pos := s.currentPosition()
		placeholder := s.scanPlaceholder()
		flush()
		segments = append(segments, NewPlaceholderSegment(placeholder, pos))
	}
	flush()

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments
}

// scanPlaceholder scans one placeholder starting at the trigger character
func (s *Scanner) scanPlaceholder() Placeholder {
	s.advance() // consume trigger

	next := s.peek()
	if IsTypeTag(next) && s.peekAt(1) == CharOpenParen {
		if p, n, ok := scanLongForm(s.source, s.pos+1); ok {
			p.TypeTag = next
			s.advanceN(1 + n)
			return p
		}
	}

	if next == CharOpenParen {
		if p, n, ok := scanLongForm(s.source, s.pos); ok {
			s.advanceN(n)
			return p
		}
		return Placeholder{Form: FormBare}
	}

	if isIdentChar(next) {
		// The path never ends on a dot, so "@name." keeps the dot as text
		start, end := s.pos, s.pos
		for i := s.pos; i < len(s.source); i++ {
			ch := s.source[i]
			if isIdentChar(ch) {
				end = i + 1
			} else if ch != CharDot {
				break
			}
		}
		s.advanceN(end - start)
		return Placeholder{Form: FormShort, Path: s.source[start:end]}
	}

	return Placeholder{Form: FormBare}
}

// scanLongForm parses "(path,alignment:subFormat)" starting at the opening
// parenthesis. It returns the placeholder and the number of bytes consumed,
// or ok=false when the text is not a well-formed long form.
func scanLongForm(src string, open int) (p Placeholder, consumed int, ok bool) {
	p.Form = FormLong
	i := open + 1

	// Path runs to the first ',', ':' or ')'
	start := i
	for i < len(src) && !strings.ContainsRune(",:()", rune(src[i])) {
		i++
	}
	if i >= len(src) || src[i] == CharOpenParen {
		return Placeholder{}, 0, false
	}
	p.Path = src[start:i]

	if src[i] == CharComma {
		i++
		start = i
		for i < len(src) && !strings.ContainsRune(",:()", rune(src[i])) {
			i++
		}
		if i >= len(src) || src[i] == CharOpenParen || src[i] == CharComma {
			return Placeholder{}, 0, false
		}
		p.Alignment = src[start:i]
	}

	if src[i] == CharColon {
		i++
		start = i
		for i < len(src) && src[i] != CharOpenParen && src[i] != CharCloseParen {
			i++
		}
		if i >= len(src) || src[i] == CharOpenParen {
			return Placeholder{}, 0, false
		}
		p.SubFormat = src[start:i]
	}

	// src[i] is now ')'
	return p, i + 1 - open, true
}

// Helper methods

// currentPosition returns the current position
func (s *Scanner) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

// peek returns the current character without advancing
func (s *Scanner) peek() byte {
	return s.peekAt(0)
}

// peekAt returns the character n bytes ahead, or 0 past the end
func (s *Scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.source) {
		return 0
	}
	return s.source[s.pos+n]
}

// advance consumes and returns the current character
func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == CharNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// advanceN advances by n characters
func (s *Scanner) advanceN(n int) {
	for i := 0; i < n && !s.isAtEnd(); i++ {
		s.advance()
	}
}

// Character classification helpers

// IsTypeTag reports whether ch is one of the long-form type tag letters
func IsTypeTag(ch byte) bool {
	switch ch {
	case TagUndefined, TagNumber, TagString, TagDate, TagArray, TagObject:
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == CharUnderscore || ch == CharDollar
}
