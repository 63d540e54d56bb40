package ssf

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/itsatony/go-ssf/internal"
	"go.uber.org/zap"
)

// Compiler turns template strings into Templates. A Compiler is immutable
// after New and safe for concurrent use.
type Compiler struct {
	config  *compilerConfig
	trigger byte
	logger  *zap.Logger
}

// New creates a Compiler with the given options. The only failure is an
// unusable trigger character.
func New(opts ...Option) (*Compiler, error) {
	config := defaultCompilerConfig()
	for _, opt := range opts {
		opt(config)
	}

	trigger, err := validateTrigger(config.trigger)
	if err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug(LogMsgCompilerCreated, zap.String(LogFieldTrigger, string(rune(trigger))))

	return &Compiler{
		config:  config,
		trigger: trigger,
		logger:  logger,
	}, nil
}

// MustNew creates a new Compiler and panics if there's an error.
func MustNew(opts ...Option) *Compiler {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Trigger returns the placeholder trigger character.
func (c *Compiler) Trigger() rune {
	return rune(c.trigger)
}

// Compile compiles source into a Template. It never fails: text that is
// not a well-formed placeholder is kept as literal text.
//
// The process-wide defaults are captured once, here. Changing them later
// has no effect on the returned Template.
func (c *Compiler) Compile(source string) *Template {
	return c.compile(source, Defaults().Merge(c.config.overrides))
}

// Format compiles source and evaluates it once against input.
// For templates that will be evaluated repeatedly, use Compile instead.
func (c *Compiler) Format(source string, input any) string {
	return c.Compile(source).Execute(input)
}

func (c *Compiler) compile(source string, registry Registry) *Template {
	c.logger.Debug(LogMsgCompileStart, zap.Int(LogFieldSource, len(source)))

	scanner := internal.NewScannerWithConfig(source, internal.ScannerConfig{Trigger: c.trigger}, c.logger)
	segments := scanner.Scan()

	tmpl := &Template{
		source: source,
		parts:  make([]part, 0, len(segments)),
	}
	index := make(map[string]int)
	var skeleton strings.Builder
	placeholders := 0

	for _, seg := range segments {
		if seg.IsText() {
			tmpl.parts = append(tmpl.parts, part{text: seg.Text, token: noToken})
			tmpl.textSize += len(seg.Text)
			skeleton.WriteString(seg.Text)
			continue
		}

		placeholders++
		key := canonicalKey(c.trigger, seg.Placeholder)
		i, seen := index[key]
		if !seen {
			i = len(tmpl.tokens)
			index[key] = i
			tmpl.tokens = append(tmpl.tokens, resolveToken(key, seg, registry))
			c.logger.Debug(LogMsgTokenResolved, zap.String(LogFieldKey, key))
		}
		tmpl.tokens[i].occurrences++
		tmpl.parts = append(tmpl.parts, part{token: i})
		skeleton.WriteString(key)
	}

	tmpl.skeleton = skeleton.String()
	tmpl.constant = len(tmpl.tokens) == 0
	if tmpl.constant {
		c.logger.Debug(LogMsgConstantTemplate, zap.Int(LogFieldSource, len(source)))
	}

	c.logger.Debug(LogMsgCompileEnd,
		zap.Int(LogFieldTokens, len(tmpl.tokens)),
		zap.Int(LogFieldPlaceholders, placeholders))

	return tmpl
}

// canonicalKey spells a placeholder in long form with a normalized
// alignment, so that @a, @(a) and @(a,:) share one key.
func canonicalKey(trigger byte, p internal.Placeholder) string {
	var b strings.Builder
	b.Grow(len(p.Path) + len(p.SubFormat) + 8)
	b.WriteByte(trigger)
	if p.TypeTag != 0 {
		b.WriteByte(p.TypeTag)
	}
	b.WriteString(KeyOpen)
	b.WriteString(p.Path)
	b.WriteString(KeyPathSep)
	if width := internal.ParseAlignment(p.Alignment); width != 0 {
		b.WriteString(strconv.Itoa(width))
	}
	b.WriteString(KeyFormatSep)
	b.WriteString(p.SubFormat)
	b.WriteString(KeyClose)
	return b.String()
}

// resolveToken binds a placeholder to its formatter. It runs once per
// distinct canonical key.
func resolveToken(key string, seg internal.Segment, registry Registry) *token {
	p := seg.Placeholder
	tok := &token{
		key:       key,
		path:      internal.SplitPath(p.Path),
		alignment: internal.ParseAlignment(p.Alignment),
		subFormat: p.SubFormat,
		position:  seg.Position,
		category:  CategoryUndefined,
	}
	if category, ok := internal.CategoryForTag(p.TypeTag); ok {
		tok.typed = true
		tok.category = category
		tok.format = registry.Formatter(category, p.SubFormat)
		return tok
	}
	tok.format = registry.Dynamic(p.SubFormat)
	return tok
}

func validateTrigger(trigger rune) (byte, error) {
	text := string(trigger)
	if trigger < 0 || trigger > unicode.MaxASCII {
		return 0, NewInvalidTriggerError(text, ReasonTriggerNotSingleByte)
	}
	ch := byte(trigger)
	if !unicode.IsPunct(trigger) && !unicode.IsSymbol(trigger) {
		return 0, NewInvalidTriggerError(text, ReasonTriggerNotPunct)
	}
	if strings.IndexByte(ReservedTriggerChars, ch) >= 0 {
		return 0, NewInvalidTriggerError(text, ReasonTriggerReserved)
	}
	return ch, nil
}

// defaultCompiler serves the package-level helpers.
var defaultCompiler = MustNew()

// Compile compiles source with a one-off Compiler built from opts.
func Compile(source string, opts ...Option) (*Template, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Compile(source), nil
}

// MustCompile is like Compile but panics if the options are invalid.
func MustCompile(source string, opts ...Option) *Template {
	tmpl, err := Compile(source, opts...)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Format compiles source and evaluates it once against input.
func Format(source string, input any, opts ...Option) (string, error) {
	tmpl, err := Compile(source, opts...)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(input), nil
}

// FormatArgs formats source against its positional arguments, addressed as
// @0, @1 and so on. A bare @ formats the whole argument list.
//
//	ssf.FormatArgs("@0 has @(1,-6:d3) items", "cart", 7) // "cart has 007    items"
func FormatArgs(source string, values ...any) string {
	return defaultCompiler.Compile(source).Execute(values)
}
