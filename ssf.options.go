package ssf

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Compiler.
type Option func(*compilerConfig)

// compilerConfig holds the internal configuration for a Compiler.
type compilerConfig struct {
	trigger   rune
	overrides Registry
	logger    *zap.Logger
}

// defaultCompilerConfig returns the default compiler configuration.
func defaultCompilerConfig() *compilerConfig {
	return &compilerConfig{
		trigger: DefaultTrigger,
		logger:  nil,
	}
}

// WithTrigger sets the character that introduces placeholders.
// It must be an ASCII punctuation or symbol character outside
// ReservedTriggerChars.
// Default: '@'
func WithTrigger(trigger rune) Option {
	return func(c *compilerConfig) {
		c.trigger = trigger
	}
}

// WithRegistry layers the non-nil factories of r over the defaults for
// every template this compiler produces.
func WithRegistry(r Registry) Option {
	return func(c *compilerConfig) {
		c.overrides = c.overrides.Merge(r)
	}
}

// WithFormatter overrides the factory for one category.
func WithFormatter(category Category, factory FormatterFactory) Option {
	return func(c *compilerConfig) {
		c.overrides = c.overrides.With(category, factory)
	}
}

// WithValueDispatch overrides the dispatch factory for untyped placeholders.
func WithValueDispatch(factory DispatchFactory) Option {
	return func(c *compilerConfig) {
		c.overrides = c.overrides.WithValue(factory)
	}
}

// WithDispatch selects a built-in dispatch mode for untyped placeholders.
// Default: DispatchReclassify
func WithDispatch(mode DispatchMode) Option {
	return WithValueDispatch(mode.Factory())
}

// WithLogger sets the logger for the compiler.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *compilerConfig) {
		c.logger = logger
	}
}
