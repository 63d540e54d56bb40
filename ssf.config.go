package ssf

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the file form of compiler settings:
//
//	trigger: "%"
//	dispatch: stable
//	log_level: debug
//	cache:
//	  max_entries: 500
type Config struct {
	Trigger  string              `yaml:"trigger"`
	Dispatch string              `yaml:"dispatch"`
	LogLevel string              `yaml:"log_level"`
	Cache    TemplateCacheConfig `yaml:"cache"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() Config {
	return Config{
		Trigger:  string(rune(DefaultTrigger)),
		Dispatch: DispatchNameReclassify,
		LogLevel: zapcore.InfoLevel.String(),
		Cache:    DefaultTemplateCacheConfig(),
	}
}

// ParseConfig parses YAML configuration. Keys absent from data keep
// their defaults; unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, NewConfigParseError(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewConfigReadError(path, err)
	}
	return ParseConfig(data)
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := c.trigger(); err != nil {
		return err
	}
	if _, err := ParseDispatchMode(c.Dispatch); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Cache.MaxEntries < 0 || c.Cache.MaxTemplateSize < 0 {
		return NewInvalidCacheSizeError()
	}
	return nil
}

// Level returns the configured log level. Empty means info.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, NewInvalidLogLevelError(c.LogLevel, err)
	}
	return level, nil
}

// Options converts the configuration to compiler options. logger may be nil.
func (c Config) Options(logger *zap.Logger) ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	trigger, _ := c.trigger()
	mode, _ := ParseDispatchMode(c.Dispatch)

	if logger != nil {
		logger.Debug(LogMsgConfigLoaded,
			zap.String(LogFieldTrigger, string(trigger)),
			zap.String(LogFieldDispatch, mode.String()))
	}

	return []Option{
		WithTrigger(trigger),
		WithDispatch(mode),
		WithLogger(logger),
	}, nil
}

// NewCachedCompilerFromConfig builds a caching compiler from c.
func NewCachedCompilerFromConfig(c Config, logger *zap.Logger) (*CachedCompiler, error) {
	opts, err := c.Options(logger)
	if err != nil {
		return nil, err
	}
	compiler, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return NewCachedCompiler(compiler, c.Cache), nil
}

func (c Config) trigger() (rune, error) {
	if c.Trigger == "" {
		return DefaultTrigger, nil
	}
	if len(c.Trigger) != 1 {
		return 0, NewInvalidTriggerError(c.Trigger, ReasonTriggerNotSingleByte)
	}
	r := rune(c.Trigger[0])
	if _, err := validateTrigger(r); err != nil {
		return 0, err
	}
	return r, nil
}
