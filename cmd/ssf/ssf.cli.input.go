package main

import (
	"errors"
	"io"
	"os"

	"github.com/itsatony/go-ssf"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sourceFlags are shared by every command that takes a template
type sourceFlags struct {
	templatePath string
	inline       string
	configPath   string
}

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// validate checks that exactly one template source is given
func (s sourceFlags) validate() error {
	if s.templatePath != "" && s.inline != "" {
		return errors.New(ErrMsgConflictingSources)
	}
	if s.templatePath == "" && s.inline == "" {
		return errors.New(ErrMsgMissingTemplate)
	}
	return nil
}

// readTemplate returns the template text from --inline or --template
func (s sourceFlags) readTemplate(stdin io.Reader) (string, error) {
	if s.inline != "" {
		return s.inline, nil
	}
	data, err := readInput(s.templatePath, stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadConfig reads the config file, or returns defaults without one
func (s sourceFlags) loadConfig() (ssf.Config, error) {
	if s.configPath == "" {
		return ssf.DefaultConfig(), nil
	}
	return ssf.LoadConfig(s.configPath)
}

// newLogger writes console logs to stderr at the configured level, or at
// debug when verbose is set.
func newLogger(cfg ssf.Config, verbose bool, stderr io.Writer) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(stderr),
		level,
	)
	return zap.New(core), nil
}

// newCompiler builds a compiler from the config and logger
func newCompiler(cfg ssf.Config, logger *zap.Logger) (*ssf.Compiler, error) {
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}
	return ssf.New(opts...)
}
