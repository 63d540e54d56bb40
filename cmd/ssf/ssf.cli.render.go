package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	sourceFlags
	dataJSON     string
	dataFilePath string
	lines        bool
	outputPath   string
	verbose      bool
	args         []string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	settings, err := cfg.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeConfigErr
	}
	logger, err := newLogger(settings, cfg.verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoggerFailed, err)
		return ExitCodeConfigErr
	}
	defer func() { _ = logger.Sync() }()

	compiler, err := newCompiler(settings, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeConfigErr
	}

	// Read template
	source, err := cfg.readTemplate(stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Load input values
	inputs, err := loadInputs(cfg, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidJSON, err)
		return ExitCodeInputError
	}

	tmpl := compiler.Compile(source)
	var out strings.Builder
	for _, input := range inputs {
		out.WriteString(tmpl.Execute(input))
		if cfg.lines {
			out.WriteString(FmtNewline)
		}
	}

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(out.String()), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.inline, FlagInline, "", "")
	fs.StringVar(&cfg.inline, FlagInlineShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.BoolVar(&cfg.lines, FlagLines, false, "")
	fs.BoolVar(&cfg.lines, FlagLinesShort, false, "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.args = fs.Args()

	// Validation
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.dataJSON != "" && cfg.dataFilePath != "" {
		return nil, errors.New(ErrMsgConflictingData)
	}
	if cfg.templatePath == InputSourceStdin && cfg.dataFilePath == InputSourceStdin {
		return nil, errors.New(ErrMsgStdinTwice)
	}
	if len(cfg.args) > 0 && (cfg.dataJSON != "" || cfg.dataFilePath != "") {
		return nil, errors.New(ErrMsgArgsWithData)
	}

	return cfg, nil
}

// loadInputs returns the values to render against. Positional arguments
// form one list input; JSON data forms one input, or one per value in
// lines mode. Without either the input is undefined.
func loadInputs(cfg *renderConfig, stdin io.Reader) ([]any, error) {
	if len(cfg.args) > 0 {
		values := make([]any, len(cfg.args))
		for i, arg := range cfg.args {
			values[i] = arg
		}
		return []any{values}, nil
	}

	var data []byte
	switch {
	case cfg.dataFilePath != "":
		raw, err := readInput(cfg.dataFilePath, stdin)
		if err != nil {
			return nil, err
		}
		data = raw
	case cfg.dataJSON != "":
		data = []byte(cfg.dataJSON)
	default:
		return []any{nil}, nil
	}

	values, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	if !cfg.lines && len(values) != 1 {
		return nil, errors.New(ErrMsgInvalidJSON)
	}
	return values, nil
}

// decodeJSON decodes a stream of JSON values. Numbers stay json.Number so
// that large integers keep their digits.
func decodeJSON(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}
