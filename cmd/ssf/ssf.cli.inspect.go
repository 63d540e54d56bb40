package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-ssf"
)

// inspectConfig holds parsed inspect command configuration
type inspectConfig struct {
	sourceFlags
	format string
}

// inspectOutput represents JSON output for inspect
type inspectOutput struct {
	Source       string                `json:"source"`
	Skeleton     string                `json:"skeleton"`
	Constant     bool                  `json:"constant"`
	Trigger      string                `json:"trigger"`
	Placeholders []ssf.PlaceholderInfo `json:"placeholders"`
}

func runInspect(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseInspectFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	settings, err := cfg.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeConfigErr
	}
	compiler, err := newCompiler(settings, nil)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeConfigErr
	}

	source, err := cfg.readTemplate(stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	tmpl := compiler.Compile(source)
	output := inspectOutput{
		Source:       tmpl.Source(),
		Skeleton:     tmpl.Skeleton(),
		Constant:     tmpl.IsConstant(),
		Trigger:      string(compiler.Trigger()),
		Placeholders: tmpl.Placeholders(),
	}

	if cfg.format == OutputFormatJSON {
		return outputInspectJSON(output, stdout)
	}
	return outputInspectText(output, stdout)
}

func parseInspectFlags(args []string) (*inspectConfig, error) {
	fs := flag.NewFlagSet(CmdNameInspect, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &inspectConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.inline, FlagInline, "", "")
	fs.StringVar(&cfg.inline, FlagInlineShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputInspectText(out inspectOutput, stdout io.Writer) int {
	fmt.Fprintf(stdout, InspectTextSource, out.Source)
	fmt.Fprintf(stdout, InspectTextSkeleton, out.Skeleton)
	fmt.Fprintf(stdout, InspectTextConstant, out.Constant)
	fmt.Fprintf(stdout, InspectTextTokenHeader, len(out.Placeholders))
	for _, p := range out.Placeholders {
		path := strings.Join(p.Path, ".")
		if len(p.Path) == 0 {
			path = InspectPathWhole
		}
		kind := p.Type
		if kind == "" {
			kind = InspectTypeDynamic
		}
		fmt.Fprintf(stdout, InspectTextToken, p.Key, path, p.Alignment, kind, p.SubFormat, p.Occurrences, p.Position)
	}
	return ExitCodeSuccess
}

func outputInspectJSON(out inspectOutput, stdout io.Writer) int {
	if out.Placeholders == nil {
		out.Placeholders = []ssf.PlaceholderInfo{}
	}
	jsonBytes, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))
	return ExitCodeSuccess
}
