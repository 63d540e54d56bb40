package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameInspect = "inspect"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagInline   = "inline"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagLines    = "lines"
	FlagConfig   = "config"
	FlagOutput   = "output"
	FlagVerbose  = "verbose"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagInlineShort   = "i"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagLinesShort    = "l"
	FlagConfigShort   = "c"
	FlagOutputShort   = "o"
	FlagVerboseShort  = "v"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeConfigErr  = 3
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand     = "unknown command"
	ErrMsgMissingTemplate    = "template source required"
	ErrMsgConflictingSources = "use either --template or --inline, not both"
	ErrMsgConflictingData    = "use either --data or --data-file, not both"
	ErrMsgArgsWithData       = "positional arguments cannot be combined with JSON data"
	ErrMsgStdinTwice         = "template and data cannot both be read from stdin"
	ErrMsgInvalidJSON        = "invalid JSON data"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgWriteOutputFailed  = "failed to write output"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgInvalidFlags       = "invalid flags"
	ErrMsgConfigFailed       = "invalid configuration"
	ErrMsgLoggerFailed       = "failed to create logger"
)

// Help text templates
const (
	HelpMainUsage = `go-ssf - template string formatting CLI

Usage:
    ssf <command> [options]

Commands:
    render      Render a template with data
    inspect     Show how a template compiles
    version     Show version information
    help        Show help for a command

Use "ssf help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Usage:
    ssf render [options] [args...]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -i, --inline <text>     Template text
    -d, --data <json>       JSON input value
    -f, --data-file <file>  JSON input file (use "-" for stdin)
    -l, --lines             Treat the input as a stream of JSON values
                            and render once per value
    -c, --config <file>     YAML configuration file
    -o, --output <file>     Output file (default: stdout)
    -v, --verbose           Log compilation to stderr

Positional arguments are bound as a list and addressed as @0, @1 and so on.

Examples:
    ssf render -i '@(0,-8)|@1' -- Ann 42
    ssf render -i 'Hello @name' -d '{"name": "Alice"}'
    ssf render -t invoice.txt -f order.json -o invoice.out
    ssf render -i '@(sku,-10)@(qty,4:d)' -f orders.jsonl -l`

	HelpInspectUsage = `Show how a template compiles

Usage:
    ssf inspect [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -i, --inline <text>     Template text
    -c, --config <file>     YAML configuration file
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    ssf inspect -i '@a @(a,:) @n(price,8:f2)'
    ssf inspect -t invoice.txt -F json`

	HelpVersionUsage = `Show version information

Usage:
    ssf version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    ssf help [command]

Commands:
    render      Show help for render command
    inspect     Show help for inspect command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "%s version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s\nDefault trigger: %s"
	VersionUnknown      = "unknown"
	VersionDefaultName  = "go-ssf"
)

// Inspect output format templates
const (
	InspectTextSource      = "Source:   %q\n"
	InspectTextSkeleton    = "Skeleton: %q\n"
	InspectTextConstant    = "Constant: %t\n"
	InspectTextTokenHeader = "Tokens (%d):\n"
	InspectTextToken       = "  %-24s path=%-16s align=%-4d type=%-9s sub=%-8q x%d  %s\n"
	InspectTypeDynamic     = "dynamic"
	InspectPathWhole       = "(input)"
)

// CLI metadata
const (
	CLIName        = "ssf"
	CLIDescription = "template string formatting CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
