package internal

// Grammar characters
const (
	CharOpenParen    = '('
	CharCloseParen   = ')'
	CharComma        = ','
	CharColon        = ':'
	CharDot          = '.'
	CharOpenBracket  = '['
	CharCloseBracket = ']'
	CharUnderscore   = '_'
	CharDollar       = '$'
	CharMinus        = '-'
	CharPlus         = '+'
	CharZero         = '0'
	CharSpace        = ' '
	CharNewline      = '\n'
)

// DefaultTrigger is the character that introduces a placeholder.
const DefaultTrigger byte = '@'

// Type tag letters for the long form, e.g. @n(price,8:f2)
const (
	TagUndefined byte = 'u'
	TagNumber    byte = 'n'
	TagString    byte = 's'
	TagDate      byte = 'd'
	TagArray     byte = 'a'
	TagObject    byte = 'o'
)

// Category names
const (
	CategoryNameUndefined = "undefined"
	CategoryNameNumber    = "number"
	CategoryNameString    = "string"
	CategoryNameDate      = "date"
	CategoryNameArray     = "array"
	CategoryNameObject    = "object"
)

// Number sub-format specifiers
const (
	SpecHex        byte = 'x'
	SpecInteger    byte = 'd'
	SpecFixed      byte = 'f'
	SpecExponent   byte = 'e'
	SpecNone       byte = 0
	HexDigitsLimit      = 64
)

// MaxAlignment bounds the padding a single placeholder may request.
const MaxAlignment = 1 << 16

// DefaultJoiner is used when an array is rendered without an explicit joiner.
const DefaultJoiner = ","

// EmptyJoinerFormat is the array sub-format that joins with no separator.
const EmptyJoinerFormat = "[]"

// PathSeparator splits placeholder paths into keys.
const PathSeparator = "."

// Struct tag consulted when resolving path keys against struct fields.
const StructTagJSON = "json"

// Log message constants
const (
	LogMsgScannerCreated = "scanner created"
	LogMsgScanStart      = "starting scan"
	LogMsgScanEnd        = "scan complete"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldSegments = "segment_count"
)
