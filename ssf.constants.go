package ssf

// Trigger constants
const (
	// DefaultTrigger introduces placeholders: @name, @(path,align:format)
	DefaultTrigger = '@'
	// ReservedTriggerChars cannot be used as a trigger character
	ReservedTriggerChars = "(),:.[]_$"
)

// Type tag letters accepted by the typed long form, e.g. @n(price,8:f2)
const (
	TagUndefined = "u"
	TagNumber    = "n"
	TagString    = "s"
	TagDate      = "d"
	TagArray     = "a"
	TagObject    = "o"
)

// Dispatch mode names, as used in configuration files
const (
	DispatchNameReclassify = "reclassify"
	DispatchNameStable     = "stable"
)

// Template cache defaults
const (
	DefaultCacheMaxEntries      = 1000
	DefaultCacheMaxTemplateSize = 1 << 20 // 1MB
)

// Canonical key spelling: trigger, tag, "(", path, ",", alignment, ":", sub-format, ")"
const (
	KeyOpen      = "("
	KeyPathSep   = ","
	KeyFormatSep = ":"
	KeyClose     = ")"
)

// Log message constants
const (
	LogMsgCompilerCreated  = "compiler created"
	LogMsgCompileStart     = "starting compile"
	LogMsgCompileEnd       = "compile complete"
	LogMsgConstantTemplate = "template has no placeholders"
	LogMsgTokenResolved    = "token resolved"
	LogMsgCacheHit         = "template cache hit"
	LogMsgCacheMiss        = "template cache miss"
	LogMsgCacheStale       = "template cache entry stale"
	LogMsgCacheEvict       = "template cache eviction"
	LogMsgConfigLoaded     = "config loaded"
)

// Log field names
const (
	LogFieldSource       = "source_length"
	LogFieldTokens       = "token_count"
	LogFieldPlaceholders = "placeholder_count"
	LogFieldKey          = "key"
	LogFieldTrigger      = "trigger"
	LogFieldDispatch     = "dispatch"
	LogFieldGeneration   = "generation"
	LogFieldEntries      = "entries"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyTrigger  = "trigger"
	MetaKeyDispatch = "dispatch"
	MetaKeyPath     = "path"
	MetaKeyLevel    = "level"
	MetaKeyCategory = "category"
	MetaKeyReason   = "reason"
)
