package ssf

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants. Templates and input data never produce errors;
// only configuration can be invalid.
const (
	ErrMsgInvalidTrigger      = "invalid trigger character"
	ErrMsgInvalidDispatchMode = "invalid dispatch mode"
	ErrMsgInvalidCategory     = "invalid category"
	ErrMsgInvalidLogLevel     = "invalid log level"
	ErrMsgInvalidCacheSize    = "cache size cannot be negative"
	ErrMsgConfigReadFailed    = "failed to read config file"
	ErrMsgConfigParseFailed   = "failed to parse config"
)

// Reasons attached to ErrMsgInvalidTrigger
const (
	ReasonTriggerNotSingleByte = "trigger must be a single ASCII character"
	ReasonTriggerNotPunct      = "trigger must be printable punctuation"
	ReasonTriggerReserved      = "trigger is reserved by the placeholder grammar"
)

// Error code constants for categorization
const (
	ErrCodeConfig     = "SSF_CONFIG"
	ErrCodeValidation = "SSF_VALIDATION"
)

// NewInvalidTriggerError creates an error for an unusable trigger character
func NewInvalidTriggerError(trigger string, reason string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidTrigger).
		WithMetadata(MetaKeyTrigger, trigger).
		WithMetadata(MetaKeyReason, reason)
}

// NewInvalidDispatchModeError creates an error for an unknown dispatch mode
func NewInvalidDispatchModeError(mode string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidDispatchMode).
		WithMetadata(MetaKeyDispatch, mode)
}

// NewInvalidCategoryError creates an error for an unknown category name or tag
func NewInvalidCategoryError(category string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidCategory).
		WithMetadata(MetaKeyCategory, category)
}

// NewInvalidLogLevelError creates an error for an unparsable log level
func NewInvalidLogLevelError(level string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgInvalidLogLevel).
		WithMetadata(MetaKeyLevel, level)
}

// NewInvalidCacheSizeError creates an error for a negative cache bound
func NewInvalidCacheSizeError() error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidCacheSize)
}

// NewConfigReadError creates an error for an unreadable config file
func NewConfigReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigReadFailed).
		WithMetadata(MetaKeyPath, path)
}

// NewConfigParseError creates an error for malformed config content
func NewConfigParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigParseFailed)
}
