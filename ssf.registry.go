package ssf

import (
	"sync"
	"sync/atomic"

	"github.com/itsatony/go-ssf/internal"
)

// Formatter renders one resolved placeholder value. Formatters must not
// mutate the value they are given.
type Formatter func(value any) string

// FormatterFactory builds a Formatter for one category from a placeholder's
// sub-format, the text after ':' in @(path,align:subFormat). Factories run
// at compile time or on first use, never once per evaluation.
type FormatterFactory func(subFormat string) Formatter

// DispatchFactory builds the formatter for placeholders without a type tag.
// It receives the registry captured at compile time so that it can
// delegate to the per-category factories.
type DispatchFactory func(subFormat string, registry Registry) Formatter

// Registry maps each category to its formatter factory, plus the dispatch
// factory used for untyped placeholders. A nil field means "inherit": from
// the process-wide defaults when used as compile overrides, from the
// built-in factories otherwise.
//
// Registry is a value type. Copying it is cheap, and a compiled template
// keeps its own copy, so later changes to the defaults do not reach it.
type Registry struct {
	Undefined FormatterFactory
	Number    FormatterFactory
	String    FormatterFactory
	Date      FormatterFactory
	Array     FormatterFactory
	Object    FormatterFactory
	Value     DispatchFactory
}

// BuiltinRegistry returns the registry of built-in formatter factories.
func BuiltinRegistry() Registry {
	return Registry{
		Undefined: NewUndefinedFormatter,
		Number:    NewNumberFormatter,
		String:    NewStringFormatter,
		Date:      NewDateFormatter,
		Array:     NewArrayFormatter,
		Object:    NewObjectFormatter,
		Value:     NewDispatch,
	}
}

// Merge returns r with every non-nil field of overrides applied on top.
func (r Registry) Merge(overrides Registry) Registry {
	for _, c := range Categories() {
		if f := overrides.field(c); f != nil {
			r = r.With(c, f)
		}
	}
	if overrides.Value != nil {
		r.Value = overrides.Value
	}
	return r
}

// With returns a copy of r with the factory for c replaced.
func (r Registry) With(c Category, f FormatterFactory) Registry {
	switch c {
	case CategoryUndefined:
		r.Undefined = f
	case CategoryNumber:
		r.Number = f
	case CategoryString:
		r.String = f
	case CategoryDate:
		r.Date = f
	case CategoryArray:
		r.Array = f
	case CategoryObject:
		r.Object = f
	}
	return r
}

// WithValue returns a copy of r with the dispatch factory replaced.
func (r Registry) WithValue(f DispatchFactory) Registry {
	r.Value = f
	return r
}

// Factory returns the factory for c, falling back to the built-in one.
func (r Registry) Factory(c Category) FormatterFactory {
	if f := r.field(c); f != nil {
		return f
	}
	return BuiltinRegistry().field(c)
}

// Formatter builds the formatter for a placeholder forced to category c.
func (r Registry) Formatter(c Category, subFormat string) Formatter {
	return orIdentity(r.Factory(c)(subFormat))
}

// Dynamic builds the formatter for a placeholder without a type tag.
func (r Registry) Dynamic(subFormat string) Formatter {
	dispatch := r.Value
	if dispatch == nil {
		dispatch = NewDispatch
	}
	return orIdentity(dispatch(subFormat, r))
}

func (r Registry) field(c Category) FormatterFactory {
	switch c {
	case CategoryUndefined:
		return r.Undefined
	case CategoryNumber:
		return r.Number
	case CategoryString:
		return r.String
	case CategoryDate:
		return r.Date
	case CategoryArray:
		return r.Array
	case CategoryObject:
		return r.Object
	}
	return nil
}

// orIdentity guards against factories that return no formatter
func orIdentity(f Formatter) Formatter {
	if f == nil {
		return internal.Stringify
	}
	return f
}

// Process-wide defaults. Compile snapshots them once; nothing reads them
// during evaluation.
var (
	defaultsMu         sync.RWMutex
	defaultsRegistry   = BuiltinRegistry()
	defaultsGeneration atomic.Uint64
)

// Defaults returns a copy of the process-wide default registry.
func Defaults() Registry {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultsRegistry
}

// SetDefaults replaces the process-wide defaults. Nil fields of r fall back
// to the built-in factories. Templates compiled earlier keep the registry
// they captured.
//
// SetDefaults is safe to call concurrently, but a Compile racing with it
// may capture either the old or the new defaults. Configure defaults
// before steady-state use.
func SetDefaults(r Registry) {
	updateDefaults(func(Registry) Registry {
		return BuiltinRegistry().Merge(r)
	})
}

// SetDefaultFactory replaces the process-wide default factory for one
// category. A nil factory restores the built-in one.
func SetDefaultFactory(c Category, f FormatterFactory) {
	updateDefaults(func(current Registry) Registry {
		if f == nil {
			return current.With(c, BuiltinRegistry().field(c))
		}
		return current.With(c, f)
	})
}

// SetDefaultDispatch replaces the process-wide dispatch factory. A nil
// factory restores NewDispatch.
func SetDefaultDispatch(f DispatchFactory) {
	updateDefaults(func(current Registry) Registry {
		if f == nil {
			f = NewDispatch
		}
		return current.WithValue(f)
	})
}

// ResetDefaults restores the built-in defaults.
func ResetDefaults() {
	updateDefaults(func(Registry) Registry {
		return BuiltinRegistry()
	})
}

// DefaultsGeneration increments on every change to the defaults. Caches of
// compiled templates use it to detect stale entries.
func DefaultsGeneration() uint64 {
	return defaultsGeneration.Load()
}

func updateDefaults(update func(Registry) Registry) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultsRegistry = update(defaultsRegistry)
	defaultsGeneration.Add(1)
}
