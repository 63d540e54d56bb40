package ssf

import (
	"sync/atomic"

	"github.com/itsatony/go-ssf/internal"
)

// DispatchMode selects how untyped placeholders pick a formatter.
type DispatchMode int

const (
	// DispatchReclassify classifies every value on every evaluation. A
	// token builds at most one formatter per category and reuses it, so its
	// sub-format is parsed once per category. Always correct.
	DispatchReclassify DispatchMode = iota

	// DispatchStable pins the formatter of the first defined value a token
	// sees and stops classifying. Only use it when every placeholder keeps
	// the same category across all inputs: a placeholder that sees a
	// number and later a string keeps formatting it as a number.
	DispatchStable
)

// String returns the configuration name of the mode
func (m DispatchMode) String() string {
	if m == DispatchStable {
		return DispatchNameStable
	}
	return DispatchNameReclassify
}

// ParseDispatchMode parses a configuration name. The empty string is
// DispatchReclassify.
func ParseDispatchMode(name string) (DispatchMode, error) {
	switch name {
	case "", DispatchNameReclassify:
		return DispatchReclassify, nil
	case DispatchNameStable:
		return DispatchStable, nil
	}
	return DispatchReclassify, NewInvalidDispatchModeError(name)
}

// Factory returns the dispatch factory implementing the mode
func (m DispatchMode) Factory() DispatchFactory {
	if m == DispatchStable {
		return NewStableDispatch
	}
	return NewDispatch
}

// NewDispatch is the default dispatch factory. See DispatchReclassify.
func NewDispatch(subFormat string, registry Registry) Formatter {
	d := &dispatcher{subFormat: subFormat, registry: registry}
	return d.format
}

// NewStableDispatch is the dispatch factory for DispatchStable.
func NewStableDispatch(subFormat string, registry Registry) Formatter {
	d := &stableDispatcher{dispatcher: dispatcher{subFormat: subFormat, registry: registry}}
	return d.format
}

// dispatcher caches one formatter per category. Concurrent first uses may
// both build a formatter; the stores are idempotent and the last one wins.
type dispatcher struct {
	subFormat string
	registry  Registry
	cache     [internal.CategoryCount]atomic.Pointer[Formatter]
}

func (d *dispatcher) format(v any) string {
	return d.formatterFor(Classify(v))(v)
}

func (d *dispatcher) formatterFor(c Category) Formatter {
	slot := &d.cache[c]
	if f := slot.Load(); f != nil {
		return *f
	}
	f := d.registry.Formatter(c, d.subFormat)
	slot.Store(&f)
	return f
}

// stableDispatcher pins the first formatter chosen for a defined value.
type stableDispatcher struct {
	dispatcher
	pinned atomic.Pointer[Formatter]
}

func (d *stableDispatcher) format(v any) string {
	if f := d.pinned.Load(); f != nil {
		return (*f)(v)
	}
	c := Classify(v)
	f := d.formatterFor(c)
	if c != CategoryUndefined {
		d.pinned.Store(&f)
	}
	return f(v)
}
