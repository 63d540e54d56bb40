package ssf

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRegistry counts factory calls per category
func countingRegistry(counts map[Category]int) Registry {
	r := Registry{}
	for _, c := range Categories() {
		r = r.With(c, func(sub string) Formatter {
			counts[c]++
			inner := BuiltinRegistry().Factory(c)(sub)
			return func(v any) string { return string(c.Tag()) + ":" + inner(v) }
		})
	}
	return r
}

func TestParseDispatchMode(t *testing.T) {
	tests := []struct {
		name     string
		expected DispatchMode
	}{
		{"", DispatchReclassify},
		{DispatchNameReclassify, DispatchReclassify},
		{DispatchNameStable, DispatchStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseDispatchMode(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	_, err := ParseDispatchMode("sticky")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidDispatchMode)
}

func TestDispatchMode_String(t *testing.T) {
	assert.Equal(t, DispatchNameReclassify, DispatchReclassify.String())
	assert.Equal(t, DispatchNameStable, DispatchStable.String())
}

func TestNewDispatch_Reclassifies(t *testing.T) {
	counts := map[Category]int{}
	f := NewDispatch("", countingRegistry(counts))

	assert.Equal(t, "n:1", f(1))
	assert.Equal(t, "s:x", f("x"))
	assert.Equal(t, "n:2", f(2))
	assert.Equal(t, "u:", f(nil))
	assert.Equal(t, "s:y", f("y"))

	assert.Equal(t, 1, counts[CategoryNumber], "one formatter per category")
	assert.Equal(t, 1, counts[CategoryString])
	assert.Equal(t, 1, counts[CategoryUndefined])
	assert.Equal(t, 0, counts[CategoryArray])
}

func TestNewStableDispatch_Pins(t *testing.T) {
	counts := map[Category]int{}
	f := NewStableDispatch("", countingRegistry(counts))

	assert.Equal(t, "u:", f(nil), "undefined does not pin")
	assert.Equal(t, "n:1", f(1))
	assert.Equal(t, "n:x", f("x"), "pinned to the number formatter")
	assert.Equal(t, "n:", f(nil))

	assert.Equal(t, 1, counts[CategoryNumber])
	assert.Equal(t, 0, counts[CategoryString])
}

func TestWithDispatch(t *testing.T) {
	reclassify := MustCompile("@(v,:3)", WithDispatch(DispatchReclassify))
	stable := MustCompile("@(v,:3)", WithDispatch(DispatchStable))

	for _, tmpl := range []*Template{reclassify, stable} {
		assert.Equal(t, "003", tmpl.Execute(map[string]any{"v": 3}))
		assert.Equal(t, "3.140", tmpl.Execute(map[string]any{"v": 3.14}))
	}

	assert.Equal(t, "abc", reclassify.Execute(map[string]any{"v": "abc"}))
	assert.Equal(t, "abc", stable.Execute(map[string]any{"v": "abc"}), "a non-numeric value falls back to its natural form")
	assert.Equal(t, "004", stable.Execute(map[string]any{"v": "4"}))
}

func TestDispatch_Concurrent(t *testing.T) {
	f := NewDispatch("[0,2]", BuiltinRegistry())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.Equal(t, "ab", f("abc"))
			} else {
				assert.Equal(t, "a,b", f([]string{"a", "b", "c"}))
			}
			assert.Equal(t, fmt.Sprint(i), f(i))
		}(i)
	}
	wg.Wait()
}
