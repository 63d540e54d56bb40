package ssf

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// =============================================================================
// COMPILE BENCHMARKS
// =============================================================================

func BenchmarkCompile_Short(b *testing.B) {
	c := MustNew()
	source := "Hello @name, you have @count messages"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Compile(source)
	}
}

func BenchmarkCompile_LongForm(b *testing.B) {
	c := MustNew()
	source := "@(user.name,-20:[0,16]) | @n(user.balance,12:f2) | @d(user.joined,:2006-01-02)"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Compile(source)
	}
}

func BenchmarkCompile_Constant(b *testing.B) {
	c := MustNew()
	source := strings.Repeat("no placeholders here @@ ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Compile(source)
	}
}

func BenchmarkCompile_Repeated(b *testing.B) {
	c := MustNew()
	source := strings.Repeat("@a @(b,4:d3) ", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Compile(source)
	}
}

// =============================================================================
// EXECUTE BENCHMARKS
// =============================================================================

func BenchmarkExecute_Short(b *testing.B) {
	tmpl := MustCompile("Hello @name, you have @count messages")
	input := map[string]any{"name": "Alice", "count": 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tmpl.Execute(input)
	}
}

func BenchmarkExecute_Formatted(b *testing.B) {
	tmpl := MustCompile("@(name,-10) @(price,10:f2) @(qty,:d4) @d(when,:2006-01-02)")
	input := map[string]any{
		"name":  "widget",
		"price": 12.5,
		"qty":   7,
		"when":  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tmpl.Execute(input)
	}
}

func BenchmarkExecute_Array(b *testing.B) {
	tmpl := MustCompile("@(items,:[0,10]; )")
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	input := map[string]any{"items": items}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tmpl.Execute(input)
	}
}

func BenchmarkExecute_Struct(b *testing.B) {
	type address struct {
		City string `json:"city"`
	}
	type user struct {
		Name    string   `json:"name"`
		Address *address `json:"address"`
	}
	tmpl := MustCompile("@name lives in @address.city")
	input := user{Name: "Bob", Address: &address{City: "Oslo"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tmpl.Execute(input)
	}
}

func BenchmarkExecute_Constant(b *testing.B) {
	tmpl := MustCompile(strings.Repeat("constant text ", 20))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tmpl.Execute(nil)
	}
}

// =============================================================================
// FORMAT BENCHMARKS
// =============================================================================

func BenchmarkFormatArgs(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FormatArgs("@0 has @(1,-6:d3) items", "cart", 7)
	}
}

func BenchmarkCachedCompiler_Format(b *testing.B) {
	cc := NewCachedCompiler(MustNew(), DefaultTemplateCacheConfig())
	input := map[string]any{"a": 1, "b": "two"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cc.Format("@a and @b", input)
	}
}

func BenchmarkFmtSprintf_Baseline(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%s has %-6s items", "cart", fmt.Sprintf("%03d", 7))
	}
}

// =============================================================================
// CONCURRENCY BENCHMARKS
// =============================================================================

func BenchmarkExecute_Parallel(b *testing.B) {
	tmpl := MustCompile("@(v,:d4) @(v,:x)")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = tmpl.Execute(map[string]any{"v": i})
			i++
		}
	})
}

func BenchmarkCachedCompiler_Parallel(b *testing.B) {
	cc := NewCachedCompiler(MustNew(), DefaultTemplateCacheConfig())
	sources := make([]string, 16)
	for i := range sources {
		sources[i] = fmt.Sprintf("item %d: @", i)
	}

	var mu sync.Mutex
	next := 0

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		mu.Lock()
		source := sources[next%len(sources)]
		next++
		mu.Unlock()
		for pb.Next() {
			_ = cc.Format(source, 1)
		}
	})
}
