// Package ssf compiles template strings with '@' placeholders into
// reusable formatting functions.
//
//	tmpl := ssf.MustCompile("@(name,-8) owes @(amount,10:f2)")
//	tmpl.Execute(map[string]any{"name": "Ann", "amount": 12.5})
//	// "Ann      owes      12.50"
//
// # Placeholder Syntax
//
// Placeholders are tried in this order at each '@':
//
//	@@                    a literal '@'
//	@T(path,align:sub)    long form with a type tag, T one of u n s d a o
//	@(path,align:sub)     long form, type chosen from the value
//	@name.key.0           short form, a dotted path
//	@                     the whole input
//
// In the long form every part is optional, so @(), @(,4) and @(:x) are all
// valid. The path may not contain ',', ':', '(' or ')'. The alignment is a
// signed width: positive right-aligns, negative left-aligns, zero or
// unparsable means none. The sub-format is passed to the formatter and runs
// to the closing ')'. It may contain ':' and ',' but not '('. An
// unterminated long form is not a placeholder: the '@' then stands alone
// and the rest is literal text.
//
// Paths index maps by key, slices, arrays and strings by position, and
// structs by field name or json tag. A missing step makes the value
// undefined, which renders empty.
//
// # Formatting
//
// Every value falls into one category: undefined, number, string, date,
// array or object. Numeric strings are numbers. Each category has a
// formatter factory that turns a sub-format into a formatter:
//
//	@(n,:x4)      hex, zero padded             10       -> 000a
//	@(n,:d3)      rounded integer              -5.6     -> -006
//	@(n,:f2)      fixed point                  3.14159  -> 3.14
//	@(n,:e1)      exponential                  31415.9  -> 3.1e+4
//	@(s,:[1,-1])  string slice                 "hello"  -> ell
//	@(a,:[0,2]|)  array slice and joiner       [1 2 3]  -> 1|2
//
// Replace factories per compiler with WithFormatter or WithRegistry, or
// process-wide with SetDefaults and SetDefaultFactory. A template captures
// the registry when it is compiled; later changes to the defaults do not
// affect it.
//
// # Errors
//
// Templates and data never cause errors. Only options can be invalid, for
// example a trigger character the grammar reserves; those errors are
// github.com/itsatony/go-cuserr validation errors.
package ssf
