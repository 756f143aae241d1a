package lift

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StringOps wraps a string.
type StringOps struct {
	s string
}

// Kind returns [KindString].
func (t *StringOps) Kind() Kind { return KindString }

// Value returns the wrapped string.
func (t *StringOps) Value() any { return t.s }

// Transform applies fn to the raw string and lifts the result.
func (t *StringOps) Transform(fn func(any) any) Wrapper { return Lift(fn(t.s)) }

// Call invokes a registered string operation.
func (t *StringOps) Call(name string, args ...any) (Wrapper, error) {
	return Call(t, name, args...)
}

// String returns the wrapped string unchanged.
func (t *StringOps) String() string { return t.s }

// Len returns the number of runes.
func (t *StringOps) Len() int { return utf8.RuneCountInString(t.s) }

// Upper returns the string in upper case, using Unicode case mapping.
func (t *StringOps) Upper() *StringOps { return &StringOps{s: cases.Upper(language.Und).String(t.s)} }

// Lower returns the string in lower case, using Unicode case mapping.
func (t *StringOps) Lower() *StringOps { return &StringOps{s: cases.Lower(language.Und).String(t.s)} }

// Title upper-cases the first letter of every word.
func (t *StringOps) Title() *StringOps { return &StringOps{s: cases.Title(language.Und).String(t.s)} }

// Trim removes leading and trailing white space.
func (t *StringOps) Trim() *StringOps { return &StringOps{s: strings.TrimSpace(t.s)} }

// Contains reports whether sub is within the string.
func (t *StringOps) Contains(sub string) bool { return strings.Contains(t.s, sub) }

// Split slices the string around sep into an array of strings.
func (t *StringOps) Split(sep string) *ArrayOps {
	parts := strings.Split(t.s, sep)
	items := make([]any, len(parts))
	for i, p := range parts {
		items[i] = p
	}
	return &ArrayOps{items: items}
}

// Chars returns the runes of the string as an array of one-rune strings.
func (t *StringOps) Chars() *ArrayOps {
	items := make([]any, 0, len(t.s))
	for _, r := range t.s {
		items = append(items, string(r))
	}
	return &ArrayOps{items: items}
}
