package option

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Option is the interface satisfied by Some and [None].
//
// The interface is closed: only this package can construct Options, so a
// Some never wraps an absent value.
type Option interface {
	// IsDefined reports whether the Option holds a value.
	IsDefined() bool

	// IsEmpty reports whether the Option is None.
	IsEmpty() bool

	// Get returns the held value, or nil for None. It never panics.
	Get() any

	// GetOrElse returns the held value, or fallback for None.
	GetOrElse(fallback any) any

	// OrElse returns the receiver when it is Some, otherwise alt.
	OrElse(alt Option) Option

	// Map applies fn to the held value and wraps the result with [Of].
	Map(fn func(any) any) Option

	// FlatMap applies an Option-returning fn to the held value.
	FlatMap(fn func(any) Option) Option

	// Filter keeps the value when fn returns true, otherwise yields None.
	Filter(fn func(any) bool) Option

	// ToSlice returns a one-element slice for Some and an empty slice for None.
	ToSlice() []any

	String() string

	sealed()
}

// None is the shared empty Option.
var None Option = none{}

// Of returns Some(v), or [None] when v is absent.
func Of(v any) Option {
	if IsAbsent(v) {
		return None
	}
	return some{value: v}
}

// FromOk builds an Option from the common (value, ok) return pair.
//
//	v, ok := m["key"]
//	opt := option.FromOk(v, ok)
func FromOk(v any, ok bool) Option {
	if !ok {
		return None
	}
	return Of(v)
}

// IsAbsent reports whether v counts as a missing value: the untyped nil or
// a nil pointer, interface, func or channel. Nil slices and maps are empty
// containers, not absent values.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Some
// ─────────────────────────────────────────────────────────────────────────────

type some struct {
	value any
}

func (s some) IsDefined() bool              { return true }
func (s some) IsEmpty() bool                { return false }
func (s some) Get() any                     { return s.value }
func (s some) GetOrElse(any) any            { return s.value }
func (s some) OrElse(Option) Option         { return s }
func (s some) Map(fn func(any) any) Option  { return Of(fn(s.value)) }
func (s some) ToSlice() []any               { return []any{s.value} }
func (s some) String() string               { return fmt.Sprintf("Some(%v)", s.value) }
func (s some) MarshalJSON() ([]byte, error) { return json.Marshal(s.value) }
func (s some) sealed()                      {}

func (s some) FlatMap(fn func(any) Option) Option {
	out := fn(s.value)
	if out == nil {
		return None
	}
	return out
}

func (s some) Filter(fn func(any) bool) Option {
	if fn(s.value) {
		return s
	}
	return None
}

// ─────────────────────────────────────────────────────────────────────────────
// None
// ─────────────────────────────────────────────────────────────────────────────

type none struct{}

func (none) IsDefined() bool              { return false }
func (none) IsEmpty() bool                { return true }
func (none) Get() any                     { return nil }
func (none) GetOrElse(fallback any) any   { return fallback }
func (none) Map(func(any) any) Option     { return None }
func (none) Filter(func(any) bool) Option { return None }
func (none) ToSlice() []any               { return []any{} }
func (none) String() string               { return "None" }
func (none) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
func (none) sealed()                      {}

func (none) FlatMap(func(any) Option) Option { return None }

func (none) OrElse(alt Option) Option {
	if alt == nil {
		return None
	}
	return alt
}
