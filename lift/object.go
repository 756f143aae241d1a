package lift

import (
	"iter"

	"github.com/denis-mludek/spacelift/dict"
	"github.com/denis-mludek/spacelift/option"
)

// ObjectOps wraps an insertion-ordered string-keyed mapping.
//
// Setters clone the underlying *dict.Dict; the Dict held by an ObjectOps is
// never modified.
type ObjectOps struct {
	d *dict.Dict
}

// Kind returns [KindObject].
func (o *ObjectOps) Kind() Kind { return KindObject }

// Value returns the wrapped *dict.Dict.
func (o *ObjectOps) Value() any { return o.d }

// Dict returns the wrapped *dict.Dict; callers must not modify it.
func (o *ObjectOps) Dict() *dict.Dict { return o.d }

// Transform applies fn to the raw *dict.Dict and lifts the result.
func (o *ObjectOps) Transform(fn func(any) any) Wrapper { return Lift(fn(o.d)) }

// Call invokes a registered object operation.
func (o *ObjectOps) Call(name string, args ...any) (Wrapper, error) {
	return Call(o, name, args...)
}

func (o *ObjectOps) String() string { return o.d.String() }

// Len returns the number of keys.
func (o *ObjectOps) Len() int { return o.d.Len() }

// IsEmpty reports whether there are no keys.
func (o *ObjectOps) IsEmpty() bool { return o.d.Len() == 0 }

// Entries iterates over key/value pairs in insertion order.
func (o *ObjectOps) Entries() iter.Seq2[string, any] { return o.d.All() }

// Keys returns the keys, in order, as an array of strings.
func (o *ObjectOps) Keys() *ArrayOps {
	keys := o.d.Keys()
	items := make([]any, len(keys))
	for i, k := range keys {
		items[i] = k
	}
	return &ArrayOps{items: items}
}

// Values returns the values in key order.
func (o *ObjectOps) Values() *ArrayOps { return &ArrayOps{items: o.d.Values()} }

// Get returns the value under key, or None when missing or absent.
func (o *ObjectOps) Get(key string) option.Option { return option.FromOk(o.d.Get(key)) }

// GetPath returns the value at a dot-notation path, or None.
func (o *ObjectOps) GetPath(path string) option.Option { return option.FromOk(o.d.GetPath(path)) }

// Set returns a copy with value stored under key. A Wrapper value is
// unwrapped first.
func (o *ObjectOps) Set(key string, value any) *ObjectOps {
	return &ObjectOps{d: o.d.Clone().Set(key, normalize(value).element())}
}

// Remove returns a copy without key.
func (o *ObjectOps) Remove(key string) *ObjectOps {
	if !o.d.Has(key) {
		return o
	}
	return &ObjectOps{d: o.d.Clone().Delete(key)}
}

// MapValues replaces every value by fn(value, key), keeping key order.
func (o *ObjectOps) MapValues(fn func(any, string) any) *ObjectOps {
	out := dict.New()
	for k, v := range o.d.All() {
		out.Set(k, normalize(fn(v, k)).element())
	}
	return &ObjectOps{d: out}
}

// Filter keeps the entries for which fn(value, key) returns true.
func (o *ObjectOps) Filter(fn func(any, string) bool) *ObjectOps {
	out := dict.New()
	for k, v := range o.d.All() {
		if fn(v, k) {
			out.Set(k, v)
		}
	}
	return &ObjectOps{d: out}
}

// Dot flattens nested objects into dot-notation keys.
func (o *ObjectOps) Dot() *ObjectOps { return &ObjectOps{d: o.d.Dot()} }
