package dict

import (
	"iter"
	"slices"
)

// Entry is a single key/value pair, used to build a [Dict] in order.
type Entry struct {
	Key   string
	Value any
}

// Dict is a string-keyed mapping that remembers insertion order.
//
// Set and Delete mutate the receiver, the same way a Go map would. Code that
// must not alias a caller's Dict works on a [Dict.Clone].
//
// A nil *Dict behaves like an empty Dict for every read operation and for
// Delete. Set needs a non-nil Dict, like assigning to a nil map.
type Dict struct {
	keys   []string
	values map[string]any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Dict from entries, in order. A repeated key overwrites the
// earlier value but keeps the earlier position.
func New(entries ...Entry) *Dict {
	d := &Dict{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]any, len(entries)),
	}
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// FromMap creates a Dict from a plain map. Keys are ordered lexically since
// the map carries no insertion order. Nested maps are left as they are.
func FromMap(m map[string]any) *Dict {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	d := &Dict{keys: keys, values: make(map[string]any, len(m))}
	for k, v := range m {
		d.values[k] = v
	}
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of keys.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns a copy of the keys in insertion order.
func (d *Dict) Keys() []string {
	if d == nil {
		return []string{}
	}
	return slices.Clone(d.keys)
}

// Values returns the values in key order.
func (d *Dict) Values() []any {
	out := make([]any, 0, d.Len())
	for _, v := range d.All() {
		out = append(out, v)
	}
	return out
}

// Get returns the value stored under key together with a presence flag.
func (d *Dict) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// All returns an iterator over key/value pairs in insertion order. The
// iterator can be ranged over any number of times.
func (d *Dict) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// ToMap returns a shallow copy as a plain map (order is lost).
func (d *Dict) ToMap() map[string]any {
	out := make(map[string]any, d.Len())
	for k, v := range d.All() {
		out[k] = v
	}
	return out
}

// String returns the JSON representation of d.
func (d *Dict) String() string {
	b, err := d.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key and returns d for chaining. New keys are
// appended; existing keys keep their position. Set panics on a nil *Dict.
func (d *Dict) Set(key string, value any) *Dict {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Delete removes key (if present) and returns d for chaining. Deleting from
// a nil *Dict is a no-op.
func (d *Dict) Delete(key string) *Dict {
	if d == nil {
		return nil
	}
	if _, ok := d.values[key]; !ok {
		return d
	}
	delete(d.values, key)
	if i := slices.Index(d.keys, key); i >= 0 {
		d.keys = slices.Delete(d.keys, i, i+1)
	}
	return d
}

// Clone returns a shallow copy of d. Values are shared, keys and the backing
// map are not.
func (d *Dict) Clone() *Dict {
	out := &Dict{
		keys:   make([]string, 0, d.Len()),
		values: make(map[string]any, d.Len()),
	}
	for k, v := range d.All() {
		out.keys = append(out.keys, k)
		out.values[k] = v
	}
	return out
}
