package dict

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// Paths are dot-separated key sequences. Traversal descends through nested
// *Dict values and, for documents built by hand, nested map[string]any.
//
//	d.GetPath("user.address.city")  → "London", true
//	d.SetPath("user.age", 30)       → copy of d with user.age set
//	d.HasPath("user.name")          → true
//	d.Dot()                         → {"user.name": "Alice", ...}
// ─────────────────────────────────────────────────────────────────────────────

// GetPath retrieves the value at a dot-notation path.
// Returns nil and false when any segment is missing.
func (d *Dict) GetPath(path string) (any, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}
	var current any = d
	for _, seg := range segments {
		val, ok := lookup(current, seg)
		if !ok {
			return nil, false
		}
		current = val
	}
	return current, true
}

// HasPath reports whether the dot-notation path exists in d.
func (d *Dict) HasPath(path string) bool {
	_, ok := d.GetPath(path)
	return ok
}

// SetPath returns a copy of d with value written at the dot-notation path.
// Every Dict along the path is cloned; intermediate Dicts are created where a
// segment is missing or holds a non-object value. d itself is not modified.
func (d *Dict) SetPath(path string, value any) (*Dict, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	return setPath(d, segments, value), nil
}

func setPath(d *Dict, segments []string, value any) *Dict {
	out := d.Clone()
	seg := segments[0]
	if len(segments) == 1 {
		out.Set(seg, value)
		return out
	}
	var nested *Dict
	switch v := out.values[seg].(type) {
	case *Dict:
		nested = v
	case map[string]any:
		nested = FromMap(v)
	default:
		nested = New()
	}
	out.Set(seg, setPath(nested, segments[1:], value))
	return out
}

// ForgetPath returns a copy of d with the value at the dot-notation path
// removed. Intermediate Dicts are not cleaned up. Missing paths yield an
// unchanged copy.
func (d *Dict) ForgetPath(path string) *Dict {
	segments, err := splitPath(path)
	if err != nil {
		return d.Clone()
	}
	return forgetPath(d, segments)
}

func forgetPath(d *Dict, segments []string) *Dict {
	out := d.Clone()
	seg := segments[0]
	if len(segments) == 1 {
		out.Delete(seg)
		return out
	}
	switch v := out.values[seg].(type) {
	case *Dict:
		out.Set(seg, forgetPath(v, segments[1:]))
	case map[string]any:
		out.Set(seg, forgetPath(FromMap(v), segments[1:]))
	}
	return out
}

// Dot flattens nested Dicts into a single-level Dict with dot-notation keys,
// preserving traversal order.
//
//	New(Entry{"a", New(Entry{"b", 1})}).Dot()
//	// → {"a.b": 1}
func (d *Dict) Dot() *Dict {
	out := New()
	dotFlatten("", d, out)
	return out
}

func dotFlatten(prefix string, d *Dict, out *Dict) {
	for k, v := range d.All() {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch nested := v.(type) {
		case *Dict:
			dotFlatten(key, nested, out)
		case map[string]any:
			dotFlatten(key, FromMap(nested), out)
		default:
			out.Set(key, v)
		}
	}
}

// Undot expands a flat dot-notation Dict into nested Dicts.
// Returns [ErrInvalidPath] when a key has an empty segment.
//
//	Undot(New(Entry{"a.b", 1}, Entry{"a.c", 2}))
//	// → {"a": {"b": 1, "c": 2}}
func Undot(flat *Dict) (*Dict, error) {
	out := New()
	for key, val := range flat.All() {
		segments, err := splitPath(key)
		if err != nil {
			return nil, err
		}
		undotInto(out, segments, val)
	}
	return out, nil
}

// undotInto writes in place; out is owned by Undot.
func undotInto(out *Dict, segments []string, value any) {
	seg := segments[0]
	if len(segments) == 1 {
		out.Set(seg, value)
		return
	}
	nested, ok := out.values[seg].(*Dict)
	if !ok {
		nested = New()
		out.Set(seg, nested)
	}
	undotInto(nested, segments[1:], value)
}

func lookup(container any, key string) (any, bool) {
	switch c := container.(type) {
	case *Dict:
		return c.Get(key)
	case map[string]any:
		v, ok := c[key]
		return v, ok
	}
	return nil, false
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			tracer().Debugf("rejecting path %q", path)
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return segments, nil
}
