// Package dict provides an insertion-ordered, string-keyed mapping used as
// the "plain object" shape of the lift engine, with dot-notation path access
// and order-preserving JSON and YAML codecs.
//
// # Ordering
//
// Go maps carry no insertion order, so [Dict] keeps its keys in a slice next
// to the value map. Overwriting an existing key keeps its original position:
//
//	d := dict.New(dict.Entry{Key: "b", Value: 1}).Set("a", 2).Set("b", 3)
//	d.Keys() // → ["b", "a"]
//
// # Dot-notation access
//
// Nested Dicts (and nested map[string]any values) can be read and written
// with dot-separated paths, mirroring Laravel's Arr::get / Arr::set:
//
//	d.GetPath("user.address.city")          // → "London", true
//	d2, _ := d.SetPath("user.address.zip", "EC1")
//	flat := d.Dot()                          // → {"user.address.city": "London", ...}
//
// # Codecs
//
// [Dict] implements json.Marshaler/Unmarshaler and yaml.Marshaler/Unmarshaler.
// [DecodeJSON] and [DecodeYAML] turn whole documents into []any, *Dict and
// scalar values while keeping every object's key order.
package dict

import "github.com/npillmayer/schuko/tracing"

// tracer returns the trace sink for the dict package.
func tracer() tracing.Trace {
	return tracing.Select("spacelift.dict")
}
