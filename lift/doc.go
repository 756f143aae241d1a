// Package lift wraps raw values in fluent, immutable operations objects that
// match their runtime shape, and unwraps them back on demand.
//
// # Overview
//
//	out := lift.Of(5, 4, 1, 6, 2, 4, 3).
//	    Distinct().
//	    Sort(lift.SortOptions{Reverse: true}).
//	    Take(3).
//	    Value() // → []any{6, 5, 4}
//
// [Lift] classifies a value and returns the matching [Wrapper]:
//
//	[]any, other slices and arrays   → *ArrayOps
//	time.Time                        → *DateOps
//	string                           → *StringOps
//	*dict.Dict, string-keyed maps    → *ObjectOps
//	numbers                          → *NumberOps
//	bool                             → *BoolOps
//	an existing Wrapper              → returned unchanged
//
// Anything else is a programmer error: [Lift] panics with
// [ErrUnsupportedShape], [TryLift] returns it.
//
// # Re-lifting
//
// Callbacks passed to Map, FlatMap, Transform, Fold, UpdateAt and the object
// setters may return a raw value, an [option.Option] or another Wrapper.
// Wrappers are unwrapped before the result is stored; FlatMap and Flatten
// additionally splice sequences and treat Some as one element and None as
// none:
//
//	lift.Of(1, 2, 3).FlatMap(func(n any, _ int) any {
//	    return option.Of(n.(int) + 1)
//	}) // → [2 3 4]
//
// Operations whose result changes shape (Transform, Fold, FoldRight) return
// a Wrapper chosen by [Lift] on the result:
//
//	lift.Of("a", "b").Fold("", concat)  // → *StringOps("ab")
//	lift.Of(1, 2).Fold([]any{}, push)   // → *ArrayOps
//
// # Immutability
//
// No operation writes to the raw value it wraps. Each operation returns a new
// wrapper over a new container; out-of-range UpdateAt and RemoveAt return the
// receiver itself. Elements are shared, never copied, so Distinct and
// UpdateAt keep the references of untouched elements.
//
// # Extension
//
// Additional leaf operations can be attached per shape at runtime with
// [RegisterOp] and invoked through Wrapper.Call.
package lift

import "github.com/npillmayer/schuko/tracing"

// tracer returns the trace sink for the lift package.
func tracer() tracing.Trace {
	return tracing.Select("spacelift.lift")
}
