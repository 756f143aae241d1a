package lift

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/denis-mludek/spacelift/arr"
	"github.com/denis-mludek/spacelift/dict"
	"github.com/denis-mludek/spacelift/option"
)

// ArrayOps wraps an ordered sequence of elements.
//
// Callbacks receive (item, index) where the index is meaningful, and just
// the item for predicates and key functions, following the same split as
// the rest of the package.
type ArrayOps struct {
	items []any
}

// ─────────────────────────────────────────────────────────────────────────────
// Base contract
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns [KindArray].
func (a *ArrayOps) Kind() Kind { return KindArray }

// Value returns the wrapped []any. For a value lifted from a []any this is
// the very same slice; callers must not modify it.
func (a *ArrayOps) Value() any { return a.items }

// Transform applies fn to the raw slice and lifts the result.
func (a *ArrayOps) Transform(fn func(any) any) Wrapper { return Lift(fn(a.items)) }

// Call invokes a registered array operation.
func (a *ArrayOps) Call(name string, args ...any) (Wrapper, error) {
	return Call(a, name, args...)
}

// String returns a JSON representation of the elements.
func (a *ArrayOps) String() string {
	b, err := json.Marshal(a.items)
	if err != nil {
		return fmt.Sprintf("%v", a.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & iteration
// ─────────────────────────────────────────────────────────────────────────────

// Items returns a copy of the elements.
func (a *ArrayOps) Items() []any {
	out := make([]any, len(a.items))
	copy(out, a.items)
	return out
}

// Len returns the number of elements.
func (a *ArrayOps) Len() int { return len(a.items) }

// IsEmpty reports whether there are no elements.
func (a *ArrayOps) IsEmpty() bool { return len(a.items) == 0 }

// All returns an iterator over the elements in order. It can be ranged over
// any number of times.
func (a *ArrayOps) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, item := range a.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Indexed returns an iterator over (index, element) pairs.
func (a *ArrayOps) Indexed() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, item := range a.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// First returns the first element, or None for an empty array.
func (a *ArrayOps) First() option.Option { return a.Get(0) }

// Last returns the last element, or None for an empty array.
func (a *ArrayOps) Last() option.Option { return a.Get(len(a.items) - 1) }

// Get returns the element at index, or None when index is out of range.
func (a *ArrayOps) Get(index int) option.Option {
	if index < 0 || index >= len(a.items) {
		return option.None
	}
	return option.Of(a.items[index])
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying fn, or None.
func (a *ArrayOps) Find(fn func(any) bool) option.Option {
	for _, item := range a.items {
		if fn(item) {
			return option.Of(item)
		}
	}
	return option.None
}

// FindIndex returns the index of the first element satisfying fn as an
// Option of int, or None.
func (a *ArrayOps) FindIndex(fn func(any) bool) option.Option {
	for i, item := range a.items {
		if fn(item) {
			return option.Of(i)
		}
	}
	return option.None
}

// Some reports whether at least one element satisfies fn.
func (a *ArrayOps) Some(fn func(any) bool) bool {
	return a.FindIndex(fn).IsDefined()
}

// Every reports whether all elements satisfy fn. It is true for an empty
// array.
func (a *ArrayOps) Every(fn func(any) bool) bool {
	return !a.Some(func(item any) bool { return !fn(item) })
}

// Count returns the number of elements satisfying fn, wrapped so the chain
// can continue; Value() yields an int.
func (a *ArrayOps) Count(fn func(any) bool) *NumberOps {
	n := 0
	for _, item := range a.items {
		if fn(item) {
			n++
		}
	}
	return &NumberOps{n: n}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map replaces every element by fn(item, index). A Wrapper result is
// unwrapped; an Option result is stored as is.
func (a *ArrayOps) Map(fn func(any, int) any) *ArrayOps {
	return &ArrayOps{items: arr.Map(a.items, func(item any, i int) any {
		return normalize(fn(item, i)).element()
	})}
}

// FlatMap maps every element with fn and splices the results in order:
// sequences (raw or wrapped) contribute their elements, Some its value,
// None nothing, and any other value itself.
func (a *ArrayOps) FlatMap(fn func(any, int) any) *ArrayOps {
	out := make([]any, 0, len(a.items))
	for i, item := range a.items {
		out = append(out, normalize(fn(item, i)).spread()...)
	}
	return &ArrayOps{items: out}
}

// Flatten removes one level of nesting: sequence elements are spliced, Some
// contributes its value and None nothing. Other elements stay in place.
func (a *ArrayOps) Flatten() *ArrayOps {
	return a.FlatMap(func(item any, _ int) any { return item })
}

// Filter keeps the elements for which fn(item, index) returns true.
func (a *ArrayOps) Filter(fn func(any, int) bool) *ArrayOps {
	return &ArrayOps{items: arr.Filter(a.items, fn)}
}

// Reject drops the elements for which fn(item, index) returns true.
func (a *ArrayOps) Reject(fn func(any, int) bool) *ArrayOps {
	return &ArrayOps{items: arr.Reject(a.items, fn)}
}

// Compact removes every falsy element (see [IsFalsy]); numeric zero is
// removed too.
func (a *ArrayOps) Compact() *ArrayOps {
	return a.Reject(func(item any, _ int) bool { return IsFalsy(item) })
}

// Distinct keeps the first element for every key, in original order. The
// key is the element itself unless key[0] is given. Keys of different
// dynamic types never coalesce, so "7" and 7 are both kept. Keys that cannot
// be map keys (slices, maps) are compared structurally, and all NaN keys of
// one float type count as the same key.
func (a *ArrayOps) Distinct(key ...func(any) any) *ArrayOps {
	keyFn := func(item any) any { return item }
	if len(key) > 0 && key[0] != nil {
		keyFn = key[0]
	}
	return &ArrayOps{items: arr.UniqueBy(a.items, func(item any) any {
		return distinctKey(keyFn(item))
	})}
}

// GroupBy groups elements by the stringified result of fn (see
// [KeyString]). Keys appear in the order their first element appears; each
// group keeps original element order.
func (a *ArrayOps) GroupBy(fn func(any) any) *ObjectOps {
	groups := dict.New()
	for _, item := range a.items {
		k := KeyString(normalize(fn(item)).element())
		prev, _ := groups.Get(k)
		bucket, _ := prev.([]any)
		groups.Set(k, append(bucket, item))
	}
	return &ObjectOps{d: groups}
}

// ToSet returns an object mapping every stringified element to true.
// Distinct elements with the same stringification merge.
func (a *ArrayOps) ToSet() *ObjectOps {
	set := dict.New()
	for _, item := range a.items {
		set.Set(KeyString(item), true)
	}
	return &ObjectOps{d: set}
}

// Fold reduces the elements from left to right, starting from seed. Wrapper
// seeds and step results are unwrapped; the final value is lifted, so a
// slice seed yields an *ArrayOps and a string seed a *StringOps.
func (a *ArrayOps) Fold(seed any, fn func(acc, item any) any) Wrapper {
	acc := normalize(seed).element()
	for _, item := range a.items {
		acc = normalize(fn(acc, item)).element()
	}
	return Lift(acc)
}

// FoldRight is [ArrayOps.Fold] from right to left.
func (a *ArrayOps) FoldRight(seed any, fn func(acc, item any) any) Wrapper {
	acc := normalize(seed).element()
	for i := len(a.items) - 1; i >= 0; i-- {
		acc = normalize(fn(acc, a.items[i])).element()
	}
	return Lift(acc)
}

// Join stringifies the elements and joins them with sep. Absent elements
// become empty strings.
func (a *ArrayOps) Join(sep string) *StringOps {
	parts := arr.Map(a.items, func(item any, _ int) string {
		if option.IsAbsent(item) {
			return ""
		}
		return KeyString(item)
	})
	return &StringOps{s: strings.Join(parts, sep)}
}

// Reverse returns the elements in reverse order.
func (a *ArrayOps) Reverse() *ArrayOps {
	return &ArrayOps{items: arr.Reverse(a.items)}
}

// Chunk splits the elements into consecutive []any groups of size.
// A size <= 0 yields an empty array.
func (a *ArrayOps) Chunk(size int) *ArrayOps {
	return &ArrayOps{items: arr.Map(arr.Chunk(a.items, size), func(c []any, _ int) any { return c })}
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove / Update
// ─────────────────────────────────────────────────────────────────────────────

// Append adds item at the end.
func (a *ArrayOps) Append(item any) *ArrayOps {
	return &ArrayOps{items: arr.Append(a.items, item)}
}

// AppendAll adds every element of the sequence items at the end.
func (a *ArrayOps) AppendAll(items any) *ArrayOps {
	return &ArrayOps{items: arr.Append(a.items, mustItems(items)...)}
}

// Prepend adds item at the front.
func (a *ArrayOps) Prepend(item any) *ArrayOps {
	return &ArrayOps{items: arr.Prepend(a.items, item)}
}

// Insert places item before position index. index is clamped to
// [0, Len()].
func (a *ArrayOps) Insert(index int, item any) *ArrayOps {
	return &ArrayOps{items: arr.Insert(a.items, index, item)}
}

// InsertAll places the elements of the sequence items before position
// index, clamped to [0, Len()].
func (a *ArrayOps) InsertAll(index int, items any) *ArrayOps {
	return &ArrayOps{items: arr.Insert(a.items, index, mustItems(items)...)}
}

// UpdateAt replaces the element at index by fn(element), unwrapping a
// Wrapper result. Out-of-range indices are a no-op and return a itself.
func (a *ArrayOps) UpdateAt(index int, fn func(any) any) *ArrayOps {
	out, ok := arr.UpdateAt(a.items, index, func(item any) any {
		return normalize(fn(item)).element()
	})
	if !ok {
		return a
	}
	return &ArrayOps{items: out}
}

// RemoveAt removes the element at index. Out-of-range indices are a no-op
// and return a itself.
func (a *ArrayOps) RemoveAt(index int) *ArrayOps {
	out, ok := arr.RemoveAt(a.items, index)
	if !ok {
		return a
	}
	return &ArrayOps{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take keeps the first n elements, n clamped to [0, Len()].
func (a *ArrayOps) Take(n int) *ArrayOps { return &ArrayOps{items: arr.Take(a.items, n)} }

// TakeRight keeps the last n elements, n clamped to [0, Len()].
func (a *ArrayOps) TakeRight(n int) *ArrayOps { return &ArrayOps{items: arr.TakeRight(a.items, n)} }

// Drop removes the first n elements, n clamped to [0, Len()].
func (a *ArrayOps) Drop(n int) *ArrayOps { return &ArrayOps{items: arr.Drop(a.items, n)} }

// DropRight removes the last n elements, n clamped to [0, Len()].
func (a *ArrayOps) DropRight(n int) *ArrayOps { return &ArrayOps{items: arr.DropRight(a.items, n)} }
