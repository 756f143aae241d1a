package arr

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// UniqueBy keeps the first element for every key returned by fn, in
// original order. K may be an interface type; keys must then hold hashable
// dynamic values.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// ─────────────────────────────────────────────────────────────────────────────
// Insertion / removal
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a new slice with values after items.
func Append[T any](items []T, values ...T) []T {
	out := make([]T, len(items)+len(values))
	copy(out, items)
	copy(out[len(items):], values)
	return out
}

// Prepend returns a new slice with values in front of items.
func Prepend[T any](items []T, values ...T) []T {
	out := make([]T, len(values)+len(items))
	copy(out, values)
	copy(out[len(values):], items)
	return out
}

// Insert returns a new slice with values inserted before position index.
// index is clamped to [0, len(items)], so a negative index inserts at the
// front and an index past the end appends.
func Insert[T any](items []T, index int, values ...T) []T {
	index = clamp(index, len(items))
	out := make([]T, 0, len(items)+len(values))
	out = append(out, items[:index]...)
	out = append(out, values...)
	out = append(out, items[index:]...)
	return out
}

// RemoveAt returns a copy of items without the element at index.
// When index is out of range items is returned as is, with false.
func RemoveAt[T any](items []T, index int) ([]T, bool) {
	if index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, true
}

// UpdateAt returns a copy of items with the element at index replaced by
// fn(element). Every other element is copied unchanged.
// When index is out of range items is returned as is, with false.
func UpdateAt[T any](items []T, index int, fn func(T) T) ([]T, bool) {
	if index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[index] = fn(items[index])
	return out, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a copy of the first n elements, n clamped to [0, len(items)].
func Take[T any](items []T, n int) []T {
	return clone(items[:clamp(n, len(items))])
}

// TakeRight returns a copy of the last n elements, n clamped to [0, len(items)].
func TakeRight[T any](items []T, n int) []T {
	return clone(items[len(items)-clamp(n, len(items)):])
}

// Drop returns a copy without the first n elements, n clamped to [0, len(items)].
func Drop[T any](items []T, n int) []T {
	return clone(items[clamp(n, len(items)):])
}

// DropRight returns a copy without the last n elements, n clamped to
// [0, len(items)].
func DropRight[T any](items []T, n int) []T {
	return clone(items[:len(items)-clamp(n, len(items))])
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the inclusive arithmetic sequence start, start+step, …
// stopping before a value would overshoot end in the direction of step.
// A step pointing away from end yields an empty slice.
// Returns [ErrZeroStep] when step is 0.
func Range(start, end, step int) ([]int, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	out := make([]int, 0)
	if step > 0 {
		for v := start; v <= end; v += step {
			out = append(out, v)
			// the distance to end fits a uint even when end-v overflows int
			if uint(end)-uint(v) < uint(step) {
				break
			}
		}
		return out, nil
	}
	for v := start; v >= end; v += step {
		out = append(out, v)
		if uint(v)-uint(end) < uint(-step) {
			break
		}
	}
	return out, nil
}

func clamp(n, length int) int {
	return max(0, min(n, length))
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
