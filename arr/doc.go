// Package arr provides generic, bounds-safe slice primitives. Every helper
// returns a new slice and never writes to its input, which is what the lift
// array engine builds its immutable operations on.
//
// # Total functions
//
// Index-based helpers treat out-of-range positions as a normal outcome
// rather than an error:
//
//	arr.RemoveAt([]int{1, 2, 3}, 7)        // → [1 2 3], false
//	arr.UpdateAt([]int{1, 2, 3}, -1, inc)  // → [1 2 3], false
//	arr.Insert([]int{1, 2}, 99, 3)         // → [1 2 3] (index clamped)
//	arr.Take([]int{1, 2, 3}, 10)           // → [1 2 3]
//
// # Ranges
//
//	arr.Range(0, 15, 5)  // → [0 5 10 15], nil
//	arr.Range(2, -4, -1) // → [2 1 0 -1 -2 -3 -4], nil
package arr
