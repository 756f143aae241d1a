package lift

import (
	"fmt"

	"github.com/denis-mludek/spacelift/arr"
)

// Range builds an array of ints.
//
//	Range(5)         // [0 1 2 3 4]
//	Range(1, 4)      // [1 2 3 4]
//	Range(0, 15, 5)  // [0 5 10 15]
//	Range(2, -1, -1) // [2 1 0 -1]
//
// With one argument the end is exclusive; with two or three it is inclusive
// and the sequence stops before overshooting it. Range panics with
// [ErrZeroStep] when step is 0.
func Range(start int, bounds ...int) *ArrayOps {
	var ints []int
	var err error
	switch len(bounds) {
	case 0:
		if start <= 0 {
			return &ArrayOps{items: []any{}}
		}
		ints, err = arr.Range(0, start-1, 1)
	case 1:
		ints, err = arr.Range(start, bounds[0], 1)
	default:
		ints, err = arr.Range(start, bounds[0], bounds[1])
	}
	if err != nil {
		panic(fmt.Errorf("%w: Range(%d, %v)", err, start, bounds))
	}
	items := make([]any, len(ints))
	for i, n := range ints {
		items[i] = n
	}
	return &ArrayOps{items: items}
}
