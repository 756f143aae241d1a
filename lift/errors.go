package lift

import (
	"errors"

	"github.com/denis-mludek/spacelift/arr"
)

// Sentinel errors. The fluent methods panic with these (wrapped with
// details); [TryLift] and [Call] return them.
var (
	// ErrUnsupportedShape is reported when a value matches none of the
	// shapes the dispatch engine knows.
	ErrUnsupportedShape = errors.New("lift: unsupported value shape")

	// ErrIncomparable is reported by Sort when two sort keys have kinds that
	// cannot be ordered against each other.
	ErrIncomparable = errors.New("lift: sort keys are not comparable")

	// ErrZeroStep is reported by [Range] when step is 0.
	ErrZeroStep = arr.ErrZeroStep

	// ErrOpNotFound is returned by [Call] for an unregistered operation.
	ErrOpNotFound = errors.New("lift: operation not found")
)
