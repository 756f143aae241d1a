package arr

import "errors"

// ErrZeroStep is returned by [Range] when step is 0.
var ErrZeroStep = errors.New("arr: range step must not be 0")
