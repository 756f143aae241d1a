package dict

import "errors"

// Sentinel errors returned by Dict path and decoding operations.
var (
	// ErrInvalidPath is returned when a dot-notation path is empty or has an
	// empty segment (e.g. "a..b").
	ErrInvalidPath = errors.New("dict: invalid path")

	// ErrNotAnObject is returned when a document decoded into a Dict is not
	// a JSON object or YAML mapping.
	ErrNotAnObject = errors.New("dict: document is not an object")

	// ErrAliasExpansion is returned when a YAML alias refers to an anchor
	// that contains it, or when aliases expand a document excessively.
	ErrAliasExpansion = errors.New("dict: yaml alias expansion")
)
