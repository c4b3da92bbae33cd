// Package symmetric: sentinel error set. All public operations return these
// sentinels (optionally wrapped with call-site context via %w) and tests
// match them with errors.Is.
package symmetric

import "errors"

var (
	// ErrBadSize is returned by New when the requested side length is negative.
	ErrBadSize = errors.New("symmetric: side length must be non-negative")

	// ErrSizeOverflow is returned by New when n·(n+1)/2 does not fit in int.
	ErrSizeOverflow = errors.New("symmetric: packed length overflows int")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	// Public indexers (At/Set) return this, wrapped with coordinates.
	ErrOutOfRange = errors.New("symmetric: index out of range")
)
