package bezier

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned, wrapped in an [*IndexError] or a
	// [*ParamError], when an anchor index or a curve parameter is outside of
	// its valid range.
	ErrOutOfRange = errors.New("bezier: out of range")

	// ErrRecursionLimit is returned by [CubicBez.ArclenOpt] when the maximum
	// subdivision depth was reached before the length estimate converged.
	ErrRecursionLimit = errors.New("bezier: arc length recursion limit exceeded")

	// ErrEmptySpline is returned by spline queries that need at least one
	// anchor.
	ErrEmptySpline = errors.New("bezier: spline has no anchors")
)

// IndexError reports an anchor or segment index outside of [0, Len).
type IndexError struct {
	// Op is the operation that failed, such as "SetAnchor".
	Op    string
	Index int
	// Len is the exclusive upper bound of valid indices.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bezier: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// ParamError reports a curve parameter outside of [0, 1].
type ParamError struct {
	Op string
	T  float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("bezier: %s: parameter %g out of range [0, 1]", e.Op, e.T)
}

func (e *ParamError) Unwrap() error { return ErrOutOfRange }

func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}

// checkParam also rejects NaN, which fails both comparisons.
func checkParam(op string, t float64) error {
	if !(t >= 0 && t <= 1) {
		return &ParamError{Op: op, T: t}
	}
	return nil
}
