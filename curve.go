package bezier

import (
	"log/slog"
	"math"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 6 to support cubic Béziers in three dimensions, which have up to two
// extrema per axis.
const MaxExtrema = 6

const (
	// DefaultFlatness is the flatness threshold used when [ArclenOptions]
	// doesn't specify one. It is suitable for general-purpose use, such as 2D
	// graphics.
	DefaultFlatness = 1.0001

	// DefaultMaxDepth is the maximum subdivision depth of arc length
	// estimation when [ArclenOptions] doesn't specify one.
	DefaultMaxDepth = 20
)

// ParametricCurve describes a Bézier curve parametrized by a scalar.
type ParametricCurve[P Point[P]] interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0,
	// 1], but any t is accepted, which extrapolates the curve.
	Eval(t float64) P
	// EvalChecked is like Eval but returns a [*ParamError] if t is outside
	// of [0, 1].
	EvalChecked(t float64) (P, error)
	Start() P
	End() P
	// Degree returns the degree of the curve's polynomial.
	Degree() int
}

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the parameters at which the derivative vanishes along
	// at least one axis.
	//
	// Only extrema within the interior of the curve count. The extrema are
	// reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// ArclenOptions specifies optional settings for arc length estimation. The
// zero value is ready to use.
type ArclenOptions struct {
	// Threshold is the flatness threshold below which a curve is treated as a
	// straight line, see [CubicBez.IsFlat]. Values ≤ 1 select
	// [DefaultFlatness].
	//
	// Values close to 1 demand near-straightness and thus more subdivision;
	// larger values tolerate more curvature.
	Threshold float64

	// MaxDepth is the maximum number of times a curve may be halved. Values
	// ≤ 0 select [DefaultMaxDepth].
	MaxDepth int
}

func (opts ArclenOptions) threshold() float64 {
	if opts.Threshold <= 1 || math.IsNaN(opts.Threshold) {
		return DefaultFlatness
	}
	return opts.Threshold
}

func (opts ArclenOptions) maxDepth() int {
	if opts.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return opts.MaxDepth
}

// boundingBox returns the smallest (axis-aligned) box that encloses the curve
// in the range [0, 1].
func boundingBox[P Point[P]](c interface {
	Extremer
	ParametricCurve[P]
}) Box[P] {
	bbox := NewBoxFromPoints(c.Start(), c.End())
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// insertSorted inserts t into the sorted prefix out[:n] and returns the new
// length.
func insertSorted(out *[MaxExtrema]float64, n int, t float64) int {
	i := n
	for i > 0 && out[i-1] > t {
		out[i] = out[i-1]
		i--
	}
	out[i] = t
	return n + 1
}

// quadraticExtrema appends to out the roots in (0, 1) of
//
//	a t² + b t + c = 0
//
// where the coefficients describe one axis of a Bézier's derivative.
func quadraticExtrema(out *[MaxExtrema]float64, n int, a, b, c float64) int {
	if a == 0 || b*b-4*a*c <= 0 {
		// Linear derivatives and repeated or complex roots are expected and
		// handled by SolveQuadratic.
		Logger().Debug("degenerate extremum equation",
			slog.Float64("a", a), slog.Float64("b", b), slog.Float64("c", c))
	}
	roots, rootsN := SolveQuadratic(c, b, a)
	for _, t := range roots[:rootsN] {
		if t > 0.0 && t < 1.0 {
			n = insertSorted(out, n, t)
		}
	}
	return n
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if c0 == 0 && c1 == 0 && c2 == 0 {
		return [2]float64{0}, 1
	}
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}
