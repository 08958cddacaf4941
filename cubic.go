package bezier

import (
	"fmt"
	"log/slog"
	"math"
)

// CubicBez is a cubic Bézier curve. P0 and P3 are its anchors, P1 and P2 its
// control points.
type CubicBez[P Point[P]] struct {
	P0 P
	P1 P
	P2 P
	P3 P
}

func (c CubicBez[P]) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez[P]) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the Bernstein form
//
//	B(t) = P0(1-t)³ + 3·P1·t(1-t)² + 3·P2·t²(1-t) + P3·t³
func (c CubicBez[P]) Eval(t float64) P {
	mt := 1.0 - t
	t2 := t * t
	mt2 := mt * mt
	return c.P0.Mul(mt2 * mt).
		Add(c.P1.Mul(3.0 * t * mt2)).
		Add(c.P2.Mul(3.0 * t2 * mt)).
		Add(c.P3.Mul(t2 * t))
}

func (c CubicBez[P]) EvalChecked(t float64) (P, error) {
	if err := checkParam("CubicBez.Eval", t); err != nil {
		var zero P
		return zero, err
	}
	return c.Eval(t), nil
}

// Split splits the cubic at t using de Casteljau's algorithm.
//
// Evaluating the left curve at u equals evaluating c at t·u, and evaluating the
// right curve at u equals evaluating c at t + (1-t)·u. The curves share the
// point c.Eval(t).
func (c CubicBez[P]) Split(t float64) (CubicBez[P], CubicBez[P]) {
	q0 := c.P0.Lerp(c.P1, t)
	q1 := c.P1.Lerp(c.P2, t)
	q2 := c.P2.Lerp(c.P3, t)
	r0 := q0.Lerp(q1, t)
	r1 := q1.Lerp(q2, t)
	s := r0.Lerp(r1, t)
	return CubicBez[P]{c.P0, q0, r0, s}, CubicBez[P]{s, r1, q2, c.P3}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez[P]) Subdivide() (CubicBez[P], CubicBez[P]) {
	return c.Split(0.5)
}

// Subsegment returns the part of the curve between t0 and t1. If t0 > t1, the
// subsegment runs backwards.
func (c CubicBez[P]) Subsegment(t0, t1 float64) CubicBez[P] {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(d.Eval(t0).Mul(scale))
	p2 := p3.Sub(d.Eval(t1).Mul(scale))
	return CubicBez[P]{p0, p1, p2, p3}
}

func (c CubicBez[P]) Start() P {
	return c.P0
}

func (c CubicBez[P]) End() P {
	return c.P3
}

func (c CubicBez[P]) Degree() int { return 3 }

// Differentiate returns the derivative, a quadratic whose points are vectors.
func (c CubicBez[P]) Differentiate() QuadBez[P] {
	return QuadBez[P]{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}

func (c CubicBez[P]) Extrema() ([MaxExtrema]float64, int) {
	// up to 2 roots per axis
	var out [MaxExtrema]float64
	var outN int
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	for axis := range c.P0.Dims() {
		x0, x1, x2 := d0.Coord(axis), d1.Coord(axis), d2.Coord(axis)
		outN = quadraticExtrema(&out, outN, x0-2*x1+x2, 2*(x1-x0), x0)
	}
	return out, outN
}

// BoundingBox returns the smallest axis-aligned box that encloses the curve in
// the range [0, 1].
func (c CubicBez[P]) BoundingBox() Box[P] {
	return boundingBox[P](c)
}

// HullPerimeter returns the length of the control polygon, |P0P1| + |P1P2| +
// |P2P3|. It is an upper bound of the arc length.
func (c CubicBez[P]) HullPerimeter() float64 {
	return c.P1.Sub(c.P0).Hypot() + c.P2.Sub(c.P1).Hypot() + c.P3.Sub(c.P2).Hypot()
}

// Chord returns the distance between the anchors, |P0P3|. It is a lower bound
// of the arc length.
func (c CubicBez[P]) Chord() float64 {
	return c.P3.Sub(c.P0).Hypot()
}

// IsFlat reports whether the hull perimeter is at most threshold times the
// chord length.
//
// This is a heuristic for shape deviation, not an exact flatness bound.
// Thresholds close to 1 demand near-straightness.
func (c CubicBez[P]) IsFlat(threshold float64) bool {
	return c.HullPerimeter() <= threshold*c.Chord()
}

// Arclen estimates the arc length of the cubic by adaptive subdivision.
//
// Curves that are flat according to [CubicBez.IsFlat] contribute the average
// of their hull perimeter and chord. Other curves are halved and measured
// recursively, up to [DefaultMaxDepth] times. Use [CubicBez.ArclenOpt] to learn
// whether the estimate converged.
func (c CubicBez[P]) Arclen(threshold float64) float64 {
	l, _ := c.ArclenOpt(ArclenOptions{Threshold: threshold})
	return l
}

type arclenState struct {
	threshold float64
	maxDepth  int
	// Pieces that hit the depth limit without being flat, and the sum of
	// their hull-chord gaps.
	limitHits int
	limitGap  float64
	nonFinite bool
}

// converged reports whether the pieces measured at the depth limit are, taken
// together, within the error that the flatness threshold allows for the whole
// estimate l.
func (st *arclenState) converged(l float64) bool {
	if st.nonFinite || math.IsNaN(l) || math.IsInf(l, 0) {
		return false
	}
	return st.limitGap <= (st.threshold-1)*l
}

// ArclenOpt is like [CubicBez.Arclen] but with explicit options.
//
// When the maximum depth is reached, the flat estimate is used for the
// remaining piece regardless of the flatness test. If the combined hull-chord
// gap of such pieces exceeds what the threshold allows for the whole curve, or
// the curve has non-finite coordinates, the estimate is returned together with
// an error wrapping [ErrRecursionLimit].
func (c CubicBez[P]) ArclenOpt(opts ArclenOptions) (float64, error) {
	st := arclenState{
		threshold: opts.threshold(),
		maxDepth:  opts.maxDepth(),
	}
	l := c.arclen(&st, 0)
	if !st.converged(l) {
		Logger().Warn("arc length did not converge",
			slog.Int("maxDepth", st.maxDepth),
			slog.Int("limitHits", st.limitHits),
			slog.Float64("estimate", l))
		return l, fmt.Errorf("%w: %d pieces unconverged at depth %d",
			ErrRecursionLimit, st.limitHits, st.maxDepth)
	}
	return l, nil
}

func (c CubicBez[P]) arclen(st *arclenState, depth int) float64 {
	hull := c.HullPerimeter()
	chord := c.Chord()
	est := (hull + chord) * 0.5
	if hull <= st.threshold*chord {
		return est
	}
	if math.IsNaN(hull) || math.IsInf(hull, 0) {
		// Subdividing won't make this finite.
		st.nonFinite = true
		return est
	}
	if depth >= st.maxDepth {
		st.limitHits++
		st.limitGap += hull - chord
		return est
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(st, depth+1) + c1.arclen(st, depth+1)
}
