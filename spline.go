package bezier

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Spline is a piecewise cubic Bézier curve that interpolates an ordered
// sequence of anchor points with C2 continuity: first and second derivatives
// match wherever two segments meet. The control points are computed
// internally; the second derivative is zero at both ends (a natural spline).
//
// The zero value is an empty spline ready to use. A Spline must not be
// mutated concurrently with any other use; concurrent reads are safe.
type Spline[P Point[P]] struct {
	// points holds 3(n-1)+1 points for n ≥ 2 anchors. Anchor i is at
	// points[3i], and the control points of segment i are at points[3i+1]
	// and points[3i+2].
	points []P
	// bPoints holds the n B-spline points from the last tridiagonal solve;
	// c holds the solve's forward-elimination coefficients.
	bPoints []P
	c       []float64
}

// NewSpline returns a spline through the given anchors.
func NewSpline[P Point[P]](anchors ...P) *Spline[P] {
	s := &Spline[P]{}
	s.reset(anchors)
	return s
}

// reset replaces all anchors and recomputes the control points.
func (s *Spline[P]) reset(anchors []P) {
	n := len(anchors)
	if n == 0 {
		s.points, s.bPoints, s.c = nil, nil, nil
		return
	}
	points := make([]P, 0, 3*(n-1)+1)
	var zero P
	for i, a := range anchors {
		if i > 0 {
			points = append(points, zero, zero)
		}
		points = append(points, a)
	}
	s.points = points
	s.bPoints = make([]P, n)
	s.c = make([]float64, n)
	s.updateControlPoints()
}

// updateControlPoints sets the control points of all segments so that the
// spline is C2 continuous.
//
// The B-spline points B satisfy B[i-1] + 4B[i] + B[i+1] = 6S[i] at every
// interior anchor S[i], with B[0] = S[0] and B[n-1] = S[n-1]. The tridiagonal
// system is solved with the Thomas algorithm.
func (s *Spline[P]) updateControlPoints() {
	n := s.AnchorCount()
	Logger().Debug("updating control points", slog.Int("anchors", n))
	switch {
	case n == 0:
		return
	case n == 1:
		s.bPoints[0] = s.points[0]
		return
	case n == 2:
		// A single straight segment.
		s.points[1] = s.points[0]
		s.points[2] = s.points[3]
		s.bPoints[0] = s.points[0]
		s.bPoints[1] = s.points[3]
		return
	}

	last := n - 1
	s.bPoints[0] = s.points[0]
	s.bPoints[last] = s.points[3*last]

	// Forward elimination. c[0] = 0 and bPoints[0] = S[0] make the first row
	// come out as c[1] = 1/4, B[1] = (6S[1] - S[0]) / 4.
	s.c[0] = 0
	for i := 1; i < last; i++ {
		s.c[i] = 1.0 / (4.0 - s.c[i-1])
		rhs := s.points[3*i].Mul(6).Sub(s.bPoints[i-1])
		if i == last-1 {
			rhs = rhs.Sub(s.bPoints[last])
		}
		s.bPoints[i] = rhs.Mul(s.c[i])
	}

	// Back substitution.
	for i := last - 2; i > 0; i-- {
		s.bPoints[i] = s.bPoints[i].Sub(s.bPoints[i+1].Mul(s.c[i]))
	}

	for j := range last {
		b0, b1 := s.bPoints[j], s.bPoints[j+1]
		s.points[3*j+1] = b0.Mul(2.0 / 3.0).Add(b1.Mul(1.0 / 3.0))
		s.points[3*j+2] = b0.Mul(1.0 / 3.0).Add(b1.Mul(2.0 / 3.0))
	}
}

// AnchorCount returns the number of anchor points.
func (s *Spline[P]) AnchorCount() int {
	return len(s.bPoints)
}

// SegmentCount returns the number of cubic segments, which is one less than
// the number of anchors (or zero).
func (s *Spline[P]) SegmentCount() int {
	return max(s.AnchorCount()-1, 0)
}

// Anchor returns the anchor at index i.
func (s *Spline[P]) Anchor(i int) (P, error) {
	if err := checkIndex("Anchor", i, s.AnchorCount()); err != nil {
		var zero P
		return zero, err
	}
	return s.points[3*i], nil
}

// Anchors returns a copy of all anchors.
func (s *Spline[P]) Anchors() []P {
	out := make([]P, s.AnchorCount())
	for i := range out {
		out[i] = s.points[3*i]
	}
	return out
}

// SetAnchor moves the anchor at index i to pt.
func (s *Spline[P]) SetAnchor(i int, pt P) error {
	if err := checkIndex("SetAnchor", i, s.AnchorCount()); err != nil {
		return err
	}
	s.points[3*i] = pt
	s.updateControlPoints()
	return nil
}

// MoveAnchor translates the anchor at index i by offset.
func (s *Spline[P]) MoveAnchor(i int, offset P) error {
	if err := checkIndex("MoveAnchor", i, s.AnchorCount()); err != nil {
		return err
	}
	s.points[3*i] = s.points[3*i].Add(offset)
	s.updateControlPoints()
	return nil
}

// InsertAnchor inserts an anchor so that it ends up at index i. Valid indices
// are 0 through AnchorCount, inclusive.
func (s *Spline[P]) InsertAnchor(i int, pt P) error {
	if err := checkIndex("InsertAnchor", i, s.AnchorCount()+1); err != nil {
		return err
	}
	s.reset(slices.Insert(s.Anchors(), i, pt))
	return nil
}

// AddAnchor appends an anchor to the end of the spline.
func (s *Spline[P]) AddAnchor(pt P) {
	s.reset(append(s.Anchors(), pt))
}

// RemoveAnchor removes the anchor at index i.
func (s *Spline[P]) RemoveAnchor(i int) error {
	if err := checkIndex("RemoveAnchor", i, s.AnchorCount()); err != nil {
		return err
	}
	s.reset(slices.Delete(s.Anchors(), i, i+1))
	return nil
}

// Clear removes all anchors.
func (s *Spline[P]) Clear() {
	s.reset(nil)
}

// BSplinePoints returns a copy of the B-spline points computed by the last
// control point solve, one per anchor. They are useful for drawing the
// spline's B-spline control polygon.
func (s *Spline[P]) BSplinePoints() []P {
	return slices.Clone(s.bPoints)
}

// ControlPoints returns a copy of the full point sequence: anchor 0, two
// control points, anchor 1, and so on.
func (s *Spline[P]) ControlPoints() []P {
	return slices.Clone(s.points)
}

func (s *Spline[P]) segment(i int) CubicBez[P] {
	return CubicBez[P]{s.points[3*i], s.points[3*i+1], s.points[3*i+2], s.points[3*i+3]}
}

// Segment returns the cubic Bézier joining anchors i and i+1.
func (s *Spline[P]) Segment(i int) (CubicBez[P], error) {
	if err := checkIndex("Segment", i, s.SegmentCount()); err != nil {
		return CubicBez[P]{}, err
	}
	return s.segment(i), nil
}

// Segments returns an iterator over the spline's segments, in order.
func (s *Spline[P]) Segments() iter.Seq[CubicBez[P]] {
	return func(yield func(CubicBez[P]) bool) {
		for i := range s.SegmentCount() {
			if !yield(s.segment(i)) {
				return
			}
		}
	}
}

// locate maps the global parameter t ∈ [0, 1] to a segment index and a local
// parameter. t = 1 maps to the end of the last segment. The spline must have
// at least two anchors.
func (s *Spline[P]) locate(t float64) (int, float64) {
	m := s.SegmentCount()
	tm := t * float64(m)
	i := int(tm)
	if i >= m {
		return m - 1, 1
	}
	return i, tm - float64(i)
}

// PositionAt evaluates the spline at t ∈ [0, 1]. Every segment covers an equal
// share of the parameter range, so PositionAt(k/(n-1)) is anchor k.
func (s *Spline[P]) PositionAt(t float64) (P, error) {
	var zero P
	if err := checkParam("PositionAt", t); err != nil {
		return zero, err
	}
	switch s.AnchorCount() {
	case 0:
		return zero, ErrEmptySpline
	case 1:
		return s.points[0], nil
	}
	i, u := s.locate(t)
	if u == 1 {
		return s.points[3*i+3], nil
	}
	return s.segment(i).Eval(u), nil
}

// Length returns the arc length of the whole spline. An empty spline has
// length 0.
func (s *Spline[P]) Length(opts ArclenOptions) (float64, error) {
	var total float64
	for i := range s.SegmentCount() {
		l, err := s.segment(i).ArclenOpt(opts)
		if err != nil {
			return total + l, fmt.Errorf("bezier: segment %d: %w", i, err)
		}
		total += l
	}
	return total, nil
}

// LengthBetween returns the arc length of the spline between the parameters
// t0 and t1, which must be in [0, 1]. Their order doesn't matter.
func (s *Spline[P]) LengthBetween(t0, t1 float64, opts ArclenOptions) (float64, error) {
	if err := checkParam("LengthBetween", t0); err != nil {
		return 0, err
	}
	if err := checkParam("LengthBetween", t1); err != nil {
		return 0, err
	}
	if s.SegmentCount() == 0 || t0 == t1 {
		return 0, nil
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	i0, u0 := s.locate(t0)
	i1, u1 := s.locate(t1)
	var pieces []CubicBez[P]
	if i0 == i1 {
		pieces = append(pieces, s.segment(i0).Subsegment(u0, u1))
	} else {
		pieces = append(pieces, s.segment(i0).Subsegment(u0, 1))
		for i := i0 + 1; i < i1; i++ {
			pieces = append(pieces, s.segment(i))
		}
		pieces = append(pieces, s.segment(i1).Subsegment(0, u1))
	}

	var total float64
	for _, c := range pieces {
		l, err := c.ArclenOpt(opts)
		total += l
		if err != nil {
			return total, fmt.Errorf("bezier: LengthBetween: %w", err)
		}
	}
	return total, nil
}

// Split splits the spline at t ∈ [0, 1] into the segments before and after
// the point PositionAt(t). The halves reproduce the spline exactly; in general,
// they aren't C2 splines through their own anchors, which is why Split returns
// Bézier segments rather than splines.
//
// If t falls on an anchor, the split happens between segments and no segment
// is cut. Either half may be empty.
func (s *Spline[P]) Split(t float64) (left, right []CubicBez[P], err error) {
	if err := checkParam("Split", t); err != nil {
		return nil, nil, err
	}
	if s.AnchorCount() == 0 {
		return nil, nil, ErrEmptySpline
	}
	segs := slices.Collect(s.Segments())
	if len(segs) == 0 {
		return nil, nil, nil
	}
	i, u := s.locate(t)
	switch u {
	case 0:
		return segs[:i:i], segs[i:], nil
	case 1:
		return segs[: i+1 : i+1], segs[i+1:], nil
	}
	l, r := segs[i].Split(u)
	left = append(slices.Clone(segs[:i]), l)
	right = append([]CubicBez[P]{r}, segs[i+1:]...)
	return left, right, nil
}

// BoundingBox returns the smallest axis-aligned box enclosing the spline.
func (s *Spline[P]) BoundingBox() (Box[P], error) {
	if s.AnchorCount() == 0 {
		return Box[P]{}, ErrEmptySpline
	}
	bbox := NewBoxFromPoints(s.points[0], s.points[0])
	for c := range s.Segments() {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox, nil
}
