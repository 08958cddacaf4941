package bezier

// QuadBez is a quadratic Bézier curve.
type QuadBez[P Point[P]] struct {
	P0 P
	P1 P
	P2 P
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez[P]) Raise() CubicBez[P] {
	return CubicBez[P]{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez[P]) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez[P]) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Arclen estimates the arclength of the quadratic Bézier segment by adaptive
// subdivision of its exact cubic representation. See [CubicBez.Arclen].
func (q QuadBez[P]) Arclen(threshold float64) float64 {
	return q.Raise().Arclen(threshold)
}

// ArclenOpt is like [QuadBez.Arclen] with explicit options. See
// [CubicBez.ArclenOpt].
func (q QuadBez[P]) ArclenOpt(opts ArclenOptions) (float64, error) {
	return q.Raise().ArclenOpt(opts)
}

// Eval evaluates B(t) = P0(1-t)² + 2·P1·t(1-t) + P2·t².
func (q QuadBez[P]) Eval(t float64) P {
	mt := 1.0 - t
	return q.P0.Mul(mt * mt).
		Add(q.P1.Mul(2.0 * t * mt)).
		Add(q.P2.Mul(t * t))
}

func (q QuadBez[P]) EvalChecked(t float64) (P, error) {
	if err := checkParam("QuadBez.Eval", t); err != nil {
		var zero P
		return zero, err
	}
	return q.Eval(t), nil
}

// Split splits the curve at t using de Casteljau's algorithm. Evaluating the
// left curve at u equals evaluating q at t·u, and evaluating the right curve at
// u equals evaluating q at t + (1-t)·u.
func (q QuadBez[P]) Split(t float64) (QuadBez[P], QuadBez[P]) {
	q0 := q.P0.Lerp(q.P1, t)
	q1 := q.P1.Lerp(q.P2, t)
	s := q0.Lerp(q1, t)
	return QuadBez[P]{q.P0, q0, s}, QuadBez[P]{s, q1, q.P2}
}

// Subdivide subdivides the curve into halves.
func (q QuadBez[P]) Subdivide() (QuadBez[P], QuadBez[P]) {
	return q.Split(0.5)
}

// Differentiate returns the derivative, a line whose points are vectors.
func (q QuadBez[P]) Differentiate() Line[P] {
	return Line[P]{
		q.P1.Sub(q.P0).Mul(2),
		q.P2.Sub(q.P1).Mul(2),
	}
}

func (q QuadBez[P]) Start() P {
	return q.P0
}

func (q QuadBez[P]) End() P {
	return q.P2
}

func (q QuadBez[P]) Degree() int { return 2 }

func (q QuadBez[P]) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.
	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	for axis := range q.P0.Dims() {
		if c := dd.Coord(axis); c != 0.0 {
			t := -d0.Coord(axis) / c
			if t > 0.0 && t < 1.0 {
				outN = insertSorted(&out, outN, t)
			}
		}
	}
	return out, outN
}

func (q QuadBez[P]) BoundingBox() Box[P] {
	return boundingBox[P](q)
}
