package bezier

// Line represents a line segment, the linear Bézier curve.
type Line[P Point[P]] struct {
	// The line's start point.
	P0 P
	// The line's end point.
	P1 P
}

// Length returns the length of the line.
func (l Line[P]) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line. It is exact, and only exists to
// mirror [CubicBez.Arclen].
func (l Line[P]) Arclen() float64 {
	return l.Length()
}

func (l Line[P]) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line[P]) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Eval evaluates B(t) = P0(1-t) + P1·t.
func (l Line[P]) Eval(t float64) P {
	return l.P0.Lerp(l.P1, t)
}

func (l Line[P]) EvalChecked(t float64) (P, error) {
	if err := checkParam("Line.Eval", t); err != nil {
		var zero P
		return zero, err
	}
	return l.Eval(t), nil
}

// Split splits the line at t. The left line covers [0, t] and the right line
// covers [t, 1] of the original.
func (l Line[P]) Split(t float64) (Line[P], Line[P]) {
	m := l.Eval(t)
	return Line[P]{l.P0, m}, Line[P]{m, l.P1}
}

func (l Line[P]) Subdivide() (Line[P], Line[P]) {
	return l.Split(0.5)
}

// Differentiate returns the constant derivative P1 - P0.
func (l Line[P]) Differentiate() P {
	return l.P1.Sub(l.P0)
}

func (l Line[P]) Start() P { return l.P0 }
func (l Line[P]) End() P   { return l.P1 }

func (l Line[P]) Degree() int { return 1 }

func (l Line[P]) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line[P]) BoundingBox() Box[P] {
	return NewBoxFromPoints(l.P0, l.P1)
}
