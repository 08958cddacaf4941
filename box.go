package bezier

// Box is an axis-aligned bounding box. Min holds the smallest coordinate on
// every axis and Max the largest.
type Box[P Point[P]] struct {
	Min P
	Max P
}

// NewBoxFromPoints returns the smallest box containing p0 and p1.
func NewBoxFromPoints[P Point[P]](p0, p1 P) Box[P] {
	lo, hi := p0, p1
	for axis := range p0.Dims() {
		a, b := p0.Coord(axis), p1.Coord(axis)
		lo = lo.WithCoord(axis, min(a, b))
		hi = hi.WithCoord(axis, max(a, b))
	}
	return Box[P]{Min: lo, Max: hi}
}

// UnionPoint computes the union with one point.
//
// This includes boxes with zero extent, so a succession of UnionPoint calls
// starting from a single point's box yields the bounding box of all points.
func (b Box[P]) UnionPoint(pt P) Box[P] {
	for axis := range pt.Dims() {
		v := pt.Coord(axis)
		b.Min = b.Min.WithCoord(axis, min(b.Min.Coord(axis), v))
		b.Max = b.Max.WithCoord(axis, max(b.Max.Coord(axis), v))
	}
	return b
}

// Union returns the smallest box enclosing b and o.
func (b Box[P]) Union(o Box[P]) Box[P] {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Contains reports whether pt lies inside the box. Points on the boundary are
// inside.
func (b Box[P]) Contains(pt P) bool {
	for axis := range pt.Dims() {
		v := pt.Coord(axis)
		if v < b.Min.Coord(axis) || v > b.Max.Coord(axis) {
			return false
		}
	}
	return true
}

// Size returns the extent of the box along each axis.
func (b Box[P]) Size() P {
	return b.Max.Sub(b.Min)
}

func (b Box[P]) Center() P {
	return b.Min.Lerp(b.Max, 0.5)
}
