package bezier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point describes the coordinate types that curves and splines are generic
// over. It is implemented by [Point2] and [Point3].
//
// A point doubles as a vector: derivatives of curves are expressed in the same
// type as their control points.
type Point[P any] interface {
	fmt.Stringer

	// Add returns the component-wise sum of the point and o.
	Add(o P) P
	// Sub returns the component-wise difference of the point and o.
	Sub(o P) P
	// Mul scales every coordinate by f.
	Mul(f float64) P
	// Lerp linearly interpolates between the point and o. Implementations
	// must return the receiver exactly for t = 0 and o exactly for t = 1.
	Lerp(o P, t float64) P
	// Dot returns the dot product of the point and o.
	Dot(o P) float64
	// Hypot returns the euclidean magnitude.
	Hypot() float64
	// Dims returns the number of coordinates.
	Dims() int
	// Coord returns the coordinate along the given axis, which must be in
	// [0, Dims()).
	Coord(axis int) float64
	// WithCoord returns a copy of the point with the coordinate along the
	// given axis replaced by v.
	WithCoord(axis int, v float64) P
	// IsInf reports whether any coordinate is infinite.
	IsInf() bool
	// IsNaN reports whether any coordinate is NaN.
	IsNaN() bool
}

var _ Point[Point2] = Point2{}

// Point2 is a point, or vector, in two dimensions.
type Point2 struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// FromR2 converts a gonum vector to a point.
func FromR2(v r2.Vec) Point2 {
	return Point2(v)
}

// R2 converts the point to a gonum vector.
func (pt Point2) R2() r2.Vec {
	return r2.Vec(pt)
}

func (pt Point2) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point2) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point2) Dims() int { return 2 }

func (pt Point2) Coord(axis int) float64 {
	switch axis {
	case 0:
		return pt.X
	case 1:
		return pt.Y
	default:
		panic(fmt.Sprintf("axis %d out of range for Point2", axis))
	}
}

func (pt Point2) WithCoord(axis int, v float64) Point2 {
	switch axis {
	case 0:
		pt.X = v
	case 1:
		pt.Y = v
	default:
		panic(fmt.Sprintf("axis %d out of range for Point2", axis))
	}
	return pt
}

// Add adds two points and returns the resulting point.
func (pt Point2) Add(o Point2) Point2 {
	return Point2{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point2) Sub(o Point2) Point2 {
	return Point2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

func (pt Point2) Mul(f float64) Point2 {
	return Point2{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

func (pt Point2) Div(f float64) Point2 {
	return Point2{
		X: pt.X / f,
		Y: pt.Y / f,
	}
}

// Negate returns a new point with the signs of x and y flipped.
func (pt Point2) Negate() Point2 {
	return Point2{
		X: -pt.X,
		Y: -pt.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point2) Lerp(o Point2, t float64) Point2 {
	// (1-t)·pt + t·o reproduces both endpoints exactly, pt + t·(o-pt) does not.
	mt := 1.0 - t
	return Point2{
		X: mt*pt.X + t*o.X,
		Y: mt*pt.Y + t*o.Y,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point2) Midpoint(o Point2) Point2 {
	return Point2{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Dot returns the dot product of pt and o.
func (pt Point2) Dot(o Point2) float64 {
	return pt.X*o.X + pt.Y*o.Y
}

// Cross returns the cross product of pt and o.
func (pt Point2) Cross(o Point2) float64 {
	return r2.Cross(r2.Vec(pt), r2.Vec(o))
}

// Hypot returns the magnitude of the vector.
func (pt Point2) Hypot() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Point2.Hypot].
func (pt Point2) Hypot2() float64 {
	return pt.Dot(pt)
}

// Distance returns the euclidean distance between two points.
func (pt Point2) Distance(o Point2) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point2) DistanceSquared(o Point2) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point2) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point2) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
