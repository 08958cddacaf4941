package bezier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var _ Point[Point3] = Point3{}

// Point3 is a point, or vector, in three dimensions.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// FromR3 converts a gonum vector to a point.
func FromR3(v r3.Vec) Point3 {
	return Point3(v)
}

// R3 converts the point to a gonum vector.
func (pt Point3) R3() r3.Vec {
	return r3.Vec(pt)
}

func (pt Point3) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point3) Dims() int { return 3 }

func (pt Point3) Coord(axis int) float64 {
	switch axis {
	case 0:
		return pt.X
	case 1:
		return pt.Y
	case 2:
		return pt.Z
	default:
		panic(fmt.Sprintf("axis %d out of range for Point3", axis))
	}
}

func (pt Point3) WithCoord(axis int, v float64) Point3 {
	switch axis {
	case 0:
		pt.X = v
	case 1:
		pt.Y = v
	case 2:
		pt.Z = v
	default:
		panic(fmt.Sprintf("axis %d out of range for Point3", axis))
	}
	return pt
}

func (pt Point3) Add(o Point3) Point3 {
	return Point3(r3.Add(r3.Vec(pt), r3.Vec(o)))
}

func (pt Point3) Sub(o Point3) Point3 {
	return Point3(r3.Sub(r3.Vec(pt), r3.Vec(o)))
}

func (pt Point3) Mul(f float64) Point3 {
	return Point3(r3.Scale(f, r3.Vec(pt)))
}

// Negate returns a new point with all signs flipped.
func (pt Point3) Negate() Point3 {
	return Point3{-pt.X, -pt.Y, -pt.Z}
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	mt := 1.0 - t
	return Point3{
		X: mt*pt.X + t*o.X,
		Y: mt*pt.Y + t*o.Y,
		Z: mt*pt.Z + t*o.Z,
	}
}

// Dot returns the dot product of pt and o.
func (pt Point3) Dot(o Point3) float64 {
	return r3.Dot(r3.Vec(pt), r3.Vec(o))
}

// Cross returns the cross product of pt and o.
func (pt Point3) Cross(o Point3) Point3 {
	return Point3(r3.Cross(r3.Vec(pt), r3.Vec(o)))
}

// Hypot returns the magnitude of the vector.
func (pt Point3) Hypot() float64 {
	return r3.Norm(r3.Vec(pt))
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
