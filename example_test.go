package bezier_test

import (
	"fmt"

	"honnef.co/go/bezier"
)

func ExampleSpline() {
	s := bezier.NewSpline(bezier.Pt(0, 0), bezier.Pt(1, 1), bezier.Pt(2, 0))
	fmt.Println(s.SegmentCount())

	// The middle anchor sits halfway through the parameter range.
	p, err := s.PositionAt(0.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	fmt.Println(s.BSplinePoints())

	// Moving an anchor recomputes all control points.
	if err := s.MoveAnchor(1, bezier.Pt(0, 1)); err != nil {
		panic(err)
	}
	p, _ = s.PositionAt(0.5)
	fmt.Println(p)

	// Output:
	// 2
	// (1, 1)
	// [(0, 0) (1, 1.5) (2, 0)]
	// (1, 2)
}

func ExampleSpline_PositionAt_outOfRange() {
	s := bezier.NewSpline(bezier.Pt(0, 0), bezier.Pt(1, 1))
	_, err := s.PositionAt(1.5)
	fmt.Println(err)
	// Output:
	// bezier: PositionAt: parameter 1.5 out of range [0, 1]
}

func ExampleCubicBez_BoundingBox() {
	c := bezier.CubicBez[bezier.Point2]{
		bezier.Pt(0, 0),
		bezier.Pt(0, 1),
		bezier.Pt(1, 1),
		bezier.Pt(1, 0),
	}
	fmt.Println(c.BoundingBox())
	// Output:
	// {(0, 0) (1, 0.75)}
}

func ExampleCubicBez_ArclenOpt() {
	// A quarter of the unit circle.
	const k = 0.5522847498
	c := bezier.CubicBez[bezier.Point2]{
		bezier.Pt(1, 0),
		bezier.Pt(1, k),
		bezier.Pt(k, 1),
		bezier.Pt(0, 1),
	}
	l, err := c.ArclenOpt(bezier.ArclenOptions{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", l)
	// Output:
	// 1.5710
}

func ExampleSpline_Split() {
	s := bezier.NewSpline(
		bezier.Pt3(0, 0, 0),
		bezier.Pt3(1, 2, 0),
		bezier.Pt3(2, 0, 1),
		bezier.Pt3(3, 1, 1),
	)
	left, right, err := s.Split(0.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(left), len(right))
	fmt.Println(left[len(left)-1].P3 == right[0].P0)
	// Output:
	// 2 2
	// true
}
