package bezier

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(0.0, 0.0, 0.0)), []float64{0.0})
	// Constant, non-zero: no solution.
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 0.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(-2.0, 1.0, 1.0)), []float64{-2.0, 1.0})
}

func TestInsertSorted(t *testing.T) {
	var out [MaxExtrema]float64
	n := 0
	for _, v := range []float64{0.5, 0.25, 0.75, 0.1, 0.9, 0.3} {
		n = insertSorted(&out, n, v)
	}
	diff(t, []float64{0.1, 0.25, 0.3, 0.5, 0.75, 0.9}, out[:n])
}

func TestQuadraticExtremaDegenerate(t *testing.T) {
	var out [MaxExtrema]float64
	// Linear derivative 2t - 1.
	if n := quadraticExtrema(&out, 0, 0, 2, -1); n != 1 || out[0] != 0.5 {
		t.Errorf("got %v, want [0.5]", out[:n])
	}
	// Constant derivative.
	if n := quadraticExtrema(&out, 0, 0, 0, 3); n != 0 {
		t.Errorf("got %v, want none", out[:n])
	}
	// Complex roots.
	if n := quadraticExtrema(&out, 0, 1, 0, 1); n != 0 {
		t.Errorf("got %v, want none", out[:n])
	}
	// Roots at -1 and 2 are outside of the curve.
	if n := quadraticExtrema(&out, 0, 1, -1, -2); n != 0 {
		t.Errorf("got %v, want none", out[:n])
	}
}

func TestArclenOptionsDefaults(t *testing.T) {
	for _, opts := range []ArclenOptions{
		{},
		{Threshold: 1},
		{Threshold: 0.5},
		{Threshold: math.NaN()},
	} {
		if got := opts.threshold(); got != DefaultFlatness {
			t.Errorf("%+v: got threshold %v, want %v", opts, got, DefaultFlatness)
		}
	}
	if got := (ArclenOptions{Threshold: 1.5}).threshold(); got != 1.5 {
		t.Errorf("got threshold %v, want 1.5", got)
	}
	if got := (ArclenOptions{MaxDepth: -3}).maxDepth(); got != DefaultMaxDepth {
		t.Errorf("got max depth %d, want %d", got, DefaultMaxDepth)
	}
	if got := (ArclenOptions{MaxDepth: 4}).maxDepth(); got != 4 {
		t.Errorf("got max depth %d, want 4", got)
	}
}

// The curves must satisfy the generic interfaces for both point types.
var (
	_ ParametricCurve[Point2] = Line[Point2]{}
	_ ParametricCurve[Point2] = QuadBez[Point2]{}
	_ ParametricCurve[Point2] = CubicBez[Point2]{}
	_ ParametricCurve[Point3] = Line[Point3]{}
	_ ParametricCurve[Point3] = QuadBez[Point3]{}
	_ ParametricCurve[Point3] = CubicBez[Point3]{}
	_ Extremer                = Line[Point2]{}
	_ Extremer                = QuadBez[Point3]{}
	_ Extremer                = CubicBez[Point3]{}
)

func TestCurveBoundary(t *testing.T) {
	r := newRand()
	for range 100 {
		c := randCubic(r)
		q := randQuad(r)
		l := Line[Point2]{randPt(r), randPt(r)}
		c3 := randCubic3(r)

		curves := []ParametricCurve[Point2]{c, q, l}
		for _, curve := range curves {
			if got := curve.Eval(0); got != curve.Start() {
				t.Errorf("%v: Eval(0) = %v, want %v", curve, got, curve.Start())
			}
			if got := curve.Eval(1); got != curve.End() {
				t.Errorf("%v: Eval(1) = %v, want %v", curve, got, curve.End())
			}
		}
		if got := c3.Eval(1); got != c3.P3 {
			t.Errorf("%v: Eval(1) = %v, want %v", c3, got, c3.P3)
		}
	}
}

func TestCurveEvalChecked(t *testing.T) {
	c := CubicBez[Point2]{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	for _, tt := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		if _, err := c.EvalChecked(tt); err == nil {
			t.Errorf("EvalChecked(%v) succeeded, want error", tt)
		}
		if _, err := c.Differentiate().EvalChecked(tt); err == nil {
			t.Errorf("QuadBez.EvalChecked(%v) succeeded, want error", tt)
		}
		if _, err := (Line[Point2]{c.P0, c.P3}).EvalChecked(tt); err == nil {
			t.Errorf("Line.EvalChecked(%v) succeeded, want error", tt)
		}
	}
	for _, tt := range []float64{0, 0.3, 1} {
		got, err := c.EvalChecked(tt)
		if err != nil {
			t.Fatalf("EvalChecked(%v): %v", tt, err)
		}
		diff(t, c.Eval(tt), got)
	}
}
