package bezier

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear[P Point[P]](t *testing.T, want, got P, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Errorf("got %v, want %v (distance %g > %g)", got, want, d, epsilon)
	}
}

// newRand returns a deterministic source so that failures are reproducible.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func randPt(r *rand.Rand) Point2 {
	return Pt(r.Float64()*20-10, r.Float64()*20-10)
}

func randPt3(r *rand.Rand) Point3 {
	return Pt3(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
}

func randCubic(r *rand.Rand) CubicBez[Point2] {
	return CubicBez[Point2]{randPt(r), randPt(r), randPt(r), randPt(r)}
}

func randCubic3(r *rand.Rand) CubicBez[Point3] {
	return CubicBez[Point3]{randPt3(r), randPt3(r), randPt3(r), randPt3(r)}
}

func randQuad(r *rand.Rand) QuadBez[Point2] {
	return QuadBez[Point2]{randPt(r), randPt(r), randPt(r)}
}
