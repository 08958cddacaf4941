// Package bezier provides Bézier curves of degree one to three and C2
// continuous cubic splines, generic over the dimension of their points.
//
// # Points
//
// Curves and splines are parametrized by a point type that implements
// [Point]. This package includes [Point2] for the plane and [Point3] for
// space. Points double as vectors; the derivative of a [CubicBez] is a
// [QuadBez] of the same point type whose points are to be read as vectors.
//
// # Curves
//
// [Line], [QuadBez], and [CubicBez] implement [ParametricCurve] and
// [Extremer]. They can be evaluated at any t, split with de Casteljau's
// algorithm, differentiated, and bounded by a [Box]. Evaluation at t = 0 and
// t = 1 returns the curve's end points exactly.
//
// Cubic Béziers additionally support a hull-based flatness test
// ([CubicBez.IsFlat]) and arc length estimation by adaptive subdivision
// ([CubicBez.Arclen] and [CubicBez.ArclenOpt]).
//
// # Splines
//
// [Spline] interpolates an ordered list of anchor points with one cubic
// Bézier per pair of neighboring anchors. Its control points are the
// solution of a tridiagonal system, recomputed whenever the anchors change,
// so that first and second derivatives are continuous at every interior
// anchor and the second derivative vanishes at both ends.
//
// The global parameter of a spline is split evenly between its segments:
// with n anchors, segment i covers t ∈ [i/(n-1), (i+1)/(n-1)].
//
// # Errors and logging
//
// Out-of-range anchor indices and parameters are reported as [*IndexError]
// and [*ParamError], both of which match [ErrOutOfRange] under [errors.Is].
// The package is silent by default; see [SetLogger].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Adaptive subdivision and the length and energy of Bézier curves] by Jens Gravesen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Adaptive subdivision and the length and energy of Bézier curves]: https://doi.org/10.1016/0925-7721(95)00054-2
package bezier
