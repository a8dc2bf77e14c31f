// Package spline implements the parametric piecewise-polynomial curve
// families: uniform cubic B-spline, generic B-spline, uniform Catmull-Rom,
// cubic/quintic Hermite (with Catmull-Rom tangent derivation), and the
// natural cubic spline, each in open and looping variants. Every family
// shares the knot, segment-lookup and derivative-scaling machinery below
// and implements the Spline trait.
package spline

import "github.com/splinekit/splinekit/vecmath"

// TangentFrame bundles a position with its first derivative.
type TangentFrame[S vecmath.Scalar, V any] struct {
	Position V
	Tangent  V
}

// CurvatureFrame bundles a position with its first and second derivatives.
type CurvatureFrame[S vecmath.Scalar, V any] struct {
	Position  V
	Tangent   V
	Curvature V
}

// WiggleFrame bundles a position with its first, second and third derivatives.
type WiggleFrame[S vecmath.Scalar, V any] struct {
	Position  V
	Tangent   V
	Curvature V
	Wiggle    V
}

// Spline is the uniform interface every family implements. Queries are
// pure and safe to call concurrently once construction has returned.
type Spline[S vecmath.Scalar, V vecmath.Vec[S, V]] interface {
	// GetPosition returns the position at global parameter t. Out-of-range t
	// is clamped for open splines, wrapped for looping splines.
	GetPosition(t S) V

	// GetTangent returns position and first derivative at t.
	GetTangent(t S) TangentFrame[S, V]

	// GetCurvature returns position, tangent and second derivative at t.
	GetCurvature(t S) CurvatureFrame[S, V]

	// GetWiggle returns position, tangent, curvature and third derivative at t.
	GetWiggle(t S) WiggleFrame[S, V]

	// ArcLength returns the arc length between a and b (arguments swapped if a > b).
	ArcLength(a, b S) S

	// TotalLength returns ArcLength(0, MaxT()); implementations may cache it.
	TotalLength() S

	// GetT returns the knot value for the given control-point index (may be
	// negative for padded families).
	GetT(index int) S

	// MaxT returns the parameter value at which the spline ends (or loops).
	MaxT() S

	// SegmentCount returns the number of interpolated segments.
	SegmentCount() int

	// SegmentForT returns the segment index containing t.
	SegmentForT(t S) int

	// SegmentT returns the (start, end) global parameter of segment i.
	SegmentT(i int) (S, S)

	// SegmentArcLength integrates the tangent magnitude over [a, b] within
	// segment i; a and b must lie within that segment's knot range.
	SegmentArcLength(i int, a, b S) S

	// IsLooping reports the topology.
	IsLooping() bool
}

// LoopingSpline is implemented additionally by every looping variant.
type LoopingSpline[S vecmath.Scalar, V vecmath.Vec[S, V]] interface {
	Spline[S, V]

	// CyclicArcLength walks forward from a to b, wrapping around the loop if
	// b is "before" a after both are wrapped into [0, MaxT()).
	CyclicArcLength(a, b S) S
}
