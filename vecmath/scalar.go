// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecmath implements generic fixed-dimension vector types and the
// scalar helpers the spline engine needs, without casting through a single
// hard-coded float width.
package vecmath

import "math"

// Scalar is the set of floating point types the engine can be instantiated
// over. Named/derived float32 and float64 types satisfy it too.
type Scalar interface {
	~float32 | ~float64
}

// Vec is the algebraic contract every point/vector type used by the spline
// engine must satisfy. V is the concrete vector type itself (Vector2[S],
// Vector3[S], ...); the self-reference lets generic curve code operate on V
// directly instead of boxing every intermediate result behind an interface.
type Vec[S Scalar, V any] interface {
	Add(V) V
	Sub(V) V
	MultiplyScalar(S) V
	DivideScalar(S) V
	Dot(V) S
	Length() S
	LengthSq() S
	Normalize() V
	DistanceTo(V) S
	DistanceToSquared(V) S
}

// Abs returns the absolute value of v.
func Abs[S Scalar](v S) S {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp clamps x to the closed interval [a, b].
func Clamp[S Scalar](x, a, b S) S {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Min returns the smaller of a and b.
func Min[S Scalar](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[S Scalar](a, b S) S {
	if a > b {
		return a
	}
	return b
}

// Sqrt returns the square root of v, routed through float64 so both
// instantiations (float32, float64) share one implementation.
func Sqrt[S Scalar](v S) S {
	return S(math.Sqrt(float64(v)))
}

// Pow returns a raised to the b-th power.
func Pow[S Scalar](a, b S) S {
	return S(math.Pow(float64(a), float64(b)))
}

// IsNaN reports whether v is NaN.
func IsNaN[S Scalar](v S) bool {
	return math.IsNaN(float64(v))
}

// Lerp linearly interpolates between a and b by t.
func Lerp[S Scalar](a, b, t S) S {
	return a + (b-a)*t
}

// Mod returns the floating-point remainder of a/b (same sign as a, matching
// math.Mod), routed through float64 so both instantiations share one path.
func Mod[S Scalar](a, b S) S {
	return S(math.Mod(float64(a), float64(b)))
}
