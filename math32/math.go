// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, box, line, and affine matrix
// package for 2D drawing geometry.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 { return degrees * DegToRadFactor }

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 { return radians * RadToDegFactor }

// The float32 functions below forward to chewxy/math32.

func Abs(x float32) float32           { return math32.Abs(x) }
func Atan2(y, x float32) float32      { return math32.Atan2(y, x) }
func Ceil(x float32) float32          { return math32.Ceil(x) }
func Floor(x float32) float32         { return math32.Floor(x) }
func Hypot(p, q float32) float32      { return math32.Hypot(p, q) }
func Sqrt(x float32) float32          { return math32.Sqrt(x) }
func Sincos(x float32) (s, c float32) { return math32.Sincos(x) }

// Max returns the larger of x or y, or NaN if either is NaN.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Min returns the smaller of x or y, or NaN if either is NaN.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Clamp clamps x to the closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	return min(max(x, a), b)
}
