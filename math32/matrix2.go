// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
	"strings"
)

// Matrix2 is a 3x2 matrix for 2D affine transforms,
// with an implicit last row of (0, 0, 1).
// A point (x, y) is transformed as:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// The field order matches the SVG matrix(a, b, c, d, e, f) form.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a matrix that translates by the given amounts.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a matrix that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a rotation matrix for the given angle in radians.
// Positive angles rotate x toward y.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Rotate90L returns the exact quarter-turn matrix (x, y) -> (-y, x).
func Rotate90L() Matrix2 {
	return Matrix2{XX: 0, YX: 1, XY: -1, YY: 0}
}

// Rotate90R returns the exact quarter-turn matrix (x, y) -> (y, -x).
func Rotate90R() Matrix2 {
	return Matrix2{XX: 0, YX: -1, XY: 1, YY: 0}
}

// IsIdentity returns true if this is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a*b; the result applies b first, then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a*b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding
// translations. This is for directional vectors and relative deltas,
// not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Det returns the determinant of the linear part of the matrix.
// It is negative when the transform mirrors.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// String returns the matrix as an SVG transform string, using the
// simplest form that represents it.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 {
		hasScale := a.XX != 1 || a.YY != 1
		hasTrans := a.X0 != 0 || a.Y0 != 0
		scale := fmt.Sprintf("scale(%s,%s)", formatG(a.XX), formatG(a.YY))
		trans := fmt.Sprintf("translate(%s,%s)", formatG(a.X0), formatG(a.Y0))
		switch {
		case hasScale && hasTrans:
			return trans + " " + scale
		case hasScale:
			return scale
		default:
			return trans
		}
	}
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", formatG(a.XX), formatG(a.YX), formatG(a.XY), formatG(a.YY), formatG(a.X0), formatG(a.Y0))
}

func formatG(v float32) string {
	return fmt.Sprintf("%g", v)
}

// SetString sets the matrix from an SVG transform string: zero or more
// chained calls among matrix, translate, scale, rotate, skewX and skewY,
// composed left to right starting from the identity. Rotation angles are
// in degrees. skewX, skewY and the three argument form of rotate
// contribute the identity. A call with the wrong number of arguments or
// an unknown name is skipped and reported in the joined error, so the
// remaining calls still compose. "none" and the empty string give the
// identity.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.TrimSpace(str)
	if str == "" || strings.EqualFold(str, "none") {
		return nil
	}
	var errs []error
	for {
		str = strings.TrimLeft(str, " \t\n\r,")
		if str == "" {
			break
		}
		pidx := strings.IndexByte(str, '(')
		if pidx < 0 {
			errs = append(errs, fmt.Errorf("math32.Matrix2.SetString: no opening parenthesis in %q", str))
			break
		}
		name := strings.ToLower(strings.TrimSpace(str[:pidx]))
		rest := str[pidx+1:]
		eidx := strings.IndexByte(rest, ')')
		if eidx < 0 {
			errs = append(errs, fmt.Errorf("math32.Matrix2.SetString: no closing parenthesis in %q", str))
			break
		}
		args := rest[:eidx]
		str = rest[eidx+1:]
		vals, err := ReadPoints(args)
		if err != nil {
			errs = append(errs, fmt.Errorf("math32.Matrix2.SetString: %s: %w", name, err))
			continue
		}
		m, err := transformCall(name, vals)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		a.SetMul(m)
	}
	return errors.Join(errs...)
}

// transformCall returns the matrix for one transform function call.
func transformCall(name string, vals []float32) (Matrix2, error) {
	n := len(vals)
	argErr := func() (Matrix2, error) {
		return Identity2(), fmt.Errorf("math32.Matrix2.SetString: %s: wrong number of arguments: %d", name, n)
	}
	switch name {
	case "matrix":
		if n != 6 {
			return argErr()
		}
		return Matrix2{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}, nil
	case "translate":
		switch n {
		case 1:
			return Translate2D(vals[0], 0), nil
		case 2:
			return Translate2D(vals[0], vals[1]), nil
		}
		return argErr()
	case "scale":
		switch n {
		case 1:
			return Scale2D(vals[0], vals[0]), nil
		case 2:
			return Scale2D(vals[0], vals[1]), nil
		}
		return argErr()
	case "rotate":
		switch n {
		case 1:
			return Rotate2D(DegToRad(vals[0])), nil
		case 3:
			// rotation about a center point is not supported
			return Identity2(), nil
		}
		return argErr()
	case "skewx", "skewy":
		if n != 1 {
			return argErr()
		}
		return Identity2(), nil
	}
	return Identity2(), fmt.Errorf("math32.Matrix2.SetString: unknown transform function %q", name)
}
