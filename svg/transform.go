// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"

	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/math32"
)

// ParseTransform returns the matrix for an SVG transform attribute.
// Calls that cannot be applied are logged and skipped.
func ParseTransform(str string) math32.Matrix2 {
	m := math32.Matrix2{}
	errors.Log(m.SetString(str))
	return m
}

// ApplyMatrix applies the given affine transform to every element:
// absolute coordinates get the full transform and relative deltas and
// sizes get only its linear part.
func (doc *Document) ApplyMatrix(m math32.Matrix2) {
	for _, el := range doc.Elements {
		if el.Shape == nil {
			continue
		}
		el.Shape.applyMatrix(m)
		el.UpdateExtents()
	}
	doc.Dirty = true
}

// Scale scales every element about the origin.
func (doc *Document) Scale(s float32) { doc.ApplyMatrix(math32.Scale2D(s, s)) }

// ScaleX scales x coordinates about the origin.
func (doc *Document) ScaleX(s float32) { doc.ApplyMatrix(math32.Scale2D(s, 1)) }

// ScaleY scales y coordinates about the origin.
func (doc *Document) ScaleY(s float32) { doc.ApplyMatrix(math32.Scale2D(1, s)) }

// FlipVert mirrors y -> -y.
func (doc *Document) FlipVert() { doc.ApplyMatrix(math32.Scale2D(1, -1)) }

// FlipHorz mirrors x -> -x.
func (doc *Document) FlipHorz() { doc.ApplyMatrix(math32.Scale2D(-1, 1)) }

// Rotate90R rotates a quarter turn: (x, y) -> (y, -x).
func (doc *Document) Rotate90R() { doc.ApplyMatrix(math32.Rotate90R()) }

// Rotate90L rotates a quarter turn: (x, y) -> (-y, x).
func (doc *Document) Rotate90L() { doc.ApplyMatrix(math32.Rotate90L()) }

// Rotate180 does nothing.
func (doc *Document) Rotate180() {
	slog.Debug("svg: Rotate180 is not supported")
}

// Move translates every element by the given amount. Only absolute
// coordinates change: path anchors, polyline and polygon points, and
// rect and line origins.
func (doc *Document) Move(dx, dy float32) {
	d := math32.Vec2(dx, dy)
	for _, el := range doc.Elements {
		if el.Shape == nil {
			continue
		}
		el.Shape.move(d)
		el.UpdateExtents()
	}
	doc.Dirty = true
}

// Center moves the document so that its extents are centered on the origin.
func (doc *Document) Center() {
	c := doc.Extents().Center()
	doc.Move(-c.X, -c.Y)
}
