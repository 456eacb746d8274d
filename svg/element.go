// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/math32"
	"github.com/jinzhu/copier"
)

// Kinds are the kinds of element geometry.
type Kinds int32

const (
	// KindPath is a path of move, line, curve and arc commands.
	KindPath Kinds = iota

	// KindPolyline is an open sequence of absolute points.
	KindPolyline

	// KindPolygon is a closed sequence of absolute points.
	KindPolygon

	// KindRect is an axis aligned rectangle.
	KindRect

	// KindLine is a single line segment.
	KindLine

	// KindCircle is reserved; no loader produces it.
	KindCircle

	// KindEllipse is reserved; no loader produces it.
	KindEllipse

	// KindText is reserved; no loader produces it.
	KindText

	// KindsN is the number of kinds.
	KindsN
)

var kindNames = [...]string{"path", "polyline", "polygon", "rect", "line", "circle", "ellipse", "text"}

// String returns the SVG element name for the kind.
func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return "unknown"
	}
	return kindNames[k]
}

// Shape is the geometry of an [Element]. It is implemented only by
// [*Path], [*Polyline], [*Polygon], [*Rect] and [*Line].
type Shape interface {
	// Kind returns the kind of geometry.
	Kind() Kinds

	// Bounds returns the extents of the geometry. Rect and Line
	// return an unnormalized box when their size is negative.
	Bounds() math32.Box2

	// Coords returns the absolute positions of the vertices.
	Coords() []math32.Vector2

	applyMatrix(m math32.Matrix2)
	move(delta math32.Vector2)
	hitTest(pt math32.Vector2, tol float32) bool
	clone() Shape
}

// Element is one item in a [Document].
type Element struct {

	// ID is the element id attribute.
	ID string

	// Style is the style attribute, carried through unparsed.
	Style string

	// Shape is the geometry.
	Shape Shape `copier:"-"`

	// BBox is the cached extents of the shape, kept current by every
	// mutating operation.
	BBox math32.Box2

	// Selected is whether the element is selected.
	Selected bool

	// Visible is whether the element takes part in selection and
	// visible-only export. It is false on load when the style hides it.
	Visible bool
}

// NewElement returns a new visible element with the given id, style and
// shape, with its extents computed.
func NewElement(id, style string, sh Shape) *Element {
	el := &Element{ID: id, Style: style, Shape: sh, Visible: true}
	el.UpdateExtents()
	return el
}

// Kind returns the kind of the element shape.
func (el *Element) Kind() Kinds {
	return el.Shape.Kind()
}

// Path returns the element shape as a [*Path], or nil if it is not a path.
func (el *Element) Path() *Path {
	p, _ := el.Shape.(*Path)
	return p
}

// UpdateExtents recomputes the cached bounding box from the geometry.
func (el *Element) UpdateExtents() {
	if el.Shape == nil {
		el.BBox = math32.Box2{}
		return
	}
	el.BBox = el.Shape.Bounds()
}

// Clone returns a deep copy of the element.
func (el *Element) Clone() *Element {
	ne := &Element{}
	errors.Log(copier.CopyWithOption(ne, el, copier.Option{DeepCopy: true}))
	if el.Shape != nil {
		ne.Shape = el.Shape.clone()
	}
	return ne
}

// cloneShape deep copies src into a new value of the same type.
func cloneShape[T any](src *T) *T {
	dst := new(T)
	errors.Log(copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}))
	return dst
}
