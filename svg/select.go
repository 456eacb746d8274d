// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgedit/math32"
)

// PixelsClose is how close, in device pixels, a point must be to a
// drawn segment to select it.
const PixelsClose = 10

// Tolerance returns the selection tolerance in world units.
func (doc *Document) Tolerance() float32 {
	return doc.PixelSize * PixelsClose
}

// SetCursor records the pointer position.
func (doc *Document) SetCursor(x, y float32) {
	doc.Cursor.Set(x, y)
}

// DeselectAll clears the selection of every element and path vertex.
func (doc *Document) DeselectAll() {
	for _, el := range doc.Elements {
		el.Selected = false
		if p := el.Path(); p != nil {
			for i := range p.Vertices {
				p.Vertices[i].Selected = false
			}
		}
	}
}

// SelectedElements returns the indexes of the selected elements.
func (doc *Document) SelectedElements() []int {
	var sel []int
	for i, el := range doc.Elements {
		if el.Selected {
			sel = append(sel, i)
		}
	}
	return sel
}

// SelectAtPoint selects every visible element drawn within the selection
// tolerance of the given point: rects on their edges, and the other
// kinds on any of their drawn segments. It returns the number of
// elements selected.
func (doc *Document) SelectAtPoint(x, y float32, deselectFirst bool) int {
	if deselectFirst {
		doc.DeselectAll()
	}
	pt := math32.Vec2(x, y)
	tol := doc.Tolerance()
	n := 0
	for _, el := range doc.Elements {
		if !el.Visible || el.Shape == nil {
			continue
		}
		if !el.BBox.Grow(tol).ContainsPoint(pt) {
			continue
		}
		if el.Shape.hitTest(pt, tol) {
			el.Selected = true
			n++
		}
	}
	return n
}

// SelectInRect selects every visible element whose bounding box
// intersects the given rectangle, in any corner order. It returns the
// number of elements selected.
func (doc *Document) SelectInRect(x0, y0, x1, y1 float32, deselectFirst bool) int {
	if deselectFirst {
		doc.DeselectAll()
	}
	q := math32.B2(x0, y0, x1, y1).Canon()
	n := 0
	for _, el := range doc.Elements {
		if !el.Visible {
			continue
		}
		if el.BBox.Canon().IntersectsBox(q) {
			el.Selected = true
			n++
		}
	}
	return n
}

// SelectPathSegment clears all other selection and toggles the selection
// of the segment starting at segIdx in the path at elemIdx. The element is
// selected when the segment is. Indexes out of range, elements that are
// not paths, and the last vertex are ignored.
func (doc *Document) SelectPathSegment(elemIdx, segIdx int) {
	el := doc.Element(elemIdx)
	if el == nil {
		return
	}
	p := el.Path()
	if p == nil || segIdx < 0 || segIdx > len(p.Vertices)-2 {
		return
	}
	was := p.Vertices[segIdx].Selected
	doc.DeselectAll()
	p.Vertices[segIdx].Selected = !was
	el.Selected = !was
}
