// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"
	"slices"
)

// DeleteSubRange removes segments segStart through segEnd of the path at
// elemIdx, where segment i runs from vertex i to vertex i+1 and, for a
// closed path, the last segment is the closing edge. The path is opened:
//   - a range at the start makes the first surviving vertex the new anchor;
//   - a range reaching the end drops the tail;
//   - an interior range splits the path in two: the original keeps the head
//     and is renamed newName1, and a new element newName2 with the same
//     style holds the rest, inserted right after it.
//
// The closing edge of a closed path survives as an explicit lineto when it
// is outside the range. An anchor left with no segment after it, or a
// move left at the end, is dropped. A range covering every segment
// deletes the element.
// It returns false with no change for an element that is not a path or
// for indexes out of range.
func (doc *Document) DeleteSubRange(elemIdx, segStart, segEnd int, newName1, newName2 string) bool {
	el := doc.Element(elemIdx)
	if el == nil {
		return false
	}
	p := el.Path()
	n := 0
	if p != nil {
		n = len(p.Vertices)
	}
	last := n - 1
	if p == nil || n < 2 || segStart < 0 || segStart > segEnd || segEnd > last {
		return false
	}
	if segStart == 0 && segEnd >= p.NumSegments()-1 {
		slog.Debug("svg: DeleteSubRange removes whole element", "id", el.ID)
		return doc.DeleteElement(elemIdx)
	}

	pts := p.Coords()
	closed := p.Closed
	closing := PathVertex{Cmd: PcLineRel, Pos: pts[0].Sub(pts[last])}
	// from returns the vertices from i on with i as the anchor, skipping
	// ahead over moves so that no anchor is left without a segment
	from := func(i int) []PathVertex {
		for i < last && p.Vertices[i+1].Cmd.IsMove() {
			i++
		}
		vs := []PathVertex{{Cmd: PcMoveAbs, Pos: pts[i], Selected: p.Vertices[i].Selected}}
		vs = append(vs, p.Vertices[i+1:]...)
		if closed {
			vs = append(vs, closing)
		}
		return vs
	}
	// upTo returns the vertices through i, without trailing moves
	upTo := func(i int) []PathVertex {
		for i > 0 && p.Vertices[i].Cmd.IsMove() {
			i--
		}
		return slices.Clone(p.Vertices[:i+1])
	}

	switch {
	case segStart == 0:
		p.Vertices = from(segEnd + 1)
		p.Closed = false
	case segEnd == last || (!closed && segEnd == last-1):
		p.Vertices = upTo(segStart)
		p.Closed = false
	default:
		tail := from(segEnd + 1)
		p.Vertices = upTo(segStart)
		p.Closed = false
		el.ID = newName1
		nel := NewElement(newName2, el.Style, &Path{Vertices: tail})
		nel.Visible = el.Visible
		doc.Elements = slices.Insert(doc.Elements, elemIdx+1, nel)
	}
	el.UpdateExtents()
	doc.Dirty = true
	return true
}
