// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"
	"strconv"

	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/math32"
	"github.com/jinzhu/copier"
)

// Document is an ordered list of elements, in drawing order, together
// with the editing state around them. It is not safe for concurrent use.
type Document struct {

	// Elements are the elements in z-order.
	Elements []*Element `copier:"-"`

	// Cursor is the last pointer position reported by the user interface.
	Cursor math32.Vector2

	// PixelSize is the number of world units per device pixel, which
	// scales the selection tolerance.
	PixelSize float32

	// Dirty is set by every modification and cleared by a load or save.
	Dirty bool

	// Backup is whether Save copies an existing file to a .bak file first.
	Backup bool

	// Filename is the file last loaded or saved.
	Filename string

	// Title and Desc are the root level title and desc text.
	Title, Desc string
}

// NewDocument returns a new empty document with a pixel size of 1
// and backups on.
func NewDocument() *Document {
	return &Document{PixelSize: 1, Backup: true}
}

// ElementCount returns the number of elements.
func (doc *Document) ElementCount() int {
	return len(doc.Elements)
}

// Element returns the element at the given index, or nil if out of range.
func (doc *Document) Element(idx int) *Element {
	if idx < 0 || idx >= len(doc.Elements) {
		return nil
	}
	return doc.Elements[idx]
}

// ElementByID returns the index of the first element with the given id,
// or -1 if there is none.
func (doc *Document) ElementByID(id string) int {
	return slices.IndexFunc(doc.Elements, func(el *Element) bool { return el.ID == id })
}

// Extents returns the union of the normalized element bounding boxes,
// or the zero box if there are no elements.
func (doc *Document) Extents() math32.Box2 {
	if len(doc.Elements) == 0 {
		return math32.Box2{}
	}
	bb := doc.Elements[0].BBox.Canon()
	for _, el := range doc.Elements[1:] {
		bb = bb.Union(el.BBox.Canon())
	}
	return bb
}

// UpdateExtents recomputes the bounding box of every element.
func (doc *Document) UpdateExtents() {
	for _, el := range doc.Elements {
		el.UpdateExtents()
	}
}

// UniqueID returns the first of prefix1, prefix2, ... that is not the id
// of any element and not among the reserved names.
func (doc *Document) UniqueID(prefix string, reserved ...string) string {
	used := make(map[string]bool, len(doc.Elements)+len(reserved))
	for _, el := range doc.Elements {
		used[el.ID] = true
	}
	for _, r := range reserved {
		used[r] = true
	}
	for i := 1; ; i++ {
		id := prefix + strconv.Itoa(i)
		if !used[id] {
			return id
		}
	}
}

// AppendPolyline adds a new visible polyline through the given absolute
// points at the top of the z-order, returning it.
func (doc *Document) AppendPolyline(id, style string, pts []math32.Vector2) *Element {
	el := NewElement(id, style, &Polyline{Points: slices.Clone(pts)})
	doc.Elements = append(doc.Elements, el)
	doc.Dirty = true
	return el
}

// InsertElement inserts the given element at the given index,
// clamped to the valid range.
func (doc *Document) InsertElement(idx int, el *Element) {
	idx = math32.Clamp(idx, 0, len(doc.Elements))
	el.UpdateExtents()
	doc.Elements = slices.Insert(doc.Elements, idx, el)
	doc.Dirty = true
}

// DeleteElement removes the element at the given index, returning
// false if the index is out of range.
func (doc *Document) DeleteElement(idx int) bool {
	if idx < 0 || idx >= len(doc.Elements) {
		return false
	}
	doc.Elements = slices.Delete(doc.Elements, idx, idx+1)
	doc.Dirty = true
	return true
}

// DeleteSelected removes every selected element, returning the number removed.
func (doc *Document) DeleteSelected() int {
	n := len(doc.Elements)
	doc.Elements = slices.DeleteFunc(doc.Elements, func(el *Element) bool { return el.Selected })
	del := n - len(doc.Elements)
	if del > 0 {
		doc.Dirty = true
	}
	return del
}

// Clone returns a deep copy of the document, suitable as an undo snapshot.
func (doc *Document) Clone() *Document {
	nd := &Document{}
	errors.Log(copier.CopyWithOption(nd, doc, copier.Option{DeepCopy: true}))
	nd.Elements = make([]*Element, len(doc.Elements))
	for i, el := range doc.Elements {
		nd.Elements[i] = el.Clone()
	}
	return nd
}
