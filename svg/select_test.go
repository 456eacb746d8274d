// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"testing"

	"cogentcore.org/svgedit/math32"
	. "cogentcore.org/svgedit/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAtPointLine(t *testing.T) {
	doc := readString(t, `<svg><line x1="0" y1="0" x2="100" y2="0"/></svg>`)
	assert.Equal(t, 1, doc.SelectAtPoint(50, 0, true))
	assert.True(t, doc.Element(0).Selected)

	off := float32(PixelsClose)*doc.PixelSize + 1
	assert.Equal(t, 0, doc.SelectAtPoint(50, off, true))
	assert.False(t, doc.Element(0).Selected)

	doc.PixelSize = 2
	assert.Equal(t, 1, doc.SelectAtPoint(50, off, true))
}

func TestSelectAtPointKinds(t *testing.T) {
	doc := readString(t, `<svg>
		<rect id="r" width="100" height="100"/>
		<polygon id="pg" points="200,0 300,0 300,100"/>
		<polyline id="pl" points="400,0 500,0 500,100"/>
		<path id="p" d="M600,0 L700,0 L700,100 z"/>
		<path id="h" style="display:none" d="M0,50 L100,50"/>
	</svg>`)

	// rect hits only on its edges
	assert.Equal(t, 1, doc.SelectAtPoint(50, 2, true))
	assert.True(t, doc.Element(0).Selected)
	assert.Equal(t, 0, doc.SelectAtPoint(50, 50, true))

	// closing edges of polygons and closed paths
	assert.Equal(t, 1, doc.SelectAtPoint(250, 50, true))
	assert.True(t, doc.Element(1).Selected)
	assert.Equal(t, 0, doc.SelectAtPoint(450, 50, true))
	assert.Equal(t, 1, doc.SelectAtPoint(650, 50, true))
	assert.True(t, doc.Element(3).Selected)

	// without deselecting first the selection accumulates
	assert.Equal(t, 1, doc.SelectAtPoint(250, 50, false))
	assert.Equal(t, []int{1, 3}, doc.SelectedElements())

	doc.DeselectAll()
	assert.Empty(t, doc.SelectedElements())
}

func TestSelectAtPointAllMatches(t *testing.T) {
	doc := readString(t, `<svg>
		<path d="M0,0 L100,0"/>
		<path d="M0,3 L100,3"/>
		<path d="M0,30 L100,30"/>
	</svg>`)
	assert.Equal(t, 2, doc.SelectAtPoint(50, 1, true))
	assert.Equal(t, []int{0, 1}, doc.SelectedElements())
}

func TestSelectInRect(t *testing.T) {
	doc := openTestFile(t, "shapes.svg")
	assert.Equal(t, 2, doc.SelectInRect(-5, -5, 5, 5, true))
	assert.Equal(t, []int{1, 3}, doc.SelectedElements())
	assert.Equal(t, 2, doc.SelectInRect(5, 5, -5, -5, true))
	assert.Equal(t, []int{1, 3}, doc.SelectedElements())

	// hidden elements are not selected
	assert.Equal(t, 1, doc.SelectInRect(45, 45, 70, 55, true))
	assert.Equal(t, []int{4}, doc.SelectedElements())

	assert.Equal(t, 1, doc.SelectInRect(0, 0, 1, 1, false))
	assert.Equal(t, []int{1, 4}, doc.SelectedElements())
}

func TestSelectPathSegment(t *testing.T) {
	doc := readString(t, `<svg><path d="M0,0 L10,0 L20,0"/><path d="M0,5 L10,5"/><rect width="1" height="1"/></svg>`)
	doc.Element(1).Selected = true
	doc.SelectPathSegment(0, 1)
	p := doc.Element(0).Path()
	assert.True(t, p.Vertices[1].Selected)
	assert.True(t, doc.Element(0).Selected)
	assert.False(t, doc.Element(1).Selected)

	// toggle off
	doc.SelectPathSegment(0, 1)
	assert.False(t, p.Vertices[1].Selected)
	assert.False(t, doc.Element(0).Selected)

	// selecting another segment clears the first
	doc.SelectPathSegment(0, 0)
	doc.SelectPathSegment(0, 1)
	assert.False(t, p.Vertices[0].Selected)
	assert.True(t, p.Vertices[1].Selected)

	// ignored: last vertex, out of range, not a path
	doc.SelectPathSegment(0, 2)
	doc.SelectPathSegment(0, -1)
	doc.SelectPathSegment(5, 0)
	doc.SelectPathSegment(2, 0)
	assert.True(t, p.Vertices[1].Selected)
	assert.False(t, p.Vertices[2].Selected)
	assert.Equal(t, []int{0}, doc.SelectedElements())
}

func TestSetCursor(t *testing.T) {
	doc := NewDocument()
	doc.SetCursor(3, 4)
	assert.Equal(t, math32.Vec2(3, 4), doc.Cursor)
	require.Equal(t, float32(PixelsClose), doc.Tolerance())
}

func TestSelectAtPointSubpathClose(t *testing.T) {
	doc := readString(t, `<svg><path d="M0,0 L10,0 L10,10 z M20,20 L30,20 L30,40 z"/></svg>`)
	doc.PixelSize = 0.1
	// on the edge closing the second subpath back to (20,20)
	assert.Equal(t, 1, doc.SelectAtPoint(25, 30, true))
	// on the line back to the first vertex, which is not drawn
	assert.Equal(t, 0, doc.SelectAtPoint(15, 20, true))
}
