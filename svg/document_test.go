// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"path/filepath"
	"testing"

	"cogentcore.org/svgedit/math32"
	. "cogentcore.org/svgedit/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUniqueID(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, "path1", doc.UniqueID("path"))
	doc.AppendPolyline("path1", "", nil)
	doc.AppendPolyline("path2", "", nil)
	assert.Equal(t, "path3", doc.UniqueID("path"))
	assert.Equal(t, "path4", doc.UniqueID("path", "path3"))
	assert.Equal(t, "line1", doc.UniqueID("line", "path3"))
}

func TestAppendPolyline(t *testing.T) {
	doc := NewDocument()
	in := pts(1, 2, 5, -4)
	el := doc.AppendPolyline("trace", "stroke:#000", in)
	in[0].Set(100, 100)
	assert.Equal(t, 1, doc.ElementCount())
	assert.Same(t, el, doc.Element(0))
	assert.True(t, el.Visible)
	assert.True(t, doc.Dirty)
	assert.Equal(t, KindPolyline, el.Kind())
	assert.Equal(t, pts(1, 2, 5, -4), el.Shape.Coords())
	assert.Equal(t, math32.B2(1, -4, 5, 2), el.BBox)
	assert.Equal(t, 0, doc.ElementByID("trace"))
	assert.Equal(t, -1, doc.ElementByID("none"))
}

func TestInsertDeleteElement(t *testing.T) {
	doc := NewDocument()
	doc.AppendPolyline("a", "", pts(0, 0))
	doc.InsertElement(100, NewElement("z", "", &Line{Size: math32.Vec2(1, 1)}))
	doc.InsertElement(-5, NewElement("first", "", &Rect{Size: math32.Vec2(2, 2)}))
	ids := func() []string {
		var s []string
		for _, el := range doc.Elements {
			s = append(s, el.ID)
		}
		return s
	}
	assert.Equal(t, []string{"first", "a", "z"}, ids())

	assert.False(t, doc.DeleteElement(3))
	assert.False(t, doc.DeleteElement(-1))
	assert.True(t, doc.DeleteElement(1))
	assert.Equal(t, []string{"first", "z"}, ids())
	assert.Nil(t, doc.Element(2))
}

func TestDeleteSelected(t *testing.T) {
	doc := openTestFile(t, "shapes.svg")
	assert.Equal(t, 0, doc.DeleteSelected())
	assert.False(t, doc.Dirty)
	doc.SelectInRect(-5, -5, 5, 5, true)
	assert.Equal(t, 2, doc.DeleteSelected())
	assert.True(t, doc.Dirty)
	assert.Equal(t, 4, doc.ElementCount())
	assert.Equal(t, -1, doc.ElementByID("pl1"))
	assert.Equal(t, -1, doc.ElementByID("rect1"))
}

func TestClone(t *testing.T) {
	doc := readString(t, `<svg><title>T</title><path id="p" d="M0,0 c1,2 3,4 5,6"/></svg>`)
	doc.Filename = "x.svg"
	doc.SetCursor(1, 2)
	cl := doc.Clone()
	assert.Equal(t, "x.svg", cl.Filename)
	assert.Equal(t, "T", cl.Title)
	assert.Equal(t, doc.Cursor, cl.Cursor)
	assert.Equal(t, doc.PixelSize, cl.PixelSize)
	require.Equal(t, 1, cl.ElementCount())
	assert.NotSame(t, doc.Element(0), cl.Element(0))

	cp := cl.Element(0).Path()
	cp.Vertices[1].Args[0] = 99
	cp.Vertices[0].Pos.Set(7, 7)
	cl.Element(0).ID = "q"
	cl.Scale(2)
	op := doc.Element(0).Path()
	assert.Equal(t, []float32{1, 2, 3, 4}, op.Vertices[1].Args)
	assert.Equal(t, math32.Vec2(0, 0), op.Vertices[0].Pos)
	assert.Equal(t, "p", doc.Element(0).ID)
	assert.False(t, doc.Dirty)
}

func TestExtentsEmpty(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, math32.Box2{}, doc.Extents())
}

func TestSummary(t *testing.T) {
	doc := openTestFile(t, "shapes.svg")
	doc.SelectInRect(-5, -5, 5, 5, true)
	s := doc.Summary()
	assert.Equal(t, filepath.Join("testdata", "shapes.svg"), s.File)
	assert.Equal(t, "Shapes", s.Title)
	assert.Equal(t, 6, s.Elements)
	assert.Equal(t, map[string]int{"path": 2, "polyline": 1, "polygon": 1, "rect": 1, "line": 1}, s.Kinds)
	assert.Equal(t, 1, s.Hidden)
	assert.Equal(t, 2, s.Selected)
	assert.Equal(t, 17, s.Vertices)
	assert.Equal(t, [4]float32{0, 0, 100, 50}, s.Extents)

	b, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), "extents: [0, 0, 100, 50]")
	assert.Contains(t, string(b), "title: Shapes")
}

func TestCloneExact(t *testing.T) {
	doc := readString(t, `<svg><path d="M0,0 L1,1 c1,2 3,4 5,6 z"/><polygon points="0,0 1,0 1,1"/></svg>`)
	doc.AppendPolyline("empty", "", nil)
	cl := doc.Clone()
	require.Equal(t, doc.ElementCount(), cl.ElementCount())
	for i, el := range doc.Elements {
		assert.Equal(t, el, cl.Element(i))
	}
	assert.Nil(t, cl.Element(0).Path().Vertices[0].Args)
	assert.Nil(t, cl.Element(2).Shape.(*Polyline).Points)
}
