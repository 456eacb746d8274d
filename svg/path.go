// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"

	"cogentcore.org/svgedit/math32"
)

// Path is a sequence of path vertices: one absolute anchor followed by
// relative deltas. A closed path has an implicit edge from its last
// vertex back to its first.
type Path struct {

	// the vertices; the first is always a [PcMoveAbs] anchor
	Vertices []PathVertex

	// whether the path ends with a closepath
	Closed bool
}

// NewPath returns a new path from the given SVG path data.
func NewPath(data string) (*Path, error) {
	vs, closed, err := ParsePathData(data)
	if err != nil {
		return nil, err
	}
	return &Path{Vertices: vs, Closed: closed}, nil
}

func (g *Path) Kind() Kinds { return KindPath }

// Bounds returns the extents of the resolved vertices. Curve control
// points are not included.
func (g *Path) Bounds() math32.Box2 { return math32.B2FromPoints(g.Coords()) }

// Coords returns the resolved absolute vertex positions.
func (g *Path) Coords() []math32.Vector2 { return ResolveAbsolute(g.Vertices) }

// Data returns the SVG path data string for the path.
func (g *Path) Data() string { return PathDataString(g.Vertices, g.Closed) }

// PathSegment is one drawn edge of a path.
type PathSegment struct {

	// Index is the segment index, which is the index of its start vertex.
	Index int

	// Start and End are the absolute endpoints.
	Start, End math32.Vector2
}

// Line returns the segment as a [math32.Line2].
func (s PathSegment) Line() math32.Line2 {
	return math32.NewLine2(s.Start, s.End)
}

// Segments returns the drawn segments: each consecutive vertex pair
// except those ending in a move, plus the closing edge from the last
// vertex to the first when the path is closed.
func (g *Path) Segments() []PathSegment {
	pts := g.Coords()
	n := len(pts)
	var segs []PathSegment
	for i := 0; i+1 < n; i++ {
		if g.Vertices[i+1].Cmd.IsMove() {
			continue
		}
		segs = append(segs, PathSegment{Index: i, Start: pts[i], End: pts[i+1]})
	}
	if g.Closed && n > 1 {
		segs = append(segs, PathSegment{Index: n - 1, Start: pts[n-1], End: pts[0]})
	}
	return segs
}

// NumSegments returns the number of segment indexes: one per vertex pair,
// plus the closing edge when closed.
func (g *Path) NumSegments() int {
	n := len(g.Vertices)
	if n == 0 {
		return 0
	}
	if g.Closed {
		return n
	}
	return n - 1
}

// applyMatrix transforms anchors as points and everything else as
// vectors, so the translation only moves anchors.
func (g *Path) applyMatrix(m math32.Matrix2) {
	flip := m.Det() < 0
	for i := range g.Vertices {
		v := &g.Vertices[i]
		if v.Cmd == PcMoveAbs {
			v.Pos = m.MulVector2AsPoint(v.Pos)
		} else {
			v.Pos = m.MulVector2AsVector(v.Pos)
		}
		switch v.Cmd {
		case PcCubicRel, PcSmoothCubicRel, PcQuadRel:
			for j := 0; j+1 < len(v.Args); j += 2 {
				a := m.MulVector2AsVector(math32.Vec2(v.Args[j], v.Args[j+1]))
				v.Args[j], v.Args[j+1] = a.X, a.Y
			}
		case PcArcRel:
			transformArc(v.Args, m, flip)
		}
	}
}

// transformArc updates arc radii and rotation from the transformed
// ellipse axes, and flips the sweep flag for a mirroring transform.
func transformArc(args []float32, m math32.Matrix2, flip bool) {
	if len(args) < 5 {
		return
	}
	sin, cos := math32.Sincos(math32.DegToRad(args[2]))
	ax := m.MulVector2AsVector(math32.Vec2(cos, sin))
	ay := m.MulVector2AsVector(math32.Vec2(-sin, cos))
	args[0] *= ax.Length()
	args[1] *= ay.Length()
	args[2] = math32.RadToDeg(math32.Atan2(ax.Y, ax.X))
	if flip {
		if args[4] != 0 {
			args[4] = 0
		} else {
			args[4] = 1
		}
	}
}

// move translates the anchors only; relative vertices follow.
func (g *Path) move(delta math32.Vector2) {
	for i := range g.Vertices {
		if g.Vertices[i].Cmd == PcMoveAbs {
			g.Vertices[i].Pos.SetAdd(delta)
		}
	}
}

func (g *Path) hitTest(pt math32.Vector2, tol float32) bool {
	for _, s := range g.Segments() {
		l := s.Line()
		if l.IsNear(pt, tol) {
			return true
		}
	}
	return false
}

// clone copies the vertices directly so that nil Args stay nil.
func (g *Path) clone() Shape {
	ng := &Path{Vertices: slices.Clone(g.Vertices), Closed: g.Closed}
	for i := range ng.Vertices {
		ng.Vertices[i].Args = slices.Clone(ng.Vertices[i].Args)
	}
	return ng
}
