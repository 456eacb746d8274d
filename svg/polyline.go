// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgedit/math32"
)

// Polyline is an open sequence of line segments through absolute points.
type Polyline struct {

	// the coordinates to draw: a moveto on the first, then lineto for all the rest
	Points []math32.Vector2
}

func (g *Polyline) Kind() Kinds { return KindPolyline }

func (g *Polyline) Bounds() math32.Box2 { return math32.B2FromPoints(g.Points) }

func (g *Polyline) Coords() []math32.Vector2 { return g.Points }

func (g *Polyline) applyMatrix(m math32.Matrix2) { transformPoints(g.Points, m) }

func (g *Polyline) move(delta math32.Vector2) { movePoints(g.Points, delta) }

func (g *Polyline) hitTest(pt math32.Vector2, tol float32) bool {
	return pointsHit(g.Points, false, pt, tol)
}

func (g *Polyline) clone() Shape {
	ng := cloneShape(g)
	ng.Points = nilIfNil(g.Points, ng.Points)
	return ng
}

// Polygon is a closed sequence of line segments through absolute points,
// with an implicit edge from the last point back to the first.
type Polygon struct {

	// the coordinates to draw: a moveto on the first, then lineto for all the rest, then a closepath
	Points []math32.Vector2
}

func (g *Polygon) Kind() Kinds { return KindPolygon }

func (g *Polygon) Bounds() math32.Box2 { return math32.B2FromPoints(g.Points) }

func (g *Polygon) Coords() []math32.Vector2 { return g.Points }

func (g *Polygon) applyMatrix(m math32.Matrix2) { transformPoints(g.Points, m) }

func (g *Polygon) move(delta math32.Vector2) { movePoints(g.Points, delta) }

func (g *Polygon) hitTest(pt math32.Vector2, tol float32) bool {
	return pointsHit(g.Points, true, pt, tol)
}

func (g *Polygon) clone() Shape {
	ng := cloneShape(g)
	ng.Points = nilIfNil(g.Points, ng.Points)
	return ng
}

func transformPoints(pts []math32.Vector2, m math32.Matrix2) {
	for i, p := range pts {
		pts[i] = m.MulVector2AsPoint(p)
	}
}

func movePoints(pts []math32.Vector2, delta math32.Vector2) {
	for i := range pts {
		pts[i].SetAdd(delta)
	}
}

// pointsHit returns true if pt is near any segment between consecutive
// points, including the closing segment when closed.
func pointsHit(pts []math32.Vector2, closed bool, pt math32.Vector2, tol float32) bool {
	n := len(pts)
	for i := 0; i+1 < n; i++ {
		l := math32.NewLine2(pts[i], pts[i+1])
		if l.IsNear(pt, tol) {
			return true
		}
	}
	if closed && n > 2 {
		l := math32.NewLine2(pts[n-1], pts[0])
		return l.IsNear(pt, tol)
	}
	return false
}

// nilIfNil returns nil when src is nil and dst otherwise, undoing the
// empty slice a deep copy makes of a nil one.
func nilIfNil[T any](src, dst []T) []T {
	if src == nil {
		return nil
	}
	return dst
}
