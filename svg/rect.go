// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgedit/math32"
)

// Rect is a rectangle given by an origin and a size. After a rotation
// or flip the size may be negative.
type Rect struct {

	// position of the top-left of the rectangle
	Pos math32.Vector2

	// size of the rectangle
	Size math32.Vector2
}

func (g *Rect) Kind() Kinds { return KindRect }

// Bounds returns {Pos, Pos+Size}, unnormalized.
func (g *Rect) Bounds() math32.Box2 {
	return math32.Box2{Min: g.Pos, Max: g.Pos.Add(g.Size)}
}

// Coords returns the four corners, starting at Pos.
func (g *Rect) Coords() []math32.Vector2 {
	end := g.Pos.Add(g.Size)
	return []math32.Vector2{g.Pos, math32.Vec2(end.X, g.Pos.Y), end, math32.Vec2(g.Pos.X, end.Y)}
}

func (g *Rect) applyMatrix(m math32.Matrix2) {
	g.Pos = m.MulVector2AsPoint(g.Pos)
	g.Size = m.MulVector2AsVector(g.Size)
}

func (g *Rect) move(delta math32.Vector2) { g.Pos.SetAdd(delta) }

// hitTest only hits the edges, not the interior.
func (g *Rect) hitTest(pt math32.Vector2, tol float32) bool {
	return pointsHit(g.Coords(), true, pt, tol)
}

func (g *Rect) clone() Shape { return cloneShape(g) }

// Line is a single segment from Pos to Pos+Size.
type Line struct {

	// start point
	Pos math32.Vector2

	// delta from the start point to the end point
	Size math32.Vector2
}

func (g *Line) Kind() Kinds { return KindLine }

// Bounds returns {Pos, Pos+Size}, unnormalized.
func (g *Line) Bounds() math32.Box2 {
	return math32.Box2{Min: g.Pos, Max: g.Pos.Add(g.Size)}
}

// End returns the end point.
func (g *Line) End() math32.Vector2 { return g.Pos.Add(g.Size) }

func (g *Line) Coords() []math32.Vector2 { return []math32.Vector2{g.Pos, g.End()} }

func (g *Line) applyMatrix(m math32.Matrix2) {
	g.Pos = m.MulVector2AsPoint(g.Pos)
	g.Size = m.MulVector2AsVector(g.Size)
}

func (g *Line) move(delta math32.Vector2) { g.Pos.SetAdd(delta) }

func (g *Line) hitTest(pt math32.Vector2, tol float32) bool {
	l := math32.NewLine2(g.Pos, g.End())
	return l.IsNear(pt, tol)
}

func (g *Line) clone() Shape { return cloneShape(g) }
