// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 is an axis-aligned 2D box from Min to Max.
// Boxes built from an origin and a signed size, as for a transformed
// rect, may have Min > Max on an axis; [Box2.Canon] fixes that.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box from (x0, y0) to (x1, y1).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromPoints returns the smallest box holding all of the points,
// or the zero box for none.
func B2FromPoints(points []Vector2) Box2 {
	if len(points) == 0 {
		return Box2{}
	}
	b := Box2{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.ExpandByPoint(p)
	}
	return b
}

// String returns the box as "[min - max]".
func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// ToRect returns the smallest integer rectangle holding the box:
// the floor of Min and the ceiling of Max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// Canon returns the box with Min and Max swapped on any axis where
// Min is greater.
func (b Box2) Canon() Box2 {
	return Box2{Min: b.Min.Min(b.Max), Max: b.Min.Max(b.Max)}
}

// ExpandByPoint grows the box as needed to hold p.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min.SetMin(p)
	b.Max.SetMax(p)
}

// Grow returns the canonical box with amount added on every side.
func (b Box2) Grow(amount float32) Box2 {
	c := b.Canon()
	c.Min.SetSubScalar(amount)
	c.Max.SetAddScalar(amount)
	return c
}

// Center returns the midpoint of the box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns Max - Min.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether p is inside the box or on its edge.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// IntersectsBox returns whether the boxes overlap or touch.
func (b Box2) IntersectsBox(o Box2) bool {
	return o.Max.X >= b.Min.X && o.Min.X <= b.Max.X && o.Max.Y >= b.Min.Y && o.Min.Y <= b.Max.Y
}

// Union returns the smallest box holding both boxes.
func (b Box2) Union(o Box2) Box2 {
	return Box2{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}
