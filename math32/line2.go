// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 represents a 2D line segment defined by a start and an end point.
type Line2 struct {
	Start Vector2
	End   Vector2
}

// NewLine2 creates and returns a new Line2 with the
// specified start and end points.
func NewLine2(start, end Vector2) Line2 {
	return Line2{start, end}
}

// Set sets this line segment start and end points.
func (l *Line2) Set(start, end Vector2) {
	l.Start = start
	l.End = end
}

// Center calculates this line segment center point.
func (l *Line2) Center() Vector2 {
	return l.Start.Add(l.End).MulScalar(0.5)
}

// Delta calculates the vector from the start to end point of this line segment.
func (l *Line2) Delta() Vector2 {
	return l.End.Sub(l.Start)
}

// LengthSquared returns the square of the distance from the start point to the end point.
func (l *Line2) LengthSquared() float32 {
	return l.Start.DistanceToSquared(l.End)
}

// Length returns the length from the start point to the end point.
func (l *Line2) Length() float32 {
	return l.Start.DistanceTo(l.End)
}

// note: ClosestPointToPoint is adapted from https://math.stackexchange.com/questions/2193720/find-a-point-on-a-line-segment-which-is-the-closest-to-other-point-not-on-the-li

// ClosestPointToPoint returns the point along the line that is
// closest to the given point.
func (l *Line2) ClosestPointToPoint(point Vector2) Vector2 {
	v := l.Delta()
	u := point.Sub(l.Start)
	vu := v.Dot(u)
	ds := v.LengthSquared()
	if ds == 0 {
		return l.Start
	}
	t := vu / ds
	switch {
	case t <= 0:
		return l.Start
	case t >= 1:
		return l.End
	default:
		return l.Start.Add(v.MulScalar(t))
	}
}

// DistanceToPoint returns the distance from the given point to the
// closest point on this line segment.
func (l *Line2) DistanceToPoint(point Vector2) float32 {
	if l.LengthSquared() == 0 {
		return l.Start.DistanceTo(point)
	}
	return l.ClosestPointToPoint(point).DistanceTo(point)
}

// LineDistanceToPoint returns the perpendicular distance from the given
// point to the infinite line through this segment. A degenerate segment
// gives the distance to its start point.
func (l *Line2) LineDistanceToPoint(point Vector2) float32 {
	v := l.Delta()
	ln := v.Length()
	if ln == 0 {
		return l.Start.DistanceTo(point)
	}
	return Abs(v.Cross(point.Sub(l.Start))) / ln
}

// Bounds returns the canonical bounding box of this line segment.
func (l *Line2) Bounds() Box2 {
	return Box2{l.Start.Min(l.End), l.Start.Max(l.End)}
}

// IsNear returns true if the point is within tol of the infinite line
// through this segment and inside the segment bounds grown by tol.
// This is the hit test used for picking drawn segments.
func (l *Line2) IsNear(point Vector2, tol float32) bool {
	if !l.Bounds().Grow(tol).ContainsPoint(point) {
		return false
	}
	return l.LineDistanceToPoint(point) < tol
}
