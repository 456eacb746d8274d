// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"

	"cogentcore.org/svgedit/math32"
)

// MergePaths removes every path segment that duplicates, within epsilon
// and in either direction, a segment of a different path, returning the
// number of segments removed. Each removal goes through [Document.DeleteSubRange]
// and restarts the scan, so the result has no duplicate segments left
// and a second call returns 0.
func (doc *Document) MergePaths(epsilon float32) int {
	total := 0
	for doc.mergeOne(epsilon) {
		total++
	}
	if total > 0 {
		slog.Info("svg: merged duplicate path segments", "removed", total)
	}
	return total
}

// mergeOne removes the first duplicate segment found, returning
// whether it removed one.
func (doc *Document) mergeOne(epsilon float32) bool {
	for ai, ea := range doc.Elements {
		pa := ea.Path()
		if pa == nil {
			continue
		}
		for _, sa := range pa.Segments() {
			for bi, eb := range doc.Elements {
				pb := eb.Path()
				if bi == ai || pb == nil {
					continue
				}
				for _, sb := range pb.Segments() {
					if !segmentsMatch(sa, sb, epsilon) {
						continue
					}
					n1 := doc.UniqueID("path")
					n2 := doc.UniqueID("path", n1)
					slog.Debug("svg: removing duplicate segment", "from", eb.ID, "segment", sb.Index, "matches", ea.ID)
					if doc.DeleteSubRange(bi, sb.Index, sb.Index, n1, n2) {
						return true
					}
				}
			}
		}
	}
	return false
}

// segmentsMatch returns whether the endpoints of a and b are within
// epsilon of each other, in the same or the opposite direction.
func segmentsMatch(a, b PathSegment, epsilon float32) bool {
	near := func(p, q math32.Vector2) bool { return p.DistanceTo(q) <= epsilon }
	return (near(a.Start, b.Start) && near(a.End, b.End)) ||
		(near(a.Start, b.End) && near(a.End, b.Start))
}
