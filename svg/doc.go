// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg provides a headless editing engine for a flat list of
vector elements read from a subset of SVG.

A [Document] holds an ordered list of [Element]s, each carrying one
[Shape]: a [Path], [Polyline], [Polygon], [Rect] or [Line]. Groups are
flattened on load. The package supports point and rectangle selection,
affine transforms of the whole document, bounding box maintenance, and
path editing: [Document.DeleteSubRange] removes a run of path segments,
splitting the path when needed, and [Document.MergePaths] removes path
segments that duplicate a segment of another path.

Path vertices are stored as one absolute anchor followed by relative
deltas (see [PathVertex]). Curve and arc operands are carried along and
transformed, but curves are never evaluated: extents and hit testing use
segment endpoints only.

Documents are saved with [Document.Save], which writes paths, polylines
and polygons. Rects and lines are read but not written.
*/
package svg
