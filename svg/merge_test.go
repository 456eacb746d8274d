// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSharedEdge(t *testing.T) {
	doc := readString(t, `<svg>
		<path id="a" d="M0,0 L10,0 L10,10 L0,10 z"/>
		<path id="b" d="M10,0 L20,0 L20,10 L10,10 z"/>
	</svg>`)
	assert.Equal(t, 1, doc.MergePaths(0.01))
	require.Equal(t, 2, doc.ElementCount())
	a, b := doc.Element(0).Path(), doc.Element(1).Path()
	assert.True(t, a.Closed)
	assert.False(t, b.Closed)
	assert.Equal(t, pts(10, 0, 20, 0, 20, 10, 10, 10), b.Coords())
	assert.True(t, doc.Dirty)

	assert.Equal(t, 0, doc.MergePaths(0.01))
}

func TestMergeEpsilon(t *testing.T) {
	src := `<svg>
		<path d="M0,0 L10,0 L10,10 L0,10 z"/>
		<path d="M10.05,0 L20,0 L20,10 L10.05,10 z"/>
	</svg>`
	doc := readString(t, src)
	assert.Equal(t, 0, doc.MergePaths(0.01))
	assert.False(t, doc.Dirty)
	assert.Equal(t, 1, doc.MergePaths(0.1))
}

func TestMergeSplitsInterior(t *testing.T) {
	doc := readString(t, `<svg>
		<path id="a" d="M0,0 L10,0"/>
		<path id="b" style="stroke:blue" d="M-10,0 L0,0 L10,0 L20,0"/>
	</svg>`)
	assert.Equal(t, 1, doc.MergePaths(0.01))
	require.Equal(t, 3, doc.ElementCount())
	assert.Equal(t, "a", doc.Element(0).ID)
	assert.Equal(t, "path1", doc.Element(1).ID)
	assert.Equal(t, "path2", doc.Element(2).ID)
	assert.Equal(t, "stroke:blue", doc.Element(2).Style)
	assert.Equal(t, pts(-10, 0, 0, 0), doc.Element(1).Shape.Coords())
	assert.Equal(t, pts(10, 0, 20, 0), doc.Element(2).Shape.Coords())
}

func TestMergeIdentical(t *testing.T) {
	doc := readString(t, `<svg><path id="a" d="M0,0 L10,0"/><path id="b" d="M10,0 L0,0"/></svg>`)
	assert.Equal(t, 1, doc.MergePaths(0.01))
	require.Equal(t, 1, doc.ElementCount())
	assert.Equal(t, "a", doc.Element(0).ID)
}

func TestMergeIgnoresNonPaths(t *testing.T) {
	doc := readString(t, `<svg><path d="M0,0 L10,0"/><polyline points="0,0 10,0"/><line x2="10"/></svg>`)
	assert.Equal(t, 0, doc.MergePaths(0.01))
	assert.Equal(t, 3, doc.ElementCount())
}
