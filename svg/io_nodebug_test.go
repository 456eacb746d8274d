// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package svg_test

import (
	"testing"

	"cogentcore.org/svgedit/math32"
	. "cogentcore.org/svgedit/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOddPointsDropped(t *testing.T) {
	doc := readString(t, `<svg><polyline points="0,0 10,10 5"/></svg>`)
	require.Equal(t, 1, doc.ElementCount())
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 10}}, doc.Element(0).Shape.(*Polyline).Points)
}
