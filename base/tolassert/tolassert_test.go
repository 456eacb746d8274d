// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, 1, 1.00001, 0.0001))
	assert.True(t, Equal(t, 3.1415, 3.1416))

	mt := &mockT{}
	assert.False(t, EqualTol(mt, 1, 1.1, 0.01))
	assert.True(t, mt.failed)
}

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}
