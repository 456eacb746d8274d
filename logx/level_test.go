// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	l, ok := LevelFromString("debug")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, l)
	l, ok = LevelFromString("WARN")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, l)
	l, ok = LevelFromString("loud")
	assert.False(t, ok)
	assert.Equal(t, UserLevel, l)
	_, ok = LevelFromString("")
	assert.False(t, ok)
}

func TestPrintLevel(t *testing.T) {
	var buf bytes.Buffer
	oout, olev := Output, UserLevel
	defer func() { Output, UserLevel = oout, olev }()
	Output = &buf
	UserLevel = slog.LevelWarn

	PrintlnInfo("hidden")
	assert.Empty(t, buf.String())
	PrintlnError("shown")
	assert.Contains(t, buf.String(), "shown")
}
