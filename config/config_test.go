// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/svgedit/logx"
	"cogentcore.org/svgedit/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenTOML(t *testing.T) {
	path := writeFile(t, "svgedit.toml", `
pixel_size = 2.5
backup = false
log_level = "debug"
`)
	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), c.PixelSize)
	assert.False(t, c.Backup)
	assert.Equal(t, float32(0.01), c.MergeEpsilon)
	assert.Equal(t, slog.LevelDebug, c.Level())
}

func TestOpenYAML(t *testing.T) {
	path := writeFile(t, "svgedit.YML", `
merge_epsilon: 0.5
visible_only: true
`)
	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), c.MergeEpsilon)
	assert.True(t, c.VisibleOnly)
	assert.True(t, c.Backup)
	assert.Equal(t, float32(1), c.PixelSize)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("settings.json")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.toml", "pixel_size = [")
	_, err = Open(bad)
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	c := Defaults()
	c.PixelSize = 4
	c.LogLevel = "warn"
	for _, name := range []string{"c.toml", "c.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, c.Save(path))
		got, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, c, got, name)
	}
	assert.ErrorIs(t, c.Save(filepath.Join(dir, "c.ini")), ErrFormat)
}

func TestLevel(t *testing.T) {
	c := Defaults()
	assert.Equal(t, logx.UserLevel, c.Level())
	c.LogLevel = "ERROR"
	assert.Equal(t, slog.LevelError, c.Level())
	c.LogLevel = "loud"
	assert.Equal(t, logx.UserLevel, c.Level())
}

func TestApply(t *testing.T) {
	doc := svg.NewDocument()
	c := Defaults()
	c.PixelSize = 3
	c.Backup = false
	c.Apply(doc)
	assert.Equal(t, float32(3), doc.PixelSize)
	assert.False(t, doc.Backup)

	c.PixelSize = 0
	c.Apply(doc)
	assert.Equal(t, float32(3), doc.PixelSize)
}
