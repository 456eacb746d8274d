// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.svg")
	has, err := FileExists(fn)
	assert.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, os.WriteFile(fn, []byte("<svg/>"), 0666))
	has, err = FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, has)

	has, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, has)

	has, err = FileExistsFS(os.DirFS(dir), "a.svg")
	assert.NoError(t, err)
	assert.True(t, has)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.svg")
	dst := filepath.Join(dir, "src.svg.bak")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0644))
	require.NoError(t, CopyFile(dst, src))
	b, err := os.ReadFile(dst)
	assert.NoError(t, err)
	assert.Equal(t, "content", string(b))

	assert.Error(t, CopyFile(dst, filepath.Join(dir, "missing.svg")))
}

func TestFilenames(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range []string{"b.svg", "a.SVG", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fn), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.svg"), 0755))
	assert.Equal(t, []string{"a.SVG", "b.svg"}, Filenames(dir, ".svg"))
	assert.Equal(t, []string{"a.SVG", "b.svg", "c.txt"}, Filenames(dir))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/tmp/x.svg", ExpandHome("/tmp/x.svg"))
	assert.NotEqual(t, "~/x.svg", ExpandHome("~/x.svg"))
}
