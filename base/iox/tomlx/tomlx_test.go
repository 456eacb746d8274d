// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Value float32
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "t.toml")
	require.NoError(t, Save(&testStruct{Name: "a", Value: 1.5}, fn))
	var ts testStruct
	require.NoError(t, Open(&ts, fn))
	assert.Equal(t, testStruct{Name: "a", Value: 1.5}, ts)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("Name = \"a\"\nValue = 1.0\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("Value = 2.0\n"), 0644))
	var ts testStruct
	require.NoError(t, OpenFiles(&ts, a, b))
	assert.Equal(t, "a", ts.Name)
	assert.Equal(t, float32(2), ts.Value)

	assert.Error(t, OpenFiles(&ts, filepath.Join(dir, "missing.toml")))
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(&testStruct{Name: "x"})
	require.NoError(t, err)
	var ts testStruct
	require.NoError(t, ReadBytes(&ts, b))
	assert.Equal(t, "x", ts.Name)
}
