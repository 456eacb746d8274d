// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings for the svgedit tool,
// read from TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/svgedit/base/fsx"
	"cogentcore.org/svgedit/base/iox/tomlx"
	"cogentcore.org/svgedit/base/iox/yamlx"
	"cogentcore.org/svgedit/logx"
	"cogentcore.org/svgedit/svg"
)

// ErrFormat is returned for a config file whose extension is
// not .toml, .yaml or .yml.
var ErrFormat = fmt.Errorf("config: unsupported file format")

// Config is the main config struct that contains all of the
// configuration options for the svgedit tool.
type Config struct {

	// PixelSize is the size of one device pixel in drawing units,
	// which scales the selection tolerance.
	PixelSize float32 `toml:"pixel_size" yaml:"pixel_size"`

	// MergeEpsilon is how close two segment endpoints must be
	// for merge to treat the segments as duplicates.
	MergeEpsilon float32 `toml:"merge_epsilon" yaml:"merge_epsilon"`

	// Backup is whether saving over an existing file first copies
	// it to a .bak file.
	Backup bool `toml:"backup" yaml:"backup"`

	// VisibleOnly is whether export only writes visible paths.
	VisibleOnly bool `toml:"visible_only" yaml:"visible_only"`

	// LogLevel is the logging level: debug, info, warn or error.
	// Empty keeps the default.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		PixelSize:    1,
		MergeEpsilon: 0.01,
		Backup:       true,
	}
}

// Open returns the defaults overridden by the given config file,
// which is TOML or YAML by extension. A leading ~ is expanded.
func Open(path string) (*Config, error) {
	c := Defaults()
	if err := c.Open(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads the given config file into c, overriding only the
// settings the file names.
func (c *Config) Open(path string) error {
	path = fsx.ExpandHome(path)
	var err error
	switch format(path) {
	case "toml":
		err = tomlx.Open(c, path)
	case "yaml":
		err = yamlx.Open(c, path)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, path)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	slog.Debug("config: loaded", "file", path)
	return nil
}

// Save writes c to the given file, TOML or YAML by extension.
func (c *Config) Save(path string) error {
	path = fsx.ExpandHome(path)
	switch format(path) {
	case "toml":
		return tomlx.Save(c, path)
	case "yaml":
		return yamlx.Save(c, path)
	}
	return fmt.Errorf("%w: %q", ErrFormat, path)
}

// Level returns the configured log level, or [logx.UserLevel]
// if none is set or it is not recognized.
func (c *Config) Level() slog.Level {
	l, ok := logx.LevelFromString(c.LogLevel)
	if !ok && c.LogLevel != "" {
		slog.Warn("config: unknown log level", "level", c.LogLevel)
	}
	return l
}

// Apply sets the document settings from c. A non-positive
// PixelSize is ignored.
func (c *Config) Apply(doc *svg.Document) {
	if c.PixelSize > 0 {
		doc.PixelSize = c.PixelSize
	}
	doc.Backup = c.Backup
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
