// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging level selection and the colored
// terminal printing used by svgedit.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default is
// [slog.LevelInfo], or [slog.LevelDebug] under the debug build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString returns the [slog.Level] named by the given string
// (debug, info, warn, error, case insensitive). An empty or unknown
// string returns [UserLevel] and false.
func LevelFromString(s string) (slog.Level, bool) {
	if s == "" {
		return UserLevel, false
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return UserLevel, false
	}
	return l, true
}

// SetDefaultLogger sets the default [slog] logger to a text handler
// on stderr filtered at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}
