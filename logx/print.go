// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// Output is where the Print functions write. It defaults to stdout.
var Output io.Writer = os.Stdout

var profile = termenv.EnvColorProfile()

// colors for each level, in ANSI 256 color space
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "244",
	slog.LevelInfo:  "39",
	slog.LevelWarn:  "214",
	slog.LevelError: "196",
}

// ApplyColor returns the given string styled in the color associated
// with the given level, if the terminal supports color.
func ApplyColor(level slog.Level, str string) string {
	c, ok := levelColors[level]
	if !ok {
		return str
	}
	return termenv.String(str).Foreground(profile.Color(c)).String()
}

// Print prints the given values at the given level if it is at or above
// [UserLevel], colored for the level.
func Print(level slog.Level, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprint(Output, ApplyColor(level, fmt.Sprint(a...)))
}

// Println is like [Print] but adds a newline.
func Println(level slog.Level, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprintln(Output, ApplyColor(level, fmt.Sprint(a...)))
}

// Printf is like [Print] but formats.
func Printf(level slog.Level, format string, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprint(Output, ApplyColor(level, fmt.Sprintf(format, a...)))
}

// PrintlnDebug prints at [slog.LevelDebug].
func PrintlnDebug(a ...any) { Println(slog.LevelDebug, a...) }

// PrintlnInfo prints at [slog.LevelInfo].
func PrintlnInfo(a ...any) { Println(slog.LevelInfo, a...) }

// PrintlnWarn prints at [slog.LevelWarn].
func PrintlnWarn(a ...any) { Println(slog.LevelWarn, a...) }

// PrintlnError prints at [slog.LevelError].
func PrintlnError(a ...any) { Println(slog.LevelError, a...) }
