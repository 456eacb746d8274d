// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
	"strconv"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrNumberSyntax is returned when a number list contains
// text that cannot be scanned as a number.
var ErrNumberSyntax = errors.New("invalid number syntax")

// IsSeparator returns true for the characters that may separate
// numbers in a coordinate list: whitespace and commas.
func IsSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// SkipSeparators returns the index of the first non-separator
// byte in b at or after i.
func SkipSeparators(b []byte, i int) int {
	for i < len(b) && IsSeparator(b[i]) {
		i++
	}
	return i
}

// ParseFloat32 scans one number at the start of b, returning it and the
// number of bytes consumed. It returns 0 consumed if b does not start
// with a number. Numbers run together without separators split where
// the grammar allows, so "3-5" scans as 3 then -5.
func ParseFloat32(b []byte) (float32, int) {
	f, n := pstrconv.ParseFloat(b)
	return float32(f), n
}

// ReadPoints parses a list of numbers separated by any mix of commas
// and whitespace, such as an SVG points attribute or the arguments of
// a transform function.
func ReadPoints(s string) ([]float32, error) {
	b := []byte(s)
	var pts []float32
	i := SkipSeparators(b, 0)
	for i < len(b) {
		f, n := ParseFloat32(b[i:])
		if n == 0 {
			return pts, fmt.Errorf("math32.ReadPoints: %w at offset %d in %q", ErrNumberSyntax, i, s)
		}
		pts = append(pts, f)
		i = SkipSeparators(b, i+n)
	}
	return pts, nil
}

// FormatFloat returns the shortest text that round-trips the
// given float32, always with at least one digit after the decimal
// point (3 -> "3.0"). Negative zero is written as "0.0".
func FormatFloat(v float32) string {
	if v == 0 {
		return "0.0"
	}
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
