// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol(t assert.TestingT, expected, actual, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math32.Abs(actual-expected) > tolerance {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal(t assert.TestingT, expected, actual float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}
