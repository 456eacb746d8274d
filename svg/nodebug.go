// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package svg

// debugAsserts turns recoverable load problems into panics.
const debugAsserts = false
