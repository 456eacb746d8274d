// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// StyleProperties parses the declarations of an inline style attribute
// into a map from property name to value. Malformed declarations are
// logged at debug level and return what parsed before them.
func StyleProperties(style string) map[string]string {
	props := map[string]string{}
	style = strings.TrimSpace(style)
	if style == "" {
		return props
	}
	// the parser only keeps the value of a terminated declaration
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		slog.Debug("svg: invalid style", "style", style, "err", err)
	}
	for _, d := range decls {
		props[strings.ToLower(d.Property)] = strings.TrimSpace(d.Value)
	}
	return props
}

// StyleHidden returns whether the given style hides the element,
// with display:none or visibility:hidden.
func StyleHidden(style string) bool {
	props := StyleProperties(style)
	if strings.EqualFold(props["display"], "none") {
		return true
	}
	switch strings.ToLower(props["visibility"]) {
	case "hidden", "collapse":
		return true
	}
	return false
}
