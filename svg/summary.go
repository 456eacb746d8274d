// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Summary is an overview of a document, for reporting.
type Summary struct {
	File     string         `yaml:"file"`
	Title    string         `yaml:"title,omitempty"`
	Elements int            `yaml:"elements"`
	Kinds    map[string]int `yaml:"kinds"`
	Hidden   int            `yaml:"hidden"`
	Selected int            `yaml:"selected"`
	Vertices int            `yaml:"vertices"`

	// Extents is min x, min y, max x, max y.
	Extents [4]float32 `yaml:"extents,flow"`
}

// Summary returns the summary of the document.
func (doc *Document) Summary() Summary {
	s := Summary{File: doc.Filename, Title: doc.Title, Elements: len(doc.Elements), Kinds: map[string]int{}}
	for _, el := range doc.Elements {
		s.Kinds[el.Kind().String()]++
		if !el.Visible {
			s.Hidden++
		}
		if el.Selected {
			s.Selected++
		}
		s.Vertices += len(el.Shape.Coords())
	}
	ext := doc.Extents()
	s.Extents = [4]float32{ext.Min.X, ext.Min.Y, ext.Max.X, ext.Max.Y}
	return s
}
