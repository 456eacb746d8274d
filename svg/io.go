// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// svg parsing is adapted from github.com/srwiley/oksvg:
//
// Copyright 2017 The oksvg Authors. All rights reserved.
//
// created: 2/12/2017 by S.R.Wiley

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/base/fsx"
	"cogentcore.org/svgedit/math32"
	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
)

// this file contains the reading routines; see write.go for writing

// NamespaceSVG is the XML namespace of SVG elements.
const NamespaceSVG = "http://www.w3.org/2000/svg"

var (
	// ErrMissingAttr is returned when a required attribute is absent.
	ErrMissingAttr = errors.New("missing required attribute")

	// ErrBinary is returned when the input is a recognized binary format.
	ErrBinary = errors.New("not an SVG file")
)

// ignoredTags are elements that are skipped along with their content.
var ignoredTags = map[string]bool{
	"metadata": true,
	"defs":     true,
	"clipPath": true,
	"title":    true,
	"desc":     true,
	"style":    true,
}

// Open reads the document from the given SVG file.
// All errors are logged and also returned.
func (doc *Document) Open(fname string) error {
	fi, err := os.Stat(fname)
	if err != nil {
		doc.Elements = nil
		return errors.Log(err)
	}
	if fi.IsDir() {
		doc.Elements = nil
		return errors.Log(fmt.Errorf("svg.Open: file is a directory: %v", fname))
	}
	fp, err := os.Open(fname)
	if err != nil {
		doc.Elements = nil
		return errors.Log(err)
	}
	defer fp.Close()
	if err := doc.ReadXML(bufio.NewReader(fp)); err != nil {
		return err
	}
	doc.Filename = fname
	return nil
}

// OpenFS reads the document from the given SVG file in the given filesystem.
func (doc *Document) OpenFS(fsys fs.FS, fname string) error {
	if has, err := fsx.FileExistsFS(fsys, fname); err != nil || !has {
		doc.Elements = nil
		if err == nil {
			err = fmt.Errorf("svg.OpenFS: %w: %v", fs.ErrNotExist, fname)
		}
		return errors.Log(err)
	}
	fp, err := fsys.Open(fname)
	if err != nil {
		doc.Elements = nil
		return errors.Log(err)
	}
	defer fp.Close()
	if err := doc.ReadXML(bufio.NewReader(fp)); err != nil {
		return err
	}
	doc.Filename = fname
	return nil
}

// ReadXML reads SVG input, replacing any existing elements. Groups are
// flattened. Unknown elements outside of the ignored set and foreign
// namespaces cause a panic. Other errors leave the document empty and
// are logged and also returned.
func (doc *Document) ReadXML(reader io.Reader) error {
	doc.Elements = nil
	br := bufio.NewReader(reader)
	head, _ := br.Peek(262)
	if kind, _ := filetype.Match(head); kind != filetype.Unknown {
		return errors.Log(fmt.Errorf("svg.ReadXML: %w: content is %s", ErrBinary, kind.MIME.Value))
	}
	decoder := xml.NewDecoder(br)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	ld := &loader{decoder: decoder}
	if err := ld.read(); err != nil {
		return errors.Log(err)
	}
	doc.Elements = ld.elements
	doc.Title = ld.title
	doc.Desc = ld.desc
	doc.Dirty = false
	return nil
}

// loader holds the state of one ReadXML call.
type loader struct {
	decoder  *xml.Decoder
	elements []*Element
	title    string
	desc     string

	// depth of open svg and g elements
	depth int
}

func (ld *loader) read() error {
	for {
		t, err := ld.decoder.Token()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("svg.ReadXML: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			if err := ld.start(se); err != nil {
				return err
			}
		case xml.EndElement:
			if se.Name.Local == "svg" || se.Name.Local == "g" {
				ld.depth--
			}
		}
	}
}

func (ld *loader) start(se xml.StartElement) error {
	nm := se.Name.Local
	if se.Name.Space != "" && se.Name.Space != NamespaceSVG {
		return ld.decoder.Skip()
	}
	switch nm {
	case "svg":
		ld.depth++
		return nil
	case "g":
		ld.depth++
		if tr := attrValue(se, "transform"); tr != "" {
			slog.Debug("svg: group transform is not applied", "id", attrValue(se, "id"), "transform", ParseTransform(tr).String())
		}
		return nil
	case "title", "desc":
		if ld.depth != 1 {
			return ld.decoder.Skip()
		}
		var text string
		if err := ld.decoder.DecodeElement(&text, &se); err != nil {
			return fmt.Errorf("svg.ReadXML: %s: %w", nm, err)
		}
		if nm == "title" {
			ld.title = strings.TrimSpace(text)
		} else {
			ld.desc = strings.TrimSpace(text)
		}
		return nil
	}
	if ignoredTags[nm] {
		return ld.decoder.Skip()
	}
	sh, err := ld.shape(se)
	if err != nil {
		return err
	}
	if sh == nil {
		panic(fmt.Sprintf("svg.ReadXML: unrecognized element <%s>", nm))
	}
	id := attrValue(se, "id")
	style := attrValue(se, "style")
	el := NewElement(id, style, sh)
	el.Visible = !StyleHidden(style)
	ld.elements = append(ld.elements, el)
	// any content of a shape element is not used
	return ld.decoder.Skip()
}

// shape returns the geometry for a shape element, or nil if the
// element is not a shape.
func (ld *loader) shape(se xml.StartElement) (Shape, error) {
	nm := se.Name.Local
	id := attrValue(se, "id")
	switch nm {
	case "path":
		p, err := NewPath(attrValue(se, "d"))
		if err != nil {
			return nil, fmt.Errorf("svg.ReadXML: path %q: %w", id, err)
		}
		return p, nil
	case "polyline", "polygon":
		pts, err := readPointsAttr(nm, id, attrValue(se, "points"))
		if err != nil {
			return nil, err
		}
		if nm == "polygon" {
			return &Polygon{Points: pts}, nil
		}
		return &Polyline{Points: pts}, nil
	case "rect":
		var v [4]float32
		for i, an := range []string{"x", "y", "width", "height"} {
			s, has := attr(se, an)
			if !has {
				if i >= 2 {
					return nil, fmt.Errorf("svg.ReadXML: rect %q: %w: %s", id, ErrMissingAttr, an)
				}
				continue
			}
			f, err := parseNumber(s)
			if err != nil {
				return nil, fmt.Errorf("svg.ReadXML: rect %q: %s: %w", id, an, err)
			}
			v[i] = f
		}
		return &Rect{Pos: math32.Vec2(v[0], v[1]), Size: math32.Vec2(v[2], v[3])}, nil
	case "line":
		var v [4]float32
		for i, an := range []string{"x1", "y1", "x2", "y2"} {
			s, has := attr(se, an)
			if !has {
				continue
			}
			f, err := parseNumber(s)
			if err != nil {
				return nil, fmt.Errorf("svg.ReadXML: line %q: %s: %w", id, an, err)
			}
			v[i] = f
		}
		return &Line{Pos: math32.Vec2(v[0], v[1]), Size: math32.Vec2(v[2]-v[0], v[3]-v[1])}, nil
	}
	return nil, nil
}

// readPointsAttr parses a points attribute into pairs. An odd trailing
// number is logged and dropped, and panics under the debug build tag.
func readPointsAttr(nm, id, val string) ([]math32.Vector2, error) {
	nums, err := math32.ReadPoints(val)
	if err != nil {
		return nil, fmt.Errorf("svg.ReadXML: %s %q: %w", nm, id, err)
	}
	if len(nums)%2 != 0 {
		msg := fmt.Sprintf("svg.ReadXML: %s %q has an odd number of coordinates: %d", nm, id, len(nums))
		if debugAsserts {
			panic(msg)
		}
		slog.Error(msg)
		nums = nums[:len(nums)-1]
	}
	pts := make([]math32.Vector2, len(nums)/2)
	for i := range pts {
		pts[i].Set(nums[i*2], nums[i*2+1])
	}
	return pts, nil
}

// parseNumber parses a single number, allowing a px unit suffix.
func parseNumber(s string) (float32, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	nums, err := math32.ReadPoints(s)
	if err != nil {
		return 0, err
	}
	if len(nums) != 1 {
		return 0, fmt.Errorf("%w: expected one number in %q", math32.ErrNumberSyntax, s)
	}
	return nums[0], nil
}

func attr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func attrValue(se xml.StartElement, name string) string {
	v, _ := attr(se, name)
	return v
}
