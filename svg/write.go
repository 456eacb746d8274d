// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/base/fsx"
	"cogentcore.org/svgedit/math32"
)

// Save writes the document to the given SVG file. If Backup is on and
// the file exists, it is first copied to fname.bak; a failed backup is
// logged and does not stop the save. On success Dirty is cleared and
// Filename is set. Rect and Line elements are not written.
func (doc *Document) Save(fname string) error {
	if doc.Backup {
		if has, _ := fsx.FileExists(fname); has {
			if err := fsx.CopyFile(fname+".bak", fname); err != nil {
				slog.Warn("svg.Save: could not write backup", "file", fname+".bak", "err", err)
			}
		}
	}
	var b bytes.Buffer
	if err := doc.WriteXML(&b, true); err != nil {
		return errors.Log(err)
	}
	if err := os.WriteFile(fname, b.Bytes(), 0666); err != nil {
		return errors.Log(err)
	}
	doc.Dirty = false
	doc.Filename = fname
	return nil
}

// Export writes only the path elements to the given SVG file, only the
// visible ones if visibleOnly. It writes no viewBox and no backup, and
// leaves the document state unchanged.
func (doc *Document) Export(fname string, visibleOnly bool) error {
	var b bytes.Buffer
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	root := xml.StartElement{Name: xml.Name{Local: "svg"}}
	XMLAddAttr(&root.Attr, "xmlns", NamespaceSVG)
	err := encodeElements(enc, root, doc.Elements, func(el *Element) bool {
		return el.Kind() == KindPath && (!visibleOnly || el.Visible)
	})
	if err != nil {
		return errors.Log(err)
	}
	if err := os.WriteFile(fname, b.Bytes(), 0666); err != nil {
		return errors.Log(err)
	}
	return nil
}

// WriteXML writes the document as SVG, with a viewBox of the floor of
// the minimum and the ceiling of the maximum of the extents.
// Rect and Line elements are not written.
func (doc *Document) WriteXML(w io.Writer, indent bool) error {
	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	root := xml.StartElement{Name: xml.Name{Local: "svg"}}
	XMLAddAttr(&root.Attr, "xmlns", NamespaceSVG)
	vb := doc.Extents().ToRect()
	XMLAddAttr(&root.Attr, "viewBox", fmt.Sprintf("%d %d %d %d", vb.Min.X, vb.Min.Y, vb.Max.X, vb.Max.Y))
	var pre []xml.Token
	for _, td := range []struct{ name, text string }{{"title", doc.Title}, {"desc", doc.Desc}} {
		if td.text == "" {
			continue
		}
		se := xml.StartElement{Name: xml.Name{Local: td.name}}
		pre = append(pre, se, xml.CharData(td.text), se.End())
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, t := range pre {
		if err := enc.EncodeToken(t); err != nil {
			return err
		}
	}
	return encodeBody(enc, root, doc.Elements, func(el *Element) bool { return true })
}

func encodeElements(enc *xml.Encoder, root xml.StartElement, els []*Element, include func(el *Element) bool) error {
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	return encodeBody(enc, root, els, include)
}

// encodeBody writes the included elements and the end of root.
func encodeBody(enc *xml.Encoder, root xml.StartElement, els []*Element, include func(el *Element) bool) error {
	for _, el := range els {
		if !include(el) {
			continue
		}
		se, ok := MarshalElement(el)
		if !ok {
			slog.Debug("svg: element kind is not written", "id", el.ID, "kind", el.Kind())
			continue
		}
		if err := enc.EncodeToken(se); err != nil {
			return err
		}
		if err := enc.EncodeToken(se.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

// MarshalElement returns the start element for the given element, with
// its id, style and geometry attributes. It returns false for kinds that
// are not written.
func MarshalElement(el *Element) (xml.StartElement, bool) {
	se := xml.StartElement{}
	if el.ID != "" {
		XMLAddAttr(&se.Attr, "id", el.ID)
	}
	if el.Style != "" {
		XMLAddAttr(&se.Attr, "style", el.Style)
	}
	switch sh := el.Shape.(type) {
	case *Path:
		se.Name.Local = "path"
		XMLAddAttr(&se.Attr, "d", sh.Data())
	case *Polyline:
		se.Name.Local = "polyline"
		XMLAddAttr(&se.Attr, "points", PointsString(sh.Points))
	case *Polygon:
		se.Name.Local = "polygon"
		XMLAddAttr(&se.Attr, "points", PointsString(sh.Points))
	default:
		return se, false
	}
	return se, true
}

// PointsString returns the points attribute text for the given points.
func PointsString(pts []math32.Vector2) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writePair(&sb, p)
	}
	return sb.String()
}

func XMLAddAttr(attr *[]xml.Attr, name, val string) {
	at := xml.Attr{}
	at.Name.Local = name
	at.Value = val
	*attr = append(*attr, at)
}
