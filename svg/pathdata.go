// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/math32"
)

// PathCmds are the commands of a [PathVertex].
type PathCmds int32

const (
	// PcMoveAbs is an absolute anchor: the first vertex of every path,
	// and an interior subpath start given with M.
	PcMoveAbs PathCmds = iota

	// PcMoveRel is an interior subpath start given with m.
	PcMoveRel

	// PcLineRel is a relative lineto.
	PcLineRel

	// PcHorizRel is a relative horizontal lineto; Pos.Y is zero.
	PcHorizRel

	// PcVertRel is a relative vertical lineto; Pos.X is zero.
	PcVertRel

	// PcCubicRel is a relative cubic Bezier; Args are the two control points.
	PcCubicRel

	// PcSmoothCubicRel is a relative smooth cubic Bezier; Args is the second control point.
	PcSmoothCubicRel

	// PcQuadRel is a relative quadratic Bezier; Args is the control point.
	PcQuadRel

	// PcSmoothQuadRel is a relative smooth quadratic Bezier, with no Args.
	PcSmoothQuadRel

	// PcArcRel is a relative elliptical arc; Args are rx, ry,
	// x-axis-rotation (degrees), large-arc-flag and sweep-flag.
	PcArcRel

	// PcClose is a closepath that is not the closing edge of the whole
	// path; Pos returns to the subpath start.
	PcClose

	// PathCmdsN is the number of path commands.
	PathCmdsN
)

var pathCmdLetters = [...]byte{'M', 'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a', 'z'}

// Letter returns the SVG path data letter for the command.
func (pc PathCmds) Letter() byte {
	if pc < 0 || pc >= PathCmdsN {
		return '?'
	}
	return pathCmdLetters[pc]
}

func (pc PathCmds) String() string {
	return string(pc.Letter())
}

// IsMove returns true for the two move commands.
func (pc PathCmds) IsMove() bool {
	return pc == PcMoveAbs || pc == PcMoveRel
}

// PathVertex is one vertex of a [Path].
type PathVertex struct {

	// Cmd is the command that reaches this vertex.
	Cmd PathCmds

	// Pos is the absolute position for a [PcMoveAbs] vertex, and
	// otherwise the delta from the previous resolved position.
	Pos math32.Vector2

	// Args are the extra curve or arc operands, relative to the
	// previous resolved position where they are coordinates.
	Args []float32

	// Selected marks the segment from this vertex to the next one.
	Selected bool
}

// ResolveAbsolute returns the absolute position of every vertex:
// a [PcMoveAbs] vertex resets the current position, and every other
// vertex adds its delta to it.
func ResolveAbsolute(vs []PathVertex) []math32.Vector2 {
	pts := make([]math32.Vector2, len(vs))
	var cur math32.Vector2
	for i, v := range vs {
		if v.Cmd == PcMoveAbs {
			cur = v.Pos
		} else {
			cur = cur.Add(v.Pos)
		}
		pts[i] = cur
	}
	return pts
}

// ErrPathSyntax is returned for malformed path data.
var ErrPathSyntax = errors.New("invalid path data")

// number of numeric operands per command letter
var pathArity = map[byte]int{
	'm': 2, 'l': 2, 't': 2,
	'h': 1, 'v': 1,
	'c': 6,
	's': 4, 'q': 4,
	'a': 7,
	'z': 0,
}

// ParsePathData parses SVG path data into vertices. The first vertex is
// always a [PcMoveAbs] anchor and the rest are relative. A closepath at the
// end of the data that closes the first subpath returns closed true; any
// other becomes a [PcClose] vertex. Extra operand groups repeat the previous
// command, with those after a moveto becoming linetos.
func ParsePathData(data string) ([]PathVertex, bool, error) {
	pp := pathParser{data: []byte(data)}
	if err := pp.parse(); err != nil {
		return nil, false, err
	}
	return pp.vs, pp.closed, nil
}

type pathParser struct {
	data   []byte
	pos    int
	vs     []PathVertex
	closed bool

	// current and subpath start positions
	cur, start math32.Vector2

	// index of the vertex that starts the current subpath
	subIdx int
}

func (pp *pathParser) errorf(format string, args ...any) error {
	return fmt.Errorf("svg.ParsePathData: %w: %s at offset %d in %q", ErrPathSyntax, fmt.Sprintf(format, args...), pp.pos, string(pp.data))
}

func (pp *pathParser) skip() {
	pp.pos = math32.SkipSeparators(pp.data, pp.pos)
}

func (pp *pathParser) atEnd() bool {
	pp.skip()
	return pp.pos >= len(pp.data)
}

// atNumber returns whether the next token is a number.
func (pp *pathParser) atNumber() bool {
	if pp.atEnd() {
		return false
	}
	c := pp.data[pp.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (pp *pathParser) number() (float32, error) {
	pp.skip()
	f, n := math32.ParseFloat32(pp.data[pp.pos:])
	if n == 0 {
		return 0, pp.errorf("expected number")
	}
	pp.pos += n
	return f, nil
}

// flag reads an arc flag, which is a single 0 or 1 that may be
// written without a following separator.
func (pp *pathParser) flag() (float32, error) {
	pp.skip()
	if pp.pos < len(pp.data) {
		switch pp.data[pp.pos] {
		case '0':
			pp.pos++
			return 0, nil
		case '1':
			pp.pos++
			return 1, nil
		}
	}
	return 0, pp.errorf("expected arc flag")
}

func (pp *pathParser) operands(lc byte) ([]float32, error) {
	ar := pathArity[lc]
	vals := make([]float32, ar)
	for i := range ar {
		var err error
		if lc == 'a' && (i == 3 || i == 4) {
			vals[i], err = pp.flag()
		} else {
			vals[i], err = pp.number()
		}
		if err != nil {
			return nil, err
		}
	}
	return vals, nil
}

func (pp *pathParser) parse() error {
	for !pp.atEnd() {
		c := pp.data[pp.pos]
		lc := c | 0x20
		if _, ok := pathArity[lc]; !ok {
			if pp.atNumber() {
				return pp.errorf("number without a command")
			}
			return pp.errorf("unknown command %q", c)
		}
		pp.pos++
		abs := c != lc
		if lc == 'z' {
			pp.closePath()
			continue
		}
		first := true
		for first || pp.atNumber() {
			vals, err := pp.operands(lc)
			if err != nil {
				return err
			}
			cmd := lc
			if lc == 'm' && !first {
				cmd = 'l'
			}
			pp.add(cmd, abs, vals)
			first = false
		}
	}
	return nil
}

// closePath handles z: a trailing z that closes the first subpath
// closes the path, and any other adds a vertex back to the subpath start.
func (pp *pathParser) closePath() {
	if pp.atEnd() && pp.subIdx == 0 {
		pp.closed = true
		return
	}
	if len(pp.vs) == 0 {
		return
	}
	pp.vs = append(pp.vs, PathVertex{Cmd: PcClose, Pos: pp.start.Sub(pp.cur)})
	pp.cur = pp.start
}

// add appends the vertex for one operand group of the given lower case
// command, converting absolute operands to deltas from the current position.
func (pp *pathParser) add(lc byte, abs bool, vals []float32) {
	org := pp.cur
	rel := func(i int) math32.Vector2 {
		v := math32.Vec2(vals[i], vals[i+1])
		if abs {
			v = v.Sub(org)
		}
		return v
	}
	relArgs := func(n int) []float32 {
		args := make([]float32, n)
		for i := 0; i < n; i += 2 {
			d := rel(i)
			args[i], args[i+1] = d.X, d.Y
		}
		return args
	}
	var v PathVertex
	switch lc {
	case 'm':
		d := rel(0)
		end := org.Add(d)
		if len(pp.vs) == 0 || abs {
			v = PathVertex{Cmd: PcMoveAbs, Pos: end}
		} else {
			v = PathVertex{Cmd: PcMoveRel, Pos: d}
		}
		pp.start = end
		pp.subIdx = len(pp.vs)
	case 'l':
		v = PathVertex{Cmd: PcLineRel, Pos: rel(0)}
	case 't':
		v = PathVertex{Cmd: PcSmoothQuadRel, Pos: rel(0)}
	case 'h':
		dx := vals[0]
		if abs {
			dx -= org.X
		}
		v = PathVertex{Cmd: PcHorizRel, Pos: math32.Vec2(dx, 0)}
	case 'v':
		dy := vals[0]
		if abs {
			dy -= org.Y
		}
		v = PathVertex{Cmd: PcVertRel, Pos: math32.Vec2(0, dy)}
	case 'c':
		v = PathVertex{Cmd: PcCubicRel, Pos: rel(4), Args: relArgs(4)}
	case 's':
		v = PathVertex{Cmd: PcSmoothCubicRel, Pos: rel(2), Args: relArgs(2)}
	case 'q':
		v = PathVertex{Cmd: PcQuadRel, Pos: rel(2), Args: relArgs(2)}
	case 'a':
		v = PathVertex{Cmd: PcArcRel, Pos: rel(5), Args: []float32{vals[0], vals[1], vals[2], vals[3], vals[4]}}
	}
	if len(pp.vs) == 0 && v.Cmd != PcMoveAbs {
		// data that does not start with a moveto starts at the origin
		pp.vs = append(pp.vs, PathVertex{Cmd: PcMoveAbs})
	}
	pp.vs = append(pp.vs, v)
	if v.Cmd == PcMoveAbs {
		pp.cur = v.Pos
	} else {
		pp.cur = org.Add(v.Pos)
	}
}

// closeTolerance is how far a resolved close vertex may be from its
// subpath start and still be written as z.
const closeTolerance = 1e-3

// PathDataString returns the SVG path data for the given vertices, in
// relative form: "m x,y" for the anchor followed by implicit lineto pairs,
// with other commands written with their relative letter, and " z" at
// the end when closed.
func PathDataString(vs []PathVertex, closed bool) string {
	if len(vs) == 0 {
		return ""
	}
	pts := ResolveAbsolute(vs)
	var sb strings.Builder
	sb.WriteString("m ")
	writePair(&sb, pts[0])
	start := pts[0]
	mode := byte('l')
	setMode := func(m byte) {
		if mode != m {
			sb.WriteByte(' ')
			sb.WriteByte(m)
			mode = m
		}
	}
	for i := 1; i < len(vs); i++ {
		v := vs[i]
		switch v.Cmd {
		case PcMoveAbs, PcMoveRel:
			sb.WriteString(" m")
			mode = 'l'
			sb.WriteByte(' ')
			writePair(&sb, pts[i].Sub(pts[i-1]))
			start = pts[i]
			continue
		case PcClose:
			if pts[i].IsNear(start, closeTolerance) {
				sb.WriteString(" z")
				mode = 'z'
				continue
			}
			// the subpath start moved in an edit, so z would go elsewhere
			setMode('l')
		}
		switch v.Cmd {
		case PcHorizRel:
			setMode('h')
			sb.WriteByte(' ')
			sb.WriteString(math32.FormatFloat(v.Pos.X))
			continue
		case PcVertRel:
			setMode('v')
			sb.WriteByte(' ')
			sb.WriteString(math32.FormatFloat(v.Pos.Y))
			continue
		case PcArcRel:
			setMode('a')
			writeArcArgs(&sb, v.Args)
		case PcClose:
		default:
			setMode(v.Cmd.Letter())
			for j := 0; j+1 < len(v.Args); j += 2 {
				sb.WriteByte(' ')
				writePair(&sb, math32.Vec2(v.Args[j], v.Args[j+1]))
			}
		}
		sb.WriteByte(' ')
		writePair(&sb, v.Pos)
	}
	if closed {
		sb.WriteString(" z")
	}
	return sb.String()
}

func writePair(sb *strings.Builder, v math32.Vector2) {
	sb.WriteString(math32.FormatFloat(v.X))
	sb.WriteByte(',')
	sb.WriteString(math32.FormatFloat(v.Y))
}

func writeArcArgs(sb *strings.Builder, args []float32) {
	if len(args) < 5 {
		return
	}
	sb.WriteByte(' ')
	writePair(sb, math32.Vec2(args[0], args[1]))
	sb.WriteByte(' ')
	sb.WriteString(math32.FormatFloat(args[2]))
	for _, f := range args[3:5] {
		if f != 0 {
			sb.WriteString(" 1")
		} else {
			sb.WriteString(" 0")
		}
	}
}
