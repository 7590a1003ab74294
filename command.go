package kino

import (
	"image/color"
	"time"
)

// Color is an 8-bit ARGB palette color with two bits per channel, the
// native color format of draw commands. Color comparisons are exact
// equality; there is no tolerance matching.
type Color uint8

// Common colors.
const (
	ColorClear Color = 0x00
	ColorBlack Color = 0xC0
	ColorWhite Color = 0xFF
)

// RGBA expands the 2-bit channels to 8 bits each.
func (c Color) RGBA() color.RGBA {
	expand := func(v Color) uint8 { return uint8(v&0x3) * 85 }
	return color.RGBA{
		A: expand(c >> 6),
		R: expand(c >> 4),
		G: expand(c >> 2),
		B: expand(c),
	}
}

// Visible reports whether the color has any opacity.
func (c Color) Visible() bool { return c>>6 != 0 }

// Point is a 2D position with sub-pixel precision. Used both for
// draw-command vertices and for draw offsets.
type Point struct {
	X, Y Fixed16
}

// Pt returns the point at integer coordinates (x, y).
func Pt(x, y int) Point {
	return Point{Fixed16FromInt(x), Fixed16FromInt(y)}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is an integer width and height.
type Size struct {
	Width, Height int
}

// Rect is an integer axis-aligned rectangle with its origin at the
// top-left and Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point { return Pt(r.X, r.Y) }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// Center returns the rectangle's center point, rounding half-pixels
// down via fixed-point halving.
func (r Rect) Center() Point {
	return Point{
		X: Fixed16FromInt(r.X) + Fixed16FromInt(r.Width)/2,
		Y: Fixed16FromInt(r.Y) + Fixed16FromInt(r.Height)/2,
	}
}

// CommandKind distinguishes draw command primitives.
type CommandKind uint8

// Draw command kinds.
const (
	CommandInvalid CommandKind = iota
	CommandPath                // stroked/filled polyline, integer endpoints
	CommandCircle              // circle at Points[0] with Radius
	CommandPrecisePath         // path with sub-pixel endpoints
)

// DrawCommand is one path or circle primitive inside a vector image: an
// ordered point sequence plus stroke width, stroke color, and fill
// color.
type DrawCommand struct {
	Kind        CommandKind
	Hidden      bool
	StrokeColor Color
	FillColor   Color
	StrokeWidth uint8
	Radius      Fixed16 // circle commands only
	PathOpen    bool    // leave the path unclosed when stroking
	Points      []Point
}

// Clone returns a deep copy of the command.
func (c *DrawCommand) Clone() DrawCommand {
	out := *c
	out.Points = make([]Point, len(c.Points))
	copy(out.Points, c.Points)
	return out
}

// Equal reports whether two commands are identical, points included.
func (c *DrawCommand) Equal(o *DrawCommand) bool {
	if c.Kind != o.Kind || c.Hidden != o.Hidden ||
		c.StrokeColor != o.StrokeColor || c.FillColor != o.FillColor ||
		c.StrokeWidth != o.StrokeWidth || c.Radius != o.Radius ||
		c.PathOpen != o.PathOpen || len(c.Points) != len(o.Points) {
		return false
	}
	for i := range c.Points {
		if c.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}

// DrawCommandList is an ordered sequence of draw commands. Transform
// operators mutate lists in place; the TransformReel machinery always
// hands them a caller-owned copy, never an original.
type DrawCommandList struct {
	Commands []DrawCommand
}

// Clone returns a deep copy of the list.
func (l *DrawCommandList) Clone() *DrawCommandList {
	out := &DrawCommandList{Commands: make([]DrawCommand, len(l.Commands))}
	for i := range l.Commands {
		out.Commands[i] = l.Commands[i].Clone()
	}
	return out
}

// CopyFrom overwrites l with a deep copy of src, reusing l's command
// and point storage where capacities allow.
func (l *DrawCommandList) CopyFrom(src *DrawCommandList) {
	if cap(l.Commands) < len(src.Commands) {
		l.Commands = make([]DrawCommand, len(src.Commands))
	} else {
		l.Commands = l.Commands[:len(src.Commands)]
	}
	for i := range src.Commands {
		pts := l.Commands[i].Points
		l.Commands[i] = src.Commands[i]
		if cap(pts) < len(src.Commands[i].Points) {
			pts = make([]Point, len(src.Commands[i].Points))
		} else {
			pts = pts[:len(src.Commands[i].Points)]
		}
		copy(pts, src.Commands[i].Points)
		l.Commands[i].Points = pts
	}
}

// Equal reports whether two lists hold identical commands.
func (l *DrawCommandList) Equal(o *DrawCommandList) bool {
	if len(l.Commands) != len(o.Commands) {
		return false
	}
	for i := range l.Commands {
		if !l.Commands[i].Equal(&o.Commands[i]) {
			return false
		}
	}
	return true
}

// PointCount returns the total number of points across all commands.
// Caches are keyed on this value.
func (l *DrawCommandList) PointCount() int {
	n := 0
	for i := range l.Commands {
		n += len(l.Commands[i].Points)
	}
	return n
}

// EachPoint calls fn for every point in iteration order with a mutable
// pointer. The sequential index passed to fn matches the ordering used
// by [IndexLookup].
func (l *DrawCommandList) EachPoint(fn func(index int, p *Point)) {
	index := 0
	for i := range l.Commands {
		pts := l.Commands[i].Points
		for j := range pts {
			fn(index, &pts[j])
			index++
		}
	}
}

// DrawCommandImage is a static vector image: a view box plus one
// command list.
type DrawCommandImage struct {
	ViewBox Size
	List    DrawCommandList
}

// DrawCommandFrame is one frame of an animated sequence.
type DrawCommandFrame struct {
	Duration time.Duration
	List     DrawCommandList
}

// PlayCountInfinite makes a sequence loop forever.
const PlayCountInfinite = -1

// DrawCommandSequence is an animated vector image: a view box and an
// ordered frame list played PlayCount times.
type DrawCommandSequence struct {
	ViewBox   Size
	PlayCount int
	Frames    []DrawCommandFrame
}

// TotalDuration returns the play time of one full pass through the
// frames.
func (s *DrawCommandSequence) TotalDuration() time.Duration {
	var total time.Duration
	for i := range s.Frames {
		total += s.Frames[i].Duration
	}
	return total
}
