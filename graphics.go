package kino

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Graphics is the draw context reels render into: an Ebitengine target
// plus the origin, in target coordinates, that the current reel is
// being drawn relative to. Global-mode transform reels read Origin to
// convert screen-space frames back into the target's space.
//
// A Graphics with a nil Target is a valid headless context: draw calls
// perform all their bookkeeping but rasterize nothing.
type Graphics struct {
	Target *ebiten.Image
	Origin Point

	// Antialias enables antialiased stroking and filling.
	Antialias bool
}

// NewGraphics returns a draw context targeting img with a zero origin.
func NewGraphics(img *ebiten.Image) *Graphics {
	return &Graphics{Target: img}
}

// whitePixel is the shared 1×1 image backing filled triangles.
// Created lazily so headless use never touches the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA())
	}
	return whitePixel
}

// DrawList rasterizes a command list at the given offset. Hidden
// commands are skipped; fills draw under strokes per command.
func (g *Graphics) DrawList(l *DrawCommandList, offset Point) {
	if g.Target == nil {
		return
	}
	for i := range l.Commands {
		cmd := &l.Commands[i]
		if cmd.Hidden {
			continue
		}
		switch cmd.Kind {
		case CommandCircle:
			g.drawCircle(cmd, offset)
		case CommandPath, CommandPrecisePath:
			g.drawPath(cmd, offset)
		}
	}
}

// DrawImage draws a raster image at the given offset.
func (g *Graphics) DrawImage(img *ebiten.Image, offset Point) {
	if g.Target == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(offset.X.Float(), offset.Y.Float())
	g.Target.DrawImage(img, op)
}

func (g *Graphics) drawCircle(cmd *DrawCommand, offset Point) {
	if len(cmd.Points) == 0 {
		return
	}
	c := cmd.Points[0].Add(offset)
	cx, cy := float32(c.X.Float()), float32(c.Y.Float())
	r := float32(cmd.Radius.Float())

	if cmd.FillColor.Visible() {
		vector.DrawFilledCircle(g.Target, cx, cy, r, cmd.FillColor.RGBA(), g.Antialias)
	}
	if cmd.StrokeColor.Visible() && cmd.StrokeWidth > 0 {
		vector.StrokeCircle(g.Target, cx, cy, r, float32(cmd.StrokeWidth), cmd.StrokeColor.RGBA(), g.Antialias)
	}
}

func (g *Graphics) drawPath(cmd *DrawCommand, offset Point) {
	n := len(cmd.Points)
	if n == 0 {
		return
	}

	if cmd.FillColor.Visible() && n >= 3 {
		g.fillFan(cmd, offset)
	}

	if !cmd.StrokeColor.Visible() || cmd.StrokeWidth == 0 {
		return
	}
	clr := cmd.StrokeColor.RGBA()
	width := float32(cmd.StrokeWidth)
	segments := n - 1
	if !cmd.PathOpen {
		segments = n
	}
	for i := 0; i < segments; i++ {
		a := cmd.Points[i].Add(offset)
		b := cmd.Points[(i+1)%n].Add(offset)
		vector.StrokeLine(g.Target,
			float32(a.X.Float()), float32(a.Y.Float()),
			float32(b.X.Float()), float32(b.Y.Float()),
			width, clr, g.Antialias)
	}
}

// fillFan fills a path with fan triangulation from its first vertex.
// Correct for convex outlines, which covers the icon set; concave
// fills would need a real tessellator.
func (g *Graphics) fillFan(cmd *DrawCommand, offset Point) {
	n := len(cmd.Points)
	fill := cmd.FillColor.RGBA()
	cr := float32(fill.R) / 255
	cg := float32(fill.G) / 255
	cb := float32(fill.B) / 255
	ca := float32(fill.A) / 255

	verts := make([]ebiten.Vertex, n)
	for i, p := range cmd.Points {
		q := p.Add(offset)
		verts[i] = ebiten.Vertex{
			DstX: float32(q.X.Float()), DstY: float32(q.Y.Float()),
			SrcX: 0, SrcY: 0,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	indices := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: g.Antialias}
	g.Target.DrawTriangles(verts, indices, ensureWhitePixel(), op)
}
