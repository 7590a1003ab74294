package kino

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DurationInfinite marks a reel that plays forever.
const DurationInfinite time.Duration = math.MaxInt64

// Processor edits a command list clone just before it is rasterized.
// Used for theme remapping and similar per-draw adjustments; the reel's
// own geometry is never touched.
type Processor interface {
	ProcessList(l *DrawCommandList)
}

// Reel is a self-contained animatable visual source. Concrete reels
// wrap vector images ([ImageReel]), frame sequences ([SequenceReel]),
// raster images ([RasterReel]), or compose other reels
// ([TransformReel]); all are interchangeable anywhere a Reel is
// expected.
//
// Reels are driven externally: a frame loop (usually via [Player])
// feeds monotonically increasing elapsed times into SetElapsed, whose
// return value tells the caller whether anything visible changed and a
// redraw is worth scheduling.
type Reel interface {
	// Size returns the reel's native dimensions.
	Size() Size
	// Duration returns the reel's play time, or DurationInfinite.
	Duration() time.Duration
	// Elapsed returns the last value passed to SetElapsed.
	Elapsed() time.Duration
	// SetElapsed moves the playback cursor and reports whether the
	// reel's visual output changed.
	SetElapsed(elapsed time.Duration) bool
	// Draw renders the reel into g at the given offset.
	Draw(g *Graphics, offset Point)
	// DrawProcessed renders like Draw but runs p over a copy of the
	// command list first. Raster-only reels ignore p.
	DrawProcessed(g *Graphics, offset Point, p Processor)
	// CommandList returns the reel's current vector geometry, or nil
	// for raster-only sources. Callers must not mutate the result.
	CommandList() *DrawCommandList
}

// Disposer is implemented by reels that own resources. TransformReel
// disposes owned child reels through this interface.
type Disposer interface {
	Dispose()
}

// drawListProcessed clones list, runs the processor, and draws the
// clone. Shared by the vector-backed reels.
func drawListProcessed(g *Graphics, list *DrawCommandList, offset Point, p Processor) {
	if p == nil {
		g.DrawList(list, offset)
		return
	}
	clone := list.Clone()
	p.ProcessList(clone)
	g.DrawList(clone, offset)
}

// ImageReel is a static vector image reel. Its duration is zero and
// SetElapsed never reports a change.
type ImageReel struct {
	image   *DrawCommandImage
	elapsed time.Duration
}

// NewImageReel wraps a vector image in a reel.
func NewImageReel(img *DrawCommandImage) *ImageReel {
	return &ImageReel{image: img}
}

// Size returns the image's view box.
func (r *ImageReel) Size() Size { return r.image.ViewBox }

// Duration returns zero: a static image has nothing to play.
func (r *ImageReel) Duration() time.Duration { return 0 }

// Elapsed returns the stored playback cursor.
func (r *ImageReel) Elapsed() time.Duration { return r.elapsed }

// SetElapsed stores the cursor and reports no visual change.
func (r *ImageReel) SetElapsed(elapsed time.Duration) bool {
	r.elapsed = elapsed
	return false
}

// Draw renders the image's command list at offset.
func (r *ImageReel) Draw(g *Graphics, offset Point) {
	g.DrawList(&r.image.List, offset)
}

// DrawProcessed renders the image through a processor.
func (r *ImageReel) DrawProcessed(g *Graphics, offset Point, p Processor) {
	drawListProcessed(g, &r.image.List, offset, p)
}

// CommandList returns the image's command list.
func (r *ImageReel) CommandList() *DrawCommandList { return &r.image.List }

// SequenceReel plays a frame sequence. The elapsed cursor selects the
// current frame; a PlayCountInfinite sequence loops forever.
type SequenceReel struct {
	seq     *DrawCommandSequence
	elapsed time.Duration
	frame   int
}

// NewSequenceReel wraps a frame sequence in a reel.
func NewSequenceReel(seq *DrawCommandSequence) *SequenceReel {
	return &SequenceReel{seq: seq}
}

// Size returns the sequence's view box.
func (r *SequenceReel) Size() Size { return r.seq.ViewBox }

// Duration returns the total play time across all repeats, or
// DurationInfinite for looping sequences.
func (r *SequenceReel) Duration() time.Duration {
	if r.seq.PlayCount == PlayCountInfinite {
		return DurationInfinite
	}
	return r.seq.TotalDuration() * time.Duration(r.seq.PlayCount)
}

// Elapsed returns the stored playback cursor.
func (r *SequenceReel) Elapsed() time.Duration { return r.elapsed }

// SetElapsed advances to the frame covering elapsed and reports
// whether the visible frame changed.
func (r *SequenceReel) SetElapsed(elapsed time.Duration) bool {
	r.elapsed = elapsed
	frame := r.frameAt(elapsed)
	if frame == r.frame {
		return false
	}
	r.frame = frame
	return true
}

// frameAt maps an elapsed time onto a frame index, wrapping looping
// sequences and clamping finished ones to the last frame.
func (r *SequenceReel) frameAt(elapsed time.Duration) int {
	if len(r.seq.Frames) == 0 {
		return 0
	}
	total := r.seq.TotalDuration()
	if total <= 0 {
		return 0
	}
	if r.seq.PlayCount == PlayCountInfinite {
		elapsed %= total
	} else if elapsed >= total*time.Duration(r.seq.PlayCount) {
		return len(r.seq.Frames) - 1
	} else {
		elapsed %= total
	}
	var acc time.Duration
	for i := range r.seq.Frames {
		acc += r.seq.Frames[i].Duration
		if elapsed < acc {
			return i
		}
	}
	return len(r.seq.Frames) - 1
}

// Draw renders the current frame at offset.
func (r *SequenceReel) Draw(g *Graphics, offset Point) {
	if list := r.CommandList(); list != nil {
		g.DrawList(list, offset)
	}
}

// DrawProcessed renders the current frame through a processor.
func (r *SequenceReel) DrawProcessed(g *Graphics, offset Point, p Processor) {
	if list := r.CommandList(); list != nil {
		drawListProcessed(g, list, offset, p)
	}
}

// CommandList returns the current frame's command list, or nil for an
// empty sequence.
func (r *SequenceReel) CommandList() *DrawCommandList {
	if len(r.seq.Frames) == 0 {
		return nil
	}
	return &r.seq.Frames[r.frame].List
}

// RasterReel wraps a raster image as a reel. It has no vector geometry:
// CommandList returns nil, and transform reels fall back to positional
// interpolation when composing it.
type RasterReel struct {
	img     *ebiten.Image
	elapsed time.Duration
}

// NewRasterReel wraps an Ebitengine image in a reel.
func NewRasterReel(img *ebiten.Image) *RasterReel {
	return &RasterReel{img: img}
}

// Size returns the image bounds.
func (r *RasterReel) Size() Size {
	b := r.img.Bounds()
	return Size{b.Dx(), b.Dy()}
}

// Duration returns zero: a raster image has nothing to play.
func (r *RasterReel) Duration() time.Duration { return 0 }

// Elapsed returns the stored playback cursor.
func (r *RasterReel) Elapsed() time.Duration { return r.elapsed }

// SetElapsed stores the cursor and reports no visual change.
func (r *RasterReel) SetElapsed(elapsed time.Duration) bool {
	r.elapsed = elapsed
	return false
}

// Draw blits the image at offset.
func (r *RasterReel) Draw(g *Graphics, offset Point) {
	g.DrawImage(r.img, offset)
}

// DrawProcessed blits the image at offset; the processor does not
// apply to raster sources.
func (r *RasterReel) DrawProcessed(g *Graphics, offset Point, _ Processor) {
	g.DrawImage(r.img, offset)
}

// CommandList returns nil: raster reels carry no vector geometry.
func (r *RasterReel) CommandList() *DrawCommandList { return nil }
