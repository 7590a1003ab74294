package kino

import "math"

// Default fraction of the timeline each point spends moving.
var defaultPointDuration = Fixed32FromFloat(0.67)

// widthKeep is the identity stroke width endpoint.
var widthKeep = WidthOp{Op: StrokeWidthMultiply, Value: Fixed16One}

// ScaleSegmentedReel animates an icon from one frame to another with a
// per-point stagger: points near the delay origin move first and the
// rest ripple after them. Optional extras layer on top of the motion —
// an expansion or directional bounce overshoot before settling,
// animated stroke widths, and dot modes that collapse the icon into
// (or reveal it out of) a single dot.
//
// The zero configuration animates every point over the full timeline
// with ease-in-out, staggered by distance from the icon's local origin.
type ScaleSegmentedReel struct {
	*TransformReel

	pointDuration  Fixed32
	effectDuration Fixed32

	expandPx int
	bouncePx int

	strokeSet            bool
	fromStroke, toStroke WidthOp

	endAsDot   bool
	startAsDot bool
	dotRadius  Fixed16

	interpolate CurveFunc

	newLookup    func(*DrawCommandList) *IndexLookup
	lookup       *IndexLookup
	lookupPoints int
}

// NewScaleSegmentedReel wraps from in a segmented-scale transform from
// fromFrame to toFrame. When own is set the reel disposes from with
// itself.
func NewScaleSegmentedReel(from Reel, own bool, fromFrame, toFrame Rect) *ScaleSegmentedReel {
	s := &ScaleSegmentedReel{
		pointDuration:  defaultPointDuration,
		effectDuration: Fixed32One,
	}
	s.TransformReel = NewTransformReel(from, own, s)
	s.SetFromFrame(fromFrame)
	s.SetToFrame(toFrame)
	return s
}

// SetPointDuration sets the fraction of the timeline each point spends
// actively moving. Smaller fractions stretch the stagger.
func (s *ScaleSegmentedReel) SetPointDuration(f Fixed32) {
	s.pointDuration = f
	s.invalidate()
}

// SetEffectDuration sets the fraction of the timeline the whole motion
// occupies; the remainder holds the final state. One by default.
func (s *ScaleSegmentedReel) SetEffectDuration(f Fixed32) {
	s.effectDuration = f
	s.invalidate()
}

// SetExpand adds a size overshoot: the icon inflates past the target
// frame by px pixels on every side, then settles.
func (s *ScaleSegmentedReel) SetExpand(px int) {
	s.expandPx = px
	s.invalidate()
}

// SetBounce adds a directional overshoot: the icon overshoots the
// target origin by px pixels along the from→to displacement, then
// settles back.
func (s *ScaleSegmentedReel) SetBounce(px int) {
	s.bouncePx = px
	s.invalidate()
}

// SetStrokeWidth animates stroke widths between two endpoint operators
// applied to each command's native width.
func (s *ScaleSegmentedReel) SetStrokeWidth(from, to WidthOp) {
	s.strokeSet = true
	s.fromStroke, s.toStroke = from, to
	s.invalidate()
}

// SetEndAsDot collapses the icon into a dot of the given radius at the
// very end of the timeline: the target frame becomes a zero-size point
// centered in the start frame and stroke widths swell to the dot
// diameter over the last quarter of progress.
func (s *ScaleSegmentedReel) SetEndAsDot(radius Fixed16) {
	s.endAsDot = true
	s.startAsDot = false
	s.dotRadius = radius
	s.invalidate()
}

// SetStartAsDot is the mirror of SetEndAsDot: the icon begins as a dot
// centered in the target frame and unfurls out of it, the dot stroke
// fading over the first quarter of progress.
func (s *ScaleSegmentedReel) SetStartAsDot(radius Fixed16) {
	s.startAsDot = true
	s.endAsDot = false
	s.dotRadius = radius
	s.invalidate()
}

// SetInterpolate overrides the per-point progress curve. The curve
// shapes each point's own motion and is independent of the stagger
// timing. Nil restores ease-in-out.
func (s *ScaleSegmentedReel) SetInterpolate(fn CurveFunc) {
	s.interpolate = fn
	s.invalidate()
}

// SetDelayLookup overrides how points are assigned their stagger
// order. The creator runs once against the scaled command list and is
// re-run if the list's point count changes. Nil restores the default
// distance ordering from the icon's local origin.
func (s *ScaleSegmentedReel) SetDelayLookup(creator func(*DrawCommandList) *IndexLookup) {
	s.newLookup = creator
	s.lookup = nil
	s.lookupPoints = 0
	s.invalidate()
}

// dotRect is the zero-size frame at the center of r.
func dotRect(r Rect) Rect {
	c := r.Center()
	return Rect{X: c.X.Round(), Y: c.Y.Round()}
}

// ensureLookup builds the delay lookup on first use and whenever the
// governed list's size changes.
func (s *ScaleSegmentedReel) ensureLookup(list *DrawCommandList) {
	if s.lookup != nil && s.lookupPoints == list.PointCount() {
		return
	}
	creator := s.newLookup
	if creator == nil {
		creator = func(l *DrawCommandList) *IndexLookup {
			return NewIndexLookup(l, DistanceLess(Pt(0, 0)))
		}
	}
	s.lookup = creator(list)
	s.lookupPoints = list.PointCount()
}

// overshoot derives the intermediate overshoot frame from the expand
// and bounce settings.
func (s *ScaleSegmentedReel) overshoot(from, to Rect) (Rect, bool) {
	if s.expandPx == 0 && s.bouncePx == 0 {
		return Rect{}, false
	}
	over := to
	if s.expandPx != 0 {
		over.X -= s.expandPx
		over.Y -= s.expandPx
		over.Width += 2 * s.expandPx
		over.Height += 2 * s.expandPx
	}
	if s.bouncePx != 0 {
		dx := to.Center().X.Float() - from.Center().X.Float()
		dy := to.Center().Y.Float() - from.Center().Y.Float()
		if mag := math.Hypot(dx, dy); mag > 0 {
			over.X += int(math.Round(dx / mag * float64(s.bouncePx)))
			over.Y += int(math.Round(dy / mag * float64(s.bouncePx)))
		}
	}
	return over, true
}

// Apply implements TransformImpl.
func (s *ScaleSegmentedReel) Apply(list *DrawCommandList, size Size, from, to Rect, normalized Progress) {
	end := Progress(int64(ProgressMax) * int64(s.effectDuration) >> Fixed32Precision)
	p := Scaled(normalized, 0, end)

	motionFrom, motionTo := from, to
	reverse := false
	if s.endAsDot {
		motionTo = dotRect(from)
	}
	if s.startAsDot {
		motionFrom = dotRect(to)
		reverse = true
	}

	// Base coordinates live in whichever frame carries the full
	// geometry: the start frame normally, the target frame when the
	// start is a dot.
	baseSpace := motionFrom.Size()
	if reverse {
		baseSpace = motionTo.Size()
	}
	list.Scale(size, baseSpace)

	s.ensureLookup(list)

	seg := SegmentedScale{
		Lookup:        s.lookup,
		From:          motionFrom,
		To:            motionTo,
		ReverseBase:   reverse,
		PointDuration: s.pointDuration,
		Interpolate:   s.interpolate,
	}
	if over, ok := s.overshoot(motionFrom, motionTo); ok {
		seg.Over = &over
	}
	list.ScaleSegmented(seg, p)

	if s.strokeSet {
		list.TransformStrokeWidth(s.fromStroke, s.toStroke, p)
	}

	// Dot strokes are gated to the tail (or head) of the timeline so
	// the swell to the dot diameter only shows once the geometry has
	// all but collapsed.
	if s.endAsDot {
		gate := Scaled(normalized, ProgressMax*3/4, ProgressMax)
		list.TransformStrokeWidth(widthKeep, WidthOp{Op: StrokeWidthSet, Value: s.dotRadius * 2}, gate)
	}
	if s.startAsDot {
		gate := ProgressMax - Scaled(normalized, 0, ProgressMax/4)
		list.TransformStrokeWidth(widthKeep, WidthOp{Op: StrokeWidthSet, Value: s.dotRadius * 2}, gate)
	}
}
