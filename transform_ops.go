package kino

// Transform operators mutate a command list in place. Callers own the
// list — the TransformReel machinery applies these to a cached clone,
// never to a reel's original geometry.

// Scale remaps every point from one bounding-box size to another with a
// pure per-axis ratio, leaving each point's relative position within
// the box unchanged. Circle radii scale by the width ratio. A zero
// source dimension leaves that axis untouched.
func (l *DrawCommandList) Scale(from, to Size) {
	if from == to {
		return
	}
	scaleAxis := func(v Fixed16, from, to int) Fixed16 {
		if from == 0 {
			return v
		}
		return Fixed16(int64(v) * int64(to) / int64(from))
	}
	for i := range l.Commands {
		cmd := &l.Commands[i]
		for j := range cmd.Points {
			cmd.Points[j].X = scaleAxis(cmd.Points[j].X, from.Width, to.Width)
			cmd.Points[j].Y = scaleAxis(cmd.Points[j].Y, from.Height, to.Height)
		}
		if cmd.Kind == CommandCircle {
			cmd.Radius = scaleAxis(cmd.Radius, from.Width, to.Width)
		}
	}
}

// AttractToSquare moves every coordinate toward whichever edge of the
// box (0 or the dimension minus one) is nearer, interpolated by
// normalized. At ProgressMax the shape has collapsed to the silhouette
// of a square; at 0 it is untouched. Used to pinch a shape flat before
// a morph and release it after.
func (l *DrawCommandList) AttractToSquare(size Size, normalized Progress) {
	attract := func(v Fixed16, dim int) Fixed16 {
		target := Fixed16(0)
		if v >= Fixed16FromInt(dim)/2 {
			target = Fixed16FromInt(dim - 1)
		}
		return lerpFixed16(normalized, v, target)
	}
	for i := range l.Commands {
		cmd := &l.Commands[i]
		for j := range cmd.Points {
			cmd.Points[j].X = attract(cmd.Points[j].X, size.Width)
			cmd.Points[j].Y = attract(cmd.Points[j].Y, size.Height)
		}
	}
}

// SegmentedScale parameterizes ScaleSegmented.
type SegmentedScale struct {
	// Lookup assigns each vertex its delay bucket.
	Lookup *IndexLookup
	// From and To are the start and end frames of the motion. Point
	// coordinates are interpreted relative to From's origin at From's
	// size, or relative to To when ReverseBase is set (used when the
	// final geometry is known and the start must be derived, as in
	// dot-start reveals where From has zero size).
	From, To    Rect
	ReverseBase bool
	// Over, when non-nil, is an intermediate overshoot frame: each
	// point travels From → Over over the first OverSplit of its local
	// timeline, then settles Over → To. A zero OverSplit defaults to
	// three quarters.
	Over      *Rect
	OverSplit Progress
	// Offset is a translation already baked into the points by an
	// earlier pass. When IsOffset is set it is subtracted before
	// projection and re-added afterwards, so chained calls never scale
	// a prior translation twice.
	Offset   Point
	IsOffset bool
	// PointDuration is the Fixed32 fraction of the timeline each point
	// spends moving (the durationFraction of [Segmented]).
	PointDuration Fixed32
	// Interpolate shapes each point's local progress. Nil means
	// ease-in-out.
	Interpolate CurveFunc
}

// project maps a base point into the given frame: scaled by the frame
// size ratio against the base space and translated to the frame's
// origin. Results are absolute in the frames' coordinate space.
func (s *SegmentedScale) project(base Point, frame Rect) Point {
	space := s.From.Size()
	if s.ReverseBase {
		space = s.To.Size()
	}
	scaleAxis := func(v Fixed16, from, to int) Fixed16 {
		if from == 0 {
			return v
		}
		return Fixed16(int64(v) * int64(to) / int64(from))
	}
	return Point{
		X: scaleAxis(base.X, space.Width, frame.Width) + Fixed16FromInt(frame.X),
		Y: scaleAxis(base.Y, space.Height, frame.Height) + Fixed16FromInt(frame.Y),
	}
}

// ScaleSegmented moves every point from its place in s.From toward the
// corresponding place in s.To, each point on its own staggered timeline
// taken from the lookup. Scaling by the frame size ratio and the
// translation by the frame origin displacement are both interpolated by
// the point's eased local progress; an overshoot frame inserts a
// bounce-back leg into each point's trajectory.
func (l *DrawCommandList) ScaleSegmented(s SegmentedScale, p Progress) {
	interp := s.Interpolate
	if interp == nil {
		interp = CurveEaseInOut.Apply
	}
	numSegments := s.Lookup.NumSegments()
	split := s.OverSplit
	if split == 0 {
		split = ProgressMax * 3 / 4
	}

	l.EachPoint(func(i int, pt *Point) {
		local := Segmented(p, s.Lookup.DelayIndex(i), numSegments, s.PointDuration)
		eased := interp(local)

		base := *pt
		if s.IsOffset {
			base = base.Sub(s.Offset)
		}

		var moved Point
		switch {
		case s.Over == nil:
			moved = lerpPoint(eased, s.project(base, s.From), s.project(base, s.To))
		case eased < split:
			moved = lerpPoint(Scaled(eased, 0, split),
				s.project(base, s.From), s.project(base, *s.Over))
		default:
			moved = lerpPoint(Scaled(eased, split, ProgressMax),
				s.project(base, *s.Over), s.project(base, s.To))
		}

		if s.IsOffset {
			moved = moved.Add(s.Offset)
		}
		*pt = moved
	})
}

// Translate shifts every point by offset.
func (l *DrawCommandList) Translate(offset Point) {
	l.EachPoint(func(_ int, p *Point) {
		*p = p.Add(offset)
	})
}

// StrokeWidthOp transforms a command's native stroke width into an
// endpoint value.
type StrokeWidthOp uint8

// Stroke width operators.
const (
	StrokeWidthSet      StrokeWidthOp = iota // replace with Value
	StrokeWidthMultiply                      // native × Value
	StrokeWidthAdd                           // native + Value
)

// WidthOp pairs a stroke width operator with its operand.
type WidthOp struct {
	Op    StrokeWidthOp
	Value Fixed16
}

// apply computes the endpoint width from a command's native width.
func (w WidthOp) apply(native Fixed16) Fixed16 {
	switch w.Op {
	case StrokeWidthMultiply:
		return native.Mul(w.Value)
	case StrokeWidthAdd:
		return native.Add(w.Value)
	default:
		return w.Value
	}
}

// TransformStrokeWidth animates every command's stroke width. Both
// endpoints derive from the command's own native width — from and to
// are applied to it independently — then the endpoints are linearly
// interpolated by p and rounded to the nearest integer width.
func (l *DrawCommandList) TransformStrokeWidth(from, to WidthOp, p Progress) {
	for i := range l.Commands {
		cmd := &l.Commands[i]
		native := Fixed16FromInt(int(cmd.StrokeWidth))
		width := lerpFixed16(p, from.apply(native), to.apply(native)).Round()
		if width < 0 {
			width = 0
		}
		cmd.StrokeWidth = uint8(width)
	}
}

// ReplaceColor swaps every exact occurrence of from with to in both
// fill and stroke colors. A plain non-animated edit used for theme
// remapping.
func (l *DrawCommandList) ReplaceColor(from, to Color) {
	for i := range l.Commands {
		cmd := &l.Commands[i]
		if cmd.FillColor == from {
			cmd.FillColor = to
		}
		if cmd.StrokeColor == from {
			cmd.StrokeColor = to
		}
	}
}
