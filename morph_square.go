package kino

// NewMorphSquareReel wraps from in a transform reel that pinches the
// icon into a square silhouette as the timeline advances. When a "to"
// reel is set, the first half of the timeline attracts the "from" shape
// into the square and the second half releases the square into the "to"
// shape, so one icon morphs into another through the shared square.
//
// When own is set the reel disposes from with itself.
func NewMorphSquareReel(from Reel, own bool) *TransformReel {
	impl := &morphSquare{}
	r := NewTransformReel(from, own, impl)
	impl.reel = r
	return r
}

// morphSquare folds progress around the midpoint when transitioning
// between two sources: attract on the way in, release on the way out.
type morphSquare struct {
	reel *TransformReel
}

func (m *morphSquare) Apply(list *DrawCommandList, size Size, from, to Rect, normalized Progress) {
	p := normalized
	frame := from
	if m.reel.ToReel() != nil {
		if normalized < ProgressMax/2 {
			p = Scaled(normalized, 0, ProgressMax/2)
		} else {
			p = ProgressMax - Scaled(normalized, ProgressMax/2, ProgressMax)
			frame = to
		}
	}
	list.Scale(size, frame.Size())
	list.AttractToSquare(frame.Size(), CurveEaseInOut.Apply(p))
	list.Translate(frame.Origin())
}
