package kino

import "time"

// TransformImpl is the mutation strategy a TransformReel applies to its
// cached command-list clone on every position change. list is owned by
// the reel and already holds a fresh copy of the active source's
// geometry; size is the active source's native size; from and to are
// the reel's frames.
type TransformImpl interface {
	Apply(list *DrawCommandList, size Size, from, to Rect, normalized Progress)
}

// TransformReel composes a "from" reel and an optional "to" reel under
// one elapsed/duration/progress contract and runs a TransformImpl over
// a cached copy of the active source's command list as the timeline
// advances. With no "to" reel the animation loops back onto the "from"
// source at the end position.
//
// The active source is "from" while normalized progress is below the
// midpoint (or always, without a "to" reel), and "to" after — the
// binary switch-over of a two-stage transition.
type TransformReel struct {
	from, to       Reel
	ownFrom, ownTo bool

	fromFrame, toFrame Rect
	layerFrame         Rect
	global             bool

	duration   time.Duration
	elapsed    time.Duration
	normalized Progress

	impl           TransformImpl
	positionSetter func(normalized Progress) bool

	// Cached mutable clone of the active source's list, keyed on point
	// count: rebuilt only when absent or too small, refreshed in place
	// otherwise.
	cache       *DrawCommandList
	cachePoints int

	// Counters surfaced by the debug log.
	applyCount int
	cloneCount int

	disposed bool
}

// NewTransformReel wraps from in a transform reel driven by impl. When
// own is set the reel disposes from with itself. Frames default to the
// source's native size at the origin.
func NewTransformReel(from Reel, own bool, impl TransformImpl) *TransformReel {
	r := &TransformReel{
		from:    from,
		ownFrom: own,
		impl:    impl,
	}
	if from != nil {
		size := from.Size()
		r.fromFrame = Rect{0, 0, size.Width, size.Height}
		r.toFrame = r.fromFrame
	}
	return r
}

// Dispose releases the reel and any owned child reels. Using a
// disposed reel is a no-op.
func (r *TransformReel) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.ownFrom {
		if d, ok := r.from.(Disposer); ok {
			d.Dispose()
		}
	}
	if r.ownTo {
		if d, ok := r.to.(Disposer); ok {
			d.Dispose()
		}
	}
	r.from, r.to = nil, nil
	r.cache = nil
	r.cachePoints = 0
}

// IsDisposed reports whether Dispose has been called.
func (r *TransformReel) IsDisposed() bool { return r.disposed }

// SetToReel sets the destination source. When own is set the reel
// disposes it with itself. Passing nil reverts to loop-back behavior.
func (r *TransformReel) SetToReel(to Reel, own bool) {
	if r.ownTo {
		if d, ok := r.to.(Disposer); ok {
			d.Dispose()
		}
	}
	r.to = to
	r.ownTo = own
	r.invalidate()
}

// FromReel returns the "from" source.
func (r *TransformReel) FromReel() Reel { return r.from }

// ToReel returns the "to" source, or nil.
func (r *TransformReel) ToReel() Reel { return r.to }

// SetFromFrame sets the start geometry rectangle.
func (r *TransformReel) SetFromFrame(f Rect) {
	r.fromFrame = f
	r.invalidate()
}

// FromFrame returns the start geometry rectangle.
func (r *TransformReel) FromFrame() Rect { return r.fromFrame }

// SetToFrame sets the end geometry rectangle.
func (r *TransformReel) SetToFrame(f Rect) {
	r.toFrame = f
	r.invalidate()
}

// ToFrame returns the end geometry rectangle.
func (r *TransformReel) ToFrame() Rect { return r.toFrame }

// SetLayerFrame records the owning layer's frame. Only meaningful in
// global mode, where from/to frames are screen coordinates and the
// layer frame anchors the conversion helpers.
func (r *TransformReel) SetLayerFrame(f Rect) { r.layerFrame = f }

// LayerFrame returns the owning layer's recorded frame.
func (r *TransformReel) LayerFrame() Rect { return r.layerFrame }

// SetGlobal switches the reel between local-coordinate frames (default)
// and global (screen) coordinate frames.
func (r *TransformReel) SetGlobal(global bool) { r.global = global }

// Global reports whether frames are in global coordinates.
func (r *TransformReel) Global() bool { return r.global }

// GlobalPoint converts a layer-local point to global coordinates using
// the layer frame.
func (r *TransformReel) GlobalPoint(p Point) Point {
	return p.Add(r.layerFrame.Origin())
}

// LocalPoint converts a global point to layer-local coordinates using
// the layer frame.
func (r *TransformReel) LocalPoint(p Point) Point {
	return p.Sub(r.layerFrame.Origin())
}

// SetTransformDuration sets the explicit transition duration. The
// effective duration also honors the child reels; see Duration.
func (r *TransformReel) SetTransformDuration(d time.Duration) {
	r.duration = d
}

// SetPositionSetter installs an optional callback invoked whenever the
// normalized position changes. Its return value reports whether the
// transform output actually changed; returning false suppresses the
// redundant redraw signal. Without a setter every position change
// counts as a visual change.
func (r *TransformReel) SetPositionSetter(fn func(normalized Progress) bool) {
	r.positionSetter = fn
}

// Size returns the "from" frame's dimensions.
func (r *TransformReel) Size() Size { return r.fromFrame.Size() }

// Duration returns the effective duration: the maximum of the explicit
// duration and the child reels' own durations. An infinite "from"
// duration only participates when there is no "to" reel — looping a
// lone source forever is fine, but an infinite lead-in to a real
// destination would never complete and pin the display forever.
func (r *TransformReel) Duration() time.Duration {
	d := r.duration
	if r.from != nil && (r.to == nil || r.from.Duration() != DurationInfinite) {
		if fd := r.from.Duration(); fd > d {
			d = fd
		}
	}
	if r.to != nil {
		if td := r.to.Duration(); td > d {
			d = td
		}
	}
	return d
}

// Elapsed returns the playback cursor.
func (r *TransformReel) Elapsed() time.Duration { return r.elapsed }

// SetElapsed moves the playback cursor, propagates it to both child
// reels, recomputes the normalized position, and re-applies the
// transform when the position moved. The return value reports whether
// anything visible changed — callers use it to decide whether to mark
// the owning layer dirty, so it must not be unconditionally true.
func (r *TransformReel) SetElapsed(elapsed time.Duration) bool {
	if r.disposed || elapsed == r.elapsed {
		return false
	}
	r.elapsed = elapsed

	sourceChanged := false
	if r.from != nil {
		sourceChanged = r.from.SetElapsed(elapsed) || sourceChanged
	}
	if r.to != nil {
		sourceChanged = r.to.SetElapsed(elapsed) || sourceChanged
	}

	n := r.normalizedAt(elapsed)
	if n == r.normalized {
		return sourceChanged
	}
	r.normalized = n

	transformChanged := true
	if r.positionSetter != nil {
		transformChanged = r.positionSetter(n)
	}
	r.applyTransform()
	return sourceChanged || transformChanged
}

// Normalized returns the current normalized position.
func (r *TransformReel) Normalized() Progress { return r.normalized }

// normalizedAt converts an elapsed time to a clipped progress value.
func (r *TransformReel) normalizedAt(elapsed time.Duration) Progress {
	d := r.Duration()
	if d == DurationInfinite {
		return ProgressMin
	}
	if d <= 0 {
		return ProgressMax
	}
	return ProgressClip(Progress(int64(elapsed) * int64(ProgressMax) / int64(d)))
}

// activeSource returns the reel currently shown: "from" below the
// midpoint or when alone, "to" after.
func (r *TransformReel) activeSource() Reel {
	if r.to != nil && r.normalized >= ProgressMax/2 {
		return r.to
	}
	return r.from
}

// activeFrame returns the frame the active source is anchored to.
func (r *TransformReel) activeFrame() Rect {
	if r.normalized == ProgressMax {
		return r.toFrame
	}
	if r.to != nil && r.normalized >= ProgressMax/2 {
		return r.toFrame
	}
	return r.fromFrame
}

// atBoundary reports whether the reel can skip mutation entirely and
// draw the active source's original list: exactly at an endpoint, with
// the source's native size matching the endpoint frame.
func (r *TransformReel) atBoundary(src Reel) bool {
	switch r.normalized {
	case ProgressMin:
		return src.Size() == r.fromFrame.Size()
	case ProgressMax:
		return src.Size() == r.toFrame.Size()
	}
	return false
}

// invalidate drops the cached clone; the next position change rebuilds
// it from the active source.
func (r *TransformReel) invalidate() {
	r.cache = nil
	r.cachePoints = 0
}

// ensureCache refreshes the cached clone from list, reallocating only
// when the cache is absent or smaller than required.
func (r *TransformReel) ensureCache(list *DrawCommandList) {
	points := list.PointCount()
	if r.cache == nil || r.cachePoints < points {
		r.cache = list.Clone()
		r.cloneCount++
	} else {
		r.cache.CopyFrom(list)
	}
	r.cachePoints = points
}

// applyTransform refreshes the cache from the active source and runs
// the impl over it. Skipped on the boundary fast path and for sources
// without vector geometry.
func (r *TransformReel) applyTransform() {
	if r.impl == nil {
		return
	}
	src := r.activeSource()
	if src == nil || r.atBoundary(src) {
		return
	}
	list := src.CommandList()
	if list == nil {
		return
	}
	r.ensureCache(list)
	r.applyCount++
	r.impl.Apply(r.cache, src.Size(), r.fromFrame, r.toFrame, r.normalized)
	debugLogApply(r)
}

// Draw renders the reel: the untouched source at the endpoints, the
// transformed clone while transitioning, or a positionally
// interpolated blit for raster sources.
func (r *TransformReel) Draw(g *Graphics, offset Point) {
	r.draw(g, offset, nil)
}

// DrawProcessed renders like Draw with a processor pass over the
// command list copy.
func (r *TransformReel) DrawProcessed(g *Graphics, offset Point, p Processor) {
	r.draw(g, offset, p)
}

func (r *TransformReel) draw(g *Graphics, offset Point, p Processor) {
	if r.disposed {
		return
	}
	src := r.activeSource()
	if src == nil {
		return
	}

	if r.global {
		// Frames are screen coordinates; fold the drawing context's
		// origin back out so they land where they claim.
		offset = Point{}.Sub(g.Origin)
	}

	if r.atBoundary(src) {
		src.DrawProcessed(g, offset.Add(r.activeFrame().Origin()), p)
		return
	}

	list := src.CommandList()
	if list == nil {
		// Raster source: no geometry to mutate, interpolate the frame
		// center instead.
		center := lerpPoint(r.normalized, r.fromFrame.Center(), r.toFrame.Center())
		size := src.Size()
		topLeft := center.Sub(Point{
			X: Fixed16FromInt(size.Width) / 2,
			Y: Fixed16FromInt(size.Height) / 2,
		})
		src.DrawProcessed(g, offset.Add(topLeft), p)
		return
	}

	if r.cache == nil {
		// First draw after an invalidation; rebuild in place.
		r.applyTransform()
	}
	if r.cache == nil {
		src.DrawProcessed(g, offset.Add(r.activeFrame().Origin()), p)
		return
	}
	// Impls emit absolute coordinates in the frames' space, so the
	// clone is drawn at the bare offset.
	drawListProcessed(g, r.cache, offset, p)
}

// CommandList returns the transformed clone while transitioning, or the
// active source's own list at the endpoints.
func (r *TransformReel) CommandList() *DrawCommandList {
	if r.disposed {
		return nil
	}
	if r.cache != nil && r.normalized != ProgressMin && r.normalized != ProgressMax {
		return r.cache
	}
	if src := r.activeSource(); src != nil {
		return src.CommandList()
	}
	return nil
}

// lerpPoint maps p onto the segment between a and b.
func lerpPoint(p Progress, a, b Point) Point {
	return Point{
		X: lerpFixed16(p, a.X, b.X),
		Y: lerpFixed16(p, a.Y, b.Y),
	}
}
