package kino

import "math/rand/v2"

// UnfoldReel reveals an icon with an angular sweep: points are staggered
// by how far their direction from the icon's center is from a start
// angle, so the geometry unfurls around the center like a fan opening.
// Grouping coarsens the sweep into visible waves.
//
// A zero start angle picks a pseudo-random direction the first time the
// ordering is built, so repeated reveals of the same icon sweep from
// different sides.
type UnfoldReel struct {
	*ScaleSegmentedReel

	angle       Angle
	resolved    Angle
	hasResolved bool

	numGroups  int
	groupDelay Fixed32

	rand *rand.Rand
}

// NewUnfoldReel wraps from in an unfold transform within frame. angle is
// the sweep's zero direction (0 means random); numGroups and groupDelay
// coarsen the stagger into waves, with numGroups <= 1 disabling
// grouping. When own is set the reel disposes from with itself.
//
// The common dot-pop reveal combines this with SetStartAsDot.
func NewUnfoldReel(from Reel, own bool, frame Rect, angle Angle, numGroups int, groupDelay Fixed32) *UnfoldReel {
	u := &UnfoldReel{
		angle:      angle,
		numGroups:  numGroups,
		groupDelay: groupDelay,
	}
	u.ScaleSegmentedReel = NewScaleSegmentedReel(from, own, frame, frame)
	u.SetDelayLookup(u.buildLookup)
	return u
}

// SetAngle changes the sweep's zero direction. Zero re-arms the random
// pick for the next ordering rebuild.
func (u *UnfoldReel) SetAngle(a Angle) {
	u.angle = a
	u.hasResolved = false
	u.SetDelayLookup(u.buildLookup)
}

// Angle returns the effective sweep direction: the configured angle, or
// the randomly resolved one once the ordering has been built.
func (u *UnfoldReel) Angle() Angle {
	if u.angle != 0 {
		return u.angle
	}
	return u.resolved
}

// SetUnfoldGroups changes the wave grouping; see NewUnfoldReel.
func (u *UnfoldReel) SetUnfoldGroups(numGroups int, groupDelay Fixed32) {
	u.numGroups = numGroups
	u.groupDelay = groupDelay
	u.SetDelayLookup(u.buildLookup)
}

// SetRand installs the random source used for zero-angle resolution.
// Tests seed this for deterministic sweeps; nil falls back to the
// package-global source.
func (u *UnfoldReel) SetRand(r *rand.Rand) {
	u.rand = r
}

// buildLookup is the delay lookup creator: angular ordering around the
// list's bounding-box center, then wave grouping.
func (u *UnfoldReel) buildLookup(list *DrawCommandList) *IndexLookup {
	l := NewIndexLookup(list, AngleLess(listCenter(list), u.startAngle()))
	if u.numGroups > 1 {
		l.SetGroups(u.numGroups, u.groupDelay)
	}
	return l
}

// startAngle resolves the sweep direction, drawing and pinning a random
// nonzero angle when none is configured.
func (u *UnfoldReel) startAngle() Angle {
	if u.angle != 0 {
		return u.angle
	}
	if !u.hasResolved {
		u.resolved = u.randomAngle()
		u.hasResolved = true
	}
	return u.resolved
}

// randomAngle draws a uniform angle from [1, AngleMax).
func (u *UnfoldReel) randomAngle() Angle {
	n := int64(AngleMax) - 1
	if u.rand != nil {
		return Angle(1 + u.rand.Int64N(n))
	}
	return Angle(1 + rand.Int64N(n))
}

// listCenter returns the center of the list's bounding box.
func listCenter(l *DrawCommandList) Point {
	first := true
	var minX, minY, maxX, maxY Fixed16
	l.EachPoint(func(_ int, p *Point) {
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			return
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	})
	if first {
		return Point{}
	}
	return Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}
