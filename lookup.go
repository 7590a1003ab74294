package kino

import (
	"math"
	"sort"
)

// Angle is a 16-bit binary angle: AngleMax units make one full turn.
type Angle int32

// One full turn, in Angle units.
const AngleMax Angle = 0x10000

// atan2Angle returns the binary angle of the vector (dx, dy).
func atan2Angle(dy, dx float64) Angle {
	return Angle(math.Atan2(dy, dx) / (2 * math.Pi) * float64(AngleMax))
}

// foldAngle normalizes a into [-AngleMax/2, AngleMax/2) by folding
// around the circle.
func foldAngle(a Angle) Angle {
	a %= AngleMax
	if a >= AngleMax/2 {
		a -= AngleMax
	}
	if a < -AngleMax/2 {
		a += AngleMax
	}
	return a
}

// PointLess orders two points for delay-index assignment.
type PointLess func(a, b Point) bool

// AngleLess orders points by how close their direction from origin is
// to the start angle: points nearest the designated zero direction sort
// first. Used by the unfold effect's sweeping reveal.
func AngleLess(origin Point, start Angle) PointLess {
	key := func(p Point) Angle {
		a := atan2Angle((p.Y - origin.Y).Float(), (p.X - origin.X).Float())
		folded := foldAngle(a + start)
		if folded < 0 {
			return -folded
		}
		return folded
	}
	return func(a, b Point) bool {
		return key(a) < key(b)
	}
}

// DistanceLess orders points by squared Euclidean distance to target,
// nearest first. Used by the segmented-scale effect's ripple ordering.
func DistanceLess(target Point) PointLess {
	key := func(p Point) int64 {
		dx := int64(p.X - target.X)
		dy := int64(p.Y - target.Y)
		return dx*dx + dy*dy
	}
	return func(a, b Point) bool {
		return key(a) < key(b)
	}
}

// IndexLookup maps every vertex of a command list, in iteration order,
// to a delay bucket. Buckets drive [Segmented]: bucket 0 animates
// first, bucket MaxIndex last. Vertices with identical coordinates
// share a bucket.
//
// The invariant DelayIndex(i) <= MaxIndex holds after every operation.
type IndexLookup struct {
	// NumPoints is the vertex count of the governed list.
	NumPoints int
	// MaxIndex is the highest delay bucket currently assigned.
	MaxIndex int

	index []int
}

// NewIndexLookup builds a lookup for list: distinct points (exact
// coordinate comparison) are sorted with less, and every vertex is
// assigned its point's sorted rank as its delay bucket.
//
// Rank assignment is an O(n²) linear scan. Vector icons carry tens of
// points, not thousands, so the simple form wins.
func NewIndexLookup(list *DrawCommandList, less PointLess) *IndexLookup {
	var distinct []Point
	list.EachPoint(func(_ int, p *Point) {
		for _, q := range distinct {
			if q == *p {
				return
			}
		}
		distinct = append(distinct, *p)
	})

	sorted := make([]Point, len(distinct))
	copy(sorted, distinct)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	l := &IndexLookup{
		NumPoints: list.PointCount(),
		index:     make([]int, list.PointCount()),
	}
	list.EachPoint(func(i int, p *Point) {
		for rank, q := range sorted {
			if q == *p {
				l.index[i] = rank
				if rank > l.MaxIndex {
					l.MaxIndex = rank
				}
				break
			}
		}
	})
	return l
}

// DelayIndex returns the delay bucket of the vertex at sequential
// index i, or 0 if i is out of range.
func (l *IndexLookup) DelayIndex(i int) int {
	if i < 0 || i >= len(l.index) {
		return 0
	}
	return l.index[i]
}

// NumSegments returns the segment count to pass to [Segmented]:
// one more than the highest bucket.
func (l *IndexLookup) NumSegments() int {
	return l.MaxIndex + 1
}

// AddAt opens a delay gap: every vertex in a bucket at or above
// delayIndex moves up by amount, and MaxIndex grows by amount. A
// delayIndex outside [0, MaxIndex) is silently ignored so callers can
// insert gaps conditionally.
//
// When inserting multiple gaps, call AddAt in descending delayIndex
// order; ascending calls would shift earlier boundaries onto later
// ones and corrupt the mapping.
func (l *IndexLookup) AddAt(delayIndex, amount int) {
	if delayIndex < 0 || delayIndex >= l.MaxIndex {
		return
	}
	l.MaxIndex += amount
	for i, v := range l.index {
		if v >= delayIndex {
			l.index[i] = v + amount
		}
	}
}

// SetGroups partitions the buckets into numGroups contiguous groups of
// equal vertex count and inserts a uniform extra delay at each group
// boundary. groupDelay is a Fixed32 fraction of one group's natural
// duration (its bucket span).
//
// Each boundary is the bucket of the vertex at the group's count
// split, so duplicate coordinates (which share buckets and leave
// NumPoints above MaxIndex+1) still land every boundary inside the
// bucket domain. Boundaries are processed in descending order per the
// AddAt contract.
func (l *IndexLookup) SetGroups(numGroups int, groupDelay Fixed32) {
	if numGroups <= 1 || l.NumPoints == 0 {
		return
	}
	groupSize := l.NumPoints / numGroups
	if groupSize == 0 {
		return
	}
	extra := int(int64(groupDelay) * int64(groupSize) >> Fixed32Precision)
	if extra <= 0 {
		return
	}
	buckets := make([]int, len(l.index))
	copy(buckets, l.index)
	sort.Ints(buckets)
	for g := numGroups - 1; g >= 1; g-- {
		if boundary := buckets[g*groupSize]; boundary > 0 {
			l.AddAt(boundary, extra)
		}
	}
}
