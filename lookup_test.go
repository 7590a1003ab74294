package kino

import "testing"

// lineList builds a single-path list through the given integer points.
func lineList(pts ...Point) *DrawCommandList {
	return &DrawCommandList{Commands: []DrawCommand{{
		Kind:        CommandPath,
		StrokeColor: ColorBlack,
		StrokeWidth: 1,
		PathOpen:    true,
		Points:      pts,
	}}}
}

func TestNewIndexLookupDistanceOrdering(t *testing.T) {
	// Duplicate coordinates share a bucket.
	list := lineList(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(1, 0))
	l := NewIndexLookup(list, DistanceLess(Pt(0, 0)))

	if l.NumPoints != 4 {
		t.Fatalf("NumPoints = %d, want 4", l.NumPoints)
	}
	want := []int{0, 1, 2, 1}
	for i, w := range want {
		if got := l.DelayIndex(i); got != w {
			t.Errorf("DelayIndex(%d) = %d, want %d", i, got, w)
		}
	}
	if l.MaxIndex != 2 {
		t.Errorf("MaxIndex = %d, want 2", l.MaxIndex)
	}
	if l.NumSegments() != 3 {
		t.Errorf("NumSegments = %d, want 3", l.NumSegments())
	}
}

func TestNewIndexLookupDeterministic(t *testing.T) {
	list := lineList(Pt(3, 1), Pt(0, 2), Pt(5, 5), Pt(0, 2), Pt(1, 1))
	a := NewIndexLookup(list, DistanceLess(Pt(0, 0)))
	b := NewIndexLookup(list, DistanceLess(Pt(0, 0)))
	for i := 0; i < a.NumPoints; i++ {
		if a.DelayIndex(i) != b.DelayIndex(i) {
			t.Fatalf("DelayIndex(%d) differs between identical builds: %d vs %d",
				i, a.DelayIndex(i), b.DelayIndex(i))
		}
	}
}

func TestIndexLookupDelayIndexOutOfRange(t *testing.T) {
	l := NewIndexLookup(lineList(Pt(0, 0), Pt(1, 0)), DistanceLess(Pt(0, 0)))
	if got := l.DelayIndex(-1); got != 0 {
		t.Errorf("DelayIndex(-1) = %d, want 0", got)
	}
	if got := l.DelayIndex(99); got != 0 {
		t.Errorf("DelayIndex(99) = %d, want 0", got)
	}
}

func TestAddAtOpensGap(t *testing.T) {
	l := NewIndexLookup(lineList(Pt(0, 0), Pt(1, 0), Pt(2, 0)), DistanceLess(Pt(0, 0)))

	l.AddAt(1, 2)

	want := []int{0, 3, 4}
	for i, w := range want {
		if got := l.DelayIndex(i); got != w {
			t.Errorf("DelayIndex(%d) = %d, want %d", i, got, w)
		}
	}
	if l.MaxIndex != 4 {
		t.Errorf("MaxIndex = %d, want 4", l.MaxIndex)
	}
}

func TestAddAtOutOfRangeIgnored(t *testing.T) {
	l := NewIndexLookup(lineList(Pt(0, 0), Pt(1, 0), Pt(2, 0)), DistanceLess(Pt(0, 0)))
	before := make([]int, l.NumPoints)
	for i := range before {
		before[i] = l.DelayIndex(i)
	}

	l.AddAt(-1, 5)
	l.AddAt(l.MaxIndex, 5)
	l.AddAt(99, 5)

	if l.MaxIndex != 2 {
		t.Errorf("MaxIndex = %d, want unchanged 2", l.MaxIndex)
	}
	for i, w := range before {
		if got := l.DelayIndex(i); got != w {
			t.Errorf("DelayIndex(%d) = %d, want unchanged %d", i, got, w)
		}
	}
}

func TestSetGroupsPreservesOrdering(t *testing.T) {
	pts := make([]Point, 8)
	for i := range pts {
		pts[i] = Pt(i, 0)
	}
	list := lineList(pts...)
	l := NewIndexLookup(list, DistanceLess(Pt(0, 0)))

	l.SetGroups(2, Fixed32One)

	// Relative order survives grouping, a gap opens at the boundary, and
	// every bucket stays within MaxIndex.
	prev := -1
	for i := 0; i < l.NumPoints; i++ {
		got := l.DelayIndex(i)
		if got < prev {
			t.Fatalf("DelayIndex(%d) = %d breaks ordering (previous %d)", i, got, prev)
		}
		if got > l.MaxIndex {
			t.Fatalf("DelayIndex(%d) = %d exceeds MaxIndex %d", i, got, l.MaxIndex)
		}
		prev = got
	}
	if gap := l.DelayIndex(4) - l.DelayIndex(3); gap <= 1 {
		t.Errorf("group boundary gap = %d, want > 1", gap)
	}
}

func TestSetGroupsWithDuplicateCoordinates(t *testing.T) {
	// Every coordinate appears twice, so the vertex count is double the
	// bucket count; the boundary must come from the bucket domain.
	list := lineList(
		Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(1, 0),
		Pt(2, 0), Pt(2, 0), Pt(3, 0), Pt(3, 0),
	)
	l := NewIndexLookup(list, DistanceLess(Pt(0, 0)))
	if l.MaxIndex != 3 {
		t.Fatalf("MaxIndex = %d, want 3", l.MaxIndex)
	}

	l.SetGroups(2, Fixed32One)

	if l.MaxIndex <= 3 {
		t.Fatalf("MaxIndex = %d, grouping silently no-opped", l.MaxIndex)
	}
	// Vertices 0-3 form the first group, 4-7 the second; the gap opens
	// between them.
	if gap := l.DelayIndex(4) - l.DelayIndex(3); gap <= 1 {
		t.Errorf("group boundary gap = %d, want > 1", gap)
	}
	for i := 0; i < l.NumPoints; i++ {
		if got := l.DelayIndex(i); got > l.MaxIndex {
			t.Fatalf("DelayIndex(%d) = %d exceeds MaxIndex %d", i, got, l.MaxIndex)
		}
	}
}

func TestAngleLessSweepOrder(t *testing.T) {
	right := Pt(1, 0)
	down := Pt(0, 1) // Y grows downward
	left := Pt(-1, 0)
	up := Pt(0, -1)

	less := AngleLess(Pt(0, 0), 0)

	// Sweeping from angle zero (+X): the right point is nearest the
	// start, the left point is farthest; up and down tie.
	if !less(right, down) {
		t.Error("right should order before down")
	}
	if !less(down, left) {
		t.Error("down should order before left")
	}
	if less(left, right) {
		t.Error("left should not order before right")
	}
	if less(up, down) || less(down, up) {
		t.Error("up and down should tie")
	}
}

func TestFoldAngle(t *testing.T) {
	tests := []struct {
		in, want Angle
	}{
		{0, 0},
		{AngleMax / 4, AngleMax / 4},
		{AngleMax / 2, -AngleMax / 2},
		{AngleMax, 0},
		{-AngleMax / 4, -AngleMax / 4},
		{AngleMax + AngleMax/4, AngleMax / 4},
	}
	for _, tt := range tests {
		if got := foldAngle(tt.in); got != tt.want {
			t.Errorf("foldAngle(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
