package kino

import "testing"

func TestScaleRemapsPointsAndRadii(t *testing.T) {
	list := &DrawCommandList{Commands: []DrawCommand{
		{Kind: CommandPath, Points: []Point{Pt(0, 0), Pt(5, 10)}},
		{Kind: CommandCircle, Points: []Point{Pt(5, 5)}, Radius: Fixed16FromInt(4)},
	}}

	list.Scale(Size{10, 10}, Size{20, 30})

	if got := list.Commands[0].Points[1]; got != Pt(10, 30) {
		t.Errorf("point = %v, want (10, 30)", got)
	}
	if got := list.Commands[1].Radius; got != Fixed16FromInt(8) {
		t.Errorf("radius = %v, want 8", got.Float())
	}
}

func TestScaleZeroSourceDimensionLeavesAxis(t *testing.T) {
	list := lineList(Pt(3, 4))
	list.Scale(Size{0, 10}, Size{50, 20})
	if got := list.Commands[0].Points[0]; got != Pt(3, 8) {
		t.Errorf("point = %v, want (3, 8)", got)
	}
}

func TestAttractToSquareEndpoints(t *testing.T) {
	size := Size{10, 10}
	original := lineList(Pt(2, 3), Pt(7, 8), Pt(5, 1))

	// Zero progress is the identity.
	list := original.Clone()
	list.AttractToSquare(size, 0)
	if !list.Equal(original) {
		t.Fatal("zero progress should leave the list untouched")
	}

	// Full progress snaps every coordinate to an edge.
	list.AttractToSquare(size, ProgressMax)
	edge := func(v Fixed16) bool {
		return v == 0 || v == Fixed16FromInt(size.Width-1)
	}
	list.EachPoint(func(i int, p *Point) {
		if !edge(p.X) || !edge(p.Y) {
			t.Errorf("point %d = (%v, %v), want edge coordinates", i, p.X.Float(), p.Y.Float())
		}
	})
}

func TestTranslate(t *testing.T) {
	list := lineList(Pt(1, 1), Pt(4, 2))
	list.Translate(Pt(10, -3))
	if got := list.Commands[0].Points[0]; got != Pt(11, -2) {
		t.Errorf("point = %v, want (11, -2)", got)
	}
	if got := list.Commands[0].Points[1]; got != Pt(14, -1) {
		t.Errorf("point = %v, want (14, -1)", got)
	}
}

func TestScaleSegmentedEndpoints(t *testing.T) {
	makeList := func() *DrawCommandList {
		return lineList(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	}
	s := SegmentedScale{
		From:          Rect{0, 0, 10, 10},
		To:            Rect{20, 20, 10, 10},
		PointDuration: Fixed32FromFloat(0.67),
	}
	s.Lookup = NewIndexLookup(makeList(), DistanceLess(Pt(0, 0)))

	// At zero progress every point sits in the From frame.
	list := makeList()
	list.ScaleSegmented(s, 0)
	if !list.Equal(makeList()) {
		t.Fatal("zero progress should reproduce the From positions")
	}

	// At full progress every point has translated into the To frame.
	list = makeList()
	list.ScaleSegmented(s, ProgressMax)
	want := makeList()
	want.Translate(Pt(20, 20))
	if !list.Equal(want) {
		t.Fatal("full progress should land every point in the To frame")
	}
}

func TestScaleSegmentedStaggersPoints(t *testing.T) {
	makeList := func() *DrawCommandList {
		return lineList(Pt(0, 0), Pt(10, 0))
	}
	s := SegmentedScale{
		From:          Rect{0, 0, 10, 10},
		To:            Rect{40, 0, 10, 10},
		PointDuration: Fixed32FromFloat(0.4),
	}
	s.Lookup = NewIndexLookup(makeList(), DistanceLess(Pt(0, 0)))

	// Early on, the near point has moved and the far point has not.
	list := makeList()
	list.ScaleSegmented(s, ProgressMax/8)
	if list.Commands[0].Points[0].X == 0 {
		t.Error("near point should have started moving")
	}
	if got := list.Commands[0].Points[1]; got != Pt(10, 0) {
		t.Errorf("far point = %v, want still at (10, 0)", got)
	}
}

func TestScaleSegmentedOvershoot(t *testing.T) {
	makeList := func() *DrawCommandList {
		return lineList(Pt(0, 0), Pt(10, 10))
	}
	over := Rect{-4, -4, 18, 18}
	s := SegmentedScale{
		From:          Rect{0, 0, 10, 10},
		To:            Rect{0, 0, 10, 10},
		Over:          &over,
		PointDuration: Fixed32One,
		Interpolate:   CurveLinear.Func(),
	}
	s.Lookup = NewIndexLookup(makeList(), DistanceLess(Pt(0, 0)))

	// Somewhere mid-flight the top-left corner must dip outside the
	// target frame, then return to it by the end.
	minX := Fixed16(0)
	for p := Progress(1000); p < ProgressMax; p += 1000 {
		list := makeList()
		list.ScaleSegmented(s, p)
		if x := list.Commands[0].Points[0].X; x < minX {
			minX = x
		}
	}
	if minX >= 0 {
		t.Error("overshoot never left the target frame")
	}

	list := makeList()
	list.ScaleSegmented(s, ProgressMax)
	if !list.Equal(makeList()) {
		t.Error("overshoot did not settle back onto the target frame")
	}
}

func TestScaleSegmentedOffsetNotRescaled(t *testing.T) {
	offset := Pt(100, 100)
	makeList := func() *DrawCommandList {
		l := lineList(Pt(0, 0), Pt(10, 10))
		l.Translate(offset)
		return l
	}
	s := SegmentedScale{
		From:          Rect{0, 0, 10, 10},
		To:            Rect{0, 0, 10, 10},
		Offset:        offset,
		IsOffset:      true,
		PointDuration: Fixed32One,
	}
	s.Lookup = NewIndexLookup(makeList(), DistanceLess(Pt(0, 0)))

	// From == To with the offset subtracted first: the points must come
	// back exactly, offset included.
	list := makeList()
	list.ScaleSegmented(s, ProgressMax/2)
	if !list.Equal(makeList()) {
		t.Error("baked-in offset was rescaled by the transform")
	}
}

func TestTransformStrokeWidth(t *testing.T) {
	makeList := func() *DrawCommandList {
		l := lineList(Pt(0, 0), Pt(1, 1))
		l.Commands[0].StrokeWidth = 4
		return l
	}
	from := WidthOp{Op: StrokeWidthMultiply, Value: Fixed16FromInt(2)}
	to := WidthOp{Op: StrokeWidthSet, Value: Fixed16FromInt(10)}

	tests := []struct {
		p    Progress
		want uint8
	}{
		{0, 8},
		{ProgressMax / 2, 9},
		{ProgressMax, 10},
	}
	for _, tt := range tests {
		list := makeList()
		list.TransformStrokeWidth(from, to, tt.p)
		if got := list.Commands[0].StrokeWidth; got != tt.want {
			t.Errorf("width at p=%d = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestTransformStrokeWidthClampsAtZero(t *testing.T) {
	list := lineList(Pt(0, 0), Pt(1, 1))
	list.Commands[0].StrokeWidth = 2
	neg := WidthOp{Op: StrokeWidthAdd, Value: Fixed16FromInt(-10)}
	list.TransformStrokeWidth(neg, neg, 0)
	if got := list.Commands[0].StrokeWidth; got != 0 {
		t.Errorf("width = %d, want clamped 0", got)
	}
}

func TestReplaceColor(t *testing.T) {
	list := &DrawCommandList{Commands: []DrawCommand{
		{Kind: CommandPath, StrokeColor: ColorBlack, FillColor: ColorWhite},
		{Kind: CommandPath, StrokeColor: ColorWhite, FillColor: ColorBlack},
	}}
	list.ReplaceColor(ColorWhite, ColorClear)

	if list.Commands[0].FillColor != ColorClear || list.Commands[1].StrokeColor != ColorClear {
		t.Error("white occurrences were not replaced")
	}
	if list.Commands[0].StrokeColor != ColorBlack || list.Commands[1].FillColor != ColorBlack {
		t.Error("non-matching colors were touched")
	}
}
