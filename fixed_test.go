package kino

import "testing"

func TestFixed16IntegerFractionDecompose(t *testing.T) {
	tests := []struct {
		value    float64
		wantInt  int
		wantFrac int
	}{
		{0, 0, 0},
		{1.5, 1, 4},
		{2.875, 2, 7},
		{-1.125, -2, 7},
		{-0.5, -1, 4},
		{-3, -3, 0},
	}
	for _, tt := range tests {
		f := Fixed16FromFloat(tt.value)
		if got := f.Integer(); got != tt.wantInt {
			t.Errorf("Fixed16(%v).Integer() = %d, want %d", tt.value, got, tt.wantInt)
		}
		if got := f.Fraction(); got != tt.wantFrac {
			t.Errorf("Fixed16(%v).Fraction() = %d, want %d", tt.value, got, tt.wantFrac)
		}
		// Integer and Fraction must reconstruct the raw value.
		if back := Fixed16FromInt(f.Integer()) + Fixed16(f.Fraction()); back != f {
			t.Errorf("Fixed16(%v): %d + %d does not reconstruct %d", tt.value, f.Integer(), f.Fraction(), f)
		}
	}
}

func TestFixed16Mul(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{2, 3, 6},
		{1.5, 2, 3},
		{-1.5, 2, -3},
		{0.5, 0.5, 0.25},
		{-0.5, -0.5, 0.25},
	}
	for _, tt := range tests {
		got := Fixed16FromFloat(tt.a).Mul(Fixed16FromFloat(tt.b))
		if got != Fixed16FromFloat(tt.want) {
			t.Errorf("%v * %v = %v, want %v", tt.a, tt.b, got.Float(), tt.want)
		}
	}
}

func TestFixed32Mul16MixedFormat(t *testing.T) {
	// Fixed32 × Fixed16 shifts by Fixed16's precision only, so the
	// result stays in Fixed32 format.
	got := Fixed32FromFloat(0.5).Mul16(Fixed16FromInt(3))
	if got != Fixed32FromFloat(1.5) {
		t.Errorf("0.5 *16 3 = %v, want 1.5", got.Float())
	}
	got = Fixed32FromInt(2).Mul16(Fixed16FromFloat(-0.5))
	if got != Fixed32FromInt(-1) {
		t.Errorf("2 *16 -0.5 = %v, want -1", got.Float())
	}
}

func TestFixed64MulFullWidth(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{2, 3, 6},
		{-2.5, 4, -10},
		{-2, -2, 4},
		{0.25, 0.25, 0.0625},
	}
	for _, tt := range tests {
		got := Fixed64FromFloat(tt.a).Mul(Fixed64FromFloat(tt.b))
		if got != Fixed64FromFloat(tt.want) {
			t.Errorf("%v * %v = %v, want %v", tt.a, tt.b, got.Float(), tt.want)
		}
	}
	// Operands whose plain int64 product would overflow.
	big := Fixed64FromInt(1 << 20)
	if got := big.Mul(big); got != Fixed64FromInt(1<<40) {
		t.Errorf("2^20 * 2^20 = %v, want 2^40", got.Float())
	}
}

func TestFixed16RoundTiesAwayFromZero(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{1.25, 1},
		{1.5, 2},
		{1.875, 2},
		{-1.25, -1},
		{-1.5, -2},
		{-1.875, -2},
	}
	for _, tt := range tests {
		if got := Fixed16FromFloat(tt.value).Round(); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestFilterFIRImpulseResponse(t *testing.T) {
	// No feedback: the impulse response is the b coefficients.
	f := NewFilter([]Fixed64{Fixed64One, Fixed64One / 2}, nil)

	got := []Fixed64{
		f.Update(Fixed64One),
		f.Update(0),
		f.Update(0),
	}
	want := []Fixed64{Fixed64One, Fixed64One / 2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i].Float(), want[i].Float())
		}
	}
}

func TestFilterFeedbackDecay(t *testing.T) {
	// y[n] = x[n] + 0.5·y[n-1]: a geometric decay after an impulse.
	f := NewFilter([]Fixed64{Fixed64One}, []Fixed64{-Fixed64One / 2})

	if got := f.Update(Fixed64One); got != Fixed64One {
		t.Fatalf("first sample = %v, want 1", got.Float())
	}
	if got := f.Update(0); got != Fixed64One/2 {
		t.Errorf("second sample = %v, want 0.5", got.Float())
	}
	if got := f.Update(0); got != Fixed64One/4 {
		t.Errorf("third sample = %v, want 0.25", got.Float())
	}

	f.Reset()
	if got := f.Update(0); got != 0 {
		t.Errorf("after Reset, sample = %v, want 0", got.Float())
	}
}
