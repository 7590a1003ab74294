package kino

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Progress is a normalized animation completion fraction: 0 at the
// start, ProgressMax at the end. All timing functions are closed over
// this domain; callers clip out-of-range values with [ProgressClip]
// before handing them to curve or segment functions.
type Progress int32

// Progress domain bounds.
const (
	ProgressMin Progress = 0
	ProgressMax Progress = 65535
)

// ProgressClip clamps p to [ProgressMin, ProgressMax].
func ProgressClip(p Progress) Progress {
	if p < ProgressMin {
		return ProgressMin
	}
	if p > ProgressMax {
		return ProgressMax
	}
	return p
}

// CurveFunc maps a progress value onto another progress value. Custom
// curves must fix the endpoints: f(0) = 0 and f(ProgressMax) =
// ProgressMax.
type CurveFunc func(Progress) Progress

// Curve selects one of the built-in easing curves.
type Curve uint8

// Built-in easing curves.
const (
	CurveLinear Curve = iota
	CurveEaseIn
	CurveEaseOut
	CurveEaseInOut
)

// Easing tables: 17 cubic samples each, monotone from 0 to ProgressMax.
// Compiled-in constants, never mutated.
var (
	easeInTable = [17]Progress{
		0, 16, 128, 432, 1024, 2000, 3456, 5488, 8192,
		11664, 16000, 21296, 27648, 35151, 43903, 53999, 65535,
	}
	easeOutTable = [17]Progress{
		0, 11536, 21632, 30384, 37887, 44239, 49535, 53871, 57343,
		60047, 62079, 63535, 64511, 65103, 65407, 65519, 65535,
	}
	easeInOutTable = [17]Progress{
		0, 64, 512, 1728, 4096, 8000, 13824, 21952, 32768,
		43583, 51711, 57535, 61439, 63807, 65023, 65471, 65535,
	}
)

// Apply transforms p through the curve. CurveLinear is the identity;
// the eased curves interpolate their sample tables.
func (c Curve) Apply(p Progress) Progress {
	switch c {
	case CurveEaseIn:
		return interpolateTable(p, easeInTable[:])
	case CurveEaseOut:
		return interpolateTable(p, easeOutTable[:])
	case CurveEaseInOut:
		return interpolateTable(p, easeInOutTable[:])
	default:
		return p
	}
}

// Func returns the curve as a CurveFunc.
func (c Curve) Func() CurveFunc {
	return c.Apply
}

// interpolateTable linearly interpolates p against a monotone easing
// table. The stride and index math deliberately truncates: the curve
// shapes are defined by this exact integer behavior.
func interpolateTable(p Progress, table []Progress) Progress {
	last := len(table) - 1
	if p <= ProgressMin {
		return table[0]
	}
	if p >= ProgressMax {
		return table[last]
	}
	stride := int32(ProgressMax) / int32(last)
	index := int32(p) * int32(last) / int32(ProgressMax)
	rem := int32(p) - index*stride
	lo := int32(table[index])
	hi := int32(table[index+1])
	return Progress(lo + (hi-lo)*rem/stride)
}

// Segmented distributes one global progress value across numSegments
// staggered sub-timelines and returns the local progress of the segment
// at index. durationFraction is the fraction (in Fixed32, of the whole
// timeline) that any single segment spends actively animating; the
// remaining time is divided evenly into per-segment start delays, so
// segment 0 starts first and segment numSegments-1 last.
//
// A negative index means "already finished" and returns ProgressMax; an
// index at or past numSegments has not started and returns 0.
//
// Segmented panics if numSegments or durationFraction is not positive:
// those are build-time contract violations, not runtime conditions.
func Segmented(p Progress, index, numSegments int, durationFraction Fixed32) Progress {
	if numSegments <= 0 {
		panic(fmt.Sprintf("kino: Segmented with non-positive segment count %d", numSegments))
	}
	if durationFraction <= 0 {
		panic(fmt.Sprintf("kino: Segmented with non-positive duration fraction %d", durationFraction))
	}
	if index < 0 {
		return ProgressMax
	}
	if index >= numSegments {
		return 0
	}

	durationPerItem := int64(ProgressMax) * int64(durationFraction) >> Fixed32Precision
	delayPerItem := (int64(ProgressMax) - durationPerItem) / int64(numSegments)

	offset := int64(p) - int64(index)*delayPerItem
	if offset < 0 {
		return 0
	}

	// Rescale the active window into the segment's own [0, ProgressMax].
	relative := (offset << Fixed32Precision) / int64(durationFraction)
	if relative > int64(ProgressMax) {
		return ProgressMax
	}
	return Progress(relative)
}

// Scaled rescales p so that start maps to 0 and end maps to
// ProgressMax, clipping outside the interval. It carves one global
// timeline into independent phases.
func Scaled(p, start, end Progress) Progress {
	if end <= start {
		return ProgressMax
	}
	if p <= start {
		return 0
	}
	if p >= end {
		return ProgressMax
	}
	return Progress(int64(p-start) * int64(ProgressMax) / int64(end-start))
}

// Eased adapts a gween easing function (Penner signature) to a
// CurveFunc, so any curve from gween/ease can drive per-point
// interpolation:
//
//	reel.SetInterpolate(kino.Eased(ease.OutBounce))
func Eased(fn ease.TweenFunc) CurveFunc {
	return func(p Progress) Progress {
		v := fn(float32(p), 0, float32(ProgressMax), float32(ProgressMax))
		return ProgressClip(Progress(v))
	}
}

// lerpInt maps p in [0, ProgressMax] linearly onto [from, to].
func lerpInt(p Progress, from, to int) int {
	return from + int(int64(to-from)*int64(p)/int64(ProgressMax))
}

// lerpFixed16 maps p in [0, ProgressMax] linearly onto [from, to].
func lerpFixed16(p Progress, from, to Fixed16) Fixed16 {
	return from + Fixed16(int64(to-from)*int64(p)/int64(ProgressMax))
}
