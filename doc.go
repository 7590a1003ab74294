// Package kino is an animation timing and vector-icon transform engine
// for [Ebitengine].
//
// Kino animates "reels": self-contained visual sources built from draw
// commands (vector paths and circles) or raster images. A reel exposes a
// size, a duration, and an elapsed-time cursor; driving the cursor from a
// frame loop plays the reel. Reels compose: a [TransformReel] wraps a
// "from" reel and an optional "to" reel under one timeline and mutates a
// cached copy of the active reel's command list every frame, which is how
// the shipped effects ([NewMorphSquareReel], [NewScaleSegmentedReel],
// [NewUnfoldReel]) morph one icon into another.
//
// # Quick start
//
// Wrap a vector image in an effect reel and drive it with a [Player]:
//
//	img := &kino.DrawCommandImage{ ... }
//	reel := kino.NewScaleSegmentedReel(kino.NewImageReel(img), true,
//		kino.Rect{X: 0, Y: 0, Width: 25, Height: 25},
//		kino.Rect{X: 60, Y: 60, Width: 50, Height: 50})
//
//	player := kino.NewPlayer(reel, true)
//	player.Play()
//
//	// each frame:
//	player.Update(dt)
//	reel.Draw(kino.NewGraphics(screen), kino.Pt(0, 0))
//
// # Timing
//
// All timing runs on integer [Progress] values in [0, ProgressMax], with
// table-driven easing ([Curve]) and segmented staggering ([Segmented])
// that fans a single timeline out across many independently delayed
// points. Numeric work uses the fixed-point types [Fixed16], [Fixed32],
// and [Fixed64]; gween easing functions plug in through [Eased].
//
// # Threading
//
// Kino is single-threaded: all reel state belongs to the
// goroutine that owns the frame loop, and nothing in the package blocks
// or locks.
//
// [Ebitengine]: https://ebitengine.org
package kino
