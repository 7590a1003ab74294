package kino

import "time"

// Player drives a reel from a frame loop. Each tick the caller hands it
// the frame delta; the player accumulates elapsed time, feeds it to the
// reel, and reports whether the reel's output changed so the caller can
// schedule a redraw.
//
//	player := kino.NewPlayer(reel, true)
//	player.Play()
//	// per frame:
//	if player.Update(dt) {
//	    // redraw
//	}
type Player struct {
	reel    Reel
	ownReel bool

	elapsed time.Duration
	playing bool
	loop    bool

	onUpdate func()
	onDone   func()

	disposed bool
}

// NewPlayer wraps reel in a paused player. When own is set the player
// disposes the reel with itself.
func NewPlayer(reel Reel, own bool) *Player {
	return &Player{reel: reel, ownReel: own}
}

// Dispose releases the player and any owned reel. Using a disposed
// player is a no-op.
func (p *Player) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.playing = false
	if p.ownReel {
		if d, ok := p.reel.(Disposer); ok {
			d.Dispose()
		}
	}
	p.reel = nil
}

// SetReel swaps the driven reel, disposing the previous one if owned.
// Playback restarts from zero, paused.
func (p *Player) SetReel(reel Reel, own bool) {
	if p.ownReel {
		if d, ok := p.reel.(Disposer); ok {
			d.Dispose()
		}
	}
	p.reel = reel
	p.ownReel = own
	p.elapsed = 0
	p.playing = false
	if reel != nil {
		// A reel driven elsewhere may hold a stale cursor; align it
		// before the first draw rather than the first Update.
		reel.SetElapsed(0)
	}
}

// Reel returns the driven reel.
func (p *Player) Reel() Reel { return p.reel }

// SetOnUpdate installs a callback fired whenever an Update tick changed
// the reel's output.
func (p *Player) SetOnUpdate(fn func()) { p.onUpdate = fn }

// SetOnDone installs a callback fired once when playback reaches the
// reel's duration. Looping and infinite reels never fire it.
func (p *Player) SetOnDone(fn func()) { p.onDone = fn }

// SetLoop makes playback wrap around at the reel's duration instead of
// stopping. Has no effect on infinite reels, which never finish.
func (p *Player) SetLoop(loop bool) { p.loop = loop }

// Play resumes playback from the current cursor.
func (p *Player) Play() {
	if p.disposed || p.reel == nil {
		return
	}
	p.playing = true
}

// PlayFromStart rewinds and plays.
func (p *Player) PlayFromStart() {
	p.Rewind()
	p.Play()
}

// Pause halts playback, keeping the cursor.
func (p *Player) Pause() { p.playing = false }

// Playing reports whether the player is advancing.
func (p *Player) Playing() bool { return p.playing }

// Rewind moves the cursor back to zero and pushes it into the reel.
func (p *Player) Rewind() {
	p.elapsed = 0
	if p.reel != nil {
		p.reel.SetElapsed(0)
	}
}

// Elapsed returns the playback cursor.
func (p *Player) Elapsed() time.Duration { return p.elapsed }

// SetElapsed scrubs the cursor to an absolute position and reports
// whether the reel's output changed. Scrubbing does not change the
// playing state.
func (p *Player) SetElapsed(elapsed time.Duration) bool {
	if p.disposed || p.reel == nil {
		return false
	}
	p.elapsed = elapsed
	return p.reel.SetElapsed(elapsed)
}

// Finished reports whether the cursor has reached the reel's duration.
// Infinite reels never finish.
func (p *Player) Finished() bool {
	if p.reel == nil {
		return true
	}
	d := p.reel.Duration()
	return d != DurationInfinite && p.elapsed >= d
}

// Update advances playback by dt and reports whether the reel's output
// changed. A finished non-looping player pauses itself and fires the
// done callback once, after the final position has been applied.
func (p *Player) Update(dt time.Duration) bool {
	if p.disposed || !p.playing || p.reel == nil {
		return false
	}
	p.elapsed += dt
	d := p.reel.Duration()

	finished := false
	if d != DurationInfinite && p.elapsed >= d {
		if p.loop && d > 0 {
			p.elapsed %= d
		} else {
			p.elapsed = d
			finished = true
		}
	}

	changed := p.reel.SetElapsed(p.elapsed)
	if changed && p.onUpdate != nil {
		p.onUpdate()
	}
	if finished {
		p.playing = false
		if p.onDone != nil {
			p.onDone()
		}
	}
	return changed
}

// Draw renders the driven reel.
func (p *Player) Draw(g *Graphics, offset Point) {
	if p.disposed || p.reel == nil {
		return
	}
	p.reel.Draw(g, offset)
}

// DrawProcessed renders the driven reel through a processor.
func (p *Player) DrawProcessed(g *Graphics, offset Point, proc Processor) {
	if p.disposed || p.reel == nil {
		return
	}
	p.reel.DrawProcessed(g, offset, proc)
}
