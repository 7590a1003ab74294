package kino

import (
	"fmt"
	"os"
)

// globalDebug gates the stderr transform log. Plain bool — kino is
// single-threaded.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, every
// transform application logs its point count, clone/apply counters, and
// position to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugLogApply prints per-apply stats for a transform reel.
func debugLogApply(r *TransformReel) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[kino] apply: points=%d applies=%d clones=%d normalized=%d elapsed=%v\n",
		r.cachePoints, r.applyCount, r.cloneCount, r.normalized, r.elapsed)
}
