package flicker

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame update metrics.
// Only populated when Scene.debug is true.
type frameStats struct {
	updateTime  time.Duration
	timersFired int
	particles   int
}

// debugLog prints update stats and pool counters to stderr.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[flicker] %s t=%.3f | update: %v | timers: %d (fired %d) | emitters: %d | tweens: %d | objects: %d\n",
		s.config.Name, s.clock.Now(), s.stats.updateTime,
		len(s.timers), s.stats.timersFired, len(s.emitters), len(s.tweens), len(s.objects))
	ps := s.pool.Stats()
	_, _ = fmt.Fprintf(os.Stderr,
		"[flicker] particles: %d | pool acquired: %d | released: %d | constructed: %d\n",
		s.stats.particles, ps.Acquired, ps.Released, ps.Constructed)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("flicker debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckChildCount warns on stderr if a node has more than 5000 children.
// Particle containers legitimately hold thousands.
const debugMaxChildCount = 5000

func debugCheckChildCount(n *Node) {
	if len(n.children) == debugMaxChildCount+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[flicker] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
