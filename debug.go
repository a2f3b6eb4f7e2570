package meander

import (
	"fmt"
	"os"
)

// debugLog prints the engine's per-frame state to stderr. Only called when
// debug mode is on.
func (e *Engine) debugLog() {
	// Once a second at the default 60 TPS, to keep stderr readable.
	if e.frameCount%60 != 0 {
		return
	}
	state := "idle"
	if e.nav.State() == NavSnapping {
		state = fmt.Sprintf("snapping->%.0f", e.nav.Target())
	}
	lo, hi := e.window.Range()
	_, _ = fmt.Fprintf(os.Stderr,
		"[meander] pos: %.2f | section: %d | nav: %s | velocity: %.2f | window: [%d,%d) %d objects | tweens: %d\n",
		e.nav.Position(), e.nav.Section(), state, e.momentum.Velocity(),
		lo, hi, e.window.Len(), e.anim.Active())
}
