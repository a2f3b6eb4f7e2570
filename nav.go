package meander

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NavState identifies the navigation state machine's current state.
// Exactly one state is active at a time.
type NavState uint8

const (
	NavIdle     NavState = iota // no position tween running
	NavSnapping                 // easing toward a section boundary
)

// SnapDuration is the fixed length of a section snap, in seconds.
const SnapDuration float32 = 1.2

// Navigator owns the path position. It consumes directional intents and
// drives eased snap tweens between section boundaries; every position change
// refreshes the attached window. All other components read the position, none
// write it.
type Navigator struct {
	position float64
	state    NavState

	tween  *gween.Tween
	target float64

	window   *Window
	momentum *Momentum

	onSection   func(section int)
	lastSection int
}

// NewNavigator creates a Navigator at position zero. window may be nil.
func NewNavigator(window *Window) *Navigator {
	n := &Navigator{window: window}
	if window != nil {
		window.Refresh(0)
	}
	return n
}

// Position returns the current path position.
func (n *Navigator) Position() float64 {
	return n.position
}

// Section returns the current agent section index.
func (n *Navigator) Section() int {
	return SectionAt(n.position)
}

// State returns the current navigation state.
func (n *Navigator) State() NavState {
	return n.state
}

// Target returns the position the active snap is heading for. Only meaningful
// while State() == NavSnapping.
func (n *Navigator) Target() float64 {
	return n.target
}

// OnSection registers a callback fired whenever the agent section changes.
func (n *Navigator) OnSection(fn func(section int)) {
	n.onSection = fn
}

// Intent consumes a directional intent. Only the sign matters: the step is
// always exactly one section. The target section is clamped at zero, so a
// backward intent at the start is a no-op. Intents arriving while a snap is
// already running are ignored — at most one position tween is active at any
// time.
func (n *Navigator) Intent(d float64) {
	if n.state == NavSnapping || d == 0 {
		return
	}
	dir := 1
	if d < 0 {
		dir = -1
	}
	targetSection := n.Section() + dir
	if targetSection < 0 {
		targetSection = 0
	}
	target := float64(targetSection * RowsPerSection)
	n.startSnap(target)
}

// startSnap begins the single position tween toward target. Starting a snap
// cancels any momentum — the two modes never drive the position concurrently.
func (n *Navigator) startSnap(target float64) {
	if target == n.position {
		return
	}
	if n.momentum != nil {
		n.momentum.stop()
	}
	n.target = target
	n.tween = gween.New(float32(n.position), float32(target), SnapDuration, ease.OutCubic)
	n.state = NavSnapping
}

// Update advances an active snap by dt seconds. On completion the position
// lands exactly on the target and the state returns to NavIdle.
func (n *Navigator) Update(dt float32) {
	if n.state != NavSnapping {
		return
	}
	v, finished := n.tween.Update(dt)
	if finished {
		n.tween = nil
		n.state = NavIdle
		n.setPosition(n.target)
		return
	}
	n.setPosition(float64(v))
}

// setPosition is the single write path for the position scalar. It clamps at
// zero, refreshes the window, and reports section crossings.
func (n *Navigator) setPosition(p float64) {
	if p < 0 {
		p = 0
	}
	n.position = p
	if n.window != nil {
		n.window.Refresh(p)
	}
	if sec := SectionAt(p); sec != n.lastSection {
		n.lastSection = sec
		if n.onSection != nil {
			n.onSection(sec)
		}
	}
}

// snapToNearest snaps to the closer of the two surrounding section
// boundaries. Used by the momentum scroller when its velocity dies between
// boundaries.
func (n *Navigator) snapToNearest() {
	if n.state == NavSnapping {
		return
	}
	target := math.Round(n.position/RowsPerSection) * RowsPerSection
	if target < 0 {
		target = 0
	}
	n.startSnap(target)
}
