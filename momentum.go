package meander

import "math"

// Momentum is the continuous free-scroll mode: raw drag deltas accumulate a
// velocity which advances the position each tick and decays exponentially.
// Momentum never runs concurrently with a snap — starting a snap zeroes the
// velocity, and updates are suspended until the navigator is idle again.
type Momentum struct {
	// Decay is the fraction of velocity retained after one second. The
	// default brings a released scroll to near rest within about a second.
	Decay float64
	// Epsilon is the speed below which the scroller stops and hands off to
	// the navigator to snap to the nearest section boundary.
	Epsilon float64
	// Gain scales raw input deltas into velocity.
	Gain float64

	velocity float64
	active   bool
	nav      *Navigator
}

// NewMomentum creates a Momentum scroller bound to the navigator.
func NewMomentum(nav *Navigator) *Momentum {
	m := &Momentum{
		Decay:   0.004,
		Epsilon: 0.35,
		Gain:    1,
		nav:     nav,
	}
	if nav != nil {
		nav.momentum = m
	}
	return m
}

// AddDelta feeds a raw drag delta into the velocity. Deltas arriving during a
// snap are dropped.
func (m *Momentum) AddDelta(d float64) {
	if m.nav != nil && m.nav.State() == NavSnapping {
		return
	}
	m.velocity += d * m.Gain
	if m.velocity != 0 {
		m.active = true
	}
}

// Velocity returns the current scroll velocity in rows per second.
func (m *Momentum) Velocity() float64 {
	return m.velocity
}

// Update advances the position by the current velocity and applies friction.
// When the speed falls below Epsilon the scroller stops and asks the
// navigator to snap to the nearest boundary.
func (m *Momentum) Update(dt float32) {
	if !m.active {
		return
	}
	if m.nav == nil {
		m.stop()
		return
	}
	if m.nav.State() == NavSnapping {
		return // suspended until idle
	}
	m.nav.setPosition(m.nav.position + m.velocity*float64(dt))
	m.velocity *= math.Pow(m.Decay, float64(dt))
	if math.Abs(m.velocity) < m.Epsilon {
		m.stop()
		m.nav.snapToNearest()
	}
}

// stop zeroes the velocity and deactivates the scroller.
func (m *Momentum) stop() {
	m.velocity = 0
	m.active = false
}
