package meander

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PropertyDelta drives one float64 field toward a target value. Fields are
// addressed by pointer so a delta can target any descriptor or component
// property without reflection.
type PropertyDelta struct {
	Field *float64
	To    float64
}

// Handle is a cancelable scheduled animation. A nil *Handle is returned when
// the work was applied synchronously (nil Animator); calling Cancel or Done
// on it is safe.
type Handle struct {
	target *Object // optional; disposal stops the handle without writes

	deltas     []PropertyDelta
	duration   float32
	easeFn     ease.TweenFunc
	delay      float32
	onComplete func()

	// tweens are built lazily when the delay expires so each tween starts
	// from the field's value at that moment, not at schedule time.
	tweens   []*gween.Tween
	done     bool
	canceled bool
}

// Cancel stops the handle immediately, leaving the fields at their current
// values. The completion callback does not fire.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.canceled = true
	h.done = true
}

// Done reports whether the handle has finished or been canceled.
// A nil handle is done.
func (h *Handle) Done() bool {
	return h == nil || h.done
}

// update advances the handle by dt seconds. Returns true when finished.
func (h *Handle) update(dt float32) bool {
	if h.done {
		return true
	}
	if h.target != nil && h.target.IsDisposed() {
		h.done = true
		return true
	}
	if h.delay > 0 {
		h.delay -= dt
		if h.delay > 0 {
			return false
		}
		// Carry the overshoot into the first tween step. On an exact
		// boundary, start next tick so every handle scheduled for this tick
		// has written before the start value is captured.
		dt = -h.delay
		h.delay = 0
		if dt == 0 {
			return false
		}
	}
	if h.tweens == nil {
		h.tweens = make([]*gween.Tween, len(h.deltas))
		for i, d := range h.deltas {
			h.tweens[i] = gween.New(float32(*d.Field), float32(d.To), h.duration, h.easeFn)
		}
	}
	allDone := true
	for i, tw := range h.tweens {
		v, finished := tw.Update(dt)
		*h.deltas[i].Field = float64(v)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		h.done = true
		if h.onComplete != nil {
			h.onComplete()
		}
	}
	return h.done
}

// Animator is the injected animation scheduler capability: it owns every
// active property tween and advances them on frame ticks. A nil *Animator is
// a valid, handled state — scheduling on it applies end states immediately
// and returns a nil handle. Absence degrades transitions, it never fails them.
//
// There is no global animator; components receive one explicitly.
type Animator struct {
	handles []*Handle
}

// NewAnimator creates an empty Animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Schedule starts easing the given fields toward their targets over duration
// seconds. target may be nil; when set, the handle stops silently if the
// target is disposed mid-flight. onComplete fires once when every field
// reaches its target (not on cancellation).
func (a *Animator) Schedule(target *Object, deltas []PropertyDelta, duration float32, fn ease.TweenFunc, onComplete func()) *Handle {
	return a.scheduleAt(0, target, deltas, duration, fn, onComplete)
}

func (a *Animator) scheduleAt(delay float32, target *Object, deltas []PropertyDelta, duration float32, fn ease.TweenFunc, onComplete func()) *Handle {
	if a == nil {
		for _, d := range deltas {
			if d.Field != nil {
				*d.Field = d.To
			}
		}
		if onComplete != nil {
			onComplete()
		}
		return nil
	}
	h := &Handle{
		target:     target,
		deltas:     deltas,
		duration:   duration,
		easeFn:     fn,
		delay:      delay,
		onComplete: onComplete,
	}
	a.handles = append(a.handles, h)
	return h
}

// CancelAll cancels every active handle bound to the given target.
func (a *Animator) CancelAll(target *Object) {
	if a == nil || target == nil {
		return
	}
	for _, h := range a.handles {
		if h.target == target {
			h.Cancel()
		}
	}
}

// Update advances all active handles by dt seconds and compacts out the
// finished ones.
func (a *Animator) Update(dt float32) {
	if a == nil {
		return
	}
	kept := a.handles[:0]
	for _, h := range a.handles {
		if !h.update(dt) {
			kept = append(kept, h)
		}
	}
	// Clear the tail so finished handles are not retained.
	for i := len(kept); i < len(a.handles); i++ {
		a.handles[i] = nil
	}
	a.handles = kept
}

// Active returns the number of in-flight handles.
func (a *Animator) Active() int {
	if a == nil {
		return 0
	}
	return len(a.handles)
}

// Timeline composes multiple scheduled steps with relative start offsets.
// Obtain one from Animator.Timeline; a nil Timeline (from a nil Animator)
// applies every step's end state immediately.
type Timeline struct {
	a      *Animator
	cursor float32
}

// Timeline returns a new timeline whose cursor starts at offset zero.
func (a *Animator) Timeline() *Timeline {
	if a == nil {
		return nil
	}
	return &Timeline{a: a}
}

// At moves the timeline cursor to an absolute offset from the timeline start.
func (tl *Timeline) At(offset float32) *Timeline {
	if tl != nil {
		tl.cursor = offset
	}
	return tl
}

// Add schedules a step at the current cursor and advances the cursor past it.
func (tl *Timeline) Add(target *Object, deltas []PropertyDelta, duration float32, fn ease.TweenFunc) *Timeline {
	if tl == nil {
		var nilAnim *Animator
		nilAnim.Schedule(target, deltas, duration, fn, nil)
		return nil
	}
	tl.a.scheduleAt(tl.cursor, target, deltas, duration, fn, nil)
	tl.cursor += duration
	return tl
}
