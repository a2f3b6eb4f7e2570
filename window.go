package meander

import "math"

// Window maintains the set of object descriptors visible around the current
// position: every row in [floor(pos)-Radius, floor(pos)+Radius). The window
// is a cache, never a source of truth — because Curve and Spawner are pure,
// the whole set can be regenerated from the position alone at any time.
//
// The Window exclusively owns descriptor lifetime. Destroy subscribers are
// notified before a descriptor is disposed or removed from the backend, so
// in-flight hover animations can be canceled rather than left dangling.
type Window struct {
	Radius int

	curve   Curve
	spawner *Spawner
	backend Backend

	objects map[SpawnKey]*Object
	rows    map[int][]*Object

	lo, hi int // active row range [lo, hi)
	valid  bool

	onDestroy []func(*Object)
}

// NewWindow creates a Window over the given curve and spawner. Either may be
// nil; refreshing an incomplete window is a no-op, not an error, so the
// window tolerates calls before full setup.
func NewWindow(curve Curve, spawner *Spawner) *Window {
	return &Window{
		Radius:  DefaultWindowRadius,
		curve:   curve,
		spawner: spawner,
		objects: make(map[SpawnKey]*Object),
		rows:    make(map[int][]*Object),
	}
}

// SetBackend attaches a rendering backend. Descriptors currently in the
// window are submitted to it immediately.
func (w *Window) SetBackend(b Backend) {
	w.backend = b
	if b == nil {
		return
	}
	for row := w.lo; row < w.hi; row++ {
		for _, o := range w.rows[row] {
			b.Add(groupFor(o.Kind), o)
		}
	}
}

// OnDestroy registers a callback fired for each descriptor about to be
// destroyed. The callback runs before the descriptor is disposed and before
// it is removed from the backend.
func (w *Window) OnDestroy(fn func(*Object)) {
	w.onDestroy = append(w.onDestroy, fn)
}

// Refresh updates the window to the given position, incrementally: rows that
// left the range are destroyed, rows that entered it are generated, rows that
// stayed get their distance-dependent opacity updated. Refreshing twice with
// the same position leaves the set unchanged.
func (w *Window) Refresh(position float64) {
	if w.curve == nil || w.spawner == nil {
		return
	}
	lo, hi := w.rangeFor(position)

	if !w.valid {
		w.populate(lo, hi, position)
		w.lo, w.hi = lo, hi
		w.valid = true
		return
	}
	if lo == w.lo && hi == w.hi {
		w.retune(position)
		return
	}
	if hi <= w.lo || lo >= w.hi {
		// Disjoint jump: nothing survives.
		w.clear()
		w.populate(lo, hi, position)
		w.lo, w.hi = lo, hi
		return
	}

	// Destroy rows that fell out of range.
	for row := w.lo; row < lo; row++ {
		w.destroyRow(row)
	}
	for row := hi; row < w.hi; row++ {
		w.destroyRow(row)
	}
	// Generate rows that came into range.
	for row := lo; row < w.lo; row++ {
		w.populateRow(row, position)
	}
	for row := w.hi; row < hi; row++ {
		w.populateRow(row, position)
	}
	w.lo, w.hi = lo, hi
	w.retune(position)
}

// Rebuild regenerates the entire window from scratch. The resulting set is
// the same deterministic image Refresh converges to; identities are fresh.
func (w *Window) Rebuild(position float64) {
	if w.curve == nil || w.spawner == nil {
		return
	}
	w.clear()
	lo, hi := w.rangeFor(position)
	w.populate(lo, hi, position)
	w.lo, w.hi = lo, hi
	w.valid = true
}

// Lookup re-resolves a spawn key to the current descriptor, or nil if the key
// is outside the window.
func (w *Window) Lookup(key SpawnKey) *Object {
	return w.objects[key]
}

// Each calls fn for every descriptor in the window.
func (w *Window) Each(fn func(*Object)) {
	for row := w.lo; row < w.hi; row++ {
		for _, o := range w.rows[row] {
			fn(o)
		}
	}
}

// Len returns the number of descriptors currently in the window.
func (w *Window) Len() int {
	return len(w.objects)
}

// Range returns the active row range [lo, hi).
func (w *Window) Range() (lo, hi int) {
	return w.lo, w.hi
}

func (w *Window) rangeFor(position float64) (lo, hi int) {
	base := int(math.Floor(position))
	return base - w.Radius, base + w.Radius
}

func (w *Window) populate(lo, hi int, position float64) {
	for row := lo; row < hi; row++ {
		w.populateRow(row, position)
	}
}

func (w *Window) populateRow(row int, position float64) {
	if row < 0 {
		return
	}
	objs := w.spawner.Spawn(row, w.curve.Sample(row), float64(row)-position)
	if len(objs) == 0 {
		return
	}
	w.rows[row] = objs
	for _, o := range objs {
		w.objects[o.Key()] = o
		if w.backend != nil {
			w.backend.Add(groupFor(o.Kind), o)
		}
	}
}

// destroyRow tears a row down in cancellation-before-destroy order: notify
// subscribers first, then remove from the backend, then dispose.
func (w *Window) destroyRow(row int) {
	objs, ok := w.rows[row]
	if !ok {
		return
	}
	for _, o := range objs {
		for _, fn := range w.onDestroy {
			fn(o)
		}
		if w.backend != nil {
			w.backend.Remove(groupFor(o.Kind), o)
		}
		delete(w.objects, o.Key())
		o.dispose()
	}
	delete(w.rows, row)
}

func (w *Window) clear() {
	for row := w.lo; row < w.hi; row++ {
		w.destroyRow(row)
	}
}

// retune updates the distance-dependent opacity of surviving dots and tells
// the backend they changed.
func (w *Window) retune(position float64) {
	for row := w.lo; row < w.hi; row++ {
		for _, o := range w.rows[row] {
			if o.Kind != KindDot {
				continue
			}
			o.Alpha = w.spawner.fade(float64(o.Row) - position)
			if w.backend != nil {
				w.backend.Update(groupFor(o.Kind), o)
			}
		}
	}
}

// groupFor maps an object kind to its named backend container group.
func groupFor(k ObjectKind) string {
	switch k {
	case KindDot:
		return GroupDots
	case KindMilestone, KindAgentBox:
		return GroupMarkers
	default:
		return GroupDecorations
	}
}
