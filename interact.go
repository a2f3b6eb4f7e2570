package meander

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Ray is a pointer pick ray in path space. Dir does not need to be normalized.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// hitSphere returns the smallest non-negative ray parameter at which the ray
// enters a sphere, or false on a miss.
func (r Ray) hitSphere(center Vec3, radius float64) (float64, bool) {
	dir := r.Dir.Norm()
	oc := r.Origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RevertDuration is the length of the eased tween restoring a descriptor to
// its pre-hover snapshot.
const RevertDuration float32 = 0.3

// hoverSnapshot is the transform/color state captured once at hover start and
// restored on hover end. Discarded when the descriptor is destroyed.
type hoverSnapshot struct {
	position Vec3
	rotation Vec3
	scale    Vec3
	color    Color
	alpha    float64
}

func snapshotOf(o *Object) hoverSnapshot {
	return hoverSnapshot{
		position: o.Position,
		rotation: o.Rotation,
		scale:    o.Scale,
		color:    o.Color,
		alpha:    o.Alpha,
	}
}

// apply writes the snapshot back onto the descriptor.
func (s hoverSnapshot) apply(o *Object) {
	o.Position = s.position
	o.Rotation = s.rotation
	o.Scale = s.scale
	o.Color = s.color
	o.Alpha = s.alpha
}

// hoverStep is one keyframe of a hover strategy: ease one field to a target
// over duration seconds, starting at a relative offset from hover start.
// Targets are computed from the descriptor at dispatch time so strategies
// stay pure descriptions, independent of any particular object.
type hoverStep struct {
	field    func(*Object) *float64
	to       func(*Object) float64
	duration float32
	fn       ease.TweenFunc
	at       float32
}

// hoverStrategy is the keyframe sequence dispatched for one object kind.
type hoverStrategy []hoverStep

// Field selector helpers.
func fPosY(o *Object) *float64   { return &o.Position.Y }
func fRotY(o *Object) *float64   { return &o.Rotation.Y }
func fRotZ(o *Object) *float64   { return &o.Rotation.Z }
func fScaleX(o *Object) *float64 { return &o.Scale.X }
func fScaleY(o *Object) *float64 { return &o.Scale.Y }
func fScaleZ(o *Object) *float64 { return &o.Scale.Z }
func fColorR(o *Object) *float64 { return &o.Color.R }
func fColorG(o *Object) *float64 { return &o.Color.G }
func fColorB(o *Object) *float64 { return &o.Color.B }
func fAlpha(o *Object) *float64  { return &o.Alpha }

func constv(v float64) func(*Object) float64 { return func(*Object) float64 { return v } }
func times(f func(*Object) *float64, k float64) func(*Object) float64 {
	return func(o *Object) float64 { return *f(o) * k }
}
func plus(f func(*Object) *float64, d float64) func(*Object) float64 {
	return func(o *Object) float64 { return *f(o) + d }
}

// defaultStrategies is the kind → hover animation dispatch table.
//
//	dots            pulse and glow
//	milestones      lift and spin
//	agent boxes     pop and brighten
//	assorted shapes bounce and roll
//	decoratives     wobble
//	breakable cubes break apart (burst out, tumble, fade)
func defaultStrategies() map[ObjectKind]hoverStrategy {
	return map[ObjectKind]hoverStrategy{
		KindDot: {
			{field: fScaleX, to: times(fScaleX, 2.2), duration: 0.2, fn: ease.OutQuad},
			{field: fScaleY, to: times(fScaleY, 2.2), duration: 0.2, fn: ease.OutQuad},
			{field: fScaleZ, to: times(fScaleZ, 2.2), duration: 0.2, fn: ease.OutQuad},
			{field: fAlpha, to: constv(1), duration: 0.15, fn: ease.OutQuad},
			{field: fColorB, to: constv(1), duration: 0.25, fn: ease.OutQuad},
		},
		KindMilestone: {
			{field: fPosY, to: plus(fPosY, 0.6), duration: 0.3, fn: ease.OutCubic},
			{field: fRotY, to: constv(math.Pi), duration: 0.6, fn: ease.InOutQuad},
		},
		KindAgentBox: {
			{field: fScaleX, to: times(fScaleX, 1.35), duration: 0.25, fn: ease.OutBack},
			{field: fScaleY, to: times(fScaleY, 1.35), duration: 0.25, fn: ease.OutBack},
			{field: fScaleZ, to: times(fScaleZ, 1.35), duration: 0.25, fn: ease.OutBack},
			{field: fColorR, to: constv(0.75), duration: 0.25, fn: ease.OutQuad},
			{field: fColorG, to: constv(0.9), duration: 0.25, fn: ease.OutQuad},
		},
		KindAssortedShape: {
			{field: fPosY, to: plus(fPosY, 0.9), duration: 0.22, fn: ease.OutQuad},
			{field: fPosY, to: plus(fPosY, 0), duration: 0.5, fn: ease.OutBounce, at: 0.22},
			{field: fRotZ, to: constv(math.Pi * 2), duration: 0.72, fn: ease.InOutQuad},
		},
		KindDecorative: {
			{field: fRotZ, to: constv(0.5), duration: 0.12, fn: ease.OutQuad},
			{field: fRotZ, to: constv(-0.5), duration: 0.24, fn: ease.InOutQuad, at: 0.12},
			{field: fRotZ, to: constv(0), duration: 0.12, fn: ease.OutQuad, at: 0.36},
		},
		KindBreakableCube: {
			{field: fScaleX, to: times(fScaleX, 1.8), duration: 0.15, fn: ease.OutQuad},
			{field: fScaleY, to: times(fScaleY, 0.4), duration: 0.15, fn: ease.OutQuad},
			{field: fRotZ, to: constv(math.Pi / 3), duration: 0.4, fn: ease.OutCubic, at: 0.1},
			{field: fAlpha, to: constv(0.25), duration: 0.35, fn: ease.InQuad, at: 0.15},
		},
	}
}

// Interactor hit-tests pointer rays against the window's interactive
// descriptors and drives per-kind hover animations. It holds only non-owning
// references: the window's destroy notification invalidates them, and a stale
// or destroyed hover target is dropped silently, never an error.
type Interactor struct {
	window *Window
	anim   *Animator

	strategies map[ObjectKind]hoverStrategy

	hovered     *Object
	snapshot    hoverSnapshot
	hasSnapshot bool

	// reverting holds the rest state of each descriptor whose revert tween is
	// still in flight. A re-hover mid-revert must not snapshot the half-way
	// values, or the rest state would drift a little on every pass.
	reverting map[*Object]hoverSnapshot

	// rebind state: when the hovered descriptor is destroyed by a refresh,
	// its key is kept so the hover can re-resolve to the regenerated
	// descriptor at the same (row, column, kind).
	rebindKey   SpawnKey
	rebindArmed bool
}

// NewInteractor creates an Interactor over the window. anim may be nil, in
// which case hover animations apply their end states instantly. The
// interactor subscribes to the window's destroy notifications.
func NewInteractor(window *Window, anim *Animator) *Interactor {
	it := &Interactor{
		window:     window,
		anim:       anim,
		strategies: defaultStrategies(),
		reverting:  make(map[*Object]hoverSnapshot),
	}
	if window != nil {
		window.OnDestroy(it.objectDestroyed)
	}
	return it
}

// Hovered returns the currently hovered descriptor, or nil.
func (it *Interactor) Hovered() *Object {
	return it.hovered
}

// Point hit-tests the ray and updates the hover target. On a target change
// the previous target reverts to its snapshot and the new one gets its
// kind-specific animation.
func (it *Interactor) Point(ray Ray) {
	hit := it.pick(ray)
	if hit == it.hovered {
		return
	}
	it.leave()
	if hit == nil {
		return
	}
	it.hovered = hit
	it.rebindArmed = false
	it.anim.CancelAll(hit)
	if rest, ok := it.reverting[hit]; ok {
		// An interrupted revert finishes synchronously, so the snapshot below
		// captures the true rest state, never a half-reverted one.
		rest.apply(hit)
		delete(it.reverting, hit)
	}
	it.snapshot = snapshotOf(hit)
	it.hasSnapshot = true
	it.dispatch(hit)
}

// Clear ends any active hover as if the pointer had left every descriptor.
func (it *Interactor) Clear() {
	it.leave()
	it.rebindArmed = false
}

// pick returns the interactive descriptor with the nearest ray intersection,
// or nil when nothing is hit.
func (it *Interactor) pick(ray Ray) *Object {
	if it.window == nil {
		return nil
	}
	var best *Object
	bestT := math.Inf(1)
	it.window.Each(func(o *Object) {
		if !o.Interactive || o.IsDisposed() {
			return
		}
		if t, ok := ray.hitSphere(o.Position, o.hitRadius()); ok && t < bestT {
			bestT = t
			best = o
		}
	})
	return best
}

// leave reverts the current hover target, if any, and discards the snapshot.
func (it *Interactor) leave() {
	o := it.hovered
	it.hovered = nil
	if o == nil || !it.hasSnapshot {
		it.hasSnapshot = false
		return
	}
	it.hasSnapshot = false
	if o.IsDisposed() {
		return // already destroyed; nothing to revert
	}
	it.anim.CancelAll(o)
	snap := it.snapshot
	it.reverting[o] = snap
	it.anim.Schedule(o, []PropertyDelta{
		{&o.Position.X, snap.position.X},
		{&o.Position.Y, snap.position.Y},
		{&o.Position.Z, snap.position.Z},
		{&o.Rotation.X, snap.rotation.X},
		{&o.Rotation.Y, snap.rotation.Y},
		{&o.Rotation.Z, snap.rotation.Z},
		{&o.Scale.X, snap.scale.X},
		{&o.Scale.Y, snap.scale.Y},
		{&o.Scale.Z, snap.scale.Z},
		{&o.Color.R, snap.color.R},
		{&o.Color.G, snap.color.G},
		{&o.Color.B, snap.color.B},
		{&o.Alpha, snap.alpha},
	}, RevertDuration, ease.OutQuad, func() {
		delete(it.reverting, o)
	})
}

// dispatch starts the kind-specific hover animation on o.
func (it *Interactor) dispatch(o *Object) {
	strategy, ok := it.strategies[o.Kind]
	if !ok {
		return
	}
	// Resolve every target against the rest state before any step writes, so
	// relative targets stay correct when a nil animator applies steps
	// synchronously.
	targets := make([]float64, len(strategy))
	for i, step := range strategy {
		targets[i] = step.to(o)
	}
	tl := it.anim.Timeline()
	for i, step := range strategy {
		tl = tl.At(step.at).Add(o, []PropertyDelta{{step.field(o), targets[i]}}, step.duration, step.fn)
	}
}

// objectDestroyed is the window's destroy notification. Runs before the
// descriptor is disposed, so cancellation always precedes destruction.
func (it *Interactor) objectDestroyed(o *Object) {
	delete(it.reverting, o)
	if o != it.hovered {
		return
	}
	it.anim.CancelAll(o)
	it.rebindKey = o.Key()
	it.rebindArmed = true
	it.hovered = nil
	it.hasSnapshot = false
}

// Rebind re-resolves a hover interrupted by a window refresh: if a descriptor
// with the same (row, column, kind) key regenerated, it becomes the new hover
// target with a fresh snapshot. Call after each refresh.
func (it *Interactor) Rebind() {
	if !it.rebindArmed || it.window == nil {
		return
	}
	it.rebindArmed = false
	o := it.window.Lookup(it.rebindKey)
	if o == nil || !o.Interactive {
		return
	}
	it.hovered = o
	it.snapshot = snapshotOf(o)
	it.hasSnapshot = true
	it.dispatch(o)
}
