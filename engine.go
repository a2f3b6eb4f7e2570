package meander

// Config configures an Engine. Zero-value fields get defaults: a helix curve,
// a default spawner, the default window radius, and no backend or animator.
type Config struct {
	// Curve selects the path shape. Defaults to NewHelixCurve().
	Curve Curve
	// Spawner generates row content. Defaults to NewSpawner().
	Spawner *Spawner
	// Backend receives descriptor commands. Optional.
	Backend Backend
	// Animator is the shared animation scheduler. Optional: without one,
	// snaps still run (the navigator owns its own tween) but hover
	// animations and background fades apply their end states instantly.
	Animator *Animator
	// WindowRadius overrides DefaultWindowRadius when > 0.
	WindowRadius int
}

// Engine wires the path components together and drives them from a single
// frame tick. All state mutation happens inside Update; nothing blocks.
//
// Data flow per tick: injected/queued intents feed the navigator and the
// momentum scroller, which own the position scalar; every position change
// refreshes the window, which regenerates descriptors through the spawner and
// curve; the interactor then hit-tests the latest pointer ray against the
// refreshed window; the rig and background run last, independent of position.
type Engine struct {
	curve      Curve
	spawner    *Spawner
	window     *Window
	nav        *Navigator
	momentum   *Momentum
	interactor *Interactor
	rig        *Rig
	background *Background
	anim       *Animator

	ray    Ray
	hasRay bool

	inject []syntheticEvent

	debug      bool
	frameCount int
}

// NewEngine creates an Engine from cfg and populates the initial window at
// position zero.
func NewEngine(cfg Config) *Engine {
	curve := cfg.Curve
	if curve == nil {
		curve = NewHelixCurve()
	}
	spawner := cfg.Spawner
	if spawner == nil {
		spawner = NewSpawner()
	}

	window := NewWindow(curve, spawner)
	if cfg.WindowRadius > 0 {
		window.Radius = cfg.WindowRadius
	}
	if cfg.Backend != nil {
		window.SetBackend(cfg.Backend)
	}

	nav := NewNavigator(window)
	e := &Engine{
		curve:      curve,
		spawner:    spawner,
		window:     window,
		nav:        nav,
		momentum:   NewMomentum(nav),
		interactor: NewInteractor(window, cfg.Animator),
		rig:        NewRig(),
		background: NewBackground(cfg.Animator),
		anim:       cfg.Animator,
	}
	e.background.SetSection(0)
	return e
}

// Intent feeds a directional intent (+1 forward, -1 backward) to the
// navigator. Magnitude beyond the sign is ignored.
func (e *Engine) Intent(d float64) {
	e.nav.Intent(d)
}

// Drag feeds a continuous drag delta to the momentum scroller.
func (e *Engine) Drag(delta float64) {
	e.momentum.AddDelta(delta)
}

// Point sets the pointer pick ray used for hover hit testing on the next
// Update.
func (e *Engine) Point(ray Ray) {
	e.ray = ray
	e.hasRay = true
}

// PointOffset sets the rig's pointer-driven camera offset target, typically
// the pointer position normalized to [-1, 1] on each axis.
func (e *Engine) PointOffset(x, y float64) {
	e.rig.Point(x, y)
}

// Update advances the whole engine by dt seconds.
func (e *Engine) Update(dt float32) {
	e.drainInjected()

	e.nav.Update(dt)
	e.momentum.Update(dt)

	// The window may have churned; re-resolve any interrupted hover before
	// hit testing against the fresh descriptor set.
	e.interactor.Rebind()
	if e.hasRay {
		e.interactor.Point(e.ray)
	}

	e.rig.Update()
	e.background.SetSection(e.nav.Section())
	e.anim.Update(dt)

	e.frameCount++
	if e.debug {
		e.debugLog()
	}
}

// Position returns the current path position.
func (e *Engine) Position() float64 { return e.nav.Position() }

// Section returns the current agent section index.
func (e *Engine) Section() int { return e.nav.Section() }

// Window returns the engine's object window.
func (e *Engine) Window() *Window { return e.window }

// Navigator returns the navigation state machine.
func (e *Engine) Navigator() *Navigator { return e.nav }

// Momentum returns the momentum scroller.
func (e *Engine) Momentum() *Momentum { return e.momentum }

// Interactor returns the hover animator.
func (e *Engine) Interactor() *Interactor { return e.interactor }

// Rig returns the camera rig.
func (e *Engine) Rig() *Rig { return e.rig }

// Background returns the background gradient state.
func (e *Engine) Background() *Background { return e.background }

// SetDebugMode toggles per-frame state logging to stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}
