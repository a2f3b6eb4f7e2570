package meander

// Rig smooths pointer-driven camera offsets with exponential smoothing:
// every tick the offset moves a fixed fraction of the remaining distance
// toward the target. Purely cosmetic — it runs independently of path
// navigation and never blocks input.
type Rig struct {
	// X and Y are the smoothed camera offsets.
	X, Y float64

	// Smoothing is the per-tick approach fraction. Values around 0.05–0.08
	// give a soft trailing feel; 1 snaps immediately.
	Smoothing float64

	targetX, targetY float64
}

// NewRig returns a Rig with the default smoothing factor.
func NewRig() *Rig {
	return &Rig{Smoothing: 0.06}
}

// Point sets the offset target, typically from a normalized pointer position.
func (r *Rig) Point(x, y float64) {
	r.targetX = x
	r.targetY = y
}

// Update moves the offset toward the target by the smoothing fraction.
func (r *Rig) Update() {
	r.X += (r.targetX - r.X) * r.Smoothing
	r.Y += (r.targetY - r.Y) * r.Smoothing
}
