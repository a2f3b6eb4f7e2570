package meander

import "math"

// RowsPerSection is the number of path rows between two agent waypoints.
// Section boundaries (multiples of 60) are the snap targets for discrete
// navigation.
const RowsPerSection = 60

// DefaultWindowRadius is the number of rows generated on each side of the
// current position. The visible window spans [floor(pos)-R, floor(pos)+R).
const DefaultWindowRadius = 30

// Vec3 is a 3D vector. X is lateral offset from the path center, Y is
// elevation above the ground plane, Z is distance along the path (one unit
// per row).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Norm returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ObjectKind distinguishes the shapes generated along the path. The kind
// selects the render group, the hit radius, and the hover animation strategy.
type ObjectKind uint8

const (
	KindDot           ObjectKind = iota // ground dot, six per row
	KindMilestone                       // tall marker every 40 rows
	KindAgentBox                        // named waypoint box every 60 rows
	KindAssortedShape                   // larger decorative shape every 15 rows
	KindDecorative                      // small decorative shape every 8 rows
	KindBreakableCube                   // breakable pair every 50 rows
)

// String returns the lower-case kind name used for debug output.
func (k ObjectKind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindMilestone:
		return "milestone"
	case KindAgentBox:
		return "agentBox"
	case KindAssortedShape:
		return "assortedShape"
	case KindDecorative:
		return "decorative"
	case KindBreakableCube:
		return "breakableCube"
	default:
		return "unknown"
	}
}

// SpawnKey identifies a generated object across window rebuilds. Descriptor
// identity is ephemeral (rebuilds create fresh objects), so anything tracking
// an object across a refresh must key by (Row, Column, Kind) and re-resolve.
type SpawnKey struct {
	Row    int
	Column int
	Kind   ObjectKind
}

// Object is a generated path decoration descriptor. Objects are created by
// the Spawner and owned by the Window while their row lies inside the active
// range; when the row leaves the range the Window disposes them. Other
// components hold non-owning references and must drop them on the Window's
// destroy notification.
type Object struct {
	Row    int
	Column int
	Kind   ObjectKind

	Position Vec3
	Rotation Vec3 // Euler radians
	Scale    Vec3

	Color Color
	Alpha float64

	Interactive bool

	// Variant selects the shape flavor for KindAssortedShape.
	Variant int

	// Agent carries waypoint metadata for KindAgentBox, nil otherwise.
	Agent *AgentInfo

	disposed bool
}

// Key returns the object's stable identity across window rebuilds.
func (o *Object) Key() SpawnKey {
	return SpawnKey{Row: o.Row, Column: o.Column, Kind: o.Kind}
}

// IsDisposed reports whether the owning Window has destroyed this object.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// dispose marks the object dead and drops its metadata reference.
func (o *Object) dispose() {
	o.disposed = true
	o.Agent = nil
}

// hitRadius returns the bounding-sphere radius used for pointer-ray picking.
func (o *Object) hitRadius() float64 {
	r := o.Scale.X
	if o.Scale.Y > r {
		r = o.Scale.Y
	}
	if o.Scale.Z > r {
		r = o.Scale.Z
	}
	return r * 0.75
}

// RowAt returns the row index anchoring the window at the given position.
func RowAt(position float64) int {
	return int(math.Floor(position))
}

// SectionAt returns the agent section index for the given position.
// Positions are clamped at zero, so the result is never negative.
func SectionAt(position float64) int {
	if position <= 0 {
		return 0
	}
	return int(math.Floor(position / RowsPerSection))
}
