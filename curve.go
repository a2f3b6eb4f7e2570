package meander

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// CurveSample is the pure output of a Curve for one row: the lateral offset
// of the path center and its elevation above the ground plane.
type CurveSample struct {
	Lateral   float64
	Elevation float64
}

// Curve maps a row index to a path sample. Implementations must be pure and
// total for all rows >= 0: sampling the same row twice yields bit-identical
// output. The window relies on this to rebuild itself from the position alone.
type Curve interface {
	Sample(row int) CurveSample
}

// smootherstep is the quintic ramp t³(t(6t−15)+10), C² continuous at both ends.
func smootherstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * t * (t*(t*6-15) + 10)
}

// startRamp eases rows 0..10 from 0 to 1 through smootherstep.
func startRamp(row int) float64 {
	return smootherstep(math.Min(1, float64(row)/10))
}

// --- Helix ---

// HelixCurve is the default curve style: a primary cosine sweep with two
// decreasing harmonics, a low-frequency organic perturbation for long-range
// texture, and an independent harmonic elevation. The primary sweep and the
// elevation are eased in over the first ten rows; the organic perturbation is
// not, so row 0 is not perfectly straight.
type HelixCurve struct {
	AngularSpeed float64 // radians per row for the primary sweep
	Radius       float64 // amplitude of the primary lateral term

	Harmonic2 float64 // amplitude of the 2× harmonic
	Harmonic3 float64 // amplitude of the 3× harmonic

	OrganicAmp1 float64 // amplitude of the first perturbation term
	OrganicAmp2 float64 // amplitude of the second perturbation term

	ElevationSpeed float64 // radians per row for elevation
	ElevationAmp   float64
	BaseHeight     float64 // keeps the lowest point above the ground plane
}

// NewHelixCurve returns a HelixCurve with the default tuning.
func NewHelixCurve() *HelixCurve {
	return &HelixCurve{
		AngularSpeed:   0.08,
		Radius:         6,
		Harmonic2:      1.4,
		Harmonic3:      0.55,
		OrganicAmp1:    0.8,
		OrganicAmp2:    0.5,
		ElevationSpeed: 0.045,
		ElevationAmp:   0.6,
		BaseHeight:     0.9,
	}
}

// Organic perturbation frequencies. Deliberately unrelated to AngularSpeed so
// the texture never phase-locks with the primary sweep.
const (
	organicFreq1 = 0.0173
	organicFreq2 = 0.0289
)

// Sample implements Curve.
func (c *HelixCurve) Sample(row int) CurveSample {
	r := float64(row)
	angle := r * c.AngularSpeed

	lateral := math.Cos(angle)*c.Radius +
		math.Cos(2*angle)*c.Harmonic2 +
		math.Cos(3*angle)*c.Harmonic3

	organic := math.Sin(r*organicFreq1)*c.OrganicAmp1 +
		math.Cos(r*organicFreq2)*c.OrganicAmp2

	ramp := startRamp(row)

	elevation := math.Sin(r*c.ElevationSpeed)*c.ElevationAmp*ramp + c.BaseHeight

	return CurveSample{
		Lateral:   lateral*ramp + organic,
		Elevation: elevation,
	}
}

// --- Rounded arc ---

// ArcCurve is the alternate curve style: straight lead-in, a circular arc for
// rows 2..40, then alternating left/right half-sine swings per 80-row block.
// Structurally equivalent to HelixCurve: same contract, different body.
type ArcCurve struct {
	ArcRadius      float64 // lateral reach of the opening arc and the swings
	ElevationSpeed float64
	ElevationAmp   float64
	BaseHeight     float64
}

// NewArcCurve returns an ArcCurve with the default tuning.
func NewArcCurve() *ArcCurve {
	return &ArcCurve{
		ArcRadius:      5,
		ElevationSpeed: 0.05,
		ElevationAmp:   0.5,
		BaseHeight:     0.8,
	}
}

const (
	arcStartRow = 2
	arcEndRow   = 40
	arcBlock    = 80
)

// Sample implements Curve.
func (c *ArcCurve) Sample(row int) CurveSample {
	r := float64(row)
	ramp := startRamp(row)

	var lateral float64
	switch {
	case row < arcStartRow:
		lateral = 0
	case row <= arcEndRow:
		// Quarter arc easing the path off the start axis.
		theta := (r - arcStartRow) / (arcEndRow - arcStartRow) * (math.Pi / 2)
		lateral = (1 - math.Cos(theta)) * c.ArcRadius
	default:
		// Alternating half-sine swings, one direction per 80-row block.
		past := r - arcEndRow
		block := int(past) / arcBlock
		within := past - float64(block*arcBlock)
		dir := 1.0
		if block%2 == 1 {
			dir = -1
		}
		lateral = dir * math.Sin(within/arcBlock*math.Pi) * c.ArcRadius
	}

	elevation := math.Sin(r*c.ElevationSpeed)*c.ElevationAmp*ramp + c.BaseHeight

	return CurveSample{Lateral: lateral * ramp, Elevation: elevation}
}

// --- Perlin drift ---

// DriftCurve shapes the path with fixed-seed Perlin noise instead of closed
// harmonics. The generator is seeded once at construction, so sampling stays
// deterministic: the same row always yields the same output for a given seed.
type DriftCurve struct {
	noise *perlin.Perlin

	Frequency    float64 // noise-space distance per row
	Radius       float64
	ElevationAmp float64
	BaseHeight   float64
}

// elevationOffset shifts the elevation samples away from the lateral ones in
// noise space so the two axes are uncorrelated.
const driftElevationOffset = 4096

// NewDriftCurve returns a DriftCurve seeded with the given value.
func NewDriftCurve(seed int64) *DriftCurve {
	return &DriftCurve{
		noise:        perlin.NewPerlin(2, 2, 3, seed),
		Frequency:    0.02,
		Radius:       7,
		ElevationAmp: 0.55,
		BaseHeight:   0.85,
	}
}

// Sample implements Curve.
func (c *DriftCurve) Sample(row int) CurveSample {
	r := float64(row)
	ramp := startRamp(row)

	lateral := c.noise.Noise1D(r*c.Frequency) * c.Radius * ramp
	elevation := c.noise.Noise1D(r*c.Frequency+driftElevationOffset)*c.ElevationAmp*ramp + c.BaseHeight

	return CurveSample{Lateral: lateral, Elevation: elevation}
}
