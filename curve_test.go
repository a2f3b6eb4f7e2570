package meander

import (
	"math"
	"testing"
)

func TestHelixSampleDeterministic(t *testing.T) {
	c := NewHelixCurve()
	for row := 0; row < 500; row++ {
		a := c.Sample(row)
		b := c.Sample(row)
		if a != b {
			t.Fatalf("row %d: resample differs: %+v vs %+v", row, a, b)
		}
	}
}

func TestHelixRowZeroCarriesOrganicTexture(t *testing.T) {
	c := NewHelixCurve()
	s := c.Sample(0)
	// The start ramp zeroes the primary sweep at row 0, but the organic
	// perturbation is not eased: row 0 is not perfectly straight.
	want := math.Sin(0)*c.OrganicAmp1 + math.Cos(0)*c.OrganicAmp2
	if math.Abs(s.Lateral-want) > 1e-12 {
		t.Errorf("Lateral(0) = %f, want %f (organic terms only)", s.Lateral, want)
	}
	if s.Lateral == 0 {
		t.Error("Lateral(0) = 0, organic perturbation should not be eased away")
	}
}

func TestHelixRampFullAfterTenRows(t *testing.T) {
	c := NewHelixCurve()
	// Past row 10 the ramp is exactly 1: the sample equals the un-eased
	// closed form.
	row := 25
	r := float64(row)
	angle := r * c.AngularSpeed
	want := math.Cos(angle)*c.Radius + math.Cos(2*angle)*c.Harmonic2 + math.Cos(3*angle)*c.Harmonic3 +
		math.Sin(r*organicFreq1)*c.OrganicAmp1 + math.Cos(r*organicFreq2)*c.OrganicAmp2
	if got := c.Sample(row).Lateral; math.Abs(got-want) > 1e-12 {
		t.Errorf("Lateral(%d) = %f, want %f", row, got, want)
	}
}

func TestHelixElevationNeverTouchesGround(t *testing.T) {
	c := NewHelixCurve()
	for row := 0; row < 2000; row++ {
		if e := c.Sample(row).Elevation; e <= 0 {
			t.Fatalf("row %d: elevation %f, want > 0", row, e)
		}
	}
}

func TestSmootherstepEndpoints(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tc := range cases {
		if got := smootherstep(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("smootherstep(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestArcSampleDeterministic(t *testing.T) {
	c := NewArcCurve()
	for row := 0; row < 500; row++ {
		if c.Sample(row) != c.Sample(row) {
			t.Fatalf("row %d: resample differs", row)
		}
	}
}

func TestArcLeadInIsStraight(t *testing.T) {
	c := NewArcCurve()
	for row := 0; row < arcStartRow; row++ {
		if l := c.Sample(row).Lateral; l != 0 {
			t.Errorf("row %d: lateral %f, want 0 before the arc", row, l)
		}
	}
}

func TestArcBlocksAlternateSides(t *testing.T) {
	c := NewArcCurve()
	// Mid-swing of block 0 bends one way, mid-swing of block 1 the other.
	first := c.Sample(arcEndRow + arcBlock/2).Lateral
	second := c.Sample(arcEndRow + arcBlock + arcBlock/2).Lateral
	if first <= 0 {
		t.Errorf("block 0 mid-swing = %f, want > 0", first)
	}
	if second >= 0 {
		t.Errorf("block 1 mid-swing = %f, want < 0", second)
	}
}

func TestDriftSampleDeterministicPerSeed(t *testing.T) {
	a := NewDriftCurve(7)
	b := NewDriftCurve(7)
	for row := 0; row < 300; row++ {
		if a.Sample(row) != b.Sample(row) {
			t.Fatalf("row %d: same seed produced different samples", row)
		}
	}

	other := NewDriftCurve(8)
	differs := false
	for row := 20; row < 300; row++ {
		if a.Sample(row) != other.Sample(row) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("different seeds produced identical curves")
	}
}

func TestHelixSampleZeroAlloc(t *testing.T) {
	c := NewHelixCurve()
	result := testing.AllocsPerRun(100, func() {
		_ = c.Sample(42)
	})
	if result > 0 {
		t.Errorf("Sample allocated %f times per run, want 0", result)
	}
}
