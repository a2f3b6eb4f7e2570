package meander

import "math"

// DotsPerRow is the number of ground dots spread across each row.
const DotsPerRow = 6

// AssortedVariantCount is the number of shape flavors for KindAssortedShape.
const AssortedVariantCount = 4

// Spawner generates the object descriptors for one row. Spawn is pure: the
// same (row, sample, distance) inputs always produce the same descriptors, in
// the same order, which is what makes the window a rebuildable cache.
//
// The spawn predicates are evaluated independently; a row may satisfy several
// (row 120 carries both a milestone and an agent box).
type Spawner struct {
	// DotSpread is the total lateral width the six ground dots cover.
	DotSpread float64
	// FadeDistance is the row distance at which dot opacity reaches MinAlpha.
	FadeDistance float64
	// MinAlpha is the opacity floor for distant rows.
	MinAlpha float64
	// SideOffset is the lateral distance of the breakable pair from the path.
	SideOffset float64
}

// NewSpawner returns a Spawner with the default tuning.
func NewSpawner() *Spawner {
	return &Spawner{
		DotSpread:    10,
		FadeDistance: DefaultWindowRadius,
		MinAlpha:     0.08,
		SideOffset:   4.5,
	}
}

// Spawn generates the descriptors for a row. sample is the curve output for
// the row; distance is the signed row distance from the current position and
// only affects opacity. Rows below zero produce nothing.
func (s *Spawner) Spawn(row int, sample CurveSample, distance float64) []*Object {
	if row < 0 {
		return nil
	}

	objs := make([]*Object, 0, DotsPerRow+2)
	alpha := s.fade(distance)

	// Ground dots: always present, evenly spread, offset by the curve.
	for col := 0; col < DotsPerRow; col++ {
		t := float64(col)/(DotsPerRow-1) - 0.5
		objs = append(objs, &Object{
			Row:         row,
			Column:      col,
			Kind:        KindDot,
			Position:    Vec3{X: sample.Lateral + t*s.DotSpread, Y: 0.05, Z: float64(row)},
			Scale:       Vec3{0.16, 0.16, 0.16},
			Color:       Color{0.85, 0.85, 0.95, 1},
			Alpha:       alpha,
			Interactive: true,
		})
	}

	if row%40 == 0 {
		objs = append(objs, &Object{
			Row:         row,
			Kind:        KindMilestone,
			Position:    Vec3{X: sample.Lateral, Y: sample.Elevation + 1.2, Z: float64(row)},
			Scale:       Vec3{0.35, 2.4, 0.35},
			Color:       Color{1, 0.78, 0.25, 1},
			Alpha:       1,
			Interactive: true,
		})
	}

	if row%RowsPerSection == 0 {
		agent := AgentAt(row / RowsPerSection)
		objs = append(objs, &Object{
			Row:         row,
			Kind:        KindAgentBox,
			Position:    Vec3{X: sample.Lateral, Y: sample.Elevation + 0.8, Z: float64(row)},
			Scale:       Vec3{1.1, 1.1, 1.1},
			Color:       Color{0.45, 0.75, 1, 1},
			Alpha:       1,
			Interactive: true,
			Agent:       &agent,
		})
	} else if row%15 == 0 {
		// Assorted shapes never share a row with an agent box.
		objs = append(objs, &Object{
			Row:         row,
			Kind:        KindAssortedShape,
			Position:    Vec3{X: sample.Lateral, Y: sample.Elevation + 0.5, Z: float64(row)},
			Scale:       Vec3{0.7, 0.7, 0.7},
			Color:       Color{0.95, 0.5, 0.65, 1},
			Alpha:       1,
			Interactive: true,
			Variant:     (row / 15) % AssortedVariantCount,
		})
	}

	if row%8 == 0 && row%15 != 0 {
		objs = append(objs, &Object{
			Row:         row,
			Kind:        KindDecorative,
			Position:    Vec3{X: sample.Lateral + 1.4, Y: 0.25, Z: float64(row)},
			Scale:       Vec3{0.3, 0.3, 0.3},
			Color:       Color{0.6, 0.9, 0.7, 1},
			Alpha:       1,
			Interactive: true,
		})
	}

	if row%50 == 0 {
		for i, side := range [2]float64{-1, 1} {
			objs = append(objs, &Object{
				Row:         row,
				Column:      -1 + i*2, // -1 left, +1 right
				Kind:        KindBreakableCube,
				Position:    Vec3{X: sample.Lateral + side*s.SideOffset, Y: 0.4, Z: float64(row)},
				Scale:       Vec3{0.55, 0.55, 0.55},
				Color:       Color{0.8, 0.65, 0.5, 1},
				Alpha:       1,
				Interactive: true,
			})
		}
	}

	return objs
}

// fade maps a signed row distance to a dot opacity in [MinAlpha, 1]. At and
// beyond FadeDistance the floor is returned exactly, free of rounding residue.
func (s *Spawner) fade(distance float64) float64 {
	d := math.Abs(distance) / s.FadeDistance
	if d >= 1 {
		return s.MinAlpha
	}
	return 1 - d*(1-s.MinAlpha)
}
