package meander

import (
	"math"
	"testing"
)

const tickDT = float32(1.0 / 60.0)

func runTicks(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Update(tickDT)
	}
}

func TestEngineDefaults(t *testing.T) {
	e := NewEngine(Config{})
	if e.Position() != 0 || e.Section() != 0 {
		t.Errorf("start = (pos %f, section %d), want (0, 0)", e.Position(), e.Section())
	}
	if e.Window().Len() == 0 {
		t.Error("initial window should be populated")
	}
	lo, hi := e.Window().Range()
	if lo != -DefaultWindowRadius || hi != DefaultWindowRadius {
		t.Errorf("window range = [%d, %d), want [%d, %d)", lo, hi, -DefaultWindowRadius, DefaultWindowRadius)
	}
}

func TestEngineSubmitsToBackend(t *testing.T) {
	fb := newFakeBackend()
	e := NewEngine(Config{Backend: fb})
	total := fb.adds[GroupDots] + fb.adds[GroupMarkers] + fb.adds[GroupDecorations]
	if total != e.Window().Len() {
		t.Errorf("backend received %d adds, want %d", total, e.Window().Len())
	}
}

func TestIntentAdvancesOneSection(t *testing.T) {
	e := NewEngine(Config{Animator: NewAnimator()})
	e.InjectIntent(1)
	runTicks(e, 120) // snap takes 1.2s

	if e.Position() != float64(RowsPerSection) {
		t.Errorf("Position() = %f, want %d", e.Position(), RowsPerSection)
	}
	if e.Section() != 1 {
		t.Errorf("Section() = %d, want 1", e.Section())
	}
	if e.Navigator().State() != NavIdle {
		t.Error("navigator should be idle after the snap finishes")
	}
	if e.Background().Section() != 1 {
		t.Errorf("background section = %d, want 1", e.Background().Section())
	}
}

func TestBackwardIntentAtStartIsNoOp(t *testing.T) {
	e := NewEngine(Config{})
	e.InjectIntent(-1)
	runTicks(e, 30)

	if e.Position() != 0 {
		t.Errorf("Position() = %f, want 0", e.Position())
	}
	if e.Navigator().State() != NavIdle {
		t.Error("backward intent at the origin should not start a snap")
	}
}

func TestDragSettlesOnSectionBoundary(t *testing.T) {
	e := NewEngine(Config{})
	e.InjectDrag(400, 10)
	runTicks(e, 600) // decay, handoff and snap all fit in 10s

	pos := e.Position()
	if pos == 0 {
		t.Fatal("drag should have moved the position forward")
	}
	if math.Mod(pos, float64(RowsPerSection)) != 0 {
		t.Errorf("Position() = %f, want a section boundary", pos)
	}
	if e.Navigator().State() != NavIdle {
		t.Error("navigator should be idle after settling")
	}
	if e.Momentum().Velocity() != 0 {
		t.Errorf("velocity = %f, want 0 after handoff", e.Momentum().Velocity())
	}
}

func TestWindowFollowsPosition(t *testing.T) {
	e := NewEngine(Config{})
	e.InjectDrag(400, 10)
	runTicks(e, 600)

	base := int(math.Floor(e.Position()))
	lo, hi := e.Window().Range()
	if lo != base-DefaultWindowRadius || hi != base+DefaultWindowRadius {
		t.Errorf("window range = [%d, %d), want centered on row %d", lo, hi, base)
	}
	e.Window().Each(func(o *Object) {
		if o.Row < 0 {
			t.Errorf("window contains negative row %d", o.Row)
		}
	})
}

func TestPointerHoverAndExit(t *testing.T) {
	e := NewEngine(Config{Animator: NewAnimator()})

	cube := e.Window().Lookup(SpawnKey{Row: 0, Column: -1, Kind: KindBreakableCube})
	if cube == nil {
		t.Fatal("setup: breakable cube (0, -1) missing from the initial window")
	}

	e.InjectRay(Ray{
		Origin: Vec3{X: cube.Position.X, Y: cube.Position.Y, Z: -10},
		Dir:    Vec3{Z: 1},
	})
	runTicks(e, 1)

	if e.Interactor().Hovered() != cube {
		t.Fatalf("hovered = %v, want the breakable cube", e.Interactor().Hovered())
	}

	runTicks(e, 30) // let the break-apart animation run
	if cube.Alpha >= 1 {
		t.Error("hover animation should have faded the cube")
	}

	e.InjectRay(missRay)
	runTicks(e, 60) // revert takes 0.3s

	if e.Interactor().Hovered() != nil {
		t.Error("pointer exit should clear the hover")
	}
	if math.Abs(cube.Alpha-1) > 0.01 {
		t.Errorf("cube alpha = %f, want restored to 1", cube.Alpha)
	}
}

func TestInjectedIntentDuringSnapIgnored(t *testing.T) {
	e := NewEngine(Config{})
	e.InjectIntent(1)
	runTicks(e, 10) // snap in flight
	e.InjectIntent(1)
	runTicks(e, 120)

	if e.Position() != float64(RowsPerSection) {
		t.Errorf("Position() = %f, want %d (second intent debounced)", e.Position(), RowsPerSection)
	}
}
