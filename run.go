package meander

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int // defaults to 960
	Height  int // defaults to 540
	ShowFPS bool
}

// Run creates a window, a CanvasBackend, and a game loop around the engine,
// bridging raw ebiten input to the engine's normalized events:
//
//	up/W, down/S       directional intents (one section per press)
//	mouse wheel        continuous drag deltas into the momentum scroller
//	cursor             rig offset target and hover pick ray
//
// Run blocks until the window closes and returns any backend or loop error.
// Backend resource failures are fatal and propagate; the core does not
// attempt recovery for them.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}

	backend, err := NewCanvasBackend(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("meander: %w", err)
	}
	backend.ShowFPS = cfg.ShowFPS
	e.Window().SetBackend(backend)
	e.Window().Refresh(e.Position())

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	g := &game{engine: e, backend: backend}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("meander: run: %w", err)
	}
	return nil
}

// wheelGain converts wheel notches into momentum velocity.
const wheelGain = 6.0

// game adapts the engine to ebiten.Game.
type game struct {
	engine  *Engine
	backend *CanvasBackend
}

func (g *game) Update() error {
	e := g.engine

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		e.Intent(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		e.Intent(-1)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		e.Drag(wy * wheelGain)
	}

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	// Normalize the cursor to [-1, 1] for the rig offset.
	nx := sx/float64(g.backend.Width)*2 - 1
	ny := sy/float64(g.backend.Height)*2 - 1
	e.PointOffset(nx, ny)
	e.Point(g.backend.PickRay(sx, sy, e.Position(), e.Rig()))

	e.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen, g.engine.Position(), g.engine.Rig(), g.engine.Background())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.backend.Width, g.backend.Height
}
