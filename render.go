package meander

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Named container groups the window issues descriptor commands against.
// Backends organize their resources per group and never expose them back to
// the core.
const (
	GroupDots        = "dots"
	GroupDecorations = "decorations"
	GroupMarkers     = "markers"
)

// Backend consumes descriptor add/remove/update commands. The core owns
// descriptor lifetime; a backend must drop its reference on Remove and never
// retain descriptors across it.
type Backend interface {
	Add(group string, o *Object)
	Remove(group string, o *Object)
	Update(group string, o *Object)
}

// CanvasBackend renders descriptors to an ebiten screen with a weak
// perspective projection: objects shrink and converge toward a horizon line
// as their row distance grows. It is the reference backend used by Run and
// the examples; any other Backend implementation can replace it.
type CanvasBackend struct {
	Width, Height int

	// Focal is the projection focal length in pixels.
	Focal float64
	// Horizon is the screen-height fraction of the horizon line.
	Horizon float64
	// CameraHeight is the eye height above the ground plane.
	CameraHeight float64
	// CameraBack is how far behind the current position the eye sits.
	CameraBack float64
	// NearClip discards objects closer than this depth.
	NearClip float64
	// RigScale converts rig offsets into world lateral/vertical shift.
	RigScale float64
	// ShowFPS draws the FPS/TPS overlay.
	ShowFPS bool

	groups  map[string]map[*Object]struct{}
	drawBuf []*Object

	white    *ebiten.Image
	gradient *ebiten.Image
}

// NewCanvasBackend creates a CanvasBackend for the given screen size.
func NewCanvasBackend(width, height int) (*CanvasBackend, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas backend: invalid size %dx%d", width, height)
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &CanvasBackend{
		Width:        width,
		Height:       height,
		Focal:        float64(height) * 0.9,
		Horizon:      0.42,
		CameraHeight: 2.2,
		CameraBack:   2.5,
		NearClip:     0.4,
		RigScale:     2.5,
		groups:       make(map[string]map[*Object]struct{}),
		white:        white,
		gradient:     ebiten.NewImage(1, 2),
	}, nil
}

// Add implements Backend.
func (cb *CanvasBackend) Add(group string, o *Object) {
	g, ok := cb.groups[group]
	if !ok {
		g = make(map[*Object]struct{})
		cb.groups[group] = g
	}
	g[o] = struct{}{}
}

// Remove implements Backend.
func (cb *CanvasBackend) Remove(group string, o *Object) {
	if g, ok := cb.groups[group]; ok {
		delete(g, o)
	}
}

// Update implements Backend. Descriptors are shared by pointer, so there is
// nothing to copy; the command exists for backends that snapshot state.
func (cb *CanvasBackend) Update(group string, o *Object) {}

// GroupLen returns the number of descriptors registered in a group.
func (cb *CanvasBackend) GroupLen(group string) int {
	return len(cb.groups[group])
}

// Draw renders the background gradient and every registered descriptor.
// position is the current path position; rig supplies the cosmetic camera
// offset and bg the gradient colors. rig and bg may be nil.
func (cb *CanvasBackend) Draw(screen *ebiten.Image, position float64, rig *Rig, bg *Background) {
	cb.drawBackground(screen, bg)

	var offX, offY float64
	if rig != nil {
		offX = rig.X * cb.RigScale
		offY = rig.Y * cb.RigScale
	}
	eyeZ := position - cb.CameraBack

	cb.drawBuf = cb.drawBuf[:0]
	for _, g := range cb.groups {
		for o := range g {
			if o.Position.Z-eyeZ >= cb.NearClip {
				cb.drawBuf = append(cb.drawBuf, o)
			}
		}
	}
	// Painter's order: far rows first.
	sort.Slice(cb.drawBuf, func(i, j int) bool {
		return cb.drawBuf[i].Position.Z > cb.drawBuf[j].Position.Z
	})

	horizonY := float64(cb.Height) * cb.Horizon
	cx := float64(cb.Width) / 2

	for _, o := range cb.drawBuf {
		depth := o.Position.Z - eyeZ
		scale := cb.Focal / depth

		w := o.Scale.X * scale
		h := o.Scale.Y * scale
		if w < 1 || h < 1 {
			continue
		}
		sx := cx + (o.Position.X-offX)*scale
		sy := horizonY + (cb.CameraHeight-o.Position.Y+offY)*scale

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(sx-w/2, sy-h)
		a := float32(o.Alpha)
		op.ColorScale.Scale(float32(o.Color.R)*a, float32(o.Color.G)*a, float32(o.Color.B)*a, float32(o.Color.A)*a)
		screen.DrawImage(cb.white, op)
	}

	if cb.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// drawBackground stretches a 1x2 gradient texture over the screen with linear
// filtering, giving a smooth vertical fade between the two section colors.
func (cb *CanvasBackend) drawBackground(screen *ebiten.Image, bg *Background) {
	if bg == nil {
		return
	}
	top := bg.Top()
	bottom := bg.Bottom()
	cb.gradient.Set(0, 0, color.RGBA{uint8(top.R * 255), uint8(top.G * 255), uint8(top.B * 255), 255})
	cb.gradient.Set(0, 1, color.RGBA{uint8(bottom.R * 255), uint8(bottom.G * 255), uint8(bottom.B * 255), 255})

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(float64(cb.Width), float64(cb.Height))
	screen.DrawImage(cb.gradient, op)
}

// PickRay converts a screen point into a path-space pick ray, inverting the
// same weak perspective Draw applies.
func (cb *CanvasBackend) PickRay(screenX, screenY, position float64, rig *Rig) Ray {
	var offX, offY float64
	if rig != nil {
		offX = rig.X * cb.RigScale
		offY = rig.Y * cb.RigScale
	}
	horizonY := float64(cb.Height) * cb.Horizon
	cx := float64(cb.Width) / 2

	origin := Vec3{X: offX, Y: cb.CameraHeight + offY, Z: position - cb.CameraBack}
	dir := Vec3{
		X: (screenX - cx) / cb.Focal,
		Y: (horizonY - screenY) / cb.Focal,
		Z: 1,
	}
	return Ray{Origin: origin, Dir: dir.Norm()}
}
