package meander

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// CrossfadeDuration is the length of the background gradient transition on a
// section change. It typically runs concurrently with the position snap.
const CrossfadeDuration float32 = 1.2

// Gradient is a vertical background gradient, top and bottom colors.
type Gradient struct {
	Top, Bottom colorful.Color
}

// defaultPalette is the built-in set of section gradients: dawn through dusk.
// Section indices wrap via modulo, never out of range.
var defaultPalette = []Gradient{
	{Top: colorful.Color{R: 0.10, G: 0.12, B: 0.24}, Bottom: colorful.Color{R: 0.36, G: 0.22, B: 0.38}},
	{Top: colorful.Color{R: 0.08, G: 0.22, B: 0.32}, Bottom: colorful.Color{R: 0.22, G: 0.46, B: 0.48}},
	{Top: colorful.Color{R: 0.22, G: 0.12, B: 0.28}, Bottom: colorful.Color{R: 0.62, G: 0.30, B: 0.26}},
	{Top: colorful.Color{R: 0.06, G: 0.10, B: 0.18}, Bottom: colorful.Color{R: 0.14, G: 0.30, B: 0.42}},
	{Top: colorful.Color{R: 0.18, G: 0.08, B: 0.20}, Bottom: colorful.Color{R: 0.46, G: 0.20, B: 0.42}},
}

// Background cross-fades between section gradients. The blend runs on the
// injected Animator; without one the new gradient applies instantly — a
// degrade, not a failure.
type Background struct {
	// Palette is the gradient per section, wrapping modulo its length.
	Palette []Gradient

	anim    *Animator
	section int
	started bool

	from, to Gradient
	blend    float64 // 0 = from, 1 = to
	handle   *Handle
}

// NewBackground creates a Background with the default palette. anim may be nil.
func NewBackground(anim *Animator) *Background {
	b := &Background{
		Palette: defaultPalette,
		anim:    anim,
		blend:   1,
	}
	b.to = b.gradientFor(0)
	b.from = b.to
	return b
}

// Section returns the section the background currently targets.
func (b *Background) Section() int {
	return b.section
}

// SetSection switches the background to the given section's gradient.
// Unchanged sections are a no-op, so this is safe to call every tick. The
// fade starts from the currently displayed blend, so a mid-fade switch never
// jumps.
func (b *Background) SetSection(section int) {
	if section < 0 {
		section = 0
	}
	if b.started && section == b.section {
		return
	}
	b.started = true
	b.section = section

	next := b.gradientFor(section)
	b.from = Gradient{Top: b.Top(), Bottom: b.Bottom()}
	b.to = next

	b.handle.Cancel()
	if b.anim == nil {
		b.blend = 1
		return
	}
	b.blend = 0
	b.handle = b.anim.Schedule(nil, []PropertyDelta{{&b.blend, 1}}, CrossfadeDuration, ease.Linear, nil)
}

// Top returns the currently displayed top color, blended in Luv space.
func (b *Background) Top() colorful.Color {
	return b.from.Top.BlendLuv(b.to.Top, b.blend)
}

// Bottom returns the currently displayed bottom color, blended in Luv space.
func (b *Background) Bottom() colorful.Color {
	return b.from.Bottom.BlendLuv(b.to.Bottom, b.blend)
}

func (b *Background) gradientFor(section int) Gradient {
	return b.Palette[section%len(b.Palette)]
}
