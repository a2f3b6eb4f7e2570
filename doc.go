// Package meander drives an endless, scroll-navigated 3D path for
// [Ebitengine]: a virtual camera travels a procedurally generated curve whose
// sections host interactive decorations and named waypoints.
//
// The path is addressed by integer row index. A pure [Curve] maps each row to
// a lateral offset and elevation, and a pure [Spawner] maps each row to its
// decorations, so the visible [Window] around the current position is only a
// cache — it can always be regenerated from the position scalar alone.
//
// # Quick start
//
// [Run] creates a window, a rendering backend, and the input bridge for you:
//
//	engine := meander.NewEngine(meander.Config{
//		Animator: meander.NewAnimator(),
//	})
//	meander.Run(engine, meander.RunConfig{
//		Title: "Meander", Width: 960, Height: 540,
//	})
//
// For full control, implement [ebiten.Game] yourself, feed input through
// [Engine.Intent], [Engine.Drag], and [Engine.Point], and call
// [Engine.Update] each tick.
//
// # Navigation
//
// The position scalar is owned by the [Navigator]. Directional intents snap
// it one section (60 rows) at a time with a fixed eased tween; continuous
// drag input runs through the [Momentum] scroller instead, decaying toward
// rest and handing off to the nearest section boundary. The two modes are
// mutually exclusive — at most one position tween is ever active.
//
// # Animation
//
// Every cosmetic transition — hover effects, reverts, background cross-fades
// — runs on an injected [Animator] built on [gween]. The animator is a
// capability, not a global: a nil Animator is valid and makes every
// transition apply its end state immediately.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package meander
