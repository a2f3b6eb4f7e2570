package meander

// syntheticEvent is a single queued input event. One event is consumed per
// Update, matching the cadence of real input.
type syntheticEvent struct {
	intent float64
	drag   float64
	ray    Ray
	hasRay bool
}

// InjectIntent queues a directional intent (+1/-1) for the next Update.
// Useful for scripted demos and tests that drive the engine without a real
// input source.
func (e *Engine) InjectIntent(d float64) {
	e.inject = append(e.inject, syntheticEvent{intent: d})
}

// InjectDrag queues a continuous drag delta spread evenly over the given
// number of frames. Minimum is one frame.
func (e *Engine) InjectDrag(delta float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	per := delta / float64(frames)
	for i := 0; i < frames; i++ {
		e.inject = append(e.inject, syntheticEvent{drag: per})
	}
}

// InjectRay queues a pointer pick ray for the next Update.
func (e *Engine) InjectRay(ray Ray) {
	e.inject = append(e.inject, syntheticEvent{ray: ray, hasRay: true})
}

// drainInjected pops one queued event and feeds it through the same paths as
// real input.
func (e *Engine) drainInjected() {
	if len(e.inject) == 0 {
		return
	}
	evt := e.inject[0]
	copy(e.inject, e.inject[1:])
	e.inject = e.inject[:len(e.inject)-1]

	if evt.intent != 0 {
		e.Intent(evt.intent)
	}
	if evt.drag != 0 {
		e.Drag(evt.drag)
	}
	if evt.hasRay {
		e.Point(evt.ray)
	}
}
