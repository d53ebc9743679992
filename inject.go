package pancam

// syntheticPointerEvent represents a single injected pointer event in
// client coordinates.
type syntheticPointerEvent struct {
	pointer int
	x, y    float64
	pressed bool
}

// InjectPress queues a press of pointer at (x, y). Queued events are
// consumed one per Update, in place of real input.
func (in *EbitenInput) InjectPress(pointer int, x, y float64) {
	in.inject(pointer, x, y, true)
}

// InjectMove queues a move of a held pointer to (x, y). Use this between
// InjectPress and InjectRelease to simulate a drag.
func (in *EbitenInput) InjectMove(pointer int, x, y float64) {
	in.inject(pointer, x, y, true)
}

// InjectRelease queues a release of pointer at (x, y).
func (in *EbitenInput) InjectRelease(pointer int, x, y float64) {
	in.inject(pointer, x, y, false)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (in *EbitenInput) InjectDrag(pointer int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(pointer, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(pointer, x, y)
	}
	in.InjectRelease(pointer, toX, toY)
}

// Pending returns the number of queued synthetic events.
func (in *EbitenInput) Pending() int {
	return len(in.injectQueue)
}

func (in *EbitenInput) inject(pointer int, x, y float64, pressed bool) {
	if pointer < 0 || pointer >= maxPointers {
		return
	}
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		pointer: pointer, x: x, y: y, pressed: pressed,
	})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (in *EbitenInput) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(evt.pointer, evt.x, evt.y, evt.pressed)
	return true
}
