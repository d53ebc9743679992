package pancam

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	// Ebiten reports no pressure; pressed pointers use the value browsers
	// report for buttons without pressure support.
	pressedPressure = 0.5
)

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// EbitenInput polls Ebitengine mouse and touch state once per frame and feeds
// the resulting press/move/release edges into a Tracker. The mouse is pointer
// 0; touches occupy pointers 1-9.
//
// Presses are only forwarded when they land inside the surface bounds. Moves
// and releases are forwarded from anywhere while the tracker is subscribed,
// so a drag that leaves the surface keeps reporting.
type EbitenInput struct {
	tracker    *Tracker
	surface    Surface
	subscribed bool

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner

	start time.Time
	now   func() time.Duration
}

// NewEbitenInput creates a tracker on surface with opts and binds it to a new
// poller, which acts as the tracker's GlobalSource.
func NewEbitenInput(surface Surface, opts ...TrackerOption) *EbitenInput {
	in := &EbitenInput{surface: surface, start: time.Now()}
	in.now = func() time.Duration { return time.Since(in.start) }
	opts = append(opts, WithGlobalSource(in))
	in.tracker = NewTracker(surface, opts...)
	return in
}

// Tracker returns the tracker fed by this poller.
func (in *EbitenInput) Tracker() *Tracker {
	return in.tracker
}

// Subscribe starts forwarding moves and releases regardless of bounds.
func (in *EbitenInput) Subscribe() {
	in.subscribed = true
}

// Unsubscribe stops forwarding moves and releases.
func (in *EbitenInput) Unsubscribe() {
	in.subscribed = false
}

// Update is called once per frame from the game's Update. A queued synthetic
// event replaces real input for that frame.
func (in *EbitenInput) Update() {
	if in.runner != nil {
		in.runner.step(in)
	}
	if in.processInjectedInput() {
		return
	}
	in.processMousePointer()
	in.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (in *EbitenInput) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	in.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *EbitenInput) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.lastX, ps.lastY, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *EbitenInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns the level-triggered state of one pointer into edges.
func (in *EbitenInput) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &in.pointers[pointerID]
	moved := x != ps.lastX || y != ps.lastY

	ev := PointerEvent{
		ID:      pointerID,
		ClientX: x,
		ClientY: y,
		Time:    in.now(),
		Width:   1,
		Height:  1,
	}
	if pressed {
		ev.Pressure = pressedPressure
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		if in.surface.Bounds().Contains(x, y) {
			in.tracker.Press(pointerID, ev)
		}
	case !pressed && ps.down:
		ps.down = false
		if in.subscribed {
			in.tracker.Release(pointerID, ev)
		}
	case moved && in.subscribed:
		// Hover moves are forwarded too; the tracker drops pointers it
		// does not know.
		in.tracker.Move(pointerID, ev)
	}
	ps.lastX = x
	ps.lastY = y
}
