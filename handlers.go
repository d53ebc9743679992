package pancam

import "slices"

// PanContext is passed to pan-start and pan-end callbacks. X and Y are the
// contact position in normalized device coordinates.
type PanContext struct {
	ContactID int
	X, Y      float64
}

// PanMoveContext is passed to pan-move callbacks: the change between the two
// most recent samples of one contact.
type PanMoveContext struct {
	ContactID int
	PointerDifference
}

// --- Handler registry ---

type panHandler struct {
	id uint32
	fn func(PanContext)
}

type panMoveHandler struct {
	id uint32
	fn func(PanMoveContext)
}

type handlerRegistry struct {
	panStart []panHandler
	panMove  []panMoveHandler
	panEnd   []panHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event GestureType
}

// Remove unregisters this callback so it no longer fires. Removing twice is a
// no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case GesturePanStart:
		h.reg.panStart = removePanHandler(h.reg.panStart, h.id)
	case GesturePanMove:
		h.reg.panMove = removePanMoveHandler(h.reg.panMove, h.id)
	case GesturePanEnd:
		h.reg.panEnd = removePanHandler(h.reg.panEnd, h.id)
	}
}

// removePanHandler returns a new slice without id. The old backing array
// is left intact for a dispatch that may still be ranging over it.
func removePanHandler(s []panHandler, id uint32) []panHandler {
	i := slices.IndexFunc(s, func(h panHandler) bool { return h.id == id })
	if i < 0 {
		return s
	}
	return slices.Concat(s[:i], s[i+1:])
}

func removePanMoveHandler(s []panMoveHandler, id uint32) []panMoveHandler {
	i := slices.IndexFunc(s, func(h panMoveHandler) bool { return h.id == id })
	if i < 0 {
		return s
	}
	return slices.Concat(s[:i], s[i+1:])
}

// OnPanStart registers a callback fired when a contact is pressed.
func (t *Tracker) OnPanStart(fn func(PanContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.panStart = append(t.handlers.panStart, panHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: GesturePanStart}
}

// OnPanMove registers a callback fired once per multi-sample contact on every
// accepted move, including contacts that did not move themselves.
func (t *Tracker) OnPanMove(fn func(PanMoveContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.panMove = append(t.handlers.panMove, panMoveHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: GesturePanMove}
}

// OnPanEnd registers a callback fired when a tracked contact is released.
func (t *Tracker) OnPanEnd(fn func(PanContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.panEnd = append(t.handlers.panEnd, panHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: GesturePanEnd}
}
