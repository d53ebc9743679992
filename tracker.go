package pancam

import "log/slog"

// Surface is the element a Tracker is attached to. Bounds is queried on every
// event so a resized surface is picked up without re-attaching.
type Surface interface {
	Bounds() Rect
}

// RectSurface is a Surface with fixed bounds.
type RectSurface Rect

// Bounds returns the rectangle itself.
func (r RectSurface) Bounds() Rect { return Rect(r) }

// GlobalSource is the stream of move and release events that reaches the
// tracker regardless of the surface bounds, so a drag that leaves the surface
// keeps reporting. The tracker subscribes while at least one contact is down.
type GlobalSource interface {
	Subscribe()
	Unsubscribe()
}

// TrackerState is the listener lifecycle state of a Tracker.
type TrackerState uint8

const (
	StateIdle     TrackerState = iota // only presses on the surface are accepted
	StateTracking                     // subscribed to the global move/release stream
	StateDisposed                     // torn down; every event is ignored
)

// String returns the state name.
func (s TrackerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithHistorySize sets how many samples each contact retains. Values below 2
// are raised to 2.
func WithHistorySize(n int) TrackerOption {
	return func(t *Tracker) {
		if n < minHistorySize {
			n = minHistorySize
		}
		t.historySize = n
	}
}

// WithGlobalSource sets the source subscribed to while tracking.
func WithGlobalSource(src GlobalSource) TrackerOption {
	return func(t *Tracker) { t.source = src }
}

// WithSink forwards every gesture to sink.
func WithSink(sink GestureSink) TrackerOption {
	return func(t *Tracker) { t.sink = sink }
}

// WithLogger sets the logger used in debug mode.
func WithLogger(l *slog.Logger) TrackerOption {
	return func(t *Tracker) { t.logger = l }
}

// WithDebug enables debug logging of transitions and dropped events. The
// records are written at slog.LevelDebug, so the logger's handler must
// allow that level; slog.Default does not.
func WithDebug(enabled bool) TrackerOption {
	return func(t *Tracker) { t.debug = enabled }
}

// Tracker converts raw pointer events on one surface into pan gestures. It
// owns its contact registry exclusively and is not safe for concurrent use;
// hosts deliver events sequentially.
type Tracker struct {
	surface     Surface
	contacts    Registry
	state       TrackerState
	historySize int

	source   GlobalSource
	sink     GestureSink
	handlers handlerRegistry

	logger *slog.Logger
	debug  bool
	stats  TrackerStats

	buf         []Gesture
	dispatching bool
}

// NewTracker attaches a tracker to surface. It starts Idle.
func NewTracker(surface Surface, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		surface:     surface,
		contacts:    make(Registry),
		historySize: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = defaultLogger()
	}
	return t
}

// State returns the current listener state.
func (t *Tracker) State() TrackerState {
	return t.state
}

// SetSink sets or clears the optional gesture sink.
func (t *Tracker) SetSink(sink GestureSink) {
	t.sink = sink
}

// SetDebugMode enables or disables debug logging. See WithDebug for the
// required log level.
func (t *Tracker) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// Contact returns the active contact with the given ID.
func (t *Tracker) Contact(id int) (*Contact, bool) {
	c, ok := t.contacts[id]
	return c, ok
}

// Contacts returns the IDs of all active contacts in ascending order.
func (t *Tracker) Contacts() []int {
	return t.contacts.IDs()
}

// Press handles a press of contact id.
func (t *Tracker) Press(id int, ev PointerEvent) {
	ev.Kind, ev.ID = PointerPress, id
	t.Handle(ev)
}

// Move handles a move of contact id. Moves for unknown IDs are dropped.
func (t *Tracker) Move(id int, ev PointerEvent) {
	ev.Kind, ev.ID = PointerMove, id
	t.Handle(ev)
}

// Release handles a release of contact id. Releases for unknown IDs are
// dropped.
func (t *Tracker) Release(id int, ev PointerEvent) {
	ev.Kind, ev.ID = PointerRelease, id
	t.Handle(ev)
}

// Handle applies one pointer event and dispatches the resulting gestures.
func (t *Tracker) Handle(ev PointerEvent) {
	t.stats.countEvent(ev.Kind)

	switch t.state {
	case StateDisposed:
		t.drop(ev, "disposed")
		return
	case StateIdle:
		if ev.Kind != PointerPress {
			t.drop(ev, "not tracking")
			return
		}
	}
	if ev.Kind != PointerPress {
		if _, ok := t.contacts[ev.ID]; !ok {
			t.drop(ev, "unknown contact")
			return
		}
	}

	var buf []Gesture
	if !t.dispatching {
		buf = t.buf[:0]
	}
	gestures := t.contacts.apply(t.surface.Bounds(), ev, t.historySize, buf)
	if !t.dispatching {
		t.buf = gestures
	}

	switch {
	case ev.Kind == PointerPress && t.state == StateIdle:
		t.setState(StateTracking)
	case ev.Kind == PointerRelease && len(t.contacts) == 0:
		t.setState(StateIdle)
	}

	t.dispatch(gestures)
}

// Dispose detaches the tracker: presses are no longer accepted, active
// contacts are discarded without pan-end, and the global source is
// unsubscribed if needed. Calling Dispose again is a no-op.
func (t *Tracker) Dispose() {
	if t.state == StateDisposed {
		return
	}
	clear(t.contacts)
	t.setState(StateDisposed)
}

func (t *Tracker) setState(next TrackerState) {
	prev := t.state
	if prev == next {
		return
	}
	t.state = next
	if t.source != nil {
		if next == StateTracking {
			t.source.Subscribe()
		} else if prev == StateTracking {
			t.source.Unsubscribe()
		}
	}
	t.debugTransition(prev, next)
}

func (t *Tracker) dispatch(gestures []Gesture) {
	prev := t.dispatching
	t.dispatching = true
	defer func() { t.dispatching = prev }()

	for _, g := range gestures {
		if !t.deliverable(g) {
			continue
		}
		t.stats.countGesture(g.Type)
		switch g.Type {
		case GesturePanStart:
			ctx := PanContext{ContactID: g.ContactID, X: g.X, Y: g.Y}
			for _, h := range t.handlers.panStart {
				if !t.deliverable(g) {
					break
				}
				h.fn(ctx)
			}
		case GesturePanMove:
			ctx := PanMoveContext{ContactID: g.ContactID, PointerDifference: g.Diff}
			for _, h := range t.handlers.panMove {
				if !t.deliverable(g) {
					break
				}
				h.fn(ctx)
			}
		case GesturePanEnd:
			ctx := PanContext{ContactID: g.ContactID, X: g.X, Y: g.Y}
			for _, h := range t.handlers.panEnd {
				if !t.deliverable(g) {
					break
				}
				h.fn(ctx)
			}
		}
		if t.sink != nil && t.deliverable(g) {
			t.sink.EmitGesture(g)
		}
	}
}

// deliverable reports whether g may still be emitted. A callback can release
// a contact or dispose the tracker while a batch is being dispatched; nothing
// is emitted after Dispose, and a released contact gets nothing after its
// pan-end.
func (t *Tracker) deliverable(g Gesture) bool {
	if t.state == StateDisposed {
		return false
	}
	if g.Type != GesturePanEnd {
		_, ok := t.contacts[g.ContactID]
		return ok
	}
	return true
}
