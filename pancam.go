package pancam

import "time"

// Vec2 is a 2D vector used for NDC and pixel positions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a camera position. Z is the distance from the camera to the
// content plane.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle in client space. The origin is the
// top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventKind identifies a raw pointer lifecycle event.
type EventKind uint8

const (
	PointerPress   EventKind = iota // contact begins
	PointerMove                     // contact moved (or any attribute changed)
	PointerRelease                  // contact ends
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	default:
		return "unknown"
	}
}

// GestureType identifies a notification emitted by a Tracker.
type GestureType uint8

const (
	GesturePanStart GestureType = iota // fires once when a contact is pressed
	GesturePanMove                     // fires per multi-sample contact on every move
	GesturePanEnd                      // fires once when a contact is released
)

// String returns the notification name as hosts usually spell it.
func (g GestureType) String() string {
	switch g {
	case GesturePanStart:
		return "pan-start"
	case GesturePanMove:
		return "pan-move"
	case GesturePanEnd:
		return "pan-end"
	default:
		return "unknown"
	}
}

// PointerEvent is one raw event delivered by the host. Client coordinates are
// in the same space as the Surface bounds.
type PointerEvent struct {
	Kind    EventKind
	ID      int
	ClientX float64
	ClientY float64
	// Time is the event timestamp measured from an arbitrary host origin.
	Time time.Duration

	Pressure           float64
	TangentialPressure float64
	Width              float64 // contact width
	Height             float64 // contact height
	TiltX              float64
	TiltY              float64
	Twist              float64
}

// Gesture carries the data of one emitted notification. X and Y are valid for
// GesturePanStart and GesturePanEnd; Diff is valid for GesturePanMove.
type Gesture struct {
	Type      GestureType
	ContactID int
	X, Y      float64
	Diff      PointerDifference
}

// GestureSink is the interface for optional gesture forwarding, e.g. into an
// ECS world. When set on a Tracker, every gesture is emitted to it after the
// registered callbacks ran.
type GestureSink interface {
	EmitGesture(g Gesture)
}
