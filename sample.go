package pancam

import "time"

// Sample is one recorded pointer event, resolved against the surface bounds
// at the moment it arrived.
type Sample struct {
	Time  time.Duration
	NDC   Vec2
	Pixel Vec2

	Pressure           float64
	TangentialPressure float64
	Width              float64
	Height             float64
	TiltX              float64
	TiltY              float64
	Twist              float64
}

// Coordinates converts a client-space point into pixel coordinates relative to
// bounds and normalized device coordinates in [-1, 1], y flipped.
func Coordinates(bounds Rect, clientX, clientY float64) (ndc, pixel Vec2) {
	px := clientX - bounds.X
	py := clientY - bounds.Y
	pixel = Vec2{X: px, Y: py}
	ndc = Vec2{
		X: px/bounds.Width*2 - 1,
		Y: py/bounds.Height*-2 + 1,
	}
	return ndc, pixel
}

// NewSample resolves ev against bounds.
func NewSample(bounds Rect, ev PointerEvent) Sample {
	ndc, pixel := Coordinates(bounds, ev.ClientX, ev.ClientY)
	return Sample{
		Time:               ev.Time,
		NDC:                ndc,
		Pixel:              pixel,
		Pressure:           ev.Pressure,
		TangentialPressure: ev.TangentialPressure,
		Width:              ev.Width,
		Height:             ev.Height,
		TiltX:              ev.TiltX,
		TiltY:              ev.TiltY,
		Twist:              ev.Twist,
	}
}

// PointerDifference is the change between two samples of one contact.
// Every field is newer minus older, so DT is positive and DX/DY point the
// way the contact moved. Implementations that subtract the newer sample
// from the older one report the opposite sign.
type PointerDifference struct {
	DT                  time.Duration
	DPressure           float64
	DTangentialPressure float64
	DArea               float64 // change of the width*height contact area
	DTiltX              float64
	DTiltY              float64
	DTwist              float64
	DX                  float64 // NDC
	DY                  float64 // NDC
}

// Difference computes newer - older field by field.
func Difference(older, newer Sample) PointerDifference {
	return PointerDifference{
		DT:                  newer.Time - older.Time,
		DPressure:           newer.Pressure - older.Pressure,
		DTangentialPressure: newer.TangentialPressure - older.TangentialPressure,
		DArea:               newer.Width*newer.Height - older.Width*older.Height,
		DTiltX:              newer.TiltX - older.TiltX,
		DTiltY:              newer.TiltY - older.TiltY,
		DTwist:              newer.Twist - older.Twist,
		DX:                  newer.NDC.X - older.NDC.X,
		DY:                  newer.NDC.Y - older.NDC.Y,
	}
}
