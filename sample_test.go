package pancam

import (
	"testing"
	"time"
)

func TestCoordinates(t *testing.T) {
	bounds := Rect{X: 100, Y: 50, Width: 200, Height: 100}

	tests := []struct {
		name           string
		cx, cy         float64
		ndcX, ndcY     float64
		pixelX, pixelY float64
	}{
		{"top-left", 100, 50, -1, 1, 0, 0},
		{"bottom-right", 300, 150, 1, -1, 200, 100},
		{"center", 200, 100, 0, 0, 100, 50},
		{"quarter", 150, 75, -0.5, 0.5, 50, 25},
		{"outside right", 400, 100, 2, 0, 300, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ndc, pixel := Coordinates(bounds, tt.cx, tt.cy)
			if !approxEqual(ndc.X, tt.ndcX, epsilon) || !approxEqual(ndc.Y, tt.ndcY, epsilon) {
				t.Errorf("ndc = %v, want (%v,%v)", ndc, tt.ndcX, tt.ndcY)
			}
			if pixel.X != tt.pixelX || pixel.Y != tt.pixelY {
				t.Errorf("pixel = %v, want (%v,%v)", pixel, tt.pixelX, tt.pixelY)
			}
		})
	}
}

func TestNewSampleCopiesAttributes(t *testing.T) {
	ev := PointerEvent{
		ClientX: 50, ClientY: 25, Time: 16 * time.Millisecond,
		Pressure: 0.7, TangentialPressure: 0.1, Width: 3, Height: 4,
		TiltX: 10, TiltY: -5, Twist: 90,
	}
	s := NewSample(Rect{Width: 100, Height: 50}, ev)
	if s.Time != ev.Time || s.Pressure != 0.7 || s.TangentialPressure != 0.1 ||
		s.Width != 3 || s.Height != 4 || s.TiltX != 10 || s.TiltY != -5 || s.Twist != 90 {
		t.Errorf("attributes not copied: %+v", s)
	}
	if s.NDC != (Vec2{0, 0}) {
		t.Errorf("NDC = %v, want center", s.NDC)
	}
}

func TestDifference(t *testing.T) {
	older := Sample{
		Time: 10 * time.Millisecond, NDC: Vec2{0.1, 0.2},
		Pressure: 0.5, TangentialPressure: 0.1, Width: 2, Height: 3,
		TiltX: 1, TiltY: 2, Twist: 10,
	}
	newer := Sample{
		Time: 26 * time.Millisecond, NDC: Vec2{0.4, -0.1},
		Pressure: 0.75, TangentialPressure: 0.3, Width: 4, Height: 5,
		TiltX: 4, TiltY: -2, Twist: 25,
	}
	d := Difference(older, newer)
	if d.DT != 16*time.Millisecond {
		t.Errorf("DT = %v, want 16ms", d.DT)
	}
	if !approxEqual(d.DPressure, 0.25, epsilon) || !approxEqual(d.DTangentialPressure, 0.2, epsilon) {
		t.Errorf("pressure deltas = %v, %v", d.DPressure, d.DTangentialPressure)
	}
	if d.DArea != 14 {
		t.Errorf("DArea = %v, want 14", d.DArea)
	}
	if d.DTiltX != 3 || d.DTiltY != -4 || d.DTwist != 15 {
		t.Errorf("tilt/twist deltas = %v, %v, %v", d.DTiltX, d.DTiltY, d.DTwist)
	}
	if !approxEqual(d.DX, 0.3, epsilon) || !approxEqual(d.DY, -0.3, epsilon) {
		t.Errorf("DX, DY = %v, %v, want 0.3, -0.3", d.DX, d.DY)
	}
}

func TestDifferenceOfIdenticalSamplesIsZero(t *testing.T) {
	s := Sample{Time: time.Second, NDC: Vec2{0.3, 0.3}, Pressure: 0.5, Width: 1, Height: 1}
	if d := Difference(s, s); d != (PointerDifference{}) {
		t.Errorf("Difference(s, s) = %+v, want zero", d)
	}
}

func TestDifferenceFollowsMotion(t *testing.T) {
	bounds := Rect{Width: 200, Height: 100}
	older := NewSample(bounds, PointerEvent{ClientX: 50, ClientY: 50, Time: 10 * time.Millisecond})
	newer := NewSample(bounds, PointerEvent{ClientX: 150, ClientY: 25, Time: 30 * time.Millisecond})

	d := Difference(older, newer)
	if d.DT <= 0 || d.DX <= 0 || d.DY <= 0 {
		t.Errorf("right/up motion gave DT=%v DX=%v DY=%v, want all positive", d.DT, d.DX, d.DY)
	}

	r := Difference(newer, older)
	if r.DT != -d.DT || r.DX != -d.DX || r.DY != -d.DY {
		t.Errorf("swapped difference = %+v, want negation of %+v", r, d)
	}
}
