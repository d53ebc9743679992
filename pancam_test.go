package pancam

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	if GesturePanStart.String() != "pan-start" || GesturePanMove.String() != "pan-move" || GesturePanEnd.String() != "pan-end" {
		t.Error("unexpected gesture names")
	}
	if PointerPress.String() != "press" || PointerMove.String() != "move" || PointerRelease.String() != "release" {
		t.Error("unexpected event kind names")
	}
	if StateIdle.String() != "idle" || StateTracking.String() != "tracking" || StateDisposed.String() != "disposed" {
		t.Error("unexpected state names")
	}
	if EventKind(99).String() != "unknown" || GestureType(99).String() != "unknown" || TrackerState(99).String() != "unknown" {
		t.Error("out-of-range values should be unknown")
	}
}
