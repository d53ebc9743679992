package ecs

import (
	"testing"

	"github.com/phanxgames/pancam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []pancam.Gesture
	GestureEventType.Subscribe(world, func(w donburi.World, g pancam.Gesture) {
		received = append(received, g)
	})

	sink.EmitGesture(pancam.Gesture{Type: pancam.GesturePanStart, ContactID: 3, X: 0.5, Y: -0.25})
	sink.EmitGesture(pancam.Gesture{
		Type:      pancam.GesturePanMove,
		ContactID: 3,
		Diff:      pancam.PointerDifference{DX: 0.1, DY: -0.2},
	})

	// Events are queued; process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if g := received[0]; g.Type != pancam.GesturePanStart || g.ContactID != 3 || g.X != 0.5 || g.Y != -0.25 {
		t.Errorf("event 0: %+v", g)
	}
	if g := received[1]; g.Type != pancam.GesturePanMove || g.Diff.DX != 0.1 || g.Diff.DY != -0.2 {
		t.Errorf("event 1: %+v", g)
	}
}

func TestDonburiSink_FromTracker(t *testing.T) {
	world := donburi.NewWorld()
	tr := pancam.NewTracker(pancam.RectSurface{Width: 200, Height: 100},
		pancam.WithSink(NewDonburiSink(world)))

	var types []pancam.GestureType
	GestureEventType.Subscribe(world, func(w donburi.World, g pancam.Gesture) {
		types = append(types, g.Type)
	})

	tr.Press(1, pancam.PointerEvent{ClientX: 100, ClientY: 50})
	tr.Move(1, pancam.PointerEvent{ClientX: 120, ClientY: 50})
	tr.Release(1, pancam.PointerEvent{ClientX: 120, ClientY: 50})
	events.ProcessAllEvents(world)

	want := []pancam.GestureType{pancam.GesturePanStart, pancam.GesturePanMove, pancam.GesturePanEnd}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, g pancam.Gesture) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, g pancam.Gesture) {
		count2++
	})

	sink.EmitGesture(pancam.Gesture{Type: pancam.GesturePanEnd})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
