// Package ecs provides ECS adapters for pancam.
package ecs

import (
	"github.com/phanxgames/pancam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for pancam gestures.
// Subscribe to this in your ECS systems to receive pan-start, pan-move and
// pan-end notifications.
var GestureEventType = events.NewEventType[pancam.Gesture]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a GestureSink backed by a Donburi world.
// Gestures are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pancam.GestureSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGesture(g pancam.Gesture) {
	GestureEventType.Publish(s.world, g)
}
