// Package ecs provides ECS adapters for pancam's gesture tracker.
//
// The primary adapter is [NewDonburiSink], which bridges tracker gestures
// (pan-start, pan-move, pan-end) into a [Donburi] world as typed events.
// Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tracker.SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
