// Package ecs provides ECS adapters for cellbloom's scene events.
//
// [NewDonburiStore] bridges scene events (state changes, heartbeats, paints
// and automaton generations) into a [Donburi] world as typed events.
// Subscribe to [SceneEventType] in your ECS systems to receive them, or call
// [TrackStats] to keep a running [Stats] component up to date.
//
// Usage:
//
//	world := donburi.NewWorld()
//	scene.SetEventSink(ecs.NewDonburiStore(world))
//	stats := ecs.TrackStats(world)
//	// each frame:
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
