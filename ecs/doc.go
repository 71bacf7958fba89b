// Package ecs provides ECS adapters for flicker's scene lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges scene events (timer
// fired, emitter/tween/object removed, scene activated/deactivated) into a
// [Donburi] world as typed events. Subscribe to [SceneEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
