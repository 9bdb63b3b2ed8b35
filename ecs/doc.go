// Package ecs provides ECS adapters for casement's interaction events.
//
// [NewDonburiSink] forwards every dispatched widget, tool, scroll and
// dropdown event into a [Donburi] world as a typed event. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	dispatcher.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
