package ecs

import (
	"github.com/phanxgames/flicker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for flicker scene events.
// Events are queued during Scene.Update and delivered by ProcessEvents, so
// subscribers never mutate scene collections mid-pass.
var SceneEventType = events.NewEventType[flicker.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) flicker.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event flicker.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
