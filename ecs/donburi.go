package ecs

import (
	"github.com/phanxgames/cellbloom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for cellbloom scene events.
var SceneEventType = events.NewEventType[cellbloom.SceneEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world. Events are
// queued on SceneEventType and delivered by ProcessEvents or
// events.ProcessAllEvents.
func NewDonburiStore(world donburi.World) cellbloom.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event cellbloom.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
