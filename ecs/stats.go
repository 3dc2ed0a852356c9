package ecs

import (
	"github.com/phanxgames/cellbloom"

	"github.com/yohamta/donburi"
)

// Stats summarizes the scene events seen so far.
type Stats struct {
	State       cellbloom.State
	Transitions int
	Beats       int
	Paints      int
	Clicks      int
	Generation  int
	LiveCells   int
	LastFrame   int
}

// StatsComponent holds the Stats of the entity created by TrackStats.
var StatsComponent = donburi.NewComponentType[Stats]()

// TrackStats creates an entity carrying a Stats component and subscribes a
// handler that folds every SceneEvent into it. The returned entry stays
// valid for the lifetime of the world.
func TrackStats(world donburi.World) *donburi.Entry {
	entity := world.Create(StatsComponent)
	entry := world.Entry(entity)
	SceneEventType.Subscribe(world, func(w donburi.World, e cellbloom.SceneEvent) {
		if !w.Valid(entity) {
			return
		}
		apply(StatsComponent.Get(w.Entry(entity)), e)
	})
	return entry
}

func apply(s *Stats, e cellbloom.SceneEvent) {
	s.LastFrame = e.Frame
	switch e.Type {
	case cellbloom.EventStateChange:
		s.State = e.State
		s.Transitions++
	case cellbloom.EventHeartBeat:
		s.Beats++
	case cellbloom.EventPaint:
		s.Paints++
	case cellbloom.EventPointerDown:
		s.Clicks++
	case cellbloom.EventGeneration:
		s.Generation = e.Generation
		s.LiveCells = e.LiveCells
	}
}
