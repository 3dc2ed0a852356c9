package ecs

import (
	"testing"

	"github.com/phanxgames/cellbloom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []cellbloom.SceneEvent
	SceneEventType.Subscribe(world, func(w donburi.World, e cellbloom.SceneEvent) {
		received = append(received, e)
	})

	store.EmitEvent(cellbloom.SceneEvent{
		Type:  cellbloom.EventPaint,
		State: cellbloom.StateLife,
		X:     100,
		Y:     200,
	})
	store.EmitEvent(cellbloom.SceneEvent{
		Type:       cellbloom.EventGeneration,
		Generation: 7,
		LiveCells:  42,
	})

	if len(received) != 0 {
		t.Fatal("events should be queued until processed")
	}
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != cellbloom.EventPaint || e.X != 100 || e.Y != 200 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Generation != 7 || e.LiveCells != 42 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_ImplementsEventSink(t *testing.T) {
	var _ cellbloom.EventSink = NewDonburiStore(donburi.NewWorld())
}

func TestSceneEventsReachWorld(t *testing.T) {
	world := donburi.NewWorld()
	scene := cellbloom.NewScene(cellbloom.DefaultConfig())
	scene.SetEventSink(NewDonburiStore(world))

	var types []cellbloom.EventType
	SceneEventType.Subscribe(world, func(w donburi.World, e cellbloom.SceneEvent) {
		types = append(types, e.Type)
	})

	scene.OnResize(40, 40)
	scene.BeginLifeDirect()
	events.ProcessAllEvents(world)

	if len(types) != 1 || types[0] != cellbloom.EventStateChange {
		t.Fatalf("types = %v, want one state change", types)
	}
}

func TestTrackStats(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	entry := TrackStats(world)

	store.EmitEvent(cellbloom.SceneEvent{Type: cellbloom.EventStateChange, State: cellbloom.StateHeart, Frame: 3})
	store.EmitEvent(cellbloom.SceneEvent{Type: cellbloom.EventHeartBeat, Frame: 10})
	store.EmitEvent(cellbloom.SceneEvent{Type: cellbloom.EventHeartBeat, Frame: 30})
	store.EmitEvent(cellbloom.SceneEvent{Type: cellbloom.EventPointerDown, Frame: 31})
	store.EmitEvent(cellbloom.SceneEvent{Type: cellbloom.EventPaint, Frame: 31})
	store.EmitEvent(cellbloom.SceneEvent{Type: cellbloom.EventGeneration, Generation: 2, LiveCells: 9, Frame: 40})
	events.ProcessAllEvents(world)

	s := StatsComponent.Get(entry)
	want := Stats{
		State:       cellbloom.StateHeart,
		Transitions: 1,
		Beats:       2,
		Paints:      1,
		Clicks:      1,
		Generation:  2,
		LiveCells:   9,
		LastFrame:   40,
	}
	if *s != want {
		t.Errorf("stats = %+v, want %+v", *s, want)
	}
}
