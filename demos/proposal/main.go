// Proposal samples a photo into particles, waits for a click, then morphs
// them into a line, spells out a question, asks for an answer, beats a heart
// in time with a synthesized heartbeat and finally dissolves into Conway's
// Game of Life. Drag to paint cells once the automaton is running; space
// pauses it and F12 saves a screenshot.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/cellbloom"
	"github.com/phanxgames/cellbloom/audio"
	"github.com/phanxgames/cellbloom/ecs"
)

const (
	windowTitle = "Cellbloom - Proposal"
	screenW     = 1024
	screenH     = 768
)

var (
	imagePath  = flag.String("image", "photo.jpg", "image sampled into particles")
	configPath = flag.String("config", "", "TOML file overriding the scene config")
	scriptPath = flag.String("script", "", "JSON script replacing the built-in sequence")
	seed       = flag.Uint64("seed", 0, "random seed (0 = time-seeded)")
	fullscreen = flag.Bool("fullscreen", false, "start fullscreen")
	debug      = flag.Bool("debug", false, "log frame timings and show FPS")
	mute       = flag.Bool("mute", false, "disable the heartbeat sound")
)

func main() {
	flag.Parse()

	cfg := cellbloom.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = cellbloom.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	script := cellbloom.ProposalScript()
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		if script, err = cellbloom.LoadScript(data); err != nil {
			log.Fatal(err)
		}
	}

	scene := cellbloom.NewScene(cfg)
	scene.SetDebugMode(*debug)
	scene.SetScript(script)

	world := donburi.NewWorld()
	scene.SetEventSink(ecs.NewDonburiStore(world))
	stats := ecs.TrackStats(world)

	player := audio.NewPlayer()
	if !*mute {
		if err := player.Init(); err != nil {
			// Non-fatal, the heart beats silently.
			log.Printf("audio unavailable: %v", err)
		}
	}
	defer player.Close()

	ecs.SceneEventType.Subscribe(world, func(w donburi.World, e cellbloom.SceneEvent) {
		if e.Type == cellbloom.EventHeartBeat {
			player.Beat()
		}
	})

	scene.SetUpdateFunc(func() error {
		events.ProcessAllEvents(world)
		return nil
	})

	err := cellbloom.Run(scene, cellbloom.RunConfig{
		Title:      windowTitle,
		Width:      screenW,
		Height:     screenH,
		Fullscreen: *fullscreen,
		ShowFPS:    *debug,
		Image:      cellbloom.LoadImageFileAsync(*imagePath),
	})
	if *debug {
		s := ecs.StatsComponent.Get(stats)
		log.Printf("exit in %v after %d transitions, %d beats, %d paints, generation %d",
			s.State, s.Transitions, s.Beats, s.Paints, s.Generation)
	}
	if err != nil {
		log.Fatal(err)
	}
}
