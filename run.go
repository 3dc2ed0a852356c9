package cellbloom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	ShowFPS    bool
	// Image, when set, is polled once per frame until a result arrives. A
	// decoded image initializes the scene; a failure leaves it empty.
	Image <-chan ImageResult
	// OnReady is called with the Initialize outcome once Image delivers.
	OnReady func(err error)
}

// Run opens a resizable window and drives scene until the window closes or
// the scene's update func returns an error. ebiten.Termination is treated
// as a normal exit.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	scene.SetShowFPS(cfg.ShowFPS)

	g := &game{scene: scene, image: cfg.Image, onReady: cfg.OnReady}
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene   *Scene
	image   <-chan ImageResult
	onReady func(error)
}

func (g *game) Update() error {
	if g.image != nil {
		if res, ok := pollImage(g.image); ok {
			g.image = nil
			g.ready(res)
		}
	}
	return g.scene.Update()
}

func (g *game) ready(res ImageResult) {
	err := res.Err
	if err == nil {
		err = g.scene.Initialize(res.Image)
	}
	if err != nil {
		logger.Printf("image unavailable, continuing without particles: %v", err)
	}
	if g.onReady != nil {
		g.onReady(err)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen equal to the window so the scene sees
// every resize.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.OnResize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
