package cellbloom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SetShowFPS toggles the FPS/TPS readout in the top-left corner.
func (s *Scene) SetShowFPS(show bool) {
	s.showFPS = show
}

// drawFPS prints the current FPS and TPS over a translucent backing.
func drawFPS(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
