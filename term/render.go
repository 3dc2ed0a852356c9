package term

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/cellbloom"
)

// Scene pixels covered by one terminal cell.
const (
	PixelsPerCol  = 4
	PixelsPerRow  = 8
	pixelsPerHalf = PixelsPerRow / 2
)

const upperHalf = '▀'

// half is the accumulated color of one 4x4 square.
type half struct {
	c colorful.Color
	n int
}

// Renderer draws a scene onto a tcell.Screen.
type Renderer struct {
	// Background fills squares nothing was drawn into.
	Background colorful.Color

	cols, rows int
	halves     []half // cols x rows*2, row-major
}

// NewRenderer returns a renderer with a black background.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// ViewportFor returns the scene size matching a terminal of cols x rows.
func ViewportFor(cols, rows int) (w, h int) {
	return cols * PixelsPerCol, rows * PixelsPerRow
}

func (r *Renderer) reset(cols, rows int) {
	n := cols * rows * 2
	if cap(r.halves) < n {
		r.halves = make([]half, n)
	}
	r.halves = r.halves[:n]
	clear(r.halves)
	r.cols, r.rows = cols, rows
}

// add blends c into the square containing scene pixel (x, y). Squares that
// collect several particles show their mean color.
func (r *Renderer) add(x, y float64, c colorful.Color, alpha float64) {
	if x < 0 || y < 0 || alpha <= 0 {
		return
	}
	col, hr := int(x)/PixelsPerCol, int(y)/pixelsPerHalf
	if col >= r.cols || hr >= r.rows*2 {
		return
	}
	h := &r.halves[hr*r.cols+col]
	c = r.Background.BlendRgb(c, min(alpha, 1))
	h.n++
	if h.n == 1 {
		h.c = c
		return
	}
	h.c = h.c.BlendRgb(c, 1/float64(h.n))
}

func (r *Renderer) square(col, hr int) (colorful.Color, bool) {
	h := r.halves[hr*r.cols+col]
	if h.n == 0 {
		return r.Background, false
	}
	return h.c, true
}

// Draw renders the scene's current state, captions and prompt to screen and
// shows it.
func (r *Renderer) Draw(screen tcell.Screen, scene *cellbloom.Scene) {
	cols, rows := screen.Size()
	r.reset(cols, rows)

	if scene.State() == cellbloom.StateLife {
		r.collectLife(scene)
	} else {
		r.collectParticles(scene.Particles())
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, topOK := r.square(col, row*2)
			bottom, bottomOK := r.square(col, row*2+1)
			if !topOK && !bottomOK {
				screen.SetContent(col, row, ' ', nil, styleFor(r.Background, r.Background))
				continue
			}
			screen.SetContent(col, row, upperHalf, nil, styleFor(top, bottom))
		}
	}

	for _, c := range scene.Captions() {
		r.drawText(screen, c.Text, int(c.Y*float64(rows)), toColorful(c.Color), c.Color.A)
	}
	if p := scene.Prompt(); p.Active() {
		r.drawText(screen, "> "+p.Value()+"_", int(0.7*float64(rows)), colorful.Color{R: 1, G: 1, B: 1}, 1)
	}
	screen.Show()
}

func (r *Renderer) collectParticles(ps []cellbloom.Particle) {
	for i := range ps {
		p := &ps[i]
		if !p.Color.Visible() {
			continue
		}
		r.add(p.X, p.Y, toColorful(p.Color), p.Color.A)
	}
}

// collectLife samples the automaton at the center of every square.
func (r *Renderer) collectLife(scene *cellbloom.Scene) {
	g := scene.Grid()
	cs := scene.Config().CellSize
	life := lifeColor(scene.Config())
	for hr := 0; hr < r.rows*2; hr++ {
		y := hr*pixelsPerHalf + pixelsPerHalf/2
		for col := 0; col < r.cols; col++ {
			x := col*PixelsPerCol + PixelsPerCol/2
			if g.Alive(x/cs, y/cs) {
				r.add(float64(x), float64(y), life, 1)
			}
		}
	}
}

func (r *Renderer) drawText(screen tcell.Screen, s string, row int, fg colorful.Color, alpha float64) {
	if row < 0 || row >= r.rows {
		return
	}
	runes := []rune(s)
	start := max((r.cols-len(runes))/2, 0)
	style := styleFor(r.Background.BlendRgb(fg, min(alpha, 1)), r.Background)
	for i, ch := range runes {
		if start+i >= r.cols {
			break
		}
		screen.SetContent(start+i, row, ch, nil, style)
	}
}

func styleFor(fg, bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c cellbloom.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func lifeColor(cfg cellbloom.Config) colorful.Color {
	c, err := colorful.Hex(cfg.LifeColor)
	if err != nil {
		return toColorful(cellbloom.ColorHeart)
	}
	return c
}
