package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/cellbloom"
)

// DefaultTPS is the tick rate used when Driver.TPS is zero.
const DefaultTPS = 60

// Driver runs a scene against a tcell screen: terminal events become pointer,
// key and resize input, and a ticker advances and redraws the scene.
type Driver struct {
	Screen   tcell.Screen
	Scene    *cellbloom.Scene
	Renderer *Renderer
	TPS      int
	// Image, when set, is polled between ticks until a result arrives.
	Image <-chan cellbloom.ImageResult
	// OnReady is called with the Initialize outcome once Image delivers.
	OnReady func(err error)
	// OnTick runs after every tick; a non-nil error stops Run.
	OnTick func() error
}

// NewDriver returns a driver for an initialized screen.
func NewDriver(screen tcell.Screen, scene *cellbloom.Scene) *Driver {
	return &Driver{Screen: screen, Scene: scene, Renderer: NewRenderer(), TPS: DefaultTPS}
}

// Run enables mouse reporting, sizes the scene to the terminal and ticks
// until ctx is done, the user quits (Escape or Ctrl-C) or OnTick fails. The
// caller owns the screen and finalizes it.
func (d *Driver) Run(ctx context.Context) error {
	if d.Renderer == nil {
		d.Renderer = NewRenderer()
	}
	tps := d.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	d.Screen.EnableMouse()
	d.resize()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	dt := float32(1.0 / float64(tps))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !d.HandleEvent(ev) {
				return nil
			}
		case res := <-d.Image:
			d.Image = nil
			d.ready(res)
		case <-ticker.C:
			d.Scene.Step(dt)
			d.Renderer.Draw(d.Screen, d.Scene)
			if d.OnTick != nil {
				if err := d.OnTick(); err != nil {
					return err
				}
			}
		}
	}
}

func (d *Driver) ready(res cellbloom.ImageResult) {
	err := res.Err
	if err == nil {
		err = d.Scene.Initialize(res.Image)
	}
	if d.OnReady != nil {
		d.OnReady(err)
	}
}

func (d *Driver) resize() {
	cols, rows := d.Screen.Size()
	d.Scene.OnResize(ViewportFor(cols, rows))
}

// HandleEvent applies one terminal event to the scene. It returns false when
// the user asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		x := float64(col*PixelsPerCol + PixelsPerCol/2)
		y := float64(row*PixelsPerRow + PixelsPerRow/2)
		d.Scene.HandlePointer(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		d.resize()
		d.Screen.Sync()
	}
	return true
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	p := d.Scene.Prompt()
	if p.Active() {
		switch ev.Key() {
		case tcell.KeyRune:
			p.Type(ev.Rune())
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			p.Backspace()
		case tcell.KeyEnter:
			d.Scene.SubmitAnswer()
		}
		return true
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
		d.Scene.ToggleLife()
	}
	return true
}
