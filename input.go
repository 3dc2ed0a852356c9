package cellbloom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerState tracks one pointer between frames.
type pointerState struct {
	down         bool
	lastX, lastY float64
}

// processInput is called from Scene.Update to handle injected, mouse, touch
// and keyboard input. An injected event replaces real mouse input for the
// frame it is consumed in.
func (s *Scene) processInput() {
	if !s.processInjectedInput() {
		mx, my := ebiten.CursorPosition()
		s.processPointer(0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	s.processTouchPointers()
	s.processKeys()
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/hold/release machine for a single pointer.
// A press releases a script waiting for a click and paints; moving while
// held keeps painting.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &s.pointers[pointerID]
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		s.emit(SceneEvent{Type: EventPointerDown, X: x, Y: y})
		if s.script != nil {
			s.script.pointerPressed()
		}
		s.OnPointerPaint(x, y)
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			s.OnPointerPaint(x, y)
		}
		ps.lastX, ps.lastY = x, y
	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = x, y
	default:
		ps.lastX, ps.lastY = x, y
	}
}

// processKeys feeds typed characters to an active prompt. Otherwise space
// toggles the automaton and F12 queues a screenshot.
func (s *Scene) processKeys() {
	if s.prompt.Active() {
		s.keyBuf = ebiten.AppendInputChars(s.keyBuf[:0])
		for _, r := range s.keyBuf {
			s.prompt.Type(r)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			s.prompt.Backspace()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
			s.SubmitAnswer()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.ToggleLife()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		s.Screenshot("f12")
	}
}
