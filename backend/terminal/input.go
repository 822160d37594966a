package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/scrollbox"
)

// DefaultWheelStep is the pixel distance of one wheel notch.
const DefaultWheelStep = 30

// InputAdapter turns tcell mouse and resize events into stage input.
// Terminals report button state rather than transitions, so the adapter
// keeps the primary button state to find presses and releases.
type InputAdapter struct {
	stage        *scrollbox.Stage
	cellW, cellH float32
	wheelStep    float32

	pressed    bool
	lastX      float32
	lastY      float32
	hasPointer bool
}

// NewInputAdapter creates an adapter that maps cells with the same
// geometry as canvas.
func NewInputAdapter(stage *scrollbox.Stage, canvas *Canvas) *InputAdapter {
	w, h := canvas.CellSize()
	return &InputAdapter{
		stage:     stage,
		cellW:     w,
		cellH:     h,
		wheelStep: DefaultWheelStep,
	}
}

// SetWheelStep changes the pixel distance of one wheel notch.
func (a *InputAdapter) SetWheelStep(step float32) { a.wheelStep = step }

// Pressed reports whether the primary button is held.
func (a *InputAdapter) Pressed() bool { return a.pressed }

// HandleEvent applies ev to the stage and reports whether the event was
// consumed. Keyboard events are left to the caller.
func (a *InputAdapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.stage.Resize(float32(cols)*a.cellW, float32(rows)*a.cellH)
		return true
	}
	return false
}

func (a *InputAdapter) handleMouse(ev *tcell.EventMouse) bool {
	col, row := ev.Position()
	x := (float32(col) + 0.5) * a.cellW
	y := (float32(row) + 0.5) * a.cellH
	buttons := ev.Buttons()

	handled := false
	if dx := a.wheelDelta(buttons, ev.Modifiers()); dx != 0 {
		handled = a.stage.Wheel(x, y, dx)
	}

	down := buttons&tcell.Button1 != 0
	moved := !a.hasPointer || x != a.lastX || y != a.lastY
	a.lastX, a.lastY, a.hasPointer = x, y, true

	switch {
	case down && !a.pressed:
		a.pressed = true
		handled = a.stage.PointerDown(x, y, false) || handled
	case down && moved:
		handled = a.stage.PointerMove(x, y, false) || handled
	case !down && a.pressed:
		a.pressed = false
		handled = a.stage.PointerUp(x, y, false) || handled
	}
	return handled
}

// wheelDelta maps wheel buttons to a horizontal delta. WheelRight scrolls
// toward later items. With shift held, the vertical wheel scrolls
// horizontally, down meaning right.
func (a *InputAdapter) wheelDelta(buttons tcell.ButtonMask, mods tcell.ModMask) float32 {
	var dx float32
	if buttons&tcell.WheelRight != 0 {
		dx += a.wheelStep
	}
	if buttons&tcell.WheelLeft != 0 {
		dx -= a.wheelStep
	}
	if mods&tcell.ModShift != 0 {
		if buttons&tcell.WheelDown != 0 {
			dx += a.wheelStep
		}
		if buttons&tcell.WheelUp != 0 {
			dx -= a.wheelStep
		}
	}
	return dx
}
