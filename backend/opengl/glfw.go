package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollbox"
)

// WheelStep is the pixel distance of one wheel notch.
const WheelStep = 30

// GLFWInputAdapter forwards GLFW window input to a scrollbox.Stage.
type GLFWInputAdapter struct {
	window *glfw.Window
	stage  *scrollbox.Stage

	cursorX, cursorY float32
	pressed          bool
}

// NewGLFWInputAdapter installs the window callbacks that drive stage.
// The stage is resized to the current window size.
func NewGLFWInputAdapter(window *glfw.Window, stage *scrollbox.Stage) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		stage:  stage,
	}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetSizeCallback(a.sizeCallback)

	w, h := window.GetSize()
	stage.Resize(float32(w), float32(h))
	return a
}

// Pressed reports whether the primary button is held.
func (a *GLFWInputAdapter) Pressed() bool { return a.pressed }

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := w.GetCursorPos()
	a.cursorX, a.cursorY = float32(x), float32(y)

	switch action {
	case glfw.Press:
		a.pressed = true
		a.stage.PointerDown(a.cursorX, a.cursorY, false)
	case glfw.Release:
		a.pressed = false
		a.stage.PointerUp(a.cursorX, a.cursorY, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.cursorX, a.cursorY = float32(xpos), float32(ypos)
	a.stage.PointerMove(a.cursorX, a.cursorY, false)
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	shift := w.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		w.GetKey(glfw.KeyRightShift) == glfw.Press
	if dx := wheelDelta(xoff, yoff, shift); dx != 0 {
		a.stage.Wheel(a.cursorX, a.cursorY, dx)
	}
}

func (a *GLFWInputAdapter) sizeCallback(w *glfw.Window, width, height int) {
	a.stage.Resize(float32(width), float32(height))
}

// wheelDelta converts GLFW scroll offsets to a stage wheel delta.
// GLFW reports a positive xoff for scrolling left, so the sign flips.
// With shift held, vertical scrolling drives the horizontal axis.
func wheelDelta(xoff, yoff float64, shift bool) float32 {
	off := xoff
	if shift && off == 0 {
		off = yoff
	}
	return float32(-off * WheelStep)
}
