package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/scrollbox"
)

func newTestStage(t *testing.T) (*scrollbox.Stage, *scrollbox.ScrollBox, *InputAdapter) {
	t.Helper()
	c := newTestCanvas(t, 80, 30)
	w, h := c.PixelSize()
	stage := scrollbox.NewStage(nil, w, h)
	box := stage.NewScrollBox(scrollbox.Config{Margin: 10})
	if err := box.SetChild(scrollbox.NumberedItems(100, 100, 100, scrollbox.ColorGreen)); err != nil {
		t.Fatalf("SetChild: %v", err)
	}
	return stage, box, NewInputAdapter(stage, c)
}

func TestInputAdapterDrag(t *testing.T) {
	_, box, a := newTestStage(t)

	a.HandleEvent(tcell.NewEventMouse(50, 5, tcell.Button1, tcell.ModNone))
	if !box.Dragging() {
		t.Fatal("press did not start a drag")
	}
	a.HandleEvent(tcell.NewEventMouse(45, 5, tcell.Button1, tcell.ModNone))
	if got := box.Offset(); got != -50 {
		t.Errorf("offset after drag = %v, want -50", got)
	}

	// Repeated reports at the same cell are not moves.
	a.HandleEvent(tcell.NewEventMouse(45, 5, tcell.Button1, tcell.ModNone))
	if got := box.Velocity(); got != -50 {
		t.Errorf("velocity = %v, want -50", got)
	}

	a.HandleEvent(tcell.NewEventMouse(45, 5, tcell.ButtonNone, tcell.ModNone))
	if box.Dragging() || a.Pressed() {
		t.Error("release did not end the drag")
	}
	if !box.InertiaActive() {
		t.Error("release after a move should start inertia")
	}
}

func TestInputAdapterWheel(t *testing.T) {
	_, box, a := newTestStage(t)

	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.WheelRight, tcell.ModNone))
	if got := box.Offset(); got != -DefaultWheelStep {
		t.Errorf("offset after wheel right = %v, want %v", got, -DefaultWheelStep)
	}
	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.WheelUp, tcell.ModShift))
	if got := box.Offset(); got != 0 {
		t.Errorf("offset after shift+wheel up = %v, want 0", got)
	}
	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.WheelDown, tcell.ModNone))
	if got := box.Offset(); got != 0 {
		t.Errorf("plain vertical wheel moved the box to %v", got)
	}
	if box.InertiaActive() {
		t.Error("wheel input started inertia")
	}
}

func TestInputAdapterResize(t *testing.T) {
	stage, box, a := newTestStage(t)

	if !a.HandleEvent(tcell.NewEventResize(40, 30)) {
		t.Fatal("resize not consumed")
	}
	if got := stage.Size(); got != (scrollbox.Vec2{X: 400, Y: 300}) {
		t.Errorf("stage size = %v, want 400x300", got)
	}
	if got := box.ViewportSize().X; got != 400 {
		t.Errorf("viewport width = %v, want 400", got)
	}
}
