package scrollbox_test

import (
	"testing"

	"github.com/go-theft-auto/scrollbox"
)

func TestLoopTiling(t *testing.T) {
	items := scrollbox.NumberedItems(3, 100, 100, scrollbox.ColorGreen)
	b := scrollbox.New(scrollbox.Config{Margin: 10, Width: 300, Height: 300, Loop: true})
	if err := b.SetChild(items); err != nil {
		t.Fatalf("SetChild: %v", err)
	}

	// One set spans 320px; covering twice the 300px viewport takes 2 sets.
	if got := b.Tiles(); got != 2 {
		t.Errorf("tiles = %d, want 2", got)
	}
	row := b.Items()
	if len(row) != 6 {
		t.Fatalf("row length = %d, want 6", len(row))
	}
	if got := b.ContentWidth(); got < 2*300 {
		t.Errorf("content width %v does not cover twice the viewport", got)
	}
	if got := b.ContentWidth(); got != 650 {
		t.Errorf("content width = %v, want 650", got)
	}

	for i := range items {
		if row[i] != items[i] {
			t.Errorf("row[%d] is not the original item", i)
		}
		dup := row[i+3]
		if dup == items[i] {
			t.Errorf("row[%d] shares the original node", i+3)
		}
		if got, want := dup.Bounds().W, items[i].Bounds().W; got != want {
			t.Errorf("copy %d width = %v, want %v", i, got, want)
		}
	}
	for i, it := range row {
		if want := float32(i) * 110; it.Base().Position.X != want {
			t.Errorf("row[%d] at %v, want %v", i, it.Base().Position.X, want)
		}
	}
}

func TestLoopSetChildReplaces(t *testing.T) {
	b := scrollbox.New(scrollbox.Config{Margin: 10, Width: 300, Height: 300, Loop: true})
	for range 3 {
		if err := b.SetChild(scrollbox.NumberedItems(3, 100, 100, scrollbox.ColorGreen)); err != nil {
			t.Fatalf("SetChild: %v", err)
		}
	}
	if got := len(b.Items()); got != 6 {
		t.Errorf("row length after repeated SetChild = %d, want 6", got)
	}
}

func TestLoopWheelNeverRevealsGap(t *testing.T) {
	b := scrollbox.New(scrollbox.Config{Margin: 10, Width: 300, Height: 300, Loop: true})
	if err := b.SetChild(scrollbox.NumberedItems(3, 100, 100, scrollbox.ColorGreen)); err != nil {
		t.Fatalf("SetChild: %v", err)
	}

	vw := b.ViewportSize().X
	for _, step := range []float32{7, 33, -13, 110, -45} {
		for i := range 200 {
			b.Dispatch(scrollbox.Event{Kind: scrollbox.EventWheel, DeltaX: step})
			x := b.Offset()
			if x > 0 || -x+vw > b.ContentWidth() {
				t.Fatalf("step %v, event %d: window [%v, %v] leaves content [0, %v]",
					step, i, -x, -x+vw, b.ContentWidth())
			}
		}
	}
}

func TestLoopDragWraps(t *testing.T) {
	b := scrollbox.New(scrollbox.Config{Margin: 10, Width: 300, Height: 300, Loop: true})
	if err := b.SetChild(scrollbox.NumberedItems(3, 100, 100, scrollbox.ColorGreen)); err != nil {
		t.Fatalf("SetChild: %v", err)
	}
	seam := -b.ContentWidth()/2 - b.Margin()/2 // -330

	// An offset of 0 shows the same items as the seam, so a fresh loop
	// box starts there.
	if got := b.Offset(); got != seam {
		t.Fatalf("initial offset = %v, want seam %v", got, seam)
	}

	// Past the seam wraps back to the first set.
	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventMouseDown, ClientX: 200})
	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventMouseMove, ClientX: 190})
	if got := b.Offset(); got != 0 {
		t.Errorf("offset after crossing the seam = %v, want 0", got)
	}

	// Right of 0 wraps to the seam.
	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventMouseMove, ClientX: 195})
	if got := b.Offset(); got != seam {
		t.Errorf("offset after dragging right of 0 = %v, want %v", got, seam)
	}

	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventMouseMove, ClientX: 215})
	if got := b.Offset(); got != seam+20 {
		t.Errorf("offset inside the ring = %v, want %v", got, seam+20)
	}
	if x := b.Offset(); b.ClampOffset(x) != x {
		t.Errorf("ClampOffset(%v) = %v, want fixed point", x, b.ClampOffset(x))
	}
}

func TestLoopResizeRetiles(t *testing.T) {
	b := scrollbox.New(scrollbox.Config{Margin: 10, Width: 300, Height: 300, Loop: true})
	if err := b.SetChild(scrollbox.NumberedItems(3, 100, 100, scrollbox.ColorGreen)); err != nil {
		t.Fatalf("SetChild: %v", err)
	}

	b.Resize(800, 300)
	// ceil(800/320) * 2
	if got := b.Tiles(); got != 6 {
		t.Errorf("tiles after widening = %d, want 6", got)
	}
	if got := len(b.Items()); got != 18 {
		t.Errorf("row length after widening = %d, want 18", got)
	}
	if got := b.ContentWidth(); got < 2*800 {
		t.Errorf("content width %v does not cover twice the viewport", got)
	}

	b.Resize(300, 300)
	if got := b.Tiles(); got != 2 {
		t.Errorf("tiles after narrowing = %d, want 2", got)
	}
}
