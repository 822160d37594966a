package scrollbox_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/scrollbox"
)

func TestEasing(t *testing.T) {
	if got := scrollbox.EaseOutQuart(0); got != 0 {
		t.Errorf("EaseOutQuart(0) = %v, want 0", got)
	}
	if got := scrollbox.EaseOutQuart(1); got != 1 {
		t.Errorf("EaseOutQuart(1) = %v, want 1", got)
	}
	for _, x := range []float64{0.05, 0.25, 0.5, 0.9} {
		got := scrollbox.ReverseEaseOutQuart(scrollbox.EaseOutQuart(x))
		if math.Abs(got-x) > 1e-9 {
			t.Errorf("ReverseEaseOutQuart(EaseOutQuart(%v)) = %v", x, got)
		}
	}
}

func TestInertiaDecay(t *testing.T) {
	b := newBox(t, 300, 10, 1000, false)
	dragBy(b, 5000, -500)
	start := b.Offset()

	if !b.InertiaActive() {
		t.Fatal("release after a 500px move should start inertia")
	}
	want := 1 - math.Pow(0.5, 0.25)
	if got := b.InertiaRemaining(); math.Abs(got-want) > 1e-9 {
		t.Errorf("initial budget = %v, want %v", got, want)
	}

	// The first coasting step repeats the last drag delta.
	b.Animation(1)
	if got := b.Offset() - start; got != -500 {
		t.Errorf("first inertia step = %v, want -500", got)
	}

	prevStep := float32(500)
	prevBudget := b.InertiaRemaining()
	ticks := 1
	for b.InertiaActive() {
		before := b.Offset()
		b.Animation(1)
		ticks++
		step := -(b.Offset() - before)
		if step > prevStep+0.05 {
			t.Fatalf("tick %d: step %v grew from %v", ticks, step, prevStep)
		}
		if b.InertiaActive() && b.InertiaRemaining() >= prevBudget {
			t.Fatalf("tick %d: budget %v did not decrease from %v", ticks, b.InertiaRemaining(), prevBudget)
		}
		prevStep, prevBudget = step, b.InertiaRemaining()
		if ticks > 1000 {
			t.Fatal("inertia did not settle within 1000 ticks")
		}
	}
	if b.Velocity() != 0 || b.InertiaRemaining() != 0 {
		t.Errorf("settled with velocity %v, budget %v", b.Velocity(), b.InertiaRemaining())
	}

	// Settled inertia no longer moves the box.
	x := b.Offset()
	b.Animation(1)
	if b.Offset() != x {
		t.Error("Animation moved a settled box")
	}
}

func TestInertiaFastRelease(t *testing.T) {
	b := newBox(t, 300, 10, 1000, false)
	dragBy(b, 5000, -2500)
	if got := b.InertiaRemaining(); got != 1 {
		t.Errorf("budget after release above MaxSpeed = %v, want 1", got)
	}
}

func TestInertiaNeedsMovement(t *testing.T) {
	b := newBox(t, 300, 10, 100, false)
	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventMouseDown, ClientX: 100})
	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventMouseUp, ClientX: 100})
	if b.InertiaActive() {
		t.Error("release without movement started inertia")
	}
}

func TestInertiaNegativeDelta(t *testing.T) {
	b := newBox(t, 300, 10, 1000, false)
	dragBy(b, 5000, -100)
	budget := b.InertiaRemaining()
	b.Animation(-5)
	if got := b.InertiaRemaining(); got != budget {
		t.Errorf("negative delta changed budget from %v to %v", budget, got)
	}
}

func TestInertiaSurvivesPress(t *testing.T) {
	b := newBox(t, 300, 10, 1000, false)
	dragBy(b, 5000, -200)
	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventMouseDown, ClientX: 100})
	if !b.InertiaActive() {
		t.Error("a press stopped inertia without CancelInertiaOnPress")
	}
}

func TestInertiaCancelOnPress(t *testing.T) {
	b := scrollbox.New(scrollbox.Config{Margin: 10, Width: 300, Height: 300, CancelInertiaOnPress: true})
	if err := b.SetChild(scrollbox.NumberedItems(1000, 100, 100, scrollbox.ColorGreen)); err != nil {
		t.Fatalf("SetChild: %v", err)
	}
	dragBy(b, 5000, -200)
	b.Dispatch(scrollbox.Event{Kind: scrollbox.EventTouchStart, ClientX: 100})
	if b.InertiaActive() {
		t.Error("press did not cancel inertia")
	}
	x := b.Offset()
	b.Animation(1)
	if b.Offset() != x {
		t.Error("cancelled inertia still moved the box")
	}
}
