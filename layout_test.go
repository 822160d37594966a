package scrollbox

import (
	"errors"
	"testing"
)

func TestTileCount(t *testing.T) {
	tests := []struct {
		viewport, set float32
		want          int
	}{
		{300, 320, 2},
		{800, 320, 6},
		{640, 320, 4},
		{0, 320, 2},
		{300, 0, 1},
		{300, -5, 1},
	}
	for _, tt := range tests {
		if got := tileCount(tt.viewport, tt.set); got != tt.want {
			t.Errorf("tileCount(%v, %v) = %d, want %d", tt.viewport, tt.set, got, tt.want)
		}
	}
}

func TestTileCountCoversViewport(t *testing.T) {
	// Tiled content must span the viewport plus one set from any offset
	// the wrap can produce.
	for _, vw := range []float32{1, 99, 300, 320, 321, 1000, 1919} {
		for _, set := range []float32{50, 100, 320, 1000} {
			n := tileCount(vw, set)
			if float32(n)*set < vw+set {
				t.Errorf("tileCount(%v, %v) = %d does not cover viewport plus one set", vw, set, n)
			}
		}
	}
}

func TestRowWidth(t *testing.T) {
	if got := rowWidth(0, 100, 10); got != 0 {
		t.Errorf("rowWidth(0) = %v, want 0", got)
	}
	if got := rowWidth(1, 100, 10); got != 100 {
		t.Errorf("rowWidth(1) = %v, want 100", got)
	}
	if got := rowWidth(100, 100, 10); got != 10990 {
		t.Errorf("rowWidth(100) = %v, want 10990", got)
	}
}

func TestUniformWidth(t *testing.T) {
	same := []Node{
		NewShape().Rect(0, 0, 100, 40, ColorRed),
		NewGroup(NewShape().Rect(0, 0, 100.0001, 80, ColorRed)),
	}
	w, err := uniformWidth(same)
	if err != nil {
		t.Fatalf("uniformWidth: %v", err)
	}
	if w != 100 {
		t.Errorf("width = %v, want 100", w)
	}

	mixed := append(same, NewShape().Rect(0, 0, 60, 40, ColorRed))
	if _, err := uniformWidth(mixed); !errors.Is(err, ErrMixedItemWidths) {
		t.Errorf("mixed widths error = %v, want ErrMixedItemWidths", err)
	}
}

func TestLayoutRow(t *testing.T) {
	items := []Node{
		NewLabel("ab", DefaultTextStyle()),
		NewLabel("cd", DefaultTextStyle()),
		NewLabel("ef", DefaultTextStyle()),
	}
	layoutRow(items, 8)
	for i, it := range items {
		if want := float32(i) * 40; it.Base().Position.X != want {
			t.Errorf("item %d at %v, want %v", i, it.Base().Position.X, want)
		}
	}
}
