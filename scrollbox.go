package scrollbox

import (
	"fmt"
	"slices"
)

// DefaultBackground is the translucent red drawn behind the items.
var DefaultBackground = RGBA(255, 0, 0, 128)

// ScrollBox is a fixed-size viewport over a horizontal row of items.
//
// The row lives in a single container node whose horizontal position is
// the scroll offset. Every write to that offset goes through
// setContainerX, which applies the loop wrap and the bounds clamp, so the
// offset is always valid after any operation returns.
//
// A ScrollBox is not safe for concurrent use; the host feeds it events,
// ticks and resizes from one goroutine.
type ScrollBox struct {
	// Position places the box on its stage.
	Position Vec2

	// Background fills the viewport behind the items.
	// ColorTransparent disables it.
	Background uint32

	margin        float32
	loop          bool
	cancelOnPress bool
	viewport      Vec2
	followWidth   bool // viewport width tracks the stage width

	container    *Group
	source       []Node // items as passed to SetChild
	itemWidth    float32
	tiles        int // copies of source laid out; 1 when not looping
	contentWidth float32

	drag           dragState
	moveSpeedX     float32
	extraTime      float64
	extraFirstEase float64
}

// dragState tracks pointer engagement.
type dragState struct {
	active bool
	startX float32 // client X of the previous pointer event
}

// New creates a scroll box. A zero Width or Height gives an empty
// viewport in that axis; Stage.NewScrollBox fills them from the stage.
func New(cfg Config) *ScrollBox {
	return &ScrollBox{
		Background:    DefaultBackground,
		margin:        cfg.Margin,
		loop:          cfg.Loop,
		cancelOnPress: cfg.CancelInertiaOnPress,
		viewport:      Vec2{X: cfg.Width, Y: cfg.Height},
		container:     NewGroup(),
		tiles:         1,
	}
}

// SetChild replaces the displayed items.
//
// Items are laid out left to right in order. In loop mode the set is
// repeated enough times to cover twice the viewport; the first copy is
// the given nodes, the others are clones. Calling SetChild again replaces
// the previous content.
//
// Items must share one width. On error the previous content is kept.
func (b *ScrollBox) SetChild(items []Node) error {
	w, err := uniformWidth(items)
	if err != nil {
		return fmt.Errorf("set child: %w", err)
	}
	prevSource, prevWidth := b.source, b.itemWidth
	b.source = slices.Clone(items)
	b.itemWidth = w
	if err := b.rebuild(); err != nil {
		b.source, b.itemWidth = prevSource, prevWidth
		return fmt.Errorf("set child: %w", err)
	}
	return nil
}

// rebuild lays out the source set, tiling it in loop mode, and
// re-validates the offset against the new content.
func (b *ScrollBox) rebuild() error {
	tiles := 1
	if b.loop {
		tiles = tileCount(b.viewport.X, rowWidth(len(b.source), b.itemWidth, b.margin))
	}

	row := make([]Node, 0, len(b.source)*tiles)
	row = append(row, b.source...)
	for i := 1; i < tiles; i++ {
		dup, err := cloneSet(b.source)
		if err != nil {
			return fmt.Errorf("tile %d: %w", i, err)
		}
		row = append(row, dup...)
	}

	b.container.RemoveChildren()
	for _, it := range row {
		b.container.AddChild(it)
	}
	layoutRow(row, b.margin)
	b.tiles = tiles
	b.contentWidth = b.measureContent()

	boxLogger.Debug("scrollbox: layout",
		"items", len(b.source),
		"tiles", tiles,
		"contentWidth", b.contentWidth,
		"loop", b.loop)

	b.setContainerX(b.container.Position.X)
	return nil
}

// measureContent returns the row extent used by the bounds clamp.
// Loop mode measures the laid-out container; otherwise the extent comes
// from item count, width and margin.
func (b *ScrollBox) measureContent() float32 {
	if !b.loop {
		return rowWidth(len(b.container.Children), b.itemWidth, b.margin)
	}
	var extent Rect
	for _, c := range b.container.Children {
		extent = extent.Union(c.Bounds())
	}
	return extent.W
}

// Resize changes the viewport size and re-validates the offset.
// In loop mode the content is re-tiled when the new width needs a
// different number of copies.
func (b *ScrollBox) Resize(width, height float32) {
	b.viewport = Vec2{X: width, Y: height}
	if b.loop && len(b.source) > 0 {
		want := tileCount(width, rowWidth(len(b.source), b.itemWidth, b.margin))
		if want != b.tiles {
			if err := b.rebuild(); err != nil {
				boxLogger.Error("scrollbox: re-tile on resize", "err", err)
			}
			return
		}
	}
	b.setContainerX(b.container.Position.X)
}

// ClampOffset returns the offset that a write of candidate would produce,
// without writing it.
//
// Outside loop mode the result lies in [-(contentWidth-viewportWidth), 0];
// content no wider than the viewport always yields 0. In loop mode a
// candidate past the seam at -contentWidth/2 - margin/2 jumps to 0, and a
// candidate at or right of 0 jumps to the seam, before the same clamp.
func (b *ScrollBox) ClampOffset(candidate float32) float32 {
	if b.viewport.X <= 0 || b.contentWidth <= 0 {
		return 0
	}
	x := candidate
	if b.loop {
		seam := b.loopSeam()
		if x < seam {
			x = 0
		} else if x >= 0 {
			x = seam
		}
	}
	lower := -(b.contentWidth - b.viewport.X)
	return minf(0, maxf(lower, x))
}

// loopSeam is the offset at which the tiled row repeats itself.
func (b *ScrollBox) loopSeam() float32 {
	return -b.contentWidth/2 - b.margin/2
}

// setContainerX is the only writer of the scroll offset.
func (b *ScrollBox) setContainerX(candidate float32) {
	x := b.ClampOffset(candidate)
	if b.loop && x != candidate && boxVerbose() {
		boxLogger.Debug("scrollbox: wrap", "from", candidate, "to", x)
	}
	b.container.Position.X = x
}

// scrollBy moves the offset by dx through setContainerX.
func (b *ScrollBox) scrollBy(dx float32) {
	b.setContainerX(b.container.Position.X + dx)
}

// Offset returns the current horizontal offset of the item row.
func (b *ScrollBox) Offset() float32 { return b.container.Position.X }

// Items returns the laid-out row, including loop copies.
func (b *ScrollBox) Items() []Node { return b.container.Children }

// ViewportSize returns the viewport width and height.
func (b *ScrollBox) ViewportSize() Vec2 { return b.viewport }

// Bounds returns the viewport rectangle in stage coordinates.
func (b *ScrollBox) Bounds() Rect {
	return Rect{X: b.Position.X, Y: b.Position.Y, W: b.viewport.X, H: b.viewport.Y}
}

// ContentWidth returns the extent of the laid-out row.
func (b *ScrollBox) ContentWidth() float32 { return b.contentWidth }

// ItemWidth returns the shared width of the items.
func (b *ScrollBox) ItemWidth() float32 { return b.itemWidth }

// Margin returns the gap between items.
func (b *ScrollBox) Margin() float32 { return b.margin }

// Tiles returns how many copies of the item set are laid out.
func (b *ScrollBox) Tiles() int { return b.tiles }

// Loop reports whether the box scrolls as a ring.
func (b *ScrollBox) Loop() bool { return b.loop }
