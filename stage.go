package scrollbox

import (
	"errors"
	"fmt"
	"strconv"
)

// Renderer draws a finished DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Stage hosts scroll boxes: it owns the display size, routes pointer and
// wheel input to the boxes by hit-testing, drives their inertia each
// frame and paints them.
type Stage struct {
	renderer   Renderer
	size       Vec2
	background uint32
	boxes      []*ScrollBox
}

// StageOption configures a Stage.
type StageOption func(*Stage)

// WithBackground sets the color drawn behind every box.
func WithBackground(color uint32) StageOption {
	return func(s *Stage) { s.background = color }
}

// NewStage creates a stage with the given display size. renderer may be
// nil for hosts that only call Draw.
func NewStage(renderer Renderer, width, height float32, opts ...StageOption) *Stage {
	s := &Stage{
		renderer: renderer,
		size:     Vec2{X: width, Y: height},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStageFromConfig builds a stage and its boxes, filled with generated
// numbered items, from a StageConfig.
func NewStageFromConfig(renderer Renderer, cfg StageConfig) (*Stage, error) {
	s := NewStage(renderer, float32(cfg.Width), float32(cfg.Height), WithBackground(HexColor(cfg.Background)))
	for i, bc := range cfg.Boxes {
		b := s.NewScrollBox(bc.Config)
		b.Position.Y = bc.Y
		if err := b.SetChild(NumberedItems(bc.Items, bc.ItemWidth, bc.ItemHeight, HexColor(bc.ItemColor))); err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
	}
	return s, nil
}

// NumberedItems builds n items, each a translucent filled square of the
// given size with its index drawn in the corner.
func NumberedItems(n int, width, height float32, color uint32) []Node {
	items := make([]Node, 0, n)
	for i := range n {
		bg := NewShape().Rect(0, 0, width, height, color)
		bg.Alpha = 0.5
		items = append(items, NewGroup(bg, NewLabel(strconv.Itoa(i), DefaultTextStyle())))
	}
	return items
}

// NewScrollBox creates a box and adds it to the stage. A zero Width or
// Height is taken from the display size; a box created with zero Width
// keeps following the display width on Resize.
func (s *Stage) NewScrollBox(cfg Config) *ScrollBox {
	follow := cfg.Width <= 0
	if follow {
		cfg.Width = s.size.X
	}
	if cfg.Height <= 0 {
		cfg.Height = s.size.Y
	}
	b := New(cfg)
	b.followWidth = follow
	s.Add(b)
	return b
}

// Add places an existing box on the stage. Boxes added later are painted
// on top and receive input first.
func (s *Stage) Add(b *ScrollBox) {
	s.boxes = append(s.boxes, b)
}

// Boxes returns the boxes on the stage in paint order.
func (s *Stage) Boxes() []*ScrollBox { return s.boxes }

// Size returns the display size.
func (s *Stage) Size() Vec2 { return s.size }

// Resize updates the display size. Boxes that follow the display width
// are resized to it and keep their own height.
func (s *Stage) Resize(width, height float32) {
	s.size = Vec2{X: width, Y: height}
	for _, b := range s.boxes {
		if b.followWidth {
			b.Resize(width, b.viewport.Y)
		}
	}
	if s.renderer != nil {
		s.renderer.Resize(int(width), int(height))
	}
}

// Tick advances inertia on every box by one frame.
func (s *Stage) Tick(delta float32) {
	for _, b := range s.boxes {
		b.Animation(delta)
	}
}

// boxAt returns the topmost box containing p.
func (s *Stage) boxAt(p Vec2) *ScrollBox {
	for i := len(s.boxes) - 1; i >= 0; i-- {
		if s.boxes[i].Bounds().Contains(p) {
			return s.boxes[i]
		}
	}
	return nil
}

// PointerDown delivers a press at (x, y) to the box under it.
// It reports whether a box consumed the event.
func (s *Stage) PointerDown(x, y float32, touch bool) bool {
	b := s.boxAt(Vec2{X: x, Y: y})
	if b == nil {
		return false
	}
	return b.Dispatch(Event{Kind: pick(touch, EventTouchStart, EventMouseDown), ClientX: x})
}

// PointerMove delivers a move to the box under the pointer.
func (s *Stage) PointerMove(x, y float32, touch bool) bool {
	b := s.boxAt(Vec2{X: x, Y: y})
	if b == nil {
		return false
	}
	return b.Dispatch(Event{Kind: pick(touch, EventTouchMove, EventMouseMove), ClientX: x})
}

// PointerUp delivers a release: an up to the box under the pointer and an
// up-outside to every other box that is being dragged.
func (s *Stage) PointerUp(x, y float32, touch bool) bool {
	hit := s.boxAt(Vec2{X: x, Y: y})
	handled := false
	for _, b := range s.boxes {
		switch {
		case b == hit:
			handled = b.Dispatch(Event{Kind: pick(touch, EventTouchEnd, EventMouseUp), ClientX: x}) || handled
		case b.Dragging():
			handled = b.Dispatch(Event{Kind: pick(touch, EventTouchEndOutside, EventMouseUpOutside), ClientX: x}) || handled
		}
	}
	return handled
}

// Wheel delivers a horizontal wheel delta to the box under (x, y).
func (s *Stage) Wheel(x, y, deltaX float32) bool {
	b := s.boxAt(Vec2{X: x, Y: y})
	if b == nil {
		return false
	}
	return b.Dispatch(Event{Kind: EventWheel, DeltaX: deltaX})
}

func pick(touch bool, t, m EventKind) EventKind {
	if touch {
		return t
	}
	return m
}

// Draw paints the stage background and every on-screen box onto c. Each
// box paints its background, then its visible items clipped to the
// viewport.
// Items that cannot be painted are skipped and reported in the error.
func (s *Stage) Draw(c Canvas) error {
	if s.background&0xFF000000 != 0 {
		c.FillRect(Rect{W: s.size.X, H: s.size.Y}, s.background)
	}
	screen := Rect{W: s.size.X, H: s.size.Y}
	var errs []error
	for i, b := range s.boxes {
		if !b.Bounds().Intersects(screen) {
			continue
		}
		if err := drawBox(c, b); err != nil {
			errs = append(errs, fmt.Errorf("box %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func drawBox(c Canvas, b *ScrollBox) error {
	vr := b.Bounds()
	if b.Background&0xFF000000 != 0 {
		c.FillRect(vr, b.Background)
	}

	c.PushClip(vr)
	defer c.PopClip()

	items := b.Items()
	clip := NewItemClipper(len(items), b.itemWidth+b.margin, vr.W, -b.Offset())
	p := newPainter(c, Vec2{X: vr.X, Y: vr.Y})
	row := p.enter(&b.container.Transform)

	var errs []error
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		if err := row.paint(items[i]); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Render paints the stage into a pooled DrawList and hands it to the
// renderer.
func (s *Stage) Render() error {
	if s.renderer == nil {
		return errors.New("scrollbox: stage has no renderer")
	}
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.FontTextureID = s.renderer.FontTextureID()

	drawErr := s.Draw(dl)
	if err := s.renderer.Render(dl); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return drawErr
}
