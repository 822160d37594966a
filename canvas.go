package scrollbox

// Canvas receives the primitives a Stage paints. DrawList implements it
// for GPU backends; backend/terminal implements it on character cells.
type Canvas interface {
	FillRect(r Rect, color uint32)
	// DrawText draws a line of square glyphs of the given cell size.
	DrawText(x, y float32, text string, size float32, color uint32)
	DrawImage(r Rect, tex Texture, tint uint32)
	// PushClip restricts drawing to r intersected with the current clip.
	PushClip(r Rect)
	PopClip()
}

// painter is a Visitor that draws nodes onto a Canvas.
// origin, scale and alpha accumulate the parent transforms.
type painter struct {
	canvas Canvas
	origin Vec2
	scale  Vec2
	alpha  float32
}

func newPainter(c Canvas, origin Vec2) *painter {
	return &painter{canvas: c, origin: origin, scale: Vec2{X: 1, Y: 1}, alpha: 1}
}

// paint draws n placed relative to the painter's origin.
func (p *painter) paint(n Node) error {
	if n != nil && !n.Base().Visible {
		return nil
	}
	return Visit(n, p)
}

// enter returns the painter state for the local space of t.
func (p *painter) enter(t *Transform) painter {
	return painter{
		canvas: p.canvas,
		origin: p.origin.Add(t.Position.Mul(p.scale)),
		scale:  p.scale.Mul(t.Scale),
		alpha:  p.alpha * t.Alpha,
	}
}

// world maps a local rectangle of the current space to canvas space.
func (p *painter) world(r Rect) Rect {
	return Rect{
		X: p.origin.X + r.X*p.scale.X,
		Y: p.origin.Y + r.Y*p.scale.Y,
		W: r.W * p.scale.X,
		H: r.H * p.scale.Y,
	}
}

func (p *painter) VisitSprite(s *Sprite) error {
	in := p.enter(&s.Transform)
	r := in.world(Rect{W: s.Texture.Width, H: s.Texture.Height})
	p.canvas.DrawImage(r, s.Texture, WithAlpha(s.Tint, in.alpha))
	return nil
}

func (p *painter) VisitShape(s *Shape) error {
	in := p.enter(&s.Transform)
	for _, r := range s.Rects {
		p.canvas.FillRect(in.world(r.Rect), WithAlpha(r.Color, in.alpha))
	}
	return nil
}

func (p *painter) VisitLabel(l *Label) error {
	in := p.enter(&l.Transform)
	p.canvas.DrawText(in.origin.X, in.origin.Y, l.Text, l.Style.Size*in.scale.Y, WithAlpha(l.Style.Color, in.alpha))
	return nil
}

func (p *painter) VisitGroup(g *Group) error {
	in := p.enter(&g.Transform)
	for _, c := range g.Children {
		if err := in.paint(c); err != nil {
			return err
		}
	}
	return nil
}
