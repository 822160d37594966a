package scrollbox

import "fmt"

// Transform holds the display properties shared by every node.
// Position is relative to the parent node. Rotation is carried for
// cloning and hosts that honour it; bounds and the built-in painters
// are axis-aligned and ignore it.
type Transform struct {
	Position Vec2
	Scale    Vec2
	Rotation float32 // Radians
	Alpha    float32 // 0.0-1.0, multiplied down the tree
	Visible  bool
}

// NewTransform returns the identity transform: unit scale, opaque, visible.
func NewTransform() Transform {
	return Transform{Scale: Vec2{X: 1, Y: 1}, Alpha: 1, Visible: true}
}

// Base returns the node's transform. Embedding Transform gives every
// variant this method.
func (t *Transform) Base() *Transform { return t }

// place maps a rectangle in the node's local space into its parent's space.
func (t *Transform) place(local Rect) Rect {
	return Rect{
		X: t.Position.X + local.X*t.Scale.X,
		Y: t.Position.Y + local.Y*t.Scale.Y,
		W: local.W * t.Scale.X,
		H: local.H * t.Scale.Y,
	}
}

// Node is a visual element of the scene graph.
//
// The supported variants are *Sprite, *Shape, *Label and *Group. Other
// implementations are accepted for layout (only Bounds is consulted)
// but Visit and CloneNode reject them with ErrUnknownNode.
type Node interface {
	Base() *Transform
	// Bounds returns the node's extent in its parent's coordinate space.
	Bounds() Rect
}

// Texture is a reference to image data owned by the renderer.
// Sprites share textures; cloning a sprite never copies pixels.
type Texture struct {
	ID            uint32
	Width, Height float32
}

// Sprite draws a texture, tinted by Tint.
type Sprite struct {
	Transform
	Texture Texture
	Tint    uint32
}

// NewSprite creates a sprite showing tex at its natural size.
func NewSprite(tex Texture) *Sprite {
	return &Sprite{Transform: NewTransform(), Texture: tex, Tint: ColorWhite}
}

// Bounds implements Node.
func (s *Sprite) Bounds() Rect {
	return s.place(Rect{W: s.Texture.Width, H: s.Texture.Height})
}

// ShapeRect is a filled rectangle primitive of a Shape.
type ShapeRect struct {
	Rect
	Color uint32
}

// Shape is a vector node built from filled rectangle primitives.
type Shape struct {
	Transform
	Rects []ShapeRect
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{Transform: NewTransform()}
}

// Rect appends a filled rectangle and returns the shape for chaining.
func (s *Shape) Rect(x, y, w, h float32, color uint32) *Shape {
	s.Rects = append(s.Rects, ShapeRect{Rect: Rect{X: x, Y: y, W: w, H: h}, Color: color})
	return s
}

// Bounds implements Node.
func (s *Shape) Bounds() Rect {
	var local Rect
	for _, r := range s.Rects {
		local = local.Union(r.Rect)
	}
	return s.place(local)
}

// TextStyle controls how a Label is drawn.
type TextStyle struct {
	Color uint32
	Size  float32 // Glyph cell height in pixels; glyphs are square
}

// DefaultTextStyle returns black 16px text.
func DefaultTextStyle() TextStyle {
	return TextStyle{Color: ColorBlack, Size: 16}
}

// Label draws a single line of text with the built-in monospace font.
type Label struct {
	Transform
	Text  string
	Style TextStyle
}

// NewLabel creates a label.
func NewLabel(text string, style TextStyle) *Label {
	return &Label{Transform: NewTransform(), Text: text, Style: style}
}

// Bounds implements Node.
func (l *Label) Bounds() Rect {
	return l.place(Rect{W: textWidth(l.Text, l.Style.Size), H: l.Style.Size})
}

// Group is a container node. Children are drawn in order.
type Group struct {
	Transform
	Children []Node
}

// NewGroup creates a group holding children.
func NewGroup(children ...Node) *Group {
	return &Group{Transform: NewTransform(), Children: children}
}

// AddChild appends a child node.
func (g *Group) AddChild(n Node) {
	g.Children = append(g.Children, n)
}

// RemoveChildren detaches every child.
func (g *Group) RemoveChildren() {
	clear(g.Children)
	g.Children = g.Children[:0]
}

// Bounds implements Node. The extent is the union of the visible children.
func (g *Group) Bounds() Rect {
	var local Rect
	for _, c := range g.Children {
		if !c.Base().Visible {
			continue
		}
		local = local.Union(c.Bounds())
	}
	return g.place(local)
}

// Visitor receives one call per node variant.
type Visitor interface {
	VisitSprite(*Sprite) error
	VisitShape(*Shape) error
	VisitLabel(*Label) error
	VisitGroup(*Group) error
}

// Visit dispatches n to the matching Visitor method.
// Nodes outside the closed variant set fail with ErrUnknownNode.
func Visit(n Node, v Visitor) error {
	switch n := n.(type) {
	case nil:
		return ErrNilNode
	case *Sprite:
		return v.VisitSprite(n)
	case *Shape:
		return v.VisitShape(n)
	case *Label:
		return v.VisitLabel(n)
	case *Group:
		return v.VisitGroup(n)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownNode, n)
	}
}
