package scrollbox

import "fmt"

// CloneNode returns an independent deep copy of the subtree rooted at n.
//
// Every variant copies its Transform. Shape primitives and label text are
// copied into new values; sprite textures are shared by reference. A node
// outside the supported set anywhere in the subtree fails the whole clone
// with ErrUnknownNode.
func CloneNode(n Node) (Node, error) {
	c := &cloner{}
	if err := Visit(n, c); err != nil {
		return nil, err
	}
	return c.out, nil
}

// cloner is a Visitor that leaves the copy of the visited node in out.
type cloner struct {
	out Node
}

func (c *cloner) VisitSprite(s *Sprite) error {
	c.out = &Sprite{Transform: s.Transform, Texture: s.Texture, Tint: s.Tint}
	return nil
}

func (c *cloner) VisitShape(s *Shape) error {
	dup := &Shape{Transform: s.Transform}
	if len(s.Rects) > 0 {
		dup.Rects = make([]ShapeRect, len(s.Rects))
		copy(dup.Rects, s.Rects)
	}
	c.out = dup
	return nil
}

func (c *cloner) VisitLabel(l *Label) error {
	c.out = &Label{Transform: l.Transform, Text: l.Text, Style: l.Style}
	return nil
}

func (c *cloner) VisitGroup(g *Group) error {
	dup := &Group{Transform: g.Transform, Children: make([]Node, 0, len(g.Children))}
	for i, child := range g.Children {
		if err := Visit(child, c); err != nil {
			return fmt.Errorf("clone child %d: %w", i, err)
		}
		dup.Children = append(dup.Children, c.out)
	}
	c.out = dup
	return nil
}

// cloneSet clones every node of items, in order.
func cloneSet(items []Node) ([]Node, error) {
	out := make([]Node, 0, len(items))
	for i, it := range items {
		dup, err := CloneNode(it)
		if err != nil {
			return nil, fmt.Errorf("clone item %d: %w", i, err)
		}
		out = append(out, dup)
	}
	return out, nil
}
