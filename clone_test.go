package scrollbox_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/scrollbox"
)

// foreignNode is a Node outside the supported variants.
type foreignNode struct {
	t scrollbox.Transform
}

func (f *foreignNode) Base() *scrollbox.Transform { return &f.t }
func (f *foreignNode) Bounds() scrollbox.Rect     { return scrollbox.Rect{W: 100, H: 100} }

func TestCloneNodeIndependent(t *testing.T) {
	shape := scrollbox.NewShape().Rect(0, 0, 100, 100, scrollbox.ColorGreen)
	shape.Alpha = 0.5
	label := scrollbox.NewLabel("7", scrollbox.DefaultTextStyle())
	label.Position = scrollbox.Vec2{X: 4, Y: 2}
	sprite := scrollbox.NewSprite(scrollbox.Texture{ID: 9, Width: 32, Height: 32})
	sprite.Rotation = 0.25
	sprite.Visible = false
	group := scrollbox.NewGroup(shape, label, sprite)
	group.Scale = scrollbox.Vec2{X: 2, Y: 2}

	n, err := scrollbox.CloneNode(group)
	if err != nil {
		t.Fatalf("CloneNode: %v", err)
	}
	dup, ok := n.(*scrollbox.Group)
	if !ok {
		t.Fatalf("clone is %T, want *Group", n)
	}
	if dup == group {
		t.Fatal("clone is the original group")
	}
	if dup.Transform != group.Transform {
		t.Errorf("group transform = %+v, want %+v", dup.Transform, group.Transform)
	}
	if len(dup.Children) != 3 {
		t.Fatalf("clone has %d children, want 3", len(dup.Children))
	}

	dshape := dup.Children[0].(*scrollbox.Shape)
	if dshape == shape || dshape.Alpha != 0.5 {
		t.Errorf("shape clone = %p alpha %v", dshape, dshape.Alpha)
	}
	dshape.Rects[0].Color = scrollbox.ColorRed
	if shape.Rects[0].Color != scrollbox.ColorGreen {
		t.Error("editing the cloned shape changed the original")
	}

	dlabel := dup.Children[1].(*scrollbox.Label)
	if dlabel == label || dlabel.Text != "7" || dlabel.Position != label.Position {
		t.Errorf("label clone = %+v", dlabel)
	}
	dlabel.Text = "8"
	if label.Text != "7" {
		t.Error("editing the cloned label changed the original")
	}

	dsprite := dup.Children[2].(*scrollbox.Sprite)
	if dsprite == sprite {
		t.Error("sprite clone is the original")
	}
	if dsprite.Texture != sprite.Texture {
		t.Errorf("sprite texture = %+v, want shared %+v", dsprite.Texture, sprite.Texture)
	}
	if dsprite.Rotation != 0.25 || dsprite.Visible {
		t.Errorf("sprite transform not copied: %+v", dsprite.Transform)
	}

	dup.Position.X = 500
	if group.Position.X != 0 {
		t.Error("moving the clone moved the original")
	}
}

func TestCloneNodeUnknown(t *testing.T) {
	if _, err := scrollbox.CloneNode(&foreignNode{}); !errors.Is(err, scrollbox.ErrUnknownNode) {
		t.Errorf("CloneNode(foreign) error = %v, want ErrUnknownNode", err)
	}

	nested := scrollbox.NewGroup(scrollbox.NewShape(), scrollbox.NewGroup(&foreignNode{}))
	if _, err := scrollbox.CloneNode(nested); !errors.Is(err, scrollbox.ErrUnknownNode) {
		t.Errorf("CloneNode(nested foreign) error = %v, want ErrUnknownNode", err)
	}

	if _, err := scrollbox.CloneNode(nil); !errors.Is(err, scrollbox.ErrNilNode) {
		t.Errorf("CloneNode(nil) error = %v, want ErrNilNode", err)
	}
}

func TestLoopRejectsUnclonableItems(t *testing.T) {
	items := []scrollbox.Node{&foreignNode{t: scrollbox.NewTransform()}}

	plain := scrollbox.New(scrollbox.Config{Width: 300, Height: 300})
	if err := plain.SetChild(items); err != nil {
		t.Errorf("plain box rejected a foreign item: %v", err)
	}

	loop := scrollbox.New(scrollbox.Config{Width: 300, Height: 300, Loop: true})
	if err := loop.SetChild(items); !errors.Is(err, scrollbox.ErrUnknownNode) {
		t.Errorf("loop SetChild error = %v, want ErrUnknownNode", err)
	}
	if got := len(loop.Items()); got != 0 {
		t.Errorf("failed SetChild left %d items", got)
	}
}
