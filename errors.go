package scrollbox

import "errors"

var (
	// ErrUnknownNode is returned when a node outside the supported set
	// (Sprite, Shape, Label, Group) is visited or cloned.
	ErrUnknownNode = errors.New("scrollbox: unknown node type")

	// ErrNilNode is returned when a nil node is passed where an item is expected.
	ErrNilNode = errors.New("scrollbox: nil node")

	// ErrMixedItemWidths is returned by SetChild when items differ in width.
	// Layout and scroll bounds assume every item has the same width.
	ErrMixedItemWidths = errors.New("scrollbox: items must share one width")
)
