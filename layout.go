package scrollbox

import (
	"fmt"
	"math"
)

// widthTolerance absorbs float noise when comparing item widths.
const widthTolerance = 1e-3

// uniformWidth returns the shared width of items.
// Layout and the scroll bounds assume a single item width; a set that
// mixes widths is rejected instead of being laid out with overlaps.
func uniformWidth(items []Node) (float32, error) {
	if len(items) == 0 {
		return 0, nil
	}
	for i, it := range items {
		if it == nil {
			return 0, fmt.Errorf("item %d: %w", i, ErrNilNode)
		}
	}
	w := items[0].Bounds().W
	for i, it := range items[1:] {
		if iw := it.Bounds().W; absf(iw-w) > widthTolerance {
			return 0, fmt.Errorf("item %d is %gpx wide, item 0 is %gpx: %w", i+1, iw, w, ErrMixedItemWidths)
		}
	}
	return w, nil
}

// layoutRow places items left to right: item i sits at i*(margin+width).
func layoutRow(items []Node, margin float32) {
	for i, it := range items {
		it.Base().Position.X = float32(i) * (margin + it.Bounds().W)
	}
}

// rowWidth is the extent of n items of width w separated by margin.
// An empty row has no extent.
func rowWidth(n int, w, margin float32) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*w + float32(n-1)*margin
}

// tileCount returns how many copies of a set of width setWidth are laid
// out in loop mode: twice the number needed to span the viewport, so the
// ring always has a full viewport of content on both sides of its seam.
func tileCount(viewportWidth, setWidth float32) int {
	if setWidth <= 0 {
		return 1
	}
	n := int(math.Ceil(float64(viewportWidth/setWidth))) * 2
	return max(n, 2)
}
