package scrollbox

// ItemClipper computes which items of a uniform horizontal row intersect
// the viewport, so only those are painted.
//
// Usage:
//
//	clip := NewItemClipper(len(items), itemWidth+margin, viewportWidth, -offset)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    // paint items[i]
//	}
type ItemClipper struct {
	StartIdx   int     // First visible item index (inclusive)
	EndIdx     int     // Last visible item index (exclusive)
	Stride     float32 // Item width plus margin
	TotalItems int
}

// NewItemClipper calculates the visible item range.
//
// Parameters:
//   - totalItems: number of items in the row
//   - stride: distance between the left edges of neighbouring items
//   - visibleWidth: viewport width in pixels
//   - scrollX: how far the row is scrolled left (the negated offset)
//
// A non-positive stride cannot be indexed; every item is reported visible.
func NewItemClipper(totalItems int, stride, visibleWidth, scrollX float32) *ItemClipper {
	if totalItems <= 0 {
		return &ItemClipper{Stride: stride}
	}
	if stride <= 0 {
		return &ItemClipper{EndIdx: totalItems, Stride: stride, TotalItems: totalItems}
	}

	startIdx := int(scrollX / stride)
	if startIdx < 0 {
		startIdx = 0
	}

	// +2 for partially visible items at either edge
	endIdx := startIdx + int(visibleWidth/stride) + 2

	if startIdx > totalItems {
		startIdx = totalItems
	}
	if endIdx > totalItems {
		endIdx = totalItems
	}

	return &ItemClipper{
		StartIdx:   startIdx,
		EndIdx:     endIdx,
		Stride:     stride,
		TotalItems: totalItems,
	}
}

// ShouldRender returns true if the item at idx is in the visible range.
func (c *ItemClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// VisibleCount returns the number of items in the visible range.
func (c *ItemClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}
