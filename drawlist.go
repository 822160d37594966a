package scrollbox

import (
	"sync"
	"unicode/utf8"
)

// maxCmdVertices keeps per-command vertex indices inside uint16.
const maxCmdVertices = 1 << 16

// Font atlas layout: ASCII 32-127 in a 16x6 grid of 8x8 cells.
const (
	fontAtlasCols   = 16
	fontAtlasRows   = 6
	fontAtlasCell   = 8
	fontAtlasWidth  = fontAtlasCols * fontAtlasCell
	fontAtlasHeight = fontAtlasRows * fontAtlasCell
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates triangles for a frame, split into commands by
// texture and clip rectangle. It implements Canvas.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	// FontTextureID is the texture holding the glyph atlas used by DrawText.
	FontTextureID uint32

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // Vertex offset of the current command
	idxCmdOffset uint32 // Index offset of the current command
}

// Clear resets the DrawList for a new frame, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a clip rectangle, intersected with the current one.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{maxf(c[0], x1), maxf(c[1], y1), minf(c[2], x2), minf(c[3], y2)}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the current clip rectangle as x1, y1, x2, y2.
func (dl *DrawList) ClipRect() [4]float32 { return dl.currentClip }

// SetTexture sets the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends a quad and its two triangles.
func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if len(dl.CmdBuffer) == 0 || uint32(len(dl.VtxBuffer))-dl.cmdOffset+4 > maxCmdVertices {
		dl.splitDraw()
	}
	idx := uint16(uint32(len(dl.VtxBuffer)) - dl.cmdOffset)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled, untextured rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddImage draws a texture stretched over a rectangle.
func (dl *DrawList) AddImage(x, y, w, h float32, textureID uint32, tint uint32) {
	if tint&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(textureID)
	dl.addQuad(x, y, x+w, y+h, 0, 0, 1, 1, tint)
}

// AddText draws text with the glyph atlas in FontTextureID.
// Each glyph occupies a size x size cell.
func (dl *DrawList) AddText(x, y float32, text string, size float32, color uint32) {
	if color&0xFF000000 == 0 || text == "" || size <= 0 {
		return
	}
	dl.SetTexture(dl.FontTextureID)

	i := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		g := int(r - 32)
		col := float32(g % fontAtlasCols)
		row := float32(g / fontAtlasCols)

		u0 := col * fontAtlasCell / fontAtlasWidth
		v0 := row * fontAtlasCell / fontAtlasHeight
		u1 := (col + 1) * fontAtlasCell / fontAtlasWidth
		v1 := (row + 1) * fontAtlasCell / fontAtlasHeight

		px := x + float32(i)*size
		dl.addQuad(px, y, px+size, y+size, u0, v0, u1, v1, color)
		i++
	}
}

// FillRect implements Canvas.
func (dl *DrawList) FillRect(r Rect, color uint32) {
	dl.AddRect(r.X, r.Y, r.W, r.H, color)
}

// DrawText implements Canvas.
func (dl *DrawList) DrawText(x, y float32, text string, size float32, color uint32) {
	dl.AddText(x, y, text, size, color)
}

// DrawImage implements Canvas.
func (dl *DrawList) DrawImage(r Rect, tex Texture, tint uint32) {
	dl.AddImage(r.X, r.Y, r.W, r.H, tex.ID, tint)
}

// PushClip implements Canvas.
func (dl *DrawList) PushClip(r Rect) {
	dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// PopClip implements Canvas.
func (dl *DrawList) PopClip() {
	dl.PopClipRect()
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// textWidth returns the drawn width of text at the given glyph size.
func textWidth(text string, size float32) float32 {
	return float32(utf8.RuneCountInString(text)) * size
}
