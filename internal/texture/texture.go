// Package texture implements the rasterizer's pixel buffer handle: a
// view (or owner) of a width x height byte buffer with a pitch and a
// pixel format, built on top of the teacher's pitched row-accessor
// buffer (internal/buffer.RenderingBufferU8).
package texture

import (
	"github.com/mekolabs/raster2d/internal/buffer"
	"github.com/mekolabs/raster2d/internal/config"
	"github.com/mekolabs/raster2d/internal/pixfmt"
)

// rowBuffer is the subset of buffer.RenderingBufferU8 / RenderingBufferCache[uint8]
// a Texture needs; it lets NewTexture honor internal/config's rendering
// buffer strategy (standard vs. row-pointer-cached) without a type switch
// at every access.
type rowBuffer interface {
	Attach(buf []byte, width, height, stride int)
	Row(y int) []byte
	Buf() []byte
}

// Texture is a non-owning or owning view over a pixel buffer: base
// address, width/height in pixels, pitch in bytes (>= width*bpp), a
// Format, and an ownership flag fixed at construction time.
//
// A sub-texture re-bases into its parent's storage without copying and
// is always non-owning; it must not outlive the parent's backing slice.
type Texture struct {
	rb     rowBuffer
	width  int
	height int
	pitch  int
	format pixfmt.Format
	owned  bool
}

// NewTexture allocates a width x height buffer in the given format,
// using the row-buffer implementation selected by internal/config.
func NewTexture(width, height int, format pixfmt.Format) *Texture {
	bpp := pixfmt.Describe(format).BytesPerPx
	pitch := width * bpp
	data := make([]byte, pitch*height)

	rb := config.NewRenderingBufferU8().(rowBuffer)
	rb.Attach(data, width, height, pitch)
	return &Texture{rb: rb, width: width, height: height, pitch: pitch, format: format, owned: true}
}

// WrapTexture builds a non-owning Texture over caller-supplied memory.
// pitch must be >= width * bytes-per-pixel for format; rows need not be
// contiguous.
func WrapTexture(data []byte, width, height, pitch int, format pixfmt.Format) *Texture {
	rb := buffer.NewRenderingBufferU8WithData(data, width, height, pitch)
	return &Texture{rb: rb, width: width, height: height, pitch: pitch, format: format, owned: false}
}

// SubTexture returns a non-owning view into a rectangular window of t's
// storage, re-based by startY*pitch + startX*bpp. It borrows t's
// backing slice and must not outlive it.
func (t *Texture) SubTexture(startX, startY, width, height int) *Texture {
	bpp := pixfmt.Describe(t.format).BytesPerPx
	offset := startY*t.pitch + startX*bpp
	base := t.rb.Buf()
	sub := base[offset:]
	rb := buffer.NewRenderingBufferU8WithData(sub, width, height, t.pitch)
	return &Texture{rb: rb, width: width, height: height, pitch: t.pitch, format: t.format, owned: false}
}

// Width returns the texture's width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture's height in pixels.
func (t *Texture) Height() int { return t.height }

// Pitch returns the number of bytes between the start of consecutive
// rows. Grounded on Texture.cpp's GetPitch (absent from the thinner
// Texture.h declaration in the original source -- see DESIGN.md).
func (t *Texture) Pitch() int { return t.pitch }

// Format returns the texture's pixel format.
func (t *Texture) Format() pixfmt.Format { return t.format }

// Owned reports whether this Texture owns its backing storage.
func (t *Texture) Owned() bool { return t.owned }

// Release drops t's reference to its backing storage. Only meaningful
// on an owning Texture; Go has no destructors, so callers that
// allocated via NewTexture should call Release when done to let the GC
// reclaim the buffer promptly. A no-op on a non-owning view.
func (t *Texture) Release() {
	if !t.owned {
		return
	}
	t.rb = nil
}

// Row returns the byte slice for row y, or nil if y is out of bounds or
// the texture has been released.
func (t *Texture) Row(y int) []byte {
	if t.rb == nil {
		return nil
	}
	return t.rb.Row(y)
}
