// Package color implements the format-tagged, fixed-size color value
// used throughout the rasterizer. A Color always normalizes internally
// to ARGB8888 bytes, independent of which constructor built it, so every
// other package has one canonical representation to reason about.
package color

import "github.com/mekolabs/raster2d/internal/pixfmt"

// Color is a 4-byte ARGB8888-encoded color value: data[0]=A, data[1]=R,
// data[2]=G, data[3]=B. This matches the hub format every pixel
// conversion routes through.
type Color struct {
	data [4]byte
}

// NewColorRGB builds an opaque color (alpha forced to 255).
func NewColorRGB(r, g, b byte) Color {
	return Color{data: [4]byte{255, r, g, b}}
}

// NewColorRGBA builds a color with an explicit alpha.
func NewColorRGBA(r, g, b, a byte) Color {
	return Color{data: [4]byte{a, r, g, b}}
}

// NewColorGray replicates a single grayscale value across every channel,
// matching GRAYSCALE8's alpha-synthesis rule: a zero value is fully
// transparent, any nonzero value is fully opaque.
func NewColorGray(y byte) Color {
	a := byte(255)
	if y == 0 {
		a = 0
	}
	return Color{data: [4]byte{a, y, y, y}}
}

// A returns the alpha channel.
func (c Color) A() byte { return c.data[0] }

// R returns the red channel.
func (c Color) R() byte { return c.data[1] }

// G returns the green channel.
func (c Color) G() byte { return c.data[2] }

// B returns the blue channel.
func (c Color) B() byte { return c.data[3] }

// ARGB8888 returns the raw [A,R,G,B] bytes.
func (c Color) ARGB8888() [4]byte { return c.data }

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a byte) Color {
	c.data[0] = a
	return c
}

// Get copies c's raw ARGB8888 bytes into out and returns the number of
// bytes copied (at most 4). No format conversion happens here; ConvertTo
// produces the bytes of another format.
func (c Color) Get(out []byte) int {
	n := copy(out, c.data[:])
	return n
}

// Set overwrites c from a raw ARGB8888 byte quartet.
func (c *Color) Set(data [4]byte) {
	c.data = data
}

// Converter is the minimal interface Color needs from internal/convert
// to implement ConvertTo, so this package imports only pixfmt;
// convert.Default implements it.
type Converter interface {
	Convert(dst, src pixfmt.Format, dstBuf, srcBuf []byte, count int) bool
}

// ConvertTo renders c into the target format using conv, returning the
// target-format bytes and whether a kernel was found. This mirrors
// Color::ConvertTo in the original, which instantiates a PixelConverter
// and calls Convert(format, targetFormat, data, outColor).
func (c Color) ConvertTo(conv Converter, target pixfmt.Format) ([4]byte, bool) {
	var out [4]byte
	if target == pixfmt.ARGB8888 {
		return c.data, true
	}
	ok := conv.Convert(target, pixfmt.ARGB8888, out[:], c.data[:], 1)
	return out, ok
}
