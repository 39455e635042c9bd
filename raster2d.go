// Package raster2d is the public facade of a CPU-only 2D rasterizer:
// it exposes draw operations on a render context and dispatches them to
// the rasterization primitives, reading state the caller has configured.
//
// Grounded on the teacher repo's root-level Agg2D facade (agg2d.go,
// context.go) and, for the exact operation list, original_source's
// core/RenderContext2D.h.
package raster2d

import (
	"github.com/mekolabs/raster2d/internal/blend"
	"github.com/mekolabs/raster2d/internal/color"
	"github.com/mekolabs/raster2d/internal/pixfmt"
	"github.com/mekolabs/raster2d/internal/raster"
	"github.com/mekolabs/raster2d/internal/render"
	"github.com/mekolabs/raster2d/internal/texture"
)

// Re-exported types so callers only need to import this one package for
// the common case.
type (
	Color    = color.Color
	Format   = pixfmt.Format
	Texture  = texture.Texture
	Coloring = blend.Coloring
	Factor   = blend.Factor
	Mode     = blend.Mode
	Op       = blend.Operation
	Sampling = render.Sampling
	Pivot    = raster.Pivot
)

const (
	RGB24      = pixfmt.RGB24
	BGR24      = pixfmt.BGR24
	ARGB8888   = pixfmt.ARGB8888
	RGBA8888   = pixfmt.RGBA8888
	RGB565     = pixfmt.RGB565
	ARGB1555   = pixfmt.ARGB1555
	RGBA4444   = pixfmt.RGBA4444
	GRAYSCALE8 = pixfmt.GRAYSCALE8
)

const (
	NOBLEND      = blend.NOBLEND
	COLORINGONLY = blend.COLORINGONLY
	SIMPLE       = blend.SIMPLE
	MULTIPLY     = blend.MULTIPLY
)

const (
	Zero                = blend.Zero
	One                 = blend.One
	SourceAlpha         = blend.SourceAlpha
	InverseSourceAlpha  = blend.InverseSourceAlpha
	DestAlpha           = blend.DestAlpha
	InverseDestAlpha    = blend.InverseDestAlpha
	SourceColor         = blend.SourceColor
	DestColor           = blend.DestColor
	InverseSourceColor  = blend.InverseSourceColor
	InverseDestColor    = blend.InverseDestColor
)

const (
	Add             = blend.Add
	Subtract        = blend.Subtract
	ReverseSubtract = blend.ReverseSubtract
	BitwiseAnd      = blend.BitwiseAnd
)

const (
	Nearest = render.Nearest
	Linear  = render.Linear
)

var (
	NewColorRGB  = color.NewColorRGB
	NewColorRGBA = color.NewColorRGBA
	NewColorGray = color.NewColorGray
	NewTexture   = texture.NewTexture
	WrapTexture  = texture.WrapTexture
)

// Facade is a render context plus the draw operations spec.md's
// external-interfaces section names. It is not safe for concurrent use
// from multiple goroutines; see the package-level concurrency note in
// SPEC_FULL.md §5.
type Facade struct {
	ctx *render.Context
}

// New returns an empty Facade: no target texture, clipping disabled,
// blend mode NOBLEND, sampling taken from config's DefaultSampling
// (Nearest unless the configuration was changed).
func New() *Facade {
	return &Facade{ctx: render.New()}
}

// SetTargetTexture installs the texture subsequent draws render into.
func (f *Facade) SetTargetTexture(t *Texture) { f.ctx.SetTargetTexture(t) }

// TargetTexture returns the current target, or nil if none is set.
func (f *Facade) TargetTexture() *Texture { return f.ctx.TargetTexture() }

// SetClipping sets the clipping rectangle (not yet enabled until
// EnableClipping(true) is called).
func (f *Facade) SetClipping(sx, sy, ex, ey int) { f.ctx.SetClipping(sx, sy, ex, ey) }

// EnableClipping toggles whether the clip rectangle is honored.
func (f *Facade) EnableClipping(enabled bool) { f.ctx.EnableClipping(enabled) }

// ClippingArea returns the clip rectangle and whether it is active.
func (f *Facade) ClippingArea() (sx, sy, ex, ey int, enabled bool) { return f.ctx.ClippingArea() }

// SetBlendMode sets the high-level blend shape.
func (f *Facade) SetBlendMode(mode Mode) { f.ctx.SetBlendMode(mode) }

// BlendMode returns the current blend mode.
func (f *Facade) BlendMode() Mode { return f.ctx.BlendMode() }

// SetBlendFactors sets the per-channel source/destination factors.
func (f *Facade) SetBlendFactors(src, dst Factor) { f.ctx.SetBlendFactors(src, dst) }

// SetBlendOperation sets the arithmetic combining factored channels.
func (f *Facade) SetBlendOperation(op Op) { f.ctx.SetBlendOperation(op) }

// SetColoring sets the tint applied to every source pixel of a draw.
func (f *Facade) SetColoring(c Coloring) { f.ctx.SetColoring(c) }

// Coloring returns the current tint state.
func (f *Facade) Coloring() Coloring { return f.ctx.Coloring() }

// SetSamplingMethod selects NEAREST or LINEAR sampling for scaled or
// rotated texture draws.
func (f *Facade) SetSamplingMethod(s Sampling) { f.ctx.SetSamplingMethod(s) }

// SetBlendFunc installs an explicit row-blend kernel, overriding the
// default dispatch. Passing nil restores the default.
func (f *Facade) SetBlendFunc(k blend.Kernel) { f.ctx.SetBlendFunc(k) }

// ClearTarget fills the entire target with color c.
func (f *Facade) ClearTarget(c Color) { raster.Clear(f.ctx, c) }

// DrawRect fills an axis-aligned rectangle with color c.
func (f *Facade) DrawRect(c Color, x, y, length, height int) {
	raster.Rect(f.ctx, c, x, y, length, height)
}

// DrawRectRotated fills a rectangle rotated by angle degrees about its
// center plus (offX, offY).
func (f *Facade) DrawRectRotated(c Color, x, y, length, height int, angle float64, offX, offY int) {
	raster.RectRotated(f.ctx, c, x, y, length, height, angle, offX, offY)
}

// DrawLine draws a Bresenham line from (x0, y0) to (x1, y1).
func (f *Facade) DrawLine(c Color, x0, y0, x1, y1 int) {
	raster.Line(f.ctx, c, x0, y0, x1, y1)
}

// DrawTexture draws tex's full extent at (x, y), axis-aligned.
func (f *Facade) DrawTexture(tex *Texture, x, y int) {
	raster.DrawTexture(f.ctx, tex, x, y)
}

// DrawTextureRotated draws tex rotated by angle degrees about its
// center plus (offX, offY).
func (f *Facade) DrawTextureRotated(tex *Texture, x, y int, angle float64, offX, offY int) {
	raster.DrawTextureRotated(f.ctx, tex, x, y, angle, offX, offY)
}

// DrawTextureScaledRotated draws tex scaled by (scaleX, scaleY) and
// rotated by angle degrees about the center of the scaled image plus
// (offX, offY). pivot may be nil to use that default centered pivot, or
// a non-nil *Pivot to override it with an explicit destination-space
// point -- a capability supplemented from original_source's third
// DrawArray overload (see SPEC_FULL.md §3/§12).
func (f *Facade) DrawTextureScaledRotated(tex *Texture, x, y int, scaleX, scaleY, angle float64, offX, offY int, pivot *Pivot) {
	raster.DrawTextureScaledRotated(f.ctx, tex, x, y, scaleX, scaleY, angle, offX, offY, pivot)
}
