// Package render holds the mutable rendering state a draw call reads:
// target texture, clip rectangle, blend mode/factors/operation, tint,
// sampling method, and an overridable row-blend kernel.
//
// Grounded on original_source's core/RenderContext2D.h (not the
// earlier, vestigial core/Context2D.h, which carries only a target
// texture).
package render

import (
	"github.com/mekolabs/raster2d/internal/blend"
	"github.com/mekolabs/raster2d/internal/config"
	"github.com/mekolabs/raster2d/internal/texture"
)

// Sampling selects how a scaled/rotated texture draw reads its source.
type Sampling int

const (
	Nearest Sampling = iota
	Linear
)

// Context is a render context: a single logical caller's drawing state.
// It is never accessed concurrently from multiple call sites (see
// spec.md §5).
type Context struct {
	target *texture.Texture

	clipEnabled           bool
	clipX1, clipY1        int
	clipX2, clipY2        int

	blend     blend.Context
	coloring  blend.Coloring
	sampling  Sampling
	blendFunc blend.Kernel // nil means "use the default dispatch"
}

// New returns an empty render context: no target, clipping disabled,
// blend mode NOBLEND, sampling taken from config's DefaultSampling
// (Nearest unless the configuration was changed).
func New() *Context {
	sampling := Nearest
	if config.GetConfig().DefaultSampling == config.SamplingDefaultLinear {
		sampling = Linear
	}
	return &Context{
		blend:    blend.Context{Mode: blend.NOBLEND},
		sampling: sampling,
	}
}

// SetTargetTexture installs the texture subsequent draws render into.
func (c *Context) SetTargetTexture(t *texture.Texture) { c.target = t }

// TargetTexture returns the current target, or nil if none is set.
func (c *Context) TargetTexture() *texture.Texture { return c.target }

// SetClipping sets the clipping rectangle. Coordinates are signed,
// matching spec.md §9's note to standardize on signed clip coordinates
// everywhere (the original's axis-aligned textured draw used unsigned
// coordinates while its rotated draw used signed -- a documented
// inconsistency this port does not reproduce).
func (c *Context) SetClipping(x1, y1, x2, y2 int) {
	c.clipX1, c.clipY1, c.clipX2, c.clipY2 = x1, y1, x2, y2
}

// EnableClipping toggles whether the clip rectangle is honored.
func (c *Context) EnableClipping(enabled bool) { c.clipEnabled = enabled }

// ClippingArea returns the clip rectangle and whether it is active.
func (c *Context) ClippingArea() (x1, y1, x2, y2 int, enabled bool) {
	return c.clipX1, c.clipY1, c.clipX2, c.clipY2, c.clipEnabled
}

// SetBlendMode sets the high-level blend shape.
func (c *Context) SetBlendMode(mode blend.Mode) { c.blend.Mode = mode }

// BlendMode returns the current blend mode.
func (c *Context) BlendMode() blend.Mode { return c.blend.Mode }

// SetBlendFactors sets the per-channel source/destination factors.
func (c *Context) SetBlendFactors(src, dst blend.Factor) {
	c.blend.SrcFactor = src
	c.blend.DstFactor = dst
}

// SetBlendOperation sets the arithmetic combining factored channels.
func (c *Context) SetBlendOperation(op blend.Operation) { c.blend.Op = op }

// BlendContext returns the current (mode, srcFactor, dstFactor, op)
// bundle, passed by value into row-blend kernels.
func (c *Context) BlendContext() blend.Context { return c.blend }

// SetColoring sets the tint applied to every source pixel of a draw.
func (c *Context) SetColoring(coloring blend.Coloring) { c.coloring = coloring }

// Coloring returns the current tint state.
func (c *Context) Coloring() blend.Coloring { return c.coloring }

// SetSamplingMethod selects NEAREST or LINEAR sampling for scaled or
// rotated texture draws.
func (c *Context) SetSamplingMethod(s Sampling) { c.sampling = s }

// SamplingMethod returns the current sampling method.
func (c *Context) SamplingMethod() Sampling { return c.sampling }

// SetBlendFunc installs an explicit row-blend kernel, overriding the
// default dispatch, for callers that know their format pair ahead of
// time. Passing nil restores the default.
func (c *Context) SetBlendFunc(k blend.Kernel) { c.blendFunc = k }

// BlendFunc returns the active row-blend kernel: the installed override
// if one is set, otherwise blend.Row.
func (c *Context) BlendFunc() blend.Kernel {
	if c.blendFunc != nil {
		return c.blendFunc
	}
	return blend.Row
}
