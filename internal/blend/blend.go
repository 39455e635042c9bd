// Package blend implements the row-level blend engine: a configurable
// source/destination factor and blend-operation evaluator that composites
// a row of source pixels (in any supported format) onto a row of
// destination pixels, handling format conversion, tint ("coloring"), and
// alpha derivation from heterogeneous source encodings.
//
// Grounded on original_source's BlendMode/BlendMode.h (the Tergos2D
// enum, not the vestigial Photoshop-style Renderer2D one) and
// BlendMode/BlendFunctions.h's BlendRow/BlendRGB24/BlendRGBA32ToRGB24/
// BlendSolidRowRGB24 kernel family.
package blend

import (
	"github.com/mekolabs/raster2d/internal/color"
	"github.com/mekolabs/raster2d/internal/convert"
	"github.com/mekolabs/raster2d/internal/pixfmt"
)

// Factor is a per-channel blend factor, evaluated to an 8-bit scalar in
// [0, 255] before the blend operation combines source and destination.
type Factor int

const (
	Zero Factor = iota
	One
	SourceAlpha
	InverseSourceAlpha
	DestAlpha
	InverseDestAlpha
	SourceColor
	DestColor
	InverseSourceColor
	InverseDestColor
)

// Operation is the arithmetic combining factored source and destination
// channel values.
type Operation int

const (
	Add Operation = iota
	Subtract
	ReverseSubtract
	BitwiseAnd
)

// Mode selects the high-level blend shape.
type Mode int

const (
	NOBLEND Mode = iota
	COLORINGONLY
	SIMPLE
	MULTIPLY
)

// Coloring is the optional per-draw tint: every source pixel is
// channel-wise multiplied by Color (value/255) before blending, and its
// alpha is multiplied by Color's alpha.
type Coloring struct {
	Enabled bool
	Color   color.Color
}

// Context bundles the blend parameters passed by value into every
// row-blend invocation, so a kernel is never re-parameterized mid-row.
type Context struct {
	Mode      Mode
	SrcFactor Factor
	DstFactor Factor
	Op        Operation
}

// DefaultContext is the SIMPLE/source-over configuration: factors
// SourceAlpha/InverseSourceAlpha with Add.
var DefaultContext = Context{Mode: SIMPLE, SrcFactor: SourceAlpha, DstFactor: InverseSourceAlpha, Op: Add}

// Kernel blends count source pixels (format srcFmt) into a row of
// destination pixels (format dstFmt). It has the same signature as Row,
// which is the default kernel.
type Kernel func(dstRow, srcRow []byte, count int, dstFmt, srcFmt pixfmt.Format, coloring Coloring, useSolidColor bool, ctx Context)

// Row is the engine's entry point: blend_row(dst_row, src_row, count,
// dst_fmt, src_fmt, coloring, use_solid_color, blend_context).
//
// When useSolidColor is true, srcRow holds exactly one pixel (in
// srcFmt) -- the draw color -- and that single pixel is broadcast into
// every one of the count destination pixels, instead of walking
// srcRow's count pixels one at a time. This is the solid-rectangle fast
// path (BlendSolidRowRGB24 in the original): the source pixel is
// unpacked once, outside the loop, rather than reconverted per
// destination pixel.
func Row(dstRow, srcRow []byte, count int, dstFmt, srcFmt pixfmt.Format, coloring Coloring, useSolidColor bool, ctx Context) {
	if useSolidColor {
		blendSolidRow(dstRow, srcRow, count, dstFmt, srcFmt, coloring, ctx)
		return
	}
	blendGeneralRow(dstRow, srcRow, count, dstFmt, srcFmt, coloring, ctx)
}

func blendGeneralRow(dstRow, srcRow []byte, count int, dstFmt, srcFmt pixfmt.Format, coloring Coloring, ctx Context) {
	dd := pixfmt.Describe(dstFmt)
	sd := pixfmt.Describe(srcFmt)
	dp, sp := 0, 0
	for i := 0; i < count; i++ {
		a, r, g, b := deriveSourcePixel(srcFmt, srcRow[sp:sp+sd.BytesPerPx], ctx.Mode)
		blendOnePixel(dstRow[dp:dp+dd.BytesPerPx], dstFmt, a, r, g, b, coloring, ctx)
		dp += dd.BytesPerPx
		sp += sd.BytesPerPx
	}
}

// blendSolidRow avoids per-pixel conversion of the source: the single
// solid-color pixel's (a, r, g, b) is unpacked once, outside the loop,
// matching BlendSolidRowRGB24's fast path in the original.
func blendSolidRow(dstRow, srcPixel []byte, count int, dstFmt, srcFmt pixfmt.Format, coloring Coloring, ctx Context) {
	dd := pixfmt.Describe(dstFmt)
	a, r, g, b := deriveSourcePixel(srcFmt, srcPixel, ctx.Mode)
	dp := 0
	for i := 0; i < count; i++ {
		blendOnePixel(dstRow[dp:dp+dd.BytesPerPx], dstFmt, a, r, g, b, coloring, ctx)
		dp += dd.BytesPerPx
	}
}

// deriveSourcePixel implements step 1 of spec.md's per-pixel semantics:
// alpha derivation depends on blend mode and source format.
func deriveSourcePixel(srcFmt pixfmt.Format, src []byte, mode Mode) (a, r, g, b byte) {
	a, r, g, b = convert.Unpack(srcFmt, src)
	if mode == COLORINGONLY {
		a = 255
	}
	return
}

// blendOnePixel implements steps 3-6: tint, opaque fast path, factor
// evaluation, and the blend operation, writing (or leaving unchanged)
// one destination pixel.
func blendOnePixel(dstPixel []byte, dstFmt pixfmt.Format, a, r, g, b byte, coloring Coloring, ctx Context) {
	if a == 0 {
		// Alpha=0 invariance: destination is left byte-for-byte unchanged.
		return
	}

	if coloring.Enabled {
		tint := coloring.Color.ARGB8888()
		r = mulByte(r, tint[1])
		g = mulByte(g, tint[2])
		b = mulByte(b, tint[3])
		a = mulByte(a, tint[0])
		if a == 0 {
			return
		}
	}

	if ctx.Mode == NOBLEND {
		convert.Pack(dstFmt, a, r, g, b, dstPixel)
		return
	}

	if a == 255 {
		// Opaque fast path: overwrite with the tinted source, skipping
		// factor/op evaluation entirely.
		convert.Pack(dstFmt, a, r, g, b, dstPixel)
		return
	}

	da, dr, dg, db := convert.Unpack(dstFmt, dstPixel)

	sfR, sfG, sfB, sfA := evalFactor(ctx.SrcFactor, a, r, g, b, da, dr, dg, db, dstFmt)
	dfR, dfG, dfB, dfA := evalFactor(ctx.DstFactor, a, r, g, b, da, dr, dg, db, dstFmt)

	or := combine(ctx.Op, r, sfR, dr, dfR)
	og := combine(ctx.Op, g, sfG, dg, dfG)
	ob := combine(ctx.Op, b, sfB, db, dfB)
	oa := combine(ctx.Op, a, sfA, da, dfA)

	convert.Pack(dstFmt, oa, or, og, ob, dstPixel)
}

func mulByte(v, factor byte) byte {
	return byte((uint16(v) * uint16(factor)) / 255)
}

// evalFactor returns the per-channel (r, g, b, a) scalar for a blend
// factor, given the source and destination pixel's already-unpacked
// channel values. DestAlpha/InverseDestAlpha evaluate to 255/0 on an
// alpha-less destination format, per spec.md.
func evalFactor(f Factor, sa, sr, sg, sb, da, dr, dg, db byte, dstFmt pixfmt.Format) (fr, fg, fb, fa byte) {
	switch f {
	case Zero:
		return 0, 0, 0, 0
	case One:
		return 255, 255, 255, 255
	case SourceAlpha:
		return sa, sa, sa, sa
	case InverseSourceAlpha:
		v := 255 - sa
		return v, v, v, v
	case DestAlpha:
		if !pixfmt.Describe(dstFmt).HasAlpha {
			return 255, 255, 255, 255
		}
		return da, da, da, da
	case InverseDestAlpha:
		if !pixfmt.Describe(dstFmt).HasAlpha {
			return 0, 0, 0, 0
		}
		v := 255 - da
		return v, v, v, v
	case SourceColor:
		return sr, sg, sb, sa
	case DestColor:
		return dr, dg, db, da
	case InverseSourceColor:
		return 255 - sr, 255 - sg, 255 - sb, 255 - sa
	case InverseDestColor:
		return 255 - dr, 255 - dg, 255 - db, 255 - da
	}
	return 0, 0, 0, 0
}

func combine(op Operation, src, sf, dst, df byte) byte {
	switch op {
	case Add:
		v := (int(src)*int(sf) + int(dst)*int(df)) >> 8
		return clampByte(v)
	case Subtract:
		v := (int(src)*int(sf) - int(dst)*int(df)) >> 8
		return clampByte(v)
	case ReverseSubtract:
		v := (int(dst)*int(df) - int(src)*int(sf)) >> 8
		return clampByte(v)
	case BitwiseAnd:
		return src & dst
	}
	return dst
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
