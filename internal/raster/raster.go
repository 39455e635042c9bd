// Package raster implements the rasterization primitives: clear, solid
// rectangle (axis-aligned and rotated), axis-aligned / rotated /
// scaled-and-rotated textured rectangle, and a Bresenham line. Each
// primitive is responsible for its own clipping, row/pixel address
// arithmetic over the target's pitch, and -- for textured draws --
// sampling under an inverse affine map.
//
// Grounded on original_source's Context/PrimitivesRenderer.cpp,
// BasicTextureRenderer.cpp and TransformedTextureRenderer.cpp, and on
// the teacher's basics.ClipLineSegment for the line pre-clip step.
package raster

import (
	"math"

	"github.com/mekolabs/raster2d/internal/basics"
	"github.com/mekolabs/raster2d/internal/blend"
	"github.com/mekolabs/raster2d/internal/color"
	"github.com/mekolabs/raster2d/internal/convert"
	"github.com/mekolabs/raster2d/internal/pixfmt"
	"github.com/mekolabs/raster2d/internal/render"
	"github.com/mekolabs/raster2d/internal/texture"
)

// Pivot is an explicit destination-space rotation pivot, overriding the
// default centered pivot of a scaled+rotated texture draw. Grounded on
// original_source's third DrawArray overload
// (scaleX, scaleY, angleDegrees, pivotX, pivotY) -- a capability the
// distilled spec dropped.
type Pivot struct {
	X, Y int
}

func targetBounds(t *texture.Texture) basics.RectI {
	return basics.RectI{X1: 0, Y1: 0, X2: t.Width(), Y2: t.Height()}
}

// effectiveClip returns the active clip rectangle intersected with the
// target's own bounds; if clipping is disabled only the target bounds
// apply.
func effectiveClip(ctx *render.Context, t *texture.Texture) basics.RectI {
	bounds := targetBounds(t)
	if x1, y1, x2, y2, enabled := ctx.ClippingArea(); enabled {
		clipBox := basics.RectI{X1: x1, Y1: y1, X2: x2, Y2: y2}
		if r, ok := basics.IntersectRectangles(bounds, clipBox); ok {
			return r
		}
		return basics.RectI{}
	}
	return bounds
}

func clipDest(x, y, w, h int, clip basics.RectI) (basics.RectI, bool) {
	if w <= 0 || h <= 0 {
		return basics.RectI{}, false
	}
	dest := basics.RectI{X1: x, Y1: y, X2: x + w, Y2: y + h}
	return basics.IntersectRectangles(dest, clip)
}

// Clear fills the entire target with color c, ignoring the clip
// rectangle (clear is whole-target per spec).
func Clear(ctx *render.Context, c color.Color) {
	t := ctx.TargetTexture()
	if t == nil {
		return
	}
	fmt := t.Format()
	bpp := pixfmt.Describe(fmt).BytesPerPx
	out, ok := c.ConvertTo(convert.Default{}, fmt)
	if !ok {
		return
	}
	row := make([]byte, t.Width()*bpp)
	for i := 0; i < t.Width(); i++ {
		copy(row[i*bpp:i*bpp+bpp], out[:bpp])
	}
	for y := 0; y < t.Height(); y++ {
		dstRow := t.Row(y)
		if dstRow == nil {
			continue
		}
		copy(dstRow[:len(row)], row)
	}
}

// Rect fills an axis-aligned rectangle with color c.
func Rect(ctx *render.Context, c color.Color, x, y, length, height int) {
	t := ctx.TargetTexture()
	if t == nil {
		return
	}
	dest, ok := clipDest(x, y, length, height, effectiveClip(ctx, t))
	if !ok {
		return
	}
	fillClippedRect(ctx, t, c, dest)
}

func fillClippedRect(ctx *render.Context, t *texture.Texture, c color.Color, dest basics.RectI) {
	fmt := t.Format()
	bpp := pixfmt.Describe(fmt).BytesPerPx
	w := dest.X2 - dest.X1

	if c.A() == 255 || ctx.BlendMode() == blend.NOBLEND {
		out, ok := c.ConvertTo(convert.Default{}, fmt)
		if !ok {
			return
		}
		rowBuf := make([]byte, w*bpp)
		for i := 0; i < w; i++ {
			copy(rowBuf[i*bpp:i*bpp+bpp], out[:bpp])
		}
		for yy := dest.Y1; yy < dest.Y2; yy++ {
			dstRow := t.Row(yy)
			if dstRow == nil {
				continue
			}
			copy(dstRow[dest.X1*bpp:dest.X1*bpp+w*bpp], rowBuf)
		}
		return
	}

	solidPixel := c.ARGB8888()
	for yy := dest.Y1; yy < dest.Y2; yy++ {
		dstRow := t.Row(yy)
		if dstRow == nil {
			continue
		}
		ctx.BlendFunc()(dstRow[dest.X1*bpp:dest.X1*bpp+w*bpp], solidPixel[:], w, fmt, pixfmt.ARGB8888, ctx.Coloring(), true, ctx.BlendContext())
	}
}

// RectRotated fills a rectangle rotated by angleDeg degrees about its
// center plus (offX, offY), using destination-space inverse mapping.
// Zero rotation delegates to the axis-aligned path.
func RectRotated(ctx *render.Context, c color.Color, x, y, length, height int, angleDeg float64, offX, offY int) {
	angle := basics.NormalizeAngle(angleDeg)
	if angle == 0 {
		Rect(ctx, c, x, y, length, height)
		return
	}
	t := ctx.TargetTexture()
	if t == nil || length <= 0 || height <= 0 {
		return
	}

	theta := angle * basics.Deg2Rad
	cos, sin := math.Cos(theta), math.Sin(theta)
	pivotX := float64(x) + float64(length)/2 + float64(offX)
	pivotY := float64(y) + float64(height)/2 + float64(offY)

	bbox := rotatedBoundingBox(float64(x), float64(y), float64(length), float64(height), pivotX, pivotY, cos, sin)
	clip := effectiveClip(ctx, t)
	dest, ok := basics.IntersectRectangles(bbox, clip)
	if !ok {
		return
	}

	fmt := t.Format()
	bpp := pixfmt.Describe(fmt).BytesPerPx
	out, ok2 := c.ConvertTo(convert.Default{}, fmt)
	if !ok2 {
		return
	}
	solidPixel := c.ARGB8888()

	for dy := dest.Y1; dy < dest.Y2; dy++ {
		dstRow := t.Row(dy)
		if dstRow == nil {
			continue
		}
		for dx := dest.X1; dx < dest.X2; dx++ {
			ddx := float64(dx) - pivotX
			ddy := float64(dy) - pivotY
			srcX := ddx*cos + ddy*sin + pivotX - float64(x)
			srcY := -ddx*sin + ddy*cos + pivotY - float64(y)
			if srcX < 0 || srcX >= float64(length) || srcY < 0 || srcY >= float64(height) {
				continue
			}
			px := dstRow[dx*bpp : dx*bpp+bpp]
			if c.A() == 255 || ctx.BlendMode() == blend.NOBLEND {
				copy(px, out[:bpp])
			} else {
				ctx.BlendFunc()(px, solidPixel[:], 1, fmt, pixfmt.ARGB8888, ctx.Coloring(), true, ctx.BlendContext())
			}
		}
	}
}

// rotatedBoundingBox transforms the four corners of the axis-aligned
// rect [x, x+w) x [y, y+h) by rotation (cos, sin) about (pivotX, pivotY)
// and returns the inflated-by-1 integer bounding box.
func rotatedBoundingBox(x, y, w, h, pivotX, pivotY, cos, sin float64) basics.RectI {
	corners := [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		rx := pivotX + (c[0]-pivotX)*cos - (c[1]-pivotY)*sin
		ry := pivotY + (c[0]-pivotX)*sin + (c[1]-pivotY)*cos
		minX, maxX = math.Min(minX, rx), math.Max(maxX, rx)
		minY, maxY = math.Min(minY, ry), math.Max(maxY, ry)
	}
	return basics.RectI{
		X1: int(math.Floor(minX)) - 1,
		Y1: int(math.Floor(minY)) - 1,
		X2: int(math.Ceil(maxX)) + 1,
		Y2: int(math.Ceil(maxY)) + 1,
	}
}

// DrawTexture draws tex's full extent at (x, y), axis-aligned.
func DrawTexture(ctx *render.Context, tex *texture.Texture, x, y int) {
	t := ctx.TargetTexture()
	if t == nil || tex == nil {
		return
	}
	dest, ok := clipDest(x, y, tex.Width(), tex.Height(), effectiveClip(ctx, t))
	if !ok {
		return
	}

	dstFmt := t.Format()
	srcFmt := tex.Format()
	dBpp := pixfmt.Describe(dstFmt).BytesPerPx
	sBpp := pixfmt.Describe(srcFmt).BytesPerPx
	w := dest.X2 - dest.X1

	direct := ctx.BlendMode() == blend.NOBLEND ||
		(!pixfmt.Describe(srcFmt).HasAlpha && !ctx.Coloring().Enabled)

	var kernel convert.RowKernel
	if direct {
		k, ok2 := convert.Lookup(srcFmt, dstFmt)
		if !ok2 {
			return
		}
		kernel = k
	}

	for dy := dest.Y1; dy < dest.Y2; dy++ {
		sy := dy - y
		srcRow := tex.Row(sy)
		dstRow := t.Row(dy)
		if srcRow == nil || dstRow == nil {
			continue
		}
		sx0 := dest.X1 - x
		srcSlice := srcRow[sx0*sBpp : sx0*sBpp+w*sBpp]
		dstSlice := dstRow[dest.X1*dBpp : dest.X1*dBpp+w*dBpp]
		if direct {
			kernel(dstSlice, srcSlice, w)
		} else {
			ctx.BlendFunc()(dstSlice, srcSlice, w, dstFmt, srcFmt, ctx.Coloring(), false, ctx.BlendContext())
		}
	}
}

// DrawTextureRotated draws tex rotated by angleDeg degrees about its
// center plus (offX, offY). Exact multiples of 90 degrees with a zero
// offset use an integer fast path (no trigonometry, byte-identical
// round trips); every other angle uses the general inverse-mapping
// sampler shared with DrawTextureScaledRotated.
func DrawTextureRotated(ctx *render.Context, tex *texture.Texture, x, y int, angleDeg float64, offX, offY int) {
	angle := basics.NormalizeAngle(angleDeg)
	if angle == 0 {
		DrawTexture(ctx, tex, x, y)
		return
	}
	if offX == 0 && offY == 0 && (angle == 90 || angle == 180 || angle == 270) {
		drawTextureFast90(ctx, tex, x, y, angle)
		return
	}
	DrawTextureScaledRotated(ctx, tex, x, y, 1, 1, angle, offX, offY, nil)
}

func drawTextureFast90(ctx *render.Context, tex *texture.Texture, x, y int, angle float64) {
	t := ctx.TargetTexture()
	if t == nil || tex == nil {
		return
	}
	srcW, srcH := tex.Width(), tex.Height()
	var newW, newH int
	switch angle {
	case 180:
		newW, newH = srcW, srcH
	default: // 90, 270
		newW, newH = srcH, srcW
	}
	pivotX := x + srcW/2
	pivotY := y + srcH/2
	destX := pivotX - newW/2
	destY := pivotY - newH/2

	dest, ok := clipDest(destX, destY, newW, newH, effectiveClip(ctx, t))
	if !ok {
		return
	}

	dstFmt := t.Format()
	srcFmt := tex.Format()
	dBpp := pixfmt.Describe(dstFmt).BytesPerPx
	kernel, ok2 := convert.Lookup(srcFmt, dstFmt)
	if !ok2 {
		return
	}

	for dy := dest.Y1; dy < dest.Y2; dy++ {
		dstRow := t.Row(dy)
		if dstRow == nil {
			continue
		}
		ldy := dy - destY
		for dx := dest.X1; dx < dest.X2; dx++ {
			ldx := dx - destX
			var sx, sy int
			switch angle {
			case 90:
				sx, sy = ldy, srcH-1-ldx
			case 270:
				sx, sy = srcW-1-ldy, ldx
			default: // 180
				sx, sy = srcW-1-ldx, srcH-1-ldy
			}
			srcRow := tex.Row(sy)
			if srcRow == nil {
				continue
			}
			sBpp := pixfmt.Describe(srcFmt).BytesPerPx
			srcPixel := srcRow[sx*sBpp : sx*sBpp+sBpp]
			dstPixel := dstRow[dx*dBpp : dx*dBpp+dBpp]
			kernel(dstPixel, srcPixel, 1)
		}
	}
}

// DrawTextureScaledRotated draws tex scaled by (scaleX, scaleY) and
// rotated by angleDeg degrees about the center of the scaled image plus
// (offX, offY), or about pivot if pivot is non-nil (an explicit
// override, from original_source's third DrawArray overload).
// scaleX <= 0 or scaleY <= 0 skips the draw (degenerate transform).
func DrawTextureScaledRotated(ctx *render.Context, tex *texture.Texture, x, y int, scaleX, scaleY, angleDeg float64, offX, offY int, pivot *Pivot) {
	if scaleX <= 0 || scaleY <= 0 {
		return
	}
	t := ctx.TargetTexture()
	if t == nil || tex == nil {
		return
	}

	srcW, srcH := tex.Width(), tex.Height()
	scaledW := float64(srcW) * scaleX
	scaledH := float64(srcH) * scaleY
	scaledCenterX := scaledW / 2
	scaledCenterY := scaledH / 2

	var pivotX, pivotY float64
	if pivot != nil {
		pivotX, pivotY = float64(pivot.X), float64(pivot.Y)
	} else {
		pivotX = float64(x) + scaledCenterX + float64(offX)
		pivotY = float64(y) + scaledCenterY + float64(offY)
	}

	angle := basics.NormalizeAngle(angleDeg)
	theta := angle * basics.Deg2Rad
	cos, sin := math.Cos(theta), math.Sin(theta)

	// The inverse map below centers the scaled image on the pivot, so the
	// bounding box is built around that footprint.
	bbox := rotatedBoundingBox(pivotX-scaledCenterX, pivotY-scaledCenterY, scaledW, scaledH, pivotX, pivotY, cos, sin)
	dest, ok := basics.IntersectRectangles(bbox, effectiveClip(ctx, t))
	if !ok {
		return
	}

	dstFmt := t.Format()
	srcFmt := tex.Format()
	dBpp := pixfmt.Describe(dstFmt).BytesPerPx
	sBpp := pixfmt.Describe(srcFmt).BytesPerPx
	direct := ctx.BlendMode() == blend.NOBLEND ||
		(!pixfmt.Describe(srcFmt).HasAlpha && !ctx.Coloring().Enabled)

	var kernel convert.RowKernel
	if direct {
		k, ok2 := convert.Lookup(srcFmt, dstFmt)
		if !ok2 {
			return
		}
		kernel = k
	}

	for dy := dest.Y1; dy < dest.Y2; dy++ {
		dstRow := t.Row(dy)
		if dstRow == nil {
			continue
		}
		for dx := dest.X1; dx < dest.X2; dx++ {
			ddx := float64(dx) - pivotX
			ddy := float64(dy) - pivotY
			srcX := (ddx*cos + ddy*sin + scaledCenterX) / scaleX
			srcY := (-ddx*sin + ddy*cos + scaledCenterY) / scaleY
			if srcX < 0 || srcX >= float64(srcW) || srcY < 0 || srcY >= float64(srcH) {
				continue
			}

			var srcPixel [4]byte
			switch ctx.SamplingMethod() {
			case render.Linear:
				srcPixel = sampleBilinear(tex, srcFmt, srcX, srcY, srcW, srcH, sBpp)
			default:
				sx := int(math.Round(srcX))
				sy := int(math.Round(srcY))
				if sx >= srcW {
					sx = srcW - 1
				}
				if sy >= srcH {
					sy = srcH - 1
				}
				row := tex.Row(sy)
				if row == nil {
					continue
				}
				copy(srcPixel[:sBpp], row[sx*sBpp:sx*sBpp+sBpp])
			}

			dstPixel := dstRow[dx*dBpp : dx*dBpp+dBpp]
			if direct {
				kernel(dstPixel, srcPixel[:sBpp], 1)
			} else {
				ctx.BlendFunc()(dstPixel, srcPixel[:sBpp], 1, dstFmt, srcFmt, ctx.Coloring(), false, ctx.BlendContext())
			}
		}
	}
}

// sampleBilinear reads the four surrounding integer-coordinate source
// pixels (clamping high indices to width-1/height-1), converts each to
// ARGB8888, and interpolates using the fractional parts of (srcX, srcY).
// The result is packed back into srcFmt's byte layout so callers can
// treat it like any other sampled pixel.
func sampleBilinear(tex *texture.Texture, srcFmt pixfmt.Format, srcX, srcY float64, srcW, srcH, sBpp int) [4]byte {
	x0 := int(math.Floor(srcX))
	y0 := int(math.Floor(srcY))
	fx := srcX - float64(x0)
	fy := srcY - float64(y0)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 >= srcW {
		x1 = srcW - 1
	}
	if y1 >= srcH {
		y1 = srcH - 1
	}
	if x0 >= srcW {
		x0 = srcW - 1
	}
	if y0 >= srcH {
		y0 = srcH - 1
	}

	readARGB := func(sx, sy int) (a, r, g, b float64) {
		row := tex.Row(sy)
		if row == nil {
			return 0, 0, 0, 0
		}
		pa, pr, pg, pb := convert.Unpack(srcFmt, row[sx*sBpp:sx*sBpp+sBpp])
		return float64(pa), float64(pr), float64(pg), float64(pb)
	}

	a00, r00, g00, b00 := readARGB(x0, y0)
	a10, r10, g10, b10 := readARGB(x1, y0)
	a01, r01, g01, b01 := readARGB(x0, y1)
	a11, r11, g11, b11 := readARGB(x1, y1)

	lerp2D := func(v00, v10, v01, v11 float64) byte {
		top := v00 + (v10-v00)*fx
		bot := v01 + (v11-v01)*fx
		return byte(math.Round(top + (bot-top)*fy))
	}

	a := lerp2D(a00, a10, a01, a11)
	r := lerp2D(r00, r10, r01, r11)
	g := lerp2D(g00, g10, g01, g11)
	b := lerp2D(b00, b10, b01, b11)

	var out [4]byte
	convert.Pack(srcFmt, a, r, g, b, out[:sBpp])
	return out
}

// Line draws a Bresenham line from (x0, y0) to (x1, y1), pre-clipped by
// the Cohen-Sutherland algorithm against the active clip rectangle.
// Degenerate cases (dx == 0 or dy == 0) delegate to Rect for a
// 1-pixel-wide row or column.
func Line(ctx *render.Context, c color.Color, x0, y0, x1, y1 int) {
	t := ctx.TargetTexture()
	if t == nil {
		return
	}

	if x0 == x1 {
		top, bottom := y0, y1
		if top > bottom {
			top, bottom = bottom, top
		}
		Rect(ctx, c, x0, top, 1, bottom-top+1)
		return
	}
	if y0 == y1 {
		left, right := x0, x1
		if left > right {
			left, right = right, left
		}
		Rect(ctx, c, left, y0, right-left+1, 1)
		return
	}

	clip := effectiveClip(ctx, t)
	clipBox := basics.Rect[int]{X1: clip.X1, Y1: clip.Y1, X2: clip.X2 - 1, Y2: clip.Y2 - 1}
	cx0, cy0, cx1, cy1 := x0, y0, x1, y1
	ret := basics.ClipLineSegment(&cx0, &cy0, &cx1, &cy1, clipBox)
	if ret >= 4 {
		return
	}

	dstFmt := t.Format()
	bpp := pixfmt.Describe(dstFmt).BytesPerPx
	out, ok := c.ConvertTo(convert.Default{}, dstFmt)
	if !ok {
		return
	}
	solidPixel := c.ARGB8888()

	dx := abs(cx1 - cx0)
	dy := -abs(cy1 - cy0)
	sx := sign(cx1 - cx0)
	sy := sign(cy1 - cy0)
	err := dx + dy

	x, y := cx0, cy0
	for {
		plotPoint(ctx, t, dstFmt, bpp, out, solidPixel, c, x, y)
		if x == cx1 && y == cy1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func plotPoint(ctx *render.Context, t *texture.Texture, fmt pixfmt.Format, bpp int, converted, solid [4]byte, c color.Color, x, y int) {
	if x < 0 || y < 0 || x >= t.Width() || y >= t.Height() {
		return
	}
	row := t.Row(y)
	if row == nil {
		return
	}
	px := row[x*bpp : x*bpp+bpp]
	if c.A() == 255 || ctx.BlendMode() == blend.NOBLEND {
		copy(px, converted[:bpp])
		return
	}
	ctx.BlendFunc()(px, solid[:], 1, fmt, pixfmt.ARGB8888, ctx.Coloring(), true, ctx.BlendContext())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
