//go:build sdl2

// Command demo opens an SDL2 window and drives the raster2d facade
// against its window surface once per frame, proving the facade's
// pixel-buffer contract (width, height, pitch, format, base pointer)
// against a real OS-supplied buffer rather than a synthetic one.
//
// Grounded on the teacher's internal/platform/sdl2 backend for the
// window/surface lifecycle (Init, Lock/Unlock, UpdateSurface, event
// pump), trimmed to what a single-buffer software demo needs -- this
// program does not reuse the teacher's PlatformSupport abstraction,
// since that exists to support AGG's many vector-graphics demos and
// this demo only needs one window and one draw loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mekolabs/raster2d"
	"github.com/mekolabs/raster2d/internal/pixfmt"
	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	width := flag.Int("width", 640, "window width")
	height := flag.Int("height", 480, "window height")
	scene := flag.String("scene", "all", "demo scene to run: all, rotate, scale, blend")
	flag.Parse()

	if err := run(*width, *height, *scene); err != nil {
		log.Fatal(err)
	}
}

func run(width, height int, scene string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("raster2d demo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("failed to create SDL2 window: %w", err)
	}
	defer window.Destroy()

	facade := raster2d.New()
	srcs := buildSampleTextures()

	angle := 0.0
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		if err := drawFrame(window, facade, srcs, scene, angle); err != nil {
			return err
		}
		angle += 1.0

		time.Sleep(16 * time.Millisecond)
	}
	return nil
}

func drawFrame(window *sdl.Window, facade *raster2d.Facade, srcs sampleTextures, scene string, angle float64) error {
	surface, err := window.GetSurface()
	if err != nil {
		return fmt.Errorf("failed to get SDL2 window surface: %w", err)
	}
	if err := surface.Lock(); err != nil {
		return fmt.Errorf("failed to lock SDL2 surface: %w", err)
	}
	defer surface.Unlock()

	target := wrapSurface(surface)
	facade.SetTargetTexture(target)

	facade.ClearTarget(raster2d.NewColorRGB(24, 24, 32))

	w, h := int(surface.W), int(surface.H)

	switch scene {
	case "rotate":
		drawRotateScene(facade, srcs, w, h, angle)
	case "scale":
		drawScaleScene(facade, srcs, w, h, angle)
	case "blend":
		drawBlendScene(facade, srcs, w, h)
	default:
		drawRotateScene(facade, srcs, w, h/2, angle)
		drawScaleScene(facade, srcs, w, h, angle)
		drawBlendScene(facade, srcs, w, h)
	}

	if err := window.UpdateSurface(); err != nil {
		return fmt.Errorf("failed to update SDL2 window surface: %w", err)
	}
	return nil
}

// wrapSurface builds a non-owning raster2d.Texture directly over the
// SDL2 window surface's pixel memory, resolving the surface's
// SDL_PixelFormatEnum to the matching pixfmt.Format -- exercising
// internal/convert against whichever native format the OS/driver
// handed back (commonly PIXELFORMAT_RGBA8888 or PIXELFORMAT_ARGB8888),
// not just an RGB24 identity copy.
func wrapSurface(surface *sdl.Surface) *raster2d.Texture {
	format := surfacePixelFormat(surface.Format.Format)
	pixels := surface.Pixels()
	return raster2d.WrapTexture(pixels, int(surface.W), int(surface.H), int(surface.Pitch), format)
}

func surfacePixelFormat(sdlFormat uint32) pixfmt.Format {
	switch sdlFormat {
	case sdl.PIXELFORMAT_ARGB8888:
		return pixfmt.ARGB8888
	case sdl.PIXELFORMAT_RGBA8888:
		return pixfmt.RGBA8888
	case sdl.PIXELFORMAT_RGB565:
		return pixfmt.RGB565
	case sdl.PIXELFORMAT_RGB24:
		return pixfmt.RGB24
	case sdl.PIXELFORMAT_BGR24:
		return pixfmt.BGR24
	default:
		// SDL2 almost always hands back a 32-bit format on modern
		// desktops; ARGB8888 is the hub format anyway.
		return pixfmt.ARGB8888
	}
}

type sampleTextures struct {
	rgb24    *raster2d.Texture
	bgr24    *raster2d.Texture
	rgb565   *raster2d.Texture
	gray     *raster2d.Texture
	argbSoft *raster2d.Texture
}

// buildSampleTextures constructs a small checkerboard in each of five
// formats so the demo's draws exercise RGB24, BGR24, RGB565,
// GRAYSCALE8 and ARGB8888 (with translucency) source conversions.
func buildSampleTextures() sampleTextures {
	const n = 32
	rgb24 := raster2d.NewTexture(n, n, raster2d.RGB24)
	bgr24 := raster2d.NewTexture(n, n, raster2d.BGR24)
	rgb565 := raster2d.NewTexture(n, n, raster2d.RGB565)
	gray := raster2d.NewTexture(n, n, raster2d.GRAYSCALE8)
	argbSoft := raster2d.NewTexture(n, n, raster2d.ARGB8888)

	fill := func(t *raster2d.Texture, even, odd [4]byte) {
		bpp := bpp(t.Format())
		for y := 0; y < n; y++ {
			row := t.Row(y)
			for x := 0; x < n; x++ {
				c := even
				if (x/4+y/4)%2 == 1 {
					c = odd
				}
				copy(row[x*bpp:x*bpp+bpp], c[:bpp])
			}
		}
	}

	// Byte layouts are format-native; these are illustrative checker
	// colors (not round-tripped through Color -- the demo writes raw
	// source bytes directly, the way a real texture loader would).
	fill(rgb24, [4]byte{200, 60, 60}, [4]byte{60, 60, 200})
	fill(bgr24, [4]byte{60, 60, 200}, [4]byte{200, 60, 60})
	fill(rgb565, [4]byte{0xF8, 0x00}, [4]byte{0x00, 0x1F})
	fill(gray, [4]byte{230}, [4]byte{40})
	fill(argbSoft, [4]byte{160, 255, 255, 0}, [4]byte{160, 0, 255, 255})

	return sampleTextures{rgb24: rgb24, bgr24: bgr24, rgb565: rgb565, gray: gray, argbSoft: argbSoft}
}

func bpp(f pixfmt.Format) int {
	switch f {
	case raster2d.RGB24, raster2d.BGR24:
		return 3
	case raster2d.ARGB8888, raster2d.RGBA8888:
		return 4
	case raster2d.RGB565, raster2d.ARGB1555, raster2d.RGBA4444:
		return 2
	default:
		return 1
	}
}

// drawRotateScene exercises DrawTextureRotated across RGB24 and BGR24
// sources, one full turn per ~6 seconds.
func drawRotateScene(facade *raster2d.Facade, srcs sampleTextures, w, h int, angle float64) {
	facade.SetBlendMode(raster2d.NOBLEND)
	cx, cy := w/2, h/2
	facade.DrawTextureRotated(srcs.rgb24, cx-80, cy-16, angle, 0, 0)
	facade.DrawTextureRotated(srcs.bgr24, cx-80, cy-80, -angle*1.5, 0, 0)
}

// drawScaleScene exercises DrawTextureScaledRotated with both NEAREST
// and LINEAR sampling side by side, then an RGB565 source scaled by
// different factors on each axis.
func drawScaleScene(facade *raster2d.Facade, srcs sampleTextures, w, h int, angle float64) {
	facade.SetBlendMode(raster2d.NOBLEND)
	facade.SetSamplingMethod(raster2d.Nearest)
	facade.DrawTextureScaledRotated(srcs.gray, w/2-140, h/2-60, 2.5, 2.5, angle*0.5, 0, 0, nil)

	facade.SetSamplingMethod(raster2d.Linear)
	facade.DrawTextureScaledRotated(srcs.gray, w/2+20, h/2-60, 2.5, 2.5, angle*0.5, 0, 0, nil)

	facade.DrawTextureScaledRotated(srcs.rgb565, w/2-60, h/2+40, 1.5, 3.0, 0, 0, 0, nil)
}

// drawBlendScene exercises the row-blend engine: an ARGB8888 source
// with translucency under SIMPLE source-over, then again with
// COLORINGONLY tinting, against an opaque rectangle backdrop.
func drawBlendScene(facade *raster2d.Facade, srcs sampleTextures, w, h int) {
	facade.SetBlendMode(raster2d.NOBLEND)
	facade.DrawRect(raster2d.NewColorRGB(40, 80, 40), w/2-100, h-140, 200, 100)

	facade.SetBlendMode(raster2d.SIMPLE)
	facade.SetBlendFactors(raster2d.SourceAlpha, raster2d.InverseSourceAlpha)
	facade.SetBlendOperation(raster2d.Add)
	facade.DrawTexture(srcs.argbSoft, w/2-90, h-130)

	facade.SetBlendMode(raster2d.COLORINGONLY)
	facade.SetColoring(raster2d.Coloring{Enabled: true, Color: raster2d.NewColorRGBA(255, 180, 90, 200)})
	facade.DrawTexture(srcs.argbSoft, w/2+10, h-130)
	facade.SetColoring(raster2d.Coloring{})
	facade.SetBlendMode(raster2d.NOBLEND)

	facade.DrawLine(raster2d.NewColorRGB(255, 255, 255), w/2-100, h-140, w/2+100, h-40)
}
