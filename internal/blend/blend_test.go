package blend

import (
	"bytes"
	"testing"

	"github.com/mekolabs/raster2d/internal/color"
	"github.com/mekolabs/raster2d/internal/pixfmt"
)

func TestScenarioS3SourceOver(t *testing.T) {
	dst := []byte{0x00, 0x00, 0x00}
	src := []byte{0x80, 0xFF, 0xFF, 0xFF} // A R G B
	ctx := Context{Mode: SIMPLE, SrcFactor: SourceAlpha, DstFactor: InverseSourceAlpha, Op: Add}
	Row(dst, src, 1, pixfmt.RGB24, pixfmt.ARGB8888, Coloring{}, false, ctx)

	want := []byte{0x7F, 0x7F, 0x7F}
	for i := range want {
		diff := int(dst[i]) - int(want[i])
		if diff < -1 || diff > 1 {
			t.Errorf("byte %d = %#x, want %#x +-1", i, dst[i], want[i])
		}
	}
}

func TestAlphaZeroInvariance(t *testing.T) {
	dst := []byte{0x11, 0x22, 0x33}
	orig := append([]byte(nil), dst...)
	src := []byte{0x00, 0xFF, 0xFF, 0xFF} // alpha 0
	Row(dst, src, 1, pixfmt.RGB24, pixfmt.ARGB8888, Coloring{}, false, DefaultContext)
	if !bytes.Equal(dst, orig) {
		t.Errorf("alpha=0 source should leave destination unchanged, got % x want % x", dst, orig)
	}
}

func TestAlphaFullEquivalence(t *testing.T) {
	dst1 := []byte{0x00, 0x00, 0x00}
	dst2 := []byte{0x00, 0x00, 0x00}
	src := []byte{0xFF, 0x10, 0x20, 0x30} // opaque
	Row(dst1, src, 1, pixfmt.RGB24, pixfmt.ARGB8888, Coloring{}, false, DefaultContext)

	// Straight format-converted copy via One/Zero + Add should match.
	Row(dst2, src, 1, pixfmt.RGB24, pixfmt.ARGB8888, Coloring{}, false, Context{Mode: SIMPLE, SrcFactor: One, DstFactor: Zero, Op: Add})

	if !bytes.Equal(dst1, dst2) {
		t.Errorf("alpha=255 should equal a One/Zero+Add blend: % x vs % x", dst1, dst2)
	}
}

func TestNoBlendIsStraightCopy(t *testing.T) {
	dst := []byte{0, 0, 0}
	src := []byte{0x12, 0x34, 0x56}
	Row(dst, src, 1, pixfmt.RGB24, pixfmt.RGB24, Coloring{}, false, Context{Mode: NOBLEND})
	if !bytes.Equal(dst, src) {
		t.Errorf("NOBLEND should copy bytes directly, got % x", dst)
	}
}

func TestColoringTintsSource(t *testing.T) {
	dst := []byte{0, 0, 0}
	src := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	tint := color.NewColorRGBA(128, 128, 128, 255)
	Row(dst, src, 1, pixfmt.RGB24, pixfmt.ARGB8888, Coloring{Enabled: true, Color: tint}, false, Context{Mode: NOBLEND})
	for _, b := range dst {
		if b < 126 || b > 129 {
			t.Errorf("tinted channel = %d, want ~128", b)
		}
	}
}

func TestSolidColorFastPath(t *testing.T) {
	dst := make([]byte, 3*4)
	solid := color.NewColorRGBA(10, 20, 30, 255)
	solidPixel := solid.ARGB8888()
	Row(dst, solidPixel[:], 4, pixfmt.RGB24, pixfmt.ARGB8888, Coloring{}, true, Context{Mode: NOBLEND})
	for i := 0; i < 4; i++ {
		px := dst[i*3 : i*3+3]
		if px[0] != 10 || px[1] != 20 || px[2] != 30 {
			t.Errorf("pixel %d = % x, want 0a 14 1e", i, px)
		}
	}
}

func TestDestAlphaFactorOnAlphaLessFormat(t *testing.T) {
	// DestAlpha on an alpha-less RGB24 destination must evaluate to 255.
	fr, fg, fb, fa := evalFactor(DestAlpha, 0, 0, 0, 0, 0, 0, 0, 0, pixfmt.RGB24)
	if fr != 255 || fg != 255 || fb != 255 || fa != 255 {
		t.Errorf("DestAlpha on alpha-less dest should be 255, got %d %d %d %d", fr, fg, fb, fa)
	}
	fr, fg, fb, fa = evalFactor(InverseDestAlpha, 0, 0, 0, 0, 0, 0, 0, 0, pixfmt.RGB24)
	if fr != 0 || fg != 0 || fb != 0 || fa != 0 {
		t.Errorf("InverseDestAlpha on alpha-less dest should be 0, got %d %d %d %d", fr, fg, fb, fa)
	}
}
