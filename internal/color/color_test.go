package color

import (
	"testing"

	"github.com/mekolabs/raster2d/internal/pixfmt"
)

func TestNewColorRGBIsOpaque(t *testing.T) {
	c := NewColorRGB(0x12, 0x34, 0x56)
	if c.A() != 255 || c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 {
		t.Errorf("got A=%d R=%d G=%d B=%d", c.A(), c.R(), c.G(), c.B())
	}
}

func TestNewColorRGBA(t *testing.T) {
	c := NewColorRGBA(1, 2, 3, 128)
	if c.A() != 128 || c.R() != 1 || c.G() != 2 || c.B() != 3 {
		t.Errorf("got A=%d R=%d G=%d B=%d", c.A(), c.R(), c.G(), c.B())
	}
}

func TestNewColorGrayAlphaSynthesis(t *testing.T) {
	zero := NewColorGray(0)
	if zero.A() != 0 {
		t.Errorf("gray 0 should synthesize alpha 0, got %d", zero.A())
	}
	nonzero := NewColorGray(200)
	if nonzero.A() != 255 {
		t.Errorf("gray 200 should synthesize alpha 255, got %d", nonzero.A())
	}
	if nonzero.R() != 200 || nonzero.G() != 200 || nonzero.B() != 200 {
		t.Errorf("gray value should replicate across channels, got R=%d G=%d B=%d", nonzero.R(), nonzero.G(), nonzero.B())
	}
}

func TestWithAlpha(t *testing.T) {
	c := NewColorRGB(10, 20, 30).WithAlpha(50)
	if c.A() != 50 || c.R() != 10 {
		t.Errorf("WithAlpha should only change alpha, got A=%d R=%d", c.A(), c.R())
	}
}

func TestGetSet(t *testing.T) {
	c := NewColorRGBA(1, 2, 3, 4)
	buf := make([]byte, 4)
	n := c.Get(buf)
	if n != 4 {
		t.Fatalf("expected 4 bytes written, got %d", n)
	}
	var c2 Color
	c2.Set([4]byte{buf[0], buf[1], buf[2], buf[3]})
	if c2 != c {
		t.Errorf("round trip through Get/Set changed the color: %v vs %v", c2, c)
	}
}

// grayDropConverter fakes an ARGB8888->GRAYSCALE8 luminance kernel just
// well enough to exercise ConvertTo's dispatch.
type grayDropConverter struct{}

func (grayDropConverter) Convert(dst, src pixfmt.Format, dstBuf, srcBuf []byte, count int) bool {
	if dst != pixfmt.GRAYSCALE8 || src != pixfmt.ARGB8888 {
		return false
	}
	dstBuf[0] = srcBuf[1]
	return true
}

func TestConvertToHubFormatIsIdentity(t *testing.T) {
	c := NewColorRGBA(1, 2, 3, 4)
	out, ok := c.ConvertTo(grayDropConverter{}, pixfmt.ARGB8888)
	if !ok || out != c.ARGB8888() {
		t.Errorf("ConvertTo(ARGB8888) should be the identity, got %v ok=%v", out, ok)
	}
}

func TestConvertToDelegatesToConverter(t *testing.T) {
	c := NewColorRGBA(42, 2, 3, 4)
	out, ok := c.ConvertTo(grayDropConverter{}, pixfmt.GRAYSCALE8)
	if !ok || out[0] != 42 {
		t.Errorf("expected delegated conversion to produce R in byte 0, got %v ok=%v", out, ok)
	}
}
