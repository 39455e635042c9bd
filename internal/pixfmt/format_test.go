package pixfmt

import "testing"

func TestDescriptorConsistency(t *testing.T) {
	for _, f := range All() {
		d := Describe(f)
		var totalBits uint
		for _, w := range d.Width {
			totalBits += w
		}
		if totalBits > uint(d.BytesPerPx)*8 {
			t.Errorf("%v: channel widths %d exceed bpp*8 %d", f, totalBits, d.BytesPerPx*8)
		}
		for ch := Channel(0); ch < channelCount; ch++ {
			if d.Width[ch] == 0 {
				continue
			}
			maxShift := d.Shift[ch] + d.Width[ch]
			if maxShift > uint(d.BytesPerPx)*8 {
				t.Errorf("%v channel %d: mask exceeds pixel bit width", f, ch)
			}
		}
		hasAlphaMask := d.Width[ChanA] > 0
		if d.HasAlpha != hasAlphaMask {
			t.Errorf("%v: HasAlpha=%v but alpha channel width=%d", f, d.HasAlpha, d.Width[ChanA])
		}
	}
}

func TestDescribeUnknownFormat(t *testing.T) {
	d := Describe(Format(255))
	if d.BytesPerPx != 0 {
		t.Errorf("expected zero descriptor for invalid format, got bpp=%d", d.BytesPerPx)
	}
}

func TestMask(t *testing.T) {
	d := Describe(RGB565)
	if d.Mask(ChanR) != 0xF800 {
		t.Errorf("RGB565 red mask = %#x, want 0xF800", d.Mask(ChanR))
	}
	if d.Mask(ChanG) != 0x07E0 {
		t.Errorf("RGB565 green mask = %#x, want 0x07E0", d.Mask(ChanG))
	}
	if d.Mask(ChanB) != 0x001F {
		t.Errorf("RGB565 blue mask = %#x, want 0x001F", d.Mask(ChanB))
	}
	if d.Mask(ChanA) != 0 {
		t.Errorf("RGB565 has no alpha, mask should be 0, got %#x", d.Mask(ChanA))
	}
}

func TestAllReturnsEightFormats(t *testing.T) {
	if len(All()) != 8 {
		t.Errorf("expected 8 formats, got %d", len(All()))
	}
}

func TestFormatString(t *testing.T) {
	cases := map[Format]string{
		RGB24:      "RGB24",
		BGR24:      "BGR24",
		ARGB8888:   "ARGB8888",
		RGBA8888:   "RGBA8888",
		RGB565:     "RGB565",
		ARGB1555:   "ARGB1555",
		RGBA4444:   "RGBA4444",
		GRAYSCALE8: "GRAYSCALE8",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Errorf("Format(%d).String() = %q, want %q", f, got, want)
		}
	}
	if Format(255).String() != "UNKNOWN" {
		t.Error("expected UNKNOWN for invalid format")
	}
}
