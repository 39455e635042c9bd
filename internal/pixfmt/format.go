// Package pixfmt describes the fixed matrix of pixel encodings the
// rasterizer understands: bytes per pixel, channel masks/shifts, and
// alpha presence. The descriptor table is the single source of truth
// every converter and blender reads from.
package pixfmt

// Format is a closed enumeration of supported pixel encodings.
type Format uint8

const (
	RGB24 Format = iota
	BGR24
	ARGB8888
	RGBA8888
	RGB565
	ARGB1555
	RGBA4444
	GRAYSCALE8

	formatCount
)

func (f Format) String() string {
	switch f {
	case RGB24:
		return "RGB24"
	case BGR24:
		return "BGR24"
	case ARGB8888:
		return "ARGB8888"
	case RGBA8888:
		return "RGBA8888"
	case RGB565:
		return "RGB565"
	case ARGB1555:
		return "ARGB1555"
	case RGBA4444:
		return "RGBA4444"
	case GRAYSCALE8:
		return "GRAYSCALE8"
	default:
		return "UNKNOWN"
	}
}

// Channel identifies one channel slot in a FormatDescriptor's mask/shift
// tables.
type Channel int

const (
	ChanR Channel = iota
	ChanG
	ChanB
	ChanA
	channelCount
)

// FormatDescriptor is the static metadata for one Format: byte footprint,
// per-channel bit width/shift within the packed pixel value, and whether
// the format carries a real alpha channel.
type FormatDescriptor struct {
	Format     Format
	BytesPerPx int
	// Width in bits of each channel; 0 means the channel is absent.
	Width [channelCount]uint
	// Shift (in bits, from the LSB of the packed pixel value) of each
	// channel. Meaningless when Width is 0.
	Shift [channelCount]uint
	// HasAlpha is true for formats with a genuine alpha channel. It is
	// false for GRAYSCALE8 even though grayscale pixels synthesize an
	// alpha during conversion (spec: Y==0 -> alpha 0, else 255).
	HasAlpha bool
}

// Mask returns the bitmask selecting ch's bits out of a packed pixel
// value, or 0 if the format has no such channel.
func (d FormatDescriptor) Mask(ch Channel) uint32 {
	w := d.Width[ch]
	if w == 0 {
		return 0
	}
	return ((uint32(1) << w) - 1) << d.Shift[ch]
}

var descriptors = [formatCount]FormatDescriptor{
	RGB24: {
		Format: RGB24, BytesPerPx: 3,
		Width: [channelCount]uint{ChanR: 8, ChanG: 8, ChanB: 8},
		Shift: [channelCount]uint{ChanR: 16, ChanG: 8, ChanB: 0},
		HasAlpha: false,
	},
	BGR24: {
		Format: BGR24, BytesPerPx: 3,
		Width: [channelCount]uint{ChanR: 8, ChanG: 8, ChanB: 8},
		Shift: [channelCount]uint{ChanB: 16, ChanG: 8, ChanR: 0},
		HasAlpha: false,
	},
	ARGB8888: {
		Format: ARGB8888, BytesPerPx: 4,
		Width: [channelCount]uint{ChanA: 8, ChanR: 8, ChanG: 8, ChanB: 8},
		Shift: [channelCount]uint{ChanA: 24, ChanR: 16, ChanG: 8, ChanB: 0},
		HasAlpha: true,
	},
	RGBA8888: {
		Format: RGBA8888, BytesPerPx: 4,
		Width: [channelCount]uint{ChanR: 8, ChanG: 8, ChanB: 8, ChanA: 8},
		Shift: [channelCount]uint{ChanR: 24, ChanG: 16, ChanB: 8, ChanA: 0},
		HasAlpha: true,
	},
	RGB565: {
		Format: RGB565, BytesPerPx: 2,
		Width: [channelCount]uint{ChanR: 5, ChanG: 6, ChanB: 5},
		Shift: [channelCount]uint{ChanR: 11, ChanG: 5, ChanB: 0},
		HasAlpha: false,
	},
	ARGB1555: {
		Format: ARGB1555, BytesPerPx: 2,
		Width: [channelCount]uint{ChanA: 1, ChanR: 5, ChanG: 5, ChanB: 5},
		Shift: [channelCount]uint{ChanA: 15, ChanR: 10, ChanG: 5, ChanB: 0},
		HasAlpha: true,
	},
	RGBA4444: {
		Format: RGBA4444, BytesPerPx: 2,
		Width: [channelCount]uint{ChanR: 4, ChanG: 4, ChanB: 4, ChanA: 4},
		Shift: [channelCount]uint{ChanR: 12, ChanG: 8, ChanB: 4, ChanA: 0},
		HasAlpha: true,
	},
	GRAYSCALE8: {
		Format: GRAYSCALE8, BytesPerPx: 1,
		Width: [channelCount]uint{ChanR: 8},
		Shift: [channelCount]uint{ChanR: 0},
		HasAlpha: false,
	},
}

// Describe returns f's descriptor. Looking up an invalid Format value
// returns the zero descriptor (BytesPerPx 0), which every caller treats
// as "nothing to do."
func Describe(f Format) FormatDescriptor {
	if f >= formatCount {
		return FormatDescriptor{}
	}
	return descriptors[f]
}

// All returns every recognized Format, in declaration order.
func All() []Format {
	out := make([]Format, 0, formatCount)
	for f := Format(0); f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}
