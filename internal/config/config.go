// Package config provides library-wide defaults for the rasterizer.
// It lets a host program pick performance/memory trade-offs without
// threading options through every constructor.
package config

import (
	"github.com/mekolabs/raster2d/internal/buffer"
)

// RenderingBufferType selects the backing-store strategy used when a
// Texture allocates its own storage.
type RenderingBufferType int

const (
	// RenderingBufferStandard computes row offsets on every access.
	// Cheap to create and destroy; the right choice for short-lived
	// textures and one-shot draws.
	RenderingBufferStandard RenderingBufferType = iota

	// RenderingBufferCached precomputes and caches a row-pointer table.
	// Costs one allocation up front but is faster for render targets
	// that are written to many times (the main framebuffer, an
	// off-screen pass).
	RenderingBufferCached
)

// SamplingDefault is the sampling method new RenderContexts start with
// when the caller doesn't override it.
type SamplingDefault int

const (
	SamplingDefaultNearest SamplingDefault = iota
	SamplingDefaultLinear
)

// Config holds process-wide defaults for the rasterizer.
type Config struct {
	// DefaultRenderingBufferType controls which buffer implementation
	// backs a Texture created without an explicit backing store.
	DefaultRenderingBufferType RenderingBufferType

	// DefaultSampling controls the sampling method a fresh RenderContext
	// starts with before Facade.SetSamplingMethod is called.
	DefaultSampling SamplingDefault
}

var globalConfig = Config{
	DefaultRenderingBufferType: RenderingBufferStandard,
	DefaultSampling:            SamplingDefaultNearest,
}

// SetConfig replaces the global configuration. Call before constructing
// any textures or render contexts for consistent behavior.
func SetConfig(cfg Config) {
	globalConfig = cfg
}

// GetConfig returns the current global configuration.
func GetConfig() Config {
	return globalConfig
}

// NewRenderingBufferU8 creates a uint8 rendering buffer using the
// configured default implementation.
func NewRenderingBufferU8() interface{} {
	switch globalConfig.DefaultRenderingBufferType {
	case RenderingBufferCached:
		return buffer.NewRenderingBufferCache[uint8]()
	default:
		return buffer.NewRenderingBufferU8()
	}
}
