package mosaic

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Default grid parameters, taken from the reference island scene.
const (
	DefaultGridWidth      = 100
	DefaultCubeSize       = 0.15
	DefaultSpacing        = 0.08
	DefaultDepthRange     = 8.0
	DefaultAlphaThreshold = 128
	DefaultBlendFactor    = 0.1
)

// MaxGridCells bounds the number of cells a grid may have. Sample rejects
// larger grids with a *ConfigError instead of allocating them.
const MaxGridCells = 1 << 24

// GridConfig controls how an image is sampled and how the elements animate.
type GridConfig struct {
	// GridWidth is the number of logical sample columns. The row count is
	// derived from the image aspect ratio.
	GridWidth int `toml:"grid_width"`
	// CubeSize is the edge length of each rendered cube. The core passes it
	// through to renderers untouched.
	CubeSize float64 `toml:"cube_size"`
	// Spacing is the distance between adjacent cell centers in output space.
	Spacing float64 `toml:"spacing"`
	// DepthRange is the full width of the random depth interval used when
	// scattered. Targets are drawn from [-DepthRange/2, DepthRange/2).
	DepthRange float64 `toml:"depth_range"`
	// AlphaThreshold is the minimum alpha (0-255) for a pixel to produce an
	// element.
	AlphaThreshold int `toml:"alpha_threshold"`
	// BlendFactor is the fraction of the remaining distance covered per tick,
	// in (0, 1].
	BlendFactor float64 `toml:"blend_factor"`
}

// DefaultGridConfig returns the reference configuration: a 100-column grid,
// 0.15 cubes spaced 0.08 apart, depth range 8, alpha threshold 128 and blend
// factor 0.1.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		GridWidth:      DefaultGridWidth,
		CubeSize:       DefaultCubeSize,
		Spacing:        DefaultSpacing,
		DepthRange:     DefaultDepthRange,
		AlphaThreshold: DefaultAlphaThreshold,
		BlendFactor:    DefaultBlendFactor,
	}
}

// Validate returns a *ConfigError describing the first out-of-range field,
// or nil.
func (c GridConfig) Validate() error {
	switch {
	case c.GridWidth <= 0:
		return &ConfigError{Field: "gridWidth", Value: c.GridWidth, Reason: "must be positive"}
	case c.GridWidth > MaxGridCells:
		return &ConfigError{Field: "gridWidth", Value: c.GridWidth, Reason: fmt.Sprintf("must be at most %d", MaxGridCells)}
	case !(c.CubeSize > 0):
		return &ConfigError{Field: "cubeSize", Value: c.CubeSize, Reason: "must be positive"}
	case !(c.Spacing > 0):
		return &ConfigError{Field: "spacing", Value: c.Spacing, Reason: "must be positive"}
	case !(c.DepthRange > 0):
		return &ConfigError{Field: "depthRange", Value: c.DepthRange, Reason: "must be positive"}
	case c.AlphaThreshold < 0 || c.AlphaThreshold > 255:
		return &ConfigError{Field: "alphaThreshold", Value: c.AlphaThreshold, Reason: "must be within [0, 255]"}
	case !(c.BlendFactor > 0 && c.BlendFactor <= 1):
		return &ConfigError{Field: "blendFactor", Value: c.BlendFactor, Reason: "must be within (0, 1]"}
	}
	return nil
}

// LoadGridConfig parses a TOML preset. Keys missing from the document keep
// their DefaultGridConfig values; unknown keys are rejected. The result is
// validated before it is returned.
//
//	grid_width = 64
//	depth_range = 12.0
//	blend_factor = 0.05
func LoadGridConfig(data []byte) (GridConfig, error) {
	cfg := DefaultGridConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return GridConfig{}, fmt.Errorf("parse grid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GridConfig{}, err
	}
	return cfg, nil
}
