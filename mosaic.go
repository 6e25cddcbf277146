package mosaic

import (
	"errors"
	"fmt"
)

// RGB is an 8-bit-per-channel color sampled from the source image.
type RGB struct {
	R, G, B uint8
}

// Floats returns the color components scaled to [0, 1].
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector in output space. X grows to the right, Y grows upward
// and Z points toward the viewer of the flat mosaic.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// lerp returns a + (b-a)*t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Errors reported by the sampler and the image helpers.
var (
	// ErrNoImage is returned when sampling is attempted before an image has
	// been supplied. It means "not runnable yet", not a decode failure.
	ErrNoImage = errors.New("mosaic: no source image")

	// ErrEmptyGrid is matched (via errors.Is) by the ConfigError returned when
	// the image aspect ratio leaves the grid with zero rows.
	ErrEmptyGrid = errors.New("mosaic: grid has zero rows")

	// ErrInvalidImage is returned when a pixel buffer does not match its
	// declared dimensions.
	ErrInvalidImage = errors.New("mosaic: invalid source image")
)

// ConfigError reports a GridConfig value that cannot produce a grid. Sampling
// does not start when a ConfigError is returned.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mosaic: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrEmptyGrid and this error describes a
// zero-row grid.
func (e *ConfigError) Is(target error) bool {
	return target == ErrEmptyGrid && e.Field == "gridHeight"
}
