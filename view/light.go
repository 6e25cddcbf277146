package view

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/mosaic"
)

// Light is a uniform ambient light.
type Light struct {
	Color     mosaic.RGB
	Intensity float64
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Color     mosaic.RGB
	Intensity float64
	Position  mosaic.Vec3
}

// Lighting is an ambient light plus one directional light.
type Lighting struct {
	Ambient     Light
	Directional DirectionalLight
}

// DefaultLighting returns a white ambient light at 0.5 and a white
// directional light at 1.5 placed at (-3, 2, 8).
func DefaultLighting() Lighting {
	white := mosaic.RGB{R: 0xff, G: 0xff, B: 0xff}
	return Lighting{
		Ambient: Light{Color: white, Intensity: 0.5},
		Directional: DirectionalLight{
			Color:     white,
			Intensity: 1.5,
			Position:  mosaic.Vec3{X: -3, Y: 2, Z: 8},
		},
	}
}

// Shade returns c lit by l on a surface with the given unit normal.
//
// Lighting is Lambertian and computed in linear RGB:
//
//	out = albedo/pi * (ambient + directional * max(0, n.l))
//
// then re-encoded to sRGB and clamped.
func (l Lighting) Shade(c mosaic.RGB, normal mosaic.Vec3) mosaic.RGB {
	ar, ag, ab := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.LinearRgb()

	amb := l.Ambient.radiance()
	dir := l.Directional.radiance()
	ndotl := math.Max(0, normal.Dot(l.Directional.direction()))

	out := colorful.LinearRgb(
		ar/math.Pi*(amb[0]+dir[0]*ndotl),
		ag/math.Pi*(amb[1]+dir[1]*ndotl),
		ab/math.Pi*(amb[2]+dir[2]*ndotl),
	).Clamped()
	r, g, b := out.RGB255()
	return mosaic.RGB{R: r, G: g, B: b}
}

// radiance returns the light's linear color scaled by its intensity.
func (l Light) radiance() [3]float64 {
	return linearRadiance(l.Color, l.Intensity)
}

func (d DirectionalLight) radiance() [3]float64 {
	return linearRadiance(d.Color, d.Intensity)
}

// direction returns the unit vector from the origin toward the light, or
// zero when the light sits at the origin.
func (d DirectionalLight) direction() mosaic.Vec3 {
	n := math.Sqrt(d.Position.Dot(d.Position))
	if n == 0 {
		return mosaic.Vec3{}
	}
	return d.Position.Scale(1 / n)
}

func linearRadiance(c mosaic.RGB, intensity float64) [3]float64 {
	r, g, b := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.LinearRgb()
	return [3]float64{r * intensity, g * intensity, b * intensity}
}
