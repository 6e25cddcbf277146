package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mosaic"
)

const (
	// waterScrollScale converts the ripple offset into world units scrolled.
	waterScrollScale = 100
	// waterWavelength is the ripple period in world units.
	waterWavelength = 2.5
	// waterRippleAmp is the peak brightness change of a ripple.
	waterRippleAmp = 0.12
)

// water is a tinted plane below the mosaic with a scrolling ripple.
type water struct {
	offset float64

	base  mosaic.RGB
	verts []ebiten.Vertex
	inds  []uint32
}

// advance scrolls the ripple by one update.
func (w *water) advance(speed float64) {
	w.offset += speed
}

// ripple returns the brightness factor of the water surface at (x, z).
func (w *water) ripple(x, z float64) float64 {
	scroll := w.offset * waterScrollScale
	s := math.Sin(2 * math.Pi * (z + scroll) / waterWavelength)
	c := math.Cos(2 * math.Pi * x / waterWavelength)
	return 1 + waterRippleAmp*s*c
}

// build fills the vertex buffers with a grid of quads centred under the
// camera target. Quads with a corner behind the near plane are skipped.
func (w *water) build(cam *Camera, cfg *Config) {
	w.verts = w.verts[:0]
	w.inds = w.inds[:0]
	tiles := cfg.WaterTiles
	if tiles <= 0 || cfg.WaterExtent <= 0 {
		return
	}
	w.base = cfg.Lighting.Shade(cfg.WaterColor, mosaic.Vec3{Y: 1})

	step := 2 * cfg.WaterExtent / float64(tiles)
	x0 := cam.Target.X - cfg.WaterExtent
	z0 := cam.Target.Z - cfg.WaterExtent
	for row := range tiles {
		for col := range tiles {
			xs := [4]float64{x0 + float64(col)*step, x0 + float64(col+1)*step, x0 + float64(col+1)*step, x0 + float64(col)*step}
			zs := [4]float64{z0 + float64(row)*step, z0 + float64(row)*step, z0 + float64(row+1)*step, z0 + float64(row+1)*step}
			w.addQuad(cam, cfg, xs, zs)
		}
	}
}

func (w *water) addQuad(cam *Camera, cfg *Config, xs, zs [4]float64) {
	var pts [4][2]float32
	for k := range pts {
		sx, sy, _, ok := cam.Project(mosaic.Vec3{X: xs[k], Y: cfg.WaterLevel, Z: zs[k]})
		if !ok {
			return
		}
		pts[k] = [2]float32{float32(sx), float32(sy)}
	}
	base := uint32(len(w.verts))
	for k := range pts {
		f := w.ripple(xs[k], zs[k])
		c := premultiply(w.base, cfg.WaterOpacity)
		w.verts = append(w.verts, ebiten.Vertex{
			DstX:   pts[k][0],
			DstY:   pts[k][1],
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: min(c[0]*float32(f), c[3]),
			ColorG: min(c[1]*float32(f), c[3]),
			ColorB: min(c[2]*float32(f), c[3]),
			ColorA: c[3],
		})
	}
	w.inds = append(w.inds,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
}

func (w *water) draw(target *ebiten.Image) {
	if len(w.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(w.verts, w.inds, ensureWhitePixel(), &op)
}
