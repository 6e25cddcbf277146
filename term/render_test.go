package term

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/phanxgames/mosaic"
)

var (
	red  = mosaic.RGB{R: 255}
	blue = mosaic.RGB{B: 255}
)

func newTestRaster(cols, rows int) *raster {
	r := &raster{profile: termenv.TrueColor, parallax: 1, fade: 0.6}
	r.resize(cols, rows)
	return r
}

func TestRasterNearerWins(t *testing.T) {
	tests := []struct {
		name   string
		splats []splat
		want   float64
	}{
		{"near drawn last", []splat{{color: red, depth: -1}, {color: blue, depth: 1}}, 1},
		{"near drawn first", []splat{{color: blue, depth: 1}, {color: red, depth: -1}}, 1},
		{"tie keeps first", []splat{{color: red}, {color: blue}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRaster(1, 1)
			r.parallax = 0
			r.draw(tt.splats, 1, 1, 4)
			if r.depth[0] != tt.want {
				t.Errorf("depth = %v, want %v", r.depth[0], tt.want)
			}
		})
	}

	r := newTestRaster(1, 1)
	r.parallax = 0
	r.draw([]splat{{color: red}, {color: blue}}, 1, 1, 4)
	if c, _ := r.at(0, 0); c.Hex() != "#ff0000" {
		t.Errorf("tie winner = %s, want the first splat", c.Hex())
	}
}

func TestRasterParallax(t *testing.T) {
	r := newTestRaster(9, 1)
	r.parallax = 2
	// One-pixel grid centred at column 4.
	r.draw([]splat{{color: red, depth: 1.4}}, 1, 1, 4)
	// 4 + round(1.4 * 2) = 7
	for x := range 9 {
		_, ok := r.at(x, 0)
		if ok != (x == 7) {
			t.Errorf("column %d set = %v", x, ok)
		}
	}

	r.draw([]splat{{color: red, depth: -1.4}}, 1, 1, 4)
	if _, ok := r.at(1, 0); !ok {
		t.Error("negative depth did not shift left")
	}
}

func TestRasterClipsOffCanvas(t *testing.T) {
	r := newTestRaster(3, 1)
	r.parallax = 10
	r.draw([]splat{{color: red, depth: 4}, {color: red, depth: -4}}, 1, 1, 4)
	for x := range 3 {
		if _, ok := r.at(x, 0); ok {
			t.Errorf("column %d set by an off-canvas splat", x)
		}
	}
}

func TestRasterDepthFade(t *testing.T) {
	r := newTestRaster(1, 1)
	flat := r.shade(red, 0, 4)
	if flat.Hex() != "#ff0000" {
		t.Errorf("flat color = %s, want #ff0000", flat.Hex())
	}

	mid := r.shade(red, 2, 4)
	far := r.shade(red, -4, 4)
	beyond := r.shade(red, 9, 4)
	dMid := mid.DistanceLab(r.bg)
	dFar := far.DistanceLab(r.bg)
	if !(dFar < dMid && dMid < flat.DistanceLab(r.bg)) {
		t.Errorf("distances to background: flat %v, mid %v, far %v; want decreasing",
			flat.DistanceLab(r.bg), dMid, dFar)
	}
	if beyond.Hex() != far.Hex() {
		t.Errorf("beyond range = %s, want clamped %s", beyond.Hex(), far.Hex())
	}
	if far.Hex() == r.bg.Hex() {
		t.Error("fade reached the background")
	}
}

func TestRasterFitsGrid(t *testing.T) {
	tests := []struct {
		name         string
		cols, rows   int
		gridW, gridH int
		gx, gy       int
		wantX, wantY int
	}{
		// 3x scale, centred vertically: (10 - 6) / 2 = 2.
		{"upscale", 6, 10, 2, 2, 1, 1, 3, 5},
		// Downscale by half: column 6 lands on pixel 3.
		{"downscale", 4, 4, 8, 8, 6, 2, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRaster(tt.cols, tt.rows)
			r.draw([]splat{{gx: tt.gx, gy: tt.gy, color: red}}, tt.gridW, tt.gridH, 4)
			if _, ok := r.at(tt.wantX, tt.wantY); !ok {
				t.Errorf("pixel (%d, %d) not set", tt.wantX, tt.wantY)
			}
		})
	}
}

func TestBrightnessChar(t *testing.T) {
	if c := brightnessChar(colorful.Color{}); c != asciiRamp[1] {
		t.Errorf("black = %q, want %q", c, asciiRamp[1])
	}
	if c := brightnessChar(colorful.Color{R: 1, G: 1, B: 1}); c != '@' {
		t.Errorf("white = %q, want '@'", c)
	}
}
