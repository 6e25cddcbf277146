package term

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/phanxgames/mosaic"
)

// asciiRamp is the brightness ramp used when the terminal has no color,
// darkest first.
const asciiRamp = " .:-=+*#%@"

// splat is one element ready to rasterize.
type splat struct {
	gx, gy int
	color  mosaic.RGB
	depth  float64
}

// raster is a z-buffered canvas of virtual pixels. Half-block output packs
// two pixel rows into each terminal row, so pixels are roughly square.
type raster struct {
	profile  termenv.Profile
	bg       colorful.Color
	parallax float64
	fade     float64

	cols, rows int
	depth      []float64
	pix        []colorful.Color
	set        []bool

	sb strings.Builder
}

// resize sets the canvas size in virtual pixels and clears it.
func (r *raster) resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	r.cols, r.rows = cols, rows
	n := cols * rows
	if cap(r.depth) < n {
		r.depth = make([]float64, n)
		r.pix = make([]colorful.Color, n)
		r.set = make([]bool, n)
	}
	r.depth = r.depth[:n]
	r.pix = r.pix[:n]
	r.set = r.set[:n]
	r.clear()
}

func (r *raster) clear() {
	for i := range r.set {
		r.set[i] = false
		r.depth[i] = math.Inf(-1)
	}
}

// draw fits a gridW x gridH mosaic into the canvas and plots every splat.
// Each splat shifts sideways by round(depth * parallax) pixels and fades
// toward the background with |depth| / halfRange. Where splats overlap,
// the one with the larger depth (nearer the viewer) wins.
func (r *raster) draw(splats []splat, gridW, gridH int, halfRange float64) {
	r.clear()
	if gridW <= 0 || gridH <= 0 || r.cols == 0 || r.rows == 0 {
		return
	}

	scale := math.Min(float64(r.cols)/float64(gridW), float64(r.rows)/float64(gridH))
	block := 1
	if scale >= 1 {
		block = int(scale)
		scale = float64(block)
	}
	offX := (r.cols - int(float64(gridW)*scale)) / 2
	offY := (r.rows - int(float64(gridH)*scale)) / 2

	for i := range splats {
		s := &splats[i]
		x0 := offX + int(float64(s.gx)*scale) + int(math.Round(s.depth*r.parallax))
		y0 := offY + int(float64(s.gy)*scale)
		c := r.shade(s.color, s.depth, halfRange)
		for y := y0; y < y0+block; y++ {
			if y < 0 || y >= r.rows {
				continue
			}
			for x := x0; x < x0+block; x++ {
				if x < 0 || x >= r.cols {
					continue
				}
				idx := y*r.cols + x
				if r.set[idx] && s.depth <= r.depth[idx] {
					continue
				}
				r.set[idx] = true
				r.depth[idx] = s.depth
				r.pix[idx] = c
			}
		}
	}
}

// shade blends c toward the background in Lab space by its distance from
// the mosaic plane.
func (r *raster) shade(c mosaic.RGB, depth, halfRange float64) colorful.Color {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if halfRange <= 0 || depth == 0 || r.fade == 0 {
		return col
	}
	t := math.Min(math.Abs(depth)/halfRange, 1) * r.fade
	return col.BlendLab(r.bg, t).Clamped()
}

// at returns the pixel color at (x, y), or the background when empty.
func (r *raster) at(x, y int) (colorful.Color, bool) {
	if y >= r.rows {
		return r.bg, false
	}
	idx := y*r.cols + x
	if !r.set[idx] {
		return r.bg, false
	}
	return r.pix[idx], true
}

// String encodes the canvas as terminal rows.
func (r *raster) String() string {
	r.sb.Reset()
	if r.cols == 0 || r.rows == 0 {
		return ""
	}
	if r.profile == termenv.Ascii {
		r.writeASCII()
	} else {
		r.writeHalfBlock()
	}
	return r.sb.String()
}

// writeHalfBlock emits "▀" cells with the top pixel as foreground and the
// bottom pixel as background, skipping repeated color sequences.
func (r *raster) writeHalfBlock() {
	termRows := (r.rows + 1) / 2
	reset := termenv.CSI + termenv.ResetSeq + "m"

	for row := range termRows {
		var lastFg, lastBg string
		for col := range r.cols {
			top, _ := r.at(col, row*2)
			bot, _ := r.at(col, row*2+1)

			fg := r.seq(top, false)
			bg := r.seq(bot, true)
			if fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			if bg != lastBg {
				r.sb.WriteString(bg)
				lastBg = bg
			}
			r.sb.WriteString("▀")
		}
		r.sb.WriteString(reset)
		if row < termRows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

func (r *raster) seq(c colorful.Color, bg bool) string {
	s := r.profile.Color(c.Hex()).Sequence(bg)
	if s == "" {
		return ""
	}
	return termenv.CSI + s + "m"
}

// writeASCII maps each pair of pixel rows to one brightness character.
// Empty cells stay blank.
func (r *raster) writeASCII() {
	termRows := (r.rows + 1) / 2
	for row := range termRows {
		for col := range r.cols {
			top, okTop := r.at(col, row*2)
			bot, okBot := r.at(col, row*2+1)
			switch {
			case okTop && okBot:
				r.sb.WriteByte(brightnessChar(top.BlendRgb(bot, 0.5)))
			case okTop:
				r.sb.WriteByte(brightnessChar(top))
			case okBot:
				r.sb.WriteByte(brightnessChar(bot))
			default:
				r.sb.WriteByte(' ')
			}
		}
		if row < termRows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

// brightnessChar maps a color's perceived lightness to the ramp. Any
// plotted pixel gets at least the first visible character.
func brightnessChar(c colorful.Color) byte {
	l, _, _ := c.Lab()
	idx := 1 + int(math.Round(math.Max(0, math.Min(l, 1))*float64(len(asciiRamp)-2)))
	return asciiRamp[idx]
}
