package mosaic

import (
	"fmt"
	"math"
)

// GridHeight returns the number of grid rows for an image sampled at
// gridWidth columns: floor(gridWidth / (width/height)). The division is done
// in float64 so that the row count matches the aspect-ratio formula exactly,
// including its rounding. Results past math.MaxInt32 are clamped to it.
func GridHeight(img *SourceImage, gridWidth int) int {
	if img == nil || img.Width <= 0 || img.Height <= 0 || gridWidth <= 0 {
		return 0
	}
	h := math.Floor(float64(gridWidth) / img.AspectRatio())
	if h > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(h)
}

// Sample maps img onto a cfg.GridWidth x GridHeight grid and returns one
// Element per cell whose nearest-neighbour source pixel has alpha >=
// cfg.AlphaThreshold. Elements are emitted row by row, top to bottom.
//
// Base positions are centered on the origin: X = (x - GridWidth/2) * Spacing
// and Y = -(y - GridHeight/2) * Spacing, so image row 0 ends up at the top.
//
// Sample fails before producing anything when img is nil (ErrNoImage), when
// cfg is invalid, when the aspect ratio leaves zero rows (a *ConfigError
// matching ErrEmptyGrid), or when the grid would exceed MaxGridCells. A
// fully transparent image is not an error; it yields an empty slice.
func Sample(img *SourceImage, cfg GridConfig) ([]Element, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) < 4*img.Width*img.Height {
		return nil, ErrInvalidImage
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gridW := cfg.GridWidth
	gridH := GridHeight(img, gridW)
	if gridH <= 0 {
		return nil, &ConfigError{
			Field:  "gridHeight",
			Value:  gridH,
			Reason: "image aspect ratio leaves no rows at this grid width",
		}
	}
	if gridH > MaxGridCells/gridW {
		return nil, &ConfigError{
			Field:  "gridSize",
			Value:  fmt.Sprintf("%dx%d", gridW, gridH),
			Reason: fmt.Sprintf("exceeds %d cells", MaxGridCells),
		}
	}

	// Source columns depend only on x; compute them once.
	srcCols := make([]int, gridW)
	for x := range srcCols {
		srcCols[x] = sourceIndex(x, gridW, img.Width)
	}

	threshold := uint8(cfg.AlphaThreshold)
	halfW := float64(gridW) / 2
	halfH := float64(gridH) / 2

	elements := make([]Element, 0, gridW*gridH)
	for y := 0; y < gridH; y++ {
		srcY := sourceIndex(y, gridH, img.Height)
		by := -(float64(y) - halfH) * cfg.Spacing
		for x := 0; x < gridW; x++ {
			r, g, b, a := img.At(srcCols[x], srcY)
			if a < threshold {
				continue
			}
			base := Vec3{X: (float64(x) - halfW) * cfg.Spacing, Y: by}
			elements = append(elements, newElement(x, y, RGB{r, g, b}, base))
		}
	}
	return elements, nil
}

// sourceIndex maps grid index i of n cells back onto a source axis of the
// given size: floor(i/n * size), clamped to the last pixel.
func sourceIndex(i, n, size int) int {
	s := int(math.Floor(float64(i) / float64(n) * float64(size)))
	if s >= size {
		s = size - 1
	}
	return s
}
