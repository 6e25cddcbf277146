package mosaic

import (
	"math/rand/v2"
	"testing"
)

// setupBenchImage creates a w x h opaque image with a diagonal alpha cut so
// roughly half the cells are skipped.
func setupBenchImage(w, h int) *SourceImage {
	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i] = uint8(x)
			pix[i+1] = uint8(y)
			pix[i+2] = 128
			if x > y {
				pix[i+3] = 255
			}
		}
	}
	return &SourceImage{Width: w, Height: h, Pix: pix}
}

func setupBenchController(gridWidth int) *ScatterController {
	img := setupBenchImage(512, 512)
	cfg := DefaultGridConfig()
	cfg.GridWidth = gridWidth
	els, err := Sample(img, cfg)
	if err != nil {
		panic(err)
	}
	c := NewScatterController(els, cfg)
	c.SetRand(rand.New(rand.NewPCG(1, 1)))
	return c
}

// --- Sampling ---

func BenchmarkSample_100(b *testing.B) {
	img := setupBenchImage(1024, 768)
	cfg := DefaultGridConfig()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sample(img, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSample_400(b *testing.B) {
	img := setupBenchImage(1024, 768)
	cfg := DefaultGridConfig()
	cfg.GridWidth = 400
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sample(img, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Animation ---

func BenchmarkTick_100(b *testing.B) {
	c := setupBenchController(100)
	c.Toggle()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Tick()
	}
}

func BenchmarkTick_400(b *testing.B) {
	c := setupBenchController(400)
	c.Toggle()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Tick()
	}
}

func BenchmarkToggle_100(b *testing.B) {
	c := setupBenchController(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Toggle()
	}
}
