package mosaic

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSourceImageValidates(t *testing.T) {
	if _, err := NewSourceImage(2, 2, make([]byte, 16)); err != nil {
		t.Errorf("valid buffer: %v", err)
	}
	if _, err := NewSourceImage(2, 2, make([]byte, 15)); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("short buffer: err = %v, want ErrInvalidImage", err)
	}
	if _, err := NewSourceImage(0, 2, nil); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("zero width: err = %v, want ErrInvalidImage", err)
	}
}

func TestSourceImageAt(t *testing.T) {
	pix := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	img, err := NewSourceImage(2, 2, pix)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := img.At(1, 1)
	if r != 13 || g != 14 || b != 15 || a != 16 {
		t.Errorf("At(1, 1) = %d %d %d %d", r, g, b, a)
	}
	if img.AspectRatio() != 1 {
		t.Errorf("AspectRatio = %v, want 1", img.AspectRatio())
	}
}

func TestFromImageStraightAlpha(t *testing.T) {
	// Premultiplied half-transparent red.
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 255, A: 128})

	img, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := img.At(0, 0)
	if r != 255 || g != 0 || b != 0 || a != 128 {
		t.Errorf("At(0, 0) = %d %d %d %d, want 255 0 0 128", r, g, b, a)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	src.Set(10, 20, color.NRGBA{R: 7, G: 8, B: 9, A: 255})

	img, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", img.Width, img.Height)
	}
	r, g, b, a := img.At(0, 0)
	if r != 7 || g != 8 || b != 9 || a != 255 {
		t.Errorf("At(0, 0) = %d %d %d %d", r, g, b, a)
	}
}

func TestFromImageEmpty(t *testing.T) {
	if _, err := FromImage(image.NewNRGBA(image.Rectangle{})); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("err = %v, want ErrInvalidImage", err)
	}
}

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{G: 255, A: 255})
	src.Set(2, 0, color.NRGBA{})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImagePNG(t *testing.T) {
	img, err := DecodeImage(bytes.NewReader(encodeTestPNG(t)))
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Width != 3 || img.Height != 1 {
		t.Fatalf("size = %dx%d, want 3x1", img.Width, img.Height)
	}
	if _, g, _, a := img.At(1, 0); g != 255 || a != 255 {
		t.Errorf("pixel 1 = g%d a%d, want opaque green", g, a)
	}
	if _, _, _, a := img.At(2, 0); a != 0 {
		t.Errorf("pixel 2 alpha = %d, want 0", a)
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strip.png")
	if err := os.WriteFile(path, encodeTestPNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Width != 3 {
		t.Errorf("Width = %d, want 3", img.Width)
	}

	if _, err := LoadImage(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want os.ErrNotExist", err)
	}
}
