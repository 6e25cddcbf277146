package mosaic

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// SourceImage is a decoded, read-only pixel buffer: row-major RGBA with
// straight (non-premultiplied) alpha, 4 bytes per pixel.
type SourceImage struct {
	Width  int
	Height int
	Pix    []byte
}

// NewSourceImage wraps an existing RGBA buffer. The buffer is not copied and
// must not be modified while the image is in use.
func NewSourceImage(width, height int, pix []byte) (*SourceImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, width, height)
	}
	if len(pix) != 4*width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d pixels, want %d",
			ErrInvalidImage, len(pix), width, height, 4*width*height)
	}
	return &SourceImage{Width: width, Height: height, Pix: pix}, nil
}

// FromImage converts any decoded image into a SourceImage. Premultiplied
// formats are converted to straight alpha, so a half-transparent red pixel
// reads back as (255, 0, 0, 128).
func FromImage(img image.Image) (*SourceImage, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrInvalidImage, b)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &SourceImage{Width: b.Dx(), Height: b.Dy(), Pix: nrgba.Pix[:4*b.Dx()*b.Dy()]}, nil
}

// DecodeImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP stream.
func DecodeImage(r io.Reader) (*SourceImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	src, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("decode %s image: %w", format, err)
	}
	return src, nil
}

// LoadImage opens and decodes the image file at path.
func LoadImage(path string) (*SourceImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// At returns the RGBA quadruplet at (x, y). Coordinates must be in range.
func (s *SourceImage) At(x, y int) (r, g, b, a uint8) {
	i := (y*s.Width + x) * 4
	p := s.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// AspectRatio returns Width / Height.
func (s *SourceImage) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}
