package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels. Zero values
	// default to 1280x720.
	Width, Height int
}

// Run opens a resizable window and runs v until the window is closed. It
// blocks and returns the error from ebiten.RunGame, if any.
func Run(v *Viewer, cfg RunConfig) error {
	if v == nil {
		panic("mosaic: Run called with a nil viewer")
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	v.cam.SetViewport(float64(w), float64(h))

	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
