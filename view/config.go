package view

import (
	"math"

	"github.com/phanxgames/mosaic"
)

// Config holds the viewer's camera, lighting, water and input settings.
// Start from DefaultConfig and override fields.
type Config struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far are the clip plane distances.
	Near, Far float64

	// StartDistance is the initial camera distance from the mosaic center.
	StartDistance float64
	// MinDistance and MaxDistance clamp zooming.
	MinDistance, MaxDistance float64
	// MinPolar and MaxPolar clamp the camera's angle from the vertical axis,
	// in radians. Pi/2 looks at the mosaic straight on.
	MinPolar, MaxPolar float64

	// SpringFrequency and SpringDamping shape the camera's damped follow of
	// its orbit goal. A damping of 1 is critically damped.
	SpringFrequency float64
	SpringDamping   float64
	// RotateSpeed scales drag-to-orbit. At 1, dragging the full viewport
	// height turns the camera a full circle.
	RotateSpeed float64
	// ZoomSpeed is the distance factor applied per wheel notch.
	ZoomSpeed float64
	// ResetDuration is how long the R key takes to ease the camera home,
	// in seconds.
	ResetDuration float32

	// Lighting shades cube faces.
	Lighting Lighting

	// Water enables the ripple plane below the mosaic.
	Water bool
	// WaterLevel is the plane's height.
	WaterLevel float64
	// WaterColor and WaterOpacity tint the plane.
	WaterColor   mosaic.RGB
	WaterOpacity float64
	// WaterSpeed is the ripple offset added every update.
	WaterSpeed float64
	// WaterExtent is the half-width of the drawn plane around the camera
	// target. WaterTiles is the number of quads per side.
	WaterExtent float64
	WaterTiles  int

	// Background is the clear color.
	Background mosaic.RGB

	// DragDeadZone is how far, in pixels, the pointer may move while pressed
	// and still count as a click.
	DragDeadZone float64

	// ShowHUD draws the FPS and help overlay.
	ShowHUD bool

	// ScreenshotDir receives PNG captures from the P key and script
	// "screenshot" steps.
	ScreenshotDir string
}

// DefaultConfig returns the reference scene: a 75 degree camera ten units in
// front of the mosaic, orbit distance 5-20 and polar angle pi/4-pi/2, an
// ambient light at 0.5 plus a directional light at 1.5 from (-3, 2, 8), and a
// blue water plane at y = -4.
func DefaultConfig() Config {
	return Config{
		FOV:             75,
		Near:            0.1,
		Far:             100,
		StartDistance:   10,
		MinDistance:     5,
		MaxDistance:     20,
		MinPolar:        math.Pi / 4,
		MaxPolar:        math.Pi / 2,
		SpringFrequency: 8,
		SpringDamping:   1,
		RotateSpeed:     1,
		ZoomSpeed:       0.1,
		ResetDuration:   0.8,
		Lighting:        DefaultLighting(),
		Water:           true,
		WaterLevel:      -4,
		WaterColor:      mosaic.RGB{R: 0x40, G: 0x60, B: 0xff},
		WaterOpacity:    0.9,
		WaterSpeed:      0.0005,
		WaterExtent:     30,
		WaterTiles:      32,
		Background:      mosaic.RGB{R: 0, G: 0, B: 0},
		DragDeadZone:    defaultDragDeadZone,
		ShowHUD:         true,
		ScreenshotDir:   "screenshots",
	}
}
