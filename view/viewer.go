package view

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mosaic"
)

// Viewer draws a ScatterController's elements as lit cubes and drives the
// controller from input. It implements ebiten.Game.
type Viewer struct {
	ctrl *mosaic.ScatterController
	cfg  Config
	cam  *Camera

	faces   faceList
	water   water
	pointer pointerState

	injectQueue     []pointerEvent
	screenshotQueue []string

	script             *Script
	exitWhenScriptDone bool
}

// NewViewer creates a viewer for ctrl. The camera starts cfg.StartDistance in
// front of the mosaic centre.
func NewViewer(ctrl *mosaic.ScatterController, cfg Config) *Viewer {
	if ctrl == nil {
		panic("mosaic: NewViewer called with a nil controller")
	}
	if ctrl.Len() == 0 {
		log.Printf("mosaic: viewer has no elements to draw")
	}
	return &Viewer{
		ctrl: ctrl,
		cfg:  cfg,
		cam:  NewCamera(cfg, 1, 1),
	}
}

// Controller returns the controller the viewer animates.
func (v *Viewer) Controller() *mosaic.ScatterController {
	return v.ctrl
}

// Camera returns the viewer's camera.
func (v *Viewer) Camera() *Camera {
	return v.cam
}

// Config returns the viewer's configuration.
func (v *Viewer) Config() Config {
	return v.cfg
}

// Update implements ebiten.Game: script, input, camera, one controller
// Tick, water. It returns ebiten.Termination once an attached script set to
// exit has finished and Draw has written its queued screenshots.
func (v *Viewer) Update() error {
	v.update(pollInput(), 1/float32(ebiten.TPS()))
	if v.scriptFinished() {
		return ebiten.Termination
	}
	return nil
}

// scriptFinished reports whether an exiting script is done. Screenshots are
// flushed in Draw, so a non-empty queue holds the exit for one more frame.
func (v *Viewer) scriptFinished() bool {
	return v.script != nil && v.exitWhenScriptDone && v.script.Done() &&
		len(v.screenshotQueue) == 0
}

// update is Update without the device reads.
func (v *Viewer) update(in frameInput, dt float32) {
	if v.script != nil {
		v.script.step(v)
	}
	v.processInput(in)
	v.cam.update(dt)
	v.ctrl.Tick()
	if v.cfg.Water {
		v.water.advance(v.cfg.WaterSpeed)
	}
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	bg := v.cfg.Background
	screen.Fill(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff})

	b := screen.Bounds()
	v.cam.SetViewport(float64(b.Dx()), float64(b.Dy()))

	if v.cfg.Water {
		v.water.build(v.cam, &v.cfg)
		v.water.draw(screen)
	}

	v.buildFaces()
	v.faces.draw(screen)

	// Captures exclude the overlay.
	v.flushScreenshots(screen)

	if v.cfg.ShowHUD {
		v.drawHUD(screen)
	}
}

// buildFaces meshes, sorts and batches the current element positions.
func (v *Viewer) buildFaces() {
	elems := v.ctrl.Elements()
	v.faces.reset()
	v.faces.shade(elems, v.cfg.Lighting)
	v.faces.addCubes(v.cam, elems, v.ctrl.Config().CubeSize)
	v.faces.build()
}

// Layout implements ebiten.Game. The screen follows the window size, so a
// resize updates the camera's aspect ratio.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.cam.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
