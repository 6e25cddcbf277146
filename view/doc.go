// Package view renders a mosaic with [Ebitengine] as shaded 3D cubes seen
// through an orbiting perspective camera.
//
// [Viewer] implements [ebiten.Game]. Each Update it reads pointer and
// keyboard input, moves the camera, calls [mosaic.ScatterController.Tick]
// once, and advances the water ripple. A click that does not turn into a
// drag calls [mosaic.ScatterController.Toggle].
//
//	ctrl := mosaic.NewScatterController(elements, cfg)
//	v := view.NewViewer(ctrl, view.DefaultConfig())
//	if err := view.Run(v, view.RunConfig{Title: "Mosaic", Width: 1280, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
//
// Controls: click toggles the scatter, drag orbits, the wheel zooms, Space
// toggles and R eases the camera back to its starting view.
//
// [Ebitengine]: https://ebitengine.org
package view
