// Package mosaic turns a raster image into a grid of cubes and animates them
// between a flat mosaic and a scattered 3D cloud.
//
// The package is the renderer-agnostic core. It has two parts:
//
//   - [Sample] reads a decoded [SourceImage] and produces one [Element] per
//     opaque cell of a fixed-width logical grid.
//   - [ScatterController] owns those elements, holds the scattered flag, and
//     moves every element's depth toward its target on each [ScatterController.Tick].
//
// # Quick start
//
//	img, err := mosaic.LoadImage("island.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg := mosaic.DefaultGridConfig()
//	elements, err := mosaic.Sample(img, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl := mosaic.NewScatterController(elements, cfg)
//
//	// once per frame:
//	ctrl.Tick()
//	// on click:
//	ctrl.Toggle()
//
// The core never schedules frames itself. The [view] package drives it from
// an Ebitengine game loop and the [term] package from a bubbletea program;
// any other loop that calls Tick once per frame works the same way.
//
// # Depth animation
//
// Tick moves the current depth a fixed fraction ([GridConfig.BlendFactor]) of
// the remaining distance toward the target, so the remaining distance shrinks
// by (1 - BlendFactor) every frame. Toggle is the only operation that changes
// targets: scattering draws a new uniform offset in
// [-DepthRange/2, DepthRange/2) for every element, unscattering sets all
// targets back to zero.
//
// [view]: https://pkg.go.dev/github.com/phanxgames/mosaic/view
// [term]: https://pkg.go.dev/github.com/phanxgames/mosaic/term
package mosaic
