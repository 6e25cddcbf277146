package mosaic

// Element is one opaque grid cell mapped to one cube. Grid coordinates,
// color and base position are fixed when the sampler creates it. The two
// depth fields are written only by the ScatterController that owns it.
//
// Renderers keep a *Element obtained from ScatterController.Element as a
// non-owning back-reference and read Position each frame.
type Element struct {
	gridX, gridY int
	color        RGB
	base         Vec3

	depth       float64 // current depth, advanced by Tick
	targetDepth float64 // written only by Toggle
}

// newElement creates an element resting on the mosaic plane.
func newElement(gridX, gridY int, color RGB, base Vec3) Element {
	return Element{gridX: gridX, gridY: gridY, color: color, base: base}
}

// GridX returns the element's column in the logical grid.
func (e *Element) GridX() int { return e.gridX }

// GridY returns the element's row in the logical grid. Row 0 is the top of
// the source image.
func (e *Element) GridY() int { return e.gridY }

// Color returns the sampled color.
func (e *Element) Color() RGB { return e.color }

// BasePosition returns the element's resting position on the mosaic plane.
// Z is always 0.
func (e *Element) BasePosition() Vec3 { return e.base }

// Depth returns the current depth offset.
func (e *Element) Depth() float64 { return e.depth }

// TargetDepth returns the depth the element is moving toward.
func (e *Element) TargetDepth() float64 { return e.targetDepth }

// Position returns the element's current position: the base X and Y with
// the current depth as Z.
func (e *Element) Position() Vec3 {
	return Vec3{X: e.base.X, Y: e.base.Y, Z: e.depth}
}

// Remaining returns |target - current|.
func (e *Element) Remaining() float64 {
	d := e.targetDepth - e.depth
	if d < 0 {
		return -d
	}
	return d
}
