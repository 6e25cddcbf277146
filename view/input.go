package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

const defaultDragDeadZone = 4.0 // pixels

// pointerState tracks the primary pointer between frames.
type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
}

// frameInput is one frame of device state. Reading it is separate from
// acting on it so the state machine runs without a window.
type frameInput struct {
	x, y       float64
	pressed    bool
	wheel      float64
	toggle     bool
	reset      bool
	screenshot bool
}

var touchIDs []ebiten.TouchID

// pollInput reads the mouse, the first touch and the keyboard.
func pollInput() frameInput {
	var in frameInput

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		in.x, in.y = float64(tx), float64(ty)
		in.pressed = true
	} else {
		mx, my := ebiten.CursorPosition()
		in.x, in.y = float64(mx), float64(my)
		in.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	_, in.wheel = ebiten.Wheel()
	in.toggle = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.screenshot = inpututil.IsKeyJustPressed(ebiten.KeyP)
	return in
}

// processInput applies one frame of input: pointer, wheel and keys. An
// injected pointer event, if queued, replaces the real pointer this frame.
func (v *Viewer) processInput(in frameInput) {
	if !v.processInjectedInput() {
		v.processPointer(in.x, in.y, in.pressed)
	}

	if in.wheel != 0 {
		v.cam.Zoom(math.Pow(1+v.cfg.ZoomSpeed, -in.wheel))
	}
	if in.toggle {
		v.ctrl.Toggle()
	}
	if in.reset {
		v.cam.ResetTo(v.cfg.ResetDuration, ease.OutCubic)
	}
	if in.screenshot {
		v.Screenshot("manual")
	}
}

// processPointer runs the press/drag/release state machine. A release that
// never left the dead zone is a click and toggles the scatter. Movement past
// the dead zone orbits the camera for the rest of the press.
func (v *Viewer) processPointer(x, y float64, pressed bool) {
	ps := &v.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		if ps.dragging {
			v.cam.Drag(x-ps.lastX, y-ps.lastY)
		} else {
			v.ctrl.Toggle()
		}
		ps.down = false
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > v.cfg.DragDeadZone {
				ps.dragging = true
				// Orbit from the press point so the dead zone is not lost.
				ps.lastX, ps.lastY = ps.startX, ps.startY
			}
		}
		if ps.dragging {
			v.cam.Drag(x-ps.lastX, y-ps.lastY)
		}
		ps.lastX, ps.lastY = x, y

	default:
		ps.lastX, ps.lastY = x, y
	}
}
