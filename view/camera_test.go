package view

import (
	"math"
	"testing"

	"github.com/phanxgames/mosaic"
	"github.com/tanema/gween/ease"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCamera() *Camera {
	return NewCamera(DefaultConfig(), 800, 600)
}

// settle runs the camera for n updates at 60 TPS.
func settle(c *Camera, n int) {
	for range n {
		c.update(1.0 / 60)
	}
}

func TestCameraDefaults(t *testing.T) {
	cam := newTestCamera()
	p := cam.Position()
	if !approxEqual(p.X, 0, epsilon) || !approxEqual(p.Y, 0, epsilon) || !approxEqual(p.Z, 10, epsilon) {
		t.Errorf("Position = %+v, want (0, 0, 10)", p)
	}
	if cam.Polar() != math.Pi/2 {
		t.Errorf("Polar = %v, want pi/2", cam.Polar())
	}
	if w, h := cam.Viewport(); w != 800 || h != 600 {
		t.Errorf("Viewport = %vx%v, want 800x600", w, h)
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := newTestCamera()
	sx, sy, depth, ok := cam.Project(mosaic.Vec3{})
	if !ok {
		t.Fatal("origin not visible")
	}
	if !approxEqual(sx, 400, 1e-6) || !approxEqual(sy, 300, 1e-6) {
		t.Errorf("Project(origin) = (%v, %v), want (400, 300)", sx, sy)
	}
	if !approxEqual(depth, 10, 1e-6) {
		t.Errorf("depth = %v, want 10", depth)
	}
}

func TestCameraProjectAxes(t *testing.T) {
	cam := newTestCamera()
	rx, _, _, _ := cam.Project(mosaic.Vec3{X: 1})
	if rx <= 400 {
		t.Errorf("+X projects to x = %v, want right of centre", rx)
	}
	_, uy, _, _ := cam.Project(mosaic.Vec3{Y: 1})
	if uy >= 300 {
		t.Errorf("+Y projects to y = %v, want above centre", uy)
	}
	_, _, near, _ := cam.Project(mosaic.Vec3{Z: 2})
	_, _, far, _ := cam.Project(mosaic.Vec3{Z: -2})
	if near >= far {
		t.Errorf("depth toward camera %v >= depth away %v", near, far)
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := newTestCamera()
	if _, _, _, ok := cam.Project(mosaic.Vec3{Z: 20}); ok {
		t.Error("point behind the camera reported visible")
	}
	if _, _, _, ok := cam.Project(mosaic.Vec3{Z: 9.95}); ok {
		t.Error("point inside the near plane reported visible")
	}
}

func TestCameraSetViewport(t *testing.T) {
	cam := newTestCamera()
	x0, _, _, _ := cam.Project(mosaic.Vec3{X: 1})

	cam.SetViewport(400, 600)
	sx, sy, _, _ := cam.Project(mosaic.Vec3{})
	if !approxEqual(sx, 200, 1e-6) || !approxEqual(sy, 300, 1e-6) {
		t.Errorf("Project(origin) = (%v, %v), want (200, 300)", sx, sy)
	}
	// Same vertical FOV, so one unit spans the same number of pixels.
	x1, _, _, _ := cam.Project(mosaic.Vec3{X: 1})
	if !approxEqual(x1-200, x0-400, 1e-6) {
		t.Errorf("unit width = %v after resize, want %v", x1-200, x0-400)
	}
}

func TestCameraPolarClamp(t *testing.T) {
	cam := newTestCamera()
	cfg := DefaultConfig()

	cam.Orbit(0, 10)
	settle(cam, 300)
	if cam.Polar() > cfg.MaxPolar+epsilon {
		t.Errorf("Polar = %v, exceeds max %v", cam.Polar(), cfg.MaxPolar)
	}

	cam.Orbit(0, -10)
	for range 300 {
		cam.update(1.0 / 60)
		if p := cam.Polar(); p < cfg.MinPolar-epsilon || p > cfg.MaxPolar+epsilon {
			t.Fatalf("Polar = %v, outside [%v, %v]", p, cfg.MinPolar, cfg.MaxPolar)
		}
	}
	if !approxEqual(cam.Polar(), cfg.MinPolar, 1e-3) {
		t.Errorf("Polar = %v, want min %v", cam.Polar(), cfg.MinPolar)
	}
	// Above the mosaic the camera looks down.
	if cam.Position().Y <= 0 {
		t.Errorf("Position.Y = %v, want > 0", cam.Position().Y)
	}
}

func TestCameraZoomClamp(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"in", 0.01, 5},
		{"out", 100, 20},
		{"within", 1.5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newTestCamera()
			cam.Zoom(tt.factor)
			for range 600 {
				cam.update(1.0 / 60)
				if d := cam.Distance(); d < 5-epsilon || d > 20+epsilon {
					t.Fatalf("Distance = %v, outside [5, 20]", d)
				}
			}
			if !approxEqual(cam.Distance(), tt.want, 1e-3) {
				t.Errorf("Distance = %v, want %v", cam.Distance(), tt.want)
			}
		})
	}
}

func TestCameraZoomIgnoresNonPositive(t *testing.T) {
	cam := newTestCamera()
	cam.Zoom(0)
	cam.Zoom(-2)
	settle(cam, 60)
	if !approxEqual(cam.Distance(), 10, epsilon) {
		t.Errorf("Distance = %v, want 10", cam.Distance())
	}
}

func TestCameraSpringFollows(t *testing.T) {
	cam := newTestCamera()
	cam.Orbit(1, 0)

	cam.update(1.0 / 60)
	if cam.Azimuth() <= 0 || cam.Azimuth() >= 1 {
		t.Errorf("after one update Azimuth = %v, want strictly between 0 and 1", cam.Azimuth())
	}
	settle(cam, 300)
	if !approxEqual(cam.Azimuth(), 1, 1e-3) {
		t.Errorf("Azimuth = %v, want 1", cam.Azimuth())
	}
}

func TestCameraDrag(t *testing.T) {
	cam := newTestCamera()
	// A full viewport height of drag turns a full circle.
	cam.Drag(600, 0)
	settle(cam, 600)
	if !approxEqual(cam.Azimuth(), -2*math.Pi, 1e-3) {
		t.Errorf("Azimuth = %v, want -2pi", cam.Azimuth())
	}
}

func TestCameraResetTo(t *testing.T) {
	cam := newTestCamera()
	cam.Orbit(2*math.Pi+0.3, -0.5)
	cam.Zoom(1.5)
	settle(cam, 300)

	cam.ResetTo(0.5, ease.Linear)
	if !cam.Resetting() {
		t.Fatal("Resetting = false right after ResetTo")
	}
	settle(cam, 40)
	if cam.Resetting() {
		t.Error("Resetting = true after the tween duration")
	}
	settle(cam, 600)

	// The azimuth unwinds to the nearest whole turn, not back to zero.
	if !approxEqual(cam.Azimuth(), 2*math.Pi, 1e-3) {
		t.Errorf("Azimuth = %v, want 2pi", cam.Azimuth())
	}
	if !approxEqual(cam.Polar(), math.Pi/2, 1e-3) {
		t.Errorf("Polar = %v, want pi/2", cam.Polar())
	}
	if !approxEqual(cam.Distance(), 10, 1e-3) {
		t.Errorf("Distance = %v, want 10", cam.Distance())
	}
}

func TestCameraOrbitCancelsReset(t *testing.T) {
	cam := newTestCamera()
	cam.Orbit(1, 0)
	cam.ResetTo(1, ease.OutCubic)
	cam.Orbit(0.1, 0)
	if cam.Resetting() {
		t.Error("Orbit did not cancel the reset")
	}
}
