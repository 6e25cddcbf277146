package view

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/mosaic"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cameraTPS is the update rate the camera spring is tuned for.
const cameraTPS = 60

// resetAnim holds the tweens easing the orbit goal back home.
type resetAnim struct {
	azimuth  *gween.Tween
	polar    *gween.Tween
	distance *gween.Tween
	done     [3]bool
}

// Camera is a perspective camera orbiting Target. Input moves a goal
// position (azimuth, polar angle, distance); every update the actual
// position follows the goal on a damped spring.
type Camera struct {
	// Target is the world-space point the camera looks at.
	Target mosaic.Vec3

	// FOV is the vertical field of view in degrees.
	FOV       float64
	Near, Far float64

	MinDistance, MaxDistance float64
	MinPolar, MaxPolar       float64

	// RotateSpeed scales Drag.
	RotateSpeed float64

	width, height float64

	azimuth, polar, distance    float64
	azVel, polarVel, distVel    float64
	goalAz, goalPolar, goalDist float64
	homeAz, homePolar, homeDist float64
	spring                      harmonica.Spring

	reset *resetAnim

	viewProj mgl64.Mat4
	eye      mosaic.Vec3
	dirty    bool
}

// NewCamera creates a camera from cfg looking at the origin from
// cfg.StartDistance along +Z, with the given viewport size in pixels.
func NewCamera(cfg Config, width, height float64) *Camera {
	c := &Camera{
		FOV:         cfg.FOV,
		Near:        cfg.Near,
		Far:         cfg.Far,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		MinPolar:    cfg.MinPolar,
		MaxPolar:    cfg.MaxPolar,
		RotateSpeed: cfg.RotateSpeed,
		width:       width,
		height:      height,
		spring:      harmonica.NewSpring(harmonica.FPS(cameraTPS), cfg.SpringFrequency, cfg.SpringDamping),
		dirty:       true,
	}
	c.homeAz = 0
	c.homePolar = c.clampPolar(math.Pi / 2)
	c.homeDist = c.clampDistance(cfg.StartDistance)
	c.azimuth, c.goalAz = c.homeAz, c.homeAz
	c.polar, c.goalPolar = c.homePolar, c.homePolar
	c.distance, c.goalDist = c.homeDist, c.homeDist
	return c
}

// SetViewport updates the viewport size, e.g. after a window resize. The
// projection aspect ratio follows it.
func (c *Camera) SetViewport(width, height float64) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.dirty = true
}

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() (width, height float64) {
	return c.width, c.height
}

// Orbit moves the orbit goal by the given azimuth and polar deltas in
// radians. The polar goal is clamped to [MinPolar, MaxPolar]. An active
// reset is cancelled.
func (c *Camera) Orbit(dAzimuth, dPolar float64) {
	c.reset = nil
	c.goalAz += dAzimuth
	c.goalPolar = c.clampPolar(c.goalPolar + dPolar)
}

// Drag orbits by a pointer movement in pixels. Dragging right swings the
// camera left around the target; dragging the full viewport height turns a
// full circle at RotateSpeed 1.
func (c *Camera) Drag(dx, dy float64) {
	if c.height <= 0 {
		return
	}
	k := 2 * math.Pi * c.RotateSpeed / c.height
	c.Orbit(-dx*k, -dy*k)
}

// Zoom multiplies the distance goal by factor, clamped to [MinDistance,
// MaxDistance].
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.reset = nil
	c.goalDist = c.clampDistance(c.goalDist * factor)
}

// ResetTo eases the orbit goal back to the starting view over duration
// seconds. The azimuth unwinds to the nearest full turn so the camera never
// spins more than half a circle.
func (c *Camera) ResetTo(duration float32, easeFn ease.TweenFunc) {
	home := c.homeAz + 2*math.Pi*math.Round((c.goalAz-c.homeAz)/(2*math.Pi))
	c.reset = &resetAnim{
		azimuth:  gween.New(float32(c.goalAz), float32(home), duration, easeFn),
		polar:    gween.New(float32(c.goalPolar), float32(c.homePolar), duration, easeFn),
		distance: gween.New(float32(c.goalDist), float32(c.homeDist), duration, easeFn),
	}
}

// Resetting reports whether a ResetTo animation is still running.
func (c *Camera) Resetting() bool {
	return c.reset != nil
}

// update advances the reset tweens and the follow spring by one frame.
func (c *Camera) update(dt float32) {
	if r := c.reset; r != nil {
		fields := [3]*float64{&c.goalAz, &c.goalPolar, &c.goalDist}
		tweens := [3]*gween.Tween{r.azimuth, r.polar, r.distance}
		for i, tw := range tweens {
			if r.done[i] {
				continue
			}
			val, done := tw.Update(dt)
			*fields[i] = float64(val)
			r.done[i] = done
		}
		if r.done[0] && r.done[1] && r.done[2] {
			c.reset = nil
		}
		c.goalPolar = c.clampPolar(c.goalPolar)
		c.goalDist = c.clampDistance(c.goalDist)
	}

	prevAz, prevPolar, prevDist := c.azimuth, c.polar, c.distance
	c.azimuth, c.azVel = c.spring.Update(c.azimuth, c.azVel, c.goalAz)
	c.polar, c.polarVel = c.spring.Update(c.polar, c.polarVel, c.goalPolar)
	c.distance, c.distVel = c.spring.Update(c.distance, c.distVel, c.goalDist)
	c.polar = c.clampPolar(c.polar)
	c.distance = c.clampDistance(c.distance)

	if c.azimuth != prevAz || c.polar != prevPolar || c.distance != prevDist {
		c.dirty = true
	}
}

// Azimuth returns the current angle around the vertical axis in radians.
func (c *Camera) Azimuth() float64 { return c.azimuth }

// Polar returns the current angle from the vertical axis in radians.
func (c *Camera) Polar() float64 { return c.polar }

// Distance returns the current distance from Target.
func (c *Camera) Distance() float64 { return c.distance }

// Position returns the camera's world-space eye position.
func (c *Camera) Position() mosaic.Vec3 {
	c.computeViewProj()
	return c.eye
}

// MarkDirty forces the matrices to be recomputed, e.g. after changing Target
// or FOV directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Project maps a world-space point to viewport pixels. depth is the distance
// along the view axis. ok is false for points behind the near plane.
func (c *Camera) Project(p mosaic.Vec3) (sx, sy, depth float64, ok bool) {
	c.computeViewProj()
	clip := c.viewProj.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip.W()
	if w < c.Near {
		return 0, 0, w, false
	}
	nx := clip.X() / w
	ny := clip.Y() / w
	sx = (nx*0.5 + 0.5) * c.width
	sy = (1 - (ny*0.5 + 0.5)) * c.height
	return sx, sy, w, true
}

// computeViewProj recomputes the cached eye position and view-projection
// matrix if dirty.
//
// eye = Target + distance * (sin(polar)sin(az), cos(polar), sin(polar)cos(az))
func (c *Camera) computeViewProj() {
	if !c.dirty {
		return
	}
	c.dirty = false

	sinP, cosP := math.Sincos(c.polar)
	sinA, cosA := math.Sincos(c.azimuth)
	c.eye = mosaic.Vec3{
		X: c.Target.X + c.distance*sinP*sinA,
		Y: c.Target.Y + c.distance*cosP,
		Z: c.Target.Z + c.distance*sinP*cosA,
	}

	aspect := 1.0
	if c.width > 0 && c.height > 0 {
		aspect = c.width / c.height
	}
	view := mgl64.LookAtV(
		mgl64.Vec3{c.eye.X, c.eye.Y, c.eye.Z},
		mgl64.Vec3{c.Target.X, c.Target.Y, c.Target.Z},
		mgl64.Vec3{0, 1, 0},
	)
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	c.viewProj = proj.Mul4(view)
}

func (c *Camera) clampPolar(p float64) float64 {
	return math.Max(c.MinPolar, math.Min(p, c.MaxPolar))
}

func (c *Camera) clampDistance(d float64) float64 {
	return math.Max(c.MinDistance, math.Min(d, c.MaxDistance))
}
