package mosaic

import (
	"math/rand/v2"
	"time"
)

// ScatterController owns the sampled elements and animates their depth
// between the flat mosaic (every target 0) and a scattered cloud (random
// targets). It is single-threaded: call Tick once per frame and Toggle from
// input handling on the same goroutine, in any order.
type ScatterController struct {
	elements  []Element
	cfg       GridConfig
	scattered bool
	rng       *rand.Rand
	ticks     uint64

	debug bool
}

// NewScatterController takes ownership of elements; the caller must not keep
// or modify the slice afterwards. cfg supplies BlendFactor and DepthRange and
// is expected to be the config the elements were sampled with.
func NewScatterController(elements []Element, cfg GridConfig) *ScatterController {
	return &ScatterController{
		elements: elements,
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetRand replaces the random source used by Toggle. Useful for reproducible
// layouts. A nil r restores a randomly seeded source.
func (c *ScatterController) SetRand(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c.rng = r
}

// Toggle flips between scattered and flat and reassigns every target depth.
// Scattering draws a fresh, independent value in [-DepthRange/2,
// DepthRange/2) per element, so scattering twice gives two different
// layouts. Flattening sets every target to exactly 0.
func (c *ScatterController) Toggle() {
	c.scattered = !c.scattered
	if !c.scattered {
		for i := range c.elements {
			c.elements[i].targetDepth = 0
		}
		return
	}
	depthRange := c.cfg.DepthRange
	for i := range c.elements {
		c.elements[i].targetDepth = (c.rng.Float64() - 0.5) * depthRange
	}
}

// Tick advances every element one frame: depth = lerp(depth, target,
// BlendFactor). Only the current depth is written. Tick does not allocate.
func (c *ScatterController) Tick() {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	t := c.cfg.BlendFactor
	for i := range c.elements {
		e := &c.elements[i]
		e.depth = lerp(e.depth, e.targetDepth, t)
	}
	c.ticks++

	if c.debug {
		c.debugTick(time.Since(t0))
	}
}

// IsScattered reports whether the controller is in the scattered state.
func (c *ScatterController) IsScattered() bool {
	return c.scattered
}

// Len returns the number of owned elements.
func (c *ScatterController) Len() int {
	return len(c.elements)
}

// Elements returns the owned elements. The returned slice MUST NOT be
// mutated by the caller.
func (c *ScatterController) Elements() []Element {
	return c.elements
}

// Element returns a non-owning reference to element i.
func (c *ScatterController) Element(i int) *Element {
	return &c.elements[i]
}

// Config returns the configuration the controller animates with.
func (c *ScatterController) Config() GridConfig {
	return c.cfg
}

// Ticks returns the number of Tick calls since construction.
func (c *ScatterController) Ticks() uint64 {
	return c.ticks
}

// MaxRemaining returns the largest |target - depth| over all elements, or 0
// when there are none.
func (c *ScatterController) MaxRemaining() float64 {
	var m float64
	for i := range c.elements {
		if r := c.elements[i].Remaining(); r > m {
			m = r
		}
	}
	return m
}

// Settled reports whether every element is within eps of its target.
func (c *ScatterController) Settled(eps float64) bool {
	return c.MaxRemaining() <= eps
}

// SetDebugMode enables or disables periodic tick statistics on stderr.
func (c *ScatterController) SetDebugMode(enabled bool) {
	c.debug = enabled
}
