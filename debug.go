package mosaic

import (
	"fmt"
	"os"
	"time"
)

// debugLogEvery is the number of ticks between debug lines. At 60 TPS this
// logs about once per second.
const debugLogEvery = 60

// debugStats holds one tick's metrics. Only populated in debug mode.
type debugStats struct {
	tick         uint64
	elements     int
	scattered    bool
	maxRemaining float64
	tickTime     time.Duration
}

// debugTick collects stats for the tick that just finished and logs them
// every debugLogEvery ticks.
func (c *ScatterController) debugTick(took time.Duration) {
	if c.ticks%debugLogEvery != 0 {
		return
	}
	c.debugLog(debugStats{
		tick:         c.ticks,
		elements:     len(c.elements),
		scattered:    c.scattered,
		maxRemaining: c.MaxRemaining(),
		tickTime:     took,
	})
}

// debugLog prints tick stats to stderr.
func (c *ScatterController) debugLog(stats debugStats) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[mosaic] tick %d: elements %d | scattered %v | max remaining %.4g | took %v\n",
		stats.tick, stats.elements, stats.scattered, stats.maxRemaining, stats.tickTime)
}
