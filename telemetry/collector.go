package telemetry

import (
	"time"

	"github.com/automoto/spaceman/engine"
)

// Collector buffers samples until a window fills.
type Collector struct {
	windowSize int
	samples    []Sample
}

// NewCollector creates a collector that closes a window every windowSize
// frames (e.g., 60 for one second of play).
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &Collector{
		windowSize: windowSize,
		samples:    make([]Sample, 0, windowSize),
	}
}

// Record adds one frame. When that fills the window it returns the window's
// stats and starts a new one.
func (c *Collector) Record(stats engine.FrameStats, step time.Duration) (WindowStats, bool) {
	c.samples = append(c.samples, Sample{Stats: stats, Step: step})
	if len(c.samples) < c.windowSize {
		return WindowStats{}, false
	}
	return c.Flush()
}

// Flush closes the current window early. It reports false if the window is
// empty.
func (c *Collector) Flush() (WindowStats, bool) {
	if len(c.samples) == 0 {
		return WindowStats{}, false
	}
	ws := Summarize(c.samples)
	c.samples = c.samples[:0]
	return ws, true
}

// Pending is the number of frames in the open window.
func (c *Collector) Pending() int {
	return len(c.samples)
}
