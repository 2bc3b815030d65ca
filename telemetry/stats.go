// Package telemetry aggregates per-frame engine counters into fixed windows
// and writes them as CSV for offline analysis.
package telemetry

import (
	"sort"
	"time"

	"github.com/automoto/spaceman/engine"
	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame uint64 `csv:"-"`
	WindowEndFrame   uint64 `csv:"window_end"`
	Frames           int    `csv:"frames"`

	// Population at window end
	Actors    int `csv:"actors"`
	Colliders int `csv:"colliders"`

	// Totals over the window
	Spawned            int `csv:"spawned"`
	Swept              int `csv:"swept"`
	HorizontalContacts int `csv:"h_contacts"`
	VerticalContacts   int `csv:"v_contacts"`
	Resolutions        int `csv:"resolutions"`
	ClampedPushes      int `csv:"clamped_pushes"`
	TriggerHits        int `csv:"trigger_hits"`

	// Step duration in microseconds
	StepMean float64 `csv:"step_mean_us"`
	StepStd  float64 `csv:"step_std_us"`
	StepP50  float64 `csv:"step_p50_us"`
	StepP90  float64 `csv:"step_p90_us"`
	StepMax  float64 `csv:"step_max_us"`
}

// Sample is one frame's counters and how long the step took.
type Sample struct {
	Stats engine.FrameStats
	Step  time.Duration
}

// Summarize folds samples into one window. It returns the zero value for no
// samples.
func Summarize(samples []Sample) WindowStats {
	if len(samples) == 0 {
		return WindowStats{}
	}

	first, last := samples[0].Stats, samples[len(samples)-1].Stats
	ws := WindowStats{
		WindowStartFrame: first.Frame,
		WindowEndFrame:   last.Frame,
		Frames:           len(samples),
		Actors:           last.Actors,
		Colliders:        last.Colliders,
	}

	steps := make([]float64, len(samples))
	for i, s := range samples {
		ws.Spawned += s.Stats.Spawned
		ws.Swept += s.Stats.Swept
		ws.HorizontalContacts += s.Stats.HorizontalContacts
		ws.VerticalContacts += s.Stats.VerticalContacts
		ws.Resolutions += s.Stats.Resolutions
		ws.ClampedPushes += s.Stats.ClampedPushes
		ws.TriggerHits += s.Stats.TriggerHits
		steps[i] = float64(s.Step) / float64(time.Microsecond)
	}

	ws.StepMean, ws.StepStd = stat.PopMeanStdDev(steps, nil)
	sort.Float64s(steps)
	ws.StepP50 = stat.Quantile(0.5, stat.Empirical, steps, nil)
	ws.StepP90 = stat.Quantile(0.9, stat.Empirical, steps, nil)
	ws.StepMax = steps[len(steps)-1]
	return ws
}

// Log writes the window as one structured line.
func (s WindowStats) Log(logger *log.Logger) {
	logger.Info("stats",
		"window_end", s.WindowEndFrame,
		"actors", s.Actors,
		"colliders", s.Colliders,
		"contacts", s.HorizontalContacts+s.VerticalContacts,
		"resolutions", s.Resolutions,
		"clamped", s.ClampedPushes,
		"step_mean_us", s.StepMean,
		"step_p90_us", s.StepP90,
	)
}
