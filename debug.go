package aerolabel

import (
	"log/slog"
	"time"
)

// FrameStats holds per-frame label counters. Recorded for every frame the
// overlay runs; logged only when Settings.Debug is set.
type FrameStats struct {
	// MaxDistance is the culling threshold used this frame, in meters.
	MaxDistance float64

	Candidates int // labels produced by the source
	Skipped    int // not rendered, or label switched off
	OutOfRange int // farther than MaxDistance
	Hidden     int // projected behind the camera or outside near/far
	Drawn      int
	Failed     int // recovered from a fault

	Duration time.Duration
}

// LogValue groups the counters under one slog attribute.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("max_dist_m", s.MaxDistance),
		slog.Int("candidates", s.Candidates),
		slog.Int("skipped", s.Skipped),
		slog.Int("out_of_range", s.OutOfRange),
		slog.Int("hidden", s.Hidden),
		slog.Int("drawn", s.Drawn),
		slog.Int("failed", s.Failed),
		slog.Duration("took", s.Duration),
	)
}

// debugLog writes the frame's counters at debug level.
func (c *Controller) debugLog(stats FrameStats) {
	if !c.debug {
		return
	}
	c.logger.Debug("label frame", "stats", stats)
}
