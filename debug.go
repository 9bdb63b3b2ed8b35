package casement

import "time"

// debugStats holds per-frame input metrics. Counters are always maintained;
// they are logged only in debug mode.
type debugStats struct {
	start       time.Time
	samples     int
	dropped     int
	transitions int
	aborts      int
}

// SetDebugMode enables per-frame statistics logging at debug level.
func (d *Dispatcher) SetDebugMode(enabled bool) {
	d.debug = enabled
}

func (s *debugStats) beginFrame() {
	*s = debugStats{start: time.Now()}
}

// endFrame logs the frame's statistics when debug mode is on.
func (s *debugStats) endFrame(d *Dispatcher) {
	if !d.debug {
		return
	}
	Logger().Debug("input frame",
		"samples", s.samples,
		"dropped", s.dropped,
		"transitions", s.transitions,
		"aborts", s.aborts,
		"mode", d.mode.State(),
		"elapsed", time.Since(s.start))
}

// FrameStats returns the sample, drop, transition and abort counts of the
// last processed frame.
func (d *Dispatcher) FrameStats() (samples, dropped, transitions, aborts int) {
	return d.stats.samples, d.stats.dropped, d.stats.transitions, d.stats.aborts
}
