package pipeline

import "time"

// RenderStats summarizes one finished render: what the sink delivered
// and how long the whole run took.
type RenderStats struct {
	Frames  uint64
	Bytes   uint64
	Elapsed time.Duration
}

// EffectiveFPS returns the delivered frame rate over the run. Zero when
// nothing was timed, so a failed render never divides by zero.
func (s RenderStats) EffectiveFPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}
