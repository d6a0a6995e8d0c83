package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-kids/internal/config"
)

// Timestep converts wall-clock frame deltas into reference-frame units.
// Physics constants are tuned per reference frame, so a delta equal to
// the reference frame scales to exactly 1.
type Timestep struct {
	maxDelta  time.Duration
	reference time.Duration
}

// NewTimestep builds a timestep from the timing configuration.
func NewTimestep(cfg config.TimingConfig) Timestep {
	return Timestep{maxDelta: cfg.MaxDelta(), reference: cfg.ReferenceFrame()}
}

// Clamp limits dt to [0, maxDelta]. A stalled tab or a clock going
// backwards never produces a huge or negative step.
func (t Timestep) Clamp(dt time.Duration) time.Duration {
	return min(max(dt, 0), t.maxDelta)
}

// Scale returns the clamped delta in reference frames.
func (t Timestep) Scale(dt time.Duration) float64 {
	if t.reference <= 0 {
		return 0
	}
	return float64(t.Clamp(dt)) / float64(t.reference)
}

// MaxScale is the largest value Scale can return.
func (t Timestep) MaxScale() float64 {
	return t.Scale(t.maxDelta)
}
