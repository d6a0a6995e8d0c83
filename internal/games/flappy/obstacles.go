package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-kids/internal/config"
	"github.com/vovakirdan/flappy-kids/internal/core"
)

// Pipe is a pair of vertical obstacles with a gap between them.
type Pipe struct {
	X         float64 // Left edge in field units
	GapTop    float64 // Y of the top of the gap
	GapHeight float64
	Passed    bool // Counted toward the score
}

// Gap returns the passable vertical span.
func (p Pipe) Gap() core.Span {
	return core.Span{Lo: p.GapTop, Hi: p.GapTop + p.GapHeight}
}

// Extent returns the horizontal span of a pipe of the given width.
func (p Pipe) Extent(width float64) core.Span {
	return core.Span{Lo: p.X, Hi: p.X + width}
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.PipeConfig

	fieldW, fieldH float64

	gapHeight float64
	interval  time.Duration
	elapsed   time.Duration // Time since the last spawn
}

// NewPipeManager creates a pipe manager with a deterministic RNG.
func NewPipeManager(cfg config.FlappyConfig, seed int64) *PipeManager {
	return &PipeManager{
		pipes:  make([]Pipe, 0, 8),
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg.Pipes,
		fieldW: cfg.Field.Width,
		fieldH: cfg.Field.Height,
	}
}

// Reset clears all pipes and applies the level's gap and spawn interval.
// The RNG keeps its position so successive runs see different layouts.
func (pm *PipeManager) Reset(gapHeight float64, interval time.Duration) {
	pm.pipes = pm.pipes[:0]
	pm.gapHeight = gapHeight
	pm.interval = interval
	pm.elapsed = 0
}

// Accumulate adds elapsed time and spawns a pipe once the interval is exceeded.
// Reports whether a pipe was spawned.
func (pm *PipeManager) Accumulate(dt time.Duration) bool {
	pm.elapsed += max(dt, 0)
	if pm.elapsed <= pm.interval {
		return false
	}
	pm.elapsed = 0
	pm.spawn()
	return true
}

// spawn appends a pipe at the right edge with a random gap position.
// The gap always leaves at least Margin units of pipe above and below it.
func (pm *PipeManager) spawn() {
	span := max(pm.fieldH-pm.gapHeight-2*pm.cfg.Margin, 0)
	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.fieldW,
		GapTop:    pm.cfg.Margin + pm.rng.Float64()*span,
		GapHeight: pm.gapHeight,
	})
}

// Advance moves every pipe left by dx and drops pipes past the cull margin.
func (pm *PipeManager) Advance(dx float64) {
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= dx
		if p.X >= -pm.cfg.CullMargin {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept
}

// MarkPassed flags pipes whose right edge is left of trailing and returns
// how many were newly passed. A pipe is counted at most once.
func (pm *PipeManager) MarkPassed(trailing float64) int {
	passed := 0
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if !p.Passed && p.X+pm.cfg.Width < trailing {
			p.Passed = true
			passed++
		}
	}
	return passed
}

// Collides reports whether the bird touches any pipe outside its gap.
func (pm *PipeManager) Collides(b Bird) bool {
	horizontal, vertical := b.Horizontal(), b.Vertical()
	for _, p := range pm.pipes {
		if horizontal.Overlaps(p.Extent(pm.cfg.Width)) && !vertical.Within(p.Gap()) {
			return true
		}
	}
	return false
}

// Pipes returns a copy of the live pipes in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// Len returns the number of live pipes.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}
