// Package flappy implements the Flappy Bird-style game loop.
// The player keeps a bird airborne and steers it through gaps in
// scrolling pipes until the level's score target is reached.
package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-kids/internal/config"
	"github.com/vovakirdan/flappy-kids/internal/core"
)

// Outcome is the result of a single Tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeGameOver
	OutcomeLevelComplete
)

// String returns a stable name, also used when recording runs.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// Bird is the single player-controlled body.
type Bird struct {
	X, Y   float64 // Center
	VY     float64 // Vertical velocity per reference frame, positive is down
	Radius float64
}

// Horizontal returns the bird's extent on the x axis.
func (b Bird) Horizontal() core.Span {
	return core.SpanAround(b.X, b.Radius)
}

// Vertical returns the bird's extent on the y axis.
func (b Bird) Vertical() core.Span {
	return core.SpanAround(b.Y, b.Radius)
}

// Result describes a finished run.
type Result struct {
	Level    int
	Score    int
	Outcome  Outcome
	Duration time.Duration
}

// Hooks are notified when a run ends. Each fires at most once per run.
type Hooks struct {
	OnGameOver      func(Result)
	OnLevelComplete func(Result)
}

// Game owns all mutable state of one play session.
type Game struct {
	cfg     config.FlappyConfig
	catalog *config.Catalog
	step    Timestep
	pipes   *PipeManager
	hooks   Hooks

	level   int
	params  config.Level
	bird    Bird
	score   int
	running bool
	paused  bool
	outcome Outcome
	elapsed time.Duration
}

// New creates a game. Nothing runs until Reset is called.
func New(cfg config.FlappyConfig, catalog *config.Catalog, seed int64) *Game {
	return &Game{
		cfg:     cfg,
		catalog: catalog,
		step:    NewTimestep(cfg.Timing),
		pipes:   NewPipeManager(cfg, seed),
	}
}

// SetHooks replaces the end-of-run callbacks.
func (g *Game) SetHooks(h Hooks) {
	g.hooks = h
}

// Reset starts a fresh run of the given level. Out-of-range levels are clamped.
func (g *Game) Reset(level int) {
	g.level = g.catalog.Clamp(level)
	g.params = g.catalog.Level(g.level)
	g.bird = Bird{
		X:      g.cfg.Bird.X,
		Y:      g.cfg.Field.Height / 2,
		Radius: g.cfg.Bird.Radius,
	}
	g.pipes.Reset(g.params.GapHeight, g.catalog.SpawnInterval(g.level))
	g.score = 0
	g.running = true
	g.paused = false
	g.outcome = OutcomeContinue
	g.elapsed = 0
}

// Flap sets the bird's vertical velocity to the level's impulse.
// It is ignored unless a run is active and unpaused.
func (g *Game) Flap() bool {
	if !g.running || g.paused {
		return false
	}
	g.bird.VY = g.params.FlapImpulse
	return true
}

// TogglePause pauses or resumes an active run and returns the new state.
func (g *Game) TogglePause() bool {
	if !g.running {
		return g.paused
	}
	g.paused = !g.paused
	return g.paused
}

// Tick advances the simulation by dt.
func (g *Game) Tick(dt time.Duration) Outcome {
	if !g.running || g.paused {
		return OutcomeContinue
	}

	dts := g.step.Scale(dt)
	g.elapsed += max(dt, 0)

	g.bird.VY += g.params.Gravity * dts
	g.bird.Y += g.bird.VY * dts

	g.pipes.Accumulate(dt)
	g.pipes.Advance(g.params.ScrollSpeed * dts)
	g.score += g.pipes.MarkPassed(g.bird.X - g.bird.Radius)

	// A crash on the same frame as the winning pass still loses.
	if g.pipes.Collides(g.bird) || !g.inField() {
		return g.finish(OutcomeGameOver)
	}
	if g.score >= g.params.ScoreTarget {
		return g.finish(OutcomeLevelComplete)
	}
	return OutcomeContinue
}

func (g *Game) inField() bool {
	return g.bird.Vertical().Within(core.Span{Lo: 0, Hi: g.cfg.Field.Height})
}

// finish stops the run and fires the matching hook.
func (g *Game) finish(o Outcome) Outcome {
	g.running = false
	g.outcome = o

	res := g.result()
	switch o {
	case OutcomeGameOver:
		if g.hooks.OnGameOver != nil {
			g.hooks.OnGameOver(res)
		}
	case OutcomeLevelComplete:
		if g.hooks.OnLevelComplete != nil {
			g.hooks.OnLevelComplete(res)
		}
	}
	return o
}

func (g *Game) result() Result {
	return Result{Level: g.level, Score: g.score, Outcome: g.outcome, Duration: g.elapsed}
}

// Level returns the index of the current level.
func (g *Game) Level() int { return g.level }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// Running reports whether a run is in progress.
func (g *Game) Running() bool { return g.running }

// Paused reports whether the active run is paused.
func (g *Game) Paused() bool { return g.paused }

// Outcome returns how the last run ended, or OutcomeContinue while it runs.
func (g *Game) Outcome() Outcome { return g.outcome }

// Catalog returns the level table the game plays from.
func (g *Game) Catalog() *config.Catalog { return g.catalog }

// State is a read-only snapshot for renderers and front ends.
type State struct {
	Level     int
	LevelName string
	LastLevel bool
	Bird      Bird
	Pipes     []Pipe
	PipeWidth float64
	FieldW    float64
	FieldH    float64
	Score     int
	Target    int
	Running   bool
	Paused    bool
	Outcome   Outcome
	Elapsed   time.Duration
}

// State returns a snapshot that shares no memory with the game.
func (g *Game) State() State {
	return State{
		Level:     g.level,
		LevelName: g.params.Name,
		LastLevel: g.level == g.catalog.MaxIndex(),
		Bird:      g.bird,
		Pipes:     g.pipes.Pipes(),
		PipeWidth: g.cfg.Pipes.Width,
		FieldW:    g.cfg.Field.Width,
		FieldH:    g.cfg.Field.Height,
		Score:     g.score,
		Target:    g.params.ScoreTarget,
		Running:   g.running,
		Paused:    g.paused,
		Outcome:   g.outcome,
		Elapsed:   g.elapsed,
	}
}
