package app

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"mad-snake/internal/core"
	"mad-snake/internal/sims/snake"
)

const speedParam = "moves_per_second"

// Session drives consecutive games. Each run gets a fresh simulation and run
// ID; the session keeps the tick clock, pause state and best score across
// runs in memory.
type Session struct {
	cfg    Config
	sim    *snake.Simulation
	clock  *core.FixedStep
	logger *log.Logger
	seed   func() int64

	runID    uuid.UUID
	runs     int
	best     int
	paused   bool
	reported bool
}

// NewSession starts the first run. A nil logger uses the standard logger.
func NewSession(cfg Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		cfg:    cfg,
		clock:  core.NewFixedStep(cfg.MovesPerSecond),
		logger: logger,
	}
	s.seed = s.nextSeed
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// nextSeed derives a reproducible seed per run from a fixed base seed, or
// reads the clock when none was configured.
func (s *Session) nextSeed() int64 {
	if s.cfg.Seed == 0 {
		return time.Now().UnixNano()
	}
	return s.cfg.Seed + int64(s.runs)
}

// Restart abandons the current game and starts a new one.
func (s *Session) Restart() error {
	seed := s.seed()
	sim, err := snake.NewWithConfig(s.cfg.SimConfig(seed))
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	s.sim = sim
	s.runID = uuid.New()
	s.runs++
	s.reported = false
	s.paused = false
	s.clock.Reset()
	s.logger.Printf("[snake] run %s started: board=%dx%d seed=%d", s.runID, s.cfg.Rows, s.cfg.Cols, seed)
	return nil
}

// Sim returns the current simulation.
func (s *Session) Sim() *snake.Simulation { return s.sim }

// RunID identifies the current run.
func (s *Session) RunID() uuid.UUID { return s.runID }

// Runs counts the games started in this session.
func (s *Session) Runs() int { return s.runs }

// Best returns the highest score reached in any run so far.
func (s *Session) Best() int { return s.best }

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips the pause state. A finished game stays unpaused.
func (s *Session) TogglePause() {
	if s.sim.GameOver() {
		return
	}
	s.paused = !s.paused
}

// Turn forwards a direction request to the simulation. Input is ignored while
// paused.
func (s *Session) Turn(d snake.Direction) bool {
	if s.paused {
		return false
	}
	return s.sim.RequestDirectionChange(d)
}

// Tick advances the simulation when the move clock is due and reports whether
// a move happened.
func (s *Session) Tick(now time.Time) bool {
	if s.paused || s.sim.GameOver() {
		return false
	}
	if !s.clock.ShouldStepAt(now) {
		return false
	}
	if err := s.sim.Advance(); err != nil {
		return false
	}
	if score := s.sim.Score(); score > s.best {
		s.best = score
	}
	if s.sim.GameOver() && !s.reported {
		s.reported = true
		s.logger.Printf("[snake] run %s over: score=%d length=%d moves=%d best=%d",
			s.runID, s.sim.Score(), s.sim.Len(), s.sim.Ticks(), s.best)
	}
	return true
}

// Parameters merges the simulation values with session bookkeeping.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.sim.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Session",
		Params: []core.Parameter{
			core.StringParam("run", "Run", s.runID.String()[:8]),
			core.IntParam("runs", "Runs", s.runs),
			core.IntParam("best", "Best", s.best),
			core.IntParam(speedParam, "Speed", s.clock.TPS()),
			core.BoolParam("paused", "Paused", s.paused),
		},
	})
	return snap
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    speedParam,
		Label:  "Speed",
		Step:   1,
		Min:    1,
		Max:    maxMovesPerSecond,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter applies a HUD adjustment. Only the move rate is adjustable.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != speedParam {
		return false
	}
	value = s.ParameterControls()[0].Clamp(value)
	s.clock.SetTPS(value)
	s.cfg.MovesPerSecond = value
	return true
}
