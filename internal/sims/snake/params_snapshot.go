package snake

import (
	"strconv"

	"mad-snake/internal/core"
)

// Parameters exposes the live game values for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	state := "running"
	if s.gameOver {
		state = "game over"
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Game",
				Params: []core.Parameter{
					core.IntParam("score", "Score", s.score),
					core.IntParam("length", "Length", s.body.len()),
					core.StringParam("direction", "Direction", s.dir.String()),
					core.IntParam("pending", "Queued turns", s.npending),
					core.IntParam("ticks", "Moves", s.ticks),
					core.StringParam("state", "State", state),
				},
			},
			{
				Name: "Board",
				Params: []core.Parameter{
					core.IntParam("rows", "Rows", s.cfg.Rows),
					core.IntParam("cols", "Cols", s.cfg.Cols),
					core.IntParam("empty", "Empty cells", s.free.len()),
					core.StringParam("seed", "Seed", strconv.FormatInt(s.cfg.Seed, 10)),
				},
			},
		},
	}
}
