package game

import "github.com/qnkhuat/netchess/pkg/engine"

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Board        engine.Board
	Turn         engine.Side
	View         engine.Side
	Selected     engine.Square
	HasSelection bool
	Targets      engine.SquareSet
	Status       Status
	History      []engine.Move
	Frames       int
}

// Winner returns the side that delivered mate, if the position is checkmate.
func (s Snapshot) Winner() (engine.Side, bool) {
	if s.Status != Checkmate {
		return engine.White, false
	}
	return s.Turn.Other(), true
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Board:        *c.board,
		Turn:         c.turn,
		View:         c.View(),
		Selected:     c.selected,
		HasSelection: c.hasSelection,
		Status:       c.Status(),
		History:      c.History(),
		Frames:       c.frames,
	}
	if c.hasSelection {
		snap.Targets = c.legal[c.selected]
	}
	return snap
}
