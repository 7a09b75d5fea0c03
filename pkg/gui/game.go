package gui

import (
	"github.com/qnkhuat/netchess/pkg/engine"
	"github.com/qnkhuat/netchess/pkg/game"
)

// Stepper is anything the frame loop can drive: a local controller or a
// network session.
type Stepper interface {
	Step(in game.Input) error
	Snapshot() game.Snapshot
}

// Players holds the names shown beside the board
type Players struct {
	White string
	Black string
}

func (p Players) Name(side engine.Side) string {
	if side == engine.Black {
		return p.Black
	}
	return p.White
}
