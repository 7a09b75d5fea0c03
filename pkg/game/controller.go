package game

import (
	"github.com/qnkhuat/netchess/pkg/engine"
	"go.uber.org/zap"
)

type Status int

const (
	Playing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Input is what the frontend reports for one frame.
type Input struct {
	Click *engine.Square // board square clicked this frame, if any
	Reset bool           // new game requested
}

// ClickAt is an Input holding a single click.
func ClickAt(sq engine.Square) Input {
	return Input{Click: &sq}
}

// Controller owns the board and the turn, selection and check state of one game.
// It is not safe for concurrent use; the frame loop drives it from one goroutine.
type Controller struct {
	board *engine.Board
	turn  engine.Side

	selected     engine.Square
	hasSelection bool
	legal        [engine.NumSquares]engine.SquareSet

	check        bool
	noLegalMoves bool

	history []engine.Move
	frames  int

	view      engine.Side
	fixedView bool

	log *zap.Logger
}

func NewController(log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{board: engine.NewBoard(), log: log}
	c.NewGame()
	return c
}

// NewGame resets the board and hands the move to White.
func (c *Controller) NewGame() {
	c.board.Reset()
	c.turn = engine.White
	c.history = nil
	c.ClearSelection()
	c.refresh()
	c.log.Debug("new game")
}

// SetView fixes the side the local player sits at. Without it the view follows
// the side to move.
func (c *Controller) SetView(side engine.Side) {
	c.view = side
	c.fixedView = true
}

func (c *Controller) View() engine.Side {
	if c.fixedView {
		return c.view
	}
	return c.turn
}

// Update runs one frame: an optional reset, recomputation of legal moves and
// check state, then the click if there was one.
func (c *Controller) Update(in Input) {
	c.frames++
	if in.Reset {
		c.NewGame()
	}
	c.refresh()
	if in.Click != nil && in.Click.Valid() {
		c.click(*in.Click)
	}
}

// Step is Update for frontends that drive a controller like a network session.
func (c *Controller) Step(in Input) error {
	c.Update(in)
	return nil
}

func (c *Controller) refresh() {
	c.legal = engine.AllLegalMoves(c.board)
	c.check = engine.InCheck(c.board, c.turn)
	c.noLegalMoves = !engine.HasLegalMoves(c.board, c.turn)
}

func (c *Controller) owns(sq engine.Square) bool {
	p, side := c.board.Get(sq)
	return p != engine.None && side == c.turn
}

func (c *Controller) click(sq engine.Square) {
	if c.hasSelection && c.selected != sq {
		switch {
		case c.legal[c.selected].Has(sq):
			c.ExecuteMove(c.selected, sq)
		case c.owns(sq):
			c.selected = sq
		default:
			c.log.Debug("illegal destination", zap.Stringer("from", c.selected), zap.Stringer("to", sq))
			c.ClearSelection()
		}
		return
	}
	if c.owns(sq) {
		c.selected = sq
		c.hasSelection = true
	}
}

// ExecuteMove plays from→to for the side to move without checking legality.
// It keeps the castling flags current, relocates the rook of a castle and hands
// the move to the other side.
func (c *Controller) ExecuteMove(from, to engine.Square) {
	p, side := c.board.Get(from)
	rookFrom, rookTo, castle := engine.CastleRook(c.board, from, to)

	c.board.Place(to, p, side)
	switch p {
	case engine.King:
		c.board.SetKingMoved(c.turn)
		if castle {
			c.board.Place(rookTo, engine.Rook, side)
			c.board.Clear(rookFrom)
			c.board.SetRookMoved(c.turn, engine.WingOf(rookFrom))
		}
	case engine.Rook:
		if from.IsCorner() {
			c.board.SetRookMoved(cornerSide(from), engine.WingOf(from))
		}
	}
	c.board.Clear(from)

	m := engine.Move{From: from, To: to}
	c.history = append(c.history, m)
	c.log.Debug("move", zap.Stringer("side", c.turn), zap.Stringer("piece", p), zap.Stringer("move", m))

	c.ClearSelection()
	c.turn = c.turn.Other()
	c.refresh()
}

// cornerSide is the side whose rook starts on corner sq.
func cornerSide(sq engine.Square) engine.Side {
	if sq.Row() == engine.HomeRow(engine.White) {
		return engine.White
	}
	return engine.Black
}

func (c *Controller) ClearSelection() {
	c.selected = engine.NoSquare
	c.hasSelection = false
}

func (c *Controller) Board() *engine.Board { return c.board }
func (c *Controller) Turn() engine.Side    { return c.turn }
func (c *Controller) InCheck() bool        { return c.check }
func (c *Controller) NoLegalMoves() bool   { return c.noLegalMoves }
func (c *Controller) Frames() int          { return c.frames }

func (c *Controller) Selected() (engine.Square, bool) {
	return c.selected, c.hasSelection
}

// LegalMoves returns the moves computed for sq on the last frame.
func (c *Controller) LegalMoves(sq engine.Square) engine.SquareSet {
	if !sq.Valid() {
		return 0
	}
	return c.legal[sq]
}

func (c *Controller) History() []engine.Move {
	return append([]engine.Move(nil), c.history...)
}

func (c *Controller) LastMove() (engine.Move, bool) {
	if len(c.history) == 0 {
		return engine.Move{}, false
	}
	return c.history[len(c.history)-1], true
}

// Status classifies the position for the side to move. Play continues
// regardless; nothing here ends the game.
func (c *Controller) Status() Status {
	switch {
	case c.check && c.noLegalMoves:
		return Checkmate
	case c.noLegalMoves:
		return Stalemate
	case c.check:
		return Check
	default:
		return Playing
	}
}
