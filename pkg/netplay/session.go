package netplay

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/qnkhuat/netchess/pkg/engine"
	"github.com/qnkhuat/netchess/pkg/game"
	"go.uber.org/zap"
)

var ErrOutOfTurn = errors.New("peer moved out of turn")

// Session is one networked game: a controller seated at a fixed side and the
// connection to the player on the other side.
type Session struct {
	ID uuid.UUID

	ctrl *game.Controller
	conn *Conn
	view engine.Side
	log  *zap.Logger
}

func NewSession(ctrl *game.Controller, conn *Conn, view engine.Side, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	log = log.With(zap.String("session", id.String()), zap.Stringer("side", view))
	ctrl.SetView(view)
	return &Session{
		ID:   id,
		ctrl: ctrl,
		conn: conn,
		view: view,
		log:  log,
	}
}

// Step runs one frame. On the local turn the input drives the controller and a
// completed move is sent to the peer. On the remote turn clicks are ignored and
// a received move is applied as is.
func (s *Session) Step(in game.Input) error {
	if in.Reset {
		s.log.Info("reset ignored in network play")
		in.Reset = false
	}

	if s.ctrl.Turn() == s.view {
		if m, ok, err := s.conn.Poll(); err != nil {
			return err
		} else if ok {
			return fmt.Errorf("%w: %s", ErrOutOfTurn, m)
		}

		s.ctrl.Update(in)
		if s.ctrl.Turn() == s.view {
			return nil
		}
		m, _ := s.ctrl.LastMove()
		if err := s.conn.Send(m); err != nil {
			return fmt.Errorf("send %s: %w", m, err)
		}
		s.log.Debug("sent move", zap.Stringer("move", m))
		return nil
	}

	s.ctrl.ClearSelection()
	s.ctrl.Update(game.Input{})
	m, ok, err := s.conn.Poll()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if !s.ctrl.LegalMoves(m.From).Has(m.To) {
		s.log.Warn("peer move is not legal here, applying anyway", zap.Stringer("move", m))
	}
	s.ctrl.ExecuteMove(m.From, m.To)
	s.log.Debug("received move", zap.Stringer("move", m))
	return nil
}

func (s *Session) Snapshot() game.Snapshot {
	return s.ctrl.Snapshot()
}

func (s *Session) Controller() *game.Controller { return s.ctrl }
func (s *Session) View() engine.Side            { return s.view }

func (s *Session) Close() error {
	s.log.Info("closing session")
	return s.conn.Close()
}
