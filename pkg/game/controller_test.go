package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qnkhuat/netchess/pkg/engine"
)

func clickAll(c *Controller, squares ...engine.Square) {
	for _, sq := range squares {
		c.Update(ClickAt(sq))
	}
}

func TestSelectAndMove(t *testing.T) {
	c := NewController(nil)

	c.Update(ClickAt(52))
	if sq, ok := c.Selected(); !ok || sq != 52 {
		t.Fatalf("Selected() = %d %v, want 52 true", sq, ok)
	}
	if diff := cmp.Diff([]engine.Square{36, 44}, c.Snapshot().Targets.Squares()); diff != "" {
		t.Fatalf("targets mismatch (-want +got):\n%s", diff)
	}

	c.Update(ClickAt(36))
	if c.Turn() != engine.Black {
		t.Fatalf("Turn() = %s after White moved, want Black", c.Turn())
	}
	if _, ok := c.Selected(); ok {
		t.Fatal("selection survived a completed move")
	}
	if p, side := c.Board().Get(36); p != engine.Pawn || side != engine.White {
		t.Fatalf("e4 holds %s %s, want White Pawn", side, p)
	}
	if c.Board().Occupied(52) {
		t.Fatal("e2 still occupied")
	}
	if diff := cmp.Diff([]engine.Move{{From: 52, To: 36}}, c.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectionRules(t *testing.T) {
	tests := []struct {
		name     string
		clicks   []engine.Square
		selected engine.Square
		has      bool
	}{
		{"empty square selects nothing", []engine.Square{36}, engine.NoSquare, false},
		{"opponent piece selects nothing", []engine.Square{12}, engine.NoSquare, false},
		{"own piece selected", []engine.Square{57}, 57, true},
		{"own piece reselected", []engine.Square{57, 52}, 52, true},
		{"illegal destination clears", []engine.Square{57, 35}, engine.NoSquare, false},
		{"enemy piece out of reach clears", []engine.Square{57, 12}, engine.NoSquare, false},
		{"same square keeps selection", []engine.Square{57, 57}, 57, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(nil)
			clickAll(c, tt.clicks...)
			sq, ok := c.Selected()
			if sq != tt.selected || ok != tt.has {
				t.Errorf("Selected() = %d %v, want %d %v", sq, ok, tt.selected, tt.has)
			}
			if c.Turn() != engine.White {
				t.Errorf("a move was played: turn is %s", c.Turn())
			}
		})
	}
}

func TestCannotMoveOpponentPieces(t *testing.T) {
	c := NewController(nil)
	clickAll(c, 12, 28)
	if c.Turn() != engine.White || len(c.History()) != 0 {
		t.Fatal("White moved a Black pawn")
	}
}

func TestCastlingThroughController(t *testing.T) {
	c := NewController(nil)
	for _, sq := range []engine.Square{57, 58, 59, 61, 62} {
		c.Board().Clear(sq)
	}
	c.Update(Input{})

	c.Update(ClickAt(60))
	targets := c.Snapshot().Targets
	if !targets.Has(62) || !targets.Has(58) {
		t.Fatalf("castles not offered, targets %v", targets.Squares())
	}

	c.Update(ClickAt(62))
	b := c.Board()
	if p, _ := b.Get(62); p != engine.King {
		t.Fatalf("g1 holds %s after castling", p)
	}
	if p, side := b.Get(61); p != engine.Rook || side != engine.White {
		t.Fatalf("f1 holds %s %s after castling, want White Rook", side, p)
	}
	if b.Occupied(63) || b.Occupied(60) {
		t.Fatal("e1 or h1 still occupied after castling")
	}
	if !b.KingMoved(engine.White) || !b.RookMoved(engine.White, engine.Kingside) {
		t.Fatal("castling flags not set")
	}

	clickAll(c, 12, 28) // e7-e5

	// Walk king and rook home by hand; the flags still remember the castle.
	b.Clear(62)
	b.Clear(61)
	b.Place(60, engine.King, engine.White)
	b.Place(63, engine.Rook, engine.White)
	c.Update(Input{})
	if moves := c.LegalMoves(60); moves.Has(62) || moves.Has(58) {
		t.Fatalf("castling offered again after the king moved: %v", moves.Squares())
	}
}

func TestRookLeavingCornerSetsFlag(t *testing.T) {
	c := NewController(nil)
	c.Board().Clear(48) // a2
	c.Update(Input{})

	clickAll(c, 56, 40) // Ra1-a3
	if !c.Board().RookMoved(engine.White, engine.Queenside) {
		t.Fatal("queenside rook flag not set")
	}
	if c.Board().RookMoved(engine.White, engine.Kingside) || c.Board().KingMoved(engine.White) {
		t.Fatal("unrelated castling flags set")
	}
}

func TestRookFlagFollowsTheCorner(t *testing.T) {
	c := NewController(nil)
	b := c.Board()
	for sq := engine.Square(0); sq < engine.NumSquares; sq++ {
		b.Clear(sq)
	}
	b.Place(60, engine.King, engine.White)
	b.Place(4, engine.King, engine.Black)
	b.Place(0, engine.Rook, engine.Black)
	b.Place(7, engine.Rook, engine.Black)
	c.Update(Input{})

	c.ExecuteMove(60, 52) // Ke2
	c.ExecuteMove(7, 63)  // Rh8-h1
	c.ExecuteMove(52, 44) // Ke3
	c.ExecuteMove(63, 56) // Rh1-a1
	c.ExecuteMove(44, 36) // Ke4
	c.ExecuteMove(56, 48) // Ra1-a2

	if !b.RookMoved(engine.Black, engine.Kingside) {
		t.Fatal("black kingside flag not set after Rh8 left its corner")
	}
	if b.RookMoved(engine.Black, engine.Queenside) {
		t.Fatal("black queenside flag set although the a8 rook never moved")
	}

	c.ExecuteMove(36, 37) // Kf4
	if !c.LegalMoves(4).Has(2) {
		t.Fatalf("black cannot castle queenside, king moves %v", c.LegalMoves(4).Squares())
	}
}

func TestCheckmateStatus(t *testing.T) {
	c := NewController(nil)
	clickAll(c,
		53, 45, // f2-f3
		12, 28, // e7-e5
		54, 38, // g2-g4
		3, 39, // Qd8-h4
	)
	c.Update(Input{})

	snap := c.Snapshot()
	if snap.Status != Checkmate {
		t.Fatalf("Status = %s, want Checkmate", snap.Status)
	}
	if winner, ok := snap.Winner(); !ok || winner != engine.Black {
		t.Fatalf("Winner() = %s %v, want Black true", winner, ok)
	}

	// Mate does not stop the controller.
	c.Update(ClickAt(60))
	if _, ok := c.Selected(); !ok {
		t.Fatal("mated side could not select its king")
	}
}

func TestStalemateStatus(t *testing.T) {
	c := NewController(nil)
	b := c.Board()
	for sq := engine.Square(0); sq < engine.NumSquares; sq++ {
		b.Clear(sq)
	}
	b.Place(0, engine.King, engine.Black)
	b.Place(25, engine.Queen, engine.White) // b5
	b.Place(63, engine.King, engine.White)
	c.Update(Input{})
	if c.Status() != Playing {
		t.Fatalf("Status = %s before Qb6, want Playing", c.Status())
	}

	c.ExecuteMove(25, 17) // Qb6
	if c.Status() != Stalemate {
		t.Fatalf("Status = %s, want Stalemate", c.Status())
	}
	if c.InCheck() || !c.NoLegalMoves() {
		t.Fatalf("InCheck = %v NoLegalMoves = %v, want false true", c.InCheck(), c.NoLegalMoves())
	}
}

func TestCheckStatus(t *testing.T) {
	c := NewController(nil)
	clickAll(c,
		52, 36, // e2-e4
		13, 29, // f7-f5
		59, 31, // Qd1-h5+
	)
	if c.Status() != Check {
		t.Fatalf("Status = %s, want Check", c.Status())
	}
}

func TestResetRequest(t *testing.T) {
	c := NewController(nil)
	clickAll(c, 52, 36, 57)

	c.Update(Input{Reset: true})
	if c.Turn() != engine.White {
		t.Fatalf("Turn() = %s after reset, want White", c.Turn())
	}
	if _, ok := c.Selected(); ok {
		t.Fatal("selection survived a reset")
	}
	if len(c.History()) != 0 {
		t.Fatal("history survived a reset")
	}
	if !c.Board().Equal(engine.NewBoard()) {
		t.Fatal("board not reset")
	}
}

func TestViewFollowsTurnUnlessFixed(t *testing.T) {
	c := NewController(nil)
	clickAll(c, 52, 36)
	if c.View() != engine.Black {
		t.Fatalf("View() = %s in hot-seat play, want Black", c.View())
	}

	c.SetView(engine.White)
	if c.View() != engine.White {
		t.Fatalf("View() = %s with a fixed view, want White", c.View())
	}
}

func TestFramesCounted(t *testing.T) {
	c := NewController(nil)
	for i := 0; i < 3; i++ {
		c.Update(Input{})
	}
	if c.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", c.Frames())
	}
}
