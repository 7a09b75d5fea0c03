package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/netchess/pkg/engine"
	"github.com/qnkhuat/netchess/pkg/game"
	"github.com/rivo/tview"
)

const (
	numrows = engine.NumRows
	numcols = engine.NumCols
	// moves shown in the move box
	movePairs = 5
)

// posToSquare maps a table cell to a board square. Column 0 and the last row
// hold the coordinates. The side in view sits at the bottom.
func posToSquare(row, col int, view engine.Side) (engine.Square, bool) {
	if row < 0 || row >= numrows || col < 1 || col > numcols {
		return engine.NoSquare, false
	}
	col = col - 1 // 1 column for the rank
	if view == engine.Black {
		row = numrows - row - 1
		col = numcols - col - 1
	}
	return engine.SquareAt(row, col), true
}

// toChess converts a square to the notnil/chess numbering, where a1 is 0.
func toChess(sq engine.Square) chess.Square {
	return chess.Square((numrows-sq.Row()-1)*8 + sq.Col())
}

// pieces maps a piece of each side to its notnil/chess twin, indexed by side.
var pieces = [2]map[engine.Piece]chess.Piece{
	{
		engine.King:   chess.WhiteKing,
		engine.Queen:  chess.WhiteQueen,
		engine.Rook:   chess.WhiteRook,
		engine.Bishop: chess.WhiteBishop,
		engine.Knight: chess.WhiteKnight,
		engine.Pawn:   chess.WhitePawn,
	},
	{
		engine.King:   chess.BlackKing,
		engine.Queen:  chess.BlackQueen,
		engine.Rook:   chess.BlackRook,
		engine.Bishop: chess.BlackBishop,
		engine.Knight: chess.BlackKnight,
		engine.Pawn:   chess.BlackPawn,
	},
}

func pieceGlyph(p engine.Piece, side engine.Side) string {
	cp, ok := pieces[side.Index()][p]
	if !ok {
		return " "
	}
	return cp.String()
}

// squareBg picks the background of sq, strongest marker first.
func squareBg(snap game.Snapshot, sq engine.Square, t Theme) tcell.Color {
	p, side := snap.Board.Get(sq)
	switch {
	case p == engine.King && side == snap.Turn && (snap.Status == game.Check || snap.Status == game.Checkmate):
		return t.SquareCheck
	case snap.HasSelection && sq == snap.Selected:
		return t.SquareHigh
	case snap.Targets.Has(sq):
		return t.SquareHint
	case isLastMove(snap, sq):
		return t.SquareLast
	case (sq.Row()+sq.Col())%2 == 1:
		return t.SquareDark
	default:
		return t.SquareLight
	}
}

func isLastMove(snap game.Snapshot, sq engine.Square) bool {
	if len(snap.History) == 0 {
		return false
	}
	m := snap.History[len(snap.History)-1]
	return m.From == sq || m.To == sq
}

// renderBoard draws the pieces and coordinates into the table.
func renderBoard(table *tview.Table, snap game.Snapshot, t Theme) {
	for r := 0; r <= numrows; r++ {
		for f := 0; f <= numcols; f++ {
			if r == numrows && f == 0 { // the bottom left cell is not used
				table.SetCell(r, f, tview.NewTableCell("").SetSelectable(false))
				continue
			}

			if f == 0 { // rank label
				sq, _ := posToSquare(r, 1, snap.View)
				rank := chess.Rank(numrows - sq.Row() - 1)
				cell := tview.NewTableCell(rank.String()).
					SetAlign(tview.AlignCenter).
					SetTextColor(t.Rank).
					SetSelectable(false)
				table.SetCell(r, f, cell)
				continue
			}

			if r == numrows { // file label
				sq, _ := posToSquare(0, f, snap.View)
				file := chess.File(sq.Col())
				cell := tview.NewTableCell(fmt.Sprintf(" %s", file.String())).
					SetAlign(tview.AlignCenter).
					SetTextColor(t.File).
					SetSelectable(false)
				table.SetCell(r, f, cell)
				continue
			}

			sq, _ := posToSquare(r, f, snap.View)
			p, side := snap.Board.Get(sq)
			fg := t.White
			if side == engine.Black {
				fg = t.Black
			}
			cell := tview.NewTableCell(fmt.Sprintf(" %s ", pieceGlyph(p, side))).
				SetAlign(tview.AlignCenter).
				SetTextColor(fg).
				SetBackgroundColor(squareBg(snap, sq, t))
			table.SetCell(r, f, cell)
		}
	}
}

func statusText(snap game.Snapshot) string {
	switch snap.Status {
	case game.Checkmate:
		winner, _ := snap.Winner()
		return fmt.Sprintf("Checkmate, %s wins", winner)
	case game.Stalemate:
		return "Stalemate"
	case game.Check:
		return fmt.Sprintf("Check, %s to move", snap.Turn)
	default:
		return fmt.Sprintf("%s to move", snap.Turn)
	}
}

func moveName(m engine.Move) string {
	return toChess(m.From).String() + toChess(m.To).String()
}

// moveList renders the most recent move pairs, one numbered line each.
func moveList(history []engine.Move) string {
	var lines []string
	for i := 0; i < len(history); i += 2 {
		line := fmt.Sprintf("%-3v %-5v", fmt.Sprintf("%d.", i/2+1), moveName(history[i]))
		if i+1 < len(history) {
			line += " " + moveName(history[i+1])
		}
		lines = append(lines, line)
	}
	if len(lines) > movePairs {
		lines = lines[len(lines)-movePairs:]
	}
	return strings.Join(lines, "\n")
}

func playerLine(players Players, side engine.Side, turn engine.Side) string {
	marker := " "
	if side == turn {
		marker = "*"
	}
	return fmt.Sprintf("%s %s %s", marker, pieceGlyph(engine.King, side), players.Name(side))
}
