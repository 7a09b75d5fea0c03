package engine

import "fmt"

const (
	NumRows    = 8
	NumCols    = 8
	NumSquares = NumRows * NumCols
)

// Square is a board index, row*8+col. Row 0 is Black's back rank, col 0 the a-file.
type Square int

const NoSquare Square = -1

func SquareAt(row, col int) Square {
	return Square(row*NumCols + col)
}

func (sq Square) Row() int { return int(sq) / NumCols }
func (sq Square) Col() int { return int(sq) % NumCols }

func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Offset steps dr rows and dc columns away. Squares off the board are reported
// with ok=false; nothing wraps around an edge.
func (sq Square) Offset(dr, dc int) (Square, bool) {
	r, c := sq.Row()+dr, sq.Col()+dc
	if r < 0 || r >= NumRows || c < 0 || c >= NumCols {
		return NoSquare, false
	}
	return SquareAt(r, c), true
}

func (sq Square) IsCorner() bool {
	r, c := sq.Row(), sq.Col()
	return (r == 0 || r == NumRows-1) && (c == 0 || c == NumCols-1)
}

func (sq Square) String() string {
	if !sq.Valid() {
		return fmt.Sprintf("Square(%d)", int(sq))
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col(), NumRows-sq.Row())
}

type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

type Side int

const (
	White Side = iota
	Black
)

// Index converts the side into an index for per-side arrays.
func (s Side) Index() int { return int(s) }

func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

type Piece int

const (
	None Piece = iota
	Pawn
	Rook
	Knight
	Bishop
	King
	Queen
	numPieces
)

func (p Piece) String() string {
	switch p {
	case None:
		return "None"
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case King:
		return "King"
	case Queen:
		return "Queen"
	default:
		return "Unknown"
	}
}

// Wing selects one of a side's two rooks, ordered by file.
type Wing int

const (
	Queenside Wing = iota
	Kingside
)

// WingOf returns the wing of the rook that starts on the corner nearest sq's file.
func WingOf(sq Square) Wing {
	if sq.Col() < NumCols/2 {
		return Queenside
	}
	return Kingside
}
