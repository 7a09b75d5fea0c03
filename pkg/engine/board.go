package engine

var backRank = [NumCols]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board holds piece kind and owner per square plus the castling bookkeeping.
// It performs no validation; legality lives in the move generator.
type Board struct {
	pieces    [NumSquares]Piece
	owners    [NumSquares]Side
	kingMoved [2]bool
	rookMoved [2][2]bool
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// EmptyBoard returns a board with no pieces and no castling history.
func EmptyBoard() *Board {
	return &Board{}
}

// Reset loads the standard initial position.
func (b *Board) Reset() {
	*b = Board{}
	for col := 0; col < NumCols; col++ {
		b.Place(SquareAt(HomeRow(Black), col), backRank[col], Black)
		b.Place(SquareAt(PawnRow(Black), col), Pawn, Black)
		b.Place(SquareAt(PawnRow(White), col), Pawn, White)
		b.Place(SquareAt(HomeRow(White), col), backRank[col], White)
	}
}

func (b *Board) Get(sq Square) (Piece, Side) {
	return b.pieces[sq], b.owners[sq]
}

func (b *Board) Place(sq Square, p Piece, s Side) {
	b.pieces[sq] = p
	b.owners[sq] = s
}

func (b *Board) Clear(sq Square) {
	b.pieces[sq] = None
	b.owners[sq] = White
}

func (b *Board) Occupied(sq Square) bool {
	return b.pieces[sq] != None
}

// Find returns the first square holding p owned by s.
func (b *Board) Find(p Piece, s Side) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.pieces[sq] == p && b.owners[sq] == s {
			return sq, true
		}
	}
	return NoSquare, false
}

func (b *Board) KingMoved(s Side) bool { return b.kingMoved[s.Index()] }

func (b *Board) SetKingMoved(s Side) { b.kingMoved[s.Index()] = true }

func (b *Board) RookMoved(s Side, w Wing) bool { return b.rookMoved[s.Index()][w] }

func (b *Board) SetRookMoved(s Side, w Wing) { b.rookMoved[s.Index()][w] = true }

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether both boards hold the same pieces, owners and castling flags.
// Owners of empty squares are ignored.
func (b *Board) Equal(o *Board) bool {
	if b.kingMoved != o.kingMoved || b.rookMoved != o.rookMoved {
		return false
	}
	for sq := range b.pieces {
		if b.pieces[sq] != o.pieces[sq] {
			return false
		}
		if b.pieces[sq] != None && b.owners[sq] != o.owners[sq] {
			return false
		}
	}
	return true
}

// HomeRow is the row holding s's king and rooks at the start of the game.
func HomeRow(s Side) int {
	if s == White {
		return NumRows - 1
	}
	return 0
}

func PawnRow(s Side) int {
	return HomeRow(s) + Forward(s)
}

// Forward is the row direction s's pawns advance in.
func Forward(s Side) int {
	if s == White {
		return -1
	}
	return 1
}
