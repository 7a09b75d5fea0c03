package engine

import "math/bits"

// SquareSet is a set of squares, one bit per index.
type SquareSet uint64

func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq)) != 0
}

func (s SquareSet) With(sq Square) SquareSet {
	return s | 1<<uint(sq)
}

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

func (s SquareSet) Empty() bool { return s == 0 }

// Squares lists the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

// PseudoMoves returns the destinations of the piece on sq that respect movement
// geometry and occupancy, without checking whether the mover's king is left in check.
func PseudoMoves(b *Board, sq Square) SquareSet {
	piece, side := b.Get(sq)
	switch piece {
	case Pawn:
		return pawnMoves(b, sq, side)
	case Knight:
		return stepMoves(b, sq, side, knightJumps)
	case King:
		return stepMoves(b, sq, side, adjacent) | castleMoves(b, sq, side)
	case Rook, Bishop, Queen:
		return slideMoves(b, sq, side, rays[piece])
	}
	return 0
}

func pawnMoves(b *Board, sq Square, side Side) SquareSet {
	var moves SquareSet
	fwd := Forward(side)

	steps := 1
	if sq.Row() == PawnRow(side) {
		steps = 2
	}
	cur := sq
	for i := 0; i < steps; i++ {
		next, ok := cur.Offset(fwd, 0)
		if !ok || b.Occupied(next) {
			break
		}
		moves = moves.With(next)
		cur = next
	}

	for _, d := range pawnCaptures[side.Index()] {
		to, ok := sq.Offset(d.dr, d.dc)
		if !ok {
			continue
		}
		if p, owner := b.Get(to); p != None && owner != side {
			moves = moves.With(to)
		}
	}
	return moves
}

func stepMoves(b *Board, sq Square, side Side, dirs []direction) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		to, ok := sq.Offset(d.dr, d.dc)
		if !ok {
			continue
		}
		if p, owner := b.Get(to); p == None || owner != side {
			moves = moves.With(to)
		}
	}
	return moves
}

func slideMoves(b *Board, sq Square, side Side, dirs []direction) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := cur.Offset(d.dr, d.dc)
			if !ok {
				break
			}
			cur = next
			p, owner := b.Get(cur)
			if p == None {
				moves = moves.With(cur)
				continue
			}
			if owner != side {
				moves = moves.With(cur)
			}
			break
		}
	}
	return moves
}

// castleMoves offers the king a two-file step toward each rook that has never
// moved, provided nothing stands between them. Squares the king crosses are not
// tested for attacks; only the destination is, by LegalMoves.
func castleMoves(b *Board, sq Square, side Side) SquareSet {
	if b.KingMoved(side) {
		return 0
	}
	var moves SquareSet
	for _, w := range []Wing{Queenside, Kingside} {
		if b.RookMoved(side, w) {
			continue
		}
		dc := wingDirection(w)
		rook, ok := castlingRook(b, sq, dc)
		if !ok || abs(rook.Col()-sq.Col()) <= 2 {
			continue
		}
		if to, ok := sq.Offset(0, 2*dc); ok {
			moves = moves.With(to)
		}
	}
	return moves
}

func wingDirection(w Wing) int {
	if w == Queenside {
		return -1
	}
	return 1
}

// castlingRook scans from the king toward the edge in column direction dc and
// returns the first occupied square if it holds a rook of the king's side.
func castlingRook(b *Board, king Square, dc int) (Square, bool) {
	_, side := b.Get(king)
	cur := king
	for {
		next, ok := cur.Offset(0, dc)
		if !ok {
			return NoSquare, false
		}
		cur = next
		p, owner := b.Get(cur)
		if p == None {
			continue
		}
		return cur, p == Rook && owner == side
	}
}

// IsCastle reports whether moving the king from one square to the other is a castle.
func IsCastle(b *Board, from, to Square) bool {
	p, _ := b.Get(from)
	if p != King || from.Row() != to.Row() {
		return false
	}
	dc := to.Col() - from.Col()
	return dc == 2 || dc == -2
}

// CastleRook returns where the rook comes from and goes to when the king on
// from castles to to. It must be called before the king is moved.
func CastleRook(b *Board, from, to Square) (rookFrom, rookTo Square, ok bool) {
	if !IsCastle(b, from, to) {
		return NoSquare, NoSquare, false
	}
	dc := 1
	if to.Col() < from.Col() {
		dc = -1
	}
	rookFrom, ok = castlingRook(b, from, dc)
	if !ok {
		return NoSquare, NoSquare, false
	}
	rookTo, _ = from.Offset(0, dc)
	return rookFrom, rookTo, true
}

type savedSquare struct {
	sq    Square
	piece Piece
	side  Side
}

// trial is an in-place move applied to a board for a legality test.
type trial struct {
	b     *Board
	saved [4]savedSquare
	n     int
}

func (t *trial) save(sq Square) {
	p, s := t.b.Get(sq)
	t.saved[t.n] = savedSquare{sq: sq, piece: p, side: s}
	t.n++
}

// restore puts back every touched square, latest first.
func (t *trial) restore() {
	for i := t.n - 1; i >= 0; i-- {
		s := t.saved[i]
		t.b.Place(s.sq, s.piece, s.side)
	}
	t.n = 0
}

func applyTrial(b *Board, from, to Square) *trial {
	t := &trial{b: b}
	rookFrom, rookTo, castle := CastleRook(b, from, to)

	t.save(from)
	t.save(to)
	if castle {
		t.save(rookFrom)
		t.save(rookTo)
	}

	p, s := b.Get(from)
	b.Place(to, p, s)
	b.Clear(from)
	if castle {
		rp, rs := b.Get(rookFrom)
		b.Place(rookTo, rp, rs)
		b.Clear(rookFrom)
	}
	return t
}

// leavesKingSafe plays from→to on b, tests the mover's king and restores b.
func leavesKingSafe(b *Board, from, to Square, side Side) bool {
	t := applyTrial(b, from, to)
	defer t.restore()
	return !InCheck(b, side)
}

// LegalMoves returns the pseudo moves of the piece on sq that do not leave its
// own king in check. b is used as scratch space and is unchanged on return.
func LegalMoves(b *Board, sq Square) SquareSet {
	piece, side := b.Get(sq)
	if piece == None {
		return 0
	}
	var legal SquareSet
	for _, to := range PseudoMoves(b, sq).Squares() {
		if leavesKingSafe(b, sq, to, side) {
			legal = legal.With(to)
		}
	}
	return legal
}

// AllLegalMoves computes LegalMoves for every square on the board.
func AllLegalMoves(b *Board) [NumSquares]SquareSet {
	var all [NumSquares]SquareSet
	for sq := Square(0); sq < NumSquares; sq++ {
		all[sq] = LegalMoves(b, sq)
	}
	return all
}

// HasLegalMoves reports whether any piece of side can move.
func HasLegalMoves(b *Board, side Side) bool {
	for sq := Square(0); sq < NumSquares; sq++ {
		if p, owner := b.Get(sq); p == None || owner != side {
			continue
		}
		if !LegalMoves(b, sq).Empty() {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
