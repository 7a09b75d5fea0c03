package engine

// InCheck reports whether side's king is attacked. A board without that king is
// never in check.
func InCheck(b *Board, side Side) bool {
	king, ok := b.Find(King, side)
	if !ok {
		return false
	}
	return Attacked(b, king, side.Other())
}

// Attacked reports whether any piece of side by attacks sq.
func Attacked(b *Board, sq Square, by Side) bool {
	for _, d := range adjacent {
		cur := sq
		for dist := 1; ; dist++ {
			next, ok := cur.Offset(d.dr, d.dc)
			if !ok {
				break
			}
			cur = next
			p, owner := b.Get(cur)
			if p == None {
				continue
			}
			if owner == by && threatens(p, owner, d, dist) {
				return true
			}
			break // Blocked
		}
	}

	for _, j := range knightJumps {
		to, ok := sq.Offset(j.dr, j.dc)
		if !ok {
			continue
		}
		if p, owner := b.Get(to); p == Knight && owner == by {
			return true
		}
	}
	return false
}

// threatens reports whether a piece found dist steps away from the target along d
// attacks the target.
func threatens(p Piece, owner Side, d direction, dist int) bool {
	switch p {
	case Queen:
		return true
	case Rook:
		return d.orthogonal()
	case Bishop:
		return d.diagonal()
	case King:
		return dist == 1
	case Pawn:
		// Seen from the target, the pawn sits one step against its own forward direction.
		return dist == 1 && d.diagonal() && d.dr == -Forward(owner)
	}
	return false
}
