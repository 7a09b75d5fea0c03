package engine

type direction struct {
	dr, dc int
}

func (d direction) orthogonal() bool { return d.dr == 0 || d.dc == 0 }
func (d direction) diagonal() bool   { return d.dr != 0 && d.dc != 0 }

var (
	orthogonals = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonals   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	adjacent    = append(append([]direction{}, orthogonals...), diagonals...)
	knightJumps = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	// rays lists the sliding directions for each piece kind that slides.
	rays = [numPieces][]direction{
		Rook:   orthogonals,
		Bishop: diagonals,
		Queen:  adjacent,
	}

	// pawnCaptures holds the two capture directions per side.
	pawnCaptures = [2][]direction{
		White: {{Forward(White), -1}, {Forward(White), 1}},
		Black: {{Forward(Black), -1}, {Forward(Black), 1}},
	}
)
