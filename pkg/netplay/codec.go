package netplay

import (
	"errors"
	"fmt"

	"github.com/qnkhuat/netchess/pkg/engine"
)

// TokenSize is the length of one move on the wire: "FF,TT".
const TokenSize = 5

var ErrMalformedToken = errors.New("malformed move token")

// EncodeMove renders m as two zero-padded square indices separated by a comma.
func EncodeMove(m engine.Move) ([]byte, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return nil, fmt.Errorf("%w: move %d->%d out of range", ErrMalformedToken, m.From, m.To)
	}
	return []byte(fmt.Sprintf("%02d,%02d", int(m.From), int(m.To))), nil
}

func DecodeMove(token []byte) (engine.Move, error) {
	if len(token) != TokenSize || token[2] != ',' {
		return engine.Move{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	from, ok := decodeSquare(token[0:2])
	if !ok {
		return engine.Move{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	to, ok := decodeSquare(token[3:5])
	if !ok {
		return engine.Move{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	return engine.Move{From: from, To: to}, nil
}

func decodeSquare(b []byte) (engine.Square, bool) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return engine.NoSquare, false
		}
		n = n*10 + int(c-'0')
	}
	sq := engine.Square(n)
	return sq, sq.Valid()
}
