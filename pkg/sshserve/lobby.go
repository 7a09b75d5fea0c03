package sshserve

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
)

const (
	RoleHost = "host"
	RoleJoin = "join"
)

var ErrLobbyFull = errors.New("no free game ports")

// Seat tells a spawned client whether to host or join, and where.
type Seat struct {
	Role    string
	Address string
	port    int
}

// Lobby pairs ssh visitors two by two. The first of a pair hosts a game on a
// port from the pool and the second joins it.
type Lobby struct {
	mu      sync.Mutex
	host    string
	first   int
	last    int
	used    map[int]bool
	waiting *Seat
}

func NewLobby(host string, first, last int) *Lobby {
	return &Lobby{
		host:  host,
		first: first,
		last:  last,
		used:  make(map[int]bool),
	}
}

// Take seats a visitor: at the waiting host's game if there is one, otherwise
// as the host of a new game.
func (l *Lobby) Take() (Seat, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.waiting != nil {
		seat := Seat{Role: RoleJoin, Address: l.waiting.Address, port: l.waiting.port}
		l.waiting = nil
		return seat, nil
	}

	for port := l.first; port <= l.last; port++ {
		if l.used[port] {
			continue
		}
		l.used[port] = true
		seat := Seat{
			Role:    RoleHost,
			Address: net.JoinHostPort(l.host, strconv.Itoa(port)),
			port:    port,
		}
		l.waiting = &seat
		return seat, nil
	}
	return Seat{}, fmt.Errorf("%w in %d-%d", ErrLobbyFull, l.first, l.last)
}

// Release gives back a seat once its client exits. A host leaving frees the
// port and, if nobody joined yet, stops offering the game.
func (l *Lobby) Release(s Seat) {
	if s.Role != RoleHost {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.used, s.port)
	if l.waiting != nil && l.waiting.port == s.port {
		l.waiting = nil
	}
}

// Waiting reports whether a host is waiting for an opponent.
func (l *Lobby) Waiting() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.waiting != nil
}
