package netplay

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/qnkhuat/netchess/pkg/engine"
	"go.uber.org/zap"
)

const ConnQueueSize = 10

var (
	ErrPeerDisconnected = errors.New("peer disconnected")
	ErrClosed           = errors.New("connection closed")
)

type inbound struct {
	move engine.Move
	err  error
}

// Conn carries move tokens over a stream. A reader goroutine decodes tokens as
// they arrive and a writer goroutine drains the outbound queue, so neither
// Poll nor Send blocks the frame loop on the socket.
type Conn struct {
	conn net.Conn
	log  *zap.Logger

	in  chan inbound
	out chan []byte

	done      chan struct{}
	closeOnce sync.Once

	// err is the terminal read error, sticky once observed by Poll.
	err error
}

func NewConn(conn net.Conn, log *zap.Logger) *Conn {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Conn{
		conn: conn,
		log:  log,
		in:   make(chan inbound, ConnQueueSize),
		out:  make(chan []byte, ConnQueueSize),
		done: make(chan struct{}),
	}
	go c.handleRead()
	go c.handleWrite()
	return c
}

func (c *Conn) handleRead() {
	buf := make([]byte, TokenSize)
	for {
		var msg inbound
		if _, err := io.ReadFull(c.conn, buf); err != nil {
			msg.err = c.readError(err)
		} else if m, err := DecodeMove(buf); err != nil {
			msg.err = err
		} else {
			msg.move = m
		}

		select {
		case c.in <- msg:
		case <-c.done:
			return
		}
		if msg.err != nil {
			return
		}
	}
}

func (c *Conn) readError(err error) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrPeerDisconnected
	}
	return fmt.Errorf("%w: %v", ErrPeerDisconnected, err)
}

func (c *Conn) handleWrite() {
	for {
		select {
		case token := <-c.out:
			if _, err := c.conn.Write(token); err != nil {
				// The reader sees the same failure and reports it.
				c.log.Warn("failed to write move", zap.ByteString("token", token), zap.Error(err))
				return
			}
		case <-c.done:
			return
		}
	}
}

// Poll reports a move from the peer if one has arrived. It never blocks. Once
// the peer disconnects or sends garbage, every later call returns that error.
func (c *Conn) Poll() (engine.Move, bool, error) {
	if c.err != nil {
		return engine.Move{}, false, c.err
	}
	select {
	case msg := <-c.in:
		if msg.err != nil {
			c.err = msg.err
			return engine.Move{}, false, msg.err
		}
		return msg.move, true, nil
	default:
		return engine.Move{}, false, nil
	}
}

// Send queues m for the peer. It blocks only while the outbound queue is full.
func (c *Conn) Send(m engine.Move) error {
	token, err := EncodeMove(m)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.out <- token:
		return nil
	case <-c.done:
		return ErrClosed
	}
}

func (c *Conn) Close() error {
	err := ErrClosed
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}
