package netplay

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/qnkhuat/netchess/pkg/engine"
)

func TestSendQueuesWhilePeerIsSlow(t *testing.T) {
	a, b := net.Pipe()
	c := NewConn(a, nil)
	defer c.Close()
	defer b.Close()

	moves := []engine.Move{{From: 52, To: 36}, {From: 12, To: 28}, {From: 62, To: 45}}
	sent := make(chan error, 1)
	go func() {
		for _, m := range moves {
			if err := c.Send(m); err != nil {
				sent <- err
				return
			}
		}
		sent <- nil
	}()

	// Nobody reads the pipe yet, so every write would block; Send must not.
	select {
	case err := <-sent:
		if err != nil {
			t.Fatalf("Send() error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a peer that is not reading")
	}

	time.Sleep(50 * time.Millisecond)
	buf := make([]byte, len(moves)*TokenSize)
	b.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := io.ReadFull(b, buf); err != nil {
		t.Fatalf("reading queued moves: %v", err)
	}
	if got, want := string(buf), "52,3612,2862,45"; got != want {
		t.Fatalf("peer read %q, want %q", got, want)
	}
}

func TestSlowPeerStillGetsTheMove(t *testing.T) {
	host, join := pipeSessions(t)

	play(t, host, 52, 36)
	time.Sleep(50 * time.Millisecond)

	stepUntil(t, join, func() bool { return len(join.Controller().History()) == 1 })
	if m, _ := join.Controller().LastMove(); m != (engine.Move{From: 52, To: 36}) {
		t.Fatalf("peer received %s, want e2e4", m)
	}
}
