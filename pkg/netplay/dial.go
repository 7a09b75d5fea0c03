package netplay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qnkhuat/netchess/pkg/config"
	"github.com/qnkhuat/netchess/pkg/engine"
	"github.com/qnkhuat/netchess/pkg/game"
	"go.uber.org/zap"
)

const (
	HostSide = engine.White
	JoinSide = engine.Black
)

var ErrJoinFailed = errors.New("could not reach host")

// Host listens on cfg.Address and waits for one peer.
func Host(ctx context.Context, cfg config.Network, log *zap.Logger) (*Session, error) {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Address, err)
	}
	return Accept(ctx, l, log)
}

// Accept takes exactly one connection from l, closes l and seats the local
// player as White.
func Accept(ctx context.Context, l net.Listener, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	defer l.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-stop:
		}
	}()

	log.Info("waiting for opponent", zap.Stringer("address", l.Addr()))
	conn, err := l.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("accept: %w", err)
	}
	log.Info("opponent connected", zap.Stringer("remote", conn.RemoteAddr()))
	return newSession(conn, HostSide, log), nil
}

// Join dials cfg.Address, retrying every cfg.RetryBackoff until it connects,
// ctx ends or cfg.MaxAttempts (when set) is used up. The local player is Black.
func Join(ctx context.Context, cfg config.Network, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var d net.Dialer
	for attempt := 1; ; attempt++ {
		conn, err := d.DialContext(ctx, "tcp", cfg.Address)
		if err == nil {
			log.Info("connected to host", zap.String("address", cfg.Address), zap.Int("attempts", attempt))
			return newSession(conn, JoinSide, log), nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if cfg.MaxAttempts > 0 && attempt >= cfg.MaxAttempts {
			return nil, fmt.Errorf("%w at %s after %d attempts: %v", ErrJoinFailed, cfg.Address, attempt, err)
		}
		log.Debug("host not reachable yet", zap.Int("attempt", attempt), zap.Error(err))

		t := time.NewTimer(cfg.RetryBackoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

func newSession(conn net.Conn, side engine.Side, log *zap.Logger) *Session {
	return NewSession(game.NewController(log.Named("game")), NewConn(conn, log.Named("conn")), side, log)
}
