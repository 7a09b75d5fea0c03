//go:build windows

package sshserve

import (
	"context"
	"errors"

	"github.com/qnkhuat/netchess/pkg/config"
	"go.uber.org/zap"
)

// SSH server is unsupported on Windows

var ErrUnsupported = errors.New("the ssh front door needs a pty and is not supported on Windows")

type Server struct{}

func New(cfg config.SSH, logPath string, log *zap.Logger) (*Server, error) {
	return nil, ErrUnsupported
}

func (s *Server) ListenAndServe() error { return ErrUnsupported }

func (s *Server) Shutdown(ctx context.Context) error { return nil }
