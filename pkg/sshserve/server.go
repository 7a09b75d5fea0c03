//go:build !windows

package sshserve

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/qnkhuat/netchess/pkg/config"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

// Server is an ssh front door: every session gets a pty running the netchess
// client, seated by the lobby as host or joiner.
type Server struct {
	*ssh.Server
	lobby   *Lobby
	client  string
	logPath string
	log     *zap.Logger
}

func New(cfg config.SSH, logPath string, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		lobby:   NewLobby(cfg.GameHost, cfg.PortFirst, cfg.PortLast),
		client:  cfg.Client,
		logPath: logPath,
		log:     log,
	}
	if s.client == "" {
		s.client = "netchess"
	}
	s.Server = &ssh.Server{
		Addr:        cfg.Address,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
	}

	if cfg.HostKeyPath != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKeyPath)); err != nil {
			return nil, fmt.Errorf("load host key: %w", err)
		}
		return s, nil
	}
	signer, err := EphemeralSigner()
	if err != nil {
		return nil, err
	}
	s.AddHostKey(signer)
	log.Warn("no host key configured, using an ephemeral one")
	return s, nil
}

// EphemeralSigner generates an ed25519 host key that lives as long as the process.
func EphemeralSigner() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := gossh.NewSignerFromKey(priv)
	if err != nil {
		return nil, fmt.Errorf("host key signer: %w", err)
	}
	return signer, nil
}

func (s *Server) handle(sess ssh.Session) {
	id := uuid.New()
	log := s.log.With(zap.String("ssh_session", id.String()), zap.String("user", sess.User()), zap.Stringer("remote", sess.RemoteAddr()))

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	seat, err := s.lobby.Take()
	if err != nil {
		log.Warn("turned visitor away", zap.Error(err))
		io.WriteString(sess, "all boards are busy, try again later\n")
		sess.Exit(1)
		return
	}
	defer s.lobby.Release(seat)
	log.Info("seated", zap.String("role", seat.Role), zap.String("address", seat.Address))

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.client, s.clientArgs(seat, sess.User())...)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		log.Error("failed to start client", zap.Error(err))
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	setWinsize(f, ptyReq.Window.Width, ptyReq.Window.Height)
	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	if err := cmd.Wait(); err != nil {
		log.Info("client exited", zap.Error(err))
	}
}

func (s *Server) clientArgs(seat Seat, user string) []string {
	args := []string{}
	if s.logPath != "" {
		args = append(args, "-log", s.logPath)
	}
	args = append(args, "-name", user, seat.Role, "-addr", seat.Address)
	return args
}
