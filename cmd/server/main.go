package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/netchess/pkg/config"
	"github.com/qnkhuat/netchess/pkg/logging"
	"github.com/qnkhuat/netchess/pkg/sshserve"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logPath := flag.String("log", "", "path to log file")
	addr := flag.String("addr", "", "ssh listen address")
	client := flag.String("client", "", "path to the netchess client binary")
	hostKey := flag.String("hostkey", "", "ssh host key file; an ephemeral key is used when empty")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		color.Red("server: %v", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			cfg.Log.Path = *logPath
		case "addr":
			cfg.SSH.Address = *addr
		case "client":
			cfg.SSH.Client = *client
		case "hostkey":
			cfg.SSH.HostKeyPath = *hostKey
		}
	})
	if err := cfg.Validate(); err != nil {
		color.Red("server: %v", err)
		os.Exit(1)
	}

	log, err := logging.InitLog(cfg.Log.Path, "server", cfg.Log.Level)
	if err != nil {
		color.Red("server: %v", err)
		os.Exit(1)
	}
	defer log.Sync()

	s, err := sshserve.New(cfg.SSH, cfg.Log.Path+".clients", log)
	if err != nil {
		log.Error("failed to create ssh server", zap.Error(err))
		color.Red("server: %v", err)
		os.Exit(1)
	}

	go func() {
		log.Info("ssh server started", zap.String("address", cfg.SSH.Address))
		color.Green("Listening for ssh on %s", cfg.SSH.Address)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("ssh server stopped", zap.Error(err))
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
