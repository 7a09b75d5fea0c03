package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/qnkhuat/netchess/pkg/config"
	"github.com/qnkhuat/netchess/pkg/game"
	"github.com/qnkhuat/netchess/pkg/gui"
	"github.com/qnkhuat/netchess/pkg/logging"
	"github.com/qnkhuat/netchess/pkg/netplay"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const usage = `usage: netchess [flags] local|host|join [-addr host:port] [-attempts n]

  local   two players share this terminal
  host    wait for an opponent, play White
  join    connect to a host, play Black

flags:
`

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	logPath    = flag.String("log", "", "path to log file")
	logLevel   = flag.String("level", "", "log level: debug, info, warn, error")
	name       = flag.String("name", "", "player name")
	themeName  = flag.String("theme", "", "board theme")
	frameRate  = flag.Int("fps", 0, "frames per second")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, netplay.ErrPeerDisconnected) {
			color.Yellow("Your opponent left the game.")
			os.Exit(0)
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "netchess: %v\n", err)
		os.Exit(1)
	}
}

func run(mode string, args []string) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	modeFlags := flag.NewFlagSet(mode, flag.ContinueOnError)
	addr := modeFlags.String("addr", cfg.Network.Address, "address to host on or join")
	attempts := modeFlags.Int("attempts", cfg.Network.MaxAttempts, "connection attempts before giving up, 0 for no limit")
	if err := modeFlags.Parse(args); err != nil {
		return err
	}
	cfg.Network.Address = *addr
	cfg.Network.MaxAttempts = *attempts
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("netchess needs an interactive terminal")
	}

	log, err := logging.InitLog(cfg.Log.Path, mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	theme, err := gui.LookupTheme(cfg.Theme, cfg.Themes)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		stepper gui.Stepper
		players gui.Players
	)
	switch mode {
	case "local":
		stepper = game.NewController(log.Named("game"))
		players = gui.Players{White: cfg.Player.Name, Black: cfg.Player.Name}

	case "host":
		color.Cyan("Waiting for an opponent on %s ...", cfg.Network.Address)
		s, err := netplay.Host(ctx, cfg.Network, log)
		if err != nil {
			return err
		}
		defer s.Close()
		stepper = s
		players = gui.Players{White: cfg.Player.Name, Black: "opponent"}

	case "join":
		color.Cyan("Connecting to %s ...", cfg.Network.Address)
		s, err := netplay.Join(ctx, cfg.Network, log)
		if err != nil {
			return err
		}
		defer s.Close()
		stepper = s
		players = gui.Players{White: "opponent", Black: cfg.Player.Name}

	default:
		flag.Usage()
		return fmt.Errorf("unknown mode %q", mode)
	}

	log.Info("starting game", zap.String("mode", mode), zap.String("player", cfg.Player.Name))
	ui := gui.NewUI(theme, players, cfg.FrameRate, log.Named("gui"))
	return ui.Run(ctx, stepper)
}

// applyFlags lets command line flags win over the config file.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			cfg.Log.Path = *logPath
		case "level":
			cfg.Log.Level = *logLevel
		case "name":
			cfg.Player.Name = *name
		case "theme":
			cfg.Theme = *themeName
		case "fps":
			cfg.FrameRate = *frameRate
		}
	})
}
