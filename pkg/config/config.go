package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/qnkhuat/netchess/pkg/gui"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddress      = "localhost:4242"
	DefaultRetryBackoff = 250 * time.Millisecond
	DefaultFrameRate    = 30
	DefaultLogPath      = "./log"
	DefaultTheme        = "basic"

	DefaultSSHAddress     = ":2222"
	DefaultSSHIdleTimeout = 5 * time.Minute
	DefaultGameHost       = "127.0.0.1"
	DefaultGamePortFirst  = 4300
	DefaultGamePortLast   = 4399
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Network   Network `yaml:"network"`
	FrameRate int     `yaml:"frame_rate"`
	Log       Log     `yaml:"log"`
	Player    Player  `yaml:"player"`
	Theme     string  `yaml:"theme"`
	// Themes adds to or overrides the built in themes by name.
	Themes []gui.ThemeHex `yaml:"themes"`
	SSH    SSH            `yaml:"ssh"`
}

type Network struct {
	// Address is where the host listens and the joiner dials.
	Address      string        `yaml:"address"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
	// MaxAttempts bounds the joiner's connection attempts; 0 retries forever.
	MaxAttempts int `yaml:"max_attempts"`
}

type Log struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

type Player struct {
	Name string `yaml:"name"`
}

// SSH configures the ssh front door that runs a client per session.
type SSH struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	Client      string        `yaml:"client"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	GameHost    string        `yaml:"game_host"`
	PortFirst   int           `yaml:"port_first"`
	PortLast    int           `yaml:"port_last"`
}

func Default() Config {
	return Config{
		Network: Network{
			Address:      DefaultAddress,
			RetryBackoff: DefaultRetryBackoff,
		},
		FrameRate: DefaultFrameRate,
		Log: Log{
			Path:  DefaultLogPath,
			Level: "info",
		},
		Player: Player{
			Name: petname.Generate(2, "-"),
		},
		Theme: DefaultTheme,
		SSH: SSH{
			Address:     DefaultSSHAddress,
			IdleTimeout: DefaultSSHIdleTimeout,
			GameHost:    DefaultGameHost,
			PortFirst:   DefaultGamePortFirst,
			PortLast:    DefaultGamePortLast,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var problems []string

	if _, _, err := net.SplitHostPort(c.Network.Address); err != nil {
		problems = append(problems, fmt.Sprintf("network.address %q: %v", c.Network.Address, err))
	}
	if c.Network.RetryBackoff <= 0 {
		problems = append(problems, "network.retry_backoff must be positive")
	}
	if c.Network.MaxAttempts < 0 {
		problems = append(problems, "network.max_attempts must not be negative")
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		problems = append(problems, fmt.Sprintf("frame_rate %d out of range 1-240", c.FrameRate))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q unknown", c.Log.Level))
	}
	if strings.TrimSpace(c.Player.Name) == "" {
		problems = append(problems, "player.name is required")
	}
	if _, err := gui.LookupTheme(c.Theme, c.Themes); err != nil {
		problems = append(problems, err.Error())
	}
	if c.SSH.PortFirst <= 0 || c.SSH.PortLast < c.SSH.PortFirst || c.SSH.PortLast > 65535 {
		problems = append(problems, fmt.Sprintf("ssh port range %d-%d invalid", c.SSH.PortFirst, c.SSH.PortLast))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
