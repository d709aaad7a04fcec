// Package config holds the settings of the chess server and terminal client.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all runtime settings.
type Config struct {
	// HTTP server
	HTTPAddr            string
	AllowedOrigins      []string
	MatchmakingInterval time.Duration
	ShutdownTimeout     time.Duration

	// SSH terminal server
	SSHAddr     string
	HostKeyPath string

	LogLevel string
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		HTTPAddr:            ":3000",
		AllowedOrigins:      []string{"http://localhost:5173"},
		MatchmakingInterval: time.Second,
		ShutdownTimeout:     30 * time.Second,
		SSHAddr:             ":2222",
		HostKeyPath:         ".ssh/chess_host_key",
		LogLevel:            "info",
	}
}

// Load parses args on top of the defaults, then applies environment
// overrides. getenv is usually os.Getenv.
func Load(name string, args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	origins := strings.Join(cfg.AllowedOrigins, ",")

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&origins, "origins", origins, "comma-separated CORS and websocket origins")
	fs.DurationVar(&cfg.MatchmakingInterval, "match-interval", cfg.MatchmakingInterval, "how often queued players are paired")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "grace period for open connections on shutdown")
	fs.StringVar(&cfg.SSHAddr, "ssh-addr", cfg.SSHAddr, "SSH listen address")
	fs.StringVar(&cfg.HostKeyPath, "host-key", cfg.HostKeyPath, "SSH host key path, generated if missing")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.AllowedOrigins = splitList(origins)

	if getenv == nil {
		getenv = os.Getenv
	}
	if port := getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + port
	}
	if v := getenv("CHESS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := getenv("CHESS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http address is empty"))
	}
	if c.SSHAddr == "" {
		errs = append(errs, errors.New("ssh address is empty"))
	}
	if c.MatchmakingInterval <= 0 {
		errs = append(errs, fmt.Errorf("matchmaking interval %v must be positive", c.MatchmakingInterval))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout %v is negative", c.ShutdownTimeout))
	}
	if len(c.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("no allowed origins"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
