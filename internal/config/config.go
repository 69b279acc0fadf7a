package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/ghostwire/internal/protocol/packet"
)

// SessionConfig is the on-disk session and responder configuration.
type SessionConfig struct {
	SessionID      string       `toml:"session_id"`
	RequestTimeout string       `toml:"request_timeout"`
	MaxBodyBytes   int          `toml:"max_body_bytes"`
	MaxDepth       int          `toml:"max_depth"`
	Server         ServerConfig `toml:"server"`
}

type ServerConfig struct {
	Listen    string `toml:"listen"`
	AdminAddr string `toml:"admin_addr"`
	// AdminToken, when set, is required as a bearer token on admin routes
	// other than /health.
	AdminToken string `toml:"admin_token"`
}

func LoadSessionConfig(path string) (SessionConfig, error) {
	var cfg SessionConfig
	if err := loadToml(path, &cfg); err != nil {
		return SessionConfig{}, err
	}
	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = "30s"
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = 8 << 20
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = 32
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = "127.0.0.1:4444"
	}
	if err := ValidateSessionConfig(cfg); err != nil {
		return SessionConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateSessionConfig(cfg SessionConfig) error {
	if strings.TrimSpace(cfg.SessionID) != "" {
		if _, err := packet.ParseSessionID(cfg.SessionID); err != nil {
			return fmt.Errorf("session config: %w", err)
		}
	}
	d, err := time.ParseDuration(strings.TrimSpace(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("session config: request_timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("session config: request_timeout must not be negative")
	}
	if cfg.MaxBodyBytes < 0 {
		return fmt.Errorf("session config: max_body_bytes must not be negative")
	}
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("session config: max_depth must be at least 1")
	}
	if strings.TrimSpace(cfg.Server.Listen) == "" {
		return fmt.Errorf("session config: server.listen is required")
	}
	return nil
}
