package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration. Values come from an optional YAML file
// layered over defaults.
type Config struct {
	// Network settings
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`

	// Request settings
	MaxBodyBytes    int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// World size used for physics previews when the client has not
	// reported its own viewport yet.
	DefaultWorld WorldSize `json:"default_world" yaml:"default_world"`

	// Optional HTTP/3 listener on the same address (UDP). Requires TLS.
	HTTP3 HTTP3Config `json:"http3" yaml:"http3"`

	// Logging
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// WorldSize is a world viewport in pixels.
type WorldSize struct {
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// HTTP3Config enables the alternate QUIC listener.
type HTTP3Config struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	CertFile string `json:"cert_file" yaml:"cert_file"`
	KeyFile  string `json:"key_file" yaml:"key_file"`
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      "127.0.0.1:8080",
		MaxBodyBytes:    1 << 20, // 1MB
		ShutdownTimeout: 10 * time.Second,
		DefaultWorld:    WorldSize{W: 1280, H: 720},
		LogLevel:        "info",
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr is empty", ErrInvalidConfig)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}
	if c.DefaultWorld.W <= 0 || c.DefaultWorld.H <= 0 {
		return fmt.Errorf("%w: default_world dimensions must be positive", ErrInvalidConfig)
	}
	if c.HTTP3.Enabled && (c.HTTP3.CertFile == "" || c.HTTP3.KeyFile == "") {
		return fmt.Errorf("%w: http3 requires cert_file and key_file", ErrInvalidConfig)
	}
	return nil
}
