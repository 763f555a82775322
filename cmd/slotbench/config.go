// File: cmd/slotbench/config.go
// Author: momentics <momentics@gmail.com>
//
// Benchmark configuration: defaults, optional HuJSON file, flag
// overrides on top. HuJSON keeps comments and trailing commas legal in
// config files.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tailscale/hujson"
)

// Config holds all benchmark configuration.
type Config struct {
	Capacity int    `json:"capacity"`
	ElemSize int    `json:"elem_size"`
	Duration string `json:"duration"`
	UseMmap  bool   `json:"mmap"`
	Journal  bool   `json:"journal"`
}

// DefaultConfig returns the default benchmark configuration.
func DefaultConfig() Config {
	return Config{
		Capacity: 1024,
		ElemSize: 64,
		Duration: "2s",
	}
}

// LoadConfig reads a HuJSON config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := json.Unmarshal(std, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against the ring's construction
// constraints.
func (c Config) Validate() error {
	if c.Capacity < 2 {
		return fmt.Errorf("capacity %d: need at least 2", c.Capacity)
	}
	if c.ElemSize < 8 {
		return fmt.Errorf("elem_size %d: bench stamps an 8-byte sequence per slot", c.ElemSize)
	}
	if _, err := c.duration(); err != nil {
		return err
	}
	return nil
}

func (c Config) duration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", c.Duration, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q: must be positive", c.Duration)
	}
	return d, nil
}
