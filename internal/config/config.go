// Package config provides configuration for identicon generation.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/identicon"
	"github.com/jmylchreest/identicon/internal/render"
)

// Environment variables read by WithEnvConfig.
const (
	EnvOutputDir  = "IDENTICON_OUTPUT_DIR"
	EnvSize       = "IDENTICON_SIZE"
	EnvJobs       = "IDENTICON_JOBS"
	EnvBackground = "IDENTICON_BACKGROUND"
)

// Config holds generation settings.
type Config struct {
	// OutputDir is where images are written. Empty means the working directory.
	OutputDir string

	// Size is the width and height of generated images in pixels.
	Size int

	// Jobs is the number of identicons generated concurrently.
	Jobs int

	// Background is the canvas colour. Nil means transparent.
	Background *colour.RGB
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size: identicon.CanvasSize,
		Jobs: runtime.NumCPU(),
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Size < render.MinSize || c.Size > render.MaxSize {
		return fmt.Errorf("invalid size %d (must be %d-%d)", c.Size, render.MinSize, render.MaxSize)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("invalid jobs %d (must be at least 1)", c.Jobs)
	}
	return nil
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
}

// NewBuilder creates a new Config builder starting from the defaults.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithEnvConfig loads configuration from environment variables.
// Reads IDENTICON_OUTPUT_DIR, IDENTICON_SIZE, IDENTICON_JOBS and IDENTICON_BACKGROUND.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// Build constructs and validates the Config.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.useEnv {
		if dir := os.Getenv(EnvOutputDir); dir != "" {
			config.OutputDir = dir
		}
		if size := os.Getenv(EnvSize); size != "" {
			n, err := strconv.Atoi(size)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvSize, err)
			}
			config.Size = n
		}
		if jobs := os.Getenv(EnvJobs); jobs != "" {
			n, err := strconv.Atoi(jobs)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvJobs, err)
			}
			config.Jobs = n
		}
		if bg := os.Getenv(EnvBackground); bg != "" {
			rgb, err := colour.ParseHex(bg)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvBackground, err)
			}
			config.Background = &rgb
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
