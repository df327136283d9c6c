package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// Environment variable names
const (
	EnvWidth        = "SNAKE_WIDTH"
	EnvHeight       = "SNAKE_HEIGHT"
	EnvFrameMs      = "SNAKE_FRAME_MS"
	EnvSeed         = "SNAKE_SEED"
	EnvAudioEnabled = "SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "SNAKE_MASTER_VOLUME"
	EnvDebug        = "SNAKE_DEBUG"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
)

// DefaultEnvFile is the optional dotenv file read by Load
const DefaultEnvFile = ".env"

// Config holds all runtime settings
type Config struct {
	Board         core.Size
	FrameInterval time.Duration
	Seed          uint64 // 0 seeds fruit placement from the clock
	Audio         *audio.AudioConfig
	Debug         bool
	LogLevel      string
	LogFormat     string
}

// Default returns a 20x20 board at 80ms per frame with audio on
func Default() *Config {
	return &Config{
		Board: core.Size{
			Width:  constants.DefaultBoardWidth,
			Height: constants.DefaultBoardHeight,
		},
		FrameInterval: constants.FrameUpdateInterval,
		Audio:         audio.DefaultAudioConfig(),
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads the dotenv file if present, then applies environment variables over defaults
// Malformed values are ignored and the default is kept
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables already set in the environment
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := envInt(EnvWidth); ok {
		c.Board.Width = v
	}
	if v, ok := envInt(EnvHeight); ok {
		c.Board.Height = v
	}
	if v, ok := envInt(EnvFrameMs); ok && v > 0 {
		c.FrameInterval = time.Duration(v) * time.Millisecond
	}
	if s := os.Getenv(EnvSeed); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = v
		}
	}

	if s := os.Getenv(EnvAudioEnabled); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			c.Audio.Enabled = v
		}
	}
	// Master volume 0-100 converted to 0.0-1.0
	if v, ok := envInt(EnvMasterVolume); ok {
		c.Audio.MasterVolume = clampVolume(float64(v) / 100.0)
	}

	if s := os.Getenv(EnvDebug); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			c.Debug = v
		}
	}
	if s := os.Getenv(EnvLogLevel); s != "" {
		c.LogLevel = s
	}
	if s := os.Getenv(EnvLogFormat); s != "" {
		c.LogFormat = s
	}
}

// Validate checks board and timing preconditions before the game is built
func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.Board.Height < constants.MinBoardHeight {
		return fmt.Errorf("board height %d below minimum %d", c.Board.Height, constants.MinBoardHeight)
	}
	if c.FrameInterval < constants.MinFrameInterval {
		return fmt.Errorf("frame interval %v below minimum %v", c.FrameInterval, constants.MinFrameInterval)
	}
	return nil
}

// SetMasterVolumePercent sets master volume from a 0-100 value
func (c *Config) SetMasterVolumePercent(pct int) {
	c.Audio.MasterVolume = clampVolume(float64(pct) / 100.0)
}

func envInt(name string) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
