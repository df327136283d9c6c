package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/snake/core"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

// TestDefault verifies default configuration
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Board != (core.Size{Width: 20, Height: 20}) {
		t.Errorf("Expected 20x20 board, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.FrameInterval != 80*time.Millisecond {
		t.Errorf("Expected 80ms frame interval, got %v", cfg.FrameInterval)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected clock seed, got %d", cfg.Seed)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.Debug {
		t.Error("Expected debug disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

// TestLoadFromEnvironment verifies environment variables override defaults
func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvWidth, "30")
	t.Setenv(EnvHeight, "12")
	t.Setenv(EnvFrameMs, "120")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "80")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Board.Width != 30 || cfg.Board.Height != 12 {
		t.Errorf("Expected 30x12 board, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.FrameInterval != 120*time.Millisecond {
		t.Errorf("Expected 120ms, got %v", cfg.FrameInterval)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("Expected debug/json logging, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

// TestLoadIgnoresMalformedValues verifies bad values keep defaults
func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv(EnvWidth, "wide")
	t.Setenv(EnvFrameMs, "-5")
	t.Setenv(EnvSeed, "-1")
	t.Setenv(EnvAudioEnabled, "maybe")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Board.Width != 20 {
		t.Errorf("Expected default width, got %d", cfg.Board.Width)
	}
	if cfg.FrameInterval != 80*time.Millisecond {
		t.Errorf("Expected default interval, got %v", cfg.FrameInterval)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected default seed, got %d", cfg.Seed)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio to stay enabled")
	}
}

// TestLoadClampsVolume verifies out of range volume is clamped
func TestLoadClampsVolume(t *testing.T) {
	t.Setenv(EnvMasterVolume, "250")

	cfg, _ := Load(missingEnvFile(t))
	if cfg.Audio.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", cfg.Audio.MasterVolume)
	}

	cfg.SetMasterVolumePercent(-10)
	if cfg.Audio.MasterVolume != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", cfg.Audio.MasterVolume)
	}
}

// TestLoadDotEnvFile verifies dotenv values are applied and real env wins
func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.env")
	content := "SNAKE_WIDTH=16\nSNAKE_HEIGHT=9\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	// Registered so t.Setenv restores them; godotenv only sets unset variables
	t.Setenv(EnvWidth, "")
	os.Unsetenv(EnvWidth)
	t.Setenv(EnvHeight, "11")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Board.Width != 16 {
		t.Errorf("Expected width 16 from env file, got %d", cfg.Board.Width)
	}
	if cfg.Board.Height != 11 {
		t.Errorf("Expected environment height 11 to win, got %d", cfg.Board.Height)
	}
}

// TestValidate verifies precondition checks
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		is      error
	}{
		{"default", func(c *Config) {}, false, nil},
		{"zero width", func(c *Config) { c.Board.Width = 0 }, true, core.ErrInvalidDimensions},
		{"zero height", func(c *Config) { c.Board.Height = 0 }, true, core.ErrInvalidDimensions},
		{"height one", func(c *Config) { c.Board.Height = 1 }, true, nil},
		{"interval too small", func(c *Config) { c.FrameInterval = time.Millisecond }, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}
}
