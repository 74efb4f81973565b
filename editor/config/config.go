package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the editor's startup configuration.
type Config struct {
	WindowTitle  string `yaml:"window_title"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`

	LayoutPath string `yaml:"layout_path"`

	Log LogConfig `yaml:"log"`

	// Default snapping state for new sessions.
	AngleSnapping bool `yaml:"angle_snapping"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Console    bool   `yaml:"console"`
}

func Default() *Config {
	return &Config{
		WindowTitle:   "Genome Studio",
		WindowWidth:   1440,
		WindowHeight:  900,
		LayoutPath:    "layout.yaml",
		AngleSnapping: true,
		Log: LogConfig{
			File:       "genomestudio.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Console:    true,
		},
	}
}

// Load reads the config file, falling back to defaults when it is missing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("config %q: invalid window size %dx%d",
			path, cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}

// NewLogger builds a zap logger writing to a size-rotated file, optionally
// mirrored to stderr.
func NewLogger(lc LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(lc.Level); err != nil {
		level = zapcore.InfoLevel
	}

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   lc.File,
		MaxSize:    lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, level),
	}
	if lc.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), level))
	}

	return zap.New(zapcore.NewTee(cores...))
}
