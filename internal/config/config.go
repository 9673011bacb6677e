package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm  = "exchange"
	DefaultSize       = 52
	DefaultTrials     = 1
	DefaultIntervalMs = 400
	DefaultSpeed      = 1.0

	MinSpeed = 0.5
	MaxSpeed = 3.0
)

type Config struct {
	Algorithm string         `yaml:"algorithm"`
	Size      int            `yaml:"size"`
	Seed      int64          `yaml:"seed"`
	Trials    int            `yaml:"trials"`
	Playback  PlaybackConfig `yaml:"playback"`
}

// PlaybackConfig drives the step-playback consumer: base interval
// between steps and a speed multiplier in [0.5, 3.0].
type PlaybackConfig struct {
	IntervalMs int     `yaml:"interval_ms"`
	Speed      float64 `yaml:"speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		Trials:    DefaultTrials,
		Playback: PlaybackConfig{
			IntervalMs: DefaultIntervalMs,
			Speed:      DefaultSpeed,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ClampSpeed bounds a playback speed multiplier to the supported range.
func ClampSpeed(speed float64) float64 {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
