package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"Wavelock/pkg/device"
)

type Config struct {
	Device struct {
		Name       string  `yaml:"name"` // empty selects the loopback device
		SampleRate float64 `yaml:"sample_rate"`
		OutChannel int     `yaml:"out_channel"`
	} `yaml:"device"`

	Preamble struct {
		Subcarriers int     `yaml:"subcarriers"`
		ShortReps   int     `yaml:"short_reps"` // S0 symbols before the S1 symbol
		Amplitude   float64 `yaml:"amplitude"`  // peak level, 0..1
		GapSamples  int     `yaml:"gap_samples"`
	} `yaml:"preamble"`

	Carrier struct {
		Frequency float64 `yaml:"frequency"` // Hz
	} `yaml:"carrier"`
}

func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return &cfg, nil
}

func CreateDevice(cfg *Config) device.Device {
	if cfg.Device.Name == "" {
		return &device.Loopback{SampleRate: cfg.Device.SampleRate}
	}
	return &device.ASIOMono{
		DeviceName: cfg.Device.Name,
		SampleRate: cfg.Device.SampleRate,
		OutChannel: cfg.Device.OutChannel,
	}
}
