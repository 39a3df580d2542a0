package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle          = "Total Solar Radiation"
	DefaultSubtitle       = "visualization"
	DefaultDataset        = "daily_KP_GSR_ALL.csv"
	DefaultWidth          = 1200
	DefaultHeight         = 800
	DefaultFPS            = 60
	DefaultPoints         = 480
	DefaultStdX           = 80.0
	DefaultStdY           = 60.0
	DefaultLayers         = 22
	DefaultBins           = 480
	DefaultCenterYOffset  = 80.0
	DefaultSwitchInterval = 3.0
	DefaultTransition     = 1.2
)

type Config struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Dataset  string `yaml:"dataset"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`

	Points        int     `yaml:"points"`
	StdX          float64 `yaml:"std_x"`
	StdY          float64 `yaml:"std_y"`
	Layers        int     `yaml:"layers"`
	Bins          int     `yaml:"bins"`
	CenterYOffset float64 `yaml:"center_y_offset"`

	SwitchInterval     float64 `yaml:"switch_interval"`
	TransitionDuration float64 `yaml:"transition_duration"`

	Seed   int64  `yaml:"seed"`
	Theme  string `yaml:"theme"`
	Smooth bool   `yaml:"smooth"`
	Sonify bool   `yaml:"sonify"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:              DefaultTitle,
		Subtitle:           DefaultSubtitle,
		Dataset:            DefaultDataset,
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		FPS:                DefaultFPS,
		Points:             DefaultPoints,
		StdX:               DefaultStdX,
		StdY:               DefaultStdY,
		Layers:             DefaultLayers,
		Bins:               DefaultBins,
		CenterYOffset:      DefaultCenterYOffset,
		SwitchInterval:     DefaultSwitchInterval,
		TransitionDuration: DefaultTransition,
		Theme:              "classic",
		Smooth:             true,
	}
}

// Load reads a YAML config, leaving defaults in place for absent keys.
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
