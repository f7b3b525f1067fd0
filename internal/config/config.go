package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"dataDir"`
	} `yaml:"app" json:"app"`

	Source struct {
		URL         string `yaml:"url" json:"url"`
		StartMarker string `yaml:"start_marker" json:"startMarker"`
		EndMarker   string `yaml:"end_marker" json:"endMarker"`

		// MinFetchIntervalSeconds throttles upstream fetches; refresh
		// requests arriving faster than this wait their turn.
		MinFetchIntervalSeconds int `yaml:"min_fetch_interval_seconds" json:"minFetchIntervalSeconds"`

		// AutoRefreshSeconds > 0 enables the background refresh loop.
		AutoRefreshSeconds int `yaml:"auto_refresh_seconds" json:"autoRefreshSeconds"`
	} `yaml:"source" json:"source"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
