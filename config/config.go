package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Output directory for the generated icon set
	OutDir string `yaml:"outDir,omitempty" json:"outDir,omitempty"`
	// Generator identifier written to the manifest info block
	Author string `yaml:"author,omitempty" json:"author,omitempty"`
	// Whether to also bundle a Windows icon.ico
	ICO *bool `yaml:"ico,omitempty" json:"ico,omitempty"`
	// Whether to also write a preview contact sheet
	Preview *bool `yaml:"preview,omitempty" json:"preview,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/appicon/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/appicon/config.yml
// If no config file is found, it returns an empty Config struct; every
// setting then falls back to the built-in constants.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config: %w", err)
				}
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "appicon")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "appicon")
	}
	return configHomePath
}

// StateHomePath returns the path to the state home directory.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "appicon")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "appicon")
	}
	return stateHomePath
}
