package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigName is looked up in the working directory when --config is
// not given.
const defaultConfigName = ".docxml.yaml"

type fileConfig struct {
	Output     string   `yaml:"output"`
	FenceLang  string   `yaml:"fence_lang"`
	Title      string   `yaml:"title"`
	Unexported bool     `yaml:"unexported"`
	Exclude    []string `yaml:"exclude"`
}

// loadConfig reads the YAML config at path, falling back to the default
// config file when path is empty. A missing default file is not an error; a
// missing explicit file is. Environment variables DOCXML_OUTPUT and
// DOCXML_FENCE_LANG override the file's values.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if v := os.Getenv("DOCXML_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("DOCXML_FENCE_LANG"); v != "" {
		cfg.FenceLang = v
	}
	return &cfg, nil
}
