package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config drives the sudokubm demo. Every field has a working default,
// so a settings file only needs the keys it wants to override.
type Config struct {
	// Board is the puzzle: digits 1-9 for givens, '.' or '0' for open
	// cells, layout characters ignored.
	Board string `yaml:"board"`
	// Temperature and Ticks seed the interactive prompts.
	Temperature float64 `yaml:"temperature"`
	Ticks       int     `yaml:"ticks"`
	// Seed pins the random stream; 0 keeps the library default.
	Seed int64 `yaml:"seed"`
	// Anneal configures the -anneal mode.
	Anneal AnnealConfig `yaml:"anneal"`
}

// AnnealConfig mirrors anneal.Schedule plus the restart fan-out.
type AnnealConfig struct {
	Start         float64 `yaml:"start"`
	Floor         float64 `yaml:"floor"`
	Decay         float64 `yaml:"decay"`
	StepsPerLevel int     `yaml:"steps_per_level"`
	Restarts      int     `yaml:"restarts"`
	Workers       int     `yaml:"workers"`
}

// defaultBoard is a 28-given puzzle that anneals to a clean solution in
// a few thousand ticks on most seeds.
const defaultBoard = `
5 . . 8 . 6 . . 4
. . . . . . 8 . .
8 . 7 . 4 . . 5 .
. . 3 . 8 . 1 9 .
. . . 2 . 4 . . .
. 8 6 . 5 . 4 . .
. 9 . . 7 . 2 . 8
. . 4 . . . . . .
2 . . 9 . 1 . . 7
`

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Board:       defaultBoard,
		Temperature: 60,
		Ticks:       200,
		Anneal: AnnealConfig{
			Start:         60,
			Floor:         0.5,
			Decay:         0.9,
			StepsPerLevel: 2000,
			Restarts:      8,
			Workers:       4,
		},
	}
}

// Load reads settings from a YAML file, filling missing keys from
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads settings from path, or returns Default when path
// is empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the settings to a YAML file, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
