package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/listedit/uploads"
)

// KeyActions are the widget actions whose bindings a config file may
// override.
var KeyActions = []string{"add", "remove", "undo", "redo", "toggle", "select_all", "delete", "dismiss"}

type File struct {
	Version      int                 `yaml:"version" json:"version"`
	Uploads      Uploads             `yaml:"uploads" json:"uploads"`
	Initial      []string            `yaml:"initial,omitempty" json:"initial,omitempty"`
	HistoryLimit int                 `yaml:"history_limit,omitempty" json:"history_limit,omitempty"`
	Suggest      bool                `yaml:"suggest,omitempty" json:"suggest,omitempty"`
	Watch        bool                `yaml:"watch,omitempty" json:"watch,omitempty"`
	Keys         map[string][]string `yaml:"keys,omitempty" json:"keys,omitempty"`
}

type Uploads struct {
	Dir      string   `yaml:"dir" json:"dir"`
	Patterns []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Version: 1,
		Uploads: Uploads{
			Dir:      uploads.DefaultDir,
			Patterns: slices.Clone(uploads.DefaultPatterns),
		},
	}
}

// Load reads path. A missing file yields Default.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte, source string) (File, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (cfg File) Validate() []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported config version %d", cfg.Version))
	}
	if strings.TrimSpace(cfg.Uploads.Dir) == "" {
		errs = append(errs, "uploads.dir is required")
	}
	for i, p := range cfg.Uploads.Patterns {
		if err := uploads.ValidatePatterns([]string{p}); err != nil {
			errs = append(errs, fmt.Sprintf("uploads.patterns[%d]: %v", i, err))
		}
	}
	if cfg.HistoryLimit < -1 {
		errs = append(errs, "history_limit must be >= -1")
	}
	for i, v := range cfg.Initial {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Sprintf("initial[%d] must not be empty", i))
		}
	}

	actions := make([]string, 0, len(cfg.Keys))
	for action := range cfg.Keys {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		if !slices.Contains(KeyActions, action) {
			errs = append(errs, fmt.Sprintf("keys.%s is not a known action", action))
			continue
		}
		if len(cfg.Keys[action]) == 0 {
			errs = append(errs, fmt.Sprintf("keys.%s must list at least one key", action))
		}
		for j, k := range cfg.Keys[action] {
			if strings.TrimSpace(k) == "" {
				errs = append(errs, fmt.Sprintf("keys.%s[%d] must not be empty", action, j))
			}
		}
	}
	return errs
}
