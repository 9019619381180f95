// Package config stores named search configurations as JSON files, one
// per configuration, under a configurable directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when no configuration has the given name.
	ErrNotFound = errors.New("config not found")
	// ErrExists is returned by Create when the name is already taken.
	ErrExists = errors.New("config already exists")
)

// SearchConfig is one persisted search configuration.
type SearchConfig struct {
	Name              string   `json:"name" validate:"required"`
	Language          string   `json:"language"`
	FilterDescription string   `json:"filter_description"`
	SearchKeywords    []string `json:"search_keywords" validate:"required,min=1,dive,required"`
	AIPrompt          string   `json:"ai_prompt"`
	FileFilterRegex   string   `json:"file_filter_regex"`
	ResultFile        string   `json:"result_file" validate:"required"`
}

// Store reads and writes configurations under dir.
type Store struct {
	dir      string
	validate *validator.Validate
}

// NewStore builds a Store rooted at dir. The directory is created
// lazily on the first write.
func NewStore(dir string) *Store {
	return &Store{
		dir:      dir,
		validate: validator.New(),
	}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) write(cfg SearchConfig) error {
	if err := s.validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(s.path(cfg.Name), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Create persists a new configuration.
func (s *Store) Create(cfg SearchConfig) error {
	if _, err := os.Stat(s.path(cfg.Name)); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, cfg.Name)
	}
	return s.write(cfg)
}

// Load reads a configuration by name.
func (s *Store) Load(name string) (SearchConfig, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return SearchConfig{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return SearchConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg SearchConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SearchConfig{}, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := s.validate.Struct(cfg); err != nil {
		return SearchConfig{}, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}

// Update overwrites an existing configuration.
func (s *Store) Update(cfg SearchConfig) error {
	if _, err := os.Stat(s.path(cfg.Name)); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, cfg.Name)
	}
	return s.write(cfg)
}

// Delete removes a configuration.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

// List returns the names of all stored configurations, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
