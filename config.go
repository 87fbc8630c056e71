package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/frobware/ghusers/view"
)

// Command names the subcommand being run.
type Command string

const (
	CommandBrowse Command = "browse"
	CommandUsers  Command = "users"
	CommandRepos  Command = "repos"
)

// Config holds all configuration and arguments for the application.
type Config struct {
	Command Command
	Search  string
	Login   string
	Sort    view.SortCriterion
	Browser string
	// Runtime flags
	Debug   bool
	LogFile string
	Quiet   bool
	JSON    bool
}

// FileConfig is the optional YAML file under ~/.config/ghusers.
type FileConfig struct {
	Sort    string `yaml:"sort"`
	Browser string `yaml:"browser"`
	Debug   bool   `yaml:"debug"`
}

// DefaultConfigPath returns ~/.config/ghusers/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ghusers", "config.yaml"), nil
}

// LoadFileConfig reads and validates the config file at path. A
// missing file yields the zero FileConfig.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := fc.validate(); err != nil {
		return FileConfig{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return fc, nil
}

func (fc FileConfig) validate() error {
	if fc.Sort != "" {
		if _, err := view.ParseSortCriterion(fc.Sort); err != nil {
			return err
		}
	}
	return nil
}

// resolveSort picks the sort flag, then the file setting, then name.
func resolveSort(flag string, fc FileConfig) (view.SortCriterion, error) {
	if flag != "" {
		return view.ParseSortCriterion(flag)
	}
	if fc.Sort != "" {
		return view.ParseSortCriterion(fc.Sort)
	}
	return view.SortByName, nil
}
