// Package config loads YAML configuration for conversion jobs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/masaomi/html2png/internal/fileutil"
	"github.com/masaomi/html2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Default conversion parameters. These mirror the documentation diagram job
// this tool replaced, so running with no arguments and no config produces
// the same artifact.
const (
	DefaultInputFile = "dao_vs_dee_diagram.html"
	DefaultWidth     = 1400
	DefaultHeight    = 1100
)

// Config holds all configuration for PNG generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Browser BrowserConfig `yaml:"browser"`
	Render  RenderConfig  `yaml:"render"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultFile string `yaml:"defaultFile"` // Used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// BrowserConfig defines browser selection options.
type BrowserConfig struct {
	Bin string `yaml:"bin"` // Chrome/Chromium binary path (empty = auto-detect)
}

// RenderConfig defines capture options.
type RenderConfig struct {
	Width            int    `yaml:"width"`            // Viewport width in pixels
	Height           int    `yaml:"height"`           // Viewport height in pixels
	OpaqueBackground bool   `yaml:"opaqueBackground"` // White background instead of transparent
	FullPage         bool   `yaml:"fullPage"`         // Capture full page height
	Timeout          string `yaml:"timeout"`          // Capture timeout, e.g. "30s", "2m"
}

// DefaultConfig returns the configuration matching the original diagram job.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultFile: DefaultInputFile},
		Output: OutputConfig{DefaultDir: ""},
		Render: RenderConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/html2png/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "html2png", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
