package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNotConfigured indicates that the configuration file does not exist yet.
var ErrNotConfigured = errors.New("toast configuration not found")

const (
	// DefaultAppID attributes notifications to this program when no packaged
	// Application User Model ID is configured.
	DefaultAppID = "toast-mcp"

	// DefaultTitle is used by show_notification when the caller gives none.
	DefaultTitle = "toast-mcp"

	DefaultLogLevel = "info"

	appDir   = "toast-mcp"
	fileName = "config.json"
)

// Settings holds the persisted notification settings.
type Settings struct {
	AppID        string `json:"appId"`
	IconPath     string `json:"iconPath,omitempty"`
	DefaultTitle string `json:"defaultTitle,omitempty"`
	LogLevel     string `json:"logLevel,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{}.withDefaults()
}

// Validate ensures the settings are ready to use.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.AppID) == "" {
		return errors.New("missing app id")
	}
	if s.IconPath != "" && !filepath.IsAbs(s.IconPath) {
		return fmt.Errorf("icon path %q must be absolute", s.IconPath)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (s Settings) Level() (zerolog.Level, error) {
	if s.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return level, nil
}

func (s Settings) withDefaults() Settings {
	if strings.TrimSpace(s.AppID) == "" {
		s.AppID = DefaultAppID
	}
	if strings.TrimSpace(s.DefaultTitle) == "" {
		s.DefaultTitle = DefaultTitle
	}
	if strings.TrimSpace(s.LogLevel) == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s
}

// Path returns the absolute path to the configuration file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the settings from disk. It returns ErrNotConfigured when the
// file does not exist.
func Load() (Settings, error) {
	cfgPath, err := Path()
	if err != nil {
		return Settings{}, err
	}
	return LoadFile(cfgPath)
}

// LoadOrDefault is Load with ErrNotConfigured replaced by Default.
func LoadOrDefault() (Settings, error) {
	settings, err := Load()
	if errors.Is(err, ErrNotConfigured) {
		return Default(), nil
	}
	return settings, err
}

// LoadFile reads and validates the settings at path.
func LoadFile(path string) (Settings, error) {
	settings, err := ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Read is ReadFile on the default path.
func Read() (Settings, error) {
	cfgPath, err := Path()
	if err != nil {
		return Settings{}, err
	}
	return ReadFile(cfgPath)
}

// ReadFile decodes the settings at path without validating them, so a file
// holding a bad value can still be loaded and corrected.
func ReadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, ErrNotConfigured
		}
		return Settings{}, fmt.Errorf("read config: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return settings.withDefaults(), nil
}

// Save persists the provided settings to disk.
func Save(settings Settings) error {
	cfgPath, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(cfgPath, settings)
}

// SaveFile persists settings to path.
func SaveFile(path string, settings Settings) error {
	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
