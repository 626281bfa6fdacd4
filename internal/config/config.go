package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"imgurl/internal/artifacts"
	"imgurl/internal/common"
	"imgurl/pkg/imageurl"
)

// getConfigDir returns the config directory path.
// Uses IMGURL_CONFIG_DIR env var if set, otherwise defaults to ~/.imgurl.
// This is computed dynamically to support test isolation.
func getConfigDir() string {
	if dir := os.Getenv("IMGURL_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".imgurl")
}

// ConfigDir returns the configuration directory path
func ConfigDir() string {
	return getConfigDir()
}

// SettingsPath returns the settings file path
func SettingsPath() string {
	return filepath.Join(getConfigDir(), "settings.yaml")
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(getConfigDir(), 0700)
}

// InitConfigDir initializes the config directory with the default settings file.
// Returns true if the settings file was created, false if it already existed.
func InitConfigDir() (bool, error) {
	return InitConfigDirAt(getConfigDir())
}

// InitConfigDirAt is InitConfigDir for an explicit directory.
func InitConfigDirAt(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	settingsPath := filepath.Join(dir, "settings.yaml")
	if _, err := os.Stat(settingsPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(settingsPath, artifacts.GlobalSettings, 0600); err != nil {
		return false, fmt.Errorf("failed to create default settings: %w", err)
	}
	return true, nil
}

// Settings represents imgurl settings from settings.yaml
type Settings struct {
	LogLevel  string            `yaml:"log_level"`  // trace, debug, info, warn, off (case insensitive)
	MaxWidth  int               `yaml:"max_width"`  // 0 = unlimited
	MaxHeight int               `yaml:"max_height"` // 0 = unlimited
	Presets   map[string]string `yaml:"presets"`    // name -> "WxH"
	Templates []string          `yaml:"templates"`  // allowed template names, empty = any
}

// ApplyDefaults fills zero-value fields with their defaults.
func (s *Settings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = "off"
	}
	if s.Presets == nil {
		s.Presets = map[string]string{}
	}
}

// Level returns the normalized (lowercase) logging level.
func (s *Settings) Level() string {
	return strings.ToLower(strings.TrimSpace(s.LogLevel))
}

// Limits returns the variant size limits.
func (s *Settings) Limits() imageurl.Limits {
	return imageurl.Limits{MaxWidth: s.MaxWidth, MaxHeight: s.MaxHeight}
}

// Preset returns the size registered under name.
func (s *Settings) Preset(name string) (imageurl.Size, error) {
	tag, ok := s.Presets[name]
	if !ok {
		return imageurl.Size{}, fmt.Errorf("%w %q", common.ErrUnknownPreset, name)
	}
	size, err := imageurl.ParseSize(tag)
	if err != nil {
		return imageurl.Size{}, fmt.Errorf("%w %q: %w", common.ErrInvalidPreset, name, err)
	}
	return size, nil
}

// PresetNames returns the preset names in sorted order.
func (s *Settings) PresetNames() []string {
	names := make([]string, 0, len(s.Presets))
	for name := range s.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTemplate reports whether name may be used as a template tag.
// An empty templates list allows any name.
func (s *Settings) HasTemplate(name string) bool {
	if len(s.Templates) == 0 {
		return true
	}
	for _, t := range s.Templates {
		if t == name {
			return true
		}
	}
	return false
}

// DefaultSettings parses the default settings from the embedded artifact.
func DefaultSettings() *Settings {
	var settings Settings
	if err := yaml.Unmarshal(artifacts.GlobalSettings, &settings); err != nil {
		panic("failed to parse embedded settings: " + err.Error())
	}
	settings.ApplyDefaults()
	return &settings
}

// LoadSettings loads the settings from the config directory.
// Falls back to embedded defaults if the file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFromPath(SettingsPath())
}

// LoadSettingsFromPath loads settings from a specific file path.
// Falls back to embedded defaults if the file doesn't exist.
func LoadSettingsFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	settings.ApplyDefaults()
	return &settings, nil
}

// SaveSettings saves the settings to the config directory
func SaveSettings(settings *Settings) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	return SaveSettingsToPath(SettingsPath(), settings)
}

// SaveSettingsToPath saves the settings to a specific file path.
// The parent directory must exist.
func SaveSettingsToPath(path string, settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	// Add header comment (same as template header)
	header := []byte("# imgurl settings\n# See: imgurl presets --help\n\n")
	return os.WriteFile(path, append(header, data...), 0600)
}
