package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"listkit/internal/domain"
	"listkit/internal/selection"
)

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	List    ListSettings  `toml:"list"`
	Content []ContentNode `toml:"content,omitempty"`
	Log     LogSettings   `toml:"log"`
}

// ListSettings represents the behavior of the list component
type ListSettings struct {
	SelectionRequired bool   `toml:"selection_required"`
	SelectionWraps    bool   `toml:"selection_wraps"`
	Orientation       string `toml:"orientation"`
	PrefixTimeoutMS   int    `toml:"prefix_timeout_ms"`
	InitialIndex      string `toml:"initial_index,omitempty"` // parsed leniently; anything non-integral means none
}

// ContentNode is one raw content entry
type ContentNode struct {
	Kind string `toml:"kind,omitempty"`
	Text string `toml:"text"`
	Alt  string `toml:"alt,omitempty"`
}

// LogSettings represents the rotating log file
type LogSettings struct {
	File       string `toml:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "listkit", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service whose default file is path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the default config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default file. A missing file yields
// the default configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		List: ListSettings{
			Orientation:     string(domain.OrientationVertical),
			PrefixTimeoutMS: 1000,
		},
		Log: LogSettings{
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// Validate reports settings that cannot be applied
func (c *Config) Validate() error {
	if _, ok := domain.ParseOrientation(c.List.Orientation); !ok {
		return fmt.Errorf("unknown orientation %q", c.List.Orientation)
	}
	if c.List.PrefixTimeoutMS < 0 {
		return fmt.Errorf("prefix_timeout_ms must not be negative, got %d", c.List.PrefixTimeoutMS)
	}
	return nil
}

// Orientation returns the configured orientation, vertical if unset
func (c *Config) Orientation() domain.Orientation {
	o, ok := domain.ParseOrientation(c.List.Orientation)
	if !ok {
		return domain.OrientationVertical
	}
	return o
}

// PrefixTimeout returns the typed-prefix idle timeout, zero meaning default
func (c *Config) PrefixTimeout() time.Duration {
	return time.Duration(c.List.PrefixTimeoutMS) * time.Millisecond
}

// InitialIndex returns the index to select at startup, or -1
func (c *Config) InitialIndex() int {
	if c.List.InitialIndex == "" {
		return -1
	}
	return selection.ParseIndex(c.List.InitialIndex)
}

// ContentFrom builds the raw content: configured nodes, else one item per
// text in fallback.
func (c *Config) ContentFrom(fallback []string) *domain.Content {
	if len(c.Content) == 0 {
		return domain.ContentFromTexts(fallback...)
	}
	nodes := make([]*domain.Node, 0, len(c.Content))
	for _, n := range c.Content {
		kind := n.Kind
		if kind == "" {
			kind = domain.KindItem
		}
		nodes = append(nodes, &domain.Node{Kind: kind, Text: n.Text, Alt: n.Alt})
	}
	return domain.NewContent(nodes...)
}
