package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"postgrid/internal/eventbus"
)

// FileName is the default config file name
const FileName = "postgrid.toml"

// EnvPrefix prefixes environment overrides, e.g. POSTGRID_PAGE_SIZE
const EnvPrefix = "POSTGRID"

// Validation errors
var (
	ErrNotFound         = errors.New("config file not found")
	ErrInvalidPageSize  = errors.New("page_size must be at least 1")
	ErrInvalidColumns   = errors.New("columns must be at least 1")
	ErrInvalidDemoPosts = errors.New("demo_posts must not be negative")
	ErrInvalidLogLevel  = errors.New("unknown log level")
)

// Config represents the application configuration
type Config struct {
	Version       int         `toml:"version" mapstructure:"version"`
	PostsFile     string      `toml:"posts_file" mapstructure:"posts_file"` // empty means demo posts
	DemoPosts     int         `toml:"demo_posts" mapstructure:"demo_posts"`
	PageSize      int         `toml:"page_size" mapstructure:"page_size"`
	Columns       int         `toml:"columns" mapstructure:"columns"`
	Watch         bool        `toml:"watch" mapstructure:"watch"`
	NotifyOnMount bool        `toml:"notify_on_mount" mapstructure:"notify_on_mount"`
	Log           LogSettings `toml:"log" mapstructure:"log"`
}

// LogSettings represents logging configuration
type LogSettings struct {
	Level string `toml:"level" mapstructure:"level"`
	File  string `toml:"file" mapstructure:"file"`
}

// Validate checks values the UI cannot work with
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.PageSize)
	}
	if c.Columns < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidColumns, c.Columns)
	}
	if c.DemoPosts < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDemoPosts, c.DemoPosts)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
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
	bus      eventbus.EventBus
	filePath string
	flags    *pflag.FlagSet
}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"posts":           "posts_file",
	"demo":            "demo_posts",
	"page-size":       "page_size",
	"columns":         "columns",
	"watch":           "watch",
	"notify-on-mount": "notify_on_mount",
	"log-level":       "log.level",
	"log-file":        "log.file",
}

// NewConfigService creates a config service for path; an empty path means
// the default location in the user config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// WithFlags makes flags that were set on the command line override file and
// environment values.
func WithFlags(cs ConfigService, flags *pflag.FlagSet) ConfigService {
	if c, ok := cs.(*configService); ok {
		c.flags = flags
	}
	return cs
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "postgrid", FileName)
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back to
// defaults when the file does not exist.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		return cs.read("")
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return cs.read(path)
}

func (cs *configService) read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cs.flags != nil {
		for name, key := range flagKeys {
			if f := cs.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
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

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("posts_file", d.PostsFile)
	v.SetDefault("demo_posts", d.DemoPosts)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("notify_on_mount", d.NotifyOnMount)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		DemoPosts:     60,
		PageSize:      6,
		Columns:       3,
		Watch:         true,
		NotifyOnMount: true,
		Log: LogSettings{
			Level: "info",
			File:  "postgrid.log",
		},
	}
}
