package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.yaml.in/yaml/v3"

	"github.com/satococoa/tfwrap/internal/ctxlog"
)

// Config represents the tfwrap configuration
type Config struct {
	Version  string   `yaml:"version"`
	Tool     Tool     `yaml:"tool,omitempty"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Logging  Logging  `yaml:"logging,omitempty"`
}

// Tool describes how the tf executable is reached
type Tool struct {
	Path string            `yaml:"path,omitempty"`
	Env  map[string]string `yaml:"env,omitempty"`
}

// Defaults represents default option values for tf commands
type Defaults struct {
	Lock        string `yaml:"lock,omitempty"` // "", "none", "checkin" or "checkout"
	Recursive   bool   `yaml:"recursive,omitempty"`
	NoIgnore    bool   `yaml:"no_ignore,omitempty"`
	BatchSize   int    `yaml:"batch_size,omitempty"`
	Parallelism int    `yaml:"parallelism,omitempty"`
}

// Logging represents logger settings
type Logging struct {
	Level      string `yaml:"level,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

const (
	ConfigFileName        = ".tfwrap.yml"
	CurrentVersion        = "1.0"
	DefaultToolPath       = "tf"
	DefaultBatchSize      = 200
	DefaultParallelism    = 1
	DefaultLogLevel       = "info"
	DefaultLogMaxSizeMB   = 10
	DefaultLogMaxBackups  = 3
	configFilePermissions = 0o600
)

const configHeader = `# tfwrap configuration
# tool.path: tf executable name or full path
# defaults.lock: none, checkin or checkout; empty leaves the server default
# Command line flags override the defaults below.
`

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// LoadConfig loads configuration from .tfwrap.yml in dir, falling back to
// defaults when the file does not exist.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from an explicit path, which must exist
func LoadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// SaveConfig validates config and writes it to .tfwrap.yml in dir,
// replacing any existing file.
func SaveConfig(dir string, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configPath := filepath.Join(dir, ConfigFileName)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	data = append([]byte(configHeader), data...)
	if err := os.WriteFile(configPath, data, configFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate fills in defaults and validates the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Tool.Path == "" {
		c.Tool.Path = DefaultToolPath
	}

	switch c.Defaults.Lock {
	case "", "none", "checkin", "checkout":
	default:
		return fmt.Errorf("invalid lock '%s', must be 'none', 'checkin' or 'checkout'", c.Defaults.Lock)
	}
	if c.Defaults.BatchSize < 0 {
		return fmt.Errorf("batch_size must not be negative")
	}
	if c.Defaults.BatchSize == 0 {
		c.Defaults.BatchSize = DefaultBatchSize
	}
	if c.Defaults.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative")
	}
	if c.Defaults.Parallelism == 0 {
		c.Defaults.Parallelism = DefaultParallelism
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if _, err := ctxlog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level '%s', must be 'debug', 'info', 'warn' or 'error'", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = DefaultLogMaxBackups
	}

	return nil
}

// ToolEnv returns the tool environment as KEY=VALUE entries sorted by key
func (c *Config) ToolEnv() []string {
	if len(c.Tool.Env) == 0 {
		return nil
	}
	env := make([]string, 0, len(c.Tool.Env))
	for _, key := range slices.Sorted(maps.Keys(c.Tool.Env)) {
		env = append(env, fmt.Sprintf("%s=%s", key, c.Tool.Env[key]))
	}
	return env
}
