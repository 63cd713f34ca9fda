package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// ColorMode controls coloured terminal output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// MaxIndent is the widest indentation accepted for output
const MaxIndent = 8

// Config represents the complete configuration for jsoncopy
type Config struct {
	Force  bool         `yaml:"force"`
	Keys   []string     `yaml:"keys"`
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// OutputConfig controls how the merged document is written and reported
type OutputConfig struct {
	Indent     int       `yaml:"indent"`
	EscapeHTML bool      `yaml:"escape_html"`
	Color      ColorMode `yaml:"color"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// CLIOptions holds values given on the command line. Zero values mean the
// option was not given; Indent uses a negative value for that. NoForce turns
// off a force set by the config file, and All drops configured keys so the
// whole source is copied.
type CLIOptions struct {
	Force   bool
	NoForce bool
	Keys    []string
	All     bool
	Indent  int
	Color   string
	Debug   bool
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Force: false,
		Keys:  []string{},
		Output: OutputConfig{
			Indent:     4,
			EscapeHTML: false,
			Color:      ColorAuto,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFrom(currentDir)
}

func findConfigFrom(dir string) string {
	configNames := []string{".jsoncopy.yml", ".jsoncopy.yaml", "jsoncopy.yml", "jsoncopy.yaml"}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(dir, name)
			if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
				return configPath
			}
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			// Reached root directory
			break
		}
		dir = parentDir
	}

	return ""
}

// Validate checks option values that YAML cannot constrain
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be one of auto, always or never, got %q", c.Output.Color)
	}
	if c.Output.Indent < 0 || c.Output.Indent > MaxIndent {
		return fmt.Errorf("output.indent must be between 0 and %d, got %d", MaxIndent, c.Output.Indent)
	}
	return nil
}

// ApplyCLI overlays command line options on the config. Keys given on the
// command line replace configured keys.
func (c *Config) ApplyCLI(opts CLIOptions) error {
	if opts.Force && opts.NoForce {
		return fmt.Errorf("--force and --no-force cannot be used together")
	}
	if opts.All && len(opts.Keys) > 0 {
		return fmt.Errorf("--all cannot be combined with keys")
	}
	switch {
	case opts.Force:
		c.Force = true
	case opts.NoForce:
		c.Force = false
	}
	switch {
	case opts.All:
		c.Keys = []string{}
	case len(opts.Keys) > 0:
		c.Keys = opts.Keys
	}
	if opts.Indent >= 0 {
		c.Output.Indent = opts.Indent
	}
	if opts.Color != "" {
		c.Output.Color = ColorMode(strings.ToLower(opts.Color))
	}
	if opts.Debug {
		c.Dev.Debug = true
	}
	if opts.Verbose {
		c.Dev.Verbose = true
	}
	return c.Validate()
}

// LoadConfigWithCLI loads the config file (an explicit path, or one found by
// searching upwards from the working directory) and applies CLI options.
func LoadConfigWithCLI(configPath string, opts CLIOptions) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if err := cfg.ApplyCLI(opts); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Indent returns the indentation string for the configured width
func (c *Config) Indent() string {
	return strings.Repeat(" ", c.Output.Indent)
}

// UseColor decides whether output written to f should be coloured. In auto
// mode colour is used for terminals unless NO_COLOR is set.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Output.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
