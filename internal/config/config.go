package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Layout selectors.
const (
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
)

// Config represents the complete configuration for flatsheet
type Config struct {
	Layout    string `yaml:"layout"`
	Separator string `yaml:"separator"`
	NDJSON    bool   `yaml:"ndjson"`
	RootSheet string `yaml:"root_sheet"`
	Indent    int    `yaml:"indent"`
	Autosize  bool   `yaml:"autosize"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Layout:    LayoutHorizontal,
		Separator: ".",
		NDJSON:    false,
		RootSheet: "data",
		Indent:    2,
		Autosize:  true,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	if c.Layout != LayoutHorizontal && c.Layout != LayoutVertical {
		return fmt.Errorf("invalid layout %q: must be %q or %q", c.Layout, LayoutHorizontal, LayoutVertical)
	}
	if c.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative")
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".flatsheet.yml", ".flatsheet.yaml", "flatsheet.yml", "flatsheet.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// DefaultSheetName derives a sheet name from an input file path:
// the snake_cased stem of the file name, or "data" when there is no
// usable stem (for example when reading stdin).
func DefaultSheetName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "data"
	}
	return strcase.ToSnake(stem)
}
