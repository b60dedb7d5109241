package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the card tools
type Config struct {
	// Listing page to scrape
	Source SourceConfig `yaml:"source" json:"source"`

	// Where card images are stored
	Output OutputConfig `yaml:"output" json:"output"`

	// Download pacing and filtering
	Download DownloadConfig `yaml:"download" json:"download"`

	// Flip utility settings
	Flip FlipConfig `yaml:"flip" json:"flip"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// SourceConfig holds the listing page and HTTP settings
type SourceConfig struct {
	URL       string        `yaml:"url" json:"url"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}

// DownloadConfig holds download-specific configuration
type DownloadConfig struct {
	// Delay is the pause after every downloaded image
	Delay time.Duration `yaml:"delay" json:"delay"`
	// Suffix selects which link targets are card images (case-insensitive)
	Suffix string `yaml:"suffix" json:"suffix"`
}

// FlipConfig holds the list of images rotated by the flip command
type FlipConfig struct {
	Directory string   `yaml:"directory" json:"directory"`
	Files     []string `yaml:"files" json:"files"`
	Suffix    string   `yaml:"suffix" json:"suffix"`
	Quality   int      `yaml:"quality" json:"quality"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" json:"level"`
	File       string `yaml:"file" json:"file"`
	MaxSize    int    `yaml:"max_size" json:"max_size"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

const (
	DefaultSourceURL = "https://lackeyccg.com/monopolydeal/cards/"
	DefaultUserAgent = "cardfetch/1.0 (+https://lackeyccg.com/monopolydeal/)"
	envPrefix        = "CARDFETCH_"
)

// DefaultWildcards are the two-colour wildcards that need an upside-down copy
var DefaultWildcards = []string{
	"wildlbbr.jpg",
	"wildbg.jpg",
	"wildgt.jpg",
	"wildlbt.jpg",
	"wildop.jpg",
	"wildry.jpg",
	"wildut.jpg",
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	cardsDir := filepath.Join("images", "cards")
	files := make([]string, len(DefaultWildcards))
	copy(files, DefaultWildcards)

	return &Config{
		Source: SourceConfig{
			URL:       DefaultSourceURL,
			UserAgent: DefaultUserAgent,
			Timeout:   30 * time.Second,
		},
		Output: OutputConfig{
			Directory: cardsDir,
		},
		Download: DownloadConfig{
			Delay:  500 * time.Millisecond,
			Suffix: ".jpg",
		},
		Flip: FlipConfig{
			Directory: cardsDir,
			Files:     files,
			Suffix:    "_flipped",
			Quality:   95,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   false,
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	var errs []error

	if v := os.Getenv(envPrefix + "SOURCE_URL"); v != "" {
		c.Source.URL = v
	}
	if v := os.Getenv(envPrefix + "USER_AGENT"); v != "" {
		c.Source.UserAgent = v
	}
	if v := os.Getenv(envPrefix + "TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTIMEOUT: %w", envPrefix, err))
		} else {
			c.Source.Timeout = d
		}
	}

	if v := os.Getenv(envPrefix + "OUTPUT_DIR"); v != "" {
		c.Output.Directory = v
	}

	if v := os.Getenv(envPrefix + "DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sDELAY: %w", envPrefix, err))
		} else {
			c.Download.Delay = d
		}
	}

	if v := os.Getenv(envPrefix + "FLIP_DIR"); v != "" {
		c.Flip.Directory = v
	}
	if v := os.Getenv(envPrefix + "FLIP_FILES"); v != "" {
		c.Flip.Files = splitList(v)
	}
	if v := os.Getenv(envPrefix + "FLIP_QUALITY"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sFLIP_QUALITY: %w", envPrefix, err))
		} else {
			c.Flip.Quality = q
		}
	}

	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		c.Logging.File = v
	}

	return errors.Join(errs...)
}

// splitList splits a comma separated list, dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// SearchPaths lists the locations checked for a config file, in order of precedence
func SearchPaths() []string {
	home := os.Getenv("HOME")
	return []string{
		".cardfetch.yaml",
		".cardfetch.yml",
		filepath.Join(home, ".config", "cardfetch", "config.yaml"),
		filepath.Join(home, ".config", "cardfetch", "config.yml"),
	}
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	for _, loc := range SearchPaths() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Source.URL == "" {
		errs = append(errs, errors.New("source URL is required"))
	} else if u, err := url.Parse(c.Source.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("source URL must be an absolute http(s) URL: %q", c.Source.URL))
	}
	if c.Source.Timeout < 0 {
		errs = append(errs, errors.New("timeout cannot be negative"))
	}

	if c.Output.Directory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}

	if c.Download.Delay < 0 {
		errs = append(errs, errors.New("download delay cannot be negative"))
	}
	if c.Download.Suffix == "" {
		errs = append(errs, errors.New("download suffix is required"))
	}

	if c.Flip.Directory == "" {
		errs = append(errs, errors.New("flip directory is required"))
	}
	if c.Flip.Suffix == "" {
		errs = append(errs, errors.New("flip suffix is required"))
	}
	if c.Flip.Quality < 1 || c.Flip.Quality > 100 {
		errs = append(errs, errors.New("flip quality must be between 1 and 100"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration.
// Only keys present in the map are applied.
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if v, ok := flags["source"].(string); ok && v != "" {
		c.Source.URL = v
	}
	if v, ok := flags["output"].(string); ok && v != "" {
		c.Output.Directory = v
	}
	if v, ok := flags["delay"].(time.Duration); ok {
		c.Download.Delay = v
	}
	if v, ok := flags["timeout"].(time.Duration); ok {
		c.Source.Timeout = v
	}
	if v, ok := flags["flip-dir"].(string); ok && v != "" {
		c.Flip.Directory = v
	}
	if v, ok := flags["flip-files"].([]string); ok && len(v) > 0 {
		c.Flip.Files = v
	}
	if v, ok := flags["quality"].(int); ok {
		c.Flip.Quality = v
	}
	if v, ok := flags["log-level"].(string); ok && v != "" {
		c.Logging.Level = v
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".cardfetch.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
