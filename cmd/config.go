package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundoverlap"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment variables overriding the configuration file. They are also
// passed to extensions.
const (
	EnvFundsFile    = "MFO_FUNDS_FILE"
	EnvFundsPath    = "MFO_FUNDS_PATH"
	EnvFundsFormat  = "MFO_FUNDS_FORMAT"
	EnvLogLevel     = "MFO_LOG_LEVEL"
	EnvOutputFormat = "MFO_OUTPUT_FORMAT"
)

// Config holds all the configuration of mfo.
type Config struct {
	FundsFile   string        `toml:"funds_file"`
	FundsPath   string        `toml:"funds_path"`   // JSONPath to the fund records
	FundsFormat string        `toml:"funds_format"` // "json", "yaml", or "" to infer from the file extension
	Logging     LoggingConfig `toml:"logging"`
	Output      OutputConfig  `toml:"output"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"` // debug, info, warn, error
	Pretty bool   `toml:"pretty"`
}

// OutputConfig holds the results output configuration.
type OutputConfig struct {
	Format string `toml:"format"` // text or json
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		FundsFile: "stock_data.json",
		FundsPath: fundoverlap.DefaultFundsPath,
		Logging: LoggingConfig{
			Level:  "warn",
			Pretty: true,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// LoadConfig loads the configuration file at path, if it exists, and
// applies environment overrides, including the ones from a .env file.
func LoadConfig(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// skip missing file
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	// .env never overrides variables already set.
	_ = godotenv.Load()
	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv(EnvFundsFile); v != "" {
		config.FundsFile = v
	}
	if v := os.Getenv(EnvFundsPath); v != "" {
		config.FundsPath = v
	}
	if v := os.Getenv(EnvFundsFormat); v != "" {
		config.FundsFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		config.Output.Format = strings.ToLower(v)
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := fundoverlap.ParseFormat(c.FundsFormat); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid configuration: unknown output format %q", c.Output.Format)
	}
	return nil
}

// DecodeOptions returns the options to decode the funds file.
func (c *Config) DecodeOptions() fundoverlap.DecodeOptions {
	format, _ := fundoverlap.ParseFormat(c.FundsFormat) // validated on load
	return fundoverlap.DecodeOptions{
		Format: format,
		Path:   c.FundsPath,
	}
}
