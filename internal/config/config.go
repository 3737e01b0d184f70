package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	DataDir  string       `yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel string       `yaml:"log_level" mapstructure:"log_level"`
	Export   ExportConfig `yaml:"export" mapstructure:"export"`
}

type ExportConfig struct {
	SheetName string `yaml:"sheet_name" mapstructure:"sheet_name"`
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DataDir:  filepath.Join(home, "data"),
		LogLevel: "info",
		Export: ExportConfig{
			SheetName: "People",
		},
	}
}

// Load reads configuration from defaults, a config.yaml file and ZODIAC_*
// environment variables, in increasing priority. An empty path searches the
// working directory and the user's config directory; a missing file is fine.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("export.sheet_name", cfg.Export.SheetName)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "zodiac"))
		}
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "zodiac"))
	}

	v.SetEnvPrefix("ZODIAC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.DataDir = expandHome(expandEnv(cfg.DataDir))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	if c.Export.SheetName == "" {
		return fmt.Errorf("config: export.sheet_name is required")
	}
	return nil
}

// EnsureDataDir creates the data directory if it does not exist.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

// DataFile resolves a data file name against the data directory.
// Absolute names are returned unchanged.
func (c *Config) DataFile(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
