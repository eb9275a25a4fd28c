package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
	DPIAware     bool   `mapstructure:"dpi_aware"`
	MonitorIndex int    `mapstructure:"monitor_index"`
	ImageFormat  string `mapstructure:"image_format"`
	OutputDir    string `mapstructure:"output_dir"`
}

func Default() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "console",
		DPIAware:     true,
		MonitorIndex: 0,
		ImageFormat:  "png",
		OutputDir:    ".",
	}
}

// Load reads capguard.yaml from the config dir or the working directory, or
// cfgFile when set, then applies CAPGUARD_* environment overrides.
// A missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("capguard")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CAPGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("dpi_aware", cfg.DPIAware)
	v.SetDefault("monitor_index", cfg.MonitorIndex)
	v.SetDefault("image_format", cfg.ImageFormat)
	v.SetDefault("output_dir", cfg.OutputDir)
}

// Validate rejects values the CLI cannot act on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "text", "json":
	default:
		return fmt.Errorf("log_format: unknown format %q", c.LogFormat)
	}
	switch strings.ToLower(c.ImageFormat) {
	case "png", "bmp", "raw":
	default:
		return fmt.Errorf("image_format: unknown format %q", c.ImageFormat)
	}
	return nil
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "capguard")
}
