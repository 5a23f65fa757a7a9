package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure for the glowkv process.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	GC     GCConfig     `mapstructure:"gc"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds the network listen settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// GCConfig controls the active expiration sweeper.
type GCConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"` // how often the sweeper wakes
}

// LogConfig controls logging verbosity and output encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// Load reads configuration from config.yaml (or config.json/.toml, via
// Viper's format sniffing) found under path, overridden by
// GLOWKV_-prefixed environment variables, falling back to built-in
// defaults when no file is present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("GLOWKV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "6379")

	v.SetDefault("gc.enabled", true)
	v.SetDefault("gc.interval", "1s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}
