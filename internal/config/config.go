package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for recwire
type Config struct {
	Log    LogConfig
	Decode DecodeConfig
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

type DecodeConfig struct {
	// ValidateTimeOfDay rejects encoded time-of-day values outside [0, 24h)
	// instead of passing them through. Off by default: an out-of-range value
	// is a writer bug, not a reader concern.
	ValidateTimeOfDay bool
	// MaxBytesLen caps length-prefixed string/bytes values.
	MaxBytesLen int
}

// Load loads configuration from environment and config file
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Environment variables
	v.SetEnvPrefix("RECWIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file (optional)
	v.SetConfigName("recwire")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/recwire/")
	v.AddConfigPath("$HOME/.recwire/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Decode: DecodeConfig{
			ValidateTimeOfDay: v.GetBool("decode.validate_time_of_day"),
			MaxBytesLen:       v.GetInt("decode.max_bytes_len"),
		},
	}

	if cfg.Decode.MaxBytesLen <= 0 {
		return nil, fmt.Errorf("invalid decode.max_bytes_len: %d", cfg.Decode.MaxBytesLen)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("decode.validate_time_of_day", false)
	v.SetDefault("decode.max_bytes_len", 16<<20)
}
