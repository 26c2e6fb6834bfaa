package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"healthtrack/internal/state"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "HEALTHTRACK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.icons", slices.Clone(state.DefaultIcons))
	v.SetDefault("game.match_delay", "500ms")
	v.SetDefault("game.mismatch_delay", "1000ms")
	v.SetDefault("game.complete_delay", "500ms")
	v.SetDefault("game.seed", 0)

	v.SetDefault("dashboard.frame", "16ms")
	v.SetDefault("dashboard.load_duration", "2000ms")
	v.SetDefault("dashboard.update_duration", "1000ms")
	v.SetDefault("dashboard.progress_delay", "500ms")

	v.SetDefault("notify.visible", "3000ms")
	v.SetDefault("notify.exit", "300ms")

	v.SetDefault("carousel.interval", "5000ms")

	v.SetDefault("scroll.top_threshold", 300)
	v.SetDefault("scroll.reveal_ratio", 0.1)
	v.SetDefault("scroll.row_height", 20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads the configuration. path names an explicit config file; when it
// is empty a healthtrack.{yaml,toml,json} in the working directory is used if
// present. Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("healthtrack")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
