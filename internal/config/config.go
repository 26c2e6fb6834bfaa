// Package config loads application settings from defaults, an optional config
// file, a .env file and HEALTHTRACK_ environment variables.
package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game" validate:"required"`
	Dashboard DashboardConfig `mapstructure:"dashboard" validate:"required"`
	Notify    NotifyConfig    `mapstructure:"notify" validate:"required"`
	Carousel  CarouselConfig  `mapstructure:"carousel" validate:"required"`
	Scroll    ScrollConfig    `mapstructure:"scroll" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
}

// GameConfig configures the memory game.
type GameConfig struct {
	Icons         []string      `mapstructure:"icons" validate:"len=8,unique,dive,required"`
	MatchDelay    time.Duration `mapstructure:"match_delay" validate:"gt=0"`
	MismatchDelay time.Duration `mapstructure:"mismatch_delay" validate:"gt=0"`
	CompleteDelay time.Duration `mapstructure:"complete_delay" validate:"gt=0"`
	// Seed fixes the shuffle when non-zero.
	Seed int64 `mapstructure:"seed"`
}

type DashboardConfig struct {
	Frame          time.Duration `mapstructure:"frame" validate:"gt=0"`
	LoadDuration   time.Duration `mapstructure:"load_duration" validate:"gte=0"`
	UpdateDuration time.Duration `mapstructure:"update_duration" validate:"gte=0"`
	ProgressDelay  time.Duration `mapstructure:"progress_delay" validate:"gte=0"`
}

type NotifyConfig struct {
	Visible time.Duration `mapstructure:"visible" validate:"gt=0"`
	Exit    time.Duration `mapstructure:"exit" validate:"gte=0"`
}

type CarouselConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
}

// ScrollConfig sizes the page in pixels; RowHeight converts terminal rows.
type ScrollConfig struct {
	TopThreshold int     `mapstructure:"top_threshold" validate:"gte=0"`
	RevealRatio  float64 `mapstructure:"reveal_ratio" validate:"gt=0,lte=1"`
	RowHeight    int     `mapstructure:"row_height" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File receives JSON logs. Empty discards them; stdout belongs to the UI.
	File string `mapstructure:"file"`
}
