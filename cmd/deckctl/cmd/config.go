package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/enginedeck/deck/pkg/deck"
	"github.com/enginedeck/deck/pkg/deck/constants"
	"github.com/spf13/viper"
)

// Config holds the deckctl settings.
//
// Configuration priority (highest to lowest):
// 1. Command-line flags
// 2. Environment variables (with DECK_ prefix)
// 3. Defaults
type Config struct {
	// ConfigPath is the deck TOML file with the view catalog and navigation settings.
	// Defaults to deck.toml in the working directory when that file exists.
	ConfigPath string

	// LogLevel is the application log level.
	// Defaults to "warn" so command output stays readable.
	LogLevel string

	// LogPath is an optional log file, written in addition to stdout.
	LogPath string

	// Strict stops scripts at the first failing command.
	Strict bool

	// RootFallbackPrevious makes back on the root entry record the view being left.
	RootFallbackPrevious bool
}

// Defaults returns a Config struct with all default values set.
func Defaults() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// LoadConfig loads the configuration from viper with the DECK_ env prefix.
// Flags must already be bound with viper.BindPFlag.
func LoadConfig() *Config {
	cfg := Defaults()

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if viper.IsSet("config") {
		cfg.ConfigPath = viper.GetString("config")
	}
	if viper.IsSet("log.level") {
		cfg.LogLevel = viper.GetString("log.level")
	}
	if viper.IsSet("log.path") {
		cfg.LogPath = viper.GetString("log.path")
	}
	if viper.IsSet("strict") {
		cfg.Strict = viper.GetBool("strict")
	}
	if viper.IsSet("navigation.root_fallback_previous") {
		cfg.RootFallbackPrevious = viper.GetBool("navigation.root_fallback_previous")
	}

	if cfg.ConfigPath == "" {
		if _, err := os.Stat(constants.DefaultConfigFilename); err == nil {
			cfg.ConfigPath = constants.DefaultConfigFilename
		} else if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: cannot stat %s: %v\n", constants.DefaultConfigFilename, err)
		}
	}

	return cfg
}

// ShellOptions converts the configuration into deck options.
func (c *Config) ShellOptions() deck.Options {
	return deck.Options{
		ConfigPath:               c.ConfigPath,
		RootFallbackSetsPrevious: c.RootFallbackPrevious,
		LogPath:                  c.LogPath,
		LogLevel:                 c.LogLevel,
	}
}
