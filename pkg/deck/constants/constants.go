// Package constants defines shared constants used throughout the deck packages.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// EnvPrefix prefixes every environment variable deck reads, e.g. DECK_LOG_LEVEL.
const EnvPrefix = "DECK"

// DebugEnvVar enables debug logging for the internal logger when set to any value.
const DebugEnvVar = "DECK_DEBUG"

// DefaultConfigFilename is looked up in the working directory when no config path is given.
const DefaultConfigFilename = "deck.toml"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}
