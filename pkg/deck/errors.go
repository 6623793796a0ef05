package deck

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrUnknownView indicates the host tried to open a view its catalog does not define.
	// The navigation controller itself accepts any token; this is the shell's check.
	ErrUnknownView = errors.New("view is not in the catalog")
)

// ConfigError represents a failure to build the shell from its configuration:
// an unreadable or malformed config file, or an invalid view catalog.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "read_config", "build_catalog")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deck: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("deck: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsUnknownView checks if an error reports a view missing from the catalog.
func IsUnknownView(err error) bool {
	return errors.Is(err, ErrUnknownView)
}
