// Package deck is the navigation core of a desktop shell that drives several
// AI coding-assistant CLIs (the official CLI, Codex and Gemini).
//
// A Shell bundles the view catalog with the navigation controller. The host
// renders whatever screen the controller says is current and routes its UI
// events to Open, Back and Guard.
package deck

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/enginedeck/deck/pkg/deck/constants"
	"github.com/enginedeck/deck/pkg/deck/internal"
	"github.com/enginedeck/deck/pkg/deck/navigation"
	"github.com/enginedeck/deck/pkg/deck/views"
)

// Options configures a Shell.
type Options struct {
	ConfigPath               string         // TOML config file; its settings override the fields below
	Catalog                  *views.Catalog // Screens the shell may open; nil uses views.Default()
	RootFallbackSetsPrevious bool           // GoBack on the root entry records the view being left
	LogPath                  string         // Full path for the log file including filename (creates parent directories)
	LogLevel                 string         // Application log level: debug, info, warn or error
	Logger                   *slog.Logger   // Overrides the application logger
}

// Shell is one application session's navigation state plus the screens it may show.
type Shell struct {
	nav     *navigation.Controller
	catalog *views.Catalog
	logger  *slog.Logger
}

// New builds a Shell. The returned shell starts on the catalog's home view.
func New(options Options) (*Shell, error) {
	catalog := options.Catalog
	rootFallbackSetsPrevious := options.RootFallbackSetsPrevious
	logPath := options.LogPath
	logLevel := options.LogLevel

	if options.ConfigPath != "" {
		fc, err := LoadConfigFile(options.ConfigPath)
		if err != nil {
			return nil, err
		}
		if catalog, err = fc.Catalog(); err != nil {
			return nil, err
		}
		rootFallbackSetsPrevious = rootFallbackSetsPrevious || fc.Navigation.RootFallbackSetsPrevious
		if fc.Log.Path != "" {
			logPath = fc.Log.Path
		}
		if fc.Log.Level != "" {
			logLevel = fc.Log.Level
		}
	}

	if catalog == nil {
		catalog = views.Default()
	}

	if logPath != "" {
		internal.SetLogPath(logPath)
	}
	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}
	if logLevel != "" {
		internal.SetRawLogLevel(logLevel)
	}

	logger := options.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	nav := navigation.New(
		navigation.WithHomeView(catalog.Home()),
		navigation.WithRootFallbackPrevious(rootFallbackSetsPrevious),
	)

	nav.Subscribe(func(t navigation.Transition) {
		logger.Debug("transition", "kind", t.Kind.String(), "from", t.From, "to", t.To)
	})

	return &Shell{
		nav:     nav,
		catalog: catalog,
		logger:  logger,
	}, nil
}

// Navigation returns the shell's controller for read access and subscriptions.
func (s *Shell) Navigation() *navigation.Controller {
	return s.nav
}

// Catalog returns the shell's view catalog.
func (s *Shell) Catalog() *views.Catalog {
	return s.catalog
}

// Open navigates to view after checking the catalog defines it.
func (s *Shell) Open(view navigation.View, params navigation.Params) (navigation.Outcome, error) {
	if !s.catalog.Contains(view) {
		s.logger.Warn("refusing to open unknown view", "view", view)
		return navigation.OutcomeUnchanged, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}

	outcome := s.nav.NavigateTo(view, params)
	s.logger.Info("open", "view", view, "outcome", outcome.String())
	return outcome, nil
}

// Back goes back one entry, or to the home view from the root entry.
func (s *Shell) Back() navigation.Outcome {
	outcome := s.nav.GoBack()
	s.logger.Info("back", "view", s.nav.CurrentView(), "outcome", outcome.String())
	return outcome
}

// Guard installs an interceptor, replacing any previous one. nil removes it.
func (s *Shell) Guard(fn navigation.Interceptor) {
	s.nav.SetInterceptor(fn)
}

// Title returns the display title of the current view.
func (s *Shell) Title() string {
	return s.catalog.Title(s.nav.CurrentView())
}

// Close flushes and closes the log file, if any.
func (s *Shell) Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before New or any logger use to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
