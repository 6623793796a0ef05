package views

import "errors"

var (
	// ErrEmptyViewID is returned when a definition has no id.
	ErrEmptyViewID = errors.New("views: view id cannot be empty")

	// ErrDuplicateView is returned when two definitions share an id.
	ErrDuplicateView = errors.New("views: duplicate view id")

	// ErrNoHomeView is returned when the catalog does not define its home view.
	ErrNoHomeView = errors.New("views: catalog does not define the home view")

	// ErrUnknownEngine is returned when a definition names an engine other than claude, codex or gemini.
	ErrUnknownEngine = errors.New("views: unknown engine")
)
