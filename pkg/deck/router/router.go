package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/enginedeck/deck/pkg/deck/internal"
	"github.com/enginedeck/deck/pkg/deck/navigation"
)

// ErrScreenNotRegistered is returned by Run when the current view has no screen.
var ErrScreenNotRegistered = errors.New("router: screen not registered")

// Navigator is the part of navigation.Controller the router drives.
type Navigator interface {
	NavigateTo(target navigation.View, params navigation.Params) navigation.Outcome
	GoBack() navigation.Outcome
	Snapshot() navigation.State
}

// Frame is what a screen is rendered with.
type Frame struct {
	View        navigation.View
	Params      navigation.Params
	Previous    navigation.View // Empty until the first transition
	CanGoBack   bool
	LastAction  Action             // Action returned by the previous screen, zero on the first frame
	LastOutcome navigation.Outcome // What the controller did with LastAction
}

// ScreenFunc renders one screen and returns what the user chose to do.
type ScreenFunc func(ctx context.Context, frame Frame) (Action, error)

// Router manages screen rendering for a navigation controller.
// Screens are registered with their functions; all transitions go through the controller.
type Router struct {
	nav     Navigator
	screens map[navigation.View]ScreenFunc
	logger  *slog.Logger
}

// New creates a Router driving nav.
func New(nav Navigator) *Router {
	return &Router{
		nav:     nav,
		screens: make(map[navigation.View]ScreenFunc),
		logger:  internal.GetInternalLogger(),
	}
}

// Register adds a screen to the router.
// The screen function will be called whenever view is current.
func (r *Router) Register(view navigation.View, fn ScreenFunc) *Router {
	r.screens[view] = fn
	return r
}

// Registered reports whether view has a screen.
func (r *Router) Registered(view navigation.View) bool {
	_, ok := r.screens[view]
	return ok
}

// WithLogger replaces the router's logger.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Run renders screens until one returns Exit, a screen fails, the current view
// has no screen, or ctx is done.
func (r *Router) Run(ctx context.Context) error {
	var (
		last    Action
		outcome navigation.Outcome
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		state := r.nav.Snapshot()

		fn, ok := r.screens[state.Current]
		if !ok {
			return fmt.Errorf("%w: %q", ErrScreenNotRegistered, state.Current)
		}

		frame := Frame{
			View:        state.Current,
			Params:      state.Params,
			CanGoBack:   state.CanGoBack,
			LastAction:  last,
			LastOutcome: outcome,
		}
		if state.HasPrevious {
			frame.Previous = state.Previous
		}

		action, err := fn(ctx, frame)
		if err != nil {
			return fmt.Errorf("router: screen %q error: %w", state.Current, err)
		}

		switch action.Kind {
		case ActionExit:
			return nil
		case ActionNavigate:
			outcome = r.nav.NavigateTo(action.View, action.Params)
		case ActionBack:
			outcome = r.nav.GoBack()
		default:
			return fmt.Errorf("router: screen %q returned unknown action %d", state.Current, action.Kind)
		}

		r.logger.Debug("router: action applied", "screen", state.Current, "action", action.Kind.String(), "outcome", outcome.String())
		last = action
	}
}
