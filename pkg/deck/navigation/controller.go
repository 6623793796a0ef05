package navigation

import (
	"log/slog"
	"sync"

	"github.com/enginedeck/deck/pkg/deck/internal"
	"go.uber.org/atomic"
)

// Interceptor is called with the target view before a transition.
// Returning false vetoes the transition.
type Interceptor func(target View) bool

// Option configures a Controller.
type Option func(*Controller)

// WithHomeView sets the view the controller starts on and falls back to.
// Defaults to Home.
func WithHomeView(view View) Option {
	return func(c *Controller) {
		c.home = view
	}
}

// WithLogger sets the logger used for transition and contract-violation logs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRootFallbackPrevious makes GoBack on the root entry record the view being
// left as the previous view, like every other transition does.
// Off by default: the root fallback leaves PreviousView untouched.
func WithRootFallbackPrevious(enabled bool) Option {
	return func(c *Controller) {
		c.rootFallbackSetsPrevious = enabled
	}
}

type listener struct {
	id uint64
	fn func(Transition)
}

// Controller serializes all view transitions through NavigateTo and GoBack
// and keeps the history stack consistent.
//
// Read accessors are safe for concurrent use. Transitions are exclusive: a
// transition started while another is running, including one started from
// inside the interceptor, is rejected.
type Controller struct {
	mu sync.RWMutex

	home        View
	current     View
	params      Params
	previous    View
	hasPrevious bool
	history     *history
	interceptor Interceptor

	listeners      []listener
	nextListenerID uint64

	busy    atomic.Bool
	version atomic.Uint64

	rootFallbackSetsPrevious bool
	logger                   *slog.Logger
}

// New creates a Controller positioned on the home view with empty params and
// a single-entry history.
func New(opts ...Option) *Controller {
	c := &Controller{
		home:   Home,
		logger: internal.GetInternalLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.current = c.home
	c.params = Params{}
	c.history = newHistory(newEntry(c.home, nil))

	return c
}

// NavigateTo moves to target with params. A nil params is treated as empty.
//
// The interceptor, if any, is consulted first. Navigating to the current view
// with structurally equal params changes nothing. Otherwise the view being left
// becomes PreviousView and (target, params) is pushed unless it already tops
// the history.
func (c *Controller) NavigateTo(target View, params Params) Outcome {
	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Warn("navigation: re-entrant NavigateTo rejected", "target", target)
		return OutcomeRejected
	}

	t, outcome := c.navigate(target, params)
	if outcome == OutcomeCommitted {
		c.notify(t)
	}
	return outcome
}

func (c *Controller) navigate(target View, params Params) (Transition, Outcome) {
	defer c.busy.Store(false)

	if fn := c.currentInterceptor(); fn != nil && !fn(target) {
		c.logger.Debug("navigation: vetoed", "target", target)
		return Transition{}, OutcomeVetoed
	}

	params = params.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == target && c.params.Equal(params) {
		return Transition{}, OutcomeUnchanged
	}

	from := c.current
	c.previous, c.hasPrevious = from, true
	c.current = target
	c.params = params

	if !c.history.top().Matches(target, params) {
		c.history.push(newEntry(target, params))
	}

	c.version.Inc()
	c.logger.Debug("navigation: forward", "from", from, "to", target, "depth", c.history.len())

	return Transition{Kind: TransitionForward, From: from, To: target, Params: params.Clone()}, OutcomeCommitted
}

// GoBack returns to the entry below the top of the history.
//
// With a single-entry history it resets to the home view with empty params
// without pushing or popping. In both cases the interceptor is consulted with
// the destination view before anything is committed.
func (c *Controller) GoBack() Outcome {
	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Warn("navigation: re-entrant GoBack rejected")
		return OutcomeRejected
	}

	t, outcome := c.back()
	if outcome == OutcomeCommitted {
		c.notify(t)
	}
	return outcome
}

func (c *Controller) back() (Transition, Outcome) {
	defer c.busy.Store(false)

	c.mu.RLock()
	target, popping := c.history.below()
	if !popping {
		target = HistoryEntry{View: c.home, Params: Params{}}
	}
	fn := c.interceptor
	c.mu.RUnlock()

	if fn != nil && !fn(target.View) {
		c.logger.Debug("navigation: vetoed", "target", target.View)
		return Transition{}, OutcomeVetoed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.current

	if popping {
		top := c.history.pop()
		c.current = top.View
		c.params = top.Params.Clone()
		c.previous, c.hasPrevious = from, true

		c.version.Inc()
		c.logger.Debug("navigation: back", "from", from, "to", c.current, "depth", c.history.len())

		return Transition{Kind: TransitionBack, From: from, To: c.current, Params: c.params.Clone()}, OutcomeCommitted
	}

	if !c.rootFallbackSetsPrevious && from == c.home && len(c.params) == 0 {
		return Transition{}, OutcomeUnchanged
	}

	c.current = c.home
	c.params = Params{}
	if c.rootFallbackSetsPrevious {
		c.previous, c.hasPrevious = from, true
	}

	c.version.Inc()
	c.logger.Debug("navigation: reset to home", "from", from, "to", c.home)

	return Transition{Kind: TransitionReset, From: from, To: c.home, Params: Params{}}, OutcomeCommitted
}

// SetInterceptor replaces the active interceptor. Passing nil removes it.
func (c *Controller) SetInterceptor(fn Interceptor) {
	c.mu.Lock()
	c.interceptor = fn
	c.mu.Unlock()
}

func (c *Controller) currentInterceptor() Interceptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.interceptor
}

// Subscribe registers fn to be called after every committed transition.
// Listeners run after the transition has finished, so they may navigate.
// The returned function removes the listener.
func (c *Controller) Subscribe(fn func(Transition)) (unsubscribe func()) {
	c.mu.Lock()
	c.nextListenerID++
	id := c.nextListenerID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, l := range c.listeners {
				if l.id == id {
					c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (c *Controller) notify(t Transition) {
	c.mu.RLock()
	listeners := make([]listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	for _, l := range listeners {
		l.fn(t)
	}
}

// CurrentView returns the view being shown.
func (c *Controller) CurrentView() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// CurrentParams returns a copy of the current view's params. Never nil.
func (c *Controller) CurrentParams() Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params.Clone()
}

// PreviousView returns the view left by the most recent transition.
// The second result is false until the first transition completes.
func (c *Controller) PreviousView() (View, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.previous, c.hasPrevious
}

// History returns a snapshot of the history stack, oldest first.
func (c *Controller) History() []HistoryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.history.snapshot()
}

// CanGoBack reports whether GoBack would pop an entry.
func (c *Controller) CanGoBack() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.history.len() > 1
}

// HomeView returns the view the controller starts on and falls back to.
func (c *Controller) HomeView() View {
	return c.home
}

// Version counts committed transitions.
func (c *Controller) Version() uint64 {
	return c.version.Load()
}

// State is a consistent copy of the controller's state.
type State struct {
	Current     View
	Params      Params
	Previous    View
	HasPrevious bool
	History     []HistoryEntry
	CanGoBack   bool
	Version     uint64
}

// Snapshot returns the whole state read under a single lock.
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{
		Current:     c.current,
		Params:      c.params.Clone(),
		Previous:    c.previous,
		HasPrevious: c.hasPrevious,
		History:     c.history.snapshot(),
		CanGoBack:   c.history.len() > 1,
		Version:     c.version.Load(),
	}
}
