// Package navigation provides the view history controller behind the shell.
//
// A Controller owns the current view and its parameters, a back-stack of visited
// (view, params) entries, and an optional interceptor that can veto any transition.
// The host renders whatever screen matches CurrentView and wires its UI events
// (menu clicks, shortcuts, links) to NavigateTo and GoBack.
//
// # Basic Usage
//
//	nav := navigation.New()
//
//	nav.NavigateTo("projects", nil)
//	nav.NavigateTo("editor", navigation.Params{"file": "a.md"})
//
//	nav.CurrentView()  // "editor"
//	nav.CanGoBack()    // true
//
//	nav.GoBack()
//	nav.CurrentView()  // "projects"
//
// # History
//
// The history is never empty. It starts as [(home, {})] and every committed
// NavigateTo leaves the new (view, params) pair on top. Navigating to the pair
// that is already current is a no-op, so the same visit is never stacked twice
// in a row. Visiting the same view with different params does stack.
//
// GoBack pops the top entry and returns to the one below it. When only the root
// entry remains, GoBack resets to the home view with empty params instead.
//
// # Interceptors
//
// An interceptor is a guard such as "discard unsaved changes?". It is called with
// the target view before any state changes and vetoes the transition by returning
// false:
//
//	nav.SetInterceptor(func(target navigation.View) bool {
//	    return !editor.Dirty() || confirmDiscard()
//	})
//
// Only one interceptor is active at a time. SetInterceptor(nil) removes it.
//
// An interceptor must not call NavigateTo or GoBack. Such re-entrant calls are a
// contract violation: they are rejected with OutcomeRejected and leave the state
// untouched. Read accessors may be used freely from inside an interceptor.
//
// # Outcomes
//
// NavigateTo and GoBack never fail. The returned Outcome tells the caller whether
// the transition was committed, vetoed, redundant or rejected; most callers can
// ignore it.
package navigation
