package router

import "github.com/enginedeck/deck/pkg/deck/navigation"

// ActionKind is what a screen asks the router to do next.
type ActionKind int

const (
	ActionNone     ActionKind = iota // Zero value; never valid as a screen result
	ActionNavigate                   // Navigate to Action.View with Action.Params
	ActionBack                       // Go back one entry
	ActionExit                       // Stop the router
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionNavigate:
		return "navigate"
	case ActionBack:
		return "back"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Action is a screen's result.
type Action struct {
	Kind   ActionKind
	View   navigation.View
	Params navigation.Params
}

// Navigate returns an action moving to view with params.
func Navigate(view navigation.View, params navigation.Params) Action {
	return Action{Kind: ActionNavigate, View: view, Params: params}
}

// Back returns an action going back one entry.
func Back() Action {
	return Action{Kind: ActionBack}
}

// Exit returns an action that stops the router.
func Exit() Action {
	return Action{Kind: ActionExit}
}
