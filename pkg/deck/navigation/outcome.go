package navigation

// Outcome reports what a NavigateTo or GoBack call did.
type Outcome int

const (
	OutcomeCommitted Outcome = iota // State changed
	OutcomeUnchanged                // Target equals the current state; nothing to do
	OutcomeVetoed                   // The interceptor returned false
	OutcomeRejected                 // Called while another transition was in progress
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeVetoed:
		return "vetoed"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// TransitionKind tells listeners how a committed transition happened.
type TransitionKind int

const (
	TransitionForward TransitionKind = iota // NavigateTo
	TransitionBack                          // GoBack popped an entry
	TransitionReset                         // GoBack on the root entry reset to home
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionForward:
		return "forward"
	case TransitionBack:
		return "back"
	case TransitionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition describes one committed change, delivered to subscribers.
type Transition struct {
	Kind   TransitionKind
	From   View
	To     View
	Params Params
}
