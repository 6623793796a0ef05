package navigation

import (
	"maps"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

// View is an opaque identifier for one navigable screen.
// Applications should define their own View constants.
//
// Example:
//
//	const (
//	    ViewProjects navigation.View = "projects"
//	    ViewSettings navigation.View = "settings"
//	)
type View string

// Home is the view a new Controller starts on and the target of the root fallback.
const Home View = "home"

// Params carries auxiliary data for a visit to a view, such as which file is open.
type Params map[string]any

var paramsEqualOptions = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether p and other are structurally equal.
// A nil Params is equal to an empty one.
func (p Params) Equal(other Params) bool {
	return cmp.Equal(map[string]any(p), map[string]any(other), paramsEqualOptions...)
}

// Clone returns a shallow copy of p. The result is never nil.
func (p Params) Clone() Params {
	if len(p) == 0 {
		return Params{}
	}
	return maps.Clone(p)
}

// HistoryEntry is one visited (view, params) state.
// Key identifies the visit so renderers can keep per-visit state; it is not
// part of entry equality.
type HistoryEntry struct {
	View   View
	Params Params
	Key    string
}

func newEntry(view View, params Params) HistoryEntry {
	return HistoryEntry{
		View:   view,
		Params: params.Clone(),
		Key:    uuid.NewString(),
	}
}

// Matches reports whether the entry holds the given view and structurally equal params.
func (e HistoryEntry) Matches(view View, params Params) bool {
	return e.View == view && e.Params.Equal(params)
}

// Equal compares view and params, ignoring Key.
func (e HistoryEntry) Equal(other HistoryEntry) bool {
	return e.Matches(other.View, other.Params)
}

func (e HistoryEntry) clone() HistoryEntry {
	e.Params = e.Params.Clone()
	return e
}
