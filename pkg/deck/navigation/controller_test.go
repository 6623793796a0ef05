package navigation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func views(entries []HistoryEntry) []View {
	out := make([]View, len(entries))
	for i, e := range entries {
		out[i] = e.View
	}
	return out
}

func TestNew_InitialState(t *testing.T) {
	nav := New()

	assert.Equal(t, Home, nav.CurrentView())
	assert.Equal(t, Params{}, nav.CurrentParams())
	assert.False(t, nav.CanGoBack())
	assert.Equal(t, uint64(0), nav.Version())

	_, ok := nav.PreviousView()
	assert.False(t, ok, "no previous view before the first transition")

	hist := nav.History()
	require.Len(t, hist, 1)
	assert.True(t, hist[0].Matches(Home, nil))
	assert.NotEmpty(t, hist[0].Key)
}

func TestNew_WithHomeView(t *testing.T) {
	nav := New(WithHomeView("projects"))

	assert.Equal(t, View("projects"), nav.CurrentView())
	assert.Equal(t, View("projects"), nav.HomeView())
	assert.Equal(t, []View{"projects"}, views(nav.History()))
}

func TestNavigateTo(t *testing.T) {
	t.Run("commit pushes entry and records previous view", func(t *testing.T) {
		nav := New()

		outcome := nav.NavigateTo("projects", Params{"sort": "recent"})

		assert.Equal(t, OutcomeCommitted, outcome)
		assert.Equal(t, View("projects"), nav.CurrentView())
		assert.Equal(t, Params{"sort": "recent"}, nav.CurrentParams())
		assert.True(t, nav.CanGoBack())

		prev, ok := nav.PreviousView()
		require.True(t, ok)
		assert.Equal(t, Home, prev)

		hist := nav.History()
		require.Len(t, hist, 2)
		assert.True(t, hist[1].Matches("projects", Params{"sort": "recent"}))
		assert.Equal(t, uint64(1), nav.Version())
	})

	t.Run("nil params are empty", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("settings", nil)

		assert.NotNil(t, nav.CurrentParams())
		assert.Empty(t, nav.CurrentParams())
	})

	t.Run("same view and equal params is a no-op", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("projects", nil)
		nav.NavigateTo("editor", Params{"file": "a.md", "line": 3})

		before := nav.Snapshot()
		outcome := nav.NavigateTo("editor", Params{"line": 3, "file": "a.md"})

		assert.Equal(t, OutcomeUnchanged, outcome)
		after := nav.Snapshot()
		assert.Len(t, after.History, len(before.History))
		assert.Equal(t, before.Previous, after.Previous)
		assert.Equal(t, before.Version, after.Version)
	})

	t.Run("navigating to home with empty params at start is a no-op", func(t *testing.T) {
		nav := New()

		assert.Equal(t, OutcomeUnchanged, nav.NavigateTo(Home, Params{}))
		assert.Len(t, nav.History(), 1)
		_, ok := nav.PreviousView()
		assert.False(t, ok)
	})

	t.Run("duplicate suppression", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("agent", Params{"x": 1})
		nav.NavigateTo("agent", Params{"x": 1})

		assert.Equal(t, []View{Home, "agent"}, views(nav.History()))
	})

	t.Run("same view with different params stacks", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("editor", Params{"file": "a.md"})
		nav.NavigateTo("editor", Params{"file": "b.md"})

		assert.Equal(t, []View{Home, "editor", "editor"}, views(nav.History()))

		prev, _ := nav.PreviousView()
		assert.Equal(t, View("editor"), prev)
	})

	t.Run("nested params compare structurally", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("session", Params{"project": map[string]any{"id": "p1", "tags": []string{"go"}}})

		outcome := nav.NavigateTo("session", Params{"project": map[string]any{"id": "p1", "tags": []string{"go"}}})
		assert.Equal(t, OutcomeUnchanged, outcome)

		outcome = nav.NavigateTo("session", Params{"project": map[string]any{"id": "p1", "tags": []string{"rust"}}})
		assert.Equal(t, OutcomeCommitted, outcome)
	})

	t.Run("unknown view tokens are accepted", func(t *testing.T) {
		nav := New()
		assert.Equal(t, OutcomeCommitted, nav.NavigateTo("no-such-screen", nil))
		assert.Equal(t, View("no-such-screen"), nav.CurrentView())
	})

	t.Run("caller mutations do not leak into state", func(t *testing.T) {
		nav := New()
		params := Params{"file": "a.md"}
		nav.NavigateTo("editor", params)

		params["file"] = "changed.md"
		got := nav.CurrentParams()
		got["file"] = "also-changed.md"
		hist := nav.History()
		hist[1].Params["file"] = "history-changed.md"

		assert.Equal(t, Params{"file": "a.md"}, nav.CurrentParams())
		assert.Equal(t, Params{"file": "a.md"}, nav.History()[1].Params)
	})
}

func TestGoBack(t *testing.T) {
	t.Run("stack discipline drops the popped entry", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("a", nil)
		nav.NavigateTo("b", nil)

		outcome := nav.GoBack()

		assert.Equal(t, OutcomeCommitted, outcome)
		assert.Equal(t, View("a"), nav.CurrentView())
		assert.Equal(t, []View{Home, "a"}, views(nav.History()))

		prev, ok := nav.PreviousView()
		require.True(t, ok)
		assert.Equal(t, View("b"), prev)
	})

	t.Run("restores params of the entry returned to", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("editor", Params{"file": "a.md"})
		nav.NavigateTo("settings", nil)

		nav.GoBack()

		assert.Equal(t, Params{"file": "a.md"}, nav.CurrentParams())
	})

	t.Run("root fallback resets to home without touching history", func(t *testing.T) {
		nav := New()

		nav.GoBack()

		assert.Equal(t, Home, nav.CurrentView())
		assert.Equal(t, Params{}, nav.CurrentParams())
		assert.Len(t, nav.History(), 1)
		assert.False(t, nav.CanGoBack())
	})

	t.Run("root fallback leaves previous view alone by default", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("a", nil)
		nav.GoBack()

		nav.GoBack()

		prev, ok := nav.PreviousView()
		require.True(t, ok)
		assert.Equal(t, View("a"), prev)
	})

	t.Run("root fallback records previous view when enabled", func(t *testing.T) {
		nav := New(WithRootFallbackPrevious(true))
		nav.NavigateTo("a", nil)
		nav.GoBack()

		outcome := nav.GoBack()

		assert.Equal(t, OutcomeCommitted, outcome)
		prev, ok := nav.PreviousView()
		require.True(t, ok)
		assert.Equal(t, Home, prev)
		assert.Len(t, nav.History(), 1)
	})

	t.Run("interceptor sees the destination view", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("projects", nil)
		nav.NavigateTo("editor", nil)

		var seen []View
		nav.SetInterceptor(func(target View) bool {
			seen = append(seen, target)
			return true
		})

		nav.GoBack()
		nav.GoBack()
		nav.GoBack()

		assert.Equal(t, []View{"projects", Home, Home}, seen)
	})
}

func TestInterceptor(t *testing.T) {
	t.Run("always-false interceptor freezes state", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("projects", Params{"page": 2})
		nav.NavigateTo("editor", Params{"file": "a.md"})
		nav.SetInterceptor(func(View) bool { return false })

		before := nav.Snapshot()

		assert.Equal(t, OutcomeVetoed, nav.NavigateTo("settings", nil))
		assert.Equal(t, OutcomeVetoed, nav.GoBack())
		assert.Equal(t, OutcomeVetoed, nav.NavigateTo("editor", Params{"file": "a.md"}))

		after := nav.Snapshot()
		assert.Equal(t, before.Current, after.Current)
		assert.Equal(t, before.Params, after.Params)
		assert.Equal(t, before.Previous, after.Previous)
		assert.Equal(t, views(before.History), views(after.History))
		assert.Equal(t, before.Version, after.Version)
	})

	t.Run("vetoes root fallback", func(t *testing.T) {
		nav := New(WithRootFallbackPrevious(true))
		nav.SetInterceptor(func(View) bool { return false })

		assert.Equal(t, OutcomeVetoed, nav.GoBack())
		_, ok := nav.PreviousView()
		assert.False(t, ok)
	})

	t.Run("selective guard", func(t *testing.T) {
		nav := New()
		nav.SetInterceptor(func(target View) bool { return target != "settings" })

		assert.Equal(t, OutcomeVetoed, nav.NavigateTo("settings", nil))
		assert.Equal(t, OutcomeCommitted, nav.NavigateTo("projects", nil))
		assert.Equal(t, View("projects"), nav.CurrentView())
	})

	t.Run("last registration wins and nil clears", func(t *testing.T) {
		nav := New()
		firstCalls := 0
		nav.SetInterceptor(func(View) bool { firstCalls++; return false })
		nav.SetInterceptor(func(View) bool { return true })

		assert.Equal(t, OutcomeCommitted, nav.NavigateTo("a", nil))
		assert.Zero(t, firstCalls)

		nav.SetInterceptor(func(View) bool { return false })
		nav.SetInterceptor(nil)
		assert.Equal(t, OutcomeCommitted, nav.NavigateTo("b", nil))
	})

	t.Run("called even for redundant navigation", func(t *testing.T) {
		nav := New()
		calls := 0
		nav.SetInterceptor(func(View) bool { calls++; return true })

		assert.Equal(t, OutcomeUnchanged, nav.NavigateTo(Home, nil))
		assert.Equal(t, 1, calls)
	})

	t.Run("may read state", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("editor", Params{"dirty": true})
		nav.SetInterceptor(func(View) bool {
			return nav.CurrentParams()["dirty"] != true
		})

		assert.Equal(t, OutcomeVetoed, nav.NavigateTo("home", nil))
	})

	t.Run("re-entrant calls are rejected", func(t *testing.T) {
		nav := New()
		nav.NavigateTo("a", nil)

		var inner []Outcome
		nav.SetInterceptor(func(View) bool {
			inner = append(inner, nav.NavigateTo("elsewhere", nil), nav.GoBack())
			return true
		})

		assert.Equal(t, OutcomeCommitted, nav.NavigateTo("b", nil))
		assert.Equal(t, []Outcome{OutcomeRejected, OutcomeRejected}, inner)
		assert.Equal(t, []View{Home, "a", "b"}, views(nav.History()))
	})

	t.Run("panicking interceptor releases the transition", func(t *testing.T) {
		nav := New()
		nav.SetInterceptor(func(View) bool { panic("boom") })

		assert.Panics(t, func() { nav.NavigateTo("a", nil) })

		nav.SetInterceptor(nil)
		assert.Equal(t, OutcomeCommitted, nav.NavigateTo("a", nil))
	})
}

func TestSubscribe(t *testing.T) {
	nav := New()

	var got []Transition
	unsubscribe := nav.Subscribe(func(tr Transition) {
		got = append(got, tr)
	})

	nav.NavigateTo("projects", nil)
	nav.NavigateTo("projects", nil)
	nav.GoBack()

	require.Len(t, got, 2)
	assert.Equal(t, TransitionForward, got[0].Kind)
	assert.Equal(t, Home, got[0].From)
	assert.Equal(t, View("projects"), got[0].To)
	assert.Equal(t, TransitionBack, got[1].Kind)
	assert.Equal(t, Home, got[1].To)

	unsubscribe()
	unsubscribe()
	nav.NavigateTo("settings", nil)
	assert.Len(t, got, 2)
}

func TestSubscribe_ListenerMayNavigate(t *testing.T) {
	nav := New()
	nav.Subscribe(func(tr Transition) {
		if tr.To == "legacy" {
			nav.NavigateTo("settings", nil)
		}
	})

	nav.NavigateTo("legacy", nil)

	assert.Equal(t, View("settings"), nav.CurrentView())
	assert.Equal(t, []View{Home, "legacy", "settings"}, views(nav.History()))
}

func TestScenario_EditorFiles(t *testing.T) {
	nav := New()

	nav.NavigateTo("projects", Params{})
	nav.NavigateTo("editor", Params{"file": "a.md"})
	nav.NavigateTo("editor", Params{"file": "b.md"})

	hist := nav.History()
	require.Len(t, hist, 4)
	assert.True(t, hist[0].Matches(Home, nil))
	assert.True(t, hist[1].Matches("projects", nil))
	assert.True(t, hist[2].Matches("editor", Params{"file": "a.md"}))
	assert.True(t, hist[3].Matches("editor", Params{"file": "b.md"}))

	nav.GoBack()

	assert.Equal(t, View("editor"), nav.CurrentView())
	assert.Equal(t, Params{"file": "a.md"}, nav.CurrentParams())
}

func TestInvariants_RandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	targets := []View{Home, "projects", "editor", "settings"}
	files := []string{"", "a.md", "b.md"}

	nav := New()
	for i := 0; i < 2000; i++ {
		if rng.Intn(3) == 0 {
			nav.GoBack()
		} else {
			view := targets[rng.Intn(len(targets))]
			params := Params{}
			if f := files[rng.Intn(len(files))]; f != "" {
				params["file"] = f
			}

			before := nav.Snapshot()
			outcome := nav.NavigateTo(view, params)
			if outcome == OutcomeUnchanged {
				assert.Len(t, nav.History(), len(before.History))
				assert.Equal(t, before.Previous, nav.Snapshot().Previous)
			}
		}

		state := nav.Snapshot()
		require.NotEmpty(t, state.History, "history must never be empty")
		assert.Equal(t, len(state.History) > 1, state.CanGoBack)

		top := state.History[len(state.History)-1]
		require.True(t, top.Matches(state.Current, state.Params),
			"top entry %v %v must equal current state %v %v", top.View, top.Params, state.Current, state.Params)

		for j := 1; j < len(state.History); j++ {
			assert.False(t, state.History[j].Equal(state.History[j-1]), "adjacent entries must differ")
		}
	}
}
