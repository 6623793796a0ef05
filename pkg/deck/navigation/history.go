package navigation

// history is the back-stack of visited entries, oldest first.
// It always holds at least the root entry.
type history struct {
	entries []HistoryEntry
}

func newHistory(root HistoryEntry) *history {
	return &history{
		entries: []HistoryEntry{root},
	}
}

// push adds an entry on top. Called when navigating forward.
func (h *history) push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

// pop removes the top entry and returns the new top.
// The root entry is never removed; pop on a single-entry history returns it unchanged.
func (h *history) pop() HistoryEntry {
	if len(h.entries) > 1 {
		h.entries[len(h.entries)-1] = HistoryEntry{}
		h.entries = h.entries[:len(h.entries)-1]
	}
	return h.top()
}

// top returns the newest entry.
func (h *history) top() HistoryEntry {
	return h.entries[len(h.entries)-1]
}

// below returns the entry directly under the top, the one GoBack returns to.
// The second result is false when only the root remains.
func (h *history) below() (HistoryEntry, bool) {
	if len(h.entries) < 2 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-2], true
}

func (h *history) len() int {
	return len(h.entries)
}

// snapshot returns a copy callers may keep and modify.
func (h *history) snapshot() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	for i, entry := range h.entries {
		out[i] = entry.clone()
	}
	return out
}
