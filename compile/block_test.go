package compile

import (
	"path/filepath"
	"testing"
)

func TestBlockNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("some", "dir", "widget.css"), "widget"},
		{"widget.css", "widget"},
		{"widget.min.css", "widget.min"},
		{"widget", "widget"},
	}
	for _, tc := range tests {
		if got := BlockNameFromPath(tc.path); got != tc.want {
			t.Errorf("BlockNameFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestEnsureStateMemoization(t *testing.T) {
	b := NewBlock("widget")

	first := b.EnsureState(StateInfo{Name: "on"})
	second := b.EnsureState(StateInfo{Name: "on"})
	if first != second {
		t.Error("EnsureState() created a duplicate for the same identity")
	}

	grouped := b.EnsureState(StateInfo{Group: "theme", Name: "on"})
	if grouped == first {
		t.Error("EnsureState() conflated grouped and ungrouped identities")
	}
	if grouped.Group() != "theme" || grouped.Name() != "on" {
		t.Errorf("Grouped state = %q/%q, want theme/on", grouped.Group(), grouped.Name())
	}

	if len(b.States()) != 2 {
		t.Errorf("States() returned %d states, want 2", len(b.States()))
	}
}

func TestStatesOrderAndIsolation(t *testing.T) {
	b := NewBlock("widget")
	b.EnsureState(StateInfo{Name: "z"})
	b.EnsureState(StateInfo{Name: "a"})
	b.EnsureState(StateInfo{Name: "z"}) // repeat, must not reorder

	states := b.States()
	if len(states) != 2 || states[0].Name() != "z" || states[1].Name() != "a" {
		t.Fatalf("States() not in creation order: %v, %v", states[0].Name(), states[1].Name())
	}

	// callers get a copy
	states[0] = nil
	if b.States()[0] == nil {
		t.Error("States() exposed internal storage")
	}
}

func TestStateIdentity(t *testing.T) {
	tests := []struct {
		info StateInfo
		want string
	}{
		{StateInfo{Name: "on"}, "on"},
		{StateInfo{Group: "theme", Name: "on"}, "theme on"},
	}
	for _, tc := range tests {
		if got := tc.info.identity(); got != tc.want {
			t.Errorf("identity(%+v) = %q, want %q", tc.info, got, tc.want)
		}
	}
}
