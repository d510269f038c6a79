package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 5},
		{"playback context", "playback", true, 5},
		{"list context", "list", true, 5},
		{"queue context", "queue", true, 3},
		{"song context", "song", true, 2},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}
			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestByContext_EssentialActions(t *testing.T) {
	tests := map[string][]Action{
		"global":   {ActionQuit, ActionSwitchFocus, ActionToggleQueue, ActionSearch, ActionHelp, ActionBack},
		"playback": {ActionPlayPause, ActionNextTrack, ActionPrevTrack, ActionToggleLoop, ActionToggleShuffle, ActionRetry},
		"queue":    {ActionSelect, ActionDelete, ActionClear},
		"song":     {ActionNextSong, ActionPrevSong},
	}

	for context, actions := range tests {
		bindings := ByContext(context)
		for _, action := range actions {
			found := false
			for _, b := range bindings {
				if b.Action == action {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected action %q in %s bindings", action, context)
			}
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	valid := make(map[string]bool)
	for _, c := range Contexts {
		valid[c] = true
	}

	for i, b := range Bindings {
		if !valid[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestBindings_NoConflictingKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}
