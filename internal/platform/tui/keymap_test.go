package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapMovement(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, true},
		{runeKey('a'), core.KeyA, true},
		{runeKey('D'), core.KeyD, true},
		{runeKey('w'), core.KeyW, true},
		{runeKey('s'), core.KeyS, true},
		{runeKey('x'), "", false},
		{tea.KeyMsg{Type: tea.KeyEnter}, "", false},
	}

	for _, tc := range tests {
		got, ok := km.MapMovement(tc.msg)
		if got != tc.want || ok != tc.ok {
			t.Errorf("MapMovement(%q) = %q, %v; want %q, %v", tc.msg.String(), got, ok, tc.want, tc.ok)
		}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('p'), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{runeKey('b'), core.ActionBack, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		got, isQuit := km.MapKey(tc.msg)
		if got != tc.want || isQuit != tc.isQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.msg.String(), got, isQuit, tc.want, tc.isQuit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		"up":    {tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		"k":     {runeKey('k'), MenuActionUp},
		"down":  {tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		"j":     {runeKey('j'), MenuActionDown},
		"enter": {tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		"tab":   {tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		"esc":   {tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		"q":     {runeKey('q'), MenuActionQuit},
		"other": {runeKey('x'), MenuActionNone},
	}

	for name, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("%s: got %v, want %v", name, got, tc.want)
		}
	}
}

func TestKeyHoldInitialWindow(t *testing.T) {
	h := NewKeyHold(500, 100)
	h.Press(core.KeyLeft, 1000)

	if !h.Keys(1499).Has(core.KeyLeft) {
		t.Error("Key should still be held inside the initial window")
	}
	if h.Keys(1500).Has(core.KeyLeft) {
		t.Error("Key should be released when the window ends")
	}
	if len(h.until) != 0 {
		t.Error("Expired keys should be pruned")
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	h := NewKeyHold(500, 100)
	h.Press(core.KeyRight, 0)

	// Auto-repeat starts late in the initial window and never shortens it.
	h.Press(core.KeyRight, 450)
	if !h.Keys(520).Has(core.KeyRight) {
		t.Error("Repeat inside the initial window should keep the key")
	}
	h.Press(core.KeyRight, 540)
	if !h.Keys(620).Has(core.KeyRight) {
		t.Error("Repeat should extend the hold")
	}
	if h.Keys(640).Has(core.KeyRight) {
		t.Error("Key should be released once repeats stop")
	}

	// A press after release starts a fresh initial window.
	h.Press(core.KeyRight, 1000)
	if !h.Keys(1400).Has(core.KeyRight) {
		t.Error("New press should get the initial window")
	}
}

func TestKeyHoldOppositeReleases(t *testing.T) {
	h := NewKeyHold(500, 100)
	h.Press(core.KeyLeft, 0)
	h.Press(core.KeyA, 0)
	h.Press(core.KeyUp, 0)

	h.Press(core.KeyD, 10)
	keys := h.Keys(20)
	if keys.Has(core.KeyLeft) || keys.Has(core.KeyA) {
		t.Error("Pressing right should release left")
	}
	if !keys.Has(core.KeyD) || !keys.Has(core.KeyUp) {
		t.Errorf("Unrelated keys should stay held, got %v", keys.Sorted())
	}
	if keys.Axis(core.LeftKeys, core.RightKeys) != 1 {
		t.Error("Axis should point right")
	}
}

func TestKeyHoldReleaseAndClear(t *testing.T) {
	h := NewKeyHold(0, 0)
	if h.initialMs != DefaultHoldInitialMs || h.repeatMs != DefaultHoldRepeatMs {
		t.Errorf("Expected default windows, got %v/%v", h.initialMs, h.repeatMs)
	}

	h.Press(core.KeyW, 0)
	h.Press(core.KeyA, 0)
	h.Release(core.KeyW)
	if h.Keys(1).Has(core.KeyW) {
		t.Error("Released key should not be held")
	}

	h.Clear()
	if len(h.Keys(1)) != 0 {
		t.Error("Clear should release every key")
	}
}
