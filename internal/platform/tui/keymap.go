package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapMovement translates a key message to a movement key.
// Returns false if the key does not steer the ship.
func (km *KeyMapper) MapMovement(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.String() {
	case "left":
		return core.KeyLeft, true
	case "right":
		return core.KeyRight, true
	case "up":
		return core.KeyUp, true
	case "down":
		return core.KeyDown, true
	case "a", "A":
		return core.KeyA, true
	case "d", "D":
		return core.KeyD, true
	case "w", "W":
		return core.KeyW, true
	case "s", "S":
		return core.KeyS, true
	}
	return "", false
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// Hold windows for KeyHold, in milliseconds.
const (
	DefaultHoldInitialMs = 500 // covers the terminal's auto-repeat delay
	DefaultHoldRepeatMs  = 110
)

// KeyHold turns key presses into held-key state.
// Terminals report presses and auto-repeats but never releases, so a press
// holds its key for a window and each repeat extends it.
type KeyHold struct {
	until     map[core.Key]float64 // release deadline in ms
	initialMs float64
	repeatMs  float64
}

// NewKeyHold creates a tracker with the given hold windows.
// Non-positive windows fall back to the defaults.
func NewKeyHold(initialMs, repeatMs float64) *KeyHold {
	if initialMs <= 0 {
		initialMs = DefaultHoldInitialMs
	}
	if repeatMs <= 0 {
		repeatMs = DefaultHoldRepeatMs
	}
	return &KeyHold{
		until:     make(map[core.Key]float64),
		initialMs: initialMs,
		repeatMs:  repeatMs,
	}
}

// Press records a press of k at nowMs.
// Pressing a direction releases every key of the opposite direction.
func (h *KeyHold) Press(k core.Key, nowMs float64) {
	for _, o := range opposite(k) {
		delete(h.until, o)
	}

	deadline := nowMs + h.initialMs
	if cur, held := h.until[k]; held && cur > nowMs {
		deadline = max(cur, nowMs+h.repeatMs)
	}
	h.until[k] = deadline
}

// Release drops k immediately.
func (h *KeyHold) Release(k core.Key) {
	delete(h.until, k)
}

// Clear releases every key.
func (h *KeyHold) Clear() {
	clear(h.until)
}

// Keys prunes expired keys and returns the ones still held at nowMs.
func (h *KeyHold) Keys(nowMs float64) core.KeySet {
	held := make(core.KeySet, len(h.until))
	for k, deadline := range h.until {
		if deadline <= nowMs {
			delete(h.until, k)
			continue
		}
		held.Press(k)
	}
	return held
}

func opposite(k core.Key) []core.Key {
	in := func(group []core.Key) bool {
		for _, g := range group {
			if g == k {
				return true
			}
		}
		return false
	}
	switch {
	case in(core.LeftKeys):
		return core.RightKeys
	case in(core.RightKeys):
		return core.LeftKeys
	case in(core.UpKeys):
		return core.DownKeys
	case in(core.DownKeys):
		return core.UpKeys
	}
	return nil
}
