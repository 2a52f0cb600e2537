package core

import "sort"

// Key names a physical key as reported by the host.
// Arrow keys use their KeyboardEvent.key names; letters are lower case.
type Key string

// Keys understood by the simulation.
const (
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeyA     Key = "a"
	KeyD     Key = "d"
	KeyW     Key = "w"
	KeyS     Key = "s"
	KeyEnter Key = "Enter"
)

// Direction groups for axis resolution.
var (
	LeftKeys  = []Key{KeyLeft, KeyA}
	RightKeys = []Key{KeyRight, KeyD}
	UpKeys    = []Key{KeyUp, KeyW}
	DownKeys  = []Key{KeyDown, KeyS}
)

// KeySet is the set of keys currently held down.
// The zero value is an empty set ready for reads; use NewKeySet or Press to write.
type KeySet map[Key]struct{}

// NewKeySet creates a set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Any reports whether any of the keys is held.
func (s KeySet) Any(keys []Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Press marks k as held.
func (s KeySet) Press(k Key) {
	s[k] = struct{}{}
}

// Release marks k as no longer held.
func (s KeySet) Release(k Key) {
	delete(s, k)
}

// Clone returns an independent copy of the set.
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Sorted returns the held keys in lexical order.
func (s KeySet) Sorted() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Axis resolves two opposing key groups to -1, 0 or 1.
// Holding both directions cancels out to 0.
func (s KeySet) Axis(neg, pos []Key) int {
	n, p := s.Any(neg), s.Any(pos)
	switch {
	case n && !p:
		return -1
	case p && !n:
		return 1
	default:
		return 0
	}
}

// Action represents a platform-level command, abstracted from physical key presses.
// Movement is not an action: it is read from the held KeySet every tick.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R, Enter - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}
