package media

// State represents the element state machine.
//
// Valid transitions:
//   - Stopped → Paused  (via Load)
//   - Paused  → Playing (via Play)
//   - Playing → Paused  (via Pause, or when the track ends)
//   - any     → Stopped (via Close, or a failed Load)
//
// Play and Pause in the state they lead to are no-ops.
type State int

const (
	Stopped State = iota
	Paused
	Playing
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
