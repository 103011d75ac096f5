package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventIntentRejected EventKind = iota // intent could not be carried out; no turn spent
	EventCrabKilled                      // grapple struck a living crab
	EventAmberSpent                      // poison contact absorbed by one amber
	EventDied                            // life ended; fade-out started
	EventEscaped                         // player reached the exit
	EventRestarted                       // a fresh life began
)

// String returns the log-friendly name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventIntentRejected:
		return "intent rejected"
	case EventCrabKilled:
		return "crab killed"
	case EventAmberSpent:
		return "amber spent"
	case EventDied:
		return "died"
	case EventEscaped:
		return "escaped"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation; the platform logs and records it.
// X and Y are the player's cell when the event fired.
type Event struct {
	Kind  EventKind
	Tick  uint64
	X, Y  int
	Amber int    // amber after the event
	Turns int    // turns spent in the current life
	Cause string // what killed the player, or the rejected intent
	Life  int    // 1-based life number within the run
}
