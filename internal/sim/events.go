package sim

// Event is a discrete gameplay event delivered to observers.
// Events carry no payload beyond their kind; they are purely observational
// and must never affect simulation state.
type Event int

const (
	EventFlap  Event = iota // Agent received an upward impulse
	EventScore              // An obstacle was passed
	EventHit                // A terminal collision occurred
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Notifier receives gameplay events, typically to play sounds.
// Implementations may fail or panic freely; the simulation swallows both.
type Notifier interface {
	Notify(Event)
}

// ScoreStore persists the best score across sessions.
// WriteBest is called only when the current score strictly exceeds the
// stored best, and stores must tolerate repeated identical writes.
type ScoreStore interface {
	ReadBest() (int, error)
	WriteBest(score int) error
}

// nopNotifier drops all events.
type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}

// nopStore remembers the best score in memory only.
type nopStore struct {
	best int
}

func (s *nopStore) ReadBest() (int, error) { return s.best, nil }

func (s *nopStore) WriteBest(score int) error {
	s.best = score
	return nil
}
