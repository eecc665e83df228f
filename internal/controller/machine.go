package controller

// State is the synchronization state between the URL and the filters.
type State int

const (
	// Uninitialized: nothing imported yet; changes never reach the URL.
	Uninitialized State = iota
	// Imported: filters mirror the URL; the URL is left untouched.
	Imported
	// Touched: the user changed a filter since the last import.
	Touched
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Imported:
		return "imported"
	case Touched:
		return "touched"
	default:
		return "unknown"
	}
}

// Event drives a state transition.
type Event int

const (
	EventImport Event = iota
	EventTouch
)

func (e Event) String() string {
	switch e {
	case EventImport:
		return "import"
	case EventTouch:
		return "touch"
	default:
		return "unknown"
	}
}

type transition struct {
	next   State
	export bool
}

// transitions is the complete table; every (state, event) pair is present.
var transitions = map[State]map[Event]transition{
	Uninitialized: {
		EventImport: {next: Imported},
		EventTouch:  {next: Uninitialized},
	},
	Imported: {
		EventImport: {next: Imported},
		EventTouch:  {next: Touched, export: true},
	},
	Touched: {
		EventImport: {next: Imported},
		EventTouch:  {next: Touched, export: true},
	},
}

type machine struct {
	state State
}

// fire applies e and reports whether the resulting state requires an export.
func (m *machine) fire(e Event) bool {
	t, ok := transitions[m.state][e]
	if !ok {
		return false
	}
	m.state = t.next
	return t.export
}
