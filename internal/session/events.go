package session

// EventType is the kind of view event.
type EventType string

const (
	EventEntryDone EventType = "ENTRY_DONE"
	EventSelect    EventType = "SELECT"
	EventArrive    EventType = "ARRIVE"
	EventBack      EventType = "BACK"
	EventHome      EventType = "HOME"
	EventExternal  EventType = "OPEN_EXTERNAL"
	EventRejected  EventType = "REJECTED"
	EventDropped   EventType = "DROPPED"
)

// Event records one view-machine transition or refused request.
type Event struct {
	Type EventType `json:"type"`
	At   float64   `json:"at"` // Session seconds
	Body string    `json:"body,omitempty"`
}

// eventLog is a fixed-size ring buffer of events.
type eventLog struct {
	events  []Event
	max     int
	writeAt int
}

func newEventLog(size int) *eventLog {
	if size <= 0 {
		size = 50
	}
	return &eventLog{events: make([]Event, 0, size), max: size}
}

func (l *eventLog) add(e Event) {
	if len(l.events) < l.max {
		l.events = append(l.events, e)
		return
	}
	l.events[l.writeAt] = e
	l.writeAt = (l.writeAt + 1) % l.max
}

// ordered returns events oldest first.
func (l *eventLog) ordered() []Event {
	if len(l.events) == 0 {
		return nil
	}
	if len(l.events) < l.max {
		out := make([]Event, len(l.events))
		copy(out, l.events)
		return out
	}
	out := make([]Event, l.max)
	for i := 0; i < l.max; i++ {
		out[i] = l.events[(l.writeAt+i)%l.max]
	}
	return out
}
