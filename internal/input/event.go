// Package input turns raw terminal bytes into per-frame events.
package input

import (
	"fmt"
	"iter"
	"slices"
)

// EventType identifies the kind of an Event.
type EventType int

const (
	EventQuit    EventType = iota // Window close analog: EOF, Ctrl+C, q
	EventKeyDown                  // A key press (terminals report no release)
)

// Key identifies a recognized key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyBackspace
	KeyRune // Any other printable byte, see Event.Rune
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyEscape:    "escape",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyRune:      "rune",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Event is one input or window event.
type Event struct {
	Type EventType
	Key  Key
	Rune rune // Set when Key is KeyRune
}

// Quit returns a quit-request event.
func Quit() Event {
	return Event{Type: EventQuit}
}

// Press returns a key-press event for k.
func Press(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// PressRune returns a key-press event for a printable character.
func PressRune(r rune) Event {
	return Event{Type: EventKeyDown, Key: KeyRune, Rune: r}
}

// IsQuitRequest reports whether the event asks the application to stop.
// Escape counts as a quit-request.
func (e Event) IsQuitRequest() bool {
	return e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape)
}

func (e Event) String() string {
	switch e.Type {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		if e.Key == KeyRune {
			return fmt.Sprintf("keydown(%q)", e.Rune)
		}
		return "keydown(" + e.Key.String() + ")"
	default:
		return fmt.Sprintf("event(%d)", int(e.Type))
	}
}

// Source produces the events pending for the current frame.
// The returned sequence is finite and must be drained every frame.
type Source interface {
	Poll() iter.Seq[Event]
}

// Queue is an in-memory Source. Each Poll yields the events pushed
// since the previous Poll.
type Queue struct {
	pending []Event
	frames  [][]Event
}

// NewQueue creates a queue that yields one batch of events per Poll,
// in order. Events added with Push are appended to the next batch.
func NewQueue(frames ...[]Event) *Queue {
	return &Queue{frames: frames}
}

// Push adds events to the next poll.
func (q *Queue) Push(events ...Event) {
	q.pending = append(q.pending, events...)
}

// Poll implements Source.
func (q *Queue) Poll() iter.Seq[Event] {
	batch := q.pending
	q.pending = nil
	if len(q.frames) > 0 {
		batch = slices.Concat(q.frames[0], batch)
		q.frames = q.frames[1:]
	}
	return func(yield func(Event) bool) {
		for _, ev := range batch {
			if !yield(ev) {
				return
			}
		}
	}
}
