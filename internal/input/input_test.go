package input

import (
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Event
	}{
		{"empty", "", nil},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Event{Press(KeyUp), Press(KeyDown), Press(KeyRight), Press(KeyLeft)}},
		{"ss3 arrows", "\x1bOA\x1bOD", []Event{Press(KeyUp), Press(KeyLeft)}},
		{"modified arrow", "\x1b[1;5C", []Event{Press(KeyRight)}},
		{"unknown csi is dropped", "\x1b[2~x", []Event{PressRune('x')}},
		{"alt key", "\x1bx", []Event{PressRune('x')}},
		{"alt key maps like the key", "\x1bd", []Event{Press(KeyRight)}},
		{"double escape", "\x1b\x1b[A", []Event{Press(KeyEscape), Press(KeyUp)}},
		{"wasd", "wasd", []Event{Press(KeyUp), Press(KeyLeft), Press(KeyDown), Press(KeyRight)}},
		{"ijkl", "ijkl", []Event{Press(KeyUp), Press(KeyLeft), Press(KeyDown), Press(KeyRight)}},
		{"space and enter", " \r\n", []Event{Press(KeySpace), Press(KeyEnter), Press(KeyEnter)}},
		{"quit keys", "q\x03\x04Q", []Event{Quit(), Quit(), Quit(), Quit()}},
		{"backspace", "\x7f\b", []Event{Press(KeyBackspace), Press(KeyBackspace)}},
		{"digits are runes", "7", []Event{PressRune('7')}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := parseBytes([]byte(tt.in), true)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, rest)
		})
	}
}

func TestParseBytesHoldsPartialSequence(t *testing.T) {
	got, rest := parseBytes([]byte("x\x1b["), true)
	assert.Equal(t, []Event{PressRune('x')}, got)
	assert.Equal(t, []byte("\x1b["), rest)

	got, rest = parseBytes(append(rest, 'A'), false)
	assert.Equal(t, []Event{Press(KeyUp)}, got)
	assert.Empty(t, rest)
}

func TestParseBytesHoldsSplitModifiedSequence(t *testing.T) {
	got, rest := parseBytes([]byte("\x1b[1;5"), true)
	assert.Empty(t, got)
	assert.Equal(t, []byte("\x1b[1;5"), rest)

	got, rest = parseBytes(append(rest, 'A'), true)
	assert.Equal(t, []Event{Press(KeyUp)}, got)
	assert.Empty(t, rest)
}

func TestParseBytesDropsTruncatedSequenceWithoutHold(t *testing.T) {
	got, rest := parseBytes([]byte("w\x1b[1;5"), false)
	assert.Equal(t, []Event{Press(KeyUp)}, got)
	assert.Empty(t, rest)
}

func TestAltKeyIsNotQuitRequest(t *testing.T) {
	for _, in := range []string{"\x1bd", "\x1bx", "\x1b "} {
		got, _ := parseBytes([]byte(in), true)
		require.Len(t, got, 1, "%q", in)
		assert.False(t, got[0].IsQuitRequest(), "%q", in)
	}
}

func TestParseBytesTrailingEscapeWithoutHold(t *testing.T) {
	got, rest := parseBytes([]byte("\x1b"), false)
	assert.Equal(t, []Event{Press(KeyEscape)}, got)
	assert.Empty(t, rest)
}

func TestEventIsQuitRequest(t *testing.T) {
	assert.True(t, Quit().IsQuitRequest())
	assert.True(t, Press(KeyEscape).IsQuitRequest())
	assert.False(t, Press(KeySpace).IsQuitRequest())
	assert.False(t, PressRune('x').IsQuitRequest())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "quit", Quit().String())
	assert.Equal(t, "keydown(escape)", Press(KeyEscape).String())
	assert.Equal(t, "keydown('z')", PressRune('z').String())
	assert.Equal(t, "key(99)", Key(99).String())
}

func TestQueue(t *testing.T) {
	q := NewQueue([]Event{Press(KeyUp)}, []Event{Quit()})
	q.Push(Press(KeySpace))

	assert.Equal(t, []Event{Press(KeyUp), Press(KeySpace)}, slices.Collect(q.Poll()))
	assert.Equal(t, []Event{Quit()}, slices.Collect(q.Poll()))
	assert.Empty(t, slices.Collect(q.Poll()))
}

func TestQueueStopsWhenConsumerBreaks(t *testing.T) {
	q := NewQueue([]Event{Press(KeyUp), Press(KeyDown)})
	var seen []Event
	for ev := range q.Poll() {
		seen = append(seen, ev)
		break
	}
	assert.Equal(t, []Event{Press(KeyUp)}, seen)
}

// collectUntil polls src until pred is satisfied by the accumulated events.
func collectUntil(t *testing.T, src Source, pred func([]Event) bool) []Event {
	t.Helper()
	var all []Event
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		all = append(all, slices.Collect(src.Poll())...)
		if pred(all) {
			return all
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out, events so far: %v", all)
	return nil
}

func TestTerminalReportsKeysThenQuitOnEOF(t *testing.T) {
	term := NewTerminal(strings.NewReader(" \x1b[A"))
	// Let the reader goroutine reach EOF so the sequence arrives in one batch.
	time.Sleep(20 * time.Millisecond)

	events := collectUntil(t, term, func(evs []Event) bool {
		return slices.ContainsFunc(evs, func(e Event) bool { return e.Type == EventQuit })
	})

	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, Press(KeySpace), events[0])
	assert.Equal(t, Press(KeyUp), events[1])
	assert.Equal(t, Quit(), events[len(events)-1])

	// Once closed, every poll keeps reporting quit.
	assert.Equal(t, []Event{Quit()}, slices.Collect(term.Poll()))
}

func TestTerminalPollIsEmptyWithoutInput(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	term := NewTerminal(r)
	assert.Empty(t, slices.Collect(term.Poll()))

	_, err := w.Write([]byte("d"))
	require.NoError(t, err)

	events := collectUntil(t, term, func(evs []Event) bool { return len(evs) > 0 })
	assert.Equal(t, []Event{Press(KeyRight)}, events)
}
