package input

import (
	"bufio"
	"io"
	"iter"
)

// Control bytes with special meaning in raw mode.
const (
	byteCtrlC = 0x03
	byteCtrlD = 0x04
	byteEsc   = 0x1b
	byteDel   = 0x7f
)

// Terminal is a Source reading raw keyboard bytes from a terminal.
// A background goroutine moves bytes from the reader into a channel;
// Poll drains whatever is available without blocking.
type Terminal struct {
	ch     chan byte
	closed bool   // reader hit EOF or an error
	carry  []byte // incomplete escape sequence held from the previous poll
}

// NewTerminal starts reading from r. The goroutine exits when r returns
// an error; every Poll after that reports a quit-request.
func NewTerminal(r io.Reader) *Terminal {
	t := &Terminal{ch: make(chan byte, 256)}
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(t.ch)
				return
			}
			t.ch <- b
		}
	}()
	return t
}

// Poll implements Source. Bytes are drained when the sequence is iterated.
func (t *Terminal) Poll() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		carried := len(t.carry) > 0
		buf := t.drain()

		var events []Event
		events, t.carry = parseBytes(buf, !carried && !t.closed)
		if t.closed {
			events = append(events, Quit())
		}
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

// drain collects the held-back bytes plus everything buffered in the channel.
func (t *Terminal) drain() []byte {
	buf := t.carry
	t.carry = nil
	if t.closed {
		return buf
	}
	for {
		select {
		case b, ok := <-t.ch:
			if !ok {
				t.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// parseBytes converts a batch of raw bytes into events.
// When hold is set, a trailing incomplete escape sequence is returned as
// rest instead of being reported, so an arrow key split across two reads
// still parses. Without hold, a bare trailing ESC is reported as Escape and
// a truncated sequence is dropped.
func parseBytes(buf []byte, hold bool) (events []Event, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != byteEsc {
			events = append(events, byteEvent(b))
			continue
		}

		tail := buf[i+1:]
		if incompleteSequence(tail) {
			if hold {
				return events, append([]byte(nil), buf[i:]...)
			}
			events = append(events, Press(KeyEscape))
			return events, nil
		}

		switch tail[0] {
		case '[', 'O':
		case byteEsc:
			events = append(events, Press(KeyEscape))
			continue
		default:
			// Alt+key arrives as ESC then the key. Only the key is reported.
			continue
		}

		key, n := parseSequence(tail[1:])
		if n < 0 {
			if hold {
				return events, append([]byte(nil), buf[i:]...)
			}
			return events, nil
		}
		i += 1 + n
		if key != KeyNone {
			events = append(events, Press(key))
		}
	}
	return events, nil
}

// incompleteSequence reports whether the bytes after an ESC could still be
// the start of a CSI/SS3 sequence.
func incompleteSequence(tail []byte) bool {
	if len(tail) == 0 {
		return true
	}
	return len(tail) == 1 && (tail[0] == '[' || tail[0] == 'O')
}

// parseSequence reads a CSI/SS3 body up to its final byte and returns the
// key it encodes and the number of bytes consumed.
// Parameters such as "1;5" (modifiers) are skipped.
// It returns -1 when the body ends before a final byte.
func parseSequence(body []byte) (Key, int) {
	for i, b := range body {
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case 'A':
			return KeyUp, i + 1
		case 'B':
			return KeyDown, i + 1
		case 'C':
			return KeyRight, i + 1
		case 'D':
			return KeyLeft, i + 1
		default:
			return KeyNone, i + 1
		}
	}
	return KeyNone, -1
}

// byteEvent maps a single byte to an event.
// Letter clusters WASD and IJKL double as arrow keys.
func byteEvent(b byte) Event {
	switch b {
	case byteCtrlC, byteCtrlD, 'q', 'Q':
		return Quit()
	case 'a', 'A', 'j', 'J':
		return Press(KeyLeft)
	case 'd', 'D', 'l', 'L':
		return Press(KeyRight)
	case 'w', 'W', 'i', 'I':
		return Press(KeyUp)
	case 's', 'S', 'k', 'K':
		return Press(KeyDown)
	case ' ':
		return Press(KeySpace)
	case '\r', '\n':
		return Press(KeyEnter)
	case '\b', byteDel:
		return Press(KeyBackspace)
	}
	return PressRune(rune(b))
}
