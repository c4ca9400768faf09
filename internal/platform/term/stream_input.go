package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// escDelay is how long a read that ends inside an escape sequence waits
// for the rest of it. SSH channels often deliver ESC and "[D" separately.
const escDelay = 50 * time.Millisecond

// StreamInput is an input source reading keys from a byte stream such as
// raw-mode stdin or an SSH channel. A headless Bubble Tea program decodes
// the bytes, so key names match the title screen and the tcell source.
type StreamInput struct {
	keys   *KeyMap
	events chan keyEvent
	done   chan struct{}
	once   sync.Once
	prog   *tea.Program
	err    error
}

type keyEvent struct {
	key string
	err error
}

// streamErrMsg carries the read error through the program so that it
// arrives after every key decoded before it.
type streamErrMsg struct{ err error }

// NewStreamInput starts decoding r. Reading stops at the first error,
// which Poll reports after every key read before it. Close stops decoding.
func NewStreamInput(r io.Reader, keys *KeyMap) *StreamInput {
	in := &StreamInput{
		keys:   keys,
		events: make(chan keyEvent, 64),
		done:   make(chan struct{}),
	}

	kr := newKeyReader(r, in.done)
	in.prog = tea.NewProgram(forwarder{in: in},
		tea.WithInput(kr),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	kr.send = in.prog.Send

	go func() {
		if _, err := in.prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			in.forward(keyEvent{err: fmt.Errorf("term: input: %w", err)})
		}
	}()
	return in
}

// forward hands an event to Poll, waiting while the buffer is full.
func (in *StreamInput) forward(ev keyEvent) {
	select {
	case in.events <- ev:
	case <-in.done:
	}
}

// Poll drains pending keys without blocking. Once an error has been
// returned, every later call returns it again.
func (in *StreamInput) Poll() ([]core.Intent, error) {
	if in.err != nil {
		return nil, in.err
	}

	var intents []core.Intent
	for {
		select {
		case ev := <-in.events:
			if ev.err != nil {
				in.err = ev.err
				return intents, ev.err
			}
			if i := in.keys.Lookup(ev.key); i != core.IntentNone {
				intents = append(intents, i)
			}
		default:
			return intents, nil
		}
	}
}

// Close stops decoding. It is safe to call more than once.
func (in *StreamInput) Close() {
	in.once.Do(func() {
		close(in.done)
		in.prog.Kill()
	})
}

// forwarder is the Bubble Tea model behind StreamInput. It never renders.
type forwarder struct {
	in *StreamInput
}

func (f forwarder) Init() tea.Cmd { return nil }

func (f forwarder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Typed-ahead letters arrive as one message; each is its own key.
		if msg.Type == tea.KeyRunes && !msg.Paste && len(msg.Runes) > 1 {
			for _, r := range msg.Runes {
				single := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
				f.in.forward(keyEvent{key: single.String()})
			}
			return f, nil
		}
		f.in.forward(keyEvent{key: msg.String()})
	case streamErrMsg:
		f.in.forward(keyEvent{err: msg.err})
		return f, tea.Quit
	}
	return f, nil
}

func (f forwarder) View() string { return "" }

type chunk struct {
	data []byte
	err  error
}

// keyReader feeds the Bubble Tea program. A read that ends inside an
// escape sequence is held for up to escDelay so the sequence reaches the
// parser whole instead of as a lone Escape key.
type keyReader struct {
	chunks   chan chunk
	done     <-chan struct{}
	send     func(tea.Msg)
	pending  []byte
	err      error
	reported bool
}

func newKeyReader(r io.Reader, done <-chan struct{}) *keyReader {
	k := &keyReader{
		chunks: make(chan chunk),
		done:   done,
	}
	go k.pump(r)
	return k
}

func (k *keyReader) pump(r io.Reader) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		c := chunk{data: append([]byte(nil), buf[:n]...), err: err}
		select {
		case k.chunks <- c:
		case <-k.done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (k *keyReader) Read(p []byte) (int, error) {
	for len(k.pending) == 0 {
		if k.err != nil {
			k.report()
			return 0, io.EOF
		}
		select {
		case c := <-k.chunks:
			k.accept(c)
		case <-k.done:
			return 0, io.EOF
		}
		for k.err == nil && incompleteEscape(k.pending) && k.extend() {
		}
	}

	n := copy(p, k.pending)
	k.pending = k.pending[n:]
	return n, nil
}

func (k *keyReader) accept(c chunk) {
	k.pending = append(k.pending, c.data...)
	if c.err != nil {
		k.err = c.err
	}
}

// extend waits up to escDelay for more bytes and reports whether any came.
func (k *keyReader) extend() bool {
	timer := time.NewTimer(escDelay)
	defer timer.Stop()

	select {
	case c := <-k.chunks:
		k.accept(c)
		return true
	case <-timer.C:
		return false
	case <-k.done:
		return false
	}
}

// report passes the read error to the program once.
func (k *keyReader) report() {
	if k.reported || k.send == nil {
		return
	}
	k.reported = true
	k.send(streamErrMsg{err: fmt.Errorf("term: input: %w", k.err)})
}

// incompleteEscape reports whether b ends inside an escape sequence: a
// lone ESC, an SS3 prefix, or a CSI still waiting for its final byte.
func incompleteEscape(b []byte) bool {
	i := bytes.LastIndexByte(b, 0x1b)
	if i < 0 {
		return false
	}
	tail := b[i+1:]
	switch {
	case len(tail) == 0:
		return true
	case tail[0] == 'O':
		return len(tail) == 1
	case tail[0] == '[':
		for _, c := range tail[1:] {
			if c >= 0x40 && c <= 0x7e {
				return false
			}
		}
		return true
	}
	return false
}
