package term

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

// Screen is a render.Device backed by a tcell screen. The playfield is
// drawn one cell in from the top-left corner, inside its border.
type Screen struct {
	screen tcell.Screen
	styles map[core.Role]tcell.Style
	input  *TcellInput
}

// OpenScreen initialises the controlling terminal.
// Close must be called to restore it.
func OpenScreen(theme config.ThemeConfig) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot init screen: %w", err)
	}

	w, h := s.Size()
	if err := CheckSize(w, h); err != nil {
		s.Fini()
		return nil, err
	}
	return NewScreen(s, theme), nil
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(s tcell.Screen, theme config.ThemeConfig) *Screen {
	s.HideCursor()
	styles := make(map[core.Role]tcell.Style)
	for _, r := range []core.Role{core.RoleShip, core.RoleShot, core.RoleBlast, core.RoleInvader, core.RoleBorder} {
		styles[r] = tcell.StyleDefault.Foreground(tcellColor(theme.Color(r)))
	}
	return &Screen{screen: s, styles: styles}
}

// tcellColor accepts a palette index ("208") or a colour name ("red").
func tcellColor(code string) tcell.Color {
	if code == "" {
		return tcell.ColorDefault
	}
	if n, err := strconv.Atoi(code); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(code)
}

// Clear blanks the screen.
func (s *Screen) Clear() error {
	s.screen.Clear()
	return nil
}

// DrawBorder outlines a w × h playfield.
func (s *Screen) DrawBorder(w, h int) error {
	st := s.styles[core.RoleBorder]
	right, bottom := w+1, h+1

	s.screen.SetContent(0, 0, '┌', nil, st)
	s.screen.SetContent(right, 0, '┐', nil, st)
	s.screen.SetContent(0, bottom, '└', nil, st)
	s.screen.SetContent(right, bottom, '┘', nil, st)
	for x := 1; x < right; x++ {
		s.screen.SetContent(x, 0, '─', nil, st)
		s.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := 1; y < bottom; y++ {
		s.screen.SetContent(0, y, '│', nil, st)
		s.screen.SetContent(right, y, '│', nil, st)
	}
	return nil
}

// SetCell writes a glyph inside the border.
func (s *Screen) SetCell(x, y int, g core.Glyph) error {
	s.screen.SetContent(x+1, y+1, rune(g), nil, s.styles[core.RoleOf(g)])
	return nil
}

// Flush shows pending changes.
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

// Input returns an input source reading this screen's key events.
func (s *Screen) Input(keys *KeyMap) *TcellInput {
	if s.input == nil {
		s.input = NewTcellInput(s.screen, keys)
	}
	return s.input
}

// Close stops the input source and restores the terminal.
func (s *Screen) Close() {
	if s.input != nil {
		s.input.Close()
	}
	s.screen.Fini()
}

// TcellInput is an input source fed by tcell key events.
type TcellInput struct {
	keys   *KeyMap
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// NewTcellInput starts polling events from s. Polling stops when the
// screen is finalised or Close is called. A full buffer holds polling
// back until the game catches up.
func NewTcellInput(s tcell.Screen, keys *KeyMap) *TcellInput {
	in := &TcellInput{
		keys:   keys,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(in.events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			case <-in.done:
				return
			}
		}
	}()
	return in
}

// Close stops polling. It is safe to call more than once.
func (in *TcellInput) Close() {
	in.once.Do(func() { close(in.done) })
}

// Poll drains pending events without blocking.
func (in *TcellInput) Poll() ([]core.Intent, error) {
	var intents []core.Intent
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return intents, nil
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if i := in.keys.Lookup(tcellKeyName(e)); i != core.IntentNone {
					intents = append(intents, i)
				}
			case *tcell.EventError:
				return intents, fmt.Errorf("term: input: %w", e)
			}
		default:
			return intents, nil
		}
	}
}

// tcellKeyName names a key event the way Bubble Tea does.
func tcellKeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}
