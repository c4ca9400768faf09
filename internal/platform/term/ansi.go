package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

// Stream is a render.Device that writes ANSI escape sequences to any
// io.Writer. Output is buffered until Flush.
type Stream struct {
	buf    *bufio.Writer
	out    *termenv.Output
	styles map[core.Role]lipgloss.Style
}

// NewStream creates a stream device. The colour profile decides how glyph
// colours are encoded; termenv.Ascii disables them.
func NewStream(w io.Writer, theme config.ThemeConfig, profile termenv.Profile) *Stream {
	buf := bufio.NewWriter(w)
	renderer := lipgloss.NewRenderer(buf, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	styles := make(map[core.Role]lipgloss.Style)
	for _, r := range []core.Role{core.RoleNone, core.RoleShip, core.RoleShot, core.RoleBlast, core.RoleInvader, core.RoleBorder} {
		st := renderer.NewStyle()
		if c := theme.Color(r); c != "" {
			st = st.Foreground(lipgloss.Color(c))
		}
		styles[r] = st
	}

	return &Stream{
		buf:    buf,
		out:    termenv.NewOutput(buf, termenv.WithProfile(profile)),
		styles: styles,
	}
}

// Open switches to the alternate screen and hides the cursor.
func (s *Stream) Open() error {
	s.out.AltScreen()
	s.out.HideCursor()
	return s.Flush()
}

// Close restores the cursor and the main screen.
func (s *Stream) Close() error {
	s.out.ShowCursor()
	s.out.ExitAltScreen()
	return s.Flush()
}

// Clear blanks the screen.
func (s *Stream) Clear() error {
	s.out.ClearScreen()
	return nil
}

// DrawBorder outlines a w × h playfield in the top-left corner.
func (s *Stream) DrawBorder(w, h int) error {
	st := s.styles[core.RoleBorder]
	border := lipgloss.NormalBorder()

	s.out.MoveCursor(1, 1)
	s.write(st, border.TopLeft+strings.Repeat(border.Top, w)+border.TopRight)
	for y := 0; y < h; y++ {
		s.out.MoveCursor(y+2, 1)
		s.write(st, border.Left)
		s.out.MoveCursor(y+2, w+2)
		s.write(st, border.Right)
	}
	s.out.MoveCursor(h+2, 1)
	s.write(st, border.BottomLeft+strings.Repeat(border.Bottom, w)+border.BottomRight)
	return nil
}

// SetCell writes a glyph inside the border.
func (s *Stream) SetCell(x, y int, g core.Glyph) error {
	s.out.MoveCursor(y+2, x+2)
	s.write(s.styles[core.RoleOf(g)], string(g))
	return nil
}

// Flush sends buffered output. Write errors surface here.
func (s *Stream) Flush() error {
	if err := s.buf.Flush(); err != nil {
		return fmt.Errorf("term: write: %w", err)
	}
	return nil
}

func (s *Stream) write(st lipgloss.Style, text string) {
	//nolint:errcheck // bufio keeps the first error and reports it from Flush
	s.buf.WriteString(st.Render(text))
}
