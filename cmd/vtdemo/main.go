// Command vtdemo hosts a real shell under a PTY, feeds its output through
// a vtengine.Engine, and renders the resulting grid with bubbletea and
// lipgloss. It exists to prove the engine's contract end to end: bytes in,
// a screen model out, nothing more.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/creack/pty"

	"github.com/secondlook-hub/vtengine"
)

// outputMsg carries one read's worth of PTY bytes into the Bubbletea loop.
type outputMsg []byte

// exitMsg is sent once the shell process under the PTY terminates.
type exitMsg struct{ err error }

// bellMsg is sent when the engine fires its bell effect.
type bellMsg struct{}

type model struct {
	engine *vtengine.Engine
	ptmx   *os.File
	cmd    *exec.Cmd
	cfg    Config

	out chan []byte
	bel chan struct{}

	title    string
	quitting bool
	err      error
}

func newModel(cfg Config) (*model, error) {
	shell := cfg.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	out := make(chan []byte, 16)
	bel := make(chan struct{}, 1)

	m := &model{cfg: cfg, out: out, bel: bel}

	m.engine = vtengine.New(cfg.Rows, cfg.Cols,
		vtengine.WithMaxScrollback(cfg.ScrollbackLines),
		vtengine.WithEffects(vtengine.Effects{
			OnBell: func() {
				select {
				case bel <- struct{}{}:
				default:
				}
			},
			OnTitleChange: func(title string) {
				m.title = title
			},
		}),
	)

	c := exec.Command(shell)
	c.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(c, &pty.Winsize{Rows: uint16(cfg.Rows), Cols: uint16(cfg.Cols)})
	if err != nil {
		return nil, fmt.Errorf("vtdemo: start pty: %w", err)
	}
	m.ptmx = ptmx
	m.cmd = c

	go m.readLoop()

	return m, nil
}

// readLoop pumps PTY output into m.out until the PTY closes, then reports
// the child's exit.
func (m *model) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := m.ptmx.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			m.out <- chunk
		}
		if err != nil {
			if err != io.EOF {
				m.err = err
			}
			close(m.out)
			return
		}
	}
}

func waitForOutput(ch chan []byte) tea.Cmd {
	return func() tea.Msg {
		data, ok := <-ch
		if !ok {
			return exitMsg{}
		}
		return outputMsg(data)
	}
}

func waitForBell(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return bellMsg{}
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(waitForOutput(m.out), waitForBell(m.bel))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outputMsg:
		m.engine.Process(msg)
		return m, waitForOutput(m.out)

	case bellMsg:
		return m, waitForBell(m.bel)

	case exitMsg:
		m.quitting = true
		if msg.err != nil {
			m.err = msg.err
		}
		return m, tea.Quit

	case tea.WindowSizeMsg:
		rows, cols := msg.Height, msg.Width
		if rows < 1 {
			rows = 1
		}
		if cols < 1 {
			cols = 1
		}
		m.engine.Resize(rows, cols)
		_ = pty.Setsize(m.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
		return m, nil

	case tea.KeyMsg:
		if b := keyToBytes(msg); b != nil {
			_, _ = m.ptmx.Write(b)
			if msg.Type == tea.KeyEnter {
				m.engine.CommandEntered()
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	if m.quitting {
		if m.err != nil {
			return fmt.Sprintf("vtdemo: %v\n", m.err)
		}
		return "vtdemo: shell exited\n"
	}

	snap := m.engine.Snapshot()
	theme := themeFor(m.cfg.Theme)

	var b strings.Builder
	for _, line := range snap.Lines {
		for _, cell := range line.Cells {
			if cell.Pad {
				continue
			}
			ch := cell.Char
			if ch == "" {
				ch = " "
			}
			style := theme.cell(cell)
			b.WriteString(style.Render(ch))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// theme maps Snapshot cell styling to lipgloss rendering. Its default
// colors are not read by cell, which paints each cell with the Fg/Bg the
// snapshot already resolved, so both palettes render alike.
type theme struct {
	defaultFg lipgloss.Color
	defaultBg lipgloss.Color
}

func themeFor(name string) theme {
	if name == "light" {
		return theme{defaultFg: lipgloss.Color("#1e1e1e"), defaultBg: lipgloss.Color("#fafafa")}
	}
	return theme{defaultFg: lipgloss.Color("#d4d4d4"), defaultBg: lipgloss.Color("#1e1e1e")}
}

func (t theme) cell(c vtengine.SnapshotCell) lipgloss.Style {
	s := lipgloss.NewStyle()

	fg := c.Fg
	bg := c.Bg
	if c.Attrs.Invisible {
		fg = bg
	}
	s = s.Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))

	if c.Attrs.Bold {
		s = s.Bold(true)
	}
	if c.Attrs.Dim {
		s = s.Faint(true)
	}
	if c.Attrs.Italic {
		s = s.Italic(true)
	}
	if c.Attrs.Underline {
		s = s.Underline(true)
	}
	if c.Attrs.Strikethrough {
		s = s.Strikethrough(true)
	}
	return s
}

// keyToBytes converts a Bubbletea key event into the byte sequence a real
// terminal would have sent for it.
func keyToBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	case tea.KeySpace:
		return []byte(" ")
	case tea.KeyEnter:
		return []byte("\r")
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte("\t")
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyUp:
		return []byte("\x1b[A")
	case tea.KeyDown:
		return []byte("\x1b[B")
	case tea.KeyRight:
		return []byte("\x1b[C")
	case tea.KeyLeft:
		return []byte("\x1b[D")
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyCtrlL:
		return []byte{0x0c}
	case tea.KeyCtrlU:
		return []byte{0x15}
	case tea.KeyCtrlA:
		return []byte{0x01}
	case tea.KeyCtrlE:
		return []byte{0x05}
	case tea.KeyCtrlW:
		return []byte{0x17}
	default:
		return nil
	}
}

func main() {
	cfg := LoadConfig()

	m, err := newModel(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer m.ptmx.Close()
	defer func() { _ = m.cmd.Process.Kill() }()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}
}
