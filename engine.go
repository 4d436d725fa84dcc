package vtengine

// Engine is a VT/xterm-compatible terminal emulator: a byte-oriented
// state machine that consumes a UTF-8 stream, maintains an in-memory
// screen model, and emits structured effects. It is single-threaded and
// synchronous; Process must be called from one owning goroutine and
// never blocks or spawns work. An Engine instance owns its grids,
// scrollback, and parser accumulators exclusively; nothing it returns
// is a reference into live state.
type Engine struct {
	rows, cols int
	grid       *Grid
	scrollback ScrollbackProvider

	cursor Cursor
	style  Style
	modes  Modes

	scrollTop, scrollBottom int

	altActive   bool
	altSnapshot *screenSnapshot

	lastPrintedChar rune
	inputBuffer     string
	currentDirectory string

	effects Effects

	state           parserState
	csiParams       string
	csiIntermediate string
	oscString       string
}

// screenSnapshot is the slot the alternate screen saves the primary
// screen into on entry and restores from on exit.
type screenSnapshot struct {
	grid       *Grid
	scrollback ScrollbackProvider
	cursor     Cursor
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithEffects registers the callback set the engine invokes as it
// processes input.
func WithEffects(effects Effects) Option {
	return func(e *Engine) { e.effects = effects }
}

// WithMaxScrollback overrides the default 5000-line scrollback bound.
func WithMaxScrollback(n int) Option {
	return func(e *Engine) { e.scrollback = newMemoryScrollback(n) }
}

// New returns an Engine with a rows×cols primary grid, default style and
// modes, and scrollback bounded at MaxScrollback unless overridden.
func New(rows, cols int, opts ...Option) *Engine {
	e := &Engine{
		rows:          rows,
		cols:          cols,
		grid:          NewGrid(rows, cols),
		scrollback:    newMemoryScrollback(MaxScrollback),
		style:         DefaultStyle,
		modes:         DefaultModes(),
		scrollTop:     0,
		scrollBottom:  rows - 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.cols }

// Cell returns a copy of the cell at (row, col). The zero Cell is
// returned for out-of-bounds coordinates.
func (e *Engine) Cell(row, col int) Cell {
	c := e.grid.Cell(row, col)
	if c == nil {
		return Cell{}
	}
	return *c
}

// CursorPos returns the current cursor position, zero-based.
func (e *Engine) CursorPos() (row, col int) {
	return e.cursor.Row, e.cursor.Col
}

// CursorVisible reports whether DECTCEM is on.
func (e *Engine) CursorVisible() bool {
	return e.modes.ShowCursor
}

// Modes returns a copy of the current mode set.
func (e *Engine) Modes() Modes {
	return e.modes
}

// CurrentDirectory returns the path most recently reported by OSC 7, or
// the empty string if none has arrived.
func (e *Engine) CurrentDirectory() string {
	return e.currentDirectory
}

// InputBuffer returns the host-tracked input line, populated by
// AppendInput from external key handlers. It has no effect on screen
// state.
func (e *Engine) InputBuffer() string {
	return e.inputBuffer
}

// AppendInput appends s to the tracked input line. Host key handlers
// call this as the user types.
func (e *Engine) AppendInput(s string) {
	e.inputBuffer += s
}

// ClearInput empties the tracked input line.
func (e *Engine) ClearInput() {
	e.inputBuffer = ""
}

// CommandEntered fires OnCommandEntered with the current input buffer
// and clears it. Host key handlers call this when Enter is pressed.
func (e *Engine) CommandEntered() {
	line := e.inputBuffer
	e.inputBuffer = ""
	e.effects.commandEntered(line)
}

// ScrollbackLen returns the number of scrollback lines currently stored.
func (e *Engine) ScrollbackLen() int {
	return e.scrollback.Len()
}

// ScrollbackLine returns a copy of scrollback line index (0 = oldest),
// or nil if out of range.
func (e *Engine) ScrollbackLine(index int) []Cell {
	line := e.scrollback.Line(index)
	if line == nil {
		return nil
	}
	cp := make([]Cell, len(line))
	copy(cp, line)
	return cp
}

// ExtractText renders scrollback followed by the current grid as plain
// text, one row per line, trailing blank rows dropped.
func (e *Engine) ExtractText() string {
	lines := make([]string, 0, e.scrollback.Len()+e.rows)
	for i := 0; i < e.scrollback.Len(); i++ {
		lines = append(lines, lineText(e.scrollback.Line(i)))
	}
	for r := 0; r < e.rows; r++ {
		lines = append(lines, e.grid.LineContent(r))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// Resize changes the grid dimensions, preserving the overlapping
// top-left rectangle. Scrollback is not reflowed. If the alternate
// screen is active, its saved snapshot is resized too so a later exit
// restores a grid matching the current dimensions.
func (e *Engine) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	e.grid = e.grid.Resize(rows, cols)
	if e.altSnapshot != nil {
		e.altSnapshot.grid = e.altSnapshot.grid.Resize(rows, cols)
		e.altSnapshot.cursor.Clamp(rows, cols)
	}
	e.rows, e.cols = rows, cols
	e.scrollTop, e.scrollBottom = 0, rows-1
	e.cursor.Clamp(rows, cols)
}

// Reset performs a full terminal reset (RIS): clears the grid, resets
// the cursor, scroll region, style, and modes. Scrollback and the
// alternate-screen snapshot are left untouched.
func (e *Engine) Reset() {
	e.grid.ClearAll()
	e.cursor = Cursor{}
	e.scrollTop, e.scrollBottom = 0, e.rows-1
	e.style = DefaultStyle
	e.modes = DefaultModes()
}
