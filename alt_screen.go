package vtengine

// toggleAltScreen implements the 47/1047/1049 DECSET/DECRST pair. The
// snapshot always includes the cursor, so 47/1047/1049 behave alike here:
// the cursor is one of the four things Exit restores.
func (e *Engine) toggleAltScreen(enter bool) {
	if enter {
		e.enterAltScreen()
	} else {
		e.exitAltScreen()
	}
}

// enterAltScreen snapshots the primary grid, scrollback, and cursor, then
// replaces them with a blank screen. A double-enter is a no-op.
func (e *Engine) enterAltScreen() {
	if e.altActive {
		return
	}
	e.altSnapshot = &screenSnapshot{
		grid:       e.grid,
		scrollback: e.scrollback,
		cursor:     e.cursor,
	}
	e.altActive = true
	e.grid = NewGrid(e.rows, e.cols)
	e.scrollback = newMemoryScrollback(e.altSnapshot.scrollback.MaxLines())
	e.scrollTop, e.scrollBottom = 0, e.rows-1
	e.cursor = Cursor{}
}

// exitAltScreen restores the primary grid, scrollback, and cursor. An
// exit without a prior snapshot is a no-op.
func (e *Engine) exitAltScreen() {
	if !e.altActive || e.altSnapshot == nil {
		return
	}
	snap := e.altSnapshot
	e.grid = snap.grid
	e.scrollback = snap.scrollback
	e.cursor = snap.cursor
	e.altActive = false
	e.altSnapshot = nil
	e.scrollTop, e.scrollBottom = 0, e.rows-1
}
