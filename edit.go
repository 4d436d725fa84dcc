package vtengine

// scrollUpOnce shifts the scrolling region up by one row. On the primary
// screen the evicted row is pushed to scrollback; on the alternate screen
// it is simply discarded.
func (e *Engine) scrollUpOnce() {
	evicted := e.grid.ShiftRowsUp(e.scrollTop, e.scrollBottom, 1)
	if !e.altActive && len(evicted) > 0 {
		e.scrollback.Push(evicted[0])
	}
}

// scrollDownOnce shifts the scrolling region down by one row, clearing
// the row that scrolls in at the top.
func (e *Engine) scrollDownOnce() {
	e.grid.ShiftRowsDown(e.scrollTop, e.scrollBottom, 1)
}

func (e *Engine) scrollUp(n int) {
	for i := 0; i < n; i++ {
		e.scrollUpOnce()
	}
}

func (e *Engine) scrollDown(n int) {
	for i := 0; i < n; i++ {
		e.scrollDownOnce()
	}
}

// linefeed advances the cursor to the next line, scrolling the region
// when the cursor sits on scrollBottom.
func (e *Engine) linefeed() {
	switch {
	case e.cursor.Row == e.scrollBottom:
		e.scrollUpOnce()
	case e.cursor.Row < e.rows-1:
		e.cursor.Row++
	}
}

// reverseLinefeed is the ESC M inverse of linefeed.
func (e *Engine) reverseLinefeed() {
	switch {
	case e.cursor.Row == e.scrollTop:
		e.scrollDownOnce()
	case e.cursor.Row > 0:
		e.cursor.Row--
	}
}

// insertLines implements CSI L, restricted to the scrolling region.
func (e *Engine) insertLines(n int) {
	if e.cursor.Row < e.scrollTop || e.cursor.Row > e.scrollBottom {
		return
	}
	effective := min(n, e.scrollBottom-e.cursor.Row+1)
	e.grid.ShiftRowsDown(e.cursor.Row, e.scrollBottom, effective)
}

// deleteLines implements CSI M, restricted to the scrolling region.
func (e *Engine) deleteLines(n int) {
	if e.cursor.Row < e.scrollTop || e.cursor.Row > e.scrollBottom {
		return
	}
	effective := min(n, e.scrollBottom-e.cursor.Row+1)
	e.grid.ShiftRowsUp(e.cursor.Row, e.scrollBottom, effective)
}

// insertChars implements CSI @: insert n blanks at the cursor column,
// shifting the remainder of the row right and truncating at cols.
func (e *Engine) insertChars(n int) {
	row := e.grid.Row(e.cursor.Row)
	if row == nil {
		return
	}
	col := e.cursor.Col
	cols := e.cols
	if n > cols-col {
		n = cols - col
	}
	for c := cols - 1; c >= col+n; c-- {
		row[c] = row[c-n]
	}
	for c := col; c < col+n && c < cols; c++ {
		row[c] = blankCell(DefaultStyle)
	}
}

// deleteChars implements CSI P: remove n cells at the cursor column,
// shifting the remainder left and padding the row end with blanks.
func (e *Engine) deleteChars(n int) {
	row := e.grid.Row(e.cursor.Row)
	if row == nil {
		return
	}
	col := e.cursor.Col
	cols := e.cols
	if n > cols-col {
		n = cols - col
	}
	for c := col; c < cols-n; c++ {
		row[c] = row[c+n]
	}
	for c := cols - n; c < cols; c++ {
		row[c] = blankCell(DefaultStyle)
	}
}

// eraseChars implements CSI X: overwrite n cells at the cursor column
// with blanks without shifting the row.
func (e *Engine) eraseChars(n int) {
	e.grid.ClearRowRange(e.cursor.Row, e.cursor.Col, e.cursor.Col+n)
}

// eraseLine implements CSI K.
func (e *Engine) eraseLine(mode int) {
	row, col, cols := e.cursor.Row, e.cursor.Col, e.cols
	switch mode {
	case 0:
		e.grid.ClearRowRange(row, col, cols)
	case 1:
		e.grid.ClearRowRange(row, 0, col+1)
	case 2:
		e.grid.ClearRow(row)
	}
}

// eraseDisplay implements CSI J.
func (e *Engine) eraseDisplay(mode int) {
	row, col := e.cursor.Row, e.cursor.Col
	switch mode {
	case 0:
		e.grid.ClearRowRange(row, col, e.cols)
		for r := row + 1; r < e.rows; r++ {
			e.grid.ClearRow(r)
		}
	case 1:
		for r := 0; r < row; r++ {
			e.grid.ClearRow(r)
		}
		e.grid.ClearRowRange(row, 0, col+1)
	case 2:
		e.grid.ClearAll()
	case 3:
		e.grid.ClearAll()
		e.scrollback.Clear()
	}
}
