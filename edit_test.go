package vtengine

import "testing"

func TestLinefeedAdvancesRow(t *testing.T) {
	e := New(5, 10)
	e.cursor.Row = 0
	e.linefeed()
	if e.cursor.Row != 1 {
		t.Errorf("cursor.Row = %d, want 1", e.cursor.Row)
	}
}

func TestLinefeedScrollsAtBottom(t *testing.T) {
	e := New(3, 5)
	e.grid.Cell(0, 0).Char = 'a'
	e.cursor.Row = e.scrollBottom
	e.linefeed()
	if e.cursor.Row != e.scrollBottom {
		t.Errorf("cursor.Row = %d, want unchanged at scrollBottom %d", e.cursor.Row, e.scrollBottom)
	}
	if e.scrollback.Len() != 1 {
		t.Fatalf("scrollback.Len() = %d, want 1", e.scrollback.Len())
	}
	if e.scrollback.Line(0)[0].Char != 'a' {
		t.Error("evicted row content should reach scrollback")
	}
}

func TestReverseLinefeedScrollsAtTop(t *testing.T) {
	e := New(3, 5)
	e.grid.Cell(1, 0).Char = 'x'
	e.cursor.Row = e.scrollTop
	e.reverseLinefeed()
	if e.grid.Cell(0, 0).Char != 'x' {
		t.Error("reverse linefeed should shift rows down")
	}
}

func TestInsertLines(t *testing.T) {
	e := New(4, 3)
	e.grid.Cell(1, 0).Char = 'a'
	e.cursor.Row = 1
	e.insertLines(1)
	if e.grid.Cell(1, 0).Char != ' ' {
		t.Error("insertLines should blank the cursor row")
	}
	if e.grid.Cell(2, 0).Char != 'a' {
		t.Error("insertLines should push old content down")
	}
}

func TestInsertLinesOutsideRegionIsNoop(t *testing.T) {
	e := New(4, 3)
	e.scrollTop, e.scrollBottom = 1, 3
	e.cursor.Row = 0
	e.grid.Cell(0, 0).Char = 'a'
	e.insertLines(1)
	if e.grid.Cell(0, 0).Char != 'a' {
		t.Error("insertLines outside the scroll region should be a no-op")
	}
}

func TestDeleteLines(t *testing.T) {
	e := New(4, 3)
	e.grid.Cell(2, 0).Char = 'b'
	e.cursor.Row = 1
	e.deleteLines(1)
	if e.grid.Cell(1, 0).Char != 'b' {
		t.Error("deleteLines should pull following rows up")
	}
}

func TestInsertChars(t *testing.T) {
	e := New(1, 5)
	for i, r := range "abcde" {
		e.grid.Cell(0, i).Char = r
	}
	e.cursor.Col = 1
	e.insertChars(2)
	got := e.grid.LineContent(0)
	if got != "a  bc" {
		t.Errorf("LineContent() = %q, want %q", got, "a  bc")
	}
}

func TestDeleteChars(t *testing.T) {
	e := New(1, 5)
	for i, r := range "abcde" {
		e.grid.Cell(0, i).Char = r
	}
	e.cursor.Col = 1
	e.deleteChars(2)
	got := e.grid.LineContent(0)
	if got != "ade" {
		t.Errorf("LineContent() = %q, want %q", got, "ade")
	}
}

func TestEraseChars(t *testing.T) {
	e := New(1, 5)
	for i, r := range "abcde" {
		e.grid.Cell(0, i).Char = r
	}
	e.cursor.Col = 1
	e.eraseChars(2)
	got := e.grid.LineContent(0)
	if got != "a  de" {
		t.Errorf("LineContent() = %q, want %q", got, "a  de")
	}
}

func TestEraseLineModes(t *testing.T) {
	e := New(1, 5)
	for i, r := range "abcde" {
		e.grid.Cell(0, i).Char = r
	}
	e.cursor.Col = 2
	e.eraseLine(0) // to end
	if got := e.grid.LineContent(0); got != "ab" {
		t.Errorf("eraseLine(0) -> %q, want %q", got, "ab")
	}

	for i, r := range "abcde" {
		e.grid.Cell(0, i).Char = r
	}
	e.eraseLine(1) // to start
	if got := e.grid.LineContent(0); got != "   de" {
		t.Errorf("eraseLine(1) -> %q, want %q", got, "   de")
	}

	e.eraseLine(2) // whole line
	if got := e.grid.LineContent(0); got != "" {
		t.Errorf("eraseLine(2) -> %q, want empty", got)
	}
}

func TestEraseDisplayMode3ClearsScrollback(t *testing.T) {
	e := New(2, 3)
	e.scrollback.Push(row('x'))
	e.eraseDisplay(3)
	if e.scrollback.Len() != 0 {
		t.Error("eraseDisplay(3) should clear scrollback")
	}
}

func TestEraseDisplayMode2ClearsGrid(t *testing.T) {
	e := New(2, 3)
	e.grid.Cell(0, 0).Char = 'a'
	e.grid.Cell(1, 0).Char = 'b'
	e.eraseDisplay(2)
	if e.grid.LineContent(0) != "" || e.grid.LineContent(1) != "" {
		t.Error("eraseDisplay(2) should clear the whole grid")
	}
}
