package vtengine

import "testing"

func TestNewEngineDefaults(t *testing.T) {
	e := New(24, 80)
	if e.Rows() != 24 || e.Cols() != 80 {
		t.Fatalf("dims = (%d,%d), want (24,80)", e.Rows(), e.Cols())
	}
	if !e.CursorVisible() {
		t.Error("cursor should be visible by default")
	}
	r, c := e.CursorPos()
	if r != 0 || c != 0 {
		t.Errorf("CursorPos() = (%d,%d), want (0,0)", r, c)
	}
}

func TestWithMaxScrollback(t *testing.T) {
	e := New(3, 3, WithMaxScrollback(1))
	e.scrollback.Push(row('a'))
	e.scrollback.Push(row('b'))
	if e.ScrollbackLen() != 1 {
		t.Errorf("ScrollbackLen() = %d, want 1", e.ScrollbackLen())
	}
}

func TestEngineInputBufferLifecycle(t *testing.T) {
	var entered string
	e := New(3, 3, WithEffects(Effects{OnCommandEntered: func(s string) { entered = s }}))
	e.AppendInput("ls ")
	e.AppendInput("-la")
	if e.InputBuffer() != "ls -la" {
		t.Fatalf("InputBuffer() = %q, want %q", e.InputBuffer(), "ls -la")
	}
	e.CommandEntered()
	if entered != "ls -la" {
		t.Errorf("OnCommandEntered got %q, want %q", entered, "ls -la")
	}
	if e.InputBuffer() != "" {
		t.Error("CommandEntered should clear the input buffer")
	}
}

func TestEngineResizePreservesOverlap(t *testing.T) {
	e := New(3, 3)
	e.Process([]byte("abc"))
	e.Resize(5, 5)
	if e.Rows() != 5 || e.Cols() != 5 {
		t.Fatalf("dims after resize = (%d,%d), want (5,5)", e.Rows(), e.Cols())
	}
	if e.grid.LineContent(0) != "abc" {
		t.Errorf("LineContent(0) = %q, want %q", e.grid.LineContent(0), "abc")
	}
}

func TestEngineResetPreservesScrollback(t *testing.T) {
	e := New(3, 3)
	e.scrollback.Push(row('x'))
	e.Process([]byte("\x1b[1mbold"))
	e.Reset()
	if e.ScrollbackLen() != 1 {
		t.Error("Reset should not touch scrollback")
	}
	if e.style != DefaultStyle {
		t.Error("Reset should restore the default style")
	}
	if e.grid.LineContent(0) != "" {
		t.Error("Reset should clear the grid")
	}
}

func TestEngineExtractText(t *testing.T) {
	e := New(2, 10)
	e.scrollback.Push([]Cell{{Char: 'o'}, {Char: 'l'}, {Char: 'd'}})
	e.Process([]byte("new"))
	if got := e.ExtractText(); got != "old\nnew" {
		t.Errorf("ExtractText() = %q, want %q", got, "old\nnew")
	}
}

func TestEngineCellOutOfBounds(t *testing.T) {
	e := New(2, 2)
	if c := e.Cell(10, 10); c != (Cell{}) {
		t.Errorf("out-of-bounds Cell() = %+v, want zero value", c)
	}
}
