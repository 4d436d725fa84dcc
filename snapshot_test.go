package vtengine

import "testing"

func TestSnapshot_Size(t *testing.T) {
	e := New(3, 10)
	e.Process([]byte("Hi"))

	snap := e.Snapshot()

	if snap.Size.Rows != 3 || snap.Size.Cols != 10 {
		t.Errorf("Size = %+v, want {3 10}", snap.Size)
	}
	if len(snap.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(snap.Lines))
	}
	if snap.Lines[0].Text != "Hi" {
		t.Errorf("Lines[0].Text = %q, want %q", snap.Lines[0].Text, "Hi")
	}
}

func TestSnapshot_Cursor(t *testing.T) {
	e := New(5, 10)
	e.Process([]byte("ABC"))

	snap := e.Snapshot()

	if snap.Cursor.Row != 0 || snap.Cursor.Col != 3 {
		t.Errorf("Cursor = %+v, want row 0 col 3", snap.Cursor)
	}
	if !snap.Cursor.Visible {
		t.Error("Cursor.Visible = false, want true")
	}
}

func TestSnapshot_Attributes(t *testing.T) {
	e := New(3, 20)
	e.Process([]byte("\x1b[1mBold\x1b[0m"))

	snap := e.Snapshot()

	for i := 0; i < 4; i++ {
		if !snap.Lines[0].Cells[i].Attrs.Bold {
			t.Errorf("Cell[%d] should be bold", i)
		}
	}
	if snap.Lines[0].Cells[4].Attrs.Bold {
		t.Error("Cell[4] should not be bold")
	}
}

func TestSnapshot_WideChar(t *testing.T) {
	e := New(3, 10)
	e.Process([]byte("中"))

	snap := e.Snapshot()

	if !snap.Lines[0].Cells[0].Wide {
		t.Error("Cell[0] should be wide")
	}
	if !snap.Lines[0].Cells[1].Pad {
		t.Error("Cell[1] should be wide padding")
	}
}

func TestColorToHex(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"black", TrueColor(0, 0, 0), "#000000"},
		{"white", TrueColor(255, 255, 255), "#ffffff"},
		{"red", TrueColor(255, 0, 0), "#ff0000"},
		{"indexed-red", Indexed(1), "#cd3131"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorToHex(tt.color, true); got != tt.expected {
				t.Errorf("colorToHex(%v) = %q, want %q", tt.color, got, tt.expected)
			}
		})
	}
}

func TestSnapshot_EmptyTerminal(t *testing.T) {
	e := New(3, 10)

	snap := e.Snapshot()

	if len(snap.Lines) != 3 {
		t.Errorf("len(Lines) = %d, want 3", len(snap.Lines))
	}
	for i, line := range snap.Lines {
		if line.Text != "" {
			t.Errorf("Lines[%d].Text = %q, want empty", i, line.Text)
		}
	}
}
