package vtengine

import "fmt"

// Snapshot is a read-only, JSON-marshalable capture of the engine's
// screen state, for a host that wants to persist or ship terminal state
// over a wire without reaching into engine internals. The engine never
// reads a Snapshot back; there is no deserialization path.
type Snapshot struct {
	Size             SnapshotSize   `json:"size"`
	Cursor           SnapshotCursor `json:"cursor"`
	Modes            SnapshotModes  `json:"modes"`
	CurrentDirectory string         `json:"currentDirectory,omitempty"`
	Lines            []SnapshotLine `json:"lines"`
}

// SnapshotSize holds terminal dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor position and visibility.
type SnapshotCursor struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	Visible bool `json:"visible"`
}

// SnapshotModes mirrors Modes for serialization.
type SnapshotModes struct {
	ApplicationCursorKeys bool `json:"applicationCursorKeys"`
	AutoWrap              bool `json:"autoWrap"`
	BracketedPaste        bool `json:"bracketedPaste"`
	InsertMode            bool `json:"insertMode"`
}

// SnapshotLine is one row of the grid.
type SnapshotLine struct {
	Text  string         `json:"text"`
	Cells []SnapshotCell `json:"cells"`
}

// SnapshotCell is one cell with fully resolved style.
type SnapshotCell struct {
	Char  string        `json:"char"`
	Fg    string         `json:"fg"`
	Bg    string         `json:"bg"`
	Attrs SnapshotAttrs `json:"attrs,omitempty"`
	Wide  bool          `json:"wide,omitempty"`
	Pad   bool          `json:"widePadding,omitempty"`
}

// SnapshotAttrs is the style flags as named booleans.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Invisible     bool `json:"invisible,omitempty"`
}

// Snapshot renders the engine's current state into a Snapshot value.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Size:             SnapshotSize{Rows: e.rows, Cols: e.cols},
		Cursor:           SnapshotCursor{Row: e.cursor.Row, Col: e.cursor.Col, Visible: e.modes.ShowCursor},
		Modes:            snapshotModes(e.modes),
		CurrentDirectory: e.currentDirectory,
		Lines:            make([]SnapshotLine, e.rows),
	}
	for row := 0; row < e.rows; row++ {
		snap.Lines[row] = e.snapshotLine(row)
	}
	return snap
}

func snapshotModes(m Modes) SnapshotModes {
	return SnapshotModes{
		ApplicationCursorKeys: m.ApplicationCursorKeys,
		AutoWrap:              m.AutoWrap,
		BracketedPaste:        m.BracketedPaste,
		InsertMode:            m.InsertMode,
	}
}

func (e *Engine) snapshotLine(row int) SnapshotLine {
	cells := make([]SnapshotCell, e.cols)
	for col := 0; col < e.cols; col++ {
		cells[col] = snapshotCell(e.grid.Cell(row, col))
	}
	return SnapshotLine{
		Text:  e.grid.LineContent(row),
		Cells: cells,
	}
}

func snapshotCell(c *Cell) SnapshotCell {
	if c == nil {
		return SnapshotCell{Char: " ", Fg: colorToHex(DefaultColor, true), Bg: colorToHex(DefaultColor, false)}
	}
	return SnapshotCell{
		Char: string(c.Char),
		Fg:   colorToHex(c.Style.Fg, true),
		Bg:   colorToHex(c.Style.Bg, false),
		Attrs: SnapshotAttrs{
			Bold:          c.Style.Has(StyleBold),
			Dim:           c.Style.Has(StyleDim),
			Italic:        c.Style.Has(StyleItalic),
			Underline:     c.Style.Has(StyleUnderline),
			Strikethrough: c.Style.Has(StyleStrikethrough),
			Invisible:     c.Style.Has(StyleInvisible),
		},
		Wide: c.Wide,
		Pad:  c.WidePadding,
	}
}

func colorToHex(c Color, fg bool) string {
	rgba := c.Resolve(fg)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
