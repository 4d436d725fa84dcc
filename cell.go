package vtengine

// StyleFlags is a bitmask of SGR character attributes.
type StyleFlags uint8

const (
	StyleBold StyleFlags = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleStrikethrough
	StyleInvisible
)

// Style is the current style register: the template applied to newly
// printed cells. It carries the same fields as Cell's style.
type Style struct {
	Fg    Color
	Bg    Color
	Flags StyleFlags
}

// Has reports whether flag is set.
func (s Style) Has(flag StyleFlags) bool {
	return s.Flags&flag != 0
}

// DefaultStyle is the style register's reset value: default colors, no
// attributes.
var DefaultStyle = Style{Fg: DefaultColor, Bg: DefaultColor}

// Cell is the atomic grid unit.
type Cell struct {
	Char  rune
	Style Style

	// Wide marks the first half of a double-width glyph. WidePadding marks
	// the second half, a placeholder cell whose Char is a space. Exactly
	// one of these may be true for any given cell.
	Wide        bool
	WidePadding bool
}

// blankCell returns a cell holding a space in the given style, with no
// width markers.
func blankCell(style Style) Cell {
	return Cell{Char: ' ', Style: style}
}

// NewCell returns a blank cell in the default style.
func NewCell() Cell {
	return blankCell(DefaultStyle)
}

// Reset clears c to a blank cell in the default style.
func (c *Cell) Reset() {
	*c = NewCell()
}

// Copy returns an independent copy of c. Cell has no pointer fields, so
// this is equivalent to a plain value copy; it exists so callers don't
// need to know that.
func (c Cell) Copy() Cell {
	return c
}
