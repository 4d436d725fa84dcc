package vtengine

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// parserState is one node of the ground/escape/CSI/OSC/charset/string
// state machine.
type parserState int

const (
	stateNormal parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateCharset
	stateStringSequence
)

// Process feeds a chunk of bytes into the engine. The caller guarantees
// UTF-8 boundary completeness; Process decodes to Unicode scalars,
// normalizes to NFC, and drives the state machine one scalar at a time.
// A screen-change effect fires exactly once per call, after the whole
// chunk is consumed — including when data is empty.
func (e *Engine) Process(data []byte) {
	normalized := norm.NFC.Bytes(data)
	for len(normalized) > 0 {
		r, size := utf8.DecodeRune(normalized)
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte: fall back to lossy ASCII rather than panic.
			r = '?'
			if size == 0 {
				size = 1
			}
		}
		e.feedScalar(r)
		normalized = normalized[size:]
	}
	e.effects.change()
}

func (e *Engine) feedScalar(r rune) {
	switch e.state {
	case stateNormal:
		e.feedNormal(r)
	case stateEscape:
		e.feedEscape(r)
	case stateCSI:
		e.feedCSI(r)
	case stateOSC:
		e.feedOSC(r)
	case stateCharset:
		e.state = stateNormal
	case stateStringSequence:
		e.feedStringSequence(r)
	}
}

func (e *Engine) feedNormal(r rune) {
	switch {
	case r == 0x07:
		e.effects.bell()
	case r == 0x08:
		e.cursor.Col = max(0, e.cursor.Col-1)
	case r == 0x09:
		e.cursor.Col = min((e.cursor.Col/8+1)*8, e.cols-1)
	case r == 0x0A || r == 0x0B || r == 0x0C:
		e.linefeed()
	case r == 0x0D:
		e.cursor.Col = 0
	case r == 0x1B:
		e.state = stateEscape
	case r < 0x20:
		// other C0: drop
	default:
		e.putChar(r)
	}
}

func (e *Engine) feedEscape(r rune) {
	switch r {
	case '[':
		e.state = stateCSI
		e.csiParams = ""
		e.csiIntermediate = ""
	case ']':
		e.state = stateOSC
		e.oscString = ""
	case '(', ')', '*', '+':
		e.state = stateCharset
	case '7':
		e.cursor.Save()
		e.state = stateNormal
	case '8':
		e.cursor.Restore(e.rows, e.cols)
		e.state = stateNormal
	case 'D':
		e.linefeed()
		e.state = stateNormal
	case 'M':
		e.reverseLinefeed()
		e.state = stateNormal
	case 'c':
		e.ris()
		e.state = stateNormal
	case 'P', '_', '^', 'X':
		e.state = stateStringSequence
	default:
		// '\\' (ST no-op) and anything else: return to Normal.
		e.state = stateNormal
	}
}

func (e *Engine) feedCSI(r rune) {
	switch {
	case r >= 0x30 && r <= 0x3F:
		e.csiParams += string(r)
	case r >= 0x20 && r <= 0x2F:
		e.csiIntermediate += string(r)
	case r >= 0x40 && r <= 0x7E:
		e.dispatchCSI(e.csiParams, e.csiIntermediate, byte(r))
		e.state = stateNormal
	default:
		e.state = stateNormal
	}
}

func (e *Engine) feedOSC(r rune) {
	switch r {
	case 0x07:
		e.dispatchOSC(e.oscString)
		e.state = stateNormal
	case 0x1B:
		e.dispatchOSC(e.oscString)
		e.state = stateEscape
	default:
		e.oscString += string(r)
	}
}

func (e *Engine) feedStringSequence(r rune) {
	switch r {
	case 0x1B:
		e.state = stateEscape
	case 0x07:
		e.state = stateNormal
	default:
		// discard
	}
}

// ris performs a full reset (RIS), triggered by ESC c and by CSI ! p
// (DECSTR, which this engine treats identically).
func (e *Engine) ris() {
	e.Reset()
}

// putChar writes a printable scalar at the cursor per the character
// output algorithm: wide-char wrap, insert-mode shifting, wide-pair
// partner cleanup, then advance.
func (e *Engine) putChar(r rune) {
	wide := isWide(r)
	cols := e.cols

	if wide && cols < 2 {
		return // no room for a wide pair on any row
	}

	if wide && e.cursor.Col >= cols-1 {
		if cell := e.grid.Cell(e.cursor.Row, e.cursor.Col); cell != nil {
			*cell = blankCell(e.style)
		}
		if !e.modes.AutoWrap {
			return
		}
		e.cursor.Col = 0
		e.linefeed()
	}

	if e.cursor.Col >= cols {
		if e.modes.AutoWrap {
			e.cursor.Col = 0
			e.linefeed()
		} else {
			e.cursor.Col = cols - 1
		}
	}

	row, col := e.cursor.Row, e.cursor.Col
	if cell := e.grid.Cell(row, col); cell != nil {
		if cell.WidePadding {
			if partner := e.grid.Cell(row, col-1); partner != nil {
				*partner = blankCell(e.style)
			}
		}
		if cell.Wide {
			if partner := e.grid.Cell(row, col+1); partner != nil {
				*partner = blankCell(e.style)
			}
		}
	}

	if e.modes.InsertMode {
		width := 1
		if wide {
			width = 2
		}
		e.insertChars(width)
	}

	if cell := e.grid.Cell(row, col); cell != nil {
		*cell = Cell{Char: r, Style: e.style, Wide: wide}
	}

	if wide {
		partner := e.grid.Cell(row, col+1)
		assertInvariant(partner != nil, "wide char written with no column left for its padding partner")
		*partner = Cell{Char: ' ', Style: e.style, WidePadding: true}
		e.cursor.Col = col + 2
	} else {
		e.cursor.Col = col + 1
	}

	e.lastPrintedChar = r
}

