package vtengine

// Modes holds the boolean terminal modes the engine actually honors.
// Everything else DECSET/DECRST names (cursor blink, mouse tracking,
// focus events, synchronized output, DECSCUSR) is accepted and ignored;
// the parser consumes the sequence but leaves no trace here.
type Modes struct {
	ApplicationCursorKeys bool
	ShowCursor            bool
	AutoWrap              bool
	BracketedPaste        bool
	InsertMode            bool
}

// DefaultModes returns the mode set active on a freshly reset terminal.
func DefaultModes() Modes {
	return Modes{
		ShowCursor: true,
		AutoWrap:   true,
	}
}

// privateMode numbers recognized by DECSET/DECRST (CSI ? Pm h/l).
const (
	modeAppCursorKeys = 1
	modeAutoWrap      = 7
	modeShowCursor    = 25
	modeAltScreen47   = 47
	modeAltScreen1047 = 1047
	modeAltScreen1049 = 1049
	modeBracketedPast = 2004
)

// ansiMode numbers recognized by ANSI h/l (no leading '?').
const (
	modeInsert = 4
)

// setPrivateMode applies a DECSET (set=true) or DECRST (set=false) for
// private mode n, returning false if n is not one this engine tracks
// beyond accept-and-ignore.
func (m *Modes) setPrivateMode(n int, set bool) bool {
	switch n {
	case modeAppCursorKeys:
		m.ApplicationCursorKeys = set
	case modeAutoWrap:
		m.AutoWrap = set
	case modeShowCursor:
		m.ShowCursor = set
	case modeBracketedPast:
		m.BracketedPaste = set
	default:
		return false
	}
	return true
}

// setANSIMode applies an ANSI h/l for mode n.
func (m *Modes) setANSIMode(n int, set bool) bool {
	switch n {
	case modeInsert:
		m.InsertMode = set
	default:
		return false
	}
	return true
}
