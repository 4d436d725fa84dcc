package vtengine

import "strconv"
import "strings"

// parseCSIParams splits a CSI parameter accumulator into its optional
// private/secondary/tertiary prefix and its semicolon-separated integer
// list. Missing or malformed values default to 0.
func parseCSIParams(raw string) (prefix byte, params []int) {
	if len(raw) > 0 {
		switch raw[0] {
		case '?', '>', '=', '<':
			prefix = raw[0]
			raw = raw[1:]
		}
	}
	if raw == "" {
		return prefix, nil
	}
	parts := strings.Split(raw, ";")
	params = make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if n, err := strconv.Atoi(p); err == nil {
			params[i] = n
		}
	}
	return prefix, params
}

// param returns params[idx], or 0 if idx is out of range.
func param(params []int, idx int) int {
	if idx < 0 || idx >= len(params) {
		return 0
	}
	return params[idx]
}

// paramOrOne is param, with a zero or missing value treated as 1 — the
// convention for CSI motion and count parameters.
func paramOrOne(params []int, idx int) int {
	return max(param(params, idx), 1)
}

// dispatchCSI interprets one complete CSI sequence's params, intermediate
// bytes, and final byte, routing it to the screen model or an effect.
func (e *Engine) dispatchCSI(rawParams, intermediate string, final byte) {
	if intermediate == " " && final == 'q' {
		return // DECSCUSR: accepted and ignored
	}
	if intermediate == "!" && final == 'p' {
		e.ris() // DECSTR: soft reset, treated as full reset here
		return
	}

	prefix, params := parseCSIParams(rawParams)

	switch final {
	case 'A':
		e.cursor.Row = clamp(e.cursor.Row-paramOrOne(params, 0), 0, e.rows-1)
	case 'B':
		e.cursor.Row = clamp(e.cursor.Row+paramOrOne(params, 0), 0, e.rows-1)
	case 'C':
		e.cursor.Col = clamp(e.cursor.Col+paramOrOne(params, 0), 0, e.cols-1)
	case 'D':
		e.cursor.Col = clamp(e.cursor.Col-paramOrOne(params, 0), 0, e.cols-1)
	case 'E':
		e.cursor.Row = clamp(e.cursor.Row+paramOrOne(params, 0), 0, e.rows-1)
		e.cursor.Col = 0
	case 'F':
		e.cursor.Row = clamp(e.cursor.Row-paramOrOne(params, 0), 0, e.rows-1)
		e.cursor.Col = 0
	case 'G':
		e.cursor.Col = clamp(paramOrOne(params, 0)-1, 0, e.cols-1)
	case 'd':
		e.cursor.Row = clamp(paramOrOne(params, 0)-1, 0, e.rows-1)
	case 'H', 'f':
		e.cursor.Row = clamp(paramOrOne(params, 0)-1, 0, e.rows-1)
		e.cursor.Col = clamp(paramOrOne(params, 1)-1, 0, e.cols-1)
	case 's':
		e.cursor.Save()
	case 'u':
		e.cursor.Restore(e.rows, e.cols)
	case 'J':
		e.eraseDisplay(param(params, 0))
	case 'K':
		e.eraseLine(param(params, 0))
	case 'X':
		e.eraseChars(paramOrOne(params, 0))
	case 'P':
		e.deleteChars(paramOrOne(params, 0))
	case '@':
		e.insertChars(paramOrOne(params, 0))
	case 'L':
		e.insertLines(paramOrOne(params, 0))
	case 'M':
		e.deleteLines(paramOrOne(params, 0))
	case 'r':
		e.setScrollRegion(param(params, 0), param(params, 1))
	case 'S':
		e.scrollUp(paramOrOne(params, 0))
	case 'T':
		e.scrollDown(paramOrOne(params, 0))
	case 'b':
		e.repeatLastChar(paramOrOne(params, 0))
	case 'n':
		e.deviceStatusReport(param(params, 0))
	case 'c':
		e.deviceAttributes(prefix)
	case 'h':
		e.setMode(prefix, params, true)
	case 'l':
		e.setMode(prefix, params, false)
	case 'm':
		e.applySGR(params)
	default:
		debugf("unknown CSI final %q (params=%q intermediate=%q)", final, rawParams, intermediate)
	}
}

// setScrollRegion implements CSI r. top/bottom are 1-based; bottom==0
// means "to the last row".
func (e *Engine) setScrollRegion(top, bottom int) {
	if top <= 0 {
		top = 1
	}
	if bottom <= 0 {
		bottom = e.rows
	}
	top--
	bottom--
	top = clamp(top, 0, e.rows-1)
	bottom = clamp(bottom, 0, e.rows-1)
	if top >= bottom {
		return
	}
	e.scrollTop, e.scrollBottom = top, bottom
	e.cursor.Row, e.cursor.Col = top, 0
}

// repeatLastChar implements CSI b (REP).
func (e *Engine) repeatLastChar(n int) {
	if e.lastPrintedChar == 0 {
		return
	}
	r := e.lastPrintedChar
	for i := 0; i < n; i++ {
		e.putChar(r)
	}
}

// deviceStatusReport implements CSI n.
func (e *Engine) deviceStatusReport(mode int) {
	switch mode {
	case 5:
		e.effects.response([]byte("\x1b[0n"))
	case 6:
		e.effects.response([]byte("\x1b[" + strconv.Itoa(e.cursor.Row+1) + ";" + strconv.Itoa(e.cursor.Col+1) + "R"))
	}
}

// deviceAttributes implements CSI c (primary), CSI > c (secondary); CSI
// = c (tertiary) is ignored.
func (e *Engine) deviceAttributes(prefix byte) {
	switch prefix {
	case '>':
		e.effects.response([]byte("\x1b[>0;0;0c"))
	case '=':
		// tertiary DA: ignored
	default:
		e.effects.response([]byte("\x1b[?1;2c"))
	}
}

// setMode implements ANSI h/l (no prefix, mode 4 only) and DECSET/DECRST
// (prefix '?').
func (e *Engine) setMode(prefix byte, params []int, set bool) {
	for _, n := range params {
		if prefix == '?' {
			switch n {
			case 47, 1047, 1049:
				e.toggleAltScreen(set)
			default:
				e.modes.setPrivateMode(n, set)
			}
		} else {
			e.modes.setANSIMode(n, set)
		}
	}
}
