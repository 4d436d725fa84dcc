package vtengine

// applySGR updates the current style register from a parsed CSI `m`
// parameter list. An empty list is treated as [0].
func (e *Engine) applySGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			e.style = DefaultStyle
		case p == 1:
			e.style.Flags |= StyleBold
		case p == 2:
			e.style.Flags |= StyleDim
		case p == 3:
			e.style.Flags |= StyleItalic
		case p == 4:
			e.style.Flags |= StyleUnderline
		case p == 7:
			effectiveBg := e.style.Bg
			if effectiveBg.IsDefault() {
				effectiveBg = TrueColor(DefaultBackground.R, DefaultBackground.G, DefaultBackground.B)
			}
			e.style.Fg, e.style.Bg = effectiveBg, e.style.Fg
		case p == 8:
			e.style.Flags |= StyleInvisible
		case p == 9:
			e.style.Flags |= StyleStrikethrough
		case p == 22:
			e.style.Flags &^= StyleBold | StyleDim
		case p == 23:
			e.style.Flags &^= StyleItalic
		case p == 24:
			e.style.Flags &^= StyleUnderline
		case p == 27:
			e.style.Fg = DefaultColor
			e.style.Bg = DefaultColor
		case p == 28:
			e.style.Flags &^= StyleInvisible
		case p == 29:
			e.style.Flags &^= StyleStrikethrough
		case p >= 30 && p <= 37:
			e.style.Fg = Indexed(uint8(p - 30))
		case p == 38:
			c, consumed := parseExtendedColor(params[i+1:])
			e.style.Fg = c
			i += consumed
		case p == 39:
			e.style.Fg = DefaultColor
		case p >= 40 && p <= 47:
			e.style.Bg = Indexed(uint8(p - 40))
		case p == 48:
			c, consumed := parseExtendedColor(params[i+1:])
			e.style.Bg = c
			i += consumed
		case p == 49:
			e.style.Bg = DefaultColor
		case p >= 90 && p <= 97:
			e.style.Fg = Indexed(uint8(8 + p - 90))
		case p >= 100 && p <= 107:
			e.style.Bg = Indexed(uint8(8 + p - 100))
		default:
			// unrecognized code: ignore
		}
	}
}

// parseExtendedColor parses the sub-selector following SGR 38/48: either
// `5;n` (indexed) or `2;r;g;b` (truecolor). It returns the resolved
// Color and the number of extra parameters consumed.
func parseExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return DefaultColor, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return DefaultColor, len(rest)
		}
		return Indexed(uint8(clampByte(rest[1]))), 2
	case 2:
		if len(rest) < 4 {
			return DefaultColor, len(rest)
		}
		return TrueColor(uint8(clampByte(rest[1])), uint8(clampByte(rest[2])), uint8(clampByte(rest[3]))), 4
	default:
		return DefaultColor, 1
	}
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
