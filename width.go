package vtengine

// wideRange is an inclusive codepoint range that renders as two columns.
type wideRange struct {
	lo, hi rune
}

// wideRanges enumerates the East-Asian-wide and emoji ranges this engine
// treats as double-width. The table is exact and fixed (not a general
// Unicode East-Asian-Width classifier) because the host transport already
// handles everything else about text shaping and combining marks.
var wideRanges = []wideRange{
	{0x1100, 0x115F},
	{0x2329, 0x232A},
	{0x2E80, 0x303E},
	{0x3041, 0x33BF},
	{0x3400, 0x4DBF},
	{0x4E00, 0x9FFF},
	{0xA000, 0xA4CF},
	{0xA960, 0xA97C},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE10, 0xFE19},
	{0xFE30, 0xFE6F},
	{0xFF01, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x1B000, 0x1B2FF},
	{0x1F300, 0x1F9FF},
	{0x1FA00, 0x1FAFF},
	{0x20000, 0x2FFFF},
	{0x30000, 0x3FFFF},
}

// isWide reports whether r occupies two grid columns. wideRanges is sorted
// by construction, so binary search applies.
func isWide(r rune) bool {
	lo, hi := 0, len(wideRanges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		rg := wideRanges[mid]
		switch {
		case r < rg.lo:
			hi = mid - 1
		case r > rg.hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// runeWidth returns the number of grid columns r occupies: 2 for wide
// characters, 1 otherwise.
func runeWidth(r rune) int {
	if isWide(r) {
		return 2
	}
	return 1
}
