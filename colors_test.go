package vtengine

import "testing"

func TestIndexedAndTrueColorConstructors(t *testing.T) {
	i := Indexed(42)
	if i.Kind != ColorIndexed || i.Index != 42 {
		t.Errorf("Indexed(42) = %+v", i)
	}
	tc := TrueColor(1, 2, 3)
	if tc.Kind != ColorTrueColor || tc.RGB.R != 1 || tc.RGB.G != 2 || tc.RGB.B != 3 {
		t.Errorf("TrueColor(1,2,3) = %+v", tc)
	}
}

func TestColorIsDefault(t *testing.T) {
	if !DefaultColor.IsDefault() {
		t.Error("DefaultColor.IsDefault() should be true")
	}
	if Indexed(0).IsDefault() {
		t.Error("Indexed(0).IsDefault() should be false")
	}
}

func TestColorResolveDefault(t *testing.T) {
	if got := DefaultColor.Resolve(true); got != DefaultForeground {
		t.Errorf("Resolve(true) = %+v, want DefaultForeground", got)
	}
	if got := DefaultColor.Resolve(false); got != DefaultBackground {
		t.Errorf("Resolve(false) = %+v, want DefaultBackground", got)
	}
}

func TestColorResolveTrueColor(t *testing.T) {
	c := TrueColor(10, 20, 30)
	got := c.Resolve(true)
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("Resolve() = %+v, want rgb(10,20,30)", got)
	}
}

func TestPalette256StandardColors(t *testing.T) {
	black := palette256At(0)
	if black.R != 0 || black.G != 0 || black.B != 0 {
		t.Errorf("palette256At(0) = %+v, want black", black)
	}
}

func TestPalette256Cube(t *testing.T) {
	// index 16 is the cube origin (r=g=b=0), which coincides with black.
	origin := palette256At(16)
	if origin.R != 0 || origin.G != 0 || origin.B != 0 {
		t.Errorf("palette256At(16) = %+v, want rgb(0,0,0)", origin)
	}
	// index 231 is the cube's brightest corner (r=g=b=5).
	corner := palette256At(231)
	if corner.R != 255 || corner.G != 255 || corner.B != 255 {
		t.Errorf("palette256At(231) = %+v, want rgb(255,255,255)", corner)
	}
}

func TestPalette256Grayscale(t *testing.T) {
	first := palette256At(232)
	if first.R != 8 || first.G != 8 || first.B != 8 {
		t.Errorf("palette256At(232) = %+v, want rgb(8,8,8)", first)
	}
}

func TestPalette256AtClamps(t *testing.T) {
	if palette256At(-1) != palette256At(0) {
		t.Error("palette256At should clamp negative indices to 0")
	}
	if palette256At(999) != palette256At(255) {
		t.Error("palette256At should clamp large indices to 255")
	}
}
