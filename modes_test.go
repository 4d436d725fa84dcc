package vtengine

import "testing"

func TestDefaultModes(t *testing.T) {
	m := DefaultModes()
	if !m.ShowCursor {
		t.Error("ShowCursor should default to true")
	}
	if !m.AutoWrap {
		t.Error("AutoWrap should default to true")
	}
	if m.ApplicationCursorKeys || m.BracketedPaste || m.InsertMode {
		t.Error("other modes should default to false")
	}
}

func TestSetPrivateMode(t *testing.T) {
	m := DefaultModes()

	if !m.setPrivateMode(modeAppCursorKeys, true) {
		t.Fatal("setPrivateMode(1) should be recognized")
	}
	if !m.ApplicationCursorKeys {
		t.Error("ApplicationCursorKeys should be set")
	}

	if !m.setPrivateMode(modeShowCursor, false) {
		t.Fatal("setPrivateMode(25) should be recognized")
	}
	if m.ShowCursor {
		t.Error("ShowCursor should be cleared")
	}

	if m.setPrivateMode(1000, true) {
		t.Error("unrecognized private mode should return false")
	}
}

func TestSetANSIMode(t *testing.T) {
	m := DefaultModes()

	if !m.setANSIMode(modeInsert, true) {
		t.Fatal("setANSIMode(4) should be recognized")
	}
	if !m.InsertMode {
		t.Error("InsertMode should be set")
	}

	if m.setANSIMode(99, true) {
		t.Error("unrecognized ANSI mode should return false")
	}
}
