// Package vtengine implements a headless VT/xterm-compatible terminal
// emulator: a parser and screen model with no display of its own, meant
// to sit behind a PTY and in front of a renderer.
//
// # Quick Start
//
//	e := vtengine.New(24, 80)
//	e.Process([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!\r\n"))
//	fmt.Println(e.ExtractText()) // "Hello World!"
//
// # Architecture
//
// The package is organized around a handful of core types:
//
//   - [Engine]: processes bytes and owns all terminal state
//   - [Grid]: the 2D cell buffer for the active screen
//   - [Cell]: one character cell with its resolved [Style]
//   - [Cursor]: position and save/restore state
//   - [Modes]: the DECSET/DECRST and ANSI mode flags in effect
//
// # Processing input
//
// Engine implements the byte-stream side of the VT state machine. Feed
// it PTY output as it arrives:
//
//	cmd := exec.Command("ls", "-la", "--color")
//	out, _ := cmd.StdoutPipe()
//	cmd.Start()
//	buf := make([]byte, 4096)
//	for {
//	    n, err := out.Read(buf)
//	    e.Process(buf[:n])
//	    if err != nil {
//	        break
//	    }
//	}
//
// # Primary and alternate screens
//
// Engine maintains a primary grid with scrollback and switches to a
// bare alternate grid (no scrollback) when an application requests
// full-screen mode (CSI ?47h, ?1047h, ?1049h — vim, less, htop and
// similar). The switch is transparent: callers keep reading through
// the same accessor methods regardless of which screen is active.
//
// # Colors and attributes
//
// Cell styling is carried in [Style], which pairs a foreground and
// background [Color] (default, 256-indexed, or 24-bit truecolor) with
// a [StyleFlags] bitmask for bold, dim, italic, underline,
// strikethrough and invisible.
//
// # Scrollback
//
// Lines scrolled off the top of the primary grid are retained by a
// [ScrollbackProvider]. The engine always uses its in-memory
// implementation, bounded to [MaxScrollback] lines unless
// [WithMaxScrollback] sets another bound; no [Option] installs a
// different provider.
//
//	for i := 0; i < e.ScrollbackLen(); i++ {
//	    line := e.ScrollbackLine(i)
//	}
//
// # Effects
//
// [Effects] is the engine's only output channel besides the grid
// itself: bell, title changes, committed command lines, and raw
// host-response bytes (cursor position reports, device attributes) a
// caller must write back to the PTY.
//
//	e := vtengine.New(24, 80, vtengine.WithEffects(vtengine.Effects{
//	    OnResponse: func(b []byte) { ptmx.Write(b) },
//	}))
//
// # Snapshots
//
// [Engine.Snapshot] captures the full screen state as a JSON-friendly
// value, for a host that wants to serialize or ship terminal state
// without reaching into engine internals.
//
//	snap := e.Snapshot()
//	data, _ := json.Marshal(snap)
package vtengine
