package vtengine

// Effects is the set of callbacks an embedder registers to observe engine
// activity. Every field is optional; a nil field is simply not invoked.
// All callbacks fire synchronously on the goroutine that called Process,
// in the order their triggering bytes appeared in the input stream.
type Effects struct {
	// OnChange is invoked once per Process call, after every byte in the
	// chunk has been consumed, so a renderer can repaint from the grid.
	OnChange func()

	// OnBell fires on a BEL (0x07) in the Normal state.
	OnBell func()

	// OnTitleChange fires for OSC 0/2 and OSC 7 payloads.
	OnTitleChange func(title string)

	// OnCommandEntered fires when the host line editor flushes its
	// input buffer on Enter.
	OnCommandEntered func(line string)

	// OnResponse delivers bytes that must be written back to the PTY
	// master, in query order.
	OnResponse func(data []byte)
}

func (e Effects) change() {
	if e.OnChange != nil {
		e.OnChange()
	}
}

func (e Effects) bell() {
	if e.OnBell != nil {
		e.OnBell()
	}
}

func (e Effects) titleChange(title string) {
	if e.OnTitleChange != nil {
		e.OnTitleChange(title)
	}
}

func (e Effects) commandEntered(line string) {
	if e.OnCommandEntered != nil {
		e.OnCommandEntered(line)
	}
}

func (e Effects) response(data []byte) {
	if e.OnResponse != nil {
		e.OnResponse(data)
	}
}
