package vtengine

import "log"

// Debug gates the engine's internal diagnostic logging, which reports
// unknown CSI final bytes through the standard log package. It defaults
// to off, and nothing in this module turns it on.
var Debug = false

func debugf(format string, args ...any) {
	if !Debug {
		return
	}
	log.Printf("vtengine: "+format, args...)
}
