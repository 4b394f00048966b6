package vtscreen

import (
	"strconv"
	"strings"
)

// executeOSC interprets a completed operating-system-command payload of the
// form "code;text". Codes 0 and 2 set the window title; everything else is
// consumed without effect.
func (s *Screen) executeOSC(data string) {
	code, text, ok := strings.Cut(data, ";")
	if !ok {
		return
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return
	}
	switch n {
	case 0, 2: // icon name + title / title
		s.title = text
	case 1: // icon name only
	default:
		s.debug("ignoring OSC sequence", "code", n)
	}
}
