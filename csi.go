package vtscreen

import (
	"strconv"
	"strings"
)

func (p *parser) parseCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.paramBuf.WriteByte(b)
		p.state = stateCSIParam
	case b == ';':
		p.pushParam()
		p.state = stateCSIParam
	case b == '?', b == '>', b == '!', b == '<':
		p.private = b
		p.state = stateCSIParam
	case b >= 0x20 && b <= 0x2f:
		p.intermediate = b
		p.state = stateCSIParam
	case b >= 0x40 && b <= 0x7e:
		p.pushParam()
		p.executeCSI(b)
		p.state = stateGround
	case b == 0x1b:
		p.state = stateEscape
	default:
		// Other C0 bytes inside a sequence are dropped.
	}
}

func (p *parser) parseCSIParam(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.paramBuf.WriteByte(b)
	case b == ';':
		p.pushParam()
	case b == ':': // sub-parameter separator, split during pushParam
		p.paramBuf.WriteByte(b)
	case b >= 0x20 && b <= 0x2f:
		p.intermediate = b
	case b >= 0x40 && b <= 0x7e:
		p.pushParam()
		p.executeCSI(b)
		p.state = stateGround
	case b == 0x1b:
		p.state = stateEscape
	default:
		p.state = stateGround
	}
}

func (p *parser) pushParam() {
	defer p.paramBuf.Reset()
	if len(p.params) >= maxParams {
		return
	}
	s := p.paramBuf.String()
	if s == "" {
		p.params = append(p.params, 0)
		return
	}
	// Colon-separated sub-parameters ("38:2:255:128:0") flatten into the
	// parameter list the same way semicolons do.
	for _, part := range strings.Split(s, ":") {
		if len(p.params) >= maxParams {
			return
		}
		val, _ := strconv.Atoi(part)
		if val > maxParamVal {
			val = maxParamVal
		}
		p.params = append(p.params, val)
	}
}

// param returns the idx-th parameter, or def when it is absent or zero.
func (p *parser) param(idx, def int) int {
	if idx < len(p.params) && p.params[idx] != 0 {
		return p.params[idx]
	}
	return def
}

// rawParam returns the idx-th parameter without zero-defaulting, for
// finals where 0 is meaningful (erase modes).
func (p *parser) rawParam(idx, def int) int {
	if idx < len(p.params) {
		return p.params[idx]
	}
	return def
}

func (p *parser) executeCSI(final byte) {
	s := p.scr
	switch final {
	case 'A': // CUU
		s.moveCursor(-p.param(0, 1), 0)
	case 'B': // CUD
		s.moveCursor(p.param(0, 1), 0)
	case 'C': // CUF
		s.moveCursor(0, p.param(0, 1))
	case 'D': // CUB
		s.moveCursor(0, -p.param(0, 1))
	case 'E': // CNL
		s.grid().cursor.Col = 0
		s.moveCursor(p.param(0, 1), 0)
	case 'F': // CPL
		s.grid().cursor.Col = 0
		s.moveCursor(-p.param(0, 1), 0)
	case 'G': // CHA
		s.setCursorCol(p.param(0, 1) - 1)
	case 'H', 'f': // CUP / HVP
		s.setCursorPos(p.param(0, 1), p.param(1, 1))
	case 'J': // ED
		s.eraseDisplay(p.rawParam(0, 0))
	case 'K': // EL
		s.eraseLine(p.rawParam(0, 0))
	case 'L': // IL
		s.insertLines(p.param(0, 1))
	case 'M': // DL
		s.deleteLines(p.param(0, 1))
	case '@': // ICH
		s.insertChars(p.param(0, 1))
	case 'P': // DCH
		s.deleteChars(p.param(0, 1))
	case 'X': // ECH
		s.eraseChars(p.param(0, 1))
	case 'S': // SU
		s.scrollUp(p.param(0, 1))
	case 'T': // SD
		s.scrollDown(p.param(0, 1))
	case 'd': // VPA
		s.setCursorRow(p.param(0, 1) - 1)
	case 'm': // SGR
		p.executeSGR()
	case 'r': // DECSTBM
		s.setScrollRegion(p.param(0, 1), p.param(1, s.grid().rows))
	case 's': // SCP
		s.saveCursor()
	case 'u': // RCP
		s.restoreCursor()
	case 'h': // SM / DECSET
		p.executeMode(true)
	case 'l': // RM / DECRST
		p.executeMode(false)
	case 'n', 'c', 't', 'p':
		// Status reports, device attributes, window ops and mode queries
		// would need a byte channel back to the process; absorbed.
	default:
		s.debug("ignoring CSI sequence", "final", string(rune(final)), "params", p.params)
	}
}
