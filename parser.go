package vtscreen

import (
	"strings"
	"unicode/utf8"
)

// Parser states. The state is explicit so that a sequence split across
// Process calls resumes exactly where the previous chunk left off.
type parseState int

const (
	stateGround parseState = iota
	stateEscape
	stateEscCharset
	stateCSI
	stateCSIParam
	stateOSC
	stateOSCEsc
	stateDCS
	stateDCSEsc
)

const (
	maxParams   = 32   // CSI parameters beyond this are dropped
	maxParamVal = 9999 // individual parameter values clamp here
	maxOSCBytes = 4096 // OSC payloads beyond this are truncated
)

// parser is the byte-level automaton translating the raw stream into
// grid operations. It never reports errors: malformed or unsupported
// input is absorbed and the automaton returns to ground.
type parser struct {
	scr   *Screen
	state parseState

	// CSI accumulation
	params       []int
	paramBuf     strings.Builder
	private      byte // leading private marker: '?', '>', '<', '!'
	intermediate byte

	// OSC accumulation
	oscBuf strings.Builder

	// UTF-8 assembly across chunk boundaries
	utf8Buf [4]byte
	utf8Len int
	utf8Pos int
}

func newParser(scr *Screen) *parser {
	return &parser{
		scr:    scr,
		state:  stateGround,
		params: make([]int, 0, 16),
	}
}

func (p *parser) parse(data []byte) {
	for _, b := range data {
		p.parseByte(b)
	}
}

func (p *parser) parseByte(b byte) {
	switch p.state {
	case stateGround:
		p.parseGround(b)
	case stateEscape:
		p.parseEscape(b)
	case stateEscCharset:
		// Charset designation byte, accepted and ignored.
		p.state = stateGround
	case stateCSI:
		p.parseCSI(b)
	case stateCSIParam:
		p.parseCSIParam(b)
	case stateOSC:
		p.parseOSC(b)
	case stateOSCEsc:
		p.parseOSCEsc(b)
	case stateDCS:
		p.parseDCS(b)
	case stateDCSEsc:
		p.parseDCSEsc(b)
	}
}

func (p *parser) parseGround(b byte) {
	// Finish a pending multi-byte rune first.
	if p.utf8Len > 0 {
		if b >= 0x80 && b <= 0xBF {
			p.utf8Buf[p.utf8Pos] = b
			p.utf8Pos++
			if p.utf8Pos == p.utf8Len {
				r, _ := utf8.DecodeRune(p.utf8Buf[:p.utf8Len])
				p.utf8Len = 0
				p.utf8Pos = 0
				p.scr.print(r)
			}
			return
		}
		// Invalid continuation: drop the partial rune, reprocess b.
		p.utf8Len = 0
		p.utf8Pos = 0
	}

	switch {
	case b == 0x1b:
		p.state = stateEscape
	case b == '\n', b == 0x0b, b == 0x0c: // LF, VT, FF
		p.scr.linefeed()
	case b == '\r':
		p.scr.carriageReturn()
	case b == '\t':
		p.scr.tab()
	case b == '\b':
		p.scr.backspace()
	case b == 0x07: // BEL
	case b == 0x0e, b == 0x0f: // SO/SI charset shifts
	case b >= 0x20 && b < 0x7f:
		p.scr.print(rune(b))
	case b >= 0xC0 && b <= 0xDF:
		p.utf8Buf[0] = b
		p.utf8Len = 2
		p.utf8Pos = 1
	case b >= 0xE0 && b <= 0xEF:
		p.utf8Buf[0] = b
		p.utf8Len = 3
		p.utf8Pos = 1
	case b >= 0xF0 && b <= 0xF7:
		p.utf8Buf[0] = b
		p.utf8Len = 4
		p.utf8Pos = 1
	}
}

func (p *parser) parseEscape(b byte) {
	switch b {
	case '[':
		p.state = stateCSI
		p.params = p.params[:0]
		p.paramBuf.Reset()
		p.private = 0
		p.intermediate = 0
	case ']':
		p.state = stateOSC
		p.oscBuf.Reset()
	case 'P':
		p.state = stateDCS
	case '(', ')', '*', '+': // charset designation, next byte names the set
		p.state = stateEscCharset
	case '7': // DECSC
		p.scr.saveCursor()
		p.state = stateGround
	case '8': // DECRC
		p.scr.restoreCursor()
		p.state = stateGround
	case 'M': // RI
		p.scr.reverseIndex()
		p.state = stateGround
	case 'D': // IND
		p.scr.linefeed()
		p.state = stateGround
	case 'E': // NEL
		p.scr.carriageReturn()
		p.scr.linefeed()
		p.state = stateGround
	case 'c': // RIS
		p.scr.reset()
		p.state = stateGround
	case '=', '>': // keypad modes
		p.state = stateGround
	case '\\': // stray ST
		p.state = stateGround
	default:
		p.scr.debug("ignoring escape sequence", "final", string(rune(b)))
		p.state = stateGround
	}
}

func (p *parser) parseOSC(b byte) {
	switch b {
	case 0x07: // BEL terminates
		p.scr.executeOSC(p.oscBuf.String())
		p.state = stateGround
	case 0x1b:
		p.state = stateOSCEsc
	default:
		if p.oscBuf.Len() < maxOSCBytes {
			p.oscBuf.WriteByte(b)
		}
	}
}

func (p *parser) parseOSCEsc(b byte) {
	if b == '\\' { // ST terminates
		p.scr.executeOSC(p.oscBuf.String())
		p.state = stateGround
		return
	}
	// Not a terminator: abandon the OSC and reprocess as a fresh escape.
	p.oscBuf.Reset()
	p.state = stateEscape
	p.parseEscape(b)
}

func (p *parser) parseDCS(b byte) {
	// Device-control strings are consumed without effect.
	if b == 0x1b {
		p.state = stateDCSEsc
	}
}

func (p *parser) parseDCSEsc(b byte) {
	switch b {
	case '\\':
		p.state = stateGround
	case 0x1b:
		// stay, this ESC may still start the terminator
	default:
		p.state = stateDCS
	}
}
