package vtscreen

// executeMode handles DECSET/DECRST (CSI ? Pm h / l). Non-private set/reset
// sequences and unsupported private modes are absorbed.
func (p *parser) executeMode(set bool) {
	if p.private != '?' {
		p.scr.debug("ignoring mode sequence", "set", set, "params", p.params)
		return
	}

	s := p.scr
	for _, param := range p.params {
		switch param {
		case 6: // DECOM origin mode, cursor homes on change
			s.originMode = set
			g := s.grid()
			g.cursor.Col = 0
			if set {
				g.cursor.Row = g.scrollTop
			} else {
				g.cursor.Row = 0
			}
			s.clampCursor()
		case 25: // DECTCEM cursor visibility
			s.cursorVisible = set
		case 47, 1047, 1049: // alternate screen buffer
			if set {
				s.enterAltScreen()
			} else {
				s.exitAltScreen()
			}
		case 1, 7, 12, 2004:
			// Cursor keys, auto-wrap (always on), cursor blink and
			// bracketed paste have no effect on a headless grid.
		default:
			s.debug("ignoring private mode", "mode", param, "set", set)
		}
	}
}

// enterAltScreen switches to a fresh alternate grid. The alternate screen
// is cleared on every entry (xterm convention); the primary grid keeps its
// cursor and content untouched for the eventual switch back.
func (s *Screen) enterAltScreen() {
	if s.altActive {
		return
	}
	s.alt = newGrid(s.primary.cols, s.primary.rows)
	s.alt.style = s.primary.style
	s.altActive = true
}

// exitAltScreen returns to the primary grid, discarding alternate content.
func (s *Screen) exitAltScreen() {
	if !s.altActive {
		return
	}
	s.altActive = false
	s.alt = nil
}

// reset implements RIS: attributes, cursor, modes, scroll region and the
// visible grid return to their initial state. Scrollback and the title
// survive a reset.
func (s *Screen) reset() {
	s.altActive = false
	s.alt = nil
	s.originMode = false
	s.cursorVisible = true

	g := s.primary
	g.style = Style{}
	g.cursor = Cursor{}
	g.savedCursor = Cursor{}
	g.savedStyle = Style{}
	g.scrollTop = 0
	g.scrollBottom = g.rows - 1
	for i := range g.cells {
		g.cells[i] = blankRow(g.cols)
	}
}
