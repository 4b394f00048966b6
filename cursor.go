package vtscreen

func (s *Screen) clampCursor() {
	g := s.grid()
	if g.cursor.Col > g.cols-1 {
		g.cursor.Col = g.cols - 1
	}
	if g.cursor.Col < 0 {
		g.cursor.Col = 0
	}

	top, bottom := 0, g.rows-1
	if s.originMode {
		top, bottom = g.scrollTop, g.scrollBottom
	}
	if g.cursor.Row < top {
		g.cursor.Row = top
	}
	if g.cursor.Row > bottom {
		g.cursor.Row = bottom
	}
	if g.cursor.Row < 0 {
		g.cursor.Row = 0
	}
}

// setCursorPos handles absolute positioning (1-indexed input). In origin
// mode the row is relative to the scroll region top.
func (s *Screen) setCursorPos(row, col int) {
	g := s.grid()
	if s.originMode {
		g.cursor.Row = g.scrollTop + row - 1
	} else {
		g.cursor.Row = row - 1
	}
	g.cursor.Col = col - 1
	s.clampCursor()
}

func (s *Screen) setCursorCol(col int) {
	s.grid().cursor.Col = col
	s.clampCursor()
}

func (s *Screen) setCursorRow(row int) {
	g := s.grid()
	if s.originMode {
		row += g.scrollTop
	}
	g.cursor.Row = row
	s.clampCursor()
}

func (s *Screen) moveCursor(dRow, dCol int) {
	g := s.grid()
	g.cursor.Row += dRow
	g.cursor.Col += dCol
	s.clampCursor()
}

// saveCursor records the cursor position and current attributes (DECSC).
func (s *Screen) saveCursor() {
	g := s.grid()
	g.savedCursor = g.cursor
	g.savedStyle = g.style
}

// restoreCursor restores the state saved by saveCursor (DECRC).
func (s *Screen) restoreCursor() {
	g := s.grid()
	g.cursor = g.savedCursor
	g.style = g.savedStyle
	s.clampCursor()
}

// reverseIndex moves the cursor up one row, scrolling the region down when
// the cursor sits on the region top (RI).
func (s *Screen) reverseIndex() {
	g := s.grid()
	if g.cursor.Row == g.scrollTop {
		s.scrollDown(1)
		return
	}
	if g.cursor.Row > 0 {
		g.cursor.Row--
	}
}
