package vtscreen

// scrollUp shifts the scroll region's content up by n rows. Evicted rows
// are archived to scrollback only when the region starts at the top of a
// primary-buffer screen; sub-region and alternate-screen scrolling never
// reach history.
func (s *Screen) scrollUp(n int) {
	g := s.grid()
	if n <= 0 || g.rows == 0 {
		return
	}
	region := g.scrollBottom - g.scrollTop + 1
	if n > region {
		n = region
	}

	if !s.altActive && g.scrollTop == 0 {
		for i := 0; i < n; i++ {
			s.pushScrollback(g.cells[g.scrollTop+i])
		}
	}

	for i := g.scrollTop; i <= g.scrollBottom-n; i++ {
		g.cells[i] = g.cells[i+n]
	}
	for i := g.scrollBottom - n + 1; i <= g.scrollBottom; i++ {
		g.cells[i] = blankRow(g.cols)
	}
}

// scrollDown shifts the scroll region's content down by n rows, dropping
// rows off the region bottom and inserting blanks at the top.
func (s *Screen) scrollDown(n int) {
	g := s.grid()
	if n <= 0 || g.rows == 0 {
		return
	}
	region := g.scrollBottom - g.scrollTop + 1
	if n > region {
		n = region
	}

	for i := g.scrollBottom; i >= g.scrollTop+n; i-- {
		g.cells[i] = g.cells[i-n]
	}
	for i := g.scrollTop; i < g.scrollTop+n; i++ {
		g.cells[i] = blankRow(g.cols)
	}
}

// pushScrollback archives a copy of a row, evicting the oldest entry once
// the cap is reached.
func (s *Screen) pushScrollback(row []Cell) {
	if s.maxScrollback <= 0 {
		return
	}
	s.scrollback = append(s.scrollback, copyRow(row))
	if len(s.scrollback) > s.maxScrollback {
		s.scrollback = s.scrollback[len(s.scrollback)-s.maxScrollback:]
	}
}

// setScrollRegion defines the scrolling region (1-indexed, inclusive). An
// empty or inverted region is ignored. The cursor homes afterwards, to the
// region top in origin mode.
func (s *Screen) setScrollRegion(top, bottom int) {
	g := s.grid()
	t := top - 1
	b := bottom - 1
	if t < 0 {
		t = 0
	}
	if b > g.rows-1 {
		b = g.rows - 1
	}
	if t >= b {
		return
	}
	g.scrollTop = t
	g.scrollBottom = b

	g.cursor.Col = 0
	if s.originMode {
		g.cursor.Row = g.scrollTop
	} else {
		g.cursor.Row = 0
	}
	s.clampCursor()
}
