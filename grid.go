package vtscreen

// Cursor is a 0-indexed grid position. Col may transiently equal the column
// count after printing into the last column; the wrap happens on the next
// printed character.
type Cursor struct {
	Row, Col int
}

// grid is one addressable cell matrix with its own cursor, attributes and
// scroll region. The engine owns two of these (primary and alternate) and
// never shares cells between them.
type grid struct {
	cols, rows int
	cells      [][]Cell
	cursor     Cursor
	style      Style

	// Scroll region, inclusive rows. scrollTop <= scrollBottom < rows.
	scrollTop    int
	scrollBottom int

	savedCursor Cursor
	savedStyle  Style
}

func newGrid(cols, rows int) *grid {
	g := &grid{
		cols:         cols,
		rows:         rows,
		scrollBottom: rows - 1,
	}
	g.cells = make([][]Cell, rows)
	for i := range g.cells {
		g.cells[i] = blankRow(cols)
	}
	return g
}

// resize grows or truncates each row to the new width and adds or removes
// rows at the bottom. Existing glyphs are never re-wrapped; a wide pair cut
// by the new right edge is dropped by normalizeRow.
func (g *grid) resize(cols, rows int) {
	if cols == g.cols && rows == g.rows {
		return
	}

	for i := range g.cells {
		row := g.cells[i]
		if cols < len(row) {
			row = row[:cols]
			normalizeRow(row)
		} else {
			for len(row) < cols {
				row = append(row, DefaultCell())
			}
		}
		g.cells[i] = row
	}

	if rows < len(g.cells) {
		g.cells = g.cells[:rows]
	}
	for len(g.cells) < rows {
		g.cells = append(g.cells, blankRow(cols))
	}

	g.cols = cols
	g.rows = rows

	g.scrollBottom = rows - 1
	if g.scrollTop < 0 || g.scrollTop > g.scrollBottom {
		g.scrollTop = 0
	}

	if g.cursor.Col > cols-1 {
		g.cursor.Col = cols - 1
	}
	if g.cursor.Col < 0 {
		g.cursor.Col = 0
	}
	if g.cursor.Row > rows-1 {
		g.cursor.Row = rows - 1
	}
	if g.cursor.Row < 0 {
		g.cursor.Row = 0
	}
}

// print places a character at the cursor, handling wrap, wide glyphs and
// combining marks.
func (s *Screen) print(r rune) {
	g := s.grid()
	if g.rows == 0 || g.cols == 0 {
		return
	}

	w := runeCells(r)
	if w == 0 {
		g.attachCombining(r)
		return
	}
	if w == 2 && g.cols < 2 {
		return
	}

	// Pending wrap from a previous print into the last column.
	if g.cursor.Col >= g.cols {
		s.wrapCursor()
	}

	// A wide glyph never straddles the right edge: pad the last column
	// and wrap the whole character instead.
	if w == 2 && g.cursor.Col == g.cols-1 {
		g.cells[g.cursor.Row][g.cursor.Col] = Cell{Rune: ' ', Style: g.style}
		s.wrapCursor()
	}

	row := g.cells[g.cursor.Row]
	col := g.cursor.Col

	// Repair any wide pair this write overlaps.
	if row[col].Placeholder && col > 0 {
		row[col-1] = DefaultCell()
	}
	if row[col].Wide && col+1 < g.cols {
		row[col+1] = DefaultCell()
	}

	row[col] = Cell{Rune: r, Style: g.style, Wide: w == 2}

	if w == 2 {
		if row[col+1].Wide && col+2 < g.cols {
			row[col+2] = DefaultCell()
		}
		row[col+1] = Cell{Style: g.style, Placeholder: true}
	}

	g.cursor.Col += w
}

// wrapCursor moves the cursor to column 0 of the next row, scrolling when
// the cursor sits on the region's bottom row.
func (s *Screen) wrapCursor() {
	g := s.grid()
	g.cursor.Col = 0
	if g.cursor.Row == g.scrollBottom {
		s.scrollUp(1)
	} else if g.cursor.Row < g.rows-1 {
		g.cursor.Row++
	}
}

// attachCombining merges a zero-width rune into the most recently printed
// cell, scanning left past placeholders (and onto the previous row after a
// wrap). The mark is dropped when there is no cell to attach to.
func (g *grid) attachCombining(r rune) {
	row, col := g.cursor.Row, g.cursor.Col-1
	if g.cursor.Col >= g.cols {
		col = g.cols - 1
	}
	for {
		if col < 0 {
			if row == 0 {
				return
			}
			row--
			col = g.cols - 1
		}
		if !g.cells[row][col].Placeholder {
			break
		}
		col--
	}
	g.cells[row][col].Combining += string(r)
}

func (s *Screen) linefeed() {
	g := s.grid()
	if g.rows == 0 {
		return
	}
	if g.cursor.Row == g.scrollBottom {
		s.scrollUp(1)
		return
	}
	if g.cursor.Row < g.rows-1 {
		g.cursor.Row++
	}
}

func (s *Screen) carriageReturn() {
	s.grid().cursor.Col = 0
}

// tab advances the cursor to the next multiple-of-8 tab stop, clamped to
// the last column.
func (s *Screen) tab() {
	g := s.grid()
	if g.cols == 0 {
		return
	}
	g.cursor.Col = (g.cursor.Col/tabWidth + 1) * tabWidth
	if g.cursor.Col > g.cols-1 {
		g.cursor.Col = g.cols - 1
	}
}

const tabWidth = 8

func (s *Screen) backspace() {
	g := s.grid()
	if g.cursor.Col > g.cols-1 {
		g.cursor.Col = g.cols - 1
	}
	if g.cursor.Col > 0 {
		g.cursor.Col--
	}
}

// eraseDisplay clears part of the screen. Mode 0 erases cursor to end,
// 1 start to cursor, 2 the whole display, 3 additionally drops scrollback.
// The cursor does not move.
func (s *Screen) eraseDisplay(mode int) {
	g := s.grid()
	if g.rows == 0 {
		return
	}
	switch mode {
	case 0:
		s.eraseLine(0)
		for y := g.cursor.Row + 1; y < g.rows; y++ {
			g.cells[y] = blankRow(g.cols)
		}
	case 1:
		for y := 0; y < g.cursor.Row; y++ {
			g.cells[y] = blankRow(g.cols)
		}
		s.eraseLine(1)
	case 2, 3:
		for y := 0; y < g.rows; y++ {
			g.cells[y] = blankRow(g.cols)
		}
		if mode == 3 {
			s.scrollback = s.scrollback[:0]
		}
	}
}

// eraseLine clears part of the cursor's row. Mode 0 erases cursor to end,
// 1 start through cursor, 2 the whole line.
func (s *Screen) eraseLine(mode int) {
	g := s.grid()
	if g.rows == 0 || g.cols == 0 {
		return
	}
	row := g.cells[g.cursor.Row]
	col := g.cursor.Col
	if col > g.cols-1 {
		col = g.cols - 1
	}
	switch mode {
	case 0:
		for x := col; x < g.cols; x++ {
			row[x] = DefaultCell()
		}
	case 1:
		for x := 0; x <= col; x++ {
			row[x] = DefaultCell()
		}
	case 2:
		g.cells[g.cursor.Row] = blankRow(g.cols)
		return
	default:
		return
	}
	normalizeRow(row)
}

// insertLines inserts n blank lines at the cursor, pushing rows below it
// toward the region bottom. No-op outside the scroll region.
func (s *Screen) insertLines(n int) {
	g := s.grid()
	if g.cursor.Row < g.scrollTop || g.cursor.Row > g.scrollBottom {
		return
	}
	if max := g.scrollBottom - g.cursor.Row + 1; n > max {
		n = max
	}
	for i := g.scrollBottom; i >= g.cursor.Row+n; i-- {
		g.cells[i] = g.cells[i-n]
	}
	for i := g.cursor.Row; i < g.cursor.Row+n; i++ {
		g.cells[i] = blankRow(g.cols)
	}
}

// deleteLines removes n lines at the cursor, pulling rows up from the
// region bottom. No-op outside the scroll region.
func (s *Screen) deleteLines(n int) {
	g := s.grid()
	if g.cursor.Row < g.scrollTop || g.cursor.Row > g.scrollBottom {
		return
	}
	if max := g.scrollBottom - g.cursor.Row + 1; n > max {
		n = max
	}
	for i := g.cursor.Row; i <= g.scrollBottom-n; i++ {
		g.cells[i] = g.cells[i+n]
	}
	for i := g.scrollBottom - n + 1; i <= g.scrollBottom; i++ {
		g.cells[i] = blankRow(g.cols)
	}
}

// insertChars shifts the rest of the row right by n, dropping cells off
// the right edge.
func (s *Screen) insertChars(n int) {
	g := s.grid()
	if g.rows == 0 || g.cursor.Col >= g.cols {
		return
	}
	row := g.cells[g.cursor.Row]
	if max := g.cols - g.cursor.Col; n > max {
		n = max
	}
	for i := g.cols - 1; i >= g.cursor.Col+n; i-- {
		row[i] = row[i-n]
	}
	for i := g.cursor.Col; i < g.cursor.Col+n; i++ {
		row[i] = DefaultCell()
	}
	normalizeRow(row)
}

// deleteChars shifts the rest of the row left by n, filling the right
// edge with blanks.
func (s *Screen) deleteChars(n int) {
	g := s.grid()
	if g.rows == 0 || g.cursor.Col >= g.cols {
		return
	}
	row := g.cells[g.cursor.Row]
	if max := g.cols - g.cursor.Col; n > max {
		n = max
	}
	for i := g.cursor.Col; i < g.cols-n; i++ {
		row[i] = row[i+n]
	}
	for i := g.cols - n; i < g.cols; i++ {
		row[i] = DefaultCell()
	}
	normalizeRow(row)
}

// eraseChars blanks n cells at the cursor without shifting.
func (s *Screen) eraseChars(n int) {
	g := s.grid()
	if g.rows == 0 || g.cursor.Col >= g.cols {
		return
	}
	row := g.cells[g.cursor.Row]
	for i := g.cursor.Col; i < g.cursor.Col+n && i < g.cols; i++ {
		row[i] = DefaultCell()
	}
	normalizeRow(row)
}

// normalizeRow repairs wide pairs after in-place row edits: a placeholder
// without a leading wide cell, or a wide cell without its placeholder, is
// reset to blank.
func normalizeRow(row []Cell) {
	for i := range row {
		switch {
		case row[i].Placeholder:
			if i == 0 || !row[i-1].Wide {
				row[i] = DefaultCell()
			}
		case row[i].Wide:
			if i+1 >= len(row) || !row[i+1].Placeholder {
				row[i] = DefaultCell()
			}
		}
	}
}
