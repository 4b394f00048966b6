// Package vtscreen is a headless ANSI/VT100/xterm terminal emulation
// engine: raw output bytes in, a cell grid with scrollback out. It does no
// rendering, input translation or process management; those belong to the
// caller.
//
// The engine is single-threaded by design. Process fully applies a chunk
// before returning, and Process/Resize must not interleave concurrently on
// the same Screen; callers that read from a background goroutine own that
// synchronization.
package vtscreen

import (
	"github.com/charmbracelet/log"
)

// MaxScrollback is the default cap on archived rows.
const MaxScrollback = 10000

// Screen composes the parser, the primary and alternate grids and the
// scrollback store into the single object collaborators talk to.
type Screen struct {
	primary *grid
	alt     *grid // nil until the first alternate-screen switch

	altActive     bool
	originMode    bool
	cursorVisible bool

	scrollback    [][]Cell // oldest first
	maxScrollback int

	title  string
	parser *parser
	logger *log.Logger
}

// Option configures a Screen at construction time.
type Option func(*Screen)

// WithMaxScrollback overrides the scrollback cap. Zero disables history.
func WithMaxScrollback(n int) Option {
	return func(s *Screen) {
		s.maxScrollback = n
	}
}

// WithLogger enables debug reporting of ignored and unknown sequences.
func WithLogger(l *log.Logger) Option {
	return func(s *Screen) {
		s.logger = l
	}
}

// New creates a Screen with the given dimensions.
func New(cols, rows int, opts ...Option) *Screen {
	s := &Screen{
		primary:       newGrid(cols, rows),
		cursorVisible: true,
		maxScrollback: MaxScrollback,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = newParser(s)
	return s
}

// grid returns the active grid.
func (s *Screen) grid() *grid {
	if s.altActive {
		return s.alt
	}
	return s.primary
}

// Process feeds raw terminal output to the engine. The chunk is fully
// consumed before returning; sequences may be split across calls at any
// byte boundary. Process never fails: malformed input leaves the engine
// consistent and continuable.
func (s *Screen) Process(data []byte) {
	s.parser.parse(data)
}

// Resize changes the grid dimensions, preserving as much content as fits.
// Rows are padded or truncated on the right and added or removed at the
// bottom; nothing is re-wrapped. Degenerate dimensions (zero rows or
// columns) are adopted as-is and simply render empty.
func (s *Screen) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.primary.resize(cols, rows)
	if s.alt != nil {
		s.alt.resize(cols, rows)
	}
}

// Cols returns the current column count.
func (s *Screen) Cols() int {
	return s.primary.cols
}

// Rows returns the current row count.
func (s *Screen) Rows() int {
	return s.primary.rows
}

// CursorPosition returns the active cursor as 0-indexed (row, col). Col can
// equal Cols after a print into the last column, until the next character
// wraps.
func (s *Screen) CursorPosition() (row, col int) {
	c := s.grid().cursor
	return c.Row, c.Col
}

// CursorVisible reports the DECTCEM cursor-visibility state.
func (s *Screen) CursorVisible() bool {
	return s.cursorVisible
}

// Title returns the last OSC-set window title, empty if never set.
func (s *Screen) Title() string {
	return s.title
}

// AltScreen reports whether the alternate grid is active.
func (s *Screen) AltScreen() bool {
	return s.altActive
}

// ScrollbackLen returns the number of archived rows.
func (s *Screen) ScrollbackLen() int {
	return len(s.scrollback)
}

// AllLines returns scrollback (oldest first) followed by the visible rows
// of the active grid. The view is assembled per call; rows are shared with
// the engine and must be treated as read-only snapshots that are invalid
// after the next Process or Resize.
func (s *Screen) AllLines() [][]Cell {
	g := s.grid()
	lines := make([][]Cell, 0, len(s.scrollback)+g.rows)
	lines = append(lines, s.scrollback...)
	lines = append(lines, g.cells...)
	return lines
}

// VisibleLines returns the rows of the active grid, top to bottom, under
// the same read-only contract as AllLines.
func (s *Screen) VisibleLines() [][]Cell {
	g := s.grid()
	lines := make([][]Cell, 0, g.rows)
	return append(lines, g.cells...)
}

// CellAt returns the cell at a visible position, reporting false when the
// position is out of bounds.
func (s *Screen) CellAt(row, col int) (Cell, bool) {
	g := s.grid()
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// RowString returns the text of a visible row with placeholder cells
// skipped and trailing blanks trimmed. Out-of-range rows yield "".
func (s *Screen) RowString(row int) string {
	g := s.grid()
	if row < 0 || row >= g.rows {
		return ""
	}
	return LineString(g.cells[row])
}

func (s *Screen) debug(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}
