package vtscreen

// ColorType discriminates the color variants carried by a Cell.
type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorNamed             // one of the 16 base palette entries, Value 0-15
	ColorIndexed           // 256-color palette, Value 0-255
	ColorRGB               // true color, Value 0xRRGGBB
)

// Color represents a terminal color.
type Color struct {
	Type  ColorType
	Value uint32
}

// The 16 named palette entries, usable as the Value of a ColorNamed color.
const (
	Black uint32 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// NamedColor returns one of the 16 base palette colors.
func NamedColor(n uint32) Color {
	return Color{Type: ColorNamed, Value: n & 0xf}
}

// IndexedColor returns a 256-color palette color.
func IndexedColor(n uint8) Color {
	return Color{Type: ColorIndexed, Value: uint32(n)}
}

// RGBColor returns a 24-bit true color.
func RGBColor(r, g, b uint8) Color {
	return Color{Type: ColorRGB, Value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// Style holds the graphic attributes applied to printed cells.
type Style struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Blink     bool
	Reverse   bool
	Hidden    bool
	Strike    bool
}

// Cell is a single character cell of the grid.
//
// A wide glyph occupies two cells: the cell holding the rune has Wide set,
// and the following cell has Placeholder set with the same Style. Placeholder
// cells carry no rune of their own; consumers skip them when assembling text
// and recover the glyph by scanning left.
type Cell struct {
	Rune        rune
	Combining   string // zero-width runes merged into this cell
	Style       Style
	Wide        bool
	Placeholder bool
}

// DefaultCell returns a blank cell with default attributes.
func DefaultCell() Cell {
	return Cell{Rune: ' '}
}

// blankRow creates a row of width blank cells.
func blankRow(width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = DefaultCell()
	}
	return row
}

// copyRow deep copies a row.
func copyRow(src []Cell) []Cell {
	dst := make([]Cell, len(src))
	copy(dst, src)
	return dst
}

// LineString concatenates the text of a row, skipping placeholder cells.
// Trailing blank cells are trimmed.
func LineString(row []Cell) string {
	end := len(row)
	for end > 0 {
		c := row[end-1]
		if c.Rune != ' ' || c.Placeholder || c.Combining != "" {
			break
		}
		end--
	}
	var b []byte
	for _, c := range row[:end] {
		if c.Placeholder {
			continue
		}
		b = append(b, string(c.Rune)...)
		b = append(b, c.Combining...)
	}
	return string(b)
}
