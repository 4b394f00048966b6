package vtscreen

import (
	"strconv"
	"strings"
)

// Render returns the visible grid as newline-joined text with ANSI styling
// reapplied, suitable for dumping into another terminal.
func (s *Screen) Render() string {
	g := s.grid()
	var b strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderRow(&b, row)
	}
	return b.String()
}

// RenderHistory is Render over scrollback plus the visible grid.
func (s *Screen) RenderHistory() string {
	var b strings.Builder
	for i, row := range s.AllLines() {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderRow(&b, row)
	}
	return b.String()
}

func renderRow(b *strings.Builder, row []Cell) {
	// Trailing unstyled blanks are noise in a dump.
	end := len(row)
	for end > 0 {
		c := row[end-1]
		if c.Rune != ' ' || c.Style != (Style{}) || c.Placeholder || c.Combining != "" {
			break
		}
		end--
	}

	var cur Style
	styled := false
	for _, c := range row[:end] {
		if c.Placeholder {
			continue
		}
		if c.Style != cur {
			b.WriteString(styleSGR(c.Style))
			cur = c.Style
			styled = true
		}
		b.WriteRune(c.Rune)
		b.WriteString(c.Combining)
	}
	if styled {
		b.WriteString("\x1b[0m")
	}
}

// styleSGR builds the full SGR sequence selecting a style, reset first so
// no prior state leaks through.
func styleSGR(s Style) string {
	var b strings.Builder
	b.Grow(32)
	b.WriteString("\x1b[0")
	if s.Bold {
		b.WriteString(";1")
	}
	if s.Dim {
		b.WriteString(";2")
	}
	if s.Italic {
		b.WriteString(";3")
	}
	if s.Underline {
		b.WriteString(";4")
	}
	if s.Blink {
		b.WriteString(";5")
	}
	if s.Reverse {
		b.WriteString(";7")
	}
	if s.Hidden {
		b.WriteString(";8")
	}
	if s.Strike {
		b.WriteString(";9")
	}
	writeColorSGR(&b, s.Fg, true)
	writeColorSGR(&b, s.Bg, false)
	b.WriteByte('m')
	return b.String()
}

func writeColorSGR(b *strings.Builder, c Color, fg bool) {
	switch c.Type {
	case ColorNamed:
		n := c.Value
		var code uint32
		switch {
		case fg && n < 8:
			code = 30 + n
		case fg:
			code = 90 + n - 8
		case n < 8:
			code = 40 + n
		default:
			code = 100 + n - 8
		}
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(code), 10))
	case ColorIndexed:
		if fg {
			b.WriteString(";38;5;")
		} else {
			b.WriteString(";48;5;")
		}
		b.WriteString(strconv.FormatUint(uint64(c.Value), 10))
	case ColorRGB:
		if fg {
			b.WriteString(";38;2;")
		} else {
			b.WriteString(";48;2;")
		}
		b.WriteString(strconv.FormatUint(uint64(c.Value>>16&0xff), 10))
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(c.Value>>8&0xff), 10))
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(c.Value&0xff), 10))
	}
}
