package vtscreen

// executeSGR interprets the accumulated parameters of a CSI m sequence,
// mutating the style applied to subsequently printed cells. Unknown codes
// are skipped; a truncated extended-color introducer leaves the color
// unchanged and scanning continues with the remaining parameters.
func (p *parser) executeSGR() {
	style := &p.scr.grid().style
	if len(p.params) == 0 {
		*style = Style{}
		return
	}

	for i := 0; i < len(p.params); i++ {
		switch param := p.params[i]; param {
		case 0:
			*style = Style{}
		case 1:
			style.Bold = true
		case 2:
			style.Dim = true
		case 3:
			style.Italic = true
		case 4:
			style.Underline = true
		case 5, 6:
			style.Blink = true
		case 7:
			style.Reverse = true
		case 8:
			style.Hidden = true
		case 9:
			style.Strike = true
		case 21:
			style.Bold = false
		case 22:
			style.Bold = false
			style.Dim = false
		case 23:
			style.Italic = false
		case 24:
			style.Underline = false
		case 25:
			style.Blink = false
		case 27:
			style.Reverse = false
		case 28:
			style.Hidden = false
		case 29:
			style.Strike = false
		case 30, 31, 32, 33, 34, 35, 36, 37:
			style.Fg = NamedColor(uint32(param - 30))
		case 38:
			i = p.extendedColor(i, &style.Fg)
		case 39:
			style.Fg = Color{}
		case 40, 41, 42, 43, 44, 45, 46, 47:
			style.Bg = NamedColor(uint32(param - 40))
		case 48:
			i = p.extendedColor(i, &style.Bg)
		case 49:
			style.Bg = Color{}
		case 90, 91, 92, 93, 94, 95, 96, 97:
			style.Fg = NamedColor(uint32(param - 90 + 8))
		case 100, 101, 102, 103, 104, 105, 106, 107:
			style.Bg = NamedColor(uint32(param - 100 + 8))
		}
	}
}

// extendedColor handles the 38/48 extended-color forms: `5;N` selects a
// palette index, `2;r;g;b` selects a true color. Returns the index of the
// last parameter consumed; on truncation the color is left untouched.
func (p *parser) extendedColor(i int, color *Color) int {
	if i+1 >= len(p.params) {
		return i
	}
	switch p.params[i+1] {
	case 2:
		if i+4 < len(p.params) {
			*color = RGBColor(clamp8(p.params[i+2]), clamp8(p.params[i+3]), clamp8(p.params[i+4]))
			return i + 4
		}
	case 5:
		if i+2 < len(p.params) {
			*color = IndexedColor(clamp8(p.params[i+2]))
			return i + 2
		}
	}
	return i + 1
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
