package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAltScreenModes(t *testing.T) {
	for _, mode := range []string{"47", "1047", "1049"} {
		t.Run(mode, func(t *testing.T) {
			scr := New(40, 10)
			scr.Process([]byte("primary text"))

			scr.Process([]byte("\x1b[?" + mode + "h"))
			require.True(t, scr.AltScreen())
			require.Equal(t, "", scr.RowString(0), "alternate screen starts blank")

			scr.Process([]byte("full screen app"))
			require.Equal(t, "full screen app", scr.RowString(0))

			scr.Process([]byte("\x1b[?" + mode + "l"))
			require.False(t, scr.AltScreen())
			require.Equal(t, "primary text", scr.RowString(0))
		})
	}
}

func TestAltScreenReentryClears(t *testing.T) {
	scr := New(40, 10)
	scr.Process([]byte("\x1b[?1049hleftover\x1b[?1049l"))

	scr.Process([]byte("\x1b[?1049h"))
	require.Equal(t, "", scr.RowString(0))
}

func TestAltScreenRestoresPrimaryCursor(t *testing.T) {
	scr := New(40, 10)
	scr.Process([]byte("\x1b[3;7H"))

	scr.Process([]byte("\x1b[?1049h\x1b[9;1Hdeep"))
	row, col := scr.CursorPosition()
	require.Equal(t, 8, row)

	scr.Process([]byte("\x1b[?1049l"))
	row, col = scr.CursorPosition()
	require.Equal(t, 2, row)
	require.Equal(t, 6, col)
}

func TestEnteringAltScreenTwiceIsIdempotent(t *testing.T) {
	scr := New(40, 10)
	scr.Process([]byte("\x1b[?1049hkeep\x1b[?1049h"))

	require.True(t, scr.AltScreen())
	require.Equal(t, "keep", scr.RowString(0))
}

func TestCursorVisibilityMode(t *testing.T) {
	scr := New(40, 10)
	require.True(t, scr.CursorVisible())

	scr.Process([]byte("\x1b[?25l"))
	require.False(t, scr.CursorVisible())

	scr.Process([]byte("\x1b[?25h"))
	require.True(t, scr.CursorVisible())
}

func TestOriginModePositionsRelativeToRegion(t *testing.T) {
	scr := New(40, 12)
	scr.Process([]byte("\x1b[4;9r\x1b[?6h"))

	row, _ := scr.CursorPosition()
	require.Equal(t, 3, row, "origin mode homes to the region top")

	scr.Process([]byte("\x1b[2;5H"))
	row, col := scr.CursorPosition()
	require.Equal(t, 4, row)
	require.Equal(t, 4, col)

	// Clamped to the region bottom, not the screen bottom.
	scr.Process([]byte("\x1b[99;1H"))
	row, _ = scr.CursorPosition()
	require.Equal(t, 8, row)

	scr.Process([]byte("\x1b[?6l"))
	row, _ = scr.CursorPosition()
	require.Equal(t, 0, row)
}

func TestNonPrivateModesIgnored(t *testing.T) {
	scr := New(40, 10)
	scr.Process([]byte("\x1b[4h\x1b[20htext"))

	require.Equal(t, "text", scr.RowString(0))
}

func TestRISResetsStateButKeepsScrollbackAndTitle(t *testing.T) {
	scr := New(20, 3)
	scr.Process([]byte("\x1b]0;kept\x07a\r\nb\r\nc\r\nd"))
	require.Greater(t, scr.ScrollbackLen(), 0)
	sbLen := scr.ScrollbackLen()

	scr.Process([]byte("\x1b[1m\x1b[?25l\x1b[2;3r\x1bc"))

	require.Equal(t, "", scr.RowString(0))
	row, col := scr.CursorPosition()
	require.Equal(t, 0, row)
	require.Equal(t, 0, col)
	require.True(t, scr.CursorVisible())
	require.Equal(t, sbLen, scr.ScrollbackLen())
	require.Equal(t, "kept", scr.Title())

	g := scr.grid()
	require.Equal(t, Style{}, g.style)
	require.Equal(t, 0, g.scrollTop)
	require.Equal(t, 2, g.scrollBottom)
}

func TestSaveRestoreCursorWithStyle(t *testing.T) {
	scr := New(40, 10)
	scr.Process([]byte("\x1b[2;4H\x1b[1;35m\x1b7\x1b[8;8H\x1b[0m\x1b8X"))

	x, ok := scr.CellAt(1, 3)
	require.True(t, ok)
	require.Equal(t, 'X', x.Rune)
	require.True(t, x.Style.Bold, "DECRC must restore the saved attributes")
	require.Equal(t, NamedColor(Magenta), x.Style.Fg)
}

func TestReverseIndexScrollsAtRegionTop(t *testing.T) {
	scr := New(20, 5)
	scr.Process([]byte("\x1b[2;4r\x1b[2;1Htop line\x1bM"))

	require.Equal(t, "", scr.RowString(1), "region top should be a fresh blank row")
	require.Equal(t, "top line", scr.RowString(2))
}
