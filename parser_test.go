package vtscreen

import (
	"testing"
	"unicode/utf8"
)

func TestUTF8SplitAcrossChunks(t *testing.T) {
	scr := New(10, 2)
	raw := []byte("你") // 3 bytes

	scr.Process(raw[:1])
	scr.Process(raw[1:2])
	scr.Process(raw[2:])

	if got := scr.RowString(0); got != "你" {
		t.Errorf("RowString(0) = %q, want %q", got, "你")
	}
}

func TestEscapeSplitAcrossChunks(t *testing.T) {
	scr := New(20, 5)
	scr.Process([]byte("\x1b"))
	scr.Process([]byte("["))
	scr.Process([]byte("3;"))
	scr.Process([]byte("4H"))

	row, col := scr.CursorPosition()
	if row != 2 || col != 3 {
		t.Errorf("Cursor = (%d,%d), want (2,3)", row, col)
	}
}

func TestInvalidUTF8ContinuationRecovers(t *testing.T) {
	scr := New(20, 2)
	scr.Process([]byte{0xE4, 'A'}) // 3-byte lead followed by ASCII

	if got := scr.RowString(0); got != "A" {
		t.Errorf("RowString(0) = %q, want %q", got, "A")
	}
}

func TestEscInterruptsCSI(t *testing.T) {
	scr := New(20, 5)
	// The second ESC abandons the first sequence; the cursor motion that
	// follows must still execute.
	scr.Process([]byte("\x1b[3\x1b[2;2Hx"))

	row, col := scr.CursorPosition()
	if row != 1 || col != 2 {
		t.Errorf("Cursor = (%d,%d), want (1,2)", row, col)
	}
	if got := scr.RowString(1); got != " x" {
		t.Errorf("RowString(1) = %q, want %q", got, " x")
	}
}

func TestUnknownCSIFinalIsAbsorbed(t *testing.T) {
	scr := New(20, 2)
	scr.Process([]byte("\x1b[1;2zafter"))

	if got := scr.RowString(0); got != "after" {
		t.Errorf("RowString(0) = %q, want %q", got, "after")
	}
}

func TestDCSIsConsumedWithoutEffect(t *testing.T) {
	scr := New(20, 2)
	scr.Process([]byte("\x1bPq#0;1;2~~\x1b\\visible"))

	if got := scr.RowString(0); got != "visible" {
		t.Errorf("RowString(0) = %q, want %q", got, "visible")
	}
}

func TestCharsetDesignationIgnored(t *testing.T) {
	scr := New(20, 2)
	scr.Process([]byte("\x1b(B\x1b)0text"))

	if got := scr.RowString(0); got != "text" {
		t.Errorf("Charset designations should be skipped, got %q", got)
	}
}

func TestOscWithoutSeparatorIgnored(t *testing.T) {
	scr := New(20, 2)
	scr.Process([]byte("\x1b]garbage\x07ok"))

	if scr.Title() != "" {
		t.Errorf("Malformed OSC should not set the title, got %q", scr.Title())
	}
	if got := scr.RowString(0); got != "ok" {
		t.Errorf("RowString(0) = %q, want %q", got, "ok")
	}
}

func TestControlBytesInsideCSIDropped(t *testing.T) {
	scr := New(20, 2)
	scr.Process([]byte("\x1b[\x002;3Hx"))

	row, col := scr.CursorPosition()
	if row != 1 || col != 3 {
		t.Errorf("Cursor = (%d,%d), want (1,3)", row, col)
	}
}

func TestParamFloodIsBounded(t *testing.T) {
	scr := New(20, 2)
	seq := []byte("\x1b[")
	for i := 0; i < 1000; i++ {
		seq = append(seq, '1', ';')
	}
	seq = append(seq, 'm')
	scr.Process(seq)

	scr.Process([]byte("still alive"))
	if got := scr.RowString(0); got != "still alive" {
		t.Errorf("RowString(0) = %q, want %q", got, "still alive")
	}
}

func FuzzParserNeverPanics(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("\x1b[31mred\x1b[0m"))
	f.Add([]byte("\x1b[?1049h\x1b[H\x1b[2J"))
	f.Add([]byte("\x1b]0;title\x07"))
	f.Add([]byte("\x1b[5;15r\x1b[100;100H你"))
	f.Fuzz(func(t *testing.T, data []byte) {
		scr := New(80, 24)
		scr.Process(data)

		row, col := scr.CursorPosition()
		if row < 0 || row >= 24 || col < 0 || col > 80 {
			t.Fatalf("cursor out of bounds: (%d,%d)", row, col)
		}
		for i, line := range scr.VisibleLines() {
			if len(line) != 80 {
				t.Fatalf("row %d has %d cells, want 80", i, len(line))
			}
		}
	})
}

func FuzzRenderIsValidUTF8(f *testing.F) {
	f.Add([]byte("line1\nline2"))
	f.Add([]byte("\x1b[1mBold\x1b[0m"))
	f.Add([]byte("\x1b]2;title\x1b\\"))
	f.Fuzz(func(t *testing.T, data []byte) {
		scr := New(40, 12)
		scr.Process(data)
		if !utf8.ValidString(scr.Render()) {
			t.Fatalf("render output is not valid utf-8")
		}
	})
}
