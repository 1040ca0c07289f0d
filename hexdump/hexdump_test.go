package hexdump

import (
	"strings"
	"testing"
)

func TestHexdumpBasic(t *testing.T) {
	data := []byte("Hello, world!\x00\x01\x02extra")
	out := HexdumpBasic(data, 0x7ff600001000)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "7ff600001000  ") {
		t.Errorf("first line offset wrong: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "7ff600001010  ") {
		t.Errorf("second line offset wrong: %q", lines[1])
	}
	if !strings.Contains(lines[0], "|Hello, world!...|") {
		t.Errorf("ASCII gutter wrong: %q", lines[0])
	}
	if !strings.Contains(lines[0], "48 65 6c 6c 6f ") {
		t.Errorf("hex column wrong: %q", lines[0])
	}
}

func TestHexdumpMaxLines(t *testing.T) {
	data := make([]byte, 64)
	out := Hexdump(data, Options{BytesPerLine: 16, MaxLines: 2, ShowOffset: true})

	if !strings.Contains(out, "... 32 more bytes") {
		t.Errorf("missing truncation marker:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("got %d lines, want 2 data lines plus marker", got)
	}
}

func TestHexdumpPartialLine(t *testing.T) {
	out := Hexdump([]byte{0xde, 0xad}, Options{BytesPerLine: 16, ShowASCII: true})
	if !strings.Contains(out, "de ad ") {
		t.Errorf("hex bytes missing: %q", out)
	}
	if !strings.Contains(out, "|..|") {
		t.Errorf("ASCII gutter should only cover present bytes: %q", out)
	}
}
