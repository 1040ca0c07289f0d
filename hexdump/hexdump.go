// Package hexdump renders byte slices as classic offset/hex/ASCII dumps
// for terminal inspection of remote memory.
package hexdump

import (
	"fmt"
	"strings"

	"nativecore/coloransi"
)

// Options defines options for customizing the hexdump output
type Options struct {
	// BytesPerLine defines the number of bytes to display per line
	BytesPerLine int

	// ShowASCII determines whether to show the ASCII representation
	ShowASCII bool

	// ShowOffset determines whether to show the offset/address column
	ShowOffset bool

	// StartOffset is the address printed for the first byte
	StartOffset uint64

	// OffsetWidth is the width of the offset column in hex digits
	OffsetWidth int

	// MaxLines is the maximum number of lines to show (0 for no limit)
	MaxLines int

	// Color enables ANSI colored output
	Color bool
}

// DefaultOptions returns the default hexdump options
func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		ShowASCII:    true,
		ShowOffset:   true,
		OffsetWidth:  12,
	}
}

// Hexdump formats data according to opts.
func Hexdump(data []byte, opts Options) string {
	if opts.BytesPerLine <= 0 {
		opts.BytesPerLine = 16
	}
	if opts.OffsetWidth <= 0 {
		opts.OffsetWidth = 12
	}

	var sb strings.Builder
	lines := 0
	for start := 0; start < len(data); start += opts.BytesPerLine {
		if opts.MaxLines > 0 && lines >= opts.MaxLines {
			fmt.Fprintf(&sb, "... %d more bytes\n", len(data)-start)
			break
		}
		end := start + opts.BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		writeLine(&sb, data[start:end], opts, opts.StartOffset+uint64(start))
		lines++
	}
	return sb.String()
}

// HexdumpBasic formats data with default options starting at address
// start.
func HexdumpBasic(data []byte, start uint64) string {
	opts := DefaultOptions()
	opts.StartOffset = start
	return Hexdump(data, opts)
}

func writeLine(sb *strings.Builder, line []byte, opts Options, offset uint64) {
	if opts.ShowOffset {
		text := fmt.Sprintf("%0*x  ", opts.OffsetWidth, offset)
		if opts.Color {
			text = coloransi.Foreground(coloransi.Cyan, text)
		}
		sb.WriteString(text)
	}

	for i := 0; i < opts.BytesPerLine; i++ {
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		if i >= len(line) {
			sb.WriteString("   ")
			continue
		}
		text := fmt.Sprintf("%02x ", line[i])
		if opts.Color && line[i] == 0 {
			text = coloransi.Foreground(coloransi.BrightBlack, text)
		}
		sb.WriteString(text)
	}

	if opts.ShowASCII {
		sb.WriteString(" |")
		for _, b := range line {
			if b >= 0x20 && b < 0x7f {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('|')
	}
	sb.WriteByte('\n')
}
