// Package coloransi provides a small ANSI color helper for decorating
// terminal output and logger names.
package coloransi

import (
	"fmt"
	"strings"
)

// ColorCode represents ANSI color codes and RGB colors as a 32-bit
// integer. The lower 8 bits carry the ANSI code, the upper 24 bits an
// RGB value.
type ColorCode uint32

const (
	Black   ColorCode = 30
	Red     ColorCode = 31
	Green   ColorCode = 32
	Yellow  ColorCode = 33
	Blue    ColorCode = 34
	Magenta ColorCode = 35
	Cyan    ColorCode = 36
	White   ColorCode = 37

	// For bright colors, add 60
	BrightBlack ColorCode = Black + 60
	BrightWhite ColorCode = White + 60

	// Background codes are the foreground code plus 10
	BackgroundOffset ColorCode = 10

	// RGB color mask
	RGBMask ColorCode = 0xFFFFFF00
)

// CreateRGB packs an RGB triple into a ColorCode.
func CreateRGB(r, g, b uint8) ColorCode {
	return ColorCode(r)<<24 | ColorCode(g)<<16 | ColorCode(b)<<8
}

var (
	ColorOrange ColorCode = CreateRGB(255, 140, 0)
	ColorPurple ColorCode = CreateRGB(128, 0, 128)
	ColorTeal   ColorCode = CreateRGB(0, 128, 128)
)

// IsRGB checks if the ColorCode represents an RGB color
func (c ColorCode) IsRGB() bool {
	return c&RGBMask != 0
}

func (c ColorCode) foreground() string {
	if c.IsRGB() {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", uint8(c>>24), uint8(c>>16), uint8(c>>8))
	}
	return fmt.Sprintf("\x1b[%dm", uint32(c))
}

func (c ColorCode) background() string {
	if c.IsRGB() {
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", uint8(c>>24), uint8(c>>16), uint8(c>>8))
	}
	return fmt.Sprintf("\x1b[%dm", uint32(c+BackgroundOffset))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// Color wraps the arguments in foreground and background escape codes.
func Color(fg, bg ColorCode, v ...interface{}) string {
	var sb strings.Builder
	sb.WriteString(fg.foreground())
	sb.WriteString(bg.background())
	fmt.Fprint(&sb, v...)
	sb.WriteString(Reset())
	return sb.String()
}

// Foreground wraps the arguments in a foreground escape code only.
func Foreground(fg ColorCode, v ...interface{}) string {
	var sb strings.Builder
	sb.WriteString(fg.foreground())
	fmt.Fprint(&sb, v...)
	sb.WriteString(Reset())
	return sb.String()
}
