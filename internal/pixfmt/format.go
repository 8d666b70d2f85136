package pixfmt

import (
	"fmt"
	"strings"
)

// Format identifies a packed pixel encoding.
type Format int

const (
	// Auto means no format was specified. It is not decodable.
	Auto Format = iota
	// RGBA8888 is 32-bit B, G, R, A byte order.
	RGBA8888
	// RGB888 is 24-bit B, G, R byte order.
	RGB888
	// RGB565 is a 16-bit little-endian word with 5-bit red, 6-bit green, 5-bit blue.
	RGB565
	// ARGB1555 is a 16-bit little-endian word with a 1-bit alpha flag and
	// 5 bits per color channel.
	ARGB1555
)

// Formats lists every decodable format.
var Formats = []Format{RGBA8888, RGB888, RGB565, ARGB1555}

// String returns the lower-case name used on the command line.
func (f Format) String() string {
	switch f {
	case Auto:
		return "auto"
	case RGBA8888:
		return "rgba8888"
	case RGB888:
		return "rgb888"
	case RGB565:
		return "rgb565"
	case ARGB1555:
		return "argb1555"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Parse converts a format name to a Format. Matching is case-insensitive and
// an empty name or "auto" yields Auto.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "rgba8888":
		return RGBA8888, nil
	case "rgb888":
		return RGB888, nil
	case "rgb565":
		return RGB565, nil
	case "argb1555":
		return ARGB1555, nil
	}
	return Auto, fmt.Errorf("invalid pixel format %q: must be one of rgb565, argb1555, rgb888 or rgba8888", name)
}

// BytesPerPixel returns the number of bytes one pixel occupies, or 0 for a
// value that is not a pixel encoding.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGBA8888:
		return 4
	case RGB888:
		return 3
	case RGB565, ARGB1555:
		return 2
	case Auto:
		return 0
	}
	return 0
}

// BitsPerPixel returns the color depth the format belongs to.
func (f Format) BitsPerPixel() uint32 {
	return uint32(f.BytesPerPixel() * 8)
}

// Valid reports whether f is a decodable pixel encoding.
func (f Format) Valid() bool {
	return f.BytesPerPixel() != 0
}
