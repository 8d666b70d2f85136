package pixfmt

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

// Decode converts the pixel starting at buf[off] to non-premultiplied RGBA.
//
// Exactly f.BytesPerPixel() bytes are read. The caller guarantees that
// off+f.BytesPerPixel() <= len(buf). Decode panics if f is not a pixel
// encoding.
func (f Format) Decode(buf []byte, off int) color.NRGBA {
	switch f {
	case RGBA8888:
		return color.NRGBA{R: buf[off+2], G: buf[off+1], B: buf[off], A: buf[off+3]}

	case RGB888:
		return color.NRGBA{R: buf[off+2], G: buf[off+1], B: buf[off], A: 0xff}

	case RGB565:
		v := binary.LittleEndian.Uint16(buf[off : off+2])
		return color.NRGBA{
			R: Expand5(uint8(v>>11) & 0x1f),
			G: Expand6(uint8(v>>5) & 0x3f),
			B: Expand5(uint8(v) & 0x1f),
			A: 0xff,
		}

	case ARGB1555:
		v := binary.LittleEndian.Uint16(buf[off : off+2])
		var a uint8
		if v&0x8000 != 0 {
			a = 0xff
		}
		return color.NRGBA{
			R: Expand5(uint8(v>>10) & 0x1f),
			G: Expand5(uint8(v>>5) & 0x1f),
			B: Expand5(uint8(v) & 0x1f),
			A: a,
		}

	case Auto:
	}
	panic(fmt.Sprintf("pixfmt: decode with %v", f))
}

// Expand5 widens a 5-bit channel value to 8 bits by bit replication.
func Expand5(v uint8) uint8 {
	return v<<3 | v>>2
}

// Expand6 widens a 6-bit channel value to 8 bits by bit replication.
func Expand6(v uint8) uint8 {
	return v<<2 | v>>4
}
