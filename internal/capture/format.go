package capture

import (
	"fmt"

	"github.com/cobaltgit/fbscreenshot/internal/pixfmt"
)

// ResolveFormat picks the pixel encoding for a frame of the given depth.
//
// 32 and 24 bits map to RGBA8888 and RGB888. At 16 bits a device is
// ARGB1555 when it reports 5/5/5 color channels and RGB565 otherwise; a raw
// dump has no layout information, so hint must name RGB565 or ARGB1555.
// For raw dumps a hint that contradicts the depth is rejected. Devices ignore
// hint.
func ResolveFormat(kind SourceKind, bitsPerPixel uint32, layout ChannelLayout, hint pixfmt.Format) (pixfmt.Format, error) {
	var f pixfmt.Format
	switch bitsPerPixel {
	case 32:
		f = pixfmt.RGBA8888
	case 24:
		f = pixfmt.RGB888
	case 16:
		if kind == SourceDevice {
			return deviceFormat16(layout), nil
		}
		return rawFormat16(hint)
	default:
		return pixfmt.Auto, fmt.Errorf("%w: %d bits per pixel, must be 16, 24 or 32", ErrUnsupportedDepth, bitsPerPixel)
	}

	if kind == SourceRawFile && hint != pixfmt.Auto && hint != f {
		return pixfmt.Auto, fmt.Errorf("%w: %s does not match %d bits per pixel", ErrInvalidFormat, hint, bitsPerPixel)
	}
	return f, nil
}

func deviceFormat16(layout ChannelLayout) pixfmt.Format {
	if layout.RedBits == 5 && layout.GreenBits == 5 && layout.BlueBits == 5 {
		return pixfmt.ARGB1555
	}
	return pixfmt.RGB565
}

func rawFormat16(hint pixfmt.Format) (pixfmt.Format, error) {
	switch hint {
	case pixfmt.RGB565, pixfmt.ARGB1555:
		return hint, nil
	case pixfmt.Auto:
		return pixfmt.Auto, fmt.Errorf("%w: pixel format is required for raw 16-bit dumps", ErrMissingParameter)
	case pixfmt.RGB888, pixfmt.RGBA8888:
	}
	return pixfmt.Auto, fmt.Errorf("%w: %s is not a 16-bit format, must be either rgb565 or argb1555", ErrInvalidFormat, hint)
}
