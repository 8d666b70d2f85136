package capture

import (
	"fmt"

	"github.com/cobaltgit/fbscreenshot/internal/fb"
	"github.com/cobaltgit/fbscreenshot/internal/pixfmt"
)

// Geometry is the size and depth of a frame as stored in the source.
type Geometry struct {
	Width        uint32 // visible pixels per row
	Height       uint32 // rows
	StrideWidth  uint32 // stored pixels per row, >= Width
	BitsPerPixel uint32
}

// Validate checks that both dimensions are positive and that rows are at
// least as wide as the visible width.
func (g Geometry) Validate() error {
	if g.Width == 0 || g.Height == 0 {
		return fmt.Errorf("empty resolution %dx%d", g.Width, g.Height)
	}
	if g.StrideWidth < g.Width {
		return fmt.Errorf("virtual width %d smaller than visible width %d", g.StrideWidth, g.Width)
	}
	return nil
}

// RowBytes is the number of bytes between the starts of consecutive rows.
func (g Geometry) RowBytes(f pixfmt.Format) int {
	return int(g.StrideWidth) * f.BytesPerPixel()
}

// MaxFrameBytes bounds the source bytes of one frame. An 8K screen at 32
// bits per pixel needs about 127 MiB.
const MaxFrameBytes = 256 << 20

// BufferSize is the number of source bytes one frame occupies. Frames larger
// than MaxFrameBytes fail with ErrShortRead.
func (g Geometry) BufferSize(f pixfmt.Format) (int, error) {
	row := uint64(g.StrideWidth) * uint64(f.BytesPerPixel())
	if row > MaxFrameBytes || row*uint64(g.Height) > MaxFrameBytes {
		return 0, fmt.Errorf("%w: %dx%d at %d bits per pixel exceeds the %d byte frame limit",
			ErrShortRead, g.StrideWidth, g.Height, g.BitsPerPixel, MaxFrameBytes)
	}
	return int(row * uint64(g.Height)), nil
}

// ChannelLayout holds the color channel widths a device reports. It only
// matters for telling the 16-bit encodings apart.
type ChannelLayout struct {
	RedBits, GreenBits, BlueBits uint8
}

// RawParams are the caller-supplied parameters of a raw dump. Zero values
// mean "not supplied". Devices ignore them.
type RawParams struct {
	Width    uint32
	Height   uint32
	BitDepth uint32
	Format   pixfmt.Format
}

// ScreenInfoQuerier reports a device's variable screen information.
// *fb.Device implements it.
type ScreenInfoQuerier interface {
	VarScreeninfo() (fb.VarScreeninfo, error)
}

// DeviceGeometry queries a framebuffer device and converts the report into
// a Geometry and ChannelLayout.
func DeviceGeometry(q ScreenInfoQuerier) (Geometry, ChannelLayout, error) {
	vinfo, err := q.VarScreeninfo()
	if err != nil {
		return Geometry{}, ChannelLayout{}, fmt.Errorf("%w: %w", ErrDeviceQuery, err)
	}

	g := Geometry{
		Width:        vinfo.Xres,
		Height:       vinfo.Yres,
		StrideWidth:  vinfo.Xres_virtual,
		BitsPerPixel: vinfo.Bits_per_pixel,
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, ChannelLayout{}, fmt.Errorf("%w: %w", ErrDeviceQuery, err)
	}

	layout := ChannelLayout{
		RedBits:   uint8(vinfo.Red.Length),
		GreenBits: uint8(vinfo.Green.Length),
		BlueBits:  uint8(vinfo.Blue.Length),
	}
	return g, layout, nil
}

// RawGeometry builds the Geometry of a raw dump from caller parameters. Raw
// dumps have no row padding.
func RawGeometry(p RawParams) (Geometry, error) {
	if p.Width == 0 {
		return Geometry{}, fmt.Errorf("%w: width is required for raw dumps", ErrMissingParameter)
	}
	if p.Height == 0 {
		return Geometry{}, fmt.Errorf("%w: height is required for raw dumps", ErrMissingParameter)
	}
	if p.BitDepth == 0 {
		return Geometry{}, fmt.Errorf("%w: bit depth is required for raw dumps", ErrMissingParameter)
	}

	return Geometry{
		Width:        p.Width,
		Height:       p.Height,
		StrideWidth:  p.Width,
		BitsPerPixel: p.BitDepth,
	}, nil
}
