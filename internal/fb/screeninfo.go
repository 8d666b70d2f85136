// Package fb reads geometry and pixel layout from Linux framebuffer devices
// (/dev/fbN) and exposes the device as a plain byte reader.
package fb

// FBIOGET_VSCREENINFO is the ioctl request number returning VarScreeninfo.
const FBIOGET_VSCREENINFO = 0x4600

// Bitfield mirrors struct fb_bitfield: the position of one color channel
// inside a packed pixel.
type Bitfield struct {
	Offset    uint32 // beginning of bitfield
	Length    uint32 // length of bitfield
	Msb_right uint32 // != 0 : Most significant bit is right
}

// VarScreeninfo mirrors struct fb_var_screeninfo from <linux/fb.h>. The layout
// must match the kernel's byte for byte because the ioctl writes the whole
// struct.
type VarScreeninfo struct {
	Xres, Yres,
	Xres_virtual, Yres_virtual,
	Xoffset, Yoffset,
	Bits_per_pixel, Grayscale uint32
	Red, Green, Blue, Transp Bitfield
	Nonstd, Activate,
	Height, Width,
	Accel_flags, Pixclock,
	Left_margin, Right_margin, Upper_margin, Lower_margin,
	Hsync_len, Vsync_len, Sync,
	Vmode, Rotate, Colorspace uint32
	Reserved [4]uint32
}
