package capture

import "errors"

var (
	// ErrSourceOpen means the input device or dump could not be opened.
	ErrSourceOpen = errors.New("cannot open source")
	// ErrDeviceQuery means the framebuffer geometry query failed or
	// returned an unusable geometry.
	ErrDeviceQuery = errors.New("framebuffer query failed")
	// ErrMissingParameter means a raw dump lacks width, height, bit depth
	// or, at 16 bits per pixel, a pixel format.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrUnsupportedDepth means the bit depth is not 16, 24 or 32.
	ErrUnsupportedDepth = errors.New("unsupported bit depth")
	// ErrInvalidFormat means the pixel format does not fit the bit depth.
	ErrInvalidFormat = errors.New("invalid pixel format")
	// ErrShortRead means the source holds fewer bytes than the geometry needs.
	ErrShortRead = errors.New("short read")
	// ErrOutputExtension means the output path does not end in .png.
	ErrOutputExtension = errors.New("output path must end in .png")
	// ErrEncode means the PNG could not be encoded or written.
	ErrEncode = errors.New("cannot save png")
)
