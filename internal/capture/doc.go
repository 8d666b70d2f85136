// Package capture turns a framebuffer device or a raw pixel dump into a PNG
// screenshot.
//
// A capture runs strictly in sequence:
//
//	Opening -> ResolvingGeometry -> ResolvingFormat -> Reading -> Decoding -> Rotating -> Saving -> Done
//
// Any step may fail, which ends the capture; nothing is retried and no partial
// output is written.
//
// # Sources
//
// Paths starting with /dev/fb are framebuffer devices. Their geometry, depth
// and channel layout come from the kernel (FBIOGET_VSCREENINFO). Any other
// path is a raw dump with no metadata, so width, height and bit depth must be
// supplied, plus the pixel format for 16-bit dumps.
//
// # Geometry
//
// Rows in the source may be wider than the visible image. Geometry.StrideWidth
// is the stored row width in pixels and every row offset is computed from it;
// Geometry.Width only bounds the pixels that are decoded. For raw dumps the
// two are equal.
//
// # Errors
//
// Every failure wraps one of the Err* sentinels so callers can classify it
// with errors.Is, and carries the source or output path in its message.
package capture
