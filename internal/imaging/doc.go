// Package imaging provides the post-decode image operations of a capture:
// rotation, PNG output, and inspection of the written file.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Rotation
//
// Rotation angles are clockwise, in degrees, and limited to 0, 90, 180 and
// 270. Quarter turns swap the width and height of the image; 0 and 180 keep
// them. Rotation is lossless: every source pixel appears exactly once in the
// result.
//
// # Output
//
// Images are written as PNG only. Callers check the destination path with
// IsPNGPath before doing any expensive work so that a wrong extension is
// reported without touching the source.
//
// # Error Handling
//
// Functions return errors for:
//   - Rotation angles other than 0, 90, 180 or 270
//   - File I/O errors while creating or reading the output file
//   - Encoding errors during PNG output
package imaging
