// Package pixfmt decodes packed framebuffer pixels into 8-bit RGBA.
//
// Four encodings are supported, all stored little-endian as the Linux
// framebuffer lays them out in memory:
//
//	Format     Bytes  Memory order / word layout
//	RGBA8888   4      B, G, R, A   (0xAARRGGBB word)
//	RGB888     3      B, G, R
//	RGB565     2      RRRRRGGG GGGBBBBB (word bits 15..0)
//	ARGB1555   2      ARRRRRGG GGGBBBBB (word bits 15..0)
//
// # Channel Expansion
//
// Channels narrower than 8 bits are widened by bit replication: the value is
// shifted to the top of the byte and its most significant bits are copied
// into the vacated low bits. A 5-bit value v becomes (v<<3)|(v>>2) and a 6-bit
// value becomes (v<<2)|(v>>4). Zero maps to 0 and the channel maximum maps to
// 255, and the mapping is monotonic in between.
//
// # Format Values
//
// The zero Format is not a pixel encoding; it stands for "not specified" and
// is what Parse returns for "auto". Decoding with it panics. Callers obtain a
// concrete Format from name parsing or from depth resolution before decoding.
package pixfmt
