package capture

import (
	"fmt"
	"image"

	"github.com/cobaltgit/fbscreenshot/internal/pixfmt"
)

// Assemble decodes a whole frame from buf.
//
// The pixel at (x, y) is read at byte offset y*RowBytes + x*BytesPerPixel,
// so padding at the end of each stored row is skipped. Rows are emitted in
// buffer order, top row first. The result is g.Width x g.Height.
//
// Assemble fails when g is invalid, when f does not belong to
// g.BitsPerPixel, or when buf is shorter than g.BufferSize(f); it never reads
// past that size.
func Assemble(g Geometry, f pixfmt.Format, buf []byte) (*image.NRGBA, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !f.Valid() || f.BitsPerPixel() != g.BitsPerPixel {
		return nil, fmt.Errorf("%w: %s for %d bits per pixel", ErrInvalidFormat, f, g.BitsPerPixel)
	}
	need, err := g.BufferSize(f)
	if err != nil {
		return nil, err
	}
	if len(buf) < need {
		return nil, fmt.Errorf("%w: have %d bytes, frame needs %d", ErrShortRead, len(buf), need)
	}

	w, h := int(g.Width), int(g.Height)
	bpp := f.BytesPerPixel()
	rowBytes := g.RowBytes(f)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := y * rowBytes
		dst := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			c := f.Decode(buf, src+x*bpp)
			d := dst[x*4 : x*4+4 : x*4+4]
			d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
		}
	}
	return img, nil
}
