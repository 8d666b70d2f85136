package imaging

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format decoder for Describe
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// IsPNGPath reports whether path ends in the ".png" extension, ignoring case.
func IsPNGPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

// Save encodes img as PNG and writes it to path, replacing any existing file.
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save png: %w", err)
	}
	return nil
}

// ImageInfo describes an image file on disk.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the format name reported by the registered decoder, e.g. "png".
	Format string

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64
}

// Describe reads the header of the image at path and returns its dimensions,
// format and file size. Pixel data is not decoded.
func Describe(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
