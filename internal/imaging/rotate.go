package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Rotation is a clockwise rotation angle in degrees.
type Rotation int

// Supported rotations.
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// ParseRotation validates a rotation angle given in degrees.
func ParseRotation(degrees int) (Rotation, error) {
	switch r := Rotation(degrees); r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return r, nil
	}
	return Rotate0, fmt.Errorf("invalid rotation angle '%d': must be 0, 90, 180, or 270", degrees)
}

// String returns the angle with a degree sign, e.g. "90°".
func (r Rotation) String() string {
	return fmt.Sprintf("%d°", int(r))
}

// SwapsDimensions reports whether r exchanges width and height.
func (r Rotation) SwapsDimensions() bool {
	return r == Rotate90 || r == Rotate270
}

// Rotate returns img rotated clockwise by r.
//
// Parameters:
//   - img: Source image. It is never modified.
//   - r: Clockwise rotation. Rotate0 returns img itself.
//
// Returns:
//   - image.Image: The rotated image. For Rotate90 and Rotate270 the result is
//     img's height wide and img's width tall; otherwise the size is unchanged.
//     Rotated results are *image.NRGBA anchored at (0,0).
//   - error: Non-nil if r is not one of the four supported angles.
func Rotate(img image.Image, r Rotation) (image.Image, error) {
	switch r {
	case Rotate0:
		return img, nil
	case Rotate90:
		// imaging's quarter turns are counter-clockwise.
		return imaging.Rotate270(img), nil
	case Rotate180:
		return imaging.Rotate180(img), nil
	case Rotate270:
		return imaging.Rotate90(img), nil
	}
	return nil, fmt.Errorf("invalid rotation angle '%d'", int(r))
}
