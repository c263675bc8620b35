// Package inspect turns images into text: a one-line description of an
// image's shape and a formatted dump of the pixel values in a region.
// Both return strings rather than printing, so callers decide where the
// text goes.
package inspect

import (
	"fmt"

	"github.com/essex-vision/sxcv/array"
)

// Describe returns a one-sentence description of an image's shape and
// sample type, e.g.
//
//	This image is monochrome of size 10 rows x 9 columns with uint8 pixels.
//
// for a rank-2 image, or "has N channels" for a rank-3 one. An empty title
// defaults to "Image". Images of any other rank yield an error wrapping
// array.ErrInvalidShape that carries the observed rank.
func Describe(im *array.Image, title string) (string, error) {
	if title == "" {
		title = "Image"
	}

	var channels string
	switch im.Rank() {
	case 2:
		channels = "is monochrome"
	case 3:
		channels = fmt.Sprintf("has %d channels", im.Channels())
	default:
		return "", fmt.Errorf("%w: I have a %d-dimensional image", array.ErrInvalidShape, im.Rank())
	}

	return fmt.Sprintf("%s %s of size %d rows x %d columns with %s pixels.",
		title, channels, im.Rows(), im.Cols(), im.Dtype), nil
}
