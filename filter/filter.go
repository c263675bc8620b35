// Package filter wraps the spatial-filtering operations of the underlying
// processing libraries so they accept and return sxcv arrays. The
// algorithms themselves belong to those libraries; these wrappers only
// marshal data and validate shapes, which is the point — students call
// real library code, with the fiddly conversions done once here.
package filter

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/essex-vision/sxcv/array"
)

// Convolve convolves an image with a mask, typically one from
// fixture.CreateMask. The mask must be rank 2; anything else yields an
// error wrapping array.ErrInvalidShape. When normalize is true the mask
// coefficients are scaled to sum to one, which keeps blur masks from
// brightening the image; pass false to apply the coefficients as given
// (what you want for a Laplacian).
//
// The result has the shape of the input: monochrome in, monochrome out.
func Convolve(im, mask *array.Image, normalize bool) (*array.Image, error) {
	if mask.Rank() != 2 {
		return nil, fmt.Errorf("%w: convolution mask has rank %d, want 2", array.ErrInvalidShape, mask.Rank())
	}

	k := convolution.NewKernel(mask.Cols(), mask.Rows())
	for y := 0; y < mask.Rows(); y++ {
		for x := 0; x < mask.Cols(); x++ {
			k.Matrix[y*mask.Cols()+x] = float64(mask.At(y, x))
		}
	}

	var m convolution.Matrix = k
	if normalize {
		m = k.Normalized()
	}

	out := convolution.Convolve(im.GoImage(), m, &convolution.Options{KeepAlpha: true})
	return shaped(out, im), nil
}

// Blur box-blurs an image with the given radius in pixels.
func Blur(im *array.Image, radius float64) *array.Image {
	return shaped(blur.Box(im.GoImage(), radius), im)
}

// Threshold binarises an image: samples at or above level become 255,
// the rest 0. The result is always monochrome.
func Threshold(im *array.Image, level uint8) *array.Image {
	return array.FromGoImage(segment.Threshold(im.GoImage(), level))
}

// Grayscale converts a multi-channel image to monochrome using the usual
// luminance weighting. Monochrome input comes back unchanged (a copy).
func Grayscale(im *array.Image) *array.Image {
	return mono(imaging.Grayscale(im.GoImage()))
}

// shaped converts a processed Go image back into an array with the same
// rank as the original input.
func shaped(img image.Image, like *array.Image) *array.Image {
	if like.Rank() == 2 {
		return mono(img)
	}
	return array.FromGoImage(img)
}

// mono builds a rank-2 array from a Go image that is known to be
// grey-valued, reading the red channel.
func mono(img image.Image) *array.Image {
	b := img.Bounds()
	out := array.New(b.Dy(), b.Dx(), array.Uint8)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Set(y, x, int(r>>8))
		}
	}
	return out
}
