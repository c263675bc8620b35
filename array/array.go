package array

import (
	"errors"
	"fmt"
)

// ErrInvalidShape reports an image whose rank is neither 2 (monochrome)
// nor 3 (multi-channel). Operations that cannot make sense of such a
// shape wrap this error with the observed rank.
var ErrInvalidShape = errors.New("invalid image shape")

// Dtype names the nominal sample type of an Image.
type Dtype string

// The two sample types sxcv works with. Pixel data is Uint8; convolution
// masks are Int so they can carry negative coefficients.
const (
	Uint8 Dtype = "uint8"
	Int   Dtype = "int"
)

// Image is a dense row-major sample array with an explicit shape.
//
// Shape has two elements (rows, cols) for a monochrome image or three
// (rows, cols, channels) for a multi-channel one. For rank-3 images the
// samples are channel-interleaved: the sample at (y, x, c) lives at
// Pix[(y*cols+x)*channels+c].
//
// The helpers in this module only ever read an Image once it has been
// handed to them; mutation is the owner's business.
type Image struct {
	Pix   []int
	Shape []int
	Dtype Dtype
}

// New returns a zero-filled monochrome image of the given size.
func New(rows, cols int, dtype Dtype) *Image {
	return &Image{
		Pix:   make([]int, rows*cols),
		Shape: []int{rows, cols},
		Dtype: dtype,
	}
}

// NewMultiChannel returns a zero-filled multi-channel image of the given size.
func NewMultiChannel(rows, cols, channels int, dtype Dtype) *Image {
	return &Image{
		Pix:   make([]int, rows*cols*channels),
		Shape: []int{rows, cols, channels},
		Dtype: dtype,
	}
}

// FromMatrix builds a monochrome image from a rectangular slice of rows.
// All rows must have the length of the first; this is how the fixed
// fixtures and masks are written down in source form.
func FromMatrix(m [][]int, dtype Dtype) *Image {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	im := New(rows, cols, dtype)
	for y, row := range m {
		copy(im.Pix[y*cols:(y+1)*cols], row)
	}
	return im
}

// Rank returns the number of axes in the image's shape.
func (im *Image) Rank() int { return len(im.Shape) }

// Rows returns the vertical extent of the image.
func (im *Image) Rows() int { return im.Shape[0] }

// Cols returns the horizontal extent of the image.
func (im *Image) Cols() int { return im.Shape[1] }

// Channels returns the number of channels, or 0 for a monochrome image.
func (im *Image) Channels() int {
	if len(im.Shape) < 3 {
		return 0
	}
	return im.Shape[2]
}

// At returns the sample at (y, x) of a monochrome image.
func (im *Image) At(y, x int) int {
	return im.Pix[y*im.Cols()+x]
}

// AtChan returns the sample at (y, x, c) of a multi-channel image.
func (im *Image) AtChan(y, x, c int) int {
	return im.Pix[(y*im.Cols()+x)*im.Channels()+c]
}

// Set stores a sample at (y, x) of a monochrome image.
func (im *Image) Set(y, x, v int) {
	im.Pix[y*im.Cols()+x] = v
}

// SetChan stores a sample at (y, x, c) of a multi-channel image.
func (im *Image) SetChan(y, x, c, v int) {
	im.Pix[(y*im.Cols()+x)*im.Channels()+c] = v
}

// String gives a terse summary, handy when an Image turns up in %v output.
func (im *Image) String() string {
	return fmt.Sprintf("Image(shape=%v, dtype=%s)", im.Shape, im.Dtype)
}
