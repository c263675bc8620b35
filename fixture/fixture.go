// Package fixture provides the fixed-content images and convolution masks
// used in the laboratory exercises. Everything here is deterministic, so
// results computed from these fixtures can be checked against the notes
// byte for byte.
package fixture

import (
	"errors"
	"fmt"

	"github.com/essex-vision/sxcv/array"
)

// ErrUnsupportedName reports a mask name CreateMask does not know.
var ErrUnsupportedName = errors.New("unsupported mask name")

// Arrowhead returns the 10 x 9 monochrome arrowhead image discussed in the
// software chapter of the lecture notes.
func Arrowhead() *array.Image {
	return array.FromMatrix([][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 255, 0, 0, 0, 0},
		{0, 0, 0, 255, 255, 255, 0, 0, 0},
		{0, 0, 255, 255, 255, 255, 255, 0, 0},
		{0, 0, 0, 0, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}, array.Uint8)
}

// TestImage returns a 13 x 10 monochrome image whose pixels all lie in the
// range 10 to 15. Its low contrast makes it a good subject for testing
// histogramming, contrast stretching, thresholding and morphology code.
func TestImage() *array.Image {
	return array.FromMatrix([][]int{
		{10, 12, 11, 11, 12, 11, 10, 12, 11, 12},
		{10, 10, 10, 10, 10, 10, 10, 10, 10, 11},
		{11, 10, 14, 15, 10, 10, 10, 10, 15, 10},
		{10, 10, 14, 15, 10, 10, 10, 10, 10, 10},
		{10, 10, 14, 14, 10, 10, 10, 10, 10, 10},
		{10, 10, 10, 10, 15, 13, 10, 10, 10, 12},
		{12, 10, 10, 10, 14, 13, 10, 15, 10, 10},
		{12, 10, 10, 10, 10, 14, 10, 14, 14, 11},
		{12, 14, 14, 10, 10, 10, 10, 14, 10, 11},
		{10, 13, 14, 10, 10, 10, 15, 15, 10, 12},
		{12, 14, 15, 10, 10, 10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10, 10, 10, 10, 10, 12},
		{11, 10, 11, 10, 12, 12, 11, 11, 10, 11},
	}, array.Uint8)
}

// CreateMask returns one of the commonly-used convolution masks by name:
//
//   - "blur3": 3 x 3, all ones
//   - "blur5": 5 x 5, all ones
//   - "laplacian": 3 x 3, all ones with -1 at the centre
//
// Masks have the Int sample type so the negative centre survives. Any
// other name yields an error wrapping ErrUnsupportedName that carries the
// requested name verbatim.
func CreateMask(name string) (*array.Image, error) {
	switch name {
	case "blur3":
		return array.FromMatrix([][]int{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		}, array.Int), nil

	case "blur5":
		return array.FromMatrix([][]int{
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
		}, array.Int), nil

	case "laplacian":
		return array.FromMatrix([][]int{
			{1, 1, 1},
			{1, -1, 1},
			{1, 1, 1},
		}, array.Int), nil

	default:
		return nil, fmt.Errorf("%w: I don't know how to generate a %q mask", ErrUnsupportedName, name)
	}
}
