// Package array provides the image representation used throughout sxcv.
//
// An Image is a dense, row-major array of integer samples with an explicit
// shape: rank 2 for monochrome images and rank 3 for multi-channel images
// with the channel as the last axis. This mirrors the layout students meet
// in the lecture notes, so a pixel is addressed as (row, column) or
// (row, column, channel) rather than the (x, y) convention of the standard
// library's image package.
//
// # Sample Types
//
// Samples are stored as Go ints regardless of their nominal type; the Dtype
// field records whether the array holds uint8 pixel data or signed integers
// (used for convolution masks, which need negative coefficients). The Dtype
// affects how the array is described and converted, not how it is stored.
//
// # Interoperability
//
// FromGoImage and Image.GoImage convert between this representation and the
// standard image.Image types, which is how sxcv hands data to the wrapped
// processing libraries. Open and Save delegate file handling to
// github.com/disintegration/imaging, so any format it understands works here.
package array
