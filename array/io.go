package array

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FromGoImage converts a standard library image into an array Image.
//
// Grayscale input (*image.Gray) becomes a rank-2 monochrome array; anything
// else is cloned into NRGBA form and becomes a rank-3 array with three
// channels in R, G, B order. Alpha is dropped: the course material never
// uses it and it would only confuse the channel arithmetic in the labs.
func FromGoImage(img image.Image) *Image {
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
		im := New(b.Dy(), b.Dx(), Uint8)
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				im.Set(y, x, int(g.GrayAt(b.Min.X+x, b.Min.Y+y).Y))
			}
		}
		return im
	}

	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	im := NewMultiChannel(b.Dy(), b.Dx(), 3, Uint8)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			im.SetChan(y, x, 0, int(c.R))
			im.SetChan(y, x, 1, int(c.G))
			im.SetChan(y, x, 2, int(c.B))
		}
	}
	return im
}

// GoImage converts the array back into a standard library image so it can
// be handed to the wrapped processing libraries or written to disk.
//
// Monochrome arrays become *image.Gray; three-channel arrays become
// *image.NRGBA with full alpha. Arrays with any other channel count are
// rendered from their first channel, which keeps display of odd student
// constructions harmless. Samples are clamped to [0, 255], so signed mask
// values display as black where negative.
func (im *Image) GoImage() image.Image {
	rows, cols := im.Rows(), im.Cols()
	if im.Channels() == 3 {
		out := image.NewNRGBA(image.Rect(0, 0, cols, rows))
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out.SetNRGBA(x, y, color.NRGBA{
					R: clamp8(im.AtChan(y, x, 0)),
					G: clamp8(im.AtChan(y, x, 1)),
					B: clamp8(im.AtChan(y, x, 2)),
					A: 255,
				})
			}
		}
		return out
	}

	out := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := 0
			if im.Channels() == 0 {
				v = im.At(y, x)
			} else {
				v = im.AtChan(y, x, 0)
			}
			out.SetGray(x, y, color.Gray{Y: clamp8(v)})
		}
	}
	return out
}

// Open reads an image file and converts it into an array Image. Decoding
// is delegated to the imaging library, so the supported formats are
// whatever it registers (PNG, JPEG, GIF, TIFF, BMP).
func Open(path string) (*Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromGoImage(img), nil
}

// Save writes the image to a file, choosing the format from the file
// extension the way the imaging library does.
func (im *Image) Save(path string) error {
	if err := imaging.Save(im.GoImage(), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
