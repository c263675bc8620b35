package inspect

import (
	"fmt"
	"strings"

	"github.com/essex-vision/sxcv/array"
)

// Region selects the neighbourhood Examine prints. The zero value is not
// useful on its own; leave fields at their documented defaults instead:
// a negative centre selects the image's own centre along that axis, and a
// non-positive extent selects the image's full extent.
type Region struct {
	CenterRow int    // middle row of the region; negative = image centre
	CenterCol int    // middle column of the region; negative = image centre
	Rows      int    // number of rows to print; <= 0 = full extent
	Cols      int    // number of columns to print; <= 0 = full extent
	Title     string // optional heading printed above the region
}

// clip computes the half-open window [lo, hi) of the requested extent
// centred on at, shrunk to fit inside [0, extent). The realised size never
// exceeds the image and is never negative, however wild the request.
func clip(at, want, extent int) (lo, hi int) {
	lo = at - want/2
	if lo < 0 {
		lo = 0
	}
	hi = lo + want
	if hi > extent {
		hi = extent
	}
	return lo, hi
}

// Examine renders a rectangular neighbourhood of an image as an aligned
// text table, ready to print.
//
// The output starts with the title line (if a title was given) and a
// summary of the clipped region, then a column-index header, a rule, and
// one line of right-aligned pixel values per image row. Multi-channel
// images produce one sub-line per channel for each row; the row index
// appears on the first channel only and continuation lines are marked
// with a bare "|".
//
// Every value is printed in a fixed 4-character field so columns stay
// aligned even when a mask holds negative values:
//
//	[3 x 3 region of 3 x 3-pixel monochrome image at (1,1)]:
//	          0   1   2
//	       ------------
//	    0|    1   1   1
//	    1|    1  -1   1
//	    2|    1   1   1
//
// A nil region selects the defaults: the full image, centred on itself.
// The requested window is silently shrunk wherever it overruns the image.
// The caller is responsible for passing a rank-2 or rank-3 image; use
// Describe to validate shapes first.
func Examine(im *array.Image, reg *Region) string {
	if reg == nil {
		reg = &Region{CenterRow: -1, CenterCol: -1}
	}

	ny, nx, nc := im.Rows(), im.Cols(), im.Channels()

	aty, atx := reg.CenterRow, reg.CenterCol
	if aty < 0 {
		aty = ny / 2
	}
	if atx < 0 {
		atx = nx / 2
	}
	wantRows, wantCols := reg.Rows, reg.Cols
	if wantRows <= 0 {
		wantRows = ny
	}
	if wantCols <= 0 {
		wantCols = nx
	}

	ylo, yhi := clip(aty, wantRows, ny)
	xlo, xhi := clip(atx, wantCols, nx)

	var text strings.Builder
	if reg.Title != "" {
		text.WriteString(reg.Title)
		text.WriteByte('\n')
	}
	channels := "monochrome"
	if nc > 0 {
		channels = fmt.Sprintf("%d-channel", nc)
	}
	fmt.Fprintf(&text, "[%d x %d region of %d x %d-pixel %s image at (%d,%d)]:\n",
		yhi-ylo, xhi-xlo, ny, nx, channels, aty, atx)

	// Column header and a rule the width of its body.
	const indent = "       "
	var header strings.Builder
	for x := xlo; x < xhi; x++ {
		fmt.Fprintf(&header, "%4d", x)
	}
	text.WriteString(indent + header.String() + "\n")
	text.WriteString(indent + strings.Repeat("-", header.Len()) + "\n")

	for y := ylo; y < yhi; y++ {
		fmt.Fprintf(&text, "%5d| ", y)
		if nc == 0 {
			for x := xlo; x < xhi; x++ {
				fmt.Fprintf(&text, "%4d", im.At(y, x))
			}
			text.WriteByte('\n')
		} else {
			for c := 0; c < nc; c++ {
				if c > 0 {
					text.WriteString("     | ")
				}
				for x := xlo; x < xhi; x++ {
					fmt.Fprintf(&text, "%4d", im.AtChan(y, x, c))
				}
				text.WriteByte('\n')
			}
		}
	}

	return text.String()
}
