package display

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/essex-vision/sxcv/array"
)

// sixel renders an image into the terminal via the external sixel
// converter at the given number of colour levels.
//
// The title is printed on its own line first so the image can be found
// when scrolling back through terminal output, and a blank line follows
// the image in case the converter did not terminate its output.
//
// The image goes to the converter through a uniquely-named temporary PNG
// (an uncompressed format the converter is sure to read); the file is
// removed on every exit path, including converter failure. The converter
// itself is fire-and-forget: its stderr is discarded and its exit status
// ignored, so a missing img2sixel degrades to "no picture" rather than an
// error.
func (d *Displayer) sixel(im *array.Image, title string, levels int) error {
	fmt.Fprintf(d.stdout(), "%s:\n", title)

	f, err := os.CreateTemp(d.TempDir, "sxcv-*.png")
	if err != nil {
		return fmt.Errorf("cannot create temporary image file: %w", err)
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)

	if err := imaging.Save(displayImage(im), name); err != nil {
		return fmt.Errorf("cannot write temporary image file: %w", err)
	}

	cmd := exec.Command(d.SixelCommand, "-p", strconv.Itoa(levels), name)
	cmd.Stdout = d.stdout()
	cmd.Stderr = io.Discard
	_ = cmd.Run()

	fmt.Fprintln(d.stdout())
	return nil
}

func (d *Displayer) stdout() io.Writer {
	if d.Stdout != nil {
		return d.Stdout
	}
	return os.Stdout
}
