package display

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/essex-vision/sxcv/array"
	"github.com/essex-vision/sxcv/config"
)

// Action is what the dispatcher decided to do with an image.
type Action int

const (
	// Skip shows nothing; debug displays resolve to this when the debug
	// flag is off.
	Skip Action = iota
	// Popup shows the image in a conventional window.
	Popup
	// Sixel renders the image into the terminal via img2sixel.
	Sixel
)

// plan is a resolved action plus its parameter. Levels is only meaningful
// for Sixel.
type plan struct {
	action Action
	levels int
}

// route picks the display path from the environment keywords and OS,
// ignoring the debug flag. Windows is excluded from the sixel paths
// because no stock Windows terminal can show them.
func route(cfg *config.Config) plan {
	windows := cfg.GOOS() == "windows"
	switch {
	case cfg.Has(config.KeywordSixel16) && !windows:
		return plan{action: Sixel, levels: 16}
	case cfg.Has(config.KeywordSixel256) && !windows:
		return plan{action: Sixel, levels: 256}
	default:
		return plan{action: Popup}
	}
}

// resolve is the full dispatch policy: the debug flag gates everything,
// then route chooses between the terminal and the window.
func resolve(cfg *config.Config) plan {
	if !cfg.Debugging() {
		return plan{action: Skip}
	}
	return route(cfg)
}

// Displayer dispatches images to the right display path for its Config.
//
// The zero value is not usable; construct with New. The exported fields
// may be adjusted before first use, mainly by tests: SixelCommand and
// TempDir redirect the sixel path, Stdout captures terminal output, and
// OpenSurface substitutes the window implementation.
type Displayer struct {
	// SixelCommand is the external image-to-sixel converter to invoke.
	SixelCommand string
	// TempDir is where sixel temporaries are created; empty means the
	// system default.
	TempDir string
	// Stdout receives titles and sixel output; defaults to os.Stdout.
	Stdout io.Writer
	// OpenSurface opens a window for the pop-up path.
	OpenSurface func(title string) (Surface, error)

	cfg      *config.Config
	surfaces map[string]Surface
}

// New returns a Displayer governed by the given Config (nil means the
// process-wide default configuration).
func New(cfg *config.Config) *Displayer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Displayer{
		SixelCommand: "img2sixel",
		Stdout:       os.Stdout,
		OpenSurface:  openDrawSurface,
		cfg:          cfg,
		surfaces:     make(map[string]Surface),
	}
}

// DDisplay displays an image while debugging and does nothing otherwise.
//
// With debugging on, the SXCV keywords pick the path: sixel16 or sixel256
// (on a non-Windows host) render into the terminal at that many colour
// levels, anything else opens a pop-up window. delay and destroy are only
// meaningful on the window path and have the meaning documented on
// Display.
func (d *Displayer) DDisplay(im *array.Image, title string, delay int, destroy bool) error {
	p := resolve(d.cfg)
	if p.action == Skip {
		return nil
	}
	return d.dispatch(p, im, title, delay, destroy)
}

// Show displays an image unconditionally, still honouring the sixel
// keywords so terminal users see terminal output. It is the path used for
// deliberate (non-debug) displays such as histogram plots.
func (d *Displayer) Show(im *array.Image, title string, delay int, destroy bool) error {
	return d.dispatch(route(d.cfg), im, title, delay, destroy)
}

func (d *Displayer) dispatch(p plan, im *array.Image, title string, delay int, destroy bool) error {
	if p.action == Sixel {
		return d.sixel(im, title, p.levels)
	}
	return d.Display(im, title, delay, destroy)
}

// Display shows an image in a pop-up window.
//
// The window is identified by title; an empty title defaults to the
// program's own invocation name. A window is reused across calls with the
// same title until a call passes destroy=true, which releases it after
// showing. delay is how long to leave the image up in milliseconds; zero
// blocks until a key is pressed in the window.
func (d *Displayer) Display(im *array.Image, title string, delay int, destroy bool) error {
	if title == "" {
		title = filepath.Base(os.Args[0])
	}

	s, ok := d.surfaces[title]
	if !ok {
		var err error
		s, err = d.OpenSurface(title)
		if err != nil {
			return fmt.Errorf("cannot open display surface %q: %w", title, err)
		}
		d.surfaces[title] = s
	}

	if err := s.Show(displayImage(im)); err != nil {
		return fmt.Errorf("cannot show image in %q: %w", title, err)
	}
	if err := s.Wait(delay); err != nil {
		return err
	}
	if destroy {
		delete(d.surfaces, title)
		return s.Release()
	}
	return nil
}

// displayImage converts the array for output, scaling small images up
// with nearest-neighbour interpolation so lab fixtures a few pixels
// across are actually visible.
func displayImage(im *array.Image) image.Image {
	src := im.GoImage()
	b := src.Bounds()
	longest := b.Dx()
	if b.Dy() > longest {
		longest = b.Dy()
	}
	if longest >= minDisplayEdge || longest == 0 {
		return src
	}
	factor := (minDisplayEdge + longest - 1) / longest
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// minDisplayEdge is the smallest longest-edge, in pixels, an image is
// displayed at. Kept modest so upscaled fixtures still show their pixel
// structure without flooding the terminal.
const minDisplayEdge = 128

// std is the package-level Displayer behind the convenience functions,
// governed by the process-wide configuration.
var std = New(nil)

// DDisplay displays an image via the default Displayer when debugging.
func DDisplay(im *array.Image, title string, delay int, destroy bool) error {
	return std.DDisplay(im, title, delay, destroy)
}

// Display shows an image in a pop-up window via the default Displayer.
func Display(im *array.Image, title string, delay int, destroy bool) error {
	return std.Display(im, title, delay, destroy)
}

// Show displays an image unconditionally via the default Displayer.
func Show(im *array.Image, title string, delay int, destroy bool) error {
	return std.Show(im, title, delay, destroy)
}
