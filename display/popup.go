package display

import (
	"fmt"
	"image"
	"time"

	"9fans.net/go/draw"
)

// Surface is a pop-up display window identified by a title. The default
// implementation is a devdraw window; tests substitute fakes.
type Surface interface {
	// Show blits the image into the surface.
	Show(img image.Image) error
	// Wait blocks for delay milliseconds, or until a key is pressed in
	// the surface when delay is zero.
	Wait(delay int) error
	// Release closes the surface and frees its resources.
	Release() error
}

// drawSurface shows images in a window provided by the devdraw server
// from Plan 9 from User Space.
type drawSurface struct {
	disp *draw.Display
	kbd  *draw.Keyboardctl
}

func openDrawSurface(title string) (Surface, error) {
	d, err := draw.Init(nil, "", title, "")
	if err != nil {
		return nil, fmt.Errorf("cannot connect to devdraw: %w", err)
	}
	return &drawSurface{disp: d, kbd: d.InitKeyboard()}, nil
}

func (s *drawSurface) Show(img image.Image) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	win, err := s.disp.AllocImage(draw.Rect(0, 0, w, h), draw.RGB24, false, draw.White)
	if err != nil {
		return fmt.Errorf("cannot allocate window image: %w", err)
	}
	defer win.Free()

	// RGB24 pixel data is stored little-endian, so the byte order within
	// each pixel is blue, green, red.
	buf := make([]byte, 0, w*h*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			buf = append(buf, byte(bl>>8), byte(g>>8), byte(r>>8))
		}
	}
	if _, err := win.Load(draw.Rect(0, 0, w, h), buf); err != nil {
		return fmt.Errorf("cannot load image data: %w", err)
	}

	screen := s.disp.ScreenImage
	target := draw.Rectangle{
		Min: screen.R.Min,
		Max: screen.R.Min.Add(draw.Pt(w, h)),
	}
	screen.Draw(target, win, nil, draw.ZP)
	return s.disp.Flush()
}

func (s *drawSurface) Wait(delay int) error {
	if delay <= 0 {
		<-s.kbd.C
		return nil
	}
	select {
	case <-s.kbd.C:
	case <-time.After(time.Duration(delay) * time.Millisecond):
	}
	return nil
}

func (s *drawSurface) Release() error {
	return s.disp.Close()
}
