// Package display shows images to the student, either in a pop-up window
// or as sixel graphics drawn straight into the terminal.
//
// The central type is Displayer, which decides how (and whether) to show
// an image from three inputs resolved into a single action: the debug
// flag, the SXCV environment keywords, and the host operating system.
// DDisplay is the debug-gated entry point the labs use; when debugging is
// off it does nothing at all, so programs can be littered with display
// calls that cost nothing in normal runs.
//
// # Sixel Rendering
//
// Terminal rendering shells out to the external img2sixel program (from
// libsixel) rather than encoding sixels in-process. The image is written
// to a uniquely-named temporary PNG, img2sixel is run against it with the
// requested colour-level count, and the file is removed again whatever
// happens. If img2sixel is missing or fails, nothing is shown and no
// error is reported: the mechanism is a debugging convenience and is
// deliberately best-effort. Its stderr is discarded for the same reason.
//
// # Pop-up Windows
//
// The conventional path opens a window via 9fans.net/go/draw, which talks
// to the devdraw server from Plan 9 from User Space. Windows are
// identified by title and reused until released. The Surface interface
// abstracts the window so tests can substitute a fake.
package display
