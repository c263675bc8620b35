package main

import (
	"fmt"
	"log"
	"os"

	"github.com/essex-vision/sxcv/array"
	"github.com/essex-vision/sxcv/config"
	"github.com/essex-vision/sxcv/display"
	"github.com/essex-vision/sxcv/fixture"
	"github.com/essex-vision/sxcv/hist"
	"github.com/essex-vision/sxcv/inspect"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("sxcv - helper routines for the computer vision labs")
	fmt.Println()
	fmt.Println("Usage: sxcv <command> [image-file]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  describe <file>   Print a one-line description of the image")
	fmt.Println("  examine <file>    Print the image's pixel values as a table")
	fmt.Println("  display <file>    Show the image in a window (or the terminal)")
	fmt.Println("  hist <file>       Plot the image's grey-level histogram")
	fmt.Println("  fixtures          Describe the built-in test images")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v     Print version information")
	fmt.Println("  --help, -h        Print this help message")
	fmt.Println()
	fmt.Printf("Environment variables:\n")
	fmt.Printf("  %s                Keywords: debug, sixel16, sixel256\n", config.EnvVar)
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("sxcv %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		usage()
		return
	case "fixtures":
		for _, f := range []struct {
			name string
			im   *array.Image
		}{
			{"arrowhead", fixture.Arrowhead()},
			{"testimage", fixture.TestImage()},
		} {
			text, err := inspect.Describe(f.im, f.name)
			if err != nil {
				log.Fatalf("describe %s: %v", f.name, err)
			}
			fmt.Println(text)
		}
		return
	}

	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	command, path := os.Args[1], os.Args[2]

	im, err := array.Open(path)
	if err != nil {
		log.Fatalf("%v", err)
	}

	switch command {
	case "describe":
		text, err := inspect.Describe(im, path)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(text)

	case "examine":
		fmt.Print(inspect.Examine(im, &inspect.Region{CenterRow: -1, CenterCol: -1, Title: path}))

	case "display":
		if err := display.Show(im, path, 0, true); err != nil {
			log.Fatalf("%v", err)
		}

	case "hist":
		x, y, err := hist.Compute(im)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := hist.Show(nil, x, y, path, nil); err != nil {
			log.Fatalf("%v", err)
		}

	default:
		fmt.Printf("sxcv: unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}
}
