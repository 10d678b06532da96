package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexaflex/gfx/render"
)

// Config defines program configuration.
type Config struct {
	Mesh       string        // Path to an OBJ mesh; empty draws the builtin cube.
	Texture    string        // Path to an image file; empty uses a generated checkerboard.
	Width      int           // Window width in pixels.
	Height     int           // Window height in pixels.
	Rows       int           // Instance grid dimension; Rows*Rows instances are drawn.
	Spacing    float64       // Distance between neighbouring instances.
	Fullscreen bool          // Run in fullscreen?
	Filter     render.Filter // Texture filtering mode.
	Wrap       render.Wrap   // Texture addressing mode.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Width = 1280
	c.Height = 720
	c.Rows = 10
	c.Spacing = 3

	flag.Usage = func() {
		fmt.Printf("%s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Mesh, "mesh", c.Mesh, "OBJ file to draw. Defaults to a builtin cube.")
	flag.StringVar(&c.Texture, "texture", c.Texture, "Image file to texture the mesh with. Defaults to a checkerboard.")
	flag.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	flag.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	flag.IntVar(&c.Rows, "rows", c.Rows, "Draw rows*rows instances of the mesh.")
	flag.Float64Var(&c.Spacing, "spacing", c.Spacing, "Distance between neighbouring instances.")
	flag.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the display in fullscreen or windowed mode.")

	filter := flag.String("filter", "nearest", "Texture filtering: nearest or linear.")
	wrap := flag.String("wrap", "clamp", "Texture addressing: clamp, repeat or mirror.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	switch *filter {
	case "nearest":
		c.Filter = render.Nearest
	case "linear":
		c.Filter = render.Linear
	default:
		fmt.Printf("unknown filter mode %q\n", *filter)
		flag.Usage()
		os.Exit(1)
	}

	switch *wrap {
	case "clamp":
		c.Wrap = render.ClampToEdge
	case "repeat":
		c.Wrap = render.Repeat
	case "mirror":
		c.Wrap = render.MirrorRepeat
	default:
		fmt.Printf("unknown addressing mode %q\n", *wrap)
		flag.Usage()
		os.Exit(1)
	}

	if c.Rows < 1 || c.Width < 1 || c.Height < 1 || c.Spacing <= 0 {
		flag.Usage()
		os.Exit(1)
	}

	return &c
}
