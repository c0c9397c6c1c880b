// Package main draws an exported drawing state to a png image without a browser.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/jacobpatterson1549/circle-canvas/drawing"
	"github.com/jacobpatterson1549/circle-canvas/ui/canvas"
	"github.com/jacobpatterson1549/circle-canvas/ui/canvas/raster"
)

// main renders the drawing state and exits with a failure code if it cannot.
func main() {
	log := log.New(os.Stderr, "render: ", 0)
	f, err := newRenderFlags(os.Args, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if err := f.run(os.Stdin, os.Stdout, log); err != nil {
		log.Fatal(err)
	}
}

// renderFlags are the options of the command.
type renderFlags struct {
	in         string
	out        string
	width      int
	height     int
	background string
}

const (
	defaultWidth      = 800
	defaultHeight     = 600
	defaultBackground = "white"
	// stdStream is the file name that means the standard input or output.
	stdStream = "-"
)

// newRenderFlags parses the command line arguments.
func newRenderFlags(osArgs []string, output io.Writer) (*renderFlags, error) {
	if len(osArgs) == 0 {
		osArgs = []string{"render"}
	}
	var f renderFlags
	fs := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Draws the shapes of a drawing state json file as a png image\n")
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}
	fs.StringVar(&f.in, "in", stdStream, "The drawing state json file to read, or - for standard input.")
	fs.StringVar(&f.out, "out", stdStream, "The png file to write, or - for standard output.")
	fs.IntVar(&f.width, "width", defaultWidth, "The width of the image in pixels.")
	fs.IntVar(&f.height, "height", defaultHeight, "The height of the image in pixels.")
	fs.StringVar(&f.background, "background", defaultBackground, "The css color behind the shapes, such as white, #fff, or transparent.")
	if err := fs.Parse(osArgs[1:]); err != nil {
		return nil, err
	}
	if f.width <= 0 || f.height <= 0 {
		return nil, fmt.Errorf("positive width and height required, got %vx%v", f.width, f.height)
	}
	return &f, nil
}

// run reads the drawing state, renders it, and writes the image.
func (f renderFlags) run(stdin io.Reader, stdout io.Writer, log *log.Logger) error {
	text, err := f.read(stdin)
	if err != nil {
		return err
	}
	state, err := drawing.ParseState(text)
	if err != nil {
		return fmt.Errorf("reading %v: %w", f.in, err)
	}
	img, err := f.render(*state)
	if err != nil {
		return err
	}
	if err := f.write(stdout, img); err != nil {
		return err
	}
	if f.out != stdStream {
		log.Printf("wrote %v shapes to %v", state.Len(), f.out)
	}
	return nil
}

// render draws the state onto the background.
func (f renderFlags) render(state drawing.State) (*image.RGBA, error) {
	background, err := raster.ParseColor(f.background)
	if err != nil {
		return nil, fmt.Errorf("reading background: %w", err)
	}
	layout := canvas.Rect{
		Width:  float64(f.width),
		Height: float64(f.height),
	}
	surface := raster.NewSurface(layout)
	renderer := canvas.NewRenderer(surface)
	if err := renderer.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}
	if err := renderer.Frame(state); err != nil {
		return nil, fmt.Errorf("drawing shapes: %w", err)
	}
	shapes := surface.Image()
	img := image.NewRGBA(shapes.Bounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(img, img.Bounds(), shapes, image.Point{}, draw.Over)
	return img, nil
}

// read reads the input file, or stdin.
func (f renderFlags) read(stdin io.Reader) ([]byte, error) {
	if f.in == stdStream {
		text, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return text, nil
	}
	text, err := os.ReadFile(f.in)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return text, nil
}

// write encodes the image to the output file, or stdout.
func (f renderFlags) write(stdout io.Writer, img image.Image) error {
	if f.out == stdStream {
		if err := png.Encode(stdout, img); err != nil {
			return fmt.Errorf("writing image: %w", err)
		}
		return nil
	}
	file, err := os.Create(f.out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("writing image: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
