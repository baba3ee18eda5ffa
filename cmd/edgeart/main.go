package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/edgeart"
	"github.com/esimov/edgeart/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

const helperBanner = `
╔═╗┌┬┐┌─┐┌─┐  ┌─┐┬─┐┌┬┐
║╣  ││││ ┬├┤   ├─┤├┬┘ │
╚═╝─┴┘└─┘└─┘  ┴ ┴┴└─ ┴

Generative line art from image edges.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

// Supported input image files.
var extensions = []string{".jpg", ".jpeg", ".png", ".webp", ".bmp", ".tif", ".tiff"}

var (
	// Flags
	source       = flag.String("in", pipeName, "Source image, directory or URL")
	destination  = flag.String("out", pipeName, "Destination file or directory")
	format       = flag.String("format", "png", "Output format when writing to stdout or a directory: png|jpg|svg|pdf")
	drawFn       = flag.String("draw", edgeart.Pipes.String(), "Drawing function: points|curve|pipes|lines|bezier")
	dropOut      = flag.String("dropout", edgeart.Random.String(), "Drop out strategy: random|sequential")
	scheme       = flag.String("color", edgeart.BlackAndWhite.String(), "Color scheme: black-white|white-black|channels")
	edgeWidth    = flag.Int("width", 200, "Edge detection sample width (20-500)")
	bitDepth     = flag.Int("bits", 2, "Edge detection bit depth (1-7)")
	maxDistance  = flag.Float64("dist", 80, "Maximum connecting distance (0-600)")
	dropOutRate  = flag.Float64("rate", 0.6, "Share of edge points kept (0.001-1)")
	bgAlpha      = flag.Int("bgalpha", 255, "Background alpha (0-255)")
	strokeAlpha  = flag.Int("alpha", 255, "Stroke alpha (0-255)")
	strokeWeight = flag.Float64("stroke", 1, "Stroke weight (0-20)")
	maxSize      = flag.Int("size", 800, "Longest side of the output in pixels")
	noise        = flag.Int("noise", 0, "Noise factor applied to raster output")
	seed         = flag.Int64("seed", 72, "Random seed")
	variants     = flag.Int("variants", 1, "Number of images rendered with consecutive seeds")
	verbose      = flag.Bool("v", false, "Log the duration of every stage")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helperBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	p, err := newProcessor()
	if err != nil {
		log.Fatalf("%sInvalid options: %v%s", utils.ErrorColor, err, utils.DefaultColor)
	}
	if *maxSize < 1 {
		log.Fatalf("%sThe output size must be positive%s", utils.ErrorColor, utils.DefaultColor)
	}
	if err := checkVariants(*destination, *variants); err != nil {
		log.Fatalf("%s%v%s", utils.ErrorColor, err, utils.DefaultColor)
	}

	toProcess, err := collectJobs(*source, *destination)
	if err != nil {
		log.Fatalf("%s%v%s", utils.ErrorColor, err, utils.DefaultColor)
	}

	for in, out := range toProcess {
		s := utils.NewSpinner("Generating edge drawing...", time.Millisecond*100)
		if out != pipeName {
			s.Start()
		}
		start := time.Now()
		stats, err := processImage(p, in, out)
		if err != nil {
			s.StopMsg = fmt.Sprintf("Generating edge drawing... %sfailed ✗%s\n", utils.ErrorColor, utils.DefaultColor)
			s.Stop()
			log.Printf("%sError converting image %s: %v%s", utils.ErrorColor, in, err, utils.DefaultColor)
			continue
		}
		s.StopMsg = fmt.Sprintf("Generating edge drawing... %sfinished ✓%s\n", utils.SuccessColor, utils.DefaultColor)
		s.Stop()

		log.Printf("Generated in: %s%s%s", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
		log.Printf("Drawn %s%d%s points out of %s%d%s edge points",
			utils.SuccessColor, stats.Points, utils.DefaultColor,
			utils.SuccessColor, stats.EdgePoints, utils.DefaultColor,
		)
		if out != pipeName {
			log.Printf("Saved as: %s %s✓%s\n", filepath.Base(out), utils.SuccessColor, utils.DefaultColor)
		}
	}
}

// newProcessor builds the drawing options out of the command line flags.
func newProcessor() (*edgeart.Processor, error) {
	fn, err := edgeart.ParseDrawFn(*drawFn)
	if err != nil {
		return nil, err
	}
	do, err := edgeart.ParseDropOut(*dropOut)
	if err != nil {
		return nil, err
	}
	cs, err := edgeart.ParseColorScheme(*scheme)
	if err != nil {
		return nil, err
	}
	if *bgAlpha < 0 || *bgAlpha > 255 || *strokeAlpha < 0 || *strokeAlpha > 255 {
		return nil, fmt.Errorf("alpha values must be between 0 and 255")
	}

	p := &edgeart.Processor{
		DrawFn:       fn,
		DropOut:      do,
		Scheme:       cs,
		EdgeWidth:    *edgeWidth,
		BitDepth:     *bitDepth,
		MaxDistance:  *maxDistance,
		DropOutRate:  *dropOutRate,
		BgAlpha:      uint8(*bgAlpha),
		StrokeAlpha:  uint8(*strokeAlpha),
		StrokeWeight: *strokeWeight,
		Noise:        *noise,
	}
	if *verbose {
		p.Logger = log.New(os.Stderr, "", 0)
	}
	return p, p.Validate()
}

// checkVariants rejects variant counts the destination cannot hold.
// Only one image can be streamed to stdout.
func checkVariants(destination string, variants int) error {
	if variants < 1 {
		return fmt.Errorf("at least one variant must be rendered")
	}
	if destination == pipeName && variants > 1 {
		return fmt.Errorf("only one variant can be written to stdout, got %d", variants)
	}
	return nil
}

// collectJobs maps every source image to its destination.
func collectJobs(source, destination string) (map[string]string, error) {
	toProcess := make(map[string]string)
	if source == pipeName || utils.IsURL(source) {
		toProcess[source] = destination
		return toProcess, nil
	}

	fs, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	if fs.Mode().IsRegular() {
		toProcess[source] = destination
		return toProcess, nil
	}

	// Read destination file or directory.
	dst, err := os.Stat(destination)
	if err != nil {
		return nil, fmt.Errorf("unable to get dir stats: %w", err)
	}
	if !dst.IsDir() {
		return nil, fmt.Errorf("please specify a directory as destination")
	}

	files, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("unable to read dir: %w", err)
	}
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name()))
		if f.IsDir() || !utils.InSlice(ext, extensions) {
			continue
		}
		name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		toProcess[filepath.Join(source, f.Name())] = filepath.Join(destination, name+"."+*format)
	}
	return toProcess, nil
}

// processImage renders every requested variant of the source image.
func processImage(p *edgeart.Processor, in, out string) (*edgeart.Stats, error) {
	src, err := decodeSource(in)
	if err != nil {
		return nil, err
	}

	outFormat := *format
	if out != pipeName {
		outFormat = strings.TrimPrefix(filepath.Ext(out), ".")
	}

	b := src.Bounds()
	width, height := edgeart.CanvasSize(b.Dx(), b.Dy(), *maxSize)
	session := edgeart.NewSession(*seed)

	var stats *edgeart.Stats
	for i := 0; i < *variants; i++ {
		if i > 0 {
			session.Shuffle()
		}
		surface, err := edgeart.NewSurface(outFormat, width, height, filepath.Base(in))
		if err != nil {
			return nil, err
		}
		if stats, err = session.Render(p, src, surface); err != nil {
			return nil, err
		}

		name := out
		if *variants > 1 && out != pipeName {
			ext := filepath.Ext(out)
			name = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(out, ext), session.Seed(), ext)
		}
		if err := writeSurface(surface, name); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func decodeSource(in string) (image.Image, error) {
	var r io.Reader
	switch {
	case in == pipeName:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("`-` should be used with a pipe for stdin")
		}
		r = os.Stdin
	case utils.IsURL(in):
		f, err := utils.DownloadImage(in)
		if err != nil {
			return nil, err
		}
		defer os.Remove(f.Name())
		defer f.Close()
		r = f
	default:
		f, err := os.Open(in)
		if err != nil {
			return nil, fmt.Errorf("unable to open source file: %w", err)
		}
		defer f.Close()
		r = f
	}

	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode source image: %w", err)
	}
	return src, nil
}

func writeSurface(s edgeart.Surface, out string) error {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("`-` should be used with a pipe for stdout")
		}
		return s.Encode(os.Stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create the output file: %w", err)
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to encode the output image: %w", err)
	}
	return f.Close()
}
