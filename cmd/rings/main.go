package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/esimov/edgeart"
	"github.com/esimov/edgeart/rings"
	"github.com/esimov/edgeart/utils"
	"golang.org/x/image/draw"
)

var (
	destination = flag.String("out", "rings.gif", "Destination file: gif for an animation, png|jpg|svg|pdf for a single frame")
	size        = flag.Int("size", 700, "Canvas size in pixels")
	frames      = flag.Int("frames", 120, "Number of animation frames")
	frame       = flag.Int("frame", 0, "Frame rendered into a still image")
	delay       = flag.Int("delay", 4, "Delay between animation frames in 100ths of a second")
	iterations  = flag.Int("iterations", 10, "Rings per group")
	blur        = flag.Float64("blur", 0.2, "Blurred share of the ring radius")
	speed       = flag.Float64("speed", 0.02, "Phase advance per frame")
	discs       = flag.Bool("discs", false, "Draw a pulsing disc at the center")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *size < 1 || *frames < 1 || *iterations < 1 {
		log.Fatalf("%sSize, frames and iterations must be positive%s", utils.ErrorColor, utils.DefaultColor)
	}
	opts := rings.Options{
		Iterations: *iterations,
		Blur:       *blur,
		Speed:      *speed,
		Discs:      *discs,
	}

	s := utils.NewSpinner("Rendering rings...", time.Millisecond*100)
	s.Start()
	start := time.Now()

	var err error
	ext := strings.ToLower(filepath.Ext(*destination))
	if ext == ".gif" {
		err = writeAnimation(*destination, opts)
	} else {
		err = writeFrame(*destination, strings.TrimPrefix(ext, "."), opts)
	}
	if err != nil {
		s.StopMsg = fmt.Sprintf("Rendering rings... %sfailed ✗%s\n", utils.ErrorColor, utils.DefaultColor)
		s.Stop()
		log.Fatalf("%s%v%s", utils.ErrorColor, err, utils.DefaultColor)
	}
	s.StopMsg = fmt.Sprintf("Rendering rings... %sfinished ✓%s\n", utils.SuccessColor, utils.DefaultColor)
	s.Stop()
	log.Printf("Generated in: %s%s%s", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
}

func writeFrame(out, format string, opts rings.Options) error {
	surface, err := edgeart.NewSurface(format, *size, *size, "rings")
	if err != nil {
		return err
	}
	rings.Frame(surface, *frame, opts)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := surface.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAnimation(out string, opts rings.Options) error {
	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = color.Gray{Y: uint8(i)}
	}

	anim := &gif.GIF{}
	for i := 0; i < *frames; i++ {
		r := edgeart.NewRaster(*size, *size)
		rings.Frame(r, i, opts)

		img := r.Image()
		pm := image.NewPaletted(img.Bounds(), palette)
		draw.FloydSteinberg.Draw(pm, img.Bounds(), img, image.Point{})

		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, *delay)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
