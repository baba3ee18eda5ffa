/*
Package edgeart turns images into line drawings by connecting the edges of
a posterized copy of the source.

The pipeline quantizes every pixel to a few gray levels, keeps the pixels
whose level differs from their top, left or top-left neighbor, thins them
out, orders them as a greedy nearest neighbor tour and strokes the tour
with one of several drawing functions: points, curves, pipes, lines or
bezier arcs.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ edgeart --help

Using Go interfaces the API can expose the result as raster, SVG or PDF.

Example to render an image and output the result as PNG:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/edgeart"
	)

	func main() {
		p := edgeart.DefaultProcessor()
		p.DrawFn = edgeart.Curve

		s, err := edgeart.NewSurface("png", 800, 600, "")
		if err != nil {
			log.Fatal(err)
		}
		if _, err := p.Draw(srcImg, s, edgeart.NewPRNG(72)); err != nil {
			log.Fatalf("Error on drawing process: %s", err.Error())
		}
		s.Encode(os.Stdout)
	}
*/
package edgeart
