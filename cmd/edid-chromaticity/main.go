/*
NAME
  main.go

DESCRIPTION
  edid-chromaticity renders red/green/blue/white chromaticity coordinates,
  given as command-line flags and validated with value.NewChromaticity, as
  a PNG plot of the primary triangle and the four points. It is a
  diagnostic companion tool, not part of the core encoder.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// edid-chromaticity plots a display's CIE 1931 (x,y) chromaticity
// coordinates (red, green, blue, white) to a PNG file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/edid/value"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "edid-chromaticity:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		rx, ry = flag.Float64("rx", 0.64, "red x"), flag.Float64("ry", 0.33, "red y")
		gx, gy = flag.Float64("gx", 0.30, "green x"), flag.Float64("gy", 0.60, "green y")
		bx, by = flag.Float64("bx", 0.15, "blue x"), flag.Float64("by", 0.06, "blue y")
		wx, wy = flag.Float64("wx", 0.3127, "white x"), flag.Float64("wy", 0.3290, "white y")
		out    = flag.String("out", "chromaticity.png", "output PNG path")
	)
	flag.Parse()

	c, err := value.NewChromaticity(value.Chromaticity{
		RedX: *rx, RedY: *ry,
		GreenX: *gx, GreenY: *gy,
		BlueX: *bx, BlueY: *by,
		WhiteX: *wx, WhiteY: *wy,
	})
	if err != nil {
		return errors.Wrap(err, "invalid chromaticity")
	}

	return plotChromaticity(c, *out)
}

func plotChromaticity(c value.Chromaticity, path string) error {
	p := plot.New()
	p.Title.Text = "CIE 1931 chromaticity (red/green/blue/white)"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	triangle := plotter.XYs{
		{X: c.RedX, Y: c.RedY},
		{X: c.GreenX, Y: c.GreenY},
		{X: c.BlueX, Y: c.BlueY},
		{X: c.RedX, Y: c.RedY},
	}
	line, err := plotter.NewLine(triangle)
	if err != nil {
		return errors.Wrap(err, "could not build primary triangle")
	}
	p.Add(line)

	points := plotter.XYs{
		{X: c.RedX, Y: c.RedY},
		{X: c.GreenX, Y: c.GreenY},
		{X: c.BlueX, Y: c.BlueY},
		{X: c.WhiteX, Y: c.WhiteY},
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, "could not build point scatter")
	}
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "could not save plot")
	}
	return nil
}
