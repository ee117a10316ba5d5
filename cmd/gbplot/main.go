// gbplot runs a ROM headlessly for a fixed number of frames and plots
// the per-scanline cycle-debt carried forward by the display pipeline,
// exercising the testable property that debt stays bounded rather than
// growing without limit.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kirkNovitsky/gb-emulator/internal/gameboy"
)

func main() {
	romFlag := flag.String("rom", "", "The rom file to load")
	frames := flag.Int("frames", 60, "Number of frames to run before plotting")
	out := flag.String("out", "cycle-debt.svg", "Output SVG path")
	flag.Parse()

	if *romFlag == "" {
		fmt.Fprintln(os.Stderr, "gbplot: -rom is required")
		os.Exit(1)
	}

	gb, err := gameboy.Initialise(*romFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbplot:", err)
		os.Exit(1)
	}

	var lastFrame []int
	for i := 0; i < *frames; i++ {
		gb.Step()
		lastFrame = gb.PPU.LineDebt()
	}

	points := make(plotter.XYs, len(lastFrame))
	for i, debt := range lastFrame {
		points[i].X = float64(i)
		points[i].Y = float64(debt)
	}

	p := plot.New()
	p.Title.Text = "Per-scanline cycle debt (final frame)"
	p.X.Label.Text = "scanline"
	p.Y.Label.Text = "cycles"

	line, err := plotter.NewLine(points)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbplot:", err)
		os.Exit(1)
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, *out); err != nil {
		fmt.Fprintln(os.Stderr, "gbplot:", err)
		os.Exit(1)
	}
}
