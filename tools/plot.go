package tools

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const sineSamples = 1000

// SineWavePoints samples amplitude*sin(2*pi*frequency*x) over x in [0, 10].
func SineWavePoints(amplitude, frequency float64) plotter.XYs {
	points := make(plotter.XYs, sineSamples)
	for i := range points {
		x := 10 * float64(i) / float64(sineSamples-1)
		points[i].X = x
		points[i].Y = amplitude * math.Sin(2*math.Pi*frequency*x)
	}
	return points
}

// DrawSineWave renders the sine wave as a 10x6 inch PNG.
func DrawSineWave(amplitude, frequency float64) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sine Wave (Amplitude: %g, Frequency: %g)", amplitude, frequency)
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(SineWavePoints(amplitude, frequency))
	if err != nil {
		return nil, fmt.Errorf("sine wave line: %w", err)
	}
	p.Add(line)

	canvas := vgimg.New(10*vg.Inch, 6*vg.Inch)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode sine wave: %w", err)
	}
	return buf.Bytes(), nil
}
