// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stripetext

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const profileticks = 20

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// ProfileGraph creates a graph of the mean brightness of each image
// column. On an encoded image the stripe period shows up directly as
// the distance between repeating peaks, which makes the profile handy
// for checking what period an image was encoded with, or for picking
// one that suits a carrier.
func ProfileGraph(means []float64, title string, w io.Writer) error {
	if len(means) < 2 {
		return errors.New("not enough columns to graph")
	}

	var xvalues, yvalues []float64
	var total float64
	for x, m := range means {
		xvalues = append(xvalues, float64(x))
		yvalues = append(yvalues, m)
		total += m
	}

	var ticks []chart.Tick
	tickevery := len(means) / profileticks
	if tickevery < 1 {
		tickevery = 1
	}
	for x := 0; x < len(means); x += tickevery {
		ticks = append(ticks, chart.Tick{Value: float64(x), Label: fmt.Sprintf("%d", x)})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(means) - 1), Label: fmt.Sprintf("%d", len(means)-1)})

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}
	meanSeries := createLine(xvalues, total/float64(len(means)), chart.ColorAlternateGray)

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Column",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: float64(len(means) - 1),
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Mean brightness",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
		},
		Series: []chart.Series{
			mainSeries,
			meanSeries,
		},
	}
	return graph.Render(chart.PNG, w)
}
