// Package joinbench holds the CPU and GPU join latencies measured for six
// dataset sizes and the chart that compares them.
package joinbench

import (
	"image/color"

	"github.com/samber/lo"
	"gonum.org/v1/plot/vg"

	"github.com/grafana/joinviz/pkg/chart"
)

const (
	Title      = "Join Performance: CPU vs GPU"
	XAxisLabel = "Dataset Size"
	YAxisLabel = "Time (ms)"

	CPULabel = "CPU"
	GPULabel = "GPU"
)

var (
	categories = [...]string{"1K", "10K", "100K", "1M", "10M", "40M"}
	cpuMillis  = [...]float64{20, 190, 1880, 18790, 144270, 1438730}
	gpuMillis  = [...]float64{250, 261, 430, 2196, 18735, 132425}

	Blue  = color.RGBA{B: 0xff, A: 0xff}
	Green = color.RGBA{G: 0x80, A: 0xff}
)

// Categories returns the dataset size labels, smallest first.
func Categories() []string { return append([]string(nil), categories[:]...) }

// CPU returns the CPU join times in milliseconds, one per category.
func CPU() []float64 { return append([]float64(nil), cpuMillis[:]...) }

// GPU returns the GPU join times in milliseconds, one per category.
func GPU() []float64 { return append([]float64(nil), gpuMillis[:]...) }

// Row is one dataset size with both measurements.
type Row struct {
	Category string
	CPU      float64
	GPU      float64
}

// Speedup is how many times faster the GPU join is. Values below 1 mean the
// CPU was faster.
func (r Row) Speedup() float64 {
	return r.CPU / r.GPU
}

// Rows pairs the measurements by category.
func Rows() []Row {
	return lo.Map(categories[:], func(c string, i int) Row {
		return Row{Category: c, CPU: cpuMillis[i], GPU: gpuMillis[i]}
	})
}

// Figure returns the CPU vs GPU comparison chart.
func Figure() *chart.Figure {
	return &chart.Figure{
		Title:      Title,
		Width:      10 * vg.Inch,
		Height:     6 * vg.Inch,
		Categories: Categories(),
		Series: []chart.Series{
			{
				Label:  CPULabel,
				Color:  Blue,
				Marker: chart.CircleMarker,
				Style:  chart.Solid,
				Width:  vg.Points(2),
				Values: CPU(),
			},
			{
				Label:  GPULabel,
				Color:  Green,
				Marker: chart.CircleMarker,
				Style:  chart.Solid,
				Width:  vg.Points(2),
				Values: GPU(),
			},
		},
		X: chart.Axis{Label: XAxisLabel, Scale: chart.LinearScale},
		Y: chart.Axis{Label: YAxisLabel, Scale: chart.LogScale},
		// Each pass restyles the classes it names: the first pass is
		// fully replaced by the next two.
		Grid: []chart.GridPass{
			{Lines: chart.BothGrids, Style: chart.Solid, Alpha: 0.2},
			{Lines: chart.MajorGrid, Style: chart.Dashed, Alpha: 0.7},
			{Lines: chart.MinorGrid, Style: chart.Dotted, Alpha: 0.4},
		},
		Legend: true,
	}
}
