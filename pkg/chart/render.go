package chart

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// axisMargin is the fraction of the data span added on each side of an
	// axis, measured in log space for log axes.
	axisMargin = 0.05

	markerRadius = 3 // points, 6pt circle
	labelSize    = 10
	titleSize    = 12
)

var gridColor = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

// Plot validates the figure and builds its gonum/plot rendering.
func (f *Figure) Plot() (*plot.Plot, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = f.Title
	p.Title.TextStyle.Font.Size = vg.Points(titleSize)

	p.X.Label.Text = f.X.Label
	p.X.Label.TextStyle.Font.Size = vg.Points(labelSize)
	p.X.Padding = 0
	p.X.Tick.Marker = categoryTicks(f.Categories)

	p.Y.Label.Text = f.Y.Label
	p.Y.Label.TextStyle.Font.Size = vg.Points(labelSize)
	p.Y.Padding = 0
	if f.Y.Scale == LogScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = decadeTicks{}
	}

	// Grid goes first so that the series are drawn on top of it.
	for _, g := range resolveGrid(f.Grid) {
		p.Add(g)
	}

	for _, s := range f.Series {
		line, points, err := plotter.NewLinePoints(seriesXYs(s.Values))
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", s.Label)
		}
		line.LineStyle = draw.LineStyle{
			Color:  s.Color,
			Width:  s.Width,
			Dashes: dashes(s.Style, s.Width),
		}
		points.GlyphStyle = glyphStyle(s)

		p.Add(line, points)
		if f.Legend && s.Label != "" {
			p.Legend.Add(s.Label, line, points)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = vg.Points(labelSize)

	widen(&p.X, f.X.Scale)
	widen(&p.Y, f.Y.Scale)
	return p, nil
}

func seriesXYs(values []float64) plotter.XYs {
	return lo.Map(values, func(v float64, i int) plotter.XY {
		return plotter.XY{X: float64(i), Y: v}
	})
}

func glyphStyle(s Series) draw.GlyphStyle {
	sty := draw.GlyphStyle{
		Color:  s.Color,
		Radius: vg.Points(markerRadius),
		Shape:  draw.CircleGlyph{},
	}
	if s.Marker == NoMarker {
		sty.Radius = 0
	}
	return sty
}

// dashes returns the dash pattern for a line of the given width.
func dashes(style LineStyle, width vg.Length) []vg.Length {
	switch style {
	case Dashed:
		return []vg.Length{3.7 * width, 1.6 * width}
	case Dotted:
		return []vg.Length{1 * width, 1.65 * width}
	default:
		return nil
	}
}

// withAlpha returns c with its opacity scaled by alpha.
func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * math.Max(0, math.Min(1, alpha))))
	return n
}

// widen adds axisMargin on both ends of the axis data range. A range made
// of a single value is opened up by half a unit (or half a decade).
func widen(a *plot.Axis, scale Scale) {
	if scale == LogScale {
		lmin, lmax := math.Log10(a.Min), math.Log10(a.Max)
		pad := (lmax - lmin) * axisMargin
		if pad == 0 {
			pad = 0.5
		}
		a.Min, a.Max = math.Pow(10, lmin-pad), math.Pow(10, lmax+pad)
		return
	}
	pad := (a.Max - a.Min) * axisMargin
	if pad == 0 {
		pad = 0.5
	}
	a.Min -= pad
	a.Max += pad
}
