package chart

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func Test_Plot(t *testing.T) {
	f := testFigure()
	p, err := f.Plot()
	require.NoError(t, err)

	assert.Equal(t, "latency", p.Title.Text)
	assert.Equal(t, "x", p.X.Label.Text)
	assert.Equal(t, "y", p.Y.Label.Text)
	assert.IsType(t, plot.LogScale{}, p.Y.Scale)
	assert.IsType(t, plot.LinearScale{}, p.X.Scale)
	assert.True(t, p.Legend.Top)
	assert.True(t, p.Legend.Left)

	// Two categories apart with a 5% margin on each side.
	assert.InDelta(t, -0.1, p.X.Min, 1e-9)
	assert.InDelta(t, 2.1, p.X.Max, 1e-9)

	// Data spans 1..500; in log space each side gets 5% of the span.
	span := math.Log10(500)
	assert.InDelta(t, -0.05*span, math.Log10(p.Y.Min), 1e-9)
	assert.InDelta(t, 1.05*span, math.Log10(p.Y.Max), 1e-9)

	labels := make([]string, 0, 3)
	for _, tick := range p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max) {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"a", "b", "c"}, labels)
}

func Test_Plot_LogSpacing(t *testing.T) {
	f := testFigure()
	p, err := f.Plot()
	require.NoError(t, err)

	// Equal ratios are equal distances apart.
	d1 := p.Y.Norm(10) - p.Y.Norm(1)
	d2 := p.Y.Norm(100) - p.Y.Norm(10)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.InDelta(t, 0.5, p.Y.Norm(math.Sqrt(1*500)), 1e-9)
}

func Test_Plot_LinearY(t *testing.T) {
	f := testFigure()
	f.Y.Scale = LinearScale
	p, err := f.Plot()
	require.NoError(t, err)
	assert.IsType(t, plot.LinearScale{}, p.Y.Scale)
	assert.InDelta(t, 1-0.05*499, p.Y.Min, 1e-9)
}

func Test_Plot_InvalidFigure(t *testing.T) {
	f := testFigure()
	f.Categories = nil
	_, err := f.Plot()
	assert.ErrorIs(t, err, ErrNoCategories)
}

func Test_Widen_SingleValue(t *testing.T) {
	a := plot.Axis{Min: 100, Max: 100}
	widen(&a, LogScale)
	assert.InDelta(t, 1.5, math.Log10(a.Min), 1e-9)
	assert.InDelta(t, 2.5, math.Log10(a.Max), 1e-9)

	a = plot.Axis{Min: 0, Max: 0}
	widen(&a, LinearScale)
	assert.Equal(t, -0.5, a.Min)
	assert.Equal(t, 0.5, a.Max)
}

func Test_Dashes(t *testing.T) {
	w := vg.Points(2)
	assert.Nil(t, dashes(Solid, w))
	assert.Equal(t, []vg.Length{7.4, 3.2}, dashes(Dashed, w))
	assert.Equal(t, []vg.Length{2, 3.3}, dashes(Dotted, w))
}

func Test_WithAlpha(t *testing.T) {
	c := withAlpha(color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}, 0.4)
	assert.Equal(t, color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 102}, c)

	assert.Equal(t, uint8(0xff), withAlpha(color.White, 2).(color.NRGBA).A)
	assert.Equal(t, uint8(0), withAlpha(color.White, -1).(color.NRGBA).A)
}

func Test_GlyphStyle(t *testing.T) {
	s := Series{Color: color.Black, Marker: CircleMarker}
	assert.Equal(t, vg.Points(markerRadius), glyphStyle(s).Radius)

	s.Marker = NoMarker
	assert.Zero(t, glyphStyle(s).Radius)
}
