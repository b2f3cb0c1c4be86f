package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const gridWidth = 0.8 // points

// gridLayer draws grid lines across the data area for both axes. Unlike
// plotter.Grid it can draw at minor ticks too.
type gridLayer struct {
	GridPass
}

var _ plot.Plotter = (*gridLayer)(nil)

// resolveGrid turns the recorded passes into at most one layer per tick
// class, minor lines below major ones. A pass restyles the classes it names,
// so a later pass replaces the style an earlier one gave to the same class.
func resolveGrid(passes []GridPass) []*gridLayer {
	var major, minor *gridLayer
	for _, pass := range passes {
		if pass.Lines.major() {
			major = &gridLayer{GridPass{Lines: MajorGrid, Style: pass.Style, Alpha: pass.Alpha}}
		}
		if pass.Lines.minor() {
			minor = &gridLayer{GridPass{Lines: MinorGrid, Style: pass.Style, Alpha: pass.Alpha}}
		}
	}
	var layers []*gridLayer
	if minor != nil {
		layers = append(layers, minor)
	}
	if major != nil {
		layers = append(layers, major)
	}
	return layers
}

func (g *gridLayer) lineStyle() draw.LineStyle {
	w := vg.Points(gridWidth)
	return draw.LineStyle{
		Color:  withAlpha(gridColor, g.Alpha),
		Width:  w,
		Dashes: dashes(g.Style, w),
	}
}

func (g *gridLayer) draws(t plot.Tick) bool {
	if t.IsMinor() {
		return g.Lines.minor()
	}
	return g.Lines.major()
}

func (g *gridLayer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := g.lineStyle()

	for _, t := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		if !g.draws(t) {
			continue
		}
		x := trX(t.Value)
		if x > c.Max.X || x < c.Min.X {
			continue
		}
		c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
	}

	for _, t := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		if !g.draws(t) {
			continue
		}
		y := trY(t.Value)
		if y > c.Max.Y || y < c.Min.Y {
			continue
		}
		c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
	}
}
