package chart

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
)

// categoryTicks places one labelled tick at each category position.
func categoryTicks(categories []string) plot.ConstantTicks {
	return lo.Map(categories, func(c string, i int) plot.Tick {
		return plot.Tick{Value: float64(i), Label: c}
	})
}

// decadeTicks labels every power of ten and adds unlabelled (minor) ticks
// at its 2..9 multiples.
type decadeTicks struct{}

var _ plot.Ticker = decadeTicks{}

func (decadeTicks) Ticks(min, max float64) []plot.Tick {
	// LogTicks emits each decade twice, once labelled and once as a minor
	// tick. Keep only the labelled one.
	ticks := plot.LogTicks{Prec: -1}.Ticks(min, max)
	out := make([]plot.Tick, 0, len(ticks))
	for _, t := range ticks {
		if t.IsMinor() && len(out) > 0 && out[len(out)-1].Value == t.Value {
			continue
		}
		if !t.IsMinor() {
			t.Label = decadeLabel(t.Value)
		}
		out = append(out, t)
	}
	return out
}

func decadeLabel(v float64) string {
	if v >= 1 {
		return humanize.Comma(int64(math.Round(v)))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
