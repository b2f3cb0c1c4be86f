// Package chart describes and renders category line charts with gonum/plot.
package chart

import (
	"image/color"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

var (
	ErrNoCategories      = errors.New("figure has no categories")
	ErrNoSeries          = errors.New("figure has no series")
	ErrLengthMismatch    = errors.New("series length does not match categories")
	ErrNonPositiveLog    = errors.New("log scale requires values greater than zero")
	ErrNonFiniteValue    = errors.New("series value is not finite")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Scale is the mapping of data values to positions along an axis.
type Scale int

const (
	LinearScale Scale = iota
	// LogScale is base 10.
	LogScale
)

func (s Scale) String() string {
	switch s {
	case LinearScale:
		return "linear"
	case LogScale:
		return "log"
	default:
		return "unknown"
	}
}

// LineStyle selects the stroke pattern of a line.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
)

func (s LineStyle) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return "unknown"
	}
}

// Marker is the glyph drawn at every data point of a series.
type Marker int

const (
	NoMarker Marker = iota
	CircleMarker
)

// GridLines selects which tick marks a grid pass draws lines at.
type GridLines int

const (
	MajorGrid GridLines = iota
	MinorGrid
	BothGrids
)

func (g GridLines) String() string {
	switch g {
	case MajorGrid:
		return "major"
	case MinorGrid:
		return "minor"
	case BothGrids:
		return "both"
	default:
		return "unknown"
	}
}

func (g GridLines) major() bool { return g == MajorGrid || g == BothGrids }
func (g GridLines) minor() bool { return g == MinorGrid || g == BothGrids }

// GridPass is one grid styling call. Passes apply in order: a pass sets the
// style of the tick classes it names, replacing whatever an earlier pass set
// for them. Only the resulting style of each class is drawn.
type GridPass struct {
	Lines GridLines
	Style LineStyle
	Alpha float64
}

// Series is a named sequence of values drawn as connected markers at
// positions 0..len(Values)-1.
type Series struct {
	Label  string
	Color  color.Color
	Marker Marker
	Style  LineStyle
	// Width of the connecting line in points.
	Width  vg.Length
	Values []float64
}

// Axis holds the per-axis description of a figure.
type Axis struct {
	Label string
	Scale Scale
}

// Figure describes a single category line chart. It is a plain value: the
// gonum/plot rendering is derived from it on demand by Plot.
type Figure struct {
	Title  string
	Width  vg.Length
	Height vg.Length

	// Categories label the x positions 0..len(Categories)-1.
	Categories []string
	Series     []Series

	X Axis
	Y Axis

	Grid   []GridPass
	Legend bool
}

// Validate checks that every series lines up with the categories and that
// the values can be placed on the y axis. All violations are reported.
func (f *Figure) Validate() error {
	var err error
	if len(f.Categories) == 0 {
		err = multierror.Append(err, ErrNoCategories)
	}
	if len(f.Series) == 0 {
		err = multierror.Append(err, ErrNoSeries)
	}
	if err != nil {
		return err
	}
	for _, s := range f.Series {
		if len(s.Values) != len(f.Categories) {
			err = multierror.Append(err, errors.Wrapf(ErrLengthMismatch, "series %q has %d values, want %d", s.Label, len(s.Values), len(f.Categories)))
			continue
		}
		for i, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				err = multierror.Append(err, errors.Wrapf(ErrNonFiniteValue, "series %q at %q", s.Label, f.Categories[i]))
				continue
			}
			if f.Y.Scale == LogScale && v <= 0 {
				err = multierror.Append(err, errors.Wrapf(ErrNonPositiveLog, "series %q at %q is %v", s.Label, f.Categories[i], v))
			}
		}
	}
	return err
}

// SeriesByLabel returns the series with the given legend label.
func (f *Figure) SeriesByLabel(label string) (Series, bool) {
	for _, s := range f.Series {
		if s.Label == label {
			return s, true
		}
	}
	return Series{}, false
}

// LegendEntries lists the labels shown in the legend, in drawing order.
func (f *Figure) LegendEntries() []string {
	if !f.Legend {
		return nil
	}
	entries := make([]string, 0, len(f.Series))
	for _, s := range f.Series {
		if s.Label != "" {
			entries = append(entries, s.Label)
		}
	}
	return entries
}
