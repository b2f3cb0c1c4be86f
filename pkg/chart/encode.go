package chart

import (
	"image"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// DefaultDPI turns a 10x6 inch figure into a 1000x600 pixel image.
const DefaultDPI = 100

var formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// Formats lists the output formats understood by Encode and Save.
func Formats() []string {
	return slices.Clone(formats)
}

// FormatOf returns the output format implied by the file extension of path.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func (f *Figure) raster(dpi int) (*vgimg.Canvas, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	p, err := f.Plot()
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	return c, nil
}

// Image renders the figure to an in-memory image.
func (f *Figure) Image(dpi int) (image.Image, error) {
	c, err := f.raster(dpi)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// Encode renders the figure in the given format and writes it to w. dpi is
// only used by raster formats.
func (f *Figure) Encode(w io.Writer, format string, dpi int) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !lo.Contains(formats, format) {
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	var wt io.WriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c, err := f.raster(dpi)
		if err != nil {
			return err
		}
		switch format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: c}
		case "jpg", "jpeg":
			wt = vgimg.JpegCanvas{Canvas: c}
		default:
			wt = vgimg.TiffCanvas{Canvas: c}
		}
	default:
		p, err := f.Plot()
		if err != nil {
			return err
		}
		if wt, err = p.WriterTo(f.Width, f.Height, format); err != nil {
			return errors.Wrapf(err, "create %s canvas", format)
		}
	}

	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrapf(err, "write %s", format)
	}
	return nil
}

// Save writes the figure to path on fs, picking the format from the file
// extension.
func (f *Figure) Save(fs afero.Fs, path string, dpi int) (err error) {
	format := FormatOf(path)
	if !lo.Contains(formats, format) {
		return errors.Wrapf(ErrUnsupportedFormat, "%q (from %s)", format, path)
	}
	if err := f.Validate(); err != nil {
		return err
	}

	file, err := fs.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() {
		e := file.Close()
		if err == nil {
			err = e
		}
	}()

	return f.Encode(file, format, dpi)
}
