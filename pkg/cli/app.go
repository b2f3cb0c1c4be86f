// Package cli wires the joinviz commands. The window itself is injected as a
// ShowFunc so that everything here runs without a display.
package cli

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/prometheus/common/version"
	"github.com/spf13/afero"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/grafana/joinviz/pkg/chart"
	vizcontext "github.com/grafana/joinviz/pkg/context"
	"github.com/grafana/joinviz/pkg/joinbench"
)

const (
	EnvPrefix     = "JOINVIZ_"
	DefaultOutput = "join_performance.png"
)

// ShowFunc displays a rendered chart and blocks until it is dismissed.
type ShowFunc func(ctx context.Context, img image.Image, title string) error

type Config struct {
	Verbose bool
	Show    struct {
		DPI int
	}
	Render struct {
		Output string
		DPI    int
	}
	Table struct {
		Color string
	}
}

type App struct {
	Config

	app       *kingpin.Application
	showCmd   *kingpin.CmdClause
	renderCmd *kingpin.CmdClause
	tableCmd  *kingpin.CmdClause

	show       ShowFunc
	fs         afero.Fs
	isTerminal func() bool
}

// New builds the command line application. Rendered files are written to fs.
func New(name string, show ShowFunc, fs afero.Fs) *App {
	a := &App{
		show:       show,
		fs:         fs,
		isTerminal: stdoutIsTerminal,
	}

	a.app = kingpin.New(name, "Chart of CPU vs GPU join latencies across dataset sizes.").UsageWriter(os.Stdout)
	a.app.Version(version.Print("joinviz"))
	a.app.HelpFlag.Short('h')
	a.app.Flag("verbose", "Enable verbose logging.").Short('v').Envar(EnvPrefix + "VERBOSE").Default("false").BoolVar(&a.Verbose)

	a.showCmd = a.app.Command("show", "Display the chart in a window.").Default()
	a.showCmd.Flag("dpi", "Resolution of the displayed image.").Envar(EnvPrefix + "DPI").Default(fmt.Sprint(chart.DefaultDPI)).IntVar(&a.Show.DPI)

	a.renderCmd = a.app.Command("render", "Write the chart to a file.")
	a.renderCmd.Flag("output", "Output file, the extension selects the format ("+strings.Join(chart.Formats(), ", ")+").").
		Short('o').Envar(EnvPrefix + "OUTPUT").Default(DefaultOutput).StringVar(&a.Render.Output)
	a.renderCmd.Flag("dpi", "Resolution of raster output.").Envar(EnvPrefix + "DPI").Default(fmt.Sprint(chart.DefaultDPI)).IntVar(&a.Render.DPI)

	a.tableCmd = a.app.Command("table", "Print the measurements as a table.")
	a.tableCmd.Flag("color", "Highlight the faster device: auto, always or never.").Default("auto").EnumVar(&a.Table.Color, "auto", "always", "never")

	return a
}

// Parse fills the config from args and the JOINVIZ_ environment and returns
// the selected command.
func (a *App) Parse(args []string) (string, error) {
	return a.app.Parse(args)
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, err := a.Parse(args)
	if err != nil {
		return err
	}

	logger := vizcontext.Logger(ctx)
	if !a.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	ctx = vizcontext.WithLogger(ctx, logger)

	switch cmd {
	case a.showCmd.FullCommand():
		return a.runShow(ctx, a.Show.DPI)
	case a.renderCmd.FullCommand():
		return a.runRender(ctx, a.Render.Output, a.Render.DPI)
	case a.tableCmd.FullCommand():
		return joinbench.WriteTable(vizcontext.Output(ctx), joinbench.Rows(), a.useColor(a.Table.Color))
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
}

func (a *App) runShow(ctx context.Context, dpi int) error {
	logger := vizcontext.Logger(ctx)
	f := joinbench.Figure()
	img, err := f.Image(dpi)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "rendered chart", "width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "dpi", dpi)
	level.Info(logger).Log("msg", "showing chart, close the window or press q to exit")
	return a.show(ctx, img, f.Title)
}

func (a *App) runRender(ctx context.Context, path string, dpi int) error {
	if err := joinbench.Figure().Save(a.fs, path, dpi); err != nil {
		return err
	}
	level.Info(vizcontext.Logger(ctx)).Log("msg", "chart written", "path", path, "format", chart.FormatOf(path))
	return nil
}

func (a *App) useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return a.isTerminal()
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// CheckError prints err to w and returns the process exit code.
func CheckError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}
