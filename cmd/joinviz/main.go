package main

import (
	"context"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-kit/log"
	"github.com/spf13/afero"

	"github.com/grafana/joinviz/pkg/cli"
	vizcontext "github.com/grafana/joinviz/pkg/context"
	_ "github.com/grafana/joinviz/pkg/util/build"
	"github.com/grafana/joinviz/pkg/viewer"
)

var (
	consoleOutput = os.Stderr
	logger        = log.NewLogfmtLogger(consoleOutput)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = vizcontext.WithLogger(ctx, logger)
	ctx = vizcontext.WithOutput(ctx, os.Stdout)

	app := cli.New(filepath.Base(os.Args[0]), showWindow, afero.NewOsFs())
	code := cli.CheckError(consoleOutput, app.Run(ctx, os.Args[1:]))
	stop()
	os.Exit(code)
}

func showWindow(ctx context.Context, img image.Image, title string) error {
	return viewer.Show(ctx, img, viewer.Options{Title: title})
}
