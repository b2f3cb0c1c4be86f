// Package viewer shows a rendered image in a desktop window.
package viewer

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// Options configures the window opened by Show.
type Options struct {
	// Title is shown in the window decoration.
	Title string
	// TPS is the update rate of the window loop. Defaults to 30.
	TPS   int
}

// Show opens a resizable window displaying img scaled to fit. It blocks
// until the window is closed, Escape or Q is pressed, or ctx is done.
func Show(ctx context.Context, img image.Image, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 30
	}
	b := img.Bounds()
	w := &window{
		ctx:    ctx,
		src:    img,
		width:  b.Dx(),
		height: b.Dy(),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	if err := ebiten.RunGame(w); err != nil {
		return errors.Wrap(err, "run window")
	}
	return nil
}

type window struct {
	ctx    context.Context
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func (w *window) Update() error {
	select {
	case <-w.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

// Layout keeps the logical screen at the image size; ebiten scales it to
// the window.
func (w *window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}
