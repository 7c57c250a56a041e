//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Height of the input strip drawn under the OLED area (ebitenutil debug font).
const inputStripHeight = 16

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	Scale int
}

// RunWindow starts a desktop window that shows the OLED framebuffer and
// forwards keyboard input as command lines. run is started in its own
// goroutine; the window closes when run returns, and closing the window
// cancels run's context. cfg.Lines is replaced by the keyboard.
func RunWindow(ctx context.Context, cfg HostConfig, wcfg WindowConfig, run func(context.Context, HAL) error) error {
	if wcfg.Scale <= 0 {
		wcfg.Scale = 4
	}
	kbd := newHostKeyboard()
	cfg.Lines = kbd.editor
	h := newHost(cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := &hostGame{h: h, kbd: kbd, done: make(chan struct{})}
	go func() {
		defer close(g.done)
		g.runErr = run(ctx, h)
	}()

	ebiten.SetWindowTitle(wcfg.Title)
	ebiten.SetWindowSize(h.fb.width*wcfg.Scale, (h.fb.height+inputStripHeight)*wcfg.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)

	cancel()
	kbd.editor.Close()
	<-g.done
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return g.runErr
}

type hostGame struct {
	h   *hostHAL
	kbd *hostKeyboard

	done   chan struct{}
	runErr error

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	frames  uint64
}

func (g *hostGame) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}
	g.kbd.poll()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	if n := fb.snapshot(g.scratch); n != g.frames {
		g.frames = n
		dst := g.img.Pix
		for y := 0; y < fb.height; y++ {
			for x := 0; x < fb.width; x++ {
				c := PixelOff
				if pixelAt(g.scratch, fb.width, x, y) {
					c = PixelOn
				}
				j := (y*fb.width + x) * 4
				dst[j+0] = c.R
				dst[j+1] = c.G
				dst[j+2] = c.B
				dst[j+3] = c.A
			}
		}
		g.fbImg.WritePixels(dst)
	}

	screen.DrawImage(g.fbImg, nil)
	ebitenutil.DebugPrintAt(screen, "> "+g.kbd.editor.Pending(), 0, fb.height)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height + inputStripHeight
}
