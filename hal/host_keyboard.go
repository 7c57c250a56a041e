//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeyboard feeds ebiten key input into a LineEditor.
type hostKeyboard struct {
	editor *LineEditor
	runes  []rune
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{editor: NewLineEditor(nil)}
}

func (k *hostKeyboard) poll() {
	k.runes = ebiten.AppendInputChars(k.runes[:0])
	for _, r := range k.runes {
		k.editor.Feed(r)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			k.editor.Feed(keyCtrlC)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			k.editor.Feed(keyCtrlD)
		}
	}

	if repeating(ebiten.KeyBackspace) {
		k.editor.Feed(keyBackspace)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		k.editor.Feed('\r')
	}
}

// repeating reports a key press plus auto-repeat after a short hold.
func repeating(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
