package systems

import (
	"github.com/automoto/hallownest/platformer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyHandler receives discrete key events.
type KeyHandler interface {
	KeyDown(key platformer.Key)
	KeyUp(key platformer.Key)
}

var keyBuf []ebiten.Key

// PollKeys forwards the keys pressed and released since the last tick.
// Presses go first so a key tapped within one tick still ends released.
func PollKeys(h KeyHandler) {
	keyBuf = inpututil.AppendJustPressedKeys(keyBuf[:0])
	for _, key := range keyBuf {
		h.KeyDown(platformer.Key(key))
	}
	keyBuf = inpututil.AppendJustReleasedKeys(keyBuf[:0])
	for _, key := range keyBuf {
		h.KeyUp(platformer.Key(key))
	}
}
