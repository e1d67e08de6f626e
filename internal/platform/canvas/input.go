package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// keyBindings mirrors the terminal bindings.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionJump:  {ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
}

// sampleFrame builds the input frame from the current key state.
// Unlike the terminal, a window sees real key-up events, so no latch is needed.
func sampleFrame(pressed func(ebiten.Key) bool) core.InputFrame {
	f := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				f.Set(action)
				break
			}
		}
	}
	return f
}
