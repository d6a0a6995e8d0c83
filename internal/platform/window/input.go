package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

// keyActions maps keys to actions on the frame they go down.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:   core.ActionJump,
	ebiten.KeyArrowUp: core.ActionJump,
	ebiten.KeyW:       core.ActionJump,
	ebiten.KeyEnter:   core.ActionConfirm,
	ebiten.KeyEscape:  core.ActionBack,
	ebiten.KeyP:       core.ActionPause,
	ebiten.KeyR:       core.ActionRestart,
	ebiten.KeyQ:       core.ActionQuit,
}

// menuKeys only matter on the level select.
var menuKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:   core.ActionUp,
	ebiten.KeyArrowDown: core.ActionDown,
	ebiten.KeyS:         core.ActionDown,
}

var levelKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Pointer is a press in screen pixels.
type Pointer struct {
	X, Y int
}

// Input is everything that happened since the previous Update.
type Input struct {
	Frame    core.InputFrame
	Level    int // Digit key level index, -1 if none
	Pointers []Pointer
}

// readInput polls keyboard, mouse and touch state.
// Any press anywhere also counts as a jump.
func readInput() Input {
	in := Input{Frame: core.NewInputFrame(), Level: -1}

	for _, keys := range []map[ebiten.Key]core.Action{keyActions, menuKeys} {
		for k, a := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Frame.Set(a)
			}
		}
	}
	for i, k := range levelKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Level = i
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Pointers = append(in.Pointers, Pointer{X: x, Y: y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.Pointers = append(in.Pointers, Pointer{X: x, Y: y})
	}
	if len(in.Pointers) > 0 {
		in.Frame.Set(core.ActionJump)
	}

	return in
}
