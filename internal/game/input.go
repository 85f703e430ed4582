package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input samples the pointer and the shell keys once per tick. Touch, when
// present, takes over the pointer: the first finger steers, a second
// finger boosts.
type Input struct {
	touches     []ebiten.TouchID
	justTouches []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{}
}

// Sample reads the current pointer and boost state for a vw×vh viewport.
func (in *Input) Sample(vw, vh int) PlayerInput {
	x, y := ebiten.CursorPosition()
	boost := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)

	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	if len(in.touches) > 0 {
		x, y = ebiten.TouchPosition(in.touches[0])
		boost = len(in.touches) > 1
	}

	return PlayerInput{
		PointerX: float64(x),
		PointerY: float64(y),
		ViewW:    vw,
		ViewH:    vh,
		Boost:    boost,
	}
}

// StartPressed reports a one-shot start/restart intent.
func (in *Input) StartPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	in.justTouches = inpututil.AppendJustPressedTouchIDs(in.justTouches[:0])
	return len(in.justTouches) > 0
}

// QuitPressed reports a one-shot stop intent (back to the menu).
func (in *Input) QuitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// DebugToggled reports a one-shot debug overlay toggle.
func (in *Input) DebugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
