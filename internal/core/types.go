package core

import "perspectiveview/internal/perspective"

// Size describes pixel dimensions.
type Size struct {
	W int
	H int
}

// Input is the movement intent of one tick.
type Input struct {
	Up, Down, Left, Right bool
}

// Scene is the contract the game loop drives: it advances one tick at a time
// and turns its state into draw commands.
type Scene interface {
	Name() string
	Size() Size
	Reset()
	Step(in Input)
	Frame() ([]perspective.Command, error)
	Render(s perspective.Surface) error
}
