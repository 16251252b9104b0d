package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the renderer and HUD rely on. A Sim advances one tick
// per Step and exposes its board as one byte per cell in row-major order.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Cells() []uint8
}
