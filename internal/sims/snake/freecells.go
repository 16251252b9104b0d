package snake

import "mad-snake/internal/core"

// freeCells indexes every Empty cell so food placement can sample uniformly
// in O(1) instead of scanning the board. slots is a dense list of cell
// indices; where[i] is the slot holding cell i, or -1 when i is not free.
type freeCells struct {
	slots []int
	where []int
}

func newFreeCells(total int) *freeCells {
	f := &freeCells{slots: make([]int, total), where: make([]int, total)}
	for i := 0; i < total; i++ {
		f.slots[i] = i
		f.where[i] = i
	}
	return f
}

func (f *freeCells) len() int { return len(f.slots) }

func (f *freeCells) contains(cell int) bool { return f.where[cell] >= 0 }

func (f *freeCells) add(cell int) {
	if f.where[cell] >= 0 {
		return
	}
	f.where[cell] = len(f.slots)
	f.slots = append(f.slots, cell)
}

func (f *freeCells) remove(cell int) {
	slot := f.where[cell]
	if slot < 0 {
		return
	}
	last := len(f.slots) - 1
	moved := f.slots[last]
	f.slots[slot] = moved
	f.where[moved] = slot
	f.slots = f.slots[:last]
	f.where[cell] = -1
}

// pick returns a uniformly random free cell. The set must be non-empty.
func (f *freeCells) pick(rng *core.RNG) int {
	return f.slots[rng.IntN(len(f.slots))]
}
