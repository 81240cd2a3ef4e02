package seating

import (
	"strings"

	"github.com/pkg/errors"

	"seatsim/internal/core"
)

// ErrNonConvergent reports that the automaton failed to reach a fixed point
// within the generation cap handed to Run.
var ErrNonConvergent = errors.New("no fixed point reached")

// The 8 compass direction vectors, excluding the zero vector.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// World is the seating automaton: a bounded grid of floor and seat cells
// advanced synchronously under one of the two rule modes. Each Step reads
// only the previous generation's buffer and writes a fresh one.
type World struct {
	w, h int
	mode Mode

	cur []uint8
	nxt []uint8

	// initial holds the parsed layout restored by Reset. It is nil for
	// generated worlds, which rebuild from the seed instead.
	initial     []uint8
	floorChance float64

	changes    int
	generation int
}

// New returns a world with a generated floor/seat layout. Call Reset to
// populate it before stepping.
func New(w, h int, mode Mode) *World {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([]uint8, w*h)
	return &World{
		w:           w,
		h:           h,
		mode:        mode,
		cur:         cells,
		nxt:         make([]uint8, len(cells)),
		floorChance: DefaultConfig().FloorChance,
	}
}

// NewFromLayout returns a world seeded with the given parsed layout.
func NewFromLayout(grid *core.ByteGrid, mode Mode) *World {
	w := New(grid.W, grid.H, mode)
	w.initial = grid.Clone().Cells()
	copy(w.cur, w.initial)
	return w
}

// FromText parses a layout and returns a world ready to run under the
// given mode.
func FromText(input string, mode Mode) (*World, error) {
	grid, err := ParseLayout(input)
	if err != nil {
		return nil, err
	}
	return NewFromLayout(grid, mode), nil
}

// Name returns the simulation identifier.
func (w *World) Name() string {
	if w.mode == ModeLineOfSight {
		return "seating-sight"
	}
	return "seating-adjacent"
}

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current generation's buffer.
func (w *World) Cells() []uint8 { return w.cur }

// Mode returns the rule mode the world runs under.
func (w *World) Mode() Mode { return w.mode }

// Generation returns the number of generations computed so far.
func (w *World) Generation() int { return w.generation }

// Changes returns the number of cells that changed in the most recent
// generation. It is 0 before the first Step.
func (w *World) Changes() int { return w.changes }

// Reset restores the initial layout, or for a generated world scatters a
// fresh floor/seat layout deterministically from the seed.
func (w *World) Reset(seed int64) {
	w.generation = 0
	w.changes = 0
	if w.initial != nil {
		copy(w.cur, w.initial)
		return
	}
	rng := core.NewRNG(seed).Source()
	core.FillLayout(rng, w.cur, CellFloor, CellEmpty, w.floorChance)
}

// visible counts the occupied seats seen from (x, y) along the 8 compass
// directions under the world's mode. Adjacent looks one step; LineOfSight
// walks each ray over floor cells to the first seat or the boundary.
func (w *World) visible(x, y int) int {
	count := 0
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		if w.mode == ModeLineOfSight {
			for w.inBounds(nx, ny) && w.cur[ny*w.w+nx] == CellFloor {
				nx += d[0]
				ny += d[1]
			}
		}
		if w.inBounds(nx, ny) && w.cur[ny*w.w+nx] == CellOccupied {
			count++
		}
	}
	return count
}

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.w && y >= 0 && y < w.h
}

// Step advances the automaton by one synchronous generation and returns
// the number of cells that changed. All neighbor lookups read the buffer
// as it existed at the start of the generation.
func (w *World) Step() int {
	threshold := w.mode.Threshold()
	changes := 0
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			cell := w.cur[idx]
			next := cell
			switch cell {
			case CellEmpty:
				if w.visible(x, y) == 0 {
					next = CellOccupied
				}
			case CellOccupied:
				if w.visible(x, y) >= threshold {
					next = CellEmpty
				}
			}
			w.nxt[idx] = next
			if next != cell {
				changes++
			}
		}
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.changes = changes
	w.generation++
	return changes
}

// Run steps the world until a generation changes no cells and returns the
// number of generations computed, counting the final unchanged one. A
// positive maxGenerations bounds the loop; exceeding it yields
// ErrNonConvergent. Zero or negative means no bound.
func (w *World) Run(maxGenerations int) (int, error) {
	for gens := 1; maxGenerations <= 0 || gens <= maxGenerations; gens++ {
		if w.Step() == 0 {
			return gens, nil
		}
	}
	return maxGenerations, errors.Wrapf(ErrNonConvergent, "within %d generations", maxGenerations)
}

// Occupied returns the number of occupied seats in the current generation.
func (w *World) Occupied() int {
	n := 0
	for _, c := range w.cur {
		if c == CellOccupied {
			n++
		}
	}
	return n
}

// String renders the current generation in the input alphabet, one row
// per line.
func (w *World) String() string {
	var b strings.Builder
	b.Grow((w.w + 1) * w.h)
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			b.WriteRune(cellRune(w.cur[y*w.w+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	core.Register("seating-adjacent", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Mode = ModeAdjacent
		return NewWithConfig(c)
	})
	core.Register("seating-sight", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Mode = ModeLineOfSight
		return NewWithConfig(c)
	})
}
