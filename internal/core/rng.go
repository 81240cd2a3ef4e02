package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillLayout scatters two cell values over the buffer, writing floor with
// probability floorChance and seat otherwise.
func FillLayout(r *rand.Rand, buf []uint8, floor, seat uint8, floorChance float64) {
	for i := range buf {
		if r.Float64() < floorChance {
			buf[i] = floor
			continue
		}
		buf[i] = seat
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
