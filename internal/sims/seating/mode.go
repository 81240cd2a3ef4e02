package seating

import "github.com/pkg/errors"

// Mode selects the neighbor-visibility policy for the seating rule.
type Mode int

const (
	// ModeAdjacent looks exactly one step along each of the 8 directions
	// and vacates an occupied seat at 4 or more occupied neighbors.
	ModeAdjacent Mode = iota
	// ModeLineOfSight walks each of the 8 directions past floor cells to
	// the first seat and vacates at 5 or more occupied seats in sight.
	ModeLineOfSight
)

// ErrUnknownMode reports a mode name outside adjacent/sight.
var ErrUnknownMode = errors.New("unknown rule mode")

// String returns the mode's flag-friendly name.
func (m Mode) String() string {
	if m == ModeLineOfSight {
		return "sight"
	}
	return "adjacent"
}

// Threshold returns the occupied-neighbor count at which an occupied seat
// vacates under this mode.
func (m Mode) Threshold() int {
	if m == ModeLineOfSight {
		return 5
	}
	return 4
}

// ParseMode maps a flag value onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "adjacent":
		return ModeAdjacent, nil
	case "sight", "line-of-sight":
		return ModeLineOfSight, nil
	}
	return ModeAdjacent, errors.Wrapf(ErrUnknownMode, "%q", s)
}
