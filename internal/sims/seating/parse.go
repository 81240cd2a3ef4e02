package seating

import (
	"strings"

	"github.com/pkg/errors"

	"seatsim/internal/core"
)

var (
	// ErrEmptyInput reports a layout with no rows at all.
	ErrEmptyInput = errors.New("empty layout")
	// ErrInvalidCharacter reports a character outside the `.L#` alphabet.
	ErrInvalidCharacter = errors.New("invalid character in layout")
	// ErrInconsistentWidth reports rows of differing length.
	ErrInconsistentWidth = errors.New("inconsistent row width")
)

// ParseLayout converts a textual seating layout into a grid. Each line is
// whitespace-trimmed, then mapped rune by rune: `.` floor, `L` empty seat,
// `#` occupied seat. The layout must be non-empty and rectangular.
func ParseLayout(input string) (*core.ByteGrid, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	lines := strings.Split(trimmed, "\n")
	rows := make([][]uint8, 0, len(lines))
	width := 0
	for y, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]uint8, 0, len(line))
		for x, r := range line {
			cell, ok := cellFromRune(r)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidCharacter, "row %d, column %d: %q", y+1, x+1, r)
			}
			row = append(row, cell)
		}
		if y == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Wrapf(ErrInconsistentWidth, "row %d has %d cells, expected %d", y+1, len(row), width)
		}
		rows = append(rows, row)
	}

	grid := core.NewByteGrid(width, len(rows))
	cells := grid.Cells()
	for y, row := range rows {
		copy(cells[y*width:(y+1)*width], row)
	}
	return grid, nil
}
