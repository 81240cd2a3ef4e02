package seating

// Cell values for the seating layout. Floor is never occupiable; Empty and
// Occupied are the two seat states the rule toggles between.
const (
	CellFloor uint8 = iota
	CellEmpty
	CellOccupied
)

const (
	runeFloor    = '.'
	runeEmpty    = 'L'
	runeOccupied = '#'
)

func cellFromRune(r rune) (uint8, bool) {
	switch r {
	case runeFloor:
		return CellFloor, true
	case runeEmpty:
		return CellEmpty, true
	case runeOccupied:
		return CellOccupied, true
	}
	return 0, false
}

func cellRune(c uint8) rune {
	switch c {
	case CellEmpty:
		return runeEmpty
	case CellOccupied:
		return runeOccupied
	default:
		return runeFloor
	}
}
