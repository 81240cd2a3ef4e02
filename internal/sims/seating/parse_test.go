package seating

import (
	"errors"
	"strings"
	"testing"

	"seatsim/internal/core"
)

func TestParseLayoutDimensions(t *testing.T) {
	grid, err := ParseLayout(exampleLayout)
	if err != nil {
		t.Fatalf("parse example layout: %v", err)
	}
	if grid.W != 10 || grid.H != 10 {
		t.Fatalf("parsed %dx%d grid, expected 10x10", grid.W, grid.H)
	}
	if got := grid.Count(CellEmpty) + grid.Count(CellFloor); got != 100 {
		t.Fatalf("example layout has %d floor+empty cells, expected 100", got)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	world, err := FromText(exampleLayout, ModeAdjacent)
	if err != nil {
		t.Fatalf("parse example layout: %v", err)
	}
	if got := world.String(); got != exampleLayout+"\n" {
		t.Fatalf("render mismatch:\n%sexpected:\n%s\n", got, exampleLayout)
	}
}

func TestParseTrimsLineWhitespace(t *testing.T) {
	grid, err := ParseLayout("  L.L \r\n\t#.# \n")
	if err != nil {
		t.Fatalf("parse padded layout: %v", err)
	}
	if grid.W != 3 || grid.H != 2 {
		t.Fatalf("parsed %dx%d grid, expected 3x2", grid.W, grid.H)
	}
}

func TestParseInvalidCharacter(t *testing.T) {
	_, err := ParseLayout("L.LL\nL.XL\nLLLL")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("error should name the offending row: %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		if _, err := ParseLayout(input); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("input %q: expected ErrEmptyInput, got %v", input, err)
		}
	}
}

func TestParseInconsistentWidth(t *testing.T) {
	_, err := ParseLayout("L.LL.LL.LL\nLLLLLLL.L")
	if !errors.Is(err, ErrInconsistentWidth) {
		t.Fatalf("expected ErrInconsistentWidth, got %v", err)
	}
}

func TestParseModeNames(t *testing.T) {
	if m, err := ParseMode("adjacent"); err != nil || m != ModeAdjacent {
		t.Fatalf("adjacent parsed as %v, %v", m, err)
	}
	if m, err := ParseMode("sight"); err != nil || m != ModeLineOfSight {
		t.Fatalf("sight parsed as %v, %v", m, err)
	}
	if m, err := ParseMode("line-of-sight"); err != nil || m != ModeLineOfSight {
		t.Fatalf("line-of-sight parsed as %v, %v", m, err)
	}
	if _, err := ParseMode("diagonal"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestFactoryRegistration(t *testing.T) {
	world := NewWithConfig(FromMap(map[string]string{"layout": exampleLayout}))
	if world.Size().W != 10 || world.Size().H != 10 {
		t.Fatalf("config layout produced %v, expected 10x10", world.Size())
	}

	world = NewWithConfig(FromMap(map[string]string{"w": "20", "h": "15", "floor_chance": "0.5"}))
	if world.Size().W != 20 || world.Size().H != 15 {
		t.Fatalf("config dimensions produced %v, expected 20x15", world.Size())
	}

	for _, name := range []string{"seating-adjacent", "seating-sight"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		if got := factory(nil).Name(); got != name {
			t.Fatalf("factory %q built sim named %q", name, got)
		}
	}
}
