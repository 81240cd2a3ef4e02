package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"seatsim/internal/sims/seating"
)

func main() {
	input := flag.String("input", "", "seating layout file (default: read stdin)")
	mode := flag.String("mode", "both", "rule mode: adjacent, sight, or both")
	maxGen := flag.Int("max-gen", 10000, "generation cap before giving up (0 = unbounded)")
	show := flag.Bool("show", false, "print the final layout for each mode")
	flag.Parse()

	text, err := readLayout(*input)
	if err != nil {
		log.Fatalf("%v", err)
	}

	modes, err := selectModes(*mode)
	if err != nil {
		log.Fatalf("%v", err)
	}

	for _, m := range modes {
		world, err := seating.FromText(text, m)
		if err != nil {
			log.Fatalf("parse layout: %v", err)
		}
		gens, err := world.Run(*maxGen)
		if err != nil {
			log.Fatalf("%s: %v", m, err)
		}
		fmt.Printf("%-9s %d occupied after %d generations\n", m, world.Occupied(), gens)
		if *show {
			fmt.Print(world.String())
		}
	}
}

func readLayout(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read layout from stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read layout file")
	}
	return string(data), nil
}

func selectModes(name string) ([]seating.Mode, error) {
	if name == "both" {
		return []seating.Mode{seating.ModeAdjacent, seating.ModeLineOfSight}, nil
	}
	m, err := seating.ParseMode(name)
	if err != nil {
		return nil, err
	}
	return []seating.Mode{m}, nil
}
