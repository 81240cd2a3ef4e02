//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"seatsim/internal/app"
	"seatsim/internal/core"
	"seatsim/internal/sims/seating"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	params := map[string]string{
		"w":            strconv.Itoa(cfg.Width),
		"h":            strconv.Itoa(cfg.Height),
		"floor_chance": strconv.FormatFloat(cfg.FloorChance, 'f', -1, 64),
	}
	if cfg.Input != "" {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			log.Fatalf("read layout file: %v", err)
		}
		if _, err := seating.ParseLayout(string(data)); err != nil {
			log.Fatalf("parse layout: %v", err)
		}
		params["layout"] = string(data)
	}

	sim := factory(params)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("seatsim — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
