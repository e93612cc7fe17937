//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"neon-ca/internal/app"
	"neon-ca/internal/eca"
	"neon-ca/internal/worker"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	mgr := worker.NewManager()
	if err := mgr.Init(cfg.Rule, cfg.Width, cfg.Height); err != nil {
		log.Fatalf("init worker: %v", err)
	}
	defer mgr.Terminate()

	if cfg.Pattern == "random" {
		if _, err := mgr.Seed(eca.RandomSeed(cfg.Density, cfg.Seed)); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	game := app.New(mgr, cfg)

	ebiten.SetWindowTitle(fmt.Sprintf("neon-ca — rule %d", eca.ClampRule(cfg.Rule)))
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
