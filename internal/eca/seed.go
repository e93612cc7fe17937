package eca

import (
	"log"

	"neon-ca/internal/core"
)

// SeedKind selects how the initial generation row is produced.
type SeedKind int

const (
	// SeedSingle activates one cell at the horizontal center.
	SeedSingle SeedKind = iota
	// SeedRandom activates each cell independently with probability Density.
	SeedRandom
	// SeedCustom copies an explicit row from Cells.
	SeedCustom
)

// Seed describes an initial condition for generation 0.
type Seed struct {
	Kind    SeedKind
	Density float64 // SeedRandom activation probability; 0 means the 0.5 default
	Cells   []uint8 // SeedCustom row, truncated or zero-padded to the grid width
	Rand    int64   // SeedRandom source seed
}

// SingleSeed returns the default initial condition: a lone center cell.
func SingleSeed() Seed { return Seed{Kind: SeedSingle} }

// RandomSeed returns a random initial condition with the given density and
// deterministic source seed.
func RandomSeed(density float64, rand int64) Seed {
	return Seed{Kind: SeedRandom, Density: density, Rand: rand}
}

// CustomSeed returns an explicit initial row.
func CustomSeed(cells []uint8) Seed { return Seed{Kind: SeedCustom, Cells: cells} }

// apply writes the seed into row, which has already been zeroed. Malformed
// seeds are sanitized, never rejected: an unknown kind falls back to the
// single center cell, a mismatched custom row is truncated or zero-padded,
// and non-binary custom values collapse to 1.
func (s Seed) apply(row []uint8) {
	switch s.Kind {
	case SeedSingle:
		row[len(row)/2] = 1
	case SeedRandom:
		density := s.Density
		if density <= 0 {
			density = 0.5
		}
		core.FillBinaryDensity(core.NewRNG(s.Rand).Source(), row, density)
	case SeedCustom:
		if len(s.Cells) != len(row) {
			log.Printf("eca: custom seed has %d cells, want %d; adjusting", len(s.Cells), len(row))
		}
		for i := 0; i < len(row) && i < len(s.Cells); i++ {
			if s.Cells[i] != 0 {
				row[i] = 1
			}
		}
	default:
		log.Printf("eca: unknown seed kind %d, using single center cell", s.Kind)
		row[len(row)/2] = 1
	}
}
