// Package random backs the coin, number and colour endpoints.
package random

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

const (
	MinNumber = 1
	MaxNumber = 100
)

type Colour struct {
	Hex   string `json:"hex"`
	Red   uint8  `json:"red"`
	Green uint8  `json:"green"`
	Blue  uint8  `json:"blue"`
}

// Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator seeded from the runtime's random source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// FlipCoin returns "Heads" or "Tails".
func (g *Generator) FlipCoin() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rng.IntN(2) == 0 {
		return "Heads"
	}
	return "Tails"
}

// Number returns an integer in [MinNumber, MaxNumber].
func (g *Generator) Number() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return MinNumber + g.rng.IntN(MaxNumber-MinNumber+1)
}

func (g *Generator) Colour() Colour {
	g.mu.Lock()
	rgb := g.rng.Uint32N(1 << 24)
	g.mu.Unlock()

	c := Colour{
		Red:   uint8(rgb >> 16),
		Green: uint8(rgb >> 8),
		Blue:  uint8(rgb),
	}
	c.Hex = fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
	return c
}
