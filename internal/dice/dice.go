package dice

import (
	"math/rand"
	"time"
)

// Roller is the source of randomness for rolls, draws and shuffles
//
//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/zombied/internal/dice Roller
type Roller interface {
	// Roll returns a value from 1 to sides, like a physical die
	Roll(sides int) int

	// Intn returns a uniform int in [0, n). n must be positive.
	Intn(n int) int

	// Shuffle randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// RandRoller provides dice rolling functionality
type RandRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandRoller) Roll(sides int) int {
	if sides < 1 {
		sides = FacesPerDie
	}
	return r.random.Intn(sides) + 1
}

// Intn returns a uniform int in [0, n)
func (r *RandRoller) Intn(n int) int {
	return r.random.Intn(n)
}

// Shuffle randomizes the order of n elements
func (r *RandRoller) Shuffle(n int, swap func(i, j int)) {
	r.random.Shuffle(n, swap)
}
