package shuffle

import (
	"math/rand"
	"time"
)

// Shuffler is the engine's only source of randomness
type Shuffler struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for deterministic tests
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Shuffler{
		random: rand.New(source),
	}
}

// Shuffle pseudo-randomizes the order of n elements through swap
func (s *Shuffler) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	s.random.Shuffle(n, swap)
}
