package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodSpawner places food uniformly at random on free grid cells.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner with a deterministic RNG.
func NewFoodSpawner(seed int64) *FoodSpawner {
	return &FoodSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn rolls a cell in [0, cols) x [0, rows) until it finds one that
// occupied rejects. Retries are unbounded: on a grid with no free cell
// this never returns.
func (f *FoodSpawner) Spawn(cols, rows int, occupied func(core.Point) bool) core.Point {
	for {
		p := core.Point{X: f.rng.Intn(cols), Y: f.rng.Intn(rows)}
		if !occupied(p) {
			return p
		}
	}
}
