package random

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gobattle/game"
	"math/rand"
)

// Director guesses every cell of the board exactly once, in a uniformly
// random order
type Director struct {
	remaining deque.Deque
}

func (director *Director) Init(rows, cols int, rng *rand.Rand) {
	points := game.NewGrid(rows, cols).Points()

	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})

	director.remaining = deque.Deque{}
	for _, point := range points {
		director.remaining.PushBack(point)
	}
}

func (director *Director) Act() (game.Point, bool) {
	if director.remaining.Len() == 0 {
		return game.Point{}, false
	}
	return director.remaining.PopFront().(game.Point), true
}

// Remaining returns the number of cells not yet guessed
func (director *Director) Remaining() int {
	return director.remaining.Len()
}
