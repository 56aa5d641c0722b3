package game

import (
	"math/rand"
)

type Director interface {
	/**
	 * Prepare to guess against a rows x cols board
	 */
	Init(rows, cols int, rng *rand.Rand)

	/**
	 * Choose the next cell to guess. ok is false once no cell is left.
	 */
	Act() (point Point, ok bool)
}
