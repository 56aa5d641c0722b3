package game

type Tile int

const (
	Water Tile = iota
	VerticalShip
	HorizontalShip
	HitShip
	Miss
)

var Tiles = []Tile{
	Water,
	VerticalShip,
	HorizontalShip,
	HitShip,
	Miss,
}

const (
	// BoardSize is the number of rows and columns of a standard board
	BoardSize = 10

	maxRows = 26
	maxCols = 10

	maxPlacementAttempts = 10000
)

// Fleet holds the length of every ship placed on a standard board
var Fleet = []int{5, 4, 3, 3, 2}

type Winner int

const (
	NoWinner Winner = iota
	Player1
	Player2
)

func (winner Winner) String() string {
	switch winner {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "nobody"
	}
}
