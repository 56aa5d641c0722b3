package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"math/rand"
)

var ErrPlacementFailed = errors.New("could not place ship")

// GenerateBoard returns a rows x cols grid of water with one ship of each
// given length placed at random. Ships never share a cell, but may touch.
func GenerateBoard(rng *rand.Rand, rows, cols int, shipLengths []int) (*Grid, error) {
	board := NewGrid(rows, cols)

	for _, length := range shipLengths {
		if length <= 0 || (length > rows && length > cols) {
			return nil, errors.Wrapf(ErrPlacementFailed, "ship of length %d does not fit a %dx%d board", length, rows, cols)
		}

		vertical := rng.Intn(2) == 0
		if vertical && length > rows {
			vertical = false
		} else if !vertical && length > cols {
			vertical = true
		}
		attempts, err := placeShip(rng, board, length, vertical)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"length":   length,
			"vertical": vertical,
			"attempts": attempts,
		}).Debug("placed ship")
	}

	return board, nil
}

func placeShip(rng *rand.Rand, board *Grid, length int, vertical bool) (int, error) {
	tile := HorizontalShip
	rowSpan, colSpan := board.Rows(), board.Cols()-length+1
	if vertical {
		tile = VerticalShip
		rowSpan, colSpan = board.Rows()-length+1, board.Cols()
	}

	for attempt := 1; attempt <= maxPlacementAttempts; attempt++ {
		anchor := Point{Row: rng.Intn(rowSpan), Col: rng.Intn(colSpan)}
		cells := shipCells(anchor, length, vertical)

		if canPlace(board, cells) {
			for _, cell := range cells {
				board.SetTile(cell, tile)
			}
			return attempt, nil
		}
	}

	return maxPlacementAttempts, errors.Wrapf(ErrPlacementFailed, "length %d after %d attempts", length, maxPlacementAttempts)
}

func shipCells(anchor Point, length int, vertical bool) []Point {
	cells := make([]Point, length)
	for i := range cells {
		if vertical {
			cells[i] = Point{Row: anchor.Row + i, Col: anchor.Col}
		} else {
			cells[i] = Point{Row: anchor.Row, Col: anchor.Col + i}
		}
	}
	return cells
}

func canPlace(board *Grid, cells []Point) bool {
	for _, cell := range cells {
		if !board.Contains(cell) || !board.TileAt(cell).IsWater() {
			return false
		}
	}
	return true
}

// Resolve applies a guess at point to board. A guess on an unhit ship
// segment marks it hit and increments hits; a repeat guess on a hit segment
// reports a hit without counting it again. Anything else becomes a miss.
func Resolve(board *Grid, hits *int, point Point) bool {
	tile := board.TileAt(point)

	switch {
	case tile.IsShip():
		board.SetTile(point, HitShip)
		*hits++
		return true
	case tile.IsHit():
		return true
	default:
		board.SetTile(point, Miss)
		return false
	}
}

// UpdateView reveals the outcome of a resolved guess at point on the
// opponent's board, never the ship tile underneath
func UpdateView(view *Grid, opponent *Grid, point Point) {
	if tile := opponent.TileAt(point); tile.IsHit() {
		view.SetTile(point, tile)
	} else {
		view.SetTile(point, Miss)
	}
}

// ValidateLayout checks that board is a freshly generated layout for the
// given fleet: only water and ship tiles, and ship runs that split exactly
// into shipLengths. Vertical ships are read as column runs of VerticalShip
// and horizontal ships as row runs of HorizontalShip; touching ships of the
// same orientation merge into one run.
func ValidateLayout(board *Grid, shipLengths []int) error {
	if resolved := board.Count(Tile.IsResolved); resolved != 0 {
		return errors.Errorf("layout has %d resolved cells", resolved)
	}
	if ships, expected := board.Count(Tile.IsShip), sumLengths(shipLengths); ships != expected {
		return errors.Errorf("layout has %d ship cells, expected %d", ships, expected)
	}

	runs := shipRuns(board)
	if !splitsIntoFleet(runs, shipLengths) {
		return errors.Errorf("ship runs %v cannot be split into fleet %v", runs, shipLengths)
	}
	return nil
}

// shipRuns returns the lengths of the maximal column runs of VerticalShip
// and row runs of HorizontalShip. Every ship tile lies in exactly one run.
func shipRuns(board *Grid) []int {
	var runs []int

	for col := 0; col < board.Cols(); col++ {
		length := 0
		for row := 0; row <= board.Rows(); row++ {
			if row < board.Rows() && board.TileAt(Point{Row: row, Col: col}) == VerticalShip {
				length++
				continue
			}
			if length > 0 {
				runs = append(runs, length)
			}
			length = 0
		}
	}

	for row := 0; row < board.Rows(); row++ {
		length := 0
		for col := 0; col <= board.Cols(); col++ {
			if col < board.Cols() && board.TileAt(Point{Row: row, Col: col}) == HorizontalShip {
				length++
				continue
			}
			if length > 0 {
				runs = append(runs, length)
			}
			length = 0
		}
	}

	return runs
}

// splitsIntoFleet reports whether every ship can be assigned to a run so
// that each run is filled exactly
func splitsIntoFleet(runs []int, shipLengths []int) bool {
	if sumLengths(runs) != sumLengths(shipLengths) {
		return false
	}

	remaining := append([]int(nil), runs...)

	var assign func(ship int) bool
	assign = func(ship int) bool {
		if ship == len(shipLengths) {
			return true
		}
		length := shipLengths[ship]
		for i := range remaining {
			if remaining[i] < length {
				continue
			}
			remaining[i] -= length
			if assign(ship + 1) {
				return true
			}
			remaining[i] += length
		}
		return false
	}

	// Equal totals mean every run ends up empty once all ships are assigned
	return assign(0)
}

func sumLengths(shipLengths []int) int {
	total := 0
	for _, length := range shipLengths {
		total += length
	}
	return total
}
