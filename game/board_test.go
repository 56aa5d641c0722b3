package game

import (
	"github.com/pkg/errors"
	"math/rand"
	"strings"
	"testing"
)

func TestGenerateBoard(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		board, err := GenerateBoard(rand.New(rand.NewSource(seed)), BoardSize, BoardSize, Fleet)
		if err != nil {
			t.Fatalf("seed %v: %v", seed, err)
		}

		if ships := board.Count(Tile.IsShip); ships != 17 {
			t.Errorf("seed %v: board should have 17 ship cells, not %v", seed, ships)
		}
		if water := board.Count(Tile.IsWater); water != 83 {
			t.Errorf("seed %v: board should have 83 water cells, not %v", seed, water)
		}
		// Every ship is a straight run of its own length, tiled by orientation
		if err := ValidateLayout(board, Fleet); err != nil {
			t.Errorf("seed %v: %v\n%s", seed, err, SerializeGrid(board))
		}
	}
}

func TestGenerateBoardSingleShip(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		board, err := GenerateBoard(rand.New(rand.NewSource(seed)), BoardSize, BoardSize, []int{5})
		if err != nil {
			t.Fatalf("seed %v: %v", seed, err)
		}

		runs := shipRuns(board)
		if len(runs) != 1 || runs[0] != 5 {
			t.Errorf("seed %v: a lone length-5 ship should make one run of 5, not %v\n%s", seed, runs, SerializeGrid(board))
		}
	}
}

func TestGenerateBoardIsSeeded(t *testing.T) {
	first, err := GenerateBoard(rand.New(rand.NewSource(5)), BoardSize, BoardSize, Fleet)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateBoard(rand.New(rand.NewSource(5)), BoardSize, BoardSize, Fleet)
	if err != nil {
		t.Fatal(err)
	}

	if SerializeGrid(first) != SerializeGrid(second) {
		t.Errorf("Boards differ for identical seeds:\n%s\n\n%s", SerializeGrid(first), SerializeGrid(second))
	}
}

func TestGenerateBoardNarrow(t *testing.T) {
	// A length-5 ship only fits a 1x5 board lying down
	board, err := GenerateBoard(rand.New(rand.NewSource(3)), 1, 5, []int{5})
	if err != nil {
		t.Fatal(err)
	}
	if ships := board.Count(func(tile Tile) bool { return tile == HorizontalShip }); ships != 5 {
		t.Errorf("Expected 5 horizontal ship cells, not %v", ships)
	}
}

func TestGenerateBoardFailure(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := GenerateBoard(rng, 2, 2, []int{5}); errors.Cause(err) != ErrPlacementFailed {
		t.Errorf("Expected ErrPlacementFailed for an oversized ship, got %v", err)
	}
	if _, err := GenerateBoard(rng, 2, 2, []int{2, 2, 2}); errors.Cause(err) != ErrPlacementFailed {
		t.Errorf("Expected ErrPlacementFailed for an overfull board, got %v", err)
	}
}

func TestShipCells(t *testing.T) {
	vertical := shipCells(Point{Row: 3, Col: 2}, 4, true)
	for i, cell := range vertical {
		if cell != (Point{Row: 3 + i, Col: 2}) {
			t.Errorf("Vertical cell %v should be (%v, 2), not %v", i, 3+i, cell)
		}
	}

	horizontal := shipCells(Point{Row: 9, Col: 7}, 3, false)
	for i, cell := range horizontal {
		if cell != (Point{Row: 9, Col: 7 + i}) {
			t.Errorf("Horizontal cell %v should be (9, %v), not %v", i, 7+i, cell)
		}
	}
}

func TestCanPlace(t *testing.T) {
	board := NewGrid(5, 5)
	board.SetTile(Point{Row: 2, Col: 2}, VerticalShip)

	if canPlace(board, shipCells(Point{Row: 2, Col: 0}, 3, false)) {
		t.Errorf("Ship overlapping (2, 2) should not be placeable")
	}
	if !canPlace(board, shipCells(Point{Row: 1, Col: 0}, 3, false)) {
		t.Errorf("Ship touching (2, 2) should be placeable")
	}
	if canPlace(board, shipCells(Point{Row: 3, Col: 4}, 3, true)) {
		t.Errorf("Ship leaving the board should not be placeable")
	}
}

func TestResolve(t *testing.T) {
	board := NewGrid(3, 3)
	board.SetTile(Point{Row: 0, Col: 0}, VerticalShip)
	board.SetTile(Point{Row: 0, Col: 1}, HorizontalShip)
	hits := 0

	if !Resolve(board, &hits, Point{Row: 0, Col: 0}) {
		t.Errorf("Guess on a ship should hit")
	}
	if board.TileAt(Point{Row: 0, Col: 0}) != HitShip {
		t.Errorf("Hit ship should become HitShip, not %v", board.TileAt(Point{Row: 0, Col: 0}))
	}
	if hits != 1 {
		t.Errorf("Hits should be 1, not %v", hits)
	}

	if !Resolve(board, &hits, Point{Row: 0, Col: 0}) {
		t.Errorf("Repeat guess on a hit ship should still hit")
	}
	if hits != 1 {
		t.Errorf("Repeat hit should not be counted; hits is %v", hits)
	}

	if !Resolve(board, &hits, Point{Row: 0, Col: 1}) || hits != 2 {
		t.Errorf("Guess on a horizontal ship should hit and count; hits is %v", hits)
	}

	for i := 0; i < 2; i++ {
		if Resolve(board, &hits, Point{Row: 2, Col: 2}) {
			t.Errorf("Guess %v on water should miss", i)
		}
		if board.TileAt(Point{Row: 2, Col: 2}) != Miss {
			t.Errorf("Missed water should become Miss, not %v", board.TileAt(Point{Row: 2, Col: 2}))
		}
	}
	if hits != 2 {
		t.Errorf("Misses should not be counted; hits is %v", hits)
	}
}

func TestUpdateView(t *testing.T) {
	opponent := NewGrid(3, 3)
	opponent.SetTile(Point{Row: 1, Col: 1}, HorizontalShip)
	opponent.SetTile(Point{Row: 1, Col: 2}, HorizontalShip)
	view := NewGrid(3, 3)
	hits := 0

	for _, point := range []Point{{Row: 1, Col: 1}, {Row: 0, Col: 0}} {
		Resolve(opponent, &hits, point)
		UpdateView(view, opponent, point)
	}

	if view.TileAt(Point{Row: 1, Col: 1}) != HitShip {
		t.Errorf("View should show a hit at b1, not %v", view.TileAt(Point{Row: 1, Col: 1}))
	}
	if view.TileAt(Point{Row: 0, Col: 0}) != Miss {
		t.Errorf("View should show a miss at a0, not %v", view.TileAt(Point{Row: 0, Col: 0}))
	}
	if view.TileAt(Point{Row: 1, Col: 2}) != Water {
		t.Errorf("View should not reveal the unguessed ship at b2")
	}
	if ships := view.Count(Tile.IsShip); ships != 0 {
		t.Errorf("View should never hold ship tiles, found %v", ships)
	}
}

func TestGuessSequence(t *testing.T) {
	// Length-2 ship lying at b3-b4
	board := NewGrid(BoardSize, BoardSize)
	board.SetTile(Point{Row: 1, Col: 3}, HorizontalShip)
	board.SetTile(Point{Row: 1, Col: 4}, HorizontalShip)
	view := NewGrid(BoardSize, BoardSize)
	hits := 0

	for _, input := range []string{"b3\n", "b4\n"} {
		point, ok := ParseGuess(input, BoardSize, BoardSize)
		if !ok {
			t.Fatalf("%q should parse", input)
		}
		Resolve(board, &hits, point)
		UpdateView(view, board, point)
	}

	if hits != 2 {
		t.Errorf("Hits should be 2, not %v", hits)
	}
	for _, point := range []Point{{Row: 1, Col: 3}, {Row: 1, Col: 4}} {
		if !view.TileAt(point).IsHit() {
			t.Errorf("View should show a hit at %v", point)
		}
	}
}

func TestValidateLayout(t *testing.T) {
	board := NewGrid(4, 4)
	board.SetTile(Point{Row: 0, Col: 0}, VerticalShip)
	board.SetTile(Point{Row: 1, Col: 0}, VerticalShip)

	if err := ValidateLayout(board, []int{2}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := ValidateLayout(board, []int{3}); err == nil {
		t.Errorf("Expected an error for the wrong number of ship cells")
	}
	if err := ValidateLayout(board, []int{1, 1}); err != nil {
		t.Errorf("Two stacked length-1 ships should fit a run of 2: %v", err)
	}

	board.SetTile(Point{Row: 3, Col: 3}, Miss)
	if err := ValidateLayout(board, []int{2}); err == nil {
		t.Errorf("Expected an error for a layout holding a miss")
	}
}

func TestShipRuns(t *testing.T) {
	grid, err := ParseGrid(strings.Join([]string{
		"|==~",
		"|~~|",
		"~===",
		"||~|",
	}, "\n"))
	if err != nil {
		t.Fatal(err)
	}

	// Columns first, then rows
	expected := []int{2, 1, 1, 1, 1, 2, 3}
	runs := shipRuns(grid)
	if len(runs) != len(expected) {
		t.Fatalf("Runs should be %v, not %v", expected, runs)
	}
	for i := range expected {
		if runs[i] != expected[i] {
			t.Errorf("Runs should be %v, not %v", expected, runs)
			break
		}
	}
}

func TestSplitsIntoFleet(t *testing.T) {
	cases := []struct {
		runs  []int
		fleet []int
		ok    bool
	}{
		{[]int{5, 4, 3, 3, 2}, Fleet, true},
		{[]int{9, 3, 3, 2}, Fleet, true},
		{[]int{8, 7, 2}, Fleet, true},
		{[]int{17}, Fleet, true},
		{[]int{6, 6, 5}, Fleet, true},
		{[]int{7, 6, 2, 2}, Fleet, false},
		{[]int{16, 1}, Fleet, false},
		{[]int{5, 4, 3, 3, 1, 1}, Fleet, false},
		{[]int{5, 4, 3, 3}, Fleet, false},
	}

	for _, c := range cases {
		if splitsIntoFleet(c.runs, c.fleet) != c.ok {
			t.Errorf("splitsIntoFleet(%v, %v) should be %v", c.runs, c.fleet, c.ok)
		}
	}
}
