package game

import (
	"fmt"
)

// Grid is a rectangular matrix of tiles. Both a player's own board and the
// fog-of-war view of the opponent's board are Grids.
type Grid struct {
	rows, cols int
	tiles      [][]Tile
}

func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid grid dimensions %dx%d", rows, cols))
	}

	grid := Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([][]Tile, rows),
	}
	for row := range grid.tiles {
		grid.tiles[row] = make([]Tile, cols)
	}
	return &grid
}

func (grid *Grid) Rows() int {
	return grid.rows
}

func (grid *Grid) Cols() int {
	return grid.cols
}

func (grid *Grid) NumCells() int {
	return grid.rows * grid.cols
}

func (grid *Grid) Contains(point Point) bool {
	return point.Row >= 0 && point.Col >= 0 && point.Row < grid.rows && point.Col < grid.cols
}

func (grid *Grid) TileAt(point Point) Tile {
	grid.mustContain(point)
	return grid.tiles[point.Row][point.Col]
}

func (grid *Grid) SetTile(point Point, tile Tile) {
	grid.mustContain(point)
	grid.tiles[point.Row][point.Col] = tile
}

// Points lists every cell, row by row
func (grid *Grid) Points() []Point {
	points := make([]Point, 0, grid.NumCells())
	for row := 0; row < grid.rows; row++ {
		for col := 0; col < grid.cols; col++ {
			points = append(points, Point{Row: row, Col: col})
		}
	}
	return points
}

// Count returns the number of tiles matching the predicate
func (grid *Grid) Count(matches func(Tile) bool) int {
	count := 0
	for _, row := range grid.tiles {
		for _, tile := range row {
			if matches(tile) {
				count++
			}
		}
	}
	return count
}

// ShipMask flattens the grid row by row, yielding 1 for every cell that
// holds a ship segment (hit or not) and 0 elsewhere
func (grid *Grid) ShipMask() []uint8 {
	mask := make([]uint8, 0, grid.NumCells())
	for _, row := range grid.tiles {
		for _, tile := range row {
			if tile.IsShip() || tile.IsHit() {
				mask = append(mask, 1)
			} else {
				mask = append(mask, 0)
			}
		}
	}
	return mask
}

func (grid *Grid) Clone() *Grid {
	clone := NewGrid(grid.rows, grid.cols)
	for row := range grid.tiles {
		copy(clone.tiles[row], grid.tiles[row])
	}
	return clone
}

func (grid *Grid) mustContain(point Point) {
	if !grid.Contains(point) {
		panic(fmt.Sprintf("point %v outside %dx%d grid", point, grid.rows, grid.cols))
	}
}
