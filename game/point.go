package game

import (
	"fmt"
)

// Point addresses a cell by row (a-j on screen) and column (0-9 on screen)
type Point struct {
	Row, Col int
}

func (point Point) String() string {
	if point.Row >= 0 && point.Row < maxRows && point.Col >= 0 && point.Col < maxCols {
		return fmt.Sprintf("%c%d", 'a'+point.Row, point.Col)
	}
	return fmt.Sprintf("(%d, %d)", point.Row, point.Col)
}
