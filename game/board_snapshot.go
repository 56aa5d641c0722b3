package game

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"os"
	"strings"
)

type GameSnapshot struct {
	Seed   int64  `yaml:"seed"`
	Winner string `yaml:"winner,omitempty"`
	Turns  int    `yaml:"turns"`

	// Ship layouts as generated, before any guess
	HumanLayout    string `yaml:"human_layout"`
	ComputerLayout string `yaml:"computer_layout"`

	// Boards as they stood when the game ended
	HumanBoard    string `yaml:"human_board,omitempty"`
	ComputerBoard string `yaml:"computer_board,omitempty"`

	Commitment string `yaml:"commitment,omitempty"`
	Salt       string `yaml:"salt,omitempty"`
}

func (snapshot *GameSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Layouts parses both ship layouts, checking each is an unplayed board
// holding exactly the ships of shipLengths
func (snapshot *GameSnapshot) Layouts(shipLengths []int) (human *Grid, computer *Grid, err error) {
	if human, err = ParseGrid(snapshot.HumanLayout); err != nil {
		return nil, nil, errors.Wrap(err, "human layout")
	}
	if err = ValidateLayout(human, shipLengths); err != nil {
		return nil, nil, errors.Wrap(err, "human layout")
	}

	if computer, err = ParseGrid(snapshot.ComputerLayout); err != nil {
		return nil, nil, errors.Wrap(err, "computer layout")
	}
	if err = ValidateLayout(computer, shipLengths); err != nil {
		return nil, nil, errors.Wrap(err, "computer layout")
	}

	if human.Rows() != computer.Rows() || human.Cols() != computer.Cols() {
		return nil, nil, errors.Errorf(
			"layouts differ in size: %dx%d and %dx%d",
			human.Rows(), human.Cols(), computer.Rows(), computer.Cols())
	}
	return human, computer, nil
}

func SerializeGrid(grid *Grid) string {
	rows := make([]string, grid.Rows())
	for row := range rows {
		var builder strings.Builder
		for col := 0; col < grid.Cols(); col++ {
			builder.WriteRune(grid.TileAt(Point{Row: row, Col: col}).serialize())
		}
		rows[row] = builder.String()
	}
	return strings.Join(rows, "\n")
}

func ParseGrid(serialized string) (*Grid, error) {
	rows := strings.Split(strings.TrimSpace(serialized), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("empty board")
	}

	grid := NewGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		if len(row) != grid.Cols() {
			return nil, errors.Errorf("row %d has %d cells, expected %d", y, len(row), grid.Cols())
		}

		for x, c := range row {
			tile, ok := deserializeTile(c)
			if !ok {
				return nil, errors.Errorf("unknown tile %q at row %d, column %d", c, y, x)
			}
			grid.SetTile(Point{Row: y, Col: x}, tile)
		}
	}
	return grid, nil
}

func LoadSnapshot(in string) (*GameSnapshot, error) {
	var snapshot GameSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "decoding snapshot")
	}
	return &snapshot, nil
}

func ReadSnapshotFile(path string) (*GameSnapshot, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	return LoadSnapshot(string(contents))
}
