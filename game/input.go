package game

import (
	"bufio"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
	"strings"
)

var ErrInputClosed = errors.New("input closed while waiting for a guess")

// ParseGuess reads a guess such as "c4" from the first two characters of
// line: a lowercase row letter and a column digit. Anything after them is
// ignored. ok is false for short, malformed or out-of-range input.
func ParseGuess(line string, rows, cols int) (point Point, ok bool) {
	if len(line) < 2 {
		return Point{}, false
	}

	rowChar, colChar := line[0], line[1]
	if rowChar < 'a' || rowChar > 'z' || colChar < '0' || colChar > '9' {
		return Point{}, false
	}

	point = Point{Row: int(rowChar - 'a'), Col: int(colChar - '0')}
	if point.Row >= rows || point.Col >= cols {
		return Point{}, false
	}
	return point, true
}

type guessReader struct {
	in         *bufio.Reader
	rows, cols int
}

func newGuessReader(in io.Reader, rows, cols int) *guessReader {
	return &guessReader{
		in:   bufio.NewReader(in),
		rows: rows,
		cols: cols,
	}
}

// next blocks until a line parses into a guess, silently skipping lines
// that do not
func (reader *guessReader) next() (Point, error) {
	for {
		line, err := reader.in.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return Point{}, ErrInputClosed
			}
			return Point{}, errors.Wrap(err, "reading guess")
		}

		if point, ok := ParseGuess(line, reader.rows, reader.cols); ok {
			return point, nil
		}

		logrus.WithField("input", strings.TrimRight(line, "\r\n")).Debug("rejected guess")
	}
}
