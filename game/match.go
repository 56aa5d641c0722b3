package game

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gobattle/commitment"
	"github.com/they4kman/gobattle/util/collections"
	"io"
	"math/big"
	"math/rand"
)

var (
	ErrRepeatedGuess     = errors.New("computer guessed a cell twice")
	ErrDirectorExhausted = errors.New("computer has no cells left to guess")
)

// Match holds the state of one game between the human (Player 1) and the
// computer (Player 2)
type Match struct {
	config GameConfig
	seed   int64

	guesses *guessReader
	screen  *screen

	humanBoard, computerBoard   *Grid
	humanLayout, computerLayout *Grid
	// What the human has learned about the computer's board
	view *Grid

	// Ship segments each player has hit on the other's board
	humanHits, computerHits int
	target                  int

	computerGuesses collections.Set[Point]
	turns           int
	winner          Winner

	salt, commitment *big.Int
}

func newMatch(config GameConfig, seed int64, in io.Reader, out io.Writer) (*Match, error) {
	rng := rand.New(rand.NewSource(seed))

	humanBoard, computerBoard, err := config.createBoards(rng)
	if err != nil {
		return nil, err
	}

	match := Match{
		config:          config,
		seed:            seed,
		guesses:         newGuessReader(in, humanBoard.Rows(), humanBoard.Cols()),
		screen:          newScreen(out, config.ClearLines),
		humanBoard:      humanBoard,
		computerBoard:   computerBoard,
		humanLayout:     humanBoard.Clone(),
		computerLayout:  computerBoard.Clone(),
		view:            NewGrid(humanBoard.Rows(), humanBoard.Cols()),
		target:          config.numShipCells(),
		computerGuesses: make(collections.Set[Point]),
	}

	if match.salt, err = commitment.NewSalt(); err != nil {
		return nil, err
	}
	if match.commitment, err = commitment.Commit(computerBoard.ShipMask(), match.salt); err != nil {
		return nil, errors.Wrap(err, "committing to computer fleet")
	}

	config.Director.Init(humanBoard.Rows(), humanBoard.Cols(), rng)

	return &match, nil
}

func (match *Match) play() error {
	if err := match.announce("Computer fleet commitment:", commitment.Hex(match.commitment)); err != nil {
		return err
	}

	match.screen.clear()
	match.screen.grid(match.humanBoard)
	match.screen.grid(match.view)

	for {
		hit, err := match.humanTurn()
		if err != nil {
			return err
		}
		if match.humanHits >= match.target {
			return match.finish(Player1)
		}

		if err := match.computerTurn(); err != nil {
			return err
		}
		if match.computerHits >= match.target {
			return match.finish(Player2)
		}

		match.drawTurn(hit)
	}
}

func (match *Match) humanTurn() (bool, error) {
	if err := match.screen.flush(); err != nil {
		return false, errors.Wrap(err, "drawing screen")
	}

	point, err := match.guesses.next()
	if err != nil {
		return false, err
	}
	match.turns++

	hit := Resolve(match.computerBoard, &match.humanHits, point)
	UpdateView(match.view, match.computerBoard, point)

	logrus.WithFields(logrus.Fields{
		"player": Player1,
		"point":  point,
		"hit":    hit,
		"hits":   match.humanHits,
	}).Debug("guess resolved")
	return hit, nil
}

func (match *Match) computerTurn() error {
	point, ok := match.config.Director.Act()
	if !ok {
		return ErrDirectorExhausted
	}
	if !match.humanBoard.Contains(point) {
		return errors.Errorf("computer guessed %v outside the board", point)
	}
	if match.computerGuesses.Contains(point) {
		return errors.Wrapf(ErrRepeatedGuess, "at %v", point)
	}
	match.computerGuesses.Add(point)

	hit := Resolve(match.humanBoard, &match.computerHits, point)

	logrus.WithFields(logrus.Fields{
		"player": Player2,
		"point":  point,
		"hit":    hit,
		"hits":   match.computerHits,
	}).Debug("guess resolved")
	return nil
}

func (match *Match) drawTurn(hit bool) {
	match.screen.clear()
	match.screen.grid(match.humanBoard)
	match.screen.println()
	match.screen.println(banner(hit))
	match.screen.grid(match.view)
	match.screen.println()
}

func (match *Match) finish(winner Winner) error {
	match.winner = winner
	match.screen.clear()

	switch winner {
	case Player1:
		match.screen.grid(match.humanBoard)
		match.screen.grid(match.view)
		match.screen.println(winMessage(winner))
	case Player2:
		match.screen.println(winMessage(winner))
		match.screen.grid(match.humanBoard)
		match.screen.grid(match.computerBoard)
	}

	logrus.WithFields(logrus.Fields{
		"winner": winner,
		"turns":  match.turns,
	}).Debug("game over")

	if err := match.screen.flush(); err != nil {
		return errors.Wrap(err, "drawing screen")
	}
	return match.announce("Computer fleet salt:", commitment.Hex(match.salt))
}

func (match *Match) announce(label, value string) error {
	if match.config.CommitmentOut == nil {
		return nil
	}
	_, err := fmt.Fprintln(match.config.CommitmentOut, label, value)
	return errors.Wrap(err, "announcing commitment")
}

func (match *Match) Winner() Winner {
	return match.winner
}

func (match *Match) snapshot() *GameSnapshot {
	snapshot := GameSnapshot{
		Seed:           match.seed,
		Turns:          match.turns,
		HumanLayout:    SerializeGrid(match.humanLayout),
		ComputerLayout: SerializeGrid(match.computerLayout),
		HumanBoard:     SerializeGrid(match.humanBoard),
		ComputerBoard:  SerializeGrid(match.computerBoard),
		Commitment:     commitment.Hex(match.commitment),
		Salt:           commitment.Hex(match.salt),
	}
	if match.winner != NoWinner {
		snapshot.Winner = match.winner.String()
	}
	return &snapshot
}

func banner(hit bool) string {
	if hit {
		return "Hit!"
	}
	return "Miss..."
}

func winMessage(winner Winner) string {
	return winner.String() + " wins!"
}
