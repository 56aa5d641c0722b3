package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type GameConfig struct {
	Rows, Cols  int
	ShipLengths []int

	// Zero picks a seed from the clock
	Seed int64

	// Snapshot to replay ship layouts from
	Snapshot *GameSnapshot

	// Computer opponent; required
	Director Director

	// Number of blank lines printed to clear the screen
	ClearLines int

	// Where the computer's fleet commitment and salt are announced, kept
	// apart from the game screen; nil skips the announcements
	CommitmentOut io.Writer

	// Path to directory where final snapshots of games should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:        BoardSize,
		Cols:        BoardSize,
		ShipLengths: Fleet,
		Director:    nil,
		Snapshot:    nil,
		ClearLines:  18,
	}
}

func (config GameConfig) validate() error {
	if config.Rows < 1 || config.Rows > maxRows {
		return errors.Errorf("rows must be between 1 and %d, got %d", maxRows, config.Rows)
	}
	if config.Cols < 1 || config.Cols > maxCols {
		return errors.Errorf("columns must be between 1 and %d, got %d", maxCols, config.Cols)
	}
	if len(config.ShipLengths) == 0 {
		return errors.New("no ships to place")
	}
	if config.Director == nil {
		return errors.New("no director configured for the computer player")
	}
	return nil
}

func (config GameConfig) numShipCells() int {
	return sumLengths(config.ShipLengths)
}

func (config GameConfig) createBoards(rng *rand.Rand) (human *Grid, computer *Grid, err error) {
	if config.Snapshot != nil {
		if human, computer, err = config.Snapshot.Layouts(config.ShipLengths); err != nil {
			return nil, nil, err
		}
		if human.Rows() > maxRows || human.Cols() > maxCols {
			return nil, nil, errors.Errorf("snapshot boards are %dx%d, at most %dx%d can be played", human.Rows(), human.Cols(), maxRows, maxCols)
		}
		return human, computer, nil
	}

	if human, err = GenerateBoard(rng, config.Rows, config.Cols, config.ShipLengths); err != nil {
		return nil, nil, errors.Wrap(err, "generating human board")
	}
	if computer, err = GenerateBoard(rng, config.Rows, config.Cols, config.ShipLengths); err != nil {
		return nil, nil, errors.Wrap(err, "generating computer board")
	}
	return human, computer, nil
}

func (config GameConfig) onGameEnd(match *Match) {
	config.saveSnapshot(match)
}

func (config GameConfig) saveSnapshot(match *Match) {
	if config.SavedSnapshotsDir == "" {
		return
	}
	log := logrus.WithField("dir", config.SavedSnapshotsDir)

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
				log.WithError(err).Warn("could not create snapshots directory")
				return
			}
		} else {
			log.WithError(err).Warn("could not stat snapshots directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Warn("snapshots path is not a directory; cannot save snapshots to it")
		return
	}

	filename := config.generateReplayFilename(match, time.Now())
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		log.WithError(err).Warn("could not create snapshot file")
		return
	}
	defer file.Close()

	snapshot := match.snapshot()
	if _, err := file.WriteString(snapshot.Serialize()); err != nil {
		log.WithError(err).Warn("could not write snapshot")
		return
	}
	log.WithField("path", path).Debug("saved snapshot")
}

func (config GameConfig) generateReplayFilename(match *Match, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var winnerStr string
	switch match.winner {
	case Player1:
		winnerStr = "p1"
	case Player2:
		winnerStr = "p2"
	default:
		winnerStr = "other"
	}
	filenameBuilder.WriteString(winnerStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

// Run plays one game, reading guesses from in and drawing to out, until
// either player has hit every enemy ship segment
func Run(config GameConfig, in io.Reader, out io.Writer) error {
	if err := config.validate(); err != nil {
		return errors.Wrap(err, "invalid game config")
	}

	seed := config.Seed
	if config.Snapshot != nil && seed == 0 {
		seed = config.Snapshot.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logrus.WithField("seed", seed).Debug("starting game")

	match, err := newMatch(config, seed, in, out)
	if err != nil {
		return err
	}

	if err := match.play(); err != nil {
		return err
	}

	config.onGameEnd(match)
	return nil
}
