package cmd

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gobattle/director/random"
	"github.com/they4kman/gobattle/game"
	"os"
	"strings"
)

var gameConfig = game.NewGameConfig()
var snapshotPath string
var logLevel = logrus.WarnLevel

var rootCmd = &cobra.Command{
	Use:   "gobattle",
	Short: "Play Battleship against the computer in a terminal",
	Long: `gobattle is a game of Battleship played against a computer
opponent which guesses at random.

Enter guesses as a row letter and a column digit, e.g.
	c4

Replay the fleets of a saved game
	gobattle --snapshot games/20240101_120000_p1.yaml
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if snapshotPath != "" {
			snapshot, err := game.ReadSnapshotFile(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		gameConfig.Director = &random.Director{}
		gameConfig.CommitmentOut = cmd.ErrOrStderr()

		return game.Run(gameConfig, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type logLevelValue logrus.Level

func newLogLevelValue(val logrus.Level, p *logrus.Level) *logLevelValue {
	*p = val
	return (*logLevelValue)(p)
}

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := logrus.ParseLevel(strings.ToLower(value))
	if err != nil {
		return fmt.Errorf("invalid log level %q", value)
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}

func init() {
	rootCmd.SilenceErrors = true

	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for ship placement and computer guesses (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Saved game whose ship layouts should be replayed")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where the final snapshot of each game is saved")
	rootCmd.PersistentFlags().Var(newLogLevelValue(logrus.WarnLevel, &logLevel), "log-level", `Logging verbosity, written to stderr:
panic, fatal, error, warning, info, debug`)

	rootCmd.AddCommand(verifyCmd)
}
