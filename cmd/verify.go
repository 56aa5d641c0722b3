package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/gobattle/commitment"
	"github.com/they4kman/gobattle/game"
)

var verifyCmd = &cobra.Command{
	Use:   "verify SNAPSHOT",
	Short: "Check that a saved game's computer fleet matches its commitment",
	Long: `verify recomputes the commitment printed at the start of a game
from the computer's ship layout and the salt revealed at its end, both
read from a saved snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := game.ReadSnapshotFile(args[0])
		if err != nil {
			return err
		}

		layout, err := game.ParseGrid(snapshot.ComputerLayout)
		if err != nil {
			return errors.Wrap(err, "computer layout")
		}

		ok, err := commitment.Verify(layout.ShipMask(), snapshot.Salt, snapshot.Commitment)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Errorf("commitment %s does not match the computer layout", snapshot.Commitment)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "OK", snapshot.Commitment)
		return nil
	},
}
