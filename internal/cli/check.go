package cli

import (
	"fmt"

	"github.com/protolist-labs/protolist/internal/config"
	"github.com/protolist-labs/protolist/internal/generator"
	"github.com/protolist-labs/protolist/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve all descriptors without writing the catalog",
	Long: `Run the full resolution (parsing, base types, robot ancestors, slot types)
and report the first inconsistency. Nothing is written, so check can gate
commits that touch descriptors.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	res, err := checkTree(cmd)
	if err != nil {
		return err
	}
	ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%d protos resolved (%d need a robot ancestor, %d slots)",
		len(res.Catalog.Protos), res.Flagged, res.Slots), flagNoColor)
	return nil
}

// checkTree runs the pipeline without writing, for the read-only commands.
func checkTree(cmd *cobra.Command) (*generator.Result, error) {
	home, err := config.Home()
	if err != nil {
		return nil, err
	}
	settings, err := loadSettings(home)
	if err != nil {
		return nil, err
	}

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	return generator.Check(cmd.Context(), generator.Options{
		Home:     home,
		Settings: settings,
		Logger:   logger,
	})
}
