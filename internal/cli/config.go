package cli

import (
	"encoding/json"
	"fmt"

	"github.com/protolist-labs/protolist/internal/config"
	"github.com/protolist-labs/protolist/internal/ui"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	configDefaults bool
	configJSON     bool
)

func init() {
	configCmd.Flags().BoolVar(&configDefaults, "defaults", false, "Print the built-in defaults, ignoring files and environment")
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings after merging the built-in defaults, protolist.yaml and
PROTOLIST_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			settings *config.Settings
			err      error
		)
		if configDefaults {
			settings, err = config.Default()
		} else {
			home, _ := config.Home()
			settings, err = loadSettings(home)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if configJSON {
			data, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling settings: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if !configDefaults {
			if settings.File != "" {
				fmt.Fprintf(out, "# settings file: %s\n", settings.File)
			} else {
				ui.PrintWarning(cmd.ErrOrStderr(), "no settings file found, using defaults and environment", flagNoColor)
			}
		}
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		_, err = out.Write(data)
		return err
	},
}
