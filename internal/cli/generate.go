package cli

import (
	"fmt"
	"time"

	"github.com/protolist-labs/protolist/internal/catalog"
	"github.com/protolist-labs/protolist/internal/config"
	"github.com/protolist-labs/protolist/internal/generator"
	"github.com/spf13/cobra"
)

var (
	generateOutput  string
	generateFormat  string
	generateWorkers int
	generateSilent  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [tag]",
	Short: "Generate the proto list catalog",
	Long: `Resolve every PROTO descriptor under $WEBOTS_HOME/projects and write the catalog.

Without a tag, asset urls use the local webots:// scheme. With a release tag
(e.g. R2025a) they point at the raw files of that release.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Catalog path (default: settings output, relative to $WEBOTS_HOME)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Catalog format: xml, json or yaml (default: settings format)")
	generateCmd.Flags().IntVarP(&generateWorkers, "workers", "j", 0, "Worker pool size (default: settings workers, 0 = number of CPUs)")
	generateCmd.Flags().BoolVarP(&generateSilent, "silent", "s", false, "Do not print progress")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	home, err := config.Home()
	if err != nil {
		return err
	}
	settings, err := loadSettings(home)
	if err != nil {
		return err
	}

	var tag string
	if len(args) == 1 {
		tag = args[0]
	}

	out := cmd.OutOrStdout()
	if !generateSilent {
		fmt.Fprintf(out, "# generating with prefix \"%s\"\n", catalog.Prefix(settings.RemoteURL, settings.LocalURL, tag))
	}

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	res, err := generator.Generate(cmd.Context(), generator.Options{
		Home:     home,
		Tag:      tag,
		Settings: settings,
		Output:   generateOutput,
		Format:   generateFormat,
		Workers:  generateWorkers,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if !generateSilent {
		fmt.Fprintf(out, "# wrote %d protos to %s (%s)\n", len(res.Catalog.Protos), res.Output, res.Duration.Round(time.Millisecond))
	}
	return nil
}
