package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/protolist-labs/protolist/internal/branding"
	"github.com/protolist-labs/protolist/internal/config"
	"github.com/protolist-labs/protolist/internal/logging"
	"github.com/protolist-labs/protolist/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagVerbose bool
	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scans the PROTO descriptors of a ` + branding.HomeEnvVar() + ` tree, resolves
their base node types, robot ancestor requirements and slot types, and writes
the proto list catalog used by the simulator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			color.NoColor = true
		}
		config.LoadEnvFile(".env")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default: protolist.yaml in the current directory or $"+branding.HomeEnvVar()+")")
}

// Execute runs the root command with build info injected via ldflags. The
// final error, if any, is printed to stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		ui.PrintError(os.Stderr, ui.ErrorOptions{
			Context:     errorContext(cmd),
			Err:         err,
			Suggestions: suggestionsFor(err),
			NoColor:     flagNoColor,
		})
	}
	return err
}

func newLogger() *zap.Logger {
	return logging.New(flagVerbose)
}

// loadSettings merges the settings file, if any, with defaults and the
// environment. Without --config, protolist.yaml is looked up in the current
// directory, then in home.
func loadSettings(home string) (*config.Settings, error) {
	opts := config.LoadOptions{ConfigFile: flagConfig}
	if flagConfig == "" {
		opts.SearchDirs = []string{"."}
		if home != "" {
			opts.SearchDirs = append(opts.SearchDirs, home)
		}
	}
	return config.Load(opts)
}

func errorContext(cmd *cobra.Command) string {
	if cmd == nil || cmd == rootCmd {
		return "error"
	}
	return cmd.Name() + " failed"
}
