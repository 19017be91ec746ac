package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/protolist-labs/protolist/internal/proto"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the catalog entry of one proto",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := strings.TrimSuffix(args[0], proto.Extension)

	res, err := checkTree(cmd)
	if err != nil {
		return err
	}

	entry, ok := res.Catalog.Find(name)
	if !ok {
		return fmt.Errorf("proto %q not found", name)
	}

	if showJSON {
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, f := range entry.Fields() {
		value := f.Value
		// Multi-line fields are stored with the literal line break marker.
		value = strings.ReplaceAll(value, proto.LineBreak, "\n\t")
		if value == "" {
			value = `""`
		}
		fmt.Fprintf(w, "%s:\t%s\n", f.Name, value)
	}
	return w.Flush()
}
