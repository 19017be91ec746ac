package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listBaseType string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resolved descriptors",
	Long:  `Resolve the descriptor tree and list every proto with its base type.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listBaseType, "base-type", "", "Filter by base node type (Solid, Slot, ...)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one row of the listing.
type listEntry struct {
	Name               string `json:"name"`
	BaseType           string `json:"base_type"`
	SlotType           string `json:"slot_type,omitempty"`
	NeedsRobotAncestor bool   `json:"needs_robot_ancestor"`
}

func runList(cmd *cobra.Command, args []string) error {
	res, err := checkTree(cmd)
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, p := range res.Catalog.Protos {
		if listBaseType != "" && p.BaseType != listBaseType {
			continue
		}
		e := listEntry{
			Name:               p.Name,
			BaseType:           p.BaseType,
			NeedsRobotAncestor: p.NeedsRobotAncestor != "",
		}
		if p.SlotType != nil {
			e.SlotType = *p.SlotType
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		if listBaseType != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No protos matching --base-type=%s\n", listBaseType)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No protos found.")
		}
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tBASE TYPE\tROBOT\tSLOT")
	for _, e := range entries {
		robot := "-"
		if e.NeedsRobotAncestor {
			robot = "yes"
		}
		slot := "-"
		if e.SlotType != "" {
			slot = e.SlotType
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.BaseType, robot, slot)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
