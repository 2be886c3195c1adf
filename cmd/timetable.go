package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tidbyt.dev/diagram"
)

var timetableCmd = &cobra.Command{
	Use:   "timetable <file>",
	Short: "Prints the reconstructed timetable as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  timetable,
}

var indent bool

func init() {
	timetableCmd.Flags().BoolVarP(&indent, "indent", "", false, "Indent JSON output")
	rootCmd.AddCommand(timetableCmd)
}

func timetable(cmd *cobra.Command, args []string) error {
	table, err := LoadTable(args[0])
	if err != nil {
		return err
	}

	tt, err := diagram.Build(table)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(tt)
}
