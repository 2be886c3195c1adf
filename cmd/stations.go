package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidbyt.dev/diagram"
)

var stationsCmd = &cobra.Command{
	Use:   "stations <file>",
	Short: "Lists stations in reconstructed order",
	Args:  cobra.ExactArgs(1),
	RunE:  stations,
}

func init() {
	rootCmd.AddCommand(stationsCmd)
}

func stations(cmd *cobra.Command, args []string) error {
	table, err := LoadTable(args[0])
	if err != nil {
		return err
	}

	tt, err := diagram.Build(table)
	if err != nil {
		return err
	}

	for i, s := range tt.Stations {
		interval := "-"
		if s.Interval.Known() {
			interval = fmt.Sprintf("%d", s.Interval)
		}
		branch := ""
		if s.HasBranch() {
			branch = fmt.Sprintf(" -> %d", s.Branch)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d: %s %s%s\n", i, s.Name, interval, branch)
	}

	return nil
}
