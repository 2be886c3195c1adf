package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidbyt.dev/diagram"
	"tidbyt.dev/diagram/plot"
)

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "Prints diagram points as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  plotDiagram,
}

var (
	startHour    int
	plotStations bool
)

func init() {
	plotCmd.Flags().IntVarP(&startHour, "start-hour", "", plot.DefaultStartHour, "Hour the diagram starts at")
	plotCmd.Flags().BoolVarP(&plotStations, "stations", "", false, "Print the station axis instead of points")
	rootCmd.AddCommand(plotCmd)
}

func plotDiagram(cmd *cobra.Command, args []string) error {
	if startHour < 0 || startHour > 23 {
		return fmt.Errorf("start hour must be in 0..23")
	}

	table, err := LoadTable(args[0])
	if err != nil {
		return err
	}

	tt, err := diagram.Build(table)
	if err != nil {
		return err
	}

	if plotStations {
		return plot.WriteStationsCSV(cmd.OutOrStdout(), tt.Stations)
	}

	return plot.WriteCSV(cmd.OutOrStdout(), tt, plot.Series(tt, startHour))
}
