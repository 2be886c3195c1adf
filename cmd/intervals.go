package main

import (
	"strconv"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"tidbyt.dev/diagram"
)

var intervalsCmd = &cobra.Command{
	Use:   "intervals <file>",
	Short: "Dumps estimated intervals between table stations",
	Args:  cobra.ExactArgs(1),
	RunE:  intervals,
}

func init() {
	rootCmd.AddCommand(intervalsCmd)
}

type edgeDump struct {
	To       string
	Index    int
	Interval string
}

type stationDump struct {
	Name  string
	Edges []edgeDump
}

func intervals(cmd *cobra.Command, args []string) error {
	table, err := LoadTable(args[0])
	if err != nil {
		return err
	}

	if err := diagram.Validate(table); err != nil {
		return err
	}

	stations, trains := diagram.Collapse(table.Columns, table.Statuses)
	intervals := diagram.EstimateIntervals(trains, len(stations))

	dump := []stationDump{}
	for i, edges := range intervals {
		d := stationDump{Name: stations[i].Name, Edges: []edgeDump{}}
		for _, to := range edges.To() {
			interval := "unknown"
			if v := edges.Get(to); v.Known() {
				interval = strconv.Itoa(int(v))
			}
			d.Edges = append(d.Edges, edgeDump{
				To:       stations[to].Name,
				Index:    to,
				Interval: interval,
			})
		}
		dump = append(dump, d)
	}

	pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", dump)

	return nil
}
