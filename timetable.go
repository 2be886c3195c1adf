package diagram

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"tidbyt.dev/diagram/model"
	"tidbyt.dev/diagram/parse"
)

var (
	ErrNoStations  = errors.New("no station rows found")
	ErrRaggedTrain = errors.New("train row doesn't match station columns")
)

// Checks the structural assumptions the reconstruction relies on:
// at least one station column, and one status per column for every
// train.
func Validate(table *parse.Table) error {
	if len(table.Columns) == 0 {
		return ErrNoStations
	}

	if len(table.Statuses) != len(table.Details) {
		return fmt.Errorf("%d train rows but %d train details: %w", len(table.Statuses), len(table.Details), ErrRaggedTrain)
	}

	for t, statuses := range table.Statuses {
		if len(statuses) != len(table.Columns) {
			return fmt.Errorf("train %d has %d statuses for %d columns: %w", t, len(statuses), len(table.Columns), ErrRaggedTrain)
		}
	}

	return nil
}

// Reconstructs the diagram station axis for a parsed table and aligns
// every train to it.
func Build(table *parse.Table) (*model.Timetable, error) {
	err := Validate(table)
	if err != nil {
		return nil, fmt.Errorf("validating table: %w", err)
	}

	logical, rawTrains := Collapse(table.Columns, table.Statuses)
	names := stationNames(logical)
	intervals := EstimateIntervals(rawTrains, len(names))
	stations, timetables := FormatStationOrder(intervals, names, rawTrains)

	trains := make([]model.Train, 0, len(timetables))
	for i, timetable := range timetables {
		train := model.Train{}
		err := copier.CopyWithOption(&train, &table.Details[i], copier.Option{DeepCopy: true})
		if err != nil {
			return nil, fmt.Errorf("copying details of train %d: %w", i, err)
		}
		if train.Facilities == nil {
			train.Facilities = []string{}
		}
		train.Timetable = timetable
		trains = append(trains, train)
	}

	log.Debug().
		Int("columns", len(table.Columns)).
		Int("logical", len(logical)).
		Int("stations", len(stations)).
		Int("trains", len(trains)).
		Msg("built timetable")

	return &model.Timetable{
		Stations: stations,
		Trains:   trains,
	}, nil
}
