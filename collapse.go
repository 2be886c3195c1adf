package diagram

import (
	"tidbyt.dev/diagram/model"
)

// Merges adjacent columns sharing a station name (e.g. the arrival and
// departure rows of one station) into logical stations, and folds each
// train's column statuses into one TrainStop per logical station.
//
// Only adjacent columns are merged. A name appearing twice with other
// stations in between yields two logical stations.
func Collapse(columns []model.StationColumn, statuses [][]model.StopStatus) ([]model.LogicalStation, [][]model.TrainStop) {
	stations := []model.LogicalStation{}
	for i, column := range columns {
		if len(stations) == 0 || stations[len(stations)-1].Name != column.Name {
			stations = append(stations, model.LogicalStation{Name: column.Name})
		}
		last := &stations[len(stations)-1]
		last.Columns = append(last.Columns, model.ColumnRef{Index: i, Role: column.Role})
	}

	trains := make([][]model.TrainStop, 0, len(statuses))
	for _, train := range statuses {
		row := make([]model.TrainStop, 0, len(stations))
		for _, station := range stations {
			row = append(row, collapseStation(station, train))
		}
		trains = append(trains, row)
	}

	return stations, trains
}

func collapseStation(station model.LogicalStation, train []model.StopStatus) model.TrainStop {
	res := model.TrainStop{
		Name: station.Name,
		Type: model.StopTypeOutOfRoute,
		Note: []string{},
	}

	for _, ref := range station.Columns {
		if ref.Index >= len(train) {
			continue
		}
		status := train[ref.Index]

		switch status.Type {
		case model.StopTypePass:
			res.Type = model.StopTypePass
		case model.StopTypeStop:
			res.Type = model.StopTypeStop
			t := status.Time
			if ref.Role == model.RoleArrival {
				res.Arrival = &t
			} else if ref.Role == model.RoleDeparture {
				res.Departure = &t
			}
			res.Note = append(res.Note, status.Note...)
		case model.StopTypeTrack:
			if status.Track != nil {
				track := *status.Track
				res.TrackNumber = &track
			} else {
				res.TrackNumber = nil
			}
		}
	}

	return res
}

func stationNames(stations []model.LogicalStation) []string {
	names := make([]string, len(stations))
	for i, s := range stations {
		names[i] = s.Name
	}
	return names
}
