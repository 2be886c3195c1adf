package parse

import (
	"strings"

	"github.com/pkg/errors"

	"tidbyt.dev/diagram/model"
)

// Rows, cells and text fragments of a timetable table, as scraped.
type RawTable [][][]string

type RowType int

const (
	RowTypeUnknown RowType = iota
	RowTypeTrainNumber
	RowTypeTrainName
	RowTypeFacilities
	RowTypeCalendar
	RowTypeOnboardSale
	RowTypeTrackNumber
	RowTypeDeparture
	RowTypeArrival
)

// Per train data extracted from a raw table. Statuses[t][c] is the
// status of train t at Columns[c].
type Table struct {
	Columns  []model.StationColumn
	Statuses [][]model.StopStatus
	Details  []model.TrainDetails
}

// Classifies a row by its title and subtitle cells.
func ClassifyRow(p Profile, title string, subTitle string) RowType {
	switch {
	case title == p.TrainNumberTitle:
		return RowTypeTrainNumber
	case title == p.TrainNameTitle:
		return RowTypeTrainName
	case title == p.FacilitiesTitle:
		return RowTypeFacilities
	case title == p.CalendarTitle:
		return RowTypeCalendar
	case title == p.OnboardSaleTitle:
		return RowTypeOnboardSale
	case p.TrackSuffix != "" && strings.HasSuffix(title, p.TrackSuffix):
		return RowTypeTrackNumber
	case subTitle == p.DepartureLabel:
		return RowTypeDeparture
	case subTitle == p.ArrivalLabel:
		return RowTypeArrival
	}
	return RowTypeUnknown
}

func fragment(row [][]string, cell int, i int) string {
	if cell >= len(row) || i >= len(row[cell]) {
		return ""
	}
	return row[cell][i]
}

// Walks the rows of a raw table, building the station column index
// and per train details and statuses.
//
// The width of the first row sets the number of trains. Shorter rows
// are padded with blank cells.
func ParseTable(p Profile, raw RawTable) (*Table, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty table")
	}

	width := len(raw[0])
	if width < p.HeadColumns {
		return nil, errors.Errorf("first row has %d cells, need at least %d", width, p.HeadColumns)
	}
	numTrains := width - p.HeadColumns

	table := &Table{
		Columns:  []model.StationColumn{},
		Statuses: make([][]model.StopStatus, numTrains),
		Details:  make([]model.TrainDetails, numTrains),
	}
	for t := range table.Details {
		table.Details[t].Facilities = []string{}
		table.Statuses[t] = []model.StopStatus{}
	}

	for r, row := range raw {
		if len(row) > width {
			return nil, errors.Errorf("row %d has %d cells, expected at most %d", r+1, len(row), width)
		}

		title := fragment(row, 0, 0)
		rowType := ClassifyRow(p, title, fragment(row, 1, 0))

		switch rowType {
		case RowTypeTrackNumber:
			table.Columns = append(table.Columns, model.StationColumn{
				Name: strings.TrimSuffix(title, p.TrackSuffix),
				Role: model.RoleTrackNumber,
			})
		case RowTypeDeparture:
			table.Columns = append(table.Columns, model.StationColumn{
				Name: title,
				Role: model.RoleDeparture,
			})
		case RowTypeArrival:
			table.Columns = append(table.Columns, model.StationColumn{
				Name: title,
				Role: model.RoleArrival,
			})
		}

		for t := 0; t < numTrains; t++ {
			var cell []string
			if c := t + p.HeadColumns; c < len(row) {
				cell = row[c]
			}
			first := ""
			if len(cell) > 0 {
				first = cell[0]
			}

			details := &table.Details[t]
			switch rowType {
			case RowTypeTrainNumber:
				details.TrainNumber = first
			case RowTypeTrainName:
				details.TrainName = strings.Join(cell, " ")
			case RowTypeFacilities:
				for _, f := range cell {
					if f != "" {
						details.Facilities = append(details.Facilities, f)
					}
				}
			case RowTypeCalendar:
				details.Calendar = strings.Join(cell, " ")
			case RowTypeOnboardSale:
				details.OnboardSale = first == p.OnboardSaleMark
			case RowTypeTrackNumber:
				table.Statuses[t] = append(table.Statuses[t], ParseTrackNumber(p, first))
			case RowTypeDeparture, RowTypeArrival:
				table.Statuses[t] = append(table.Statuses[t], ParseTime(p, cell...))
			}
		}
	}

	return table, nil
}
