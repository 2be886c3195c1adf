package plot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"tidbyt.dev/diagram/model"
)

// Diagrams start at 04:00 rather than midnight, when hardly any train
// runs.
const DefaultStartHour = 4

type Point struct {
	// Minutes since the start of the diagram day.
	X int
	// Station height, 0 at the first station and decreasing
	// downwards.
	Y int

	Station int
	Time    model.Time
}

// A run of consecutive served stations of one train.
type Line struct {
	Train  int
	Points []Point
}

// Vertical position of every station. Stations are spaced by their
// interval, unknown intervals count as one minute.
func Heights(stations []model.Station) []int {
	heights := make([]int, len(stations))
	current := 0
	for i, s := range stations {
		heights[i] = current
		if s.Interval.Known() {
			current -= int(s.Interval)
		} else {
			current -= 1
		}
	}
	return heights
}

// Builds diagram lines for all trains. A train's line is cut wherever
// it's out of route, e.g. on the other arm of a branch.
func Series(tt *model.Timetable, startHour int) []Line {
	heights := Heights(tt.Stations)
	start := model.Time{Hour: startHour}

	point := func(k int, t model.Time) Point {
		return Point{
			X:       model.TimeDiff(start, t),
			Y:       heights[k],
			Station: k,
			Time:    t,
		}
	}

	lines := []Line{}
	for i, train := range tt.Trains {
		current := Line{Train: i}

		for k, st := range train.Timetable {
			if k >= len(heights) {
				break
			}

			if st.Type == model.StopTypeOutOfRoute {
				if len(current.Points) > 0 {
					lines = append(lines, current)
					current = Line{Train: i}
				}
				continue
			}

			if st.Arrival != nil {
				current.Points = append(current.Points, point(k, *st.Arrival))
			}
			// Zero minute stops get a single point.
			if st.Departure != nil && (st.Arrival == nil || *st.Departure != *st.Arrival) {
				current.Points = append(current.Points, point(k, *st.Departure))
			}
		}

		if len(current.Points) > 0 {
			lines = append(lines, current)
		}
	}

	return lines
}

type pointCSV struct {
	Train       int    `csv:"train"`
	TrainNumber string `csv:"train_number"`
	Line        int    `csv:"line"`
	Station     string `csv:"station"`
	Time        string `csv:"time"`
	X           int    `csv:"x"`
	Y           int    `csv:"y"`
}

// Writes the points of all lines as CSV, one row per point.
func WriteCSV(w io.Writer, tt *model.Timetable, lines []Line) error {
	rows := []*pointCSV{}
	for l, line := range lines {
		number := ""
		if line.Train < len(tt.Trains) {
			number = tt.Trains[line.Train].TrainNumber
		}
		for _, p := range line.Points {
			rows = append(rows, &pointCSV{
				Train:       line.Train,
				TrainNumber: number,
				Line:        l,
				Station:     tt.Stations[p.Station].Name,
				Time:        p.Time.String(),
				X:           p.X,
				Y:           p.Y,
			})
		}
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("marshaling points: %w", err)
	}
	return nil
}

type stationCSV struct {
	Index    int            `csv:"index"`
	Name     string         `csv:"name"`
	Interval model.Interval `csv:"interval"`
	Branch   string         `csv:"branch"`
	Y        int            `csv:"y"`
}

// Writes the station axis as CSV.
func WriteStationsCSV(w io.Writer, stations []model.Station) error {
	heights := Heights(stations)

	rows := []*stationCSV{}
	for i, s := range stations {
		branch := ""
		if s.HasBranch() {
			branch = strconv.Itoa(s.Branch)
		}
		rows = append(rows, &stationCSV{
			Index:    i,
			Name:     s.Name,
			Interval: s.Interval,
			Branch:   branch,
			Y:        heights[i],
		})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("marshaling stations: %w", err)
	}
	return nil
}
