package diagram

import (
	"tidbyt.dev/diagram/model"
)

// Minimum observed travel times from one station to the stations
// trains reach next from it. Edges are kept in the order they were
// first observed.
type Edges struct {
	order []int
	min   map[int]model.Interval
}

func newEdges() *Edges {
	return &Edges{min: map[int]model.Interval{}}
}

func (e *Edges) Has(to int) bool {
	if e == nil {
		return false
	}
	_, found := e.min[to]
	return found
}

// Minimum interval to the given station, UnknownInterval if there's no
// such edge.
func (e *Edges) Get(to int) model.Interval {
	if e == nil {
		return model.UnknownInterval
	}
	if m, found := e.min[to]; found {
		return m
	}
	return model.UnknownInterval
}

func (e *Edges) Len() int {
	if e == nil {
		return 0
	}
	return len(e.order)
}

// Destination station indexes, in order of first observation.
func (e *Edges) To() []int {
	if e == nil {
		return nil
	}
	return append([]int{}, e.order...)
}

func (e *Edges) observe(to int, interval model.Interval) {
	existing, found := e.min[to]
	if !found {
		e.order = append(e.order, to)
		e.min[to] = interval
		return
	}
	if interval < existing {
		e.min[to] = interval
	}
}

// IntervalMap[i] holds the edges out of logical station i.
type IntervalMap []*Edges

// Records, for every pair of stations a train runs through with nothing
// but out of route stations between them, the minimum travel time
// across all trains.
//
// Only the next station a train reaches is linked from each station,
// so the result is sparse adjacency, not all pairs travel times. A
// missing time on either end makes the edge UnknownInterval.
func EstimateIntervals(trains [][]model.TrainStop, numStations int) IntervalMap {
	intervals := make(IntervalMap, numStations)
	for i := range intervals {
		intervals[i] = newEdges()
	}

	for _, train := range trains {
		n := len(train)
		if n > numStations {
			n = numStations
		}

		for i := 0; i < n-1; i++ {
			if !train[i].Type.Served() {
				continue
			}

			for j := i + 1; j < n; j++ {
				if !train[j].Type.Served() {
					continue
				}

				intervals[i].observe(j, travelTime(train[i], train[j]))
				break
			}
		}
	}

	return intervals
}

func travelTime(pre model.TrainStop, next model.TrainStop) model.Interval {
	preTime := pre.Departure
	if preTime == nil {
		preTime = pre.Arrival
	}
	nextTime := next.Arrival
	if nextTime == nil {
		nextTime = next.Departure
	}
	if preTime == nil || nextTime == nil {
		return model.UnknownInterval
	}
	return model.Interval(model.TimeDiff(*preTime, *nextTime))
}
