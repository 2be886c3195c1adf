package diagram

import (
	"github.com/rs/zerolog/log"

	"tidbyt.dev/diagram/model"
)

// Nodes of the station order are kept in an arena and referenced by
// handle, so that branch relations survive insertions shifting final
// positions around.
type handle int

const noHandle handle = -1

type orderNode struct {
	name     string
	interval model.Interval
	oldIndex int
	branchTo handle
}

// A logical station's own node, and the nodes to place right before
// and after it.
type orderSlot struct {
	target handle
	before []handle
	after  []handle
}

type stationOrder struct {
	nodes []orderNode
	slots []orderSlot
}

func (o *stationOrder) add(n orderNode) handle {
	o.nodes = append(o.nodes, n)
	return handle(len(o.nodes) - 1)
}

func (o *stationOrder) target(i int) *orderNode {
	return &o.nodes[o.slots[i].target]
}

func (m IntervalMap) at(i int) *Edges {
	if i < 0 || i >= len(m) {
		return nil
	}
	return m[i]
}

// Turns the logical stations into a linear diagram axis, inserting
// stations so that branches and merges read as contiguous runs, and
// remaps every train onto the new axis.
//
// A station reached from i other than i+1, and otherwise only
// reachable off the linear chain, gets a copy of i inserted before it
// (a branch). A station with no edge to i+1 gets a copy of its next
// station inserted after it (a merge). Inserted stations carry a
// branch index pointing at the station they copy.
func FormatStationOrder(intervals IntervalMap, names []string, trains [][]model.TrainStop) ([]model.Station, [][]model.TrainStop) {
	o := &stationOrder{}
	for i := range names {
		h := o.add(orderNode{
			name:     names[i],
			interval: intervals.at(i).Get(i + 1),
			oldIndex: i,
			branchTo: noHandle,
		})
		o.slots = append(o.slots, orderSlot{target: h})
	}

	for i := range names {
		edges := intervals.at(i)

		if edges.Has(i + 1) {
			// Branch source. E.g. trains from 上菅谷 run either to
			// 南酒出 or 常陸鴻巣, the latter listed further down:
			// insert 上菅谷 right before 常陸鴻巣.
			for _, j := range edges.To() {
				if j == i+1 || j >= len(names) {
					continue
				}
				minTime := edges.Get(j)

				switch {
				case names[i] == names[j]:
					o.target(j).branchTo = o.slots[i].target

				case !intervals.at(j - 1).Has(j):
					h := o.add(orderNode{
						name:     names[i],
						interval: minTime,
						oldIndex: i,
						branchTo: o.slots[i].target,
					})
					o.slots[j].before = append([]handle{h}, o.slots[j].before...)
					log.Debug().Str("station", names[i]).Str("before", names[j]).Msg("inserting branch source")

				default:
					// The branch rejoins the chain right at j,
					// e.g. a freight line bypassing a single
					// station. Left as is.
					ev := log.Debug().
						Str("from", names[i]).
						Str("to", names[j])
					if minTime.Known() {
						ev = ev.Int("minutes", int(minTime))
					}
					ev.Msg("ignoring short branch")
				}
			}
			continue
		}

		// Merge. Nothing continues from i to i+1: i is the end of an
		// arm joining the chain at j further down. Insert j right
		// after i.
		for _, j := range edges.To() {
			if j >= len(names) {
				continue
			}
			minTime := edges.Get(j)

			switch {
			case names[i] == names[j]:
				o.target(i).branchTo = o.slots[j].target

			case names[j-1] == names[i]:
				// The station right above j is i under another
				// row, e.g. a departure time listed out of
				// position. Link only.
				o.target(i).branchTo = o.slots[j-1].target

			default:
				o.target(i).interval = minTime
				h := o.add(orderNode{
					name:     names[j],
					interval: model.UnknownInterval,
					oldIndex: j,
					branchTo: o.slots[j].target,
				})
				o.slots[i].after = append(o.slots[i].after, h)
				log.Debug().Str("station", names[j]).Str("after", names[i]).Msg("inserting merge target")
			}
		}
	}

	order := make([]handle, 0, len(o.nodes))
	for _, slot := range o.slots {
		order = append(order, slot.before...)
		order = append(order, slot.target)
		order = append(order, slot.after...)
	}

	position := make([]int, len(o.nodes))
	for k, h := range order {
		position[h] = k
	}

	stations := make([]model.Station, len(order))
	oldIndex := make([]int, len(order))
	for k, h := range order {
		n := o.nodes[h]
		branch := model.NoBranch
		if n.branchTo != noHandle && position[n.branchTo] != k {
			branch = position[n.branchTo]
		}
		stations[k] = model.Station{
			Name:     n.name,
			Interval: n.interval,
			Branch:   branch,
		}
		oldIndex[k] = n.oldIndex
	}

	remapped := make([][]model.TrainStop, 0, len(trains))
	for _, train := range trains {
		remapped = append(remapped, remapTrain(stations, oldIndex, names, train))
	}

	return stations, remapped
}

func stopAt(train []model.TrainStop, i int, names []string) model.TrainStop {
	if i < len(train) {
		return train[i]
	}
	return model.TrainStop{
		Name: names[i],
		Type: model.StopTypeOutOfRoute,
		Note: []string{},
	}
}

func remapTrain(stations []model.Station, oldIndex []int, names []string, train []model.TrainStop) []model.TrainStop {
	timetable := make([]model.TrainStop, len(stations))

	for k, station := range stations {
		current := stopAt(train, oldIndex[k], names)

		if station.HasBranch() && takesOtherArm(stations, oldIndex, names, train, k) {
			timetable[k] = model.TrainStop{
				Name: current.Name,
				Type: model.StopTypeOutOfRoute,
				Note: []string{},
			}
			continue
		}

		timetable[k] = current.Copy()
	}

	stitchSplitStops(stations, timetable)

	return timetable
}

// A train running through any station strictly between k and its
// branch counterpart is on the other arm, so its data at k belongs to
// the counterpart. Stations with a branch of their own are skipped.
func takesOtherArm(stations []model.Station, oldIndex []int, names []string, train []model.TrainStop, k int) bool {
	lo, hi := k, stations[k].Branch
	if hi < lo {
		lo, hi = hi, lo
	}

	for m := lo + 1; m < hi; m++ {
		if stations[m].HasBranch() {
			continue
		}
		if stopAt(train, oldIndex[m], names).Type.Served() {
			return true
		}
	}

	return false
}

// Consecutive stops at stations with the same name are one stop whose
// arrival and departure ended up in separate slots, e.g.
//
//	高崎     着 800
//	越後湯沢 発 ||
//	高崎     発 805
//
// Each slot gets the times the other has.
func stitchSplitStops(stations []model.Station, timetable []model.TrainStop) {
	prev := -1
	for k := range timetable {
		if timetable[k].Type != model.StopTypeStop {
			continue
		}
		if prev >= 0 && stations[k].Name == stations[prev].Name {
			mergeIfEmpty(&timetable[prev].Departure, timetable[k].Departure)
			mergeIfEmpty(&timetable[k].Departure, timetable[prev].Departure)
			mergeIfEmpty(&timetable[prev].Arrival, timetable[k].Arrival)
			mergeIfEmpty(&timetable[k].Arrival, timetable[prev].Arrival)
		}
		prev = k
	}
}

func mergeIfEmpty(dst **model.Time, src *model.Time) {
	if *dst != nil || src == nil {
		return
	}
	t := *src
	*dst = &t
}
