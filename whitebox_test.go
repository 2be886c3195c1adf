package diagram

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"tidbyt.dev/diagram/model"
)

// Don't love this, but some internal functions are finicky and need
// testing.

func tm(hour, minute int) *model.Time {
	return &model.Time{Hour: hour, Minute: minute}
}

func TestWhiteboxEdgesOrder(t *testing.T) {
	e := newEdges()
	e.observe(5, 30)
	e.observe(2, model.UnknownInterval)
	e.observe(5, 20)
	e.observe(2, 7)
	e.observe(5, 25)

	assert.Equal(t, []int{5, 2}, e.To())
	assert.Equal(t, model.Interval(20), e.Get(5))
	assert.Equal(t, model.Interval(7), e.Get(2))
	assert.Equal(t, model.UnknownInterval, e.Get(3))
	assert.True(t, e.Has(2))
	assert.False(t, e.Has(3))
	assert.Equal(t, 2, e.Len())

	var missing *Edges
	assert.False(t, missing.Has(0))
	assert.Equal(t, model.UnknownInterval, missing.Get(0))
	assert.Equal(t, 0, missing.Len())
	assert.Nil(t, missing.To())
}

func TestWhiteboxMergeIfEmpty(t *testing.T) {
	var dst *model.Time
	mergeIfEmpty(&dst, nil)
	assert.Nil(t, dst)

	src := tm(8, 0)
	mergeIfEmpty(&dst, src)
	assert.Equal(t, tm(8, 0), dst)

	// Copies, doesn't alias.
	src.Minute = 30
	assert.Equal(t, tm(8, 0), dst)

	mergeIfEmpty(&dst, tm(9, 0))
	assert.Equal(t, tm(8, 0), dst)
}

func TestWhiteboxStitchSplitStops(t *testing.T) {
	stations := []model.Station{
		{Name: "大宮", Branch: model.NoBranch},
		{Name: "高崎", Branch: model.NoBranch},
		{Name: "越後湯沢", Branch: model.NoBranch},
		{Name: "高崎", Branch: model.NoBranch},
		{Name: "長野", Branch: model.NoBranch},
	}

	for _, tc := range []struct {
		name     string
		input    []model.TrainStop
		expected []model.TrainStop
	}{
		{
			"arrival and departure split",
			[]model.TrainStop{
				{Name: "大宮", Type: model.StopTypeStop, Departure: tm(7, 0)},
				{Name: "高崎", Type: model.StopTypeStop, Arrival: tm(8, 0)},
				{Name: "越後湯沢", Type: model.StopTypeOutOfRoute},
				{Name: "高崎", Type: model.StopTypeStop, Departure: tm(8, 5)},
				{Name: "長野", Type: model.StopTypeStop, Arrival: tm(9, 0)},
			},
			[]model.TrainStop{
				{Name: "大宮", Type: model.StopTypeStop, Departure: tm(7, 0)},
				{Name: "高崎", Type: model.StopTypeStop, Arrival: tm(8, 0), Departure: tm(8, 5)},
				{Name: "越後湯沢", Type: model.StopTypeOutOfRoute},
				{Name: "高崎", Type: model.StopTypeStop, Arrival: tm(8, 0), Departure: tm(8, 5)},
				{Name: "長野", Type: model.StopTypeStop, Arrival: tm(9, 0)},
			},
		},

		{
			"stop in between",
			[]model.TrainStop{
				{Name: "大宮", Type: model.StopTypeStop, Departure: tm(7, 0)},
				{Name: "高崎", Type: model.StopTypeStop, Arrival: tm(8, 0)},
				{Name: "越後湯沢", Type: model.StopTypeStop, Departure: tm(8, 2)},
				{Name: "高崎", Type: model.StopTypeStop, Departure: tm(8, 5)},
				{Name: "長野", Type: model.StopTypeStop, Arrival: tm(9, 0)},
			},
			[]model.TrainStop{
				{Name: "大宮", Type: model.StopTypeStop, Departure: tm(7, 0)},
				{Name: "高崎", Type: model.StopTypeStop, Arrival: tm(8, 0)},
				{Name: "越後湯沢", Type: model.StopTypeStop, Departure: tm(8, 2)},
				{Name: "高崎", Type: model.StopTypeStop, Departure: tm(8, 5)},
				{Name: "長野", Type: model.StopTypeStop, Arrival: tm(9, 0)},
			},
		},

		{
			"pass doesn't stitch",
			[]model.TrainStop{
				{Name: "大宮", Type: model.StopTypeStop, Departure: tm(7, 0)},
				{Name: "高崎", Type: model.StopTypePass},
				{Name: "越後湯沢", Type: model.StopTypeOutOfRoute},
				{Name: "高崎", Type: model.StopTypeStop, Departure: tm(8, 5)},
				{Name: "長野", Type: model.StopTypeStop, Arrival: tm(9, 0)},
			},
			[]model.TrainStop{
				{Name: "大宮", Type: model.StopTypeStop, Departure: tm(7, 0)},
				{Name: "高崎", Type: model.StopTypePass},
				{Name: "越後湯沢", Type: model.StopTypeOutOfRoute},
				{Name: "高崎", Type: model.StopTypeStop, Departure: tm(8, 5)},
				{Name: "長野", Type: model.StopTypeStop, Arrival: tm(9, 0)},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stitchSplitStops(stations, tc.input)
			assert.Equal(t, tc.expected, tc.input)
		})
	}
}

func TestWhiteboxTakesOtherArm(t *testing.T) {
	// A B C D B' E, with B' branching from B and C carrying a
	// branch marker of its own.
	stations := []model.Station{
		{Name: "A", Branch: model.NoBranch},
		{Name: "B", Branch: model.NoBranch},
		{Name: "C", Branch: 5},
		{Name: "D", Branch: model.NoBranch},
		{Name: "B", Branch: 1},
		{Name: "E", Branch: model.NoBranch},
	}
	oldIndex := []int{0, 1, 2, 3, 1, 4}
	names := []string{"A", "B", "C", "D", "E"}

	train := func(types ...model.StopType) []model.TrainStop {
		res := []model.TrainStop{}
		for i, typ := range types {
			res = append(res, model.TrainStop{Name: names[i], Type: typ})
		}
		return res
	}
	stop := model.StopTypeStop
	oor := model.StopTypeOutOfRoute

	// D served: other arm.
	assert.True(t, takesOtherArm(stations, oldIndex, names, train(stop, stop, oor, stop, oor), 4))

	// Only C served, but C has a branch of its own.
	assert.False(t, takesOtherArm(stations, oldIndex, names, train(stop, stop, stop, oor, stop), 4))

	// Short train rows read as out of route.
	assert.False(t, takesOtherArm(stations, oldIndex, names, train(stop, stop), 4))
}

func TestWhiteboxShortBranchLog(t *testing.T) {
	buf := &bytes.Buffer{}
	saved := log.Logger
	log.Logger = zerolog.New(buf).Level(zerolog.DebugLevel)
	defer func() { log.Logger = saved }()

	names := []string{"A", "B", "C"}

	// A reaches C directly, without a usable time.
	intervals := IntervalMap{newEdges(), newEdges(), newEdges()}
	intervals[0].observe(1, 5)
	intervals[0].observe(2, model.UnknownInterval)
	intervals[1].observe(2, 7)

	stations, _ := FormatStationOrder(intervals, names, nil)
	assert.Equal(t, 3, len(stations))
	assert.Contains(t, buf.String(), `"message":"ignoring short branch"`)
	assert.NotContains(t, buf.String(), `"minutes"`)
	assert.NotContains(t, buf.String(), "2147483647")

	buf.Reset()
	intervals[0] = newEdges()
	intervals[0].observe(1, 5)
	intervals[0].observe(2, 9)

	FormatStationOrder(intervals, names, nil)
	assert.Contains(t, buf.String(), `"minutes":9`)
}
